package envconfig

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MCPServer registers one MCP endpoint with the assistant. An entry is a
// tagged variant: exactly one of HTTP or Stdio is non-nil, enforced when
// the document is unmarshaled.
type MCPServer struct {
	Name  string
	Scope string // "user" or "project"

	HTTP  *MCPServerHTTP
	Stdio *MCPServerStdio
}

// MCPServerHTTP is the remote variant, reached over HTTP or SSE.
type MCPServerHTTP struct {
	Transport string // "http" or "sse"
	URL       string
	Header    string // optional authentication header
}

// MCPServerStdio is the local variant, launched as a subprocess.
type MCPServerStdio struct {
	Command string
	Env     string // optional environment variables
}

// Transport returns the wire transport for display: http, sse, or stdio.
func (s *MCPServer) Transport() string {
	if s.HTTP != nil {
		return s.HTTP.Transport
	}
	return "stdio"
}

// mcpServerDoc is the loose wire shape before variant selection.
type mcpServerDoc struct {
	Name      string `yaml:"name"`
	Scope     string `yaml:"scope"`
	Transport string `yaml:"transport"`
	URL       string `yaml:"url"`
	Header    string `yaml:"header"`
	Command   string `yaml:"command"`
	Env       string `yaml:"env"`
}

// UnmarshalYAML decodes a server entry and picks its variant. The two
// shapes are mutually exclusive per entry.
func (s *MCPServer) UnmarshalYAML(value *yaml.Node) error {
	var raw mcpServerDoc
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if raw.Name == "" {
		return &SchemaViolationError{Field: "mcp-servers", Reason: "server entry is missing a name"}
	}

	field := fmt.Sprintf("mcp-servers[%s]", raw.Name)

	scope := raw.Scope
	if scope == "" {
		scope = "user"
	}
	if scope != "user" && scope != "project" {
		return &SchemaViolationError{Field: field, Reason: fmt.Sprintf("invalid scope %q (valid: user, project)", raw.Scope)}
	}

	hasHTTP := raw.Transport != "" || raw.URL != "" || raw.Header != ""
	hasStdio := raw.Command != "" || raw.Env != ""

	switch {
	case hasHTTP && hasStdio:
		return &SchemaViolationError{Field: field, Reason: "http/sse fields and stdio fields are mutually exclusive"}
	case hasHTTP:
		if raw.Transport != "http" && raw.Transport != "sse" {
			return &SchemaViolationError{Field: field, Reason: fmt.Sprintf("unknown transport %q (valid: http, sse)", raw.Transport)}
		}
		if raw.URL == "" {
			return &SchemaViolationError{Field: field, Reason: "http/sse servers require a url"}
		}
		s.HTTP = &MCPServerHTTP{Transport: raw.Transport, URL: raw.URL, Header: raw.Header}
	case hasStdio:
		if raw.Command == "" {
			return &SchemaViolationError{Field: field, Reason: "stdio servers require a command"}
		}
		s.Stdio = &MCPServerStdio{Command: raw.Command, Env: raw.Env}
	default:
		return &SchemaViolationError{Field: field, Reason: "server must set either transport+url or command"}
	}

	s.Name = raw.Name
	s.Scope = scope
	return nil
}
