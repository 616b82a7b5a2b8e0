package envconfig

import (
	"strings"
	"testing"
)

func TestSchemaIssuesValidDocument(t *testing.T) {
	issues, err := SchemaIssues([]byte(fullDoc))
	if err != nil {
		t.Fatalf("SchemaIssues() error = %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("SchemaIssues() = %v, want none", issues)
	}
}

func TestSchemaIssues(t *testing.T) {
	tests := []struct {
		name        string
		doc         string
		wantPath    string
		wantKeyword string
	}{
		{
			name:     "missing name",
			doc:      "model: sonnet\n",
			wantPath: "",
		},
		{
			name: "mcp server with both shapes",
			doc: `
name: X
mcp-servers:
  - name: confused
    transport: http
    url: https://mcp.example.com
    command: npx something
`,
			wantPath: "/mcp-servers/0",
		},
		{
			name: "command-defaults with both fields",
			doc: `
name: X
command-defaults:
  output-style: a
  system-prompt: b
`,
			wantPath:    "/command-defaults",
			wantKeyword: "not",
		},
		{
			name: "unknown dependency platform",
			doc: `
name: X
dependencies:
  freebsd:
    - pkg install x
`,
			wantPath: "/dependencies",
		},
		{
			name: "hook event missing command",
			doc: `
name: X
hooks:
  events:
    - event: PostToolUse
`,
			wantPath: "/hooks/events/0",
		},
		{
			name: "non-string env variable",
			doc: `
name: X
env-variables:
  COUNT: 3
`,
			wantPath: "/env-variables/COUNT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues, err := SchemaIssues([]byte(tt.doc))
			if err != nil {
				t.Fatalf("SchemaIssues() error = %v", err)
			}
			if len(issues) == 0 {
				t.Fatal("SchemaIssues() = none, want at least one")
			}
			for _, issue := range issues {
				if !strings.HasPrefix(issue.Path, tt.wantPath) {
					continue
				}
				if tt.wantKeyword != "" && issue.Keyword != tt.wantKeyword {
					continue
				}
				return
			}
			t.Errorf("SchemaIssues() = %v, want an issue under %q", issues, tt.wantPath)
		})
	}
}

func TestSchemaIssuesInvalidYAML(t *testing.T) {
	if _, err := SchemaIssues([]byte("name: [unclosed")); err == nil {
		t.Error("SchemaIssues() expected error for invalid YAML")
	}
}
