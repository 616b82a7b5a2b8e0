// Package envconfig defines the Claude Code environment-configuration
// document: a YAML bundle of agents, slash commands, hooks, output styles,
// MCP servers, and launch defaults that an external toolbox installs
// together. It provides parsing, structural and semantic validation.
package envconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SchemaViolationError reports a mutually-exclusive-field conflict or a
// malformed section in a configuration document. These are validation-time
// failures: the document is wrong, not the environment, so they are never
// retried.
type SchemaViolationError struct {
	Field  string
	Reason string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// EnvironmentConfig is a parsed environment-configuration document.
type EnvironmentConfig struct {
	// Name is the display name for the environment. Required.
	Name string `yaml:"name"`

	// CommandName is the global command installed to launch this
	// environment. Must be paired with CommandDefaults.
	CommandName string `yaml:"command-name,omitempty"`

	// BaseURL redirects relative resource references to a different root
	// than the document's own location. May contain a {path} placeholder.
	BaseURL string `yaml:"base-url,omitempty"`

	// ClaudeCodeVersion pins the assistant version to install.
	ClaudeCodeVersion string `yaml:"claude-code-version,omitempty"`

	// IncludeCoAuthoredBy controls commit attribution. Defaults to true
	// when unset.
	IncludeCoAuthoredBy *bool `yaml:"include-co-authored-by,omitempty"`

	// Dependencies lists platform-specific install commands.
	Dependencies Dependencies `yaml:"dependencies,omitempty"`

	// Resource reference lists. Each entry is a URL, an absolute path,
	// a ~-path, or a path relative to the document's location.
	Agents        []string `yaml:"agents,omitempty"`
	SlashCommands []string `yaml:"slash-commands,omitempty"`
	OutputStyles  []string `yaml:"output-styles,omitempty"`

	MCPServers []MCPServer `yaml:"mcp-servers,omitempty"`

	Hooks *Hooks `yaml:"hooks,omitempty"`

	// Model is an alias (sonnet, opus, ...) or a full claude- model name.
	Model string `yaml:"model,omitempty"`

	EnvVariables map[string]string `yaml:"env-variables,omitempty"`

	Permissions *Permissions `yaml:"permissions,omitempty"`

	// CommandDefaults configures how the launch command starts the
	// assistant. Must be paired with CommandName.
	CommandDefaults *CommandDefaults `yaml:"command-defaults,omitempty"`
}

// Dependencies holds platform-specific dependency install commands.
type Dependencies struct {
	Common  []string
	Windows []string
	Mac     []string
	Linux   []string
}

// UnmarshalYAML rejects unknown platform keys.
func (d *Dependencies) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string][]string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	for key, commands := range raw {
		switch key {
		case "common":
			d.Common = commands
		case "windows":
			d.Windows = commands
		case "mac":
			d.Mac = commands
		case "linux":
			d.Linux = commands
		default:
			return &SchemaViolationError{
				Field:  "dependencies",
				Reason: fmt.Sprintf("unknown platform %q (valid: common, windows, mac, linux)", key),
			}
		}
	}
	return nil
}

// Hooks bundles hook script files with the events that trigger them.
type Hooks struct {
	Files  []string    `yaml:"files,omitempty"`
	Events []HookEvent `yaml:"events,omitempty"`
}

// HookEvent wires one assistant event to a command.
type HookEvent struct {
	// Event is the assistant event name, e.g. PostToolUse or Notification.
	Event string `yaml:"event"`

	// Matcher is an optional regex the event payload must match.
	Matcher string `yaml:"matcher,omitempty"`

	// Type is the hook type. Only "command" hooks exist today.
	Type string `yaml:"type,omitempty"`

	// Command is the command line the assistant executes.
	Command string `yaml:"command"`
}

// Permissions mirrors the assistant's permission settings.
type Permissions struct {
	DefaultMode           string   `yaml:"defaultMode,omitempty"`
	Allow                 []string `yaml:"allow,omitempty"`
	Deny                  []string `yaml:"deny,omitempty"`
	Ask                   []string `yaml:"ask,omitempty"`
	AdditionalDirectories []string `yaml:"additionalDirectories,omitempty"`
}

// CommandDefaults configures the launch command. Exactly one of
// OutputStyle (replaces the system prompt) or SystemPrompt (appends to it)
// may be set.
type CommandDefaults struct {
	OutputStyle  string
	SystemPrompt string
}

// UnmarshalYAML enforces the output-style/system-prompt exclusivity at
// construction time.
func (d *CommandDefaults) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		OutputStyle  string `yaml:"output-style"`
		SystemPrompt string `yaml:"system-prompt"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.OutputStyle != "" && raw.SystemPrompt != "" {
		return &SchemaViolationError{
			Field:  "command-defaults",
			Reason: "output-style and system-prompt are mutually exclusive",
		}
	}
	d.OutputStyle = raw.OutputStyle
	d.SystemPrompt = raw.SystemPrompt
	return nil
}

// Parse decodes an environment-configuration document.
func Parse(data []byte) (*EnvironmentConfig, error) {
	var cfg EnvironmentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment config: %w", err)
	}
	return &cfg, nil
}

// Load reads and decodes an environment-configuration file.
func Load(path string) (*EnvironmentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
