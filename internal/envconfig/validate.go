package envconfig

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// modelAliases are the short model names the assistant accepts. Anything
// else must be a full claude- model identifier.
var modelAliases = map[string]bool{
	"default":    true,
	"sonnet":     true,
	"opus":       true,
	"haiku":      true,
	"sonnet[1m]": true,
	"opusplan":   true,
}

var commandNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// permissionModes are the assistant's permission defaultMode values.
var permissionModes = map[string]bool{
	"default":           true,
	"acceptEdits":       true,
	"plan":              true,
	"bypassPermissions": true,
}

// Validate runs the semantic checks that the YAML shape alone cannot
// enforce. It returns every problem found, not just the first.
func (c *EnvironmentConfig) Validate() []error {
	var errs []error

	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, &SchemaViolationError{Field: "name", Reason: "environment name is required"})
	}

	if c.CommandName != "" {
		if !commandNamePattern.MatchString(c.CommandName) {
			errs = append(errs, &SchemaViolationError{
				Field:  "command-name",
				Reason: "must contain only alphanumeric characters, hyphens, and underscores",
			})
		} else if !strings.HasPrefix(c.CommandName, "claude-") {
			errs = append(errs, &SchemaViolationError{
				Field:  "command-name",
				Reason: "should start with 'claude-' for consistency",
			})
		}
	}

	// command-name and command-defaults travel together.
	switch {
	case c.CommandName != "" && c.CommandDefaults == nil:
		errs = append(errs, &SchemaViolationError{
			Field:  "command-name",
			Reason: "requires command-defaults; provide both or omit both",
		})
	case c.CommandName == "" && c.CommandDefaults != nil:
		errs = append(errs, &SchemaViolationError{
			Field:  "command-defaults",
			Reason: "requires command-name; provide both or omit both",
		})
	}

	if c.BaseURL != "" && !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		errs = append(errs, &SchemaViolationError{
			Field:  "base-url",
			Reason: "must start with http:// or https://",
		})
	}

	if c.Model != "" && !modelAliases[c.Model] && !strings.HasPrefix(c.Model, "claude-") {
		errs = append(errs, &SchemaViolationError{
			Field:  "model",
			Reason: fmt.Sprintf("%q is not a known alias or claude- model name", c.Model),
		})
	}

	if c.ClaudeCodeVersion != "" {
		if _, err := semver.StrictNewVersion(c.ClaudeCodeVersion); err != nil {
			errs = append(errs, &SchemaViolationError{
				Field:  "claude-code-version",
				Reason: fmt.Sprintf("%q is not a valid semantic version (e.g. 1.0.128, 2.0.0-beta.1)", c.ClaudeCodeVersion),
			})
		}
	}

	if c.Permissions != nil && c.Permissions.DefaultMode != "" && !permissionModes[c.Permissions.DefaultMode] {
		errs = append(errs, &SchemaViolationError{
			Field:  "permissions.defaultMode",
			Reason: fmt.Sprintf("%q is not a valid mode (valid: default, acceptEdits, plan, bypassPermissions)", c.Permissions.DefaultMode),
		})
	}

	if c.Hooks != nil {
		for i, event := range c.Hooks.Events {
			field := fmt.Sprintf("hooks.events[%d]", i)
			if event.Event == "" {
				errs = append(errs, &SchemaViolationError{Field: field, Reason: "event name is required"})
			}
			if event.Command == "" {
				errs = append(errs, &SchemaViolationError{Field: field, Reason: "command is required"})
			}
			if event.Type != "" && event.Type != "command" {
				errs = append(errs, &SchemaViolationError{
					Field:  field,
					Reason: fmt.Sprintf("unknown hook type %q (only \"command\" is supported)", event.Type),
				})
			}
		}
	}

	return errs
}
