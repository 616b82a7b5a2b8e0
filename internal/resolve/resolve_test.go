package resolve

import (
	"errors"
	"testing"

	"github.com/kennyg/vellum/internal/envconfig"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		baseURL   string
		origin    string
		want      string
		wantErr   error
	}{
		{
			name:      "full https URL passes through",
			reference: "https://example.com/agents/x.md",
			origin:    "/home/u/env.yaml",
			want:      "https://example.com/agents/x.md",
		},
		{
			name:      "full http URL wins over base-url",
			reference: "http://example.com/a.md",
			baseURL:   "https://other.host/{path}",
			origin:    "/home/u/env.yaml",
			want:      "http://example.com/a.md",
		},
		{
			name:      "full URL wins over URL origin",
			reference: "https://example.com/a.md",
			origin:    "https://host/dir/env.yaml",
			want:      "https://example.com/a.md",
		},
		{
			name:      "base-url with placeholder",
			reference: "agents/x.md",
			baseURL:   "https://host/{path}",
			origin:    "/home/u/env.yaml",
			want:      "https://host/agents/x.md",
		},
		{
			name:      "base-url placeholder mid-URL",
			reference: "x.md",
			baseURL:   "https://host/raw/{path}?token=abc",
			origin:    "/home/u/env.yaml",
			want:      "https://host/raw/x.md?token=abc",
		},
		{
			name:      "base-url without placeholder appends",
			reference: "x.md",
			baseURL:   "https://host/base",
			origin:    "/home/u/env.yaml",
			want:      "https://host/base/x.md",
		},
		{
			name:      "base-url trailing slash not doubled",
			reference: "x.md",
			baseURL:   "https://host/base/",
			origin:    "/home/u/env.yaml",
			want:      "https://host/base/x.md",
		},
		{
			name:      "matching trailing segment is not merged",
			reference: "base/x.md",
			baseURL:   "https://host/base",
			origin:    "/home/u/env.yaml",
			want:      "https://host/base/base/x.md",
		},
		{
			name:      "URL origin resolves relatively",
			reference: "agents/x.md",
			origin:    "https://host/dir/env.yaml",
			want:      "https://host/dir/agents/x.md",
		},
		{
			name:      "URL origin with parent traversal",
			reference: "../shared/a.md",
			origin:    "https://host/a/b/env.yaml",
			want:      "https://host/a/shared/a.md",
		},
		{
			name:      "local relative path",
			reference: "agents/x.md",
			origin:    "/home/u/proj/env.yaml",
			want:      "/home/u/proj/agents/x.md",
		},
		{
			name:      "local parent traversal",
			reference: "../shared/a.md",
			origin:    "/home/u/proj/env.yaml",
			want:      "/home/u/shared/a.md",
		},
		{
			name:      "absolute path unchanged",
			reference: "/etc/prompts/a.md",
			origin:    "/home/u/env.yaml",
			want:      "/etc/prompts/a.md",
		},
		{
			name:      "windows drive path unchanged",
			reference: `C:\prompts\a.md`,
			origin:    "/home/u/env.yaml",
			want:      `C:\prompts\a.md`,
		},
		{
			name:      "empty reference",
			reference: "",
			origin:    "/home/u/env.yaml",
			wantErr:   ErrInvalidReference,
		},
		{
			name:      "whitespace reference",
			reference: "   ",
			origin:    "/home/u/env.yaml",
			wantErr:   ErrInvalidReference,
		},
		{
			name:      "empty origin for local path",
			reference: "a.md",
			origin:    "",
			wantErr:   ErrUnresolvableBase,
		},
		{
			name:      "malformed URL origin",
			reference: "a.md",
			origin:    "https://bad host/env.yaml",
			wantErr:   ErrUnresolvableBase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.reference, tt.baseURL, tt.origin)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Resolve() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("Resolve() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveHome(t *testing.T) {
	t.Setenv("HOME", "/home/scribe")

	tests := []struct {
		name      string
		reference string
		baseURL   string
		origin    string
		want      string
	}{
		{
			name:      "tilde path expands",
			reference: "~/p.md",
			origin:    "/home/u/proj/env.yaml",
			want:      "/home/scribe/p.md",
		},
		{
			name:      "expansion independent of origin directory",
			reference: "~/styles/terse.md",
			origin:    "/somewhere/else/env.yaml",
			want:      "/home/scribe/styles/terse.md",
		},
		{
			name:      "bare tilde",
			reference: "~",
			origin:    "/home/u/env.yaml",
			want:      "/home/scribe",
		},
		{
			name:      "tilde wins over base-url",
			reference: "~/p.md",
			baseURL:   "https://host/{path}",
			origin:    "/home/u/env.yaml",
			want:      "/home/scribe/p.md",
		},
		{
			name:      "named user form kept as written",
			reference: "~other/p.md",
			origin:    "/home/u/env.yaml",
			want:      "~other/p.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.reference, tt.baseURL, tt.origin)
			if err != nil {
				t.Errorf("Resolve() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfig(t *testing.T) {
	cfg := &envconfig.EnvironmentConfig{
		Name:          "test",
		Agents:        []string{"agents/reviewer.md", "https://example.com/agents/remote.md"},
		SlashCommands: []string{"commands/deploy.md"},
		OutputStyles:  []string{"styles/terse.md"},
		Hooks: &envconfig.Hooks{
			Files: []string{"hooks/guard.py"},
		},
		CommandDefaults: &envconfig.CommandDefaults{
			SystemPrompt: "prompts/system.md",
		},
	}

	locations, err := Config(cfg, "/home/u/proj/env.yaml")
	if err != nil {
		t.Fatalf("Config() error = %v", err)
	}

	want := []Location{
		{Kind: KindAgent, Reference: "agents/reviewer.md", Resolved: "/home/u/proj/agents/reviewer.md"},
		{Kind: KindAgent, Reference: "https://example.com/agents/remote.md", Resolved: "https://example.com/agents/remote.md"},
		{Kind: KindSlashCommand, Reference: "commands/deploy.md", Resolved: "/home/u/proj/commands/deploy.md"},
		{Kind: KindOutputStyle, Reference: "styles/terse.md", Resolved: "/home/u/proj/styles/terse.md"},
		{Kind: KindHook, Reference: "hooks/guard.py", Resolved: "/home/u/proj/hooks/guard.py"},
		{Kind: KindSystemPrompt, Reference: "prompts/system.md", Resolved: "/home/u/proj/prompts/system.md"},
	}

	if len(locations) != len(want) {
		t.Fatalf("Config() returned %d locations, want %d", len(locations), len(want))
	}
	for i, loc := range locations {
		if loc != want[i] {
			t.Errorf("locations[%d] = %+v, want %+v", i, loc, want[i])
		}
	}
}

func TestConfigBaseURL(t *testing.T) {
	cfg := &envconfig.EnvironmentConfig{
		Name:    "test",
		BaseURL: "https://host/envs/{path}",
		Agents:  []string{"agents/reviewer.md"},
	}

	locations, err := Config(cfg, "/home/u/env.yaml")
	if err != nil {
		t.Fatalf("Config() error = %v", err)
	}
	if len(locations) != 1 {
		t.Fatalf("Config() returned %d locations, want 1", len(locations))
	}
	if locations[0].Resolved != "https://host/envs/agents/reviewer.md" {
		t.Errorf("Resolved = %q, want %q", locations[0].Resolved, "https://host/envs/agents/reviewer.md")
	}
}

func TestConfigInvalidReference(t *testing.T) {
	cfg := &envconfig.EnvironmentConfig{
		Name:   "test",
		Agents: []string{"  "},
	}

	_, err := Config(cfg, "/home/u/env.yaml")
	if !errors.Is(err, ErrInvalidReference) {
		t.Errorf("Config() error = %v, want %v", err, ErrInvalidReference)
	}
}
