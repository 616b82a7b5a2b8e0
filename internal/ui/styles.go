// Package ui holds the terminal styling for vellum. Everything degrades
// to plain text when stdout is not a TTY, so CI logs stay readable.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// IsTTY indicates whether stdout is an interactive terminal.
var IsTTY = term.IsTerminal(os.Stdout.Fd())

// Palette: ink on vellum.
var (
	Ink       = lipgloss.Color("#2B2118") // iron-gall ink
	Oxblood   = lipgloss.Color("#7C2D12") // deep red leather
	Vermilion = lipgloss.Color("#E2543E") // rubric red
	Gilt      = lipgloss.Color("#D9A441") // gold leaf
	Verdigris = lipgloss.Color("#4C9A82") // aged copper green
	Woad      = lipgloss.Color("#4A7BA6") // blue dye
	Iris      = lipgloss.Color("#8B6FB8") // violet
	Slate     = lipgloss.Color("#8A8578")
	Faint     = lipgloss.Color("#5C584E")
	White     = lipgloss.Color("#FDFDFB")
)

// Text styles.
var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Gilt)
	Subtitle = lipgloss.NewStyle().Bold(true).Foreground(Verdigris)
	Success  = lipgloss.NewStyle().Foreground(Verdigris)
	Error    = lipgloss.NewStyle().Foreground(Vermilion).Bold(true)
	Warning  = lipgloss.NewStyle().Foreground(Gilt)
	Info     = lipgloss.NewStyle().Foreground(Woad)
	Muted    = lipgloss.NewStyle().Foreground(Slate)
	Dim      = lipgloss.NewStyle().Foreground(Faint)
	Code     = lipgloss.NewStyle().Foreground(Iris)
)

var baseBadge = lipgloss.NewStyle().Padding(0, 1).Bold(true)

// AgentBadge marks agent file references.
func AgentBadge() string {
	if !IsTTY {
		return "[AGENT]"
	}
	return baseBadge.Background(Iris).Foreground(White).Render("◈ AGENT")
}

// CmdBadge marks slash-command references.
func CmdBadge() string {
	if !IsTTY {
		return "[CMD]"
	}
	return baseBadge.Background(Woad).Foreground(White).Render("⌘ CMD")
}

// StyleBadge marks output-style references.
func StyleBadge() string {
	if !IsTTY {
		return "[STYLE]"
	}
	return baseBadge.Background(Verdigris).Foreground(White).Render("✎ STYLE")
}

// HookBadge marks hook file references.
func HookBadge() string {
	if !IsTTY {
		return "[HOOK]"
	}
	return baseBadge.Background(Oxblood).Foreground(White).Render("⚡ HOOK")
}

// McpBadge marks MCP server entries.
func McpBadge() string {
	if !IsTTY {
		return "[MCP]"
	}
	return baseBadge.Background(Gilt).Foreground(Ink).Render("⬡ MCP")
}

// PromptBadge marks system-prompt references.
func PromptBadge() string {
	if !IsTTY {
		return "[PROMPT]"
	}
	return baseBadge.Background(Vermilion).Foreground(White).Render("✦ PROMPT")
}

// SuccessLine creates a success status line.
func SuccessLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  OK: %s", message)
	}
	return "  " + Success.Render("✓ "+message)
}

// ErrorLine creates an error status line.
func ErrorLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  ERROR: %s", message)
	}
	return "  " + Error.Render("✗ "+message)
}

// WarningLine creates a warning status line.
func WarningLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  WARN: %s", message)
	}
	return "  " + Warning.Render("! "+message)
}

// InfoLine creates an info status line.
func InfoLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  %s", message)
	}
	return "  " + Info.Render("→ "+message)
}

// SectionHeader renders a ruled section heading.
func SectionHeader(title string) string {
	if !IsTTY {
		return fmt.Sprintf("=== %s ===", title)
	}

	width := TerminalWidth()
	if width > 72 {
		width = 72
	}

	styled := Title.Render(title)
	pad := width - lipgloss.Width(title) - 4
	if pad < 0 {
		pad = 0
	}
	rule := Dim.Render(strings.Repeat("─", pad))
	return fmt.Sprintf("%s %s %s", Dim.Render("──"), styled, rule)
}

// Divider returns a horizontal rule.
func Divider(width int) string {
	return Dim.Render(strings.Repeat("─", width))
}

// KeyValue renders an aligned key/value detail line. The label is padded
// before styling so ANSI escapes do not eat the column width.
func KeyValue(key, value string) string {
	return fmt.Sprintf("  %s %s", Muted.Render(fmt.Sprintf("%-12s", key+":")), value)
}

// Logo returns the vellum wordmark for the root help screen.
func Logo() string {
	if !IsTTY {
		return "\n  VELLUM - Claude Code environment configurations\n"
	}

	lines := []struct {
		text  string
		color lipgloss.Color
	}{
		{"", Ink},
		{"   ┌──────────────────────────────────┐", Slate},
		{"   │   v e l l u m                    │", Gilt},
		{"   │   ─────────────                  │", Faint},
		{"   │   environments, inscribed        │", Verdigris},
		{"   └──────────────────────────────────┘", Slate},
		{"", Ink},
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(lipgloss.NewStyle().Foreground(line.color).Render(line.text))
		b.WriteString("\n")
	}
	return b.String()
}

// TerminalWidth returns the current terminal width, defaulting to 80.
func TerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// Render applies a style, returning plain text in non-TTY environments.
func Render(style lipgloss.Style, text string) string {
	if !IsTTY {
		return text
	}
	return style.Render(text)
}
