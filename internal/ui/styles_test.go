package ui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestKeyValueAlignment(t *testing.T) {
	// Force a color profile so the styled label actually carries ANSI
	// escapes, the way an interactive terminal sees it.
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	orig := Muted
	Muted = Muted.Renderer(r)
	defer func() { Muted = orig }()

	rows := []struct {
		key   string
		value string
	}{
		{"Model", "sonnet"},
		{"Permissions", "acceptEdits"},
		{"Base URL", "https://host/envs"},
	}

	column := -1
	for _, row := range rows {
		line := KeyValue(row.key, row.value)
		idx := strings.LastIndex(line, row.value)
		if idx < 0 {
			t.Fatalf("KeyValue(%q, %q) = %q, value missing", row.key, row.value, line)
		}
		width := lipgloss.Width(line[:idx])
		if column == -1 {
			column = width
		} else if width != column {
			t.Errorf("KeyValue(%q, ...) puts the value at column %d, want %d", row.key, width, column)
		}
	}
}

func TestKeyValuePlain(t *testing.T) {
	got := KeyValue("Model", "sonnet")
	if !strings.Contains(got, "Model:") || !strings.Contains(got, "sonnet") {
		t.Errorf("KeyValue() = %q, want key and value present", got)
	}
}
