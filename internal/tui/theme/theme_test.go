package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		themeName string
		wantName  string
	}{
		{name: "load mocha theme", themeName: "mocha", wantName: "mocha"},
		{name: "load macchiato theme", themeName: "macchiato", wantName: "macchiato"},
		{name: "load frappe theme", themeName: "frappe", wantName: "frappe"},
		{name: "load latte theme", themeName: "latte", wantName: "latte"},
		{name: "load light theme", themeName: "light", wantName: "light"},
		{name: "case insensitive", themeName: " Latte ", wantName: "latte"},
		{name: "empty name defaults to mocha", themeName: "", wantName: "mocha"},
		{name: "invalid theme falls back to mocha", themeName: "nonexistent", wantName: "mocha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := Load(tt.themeName)
			if err != nil {
				t.Fatalf("Load(%q) unexpected error: %v", tt.themeName, err)
			}
			if theme.Name != tt.wantName {
				t.Errorf("Load(%q).Name = %q, want %q", tt.themeName, theme.Name, tt.wantName)
			}
		})
	}
}

func TestLoad_ThemeColors(t *testing.T) {
	for _, name := range Available() {
		theme, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%s) unexpected error: %v", name, err)
		}

		colors := map[string]string{
			"Bg":          theme.Bg,
			"BgHighlight": theme.BgHighlight,
			"BgSelection": theme.BgSelection,
			"Fg":          theme.Fg,
			"FgMuted":     theme.FgMuted,
			"Accent":      theme.Accent,
			"Block":       theme.Block,
			"Goal":        theme.Goal,
			"Current":     theme.Current,
			"Warning":     theme.Warning,
			"BaseBg":      theme.BaseBg,
			"ModalBorder": theme.ModalBorder,
			"TextPrimary": theme.TextPrimary,
			"TextMuted":   theme.TextMuted,
			"Highlight":   theme.Highlight,
		}

		for field, hex := range colors {
			if len(hex) != 7 || hex[0] != '#' {
				t.Errorf("%s: theme.%s = %q, want #rrggbb", name, field, hex)
			}
		}
	}
}

func TestLoadFrom_CustomTheme(t *testing.T) {
	dir := t.TempDir()
	content := `
bg = "#000000"
fg = "#ffffff"
accent = "#ff0000"
`
	if err := os.WriteFile(filepath.Join(dir, "mine.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("writing theme: %v", err)
	}

	theme, err := LoadFrom(dir, "mine")
	if err != nil {
		t.Fatalf("LoadFrom unexpected error: %v", err)
	}
	if theme.Name != "mine" {
		t.Errorf("Name = %q, want mine", theme.Name)
	}
	// Unset colors fall back to the accent.
	if theme.Block != "#ff0000" || theme.ModalBorder != "#ff0000" {
		t.Errorf("defaults not applied: block=%q border=%q", theme.Block, theme.ModalBorder)
	}
}

func TestLoadFrom_FallsBackToBuiltin(t *testing.T) {
	theme, err := LoadFrom(t.TempDir(), "latte")
	if err != nil {
		t.Fatalf("LoadFrom unexpected error: %v", err)
	}
	if theme.Name != "latte" {
		t.Errorf("Name = %q, want latte", theme.Name)
	}
}

func TestLoadFrom_InvalidCustomTheme(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.toml"), []byte(`accent = "#ff0000"`), 0o644); err != nil {
		t.Fatalf("writing theme: %v", err)
	}

	if _, err := LoadFrom(dir, "broken"); err == nil {
		t.Error("expected error for a theme without bg and fg")
	}
}

func TestAvailable(t *testing.T) {
	available := Available()

	expected := []string{"mocha", "macchiato", "frappe", "latte", "light"}
	if len(available) != len(expected) {
		t.Fatalf("Available() returned %d themes, want %d", len(available), len(expected))
	}
	for i, want := range expected {
		if available[i] != want {
			t.Errorf("Available()[%d] = %q, want %q", i, available[i], want)
		}
	}
}

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		name     string
		theme    string
		expected bool
	}{
		{name: "exact match", theme: "mocha", expected: true},
		{name: "case insensitive", theme: "Mocha", expected: true},
		{name: "missing theme", theme: "unknown", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAvailable(tt.theme); got != tt.expected {
				t.Errorf("IsAvailable(%q) = %t, want %t", tt.theme, got, tt.expected)
			}
		})
	}
}

func TestColor(t *testing.T) {
	hex := "#89b4fa"
	if c := Color(hex); string(c) != hex {
		t.Errorf("Color(%q) = %q, want %q", hex, string(c), hex)
	}
}
