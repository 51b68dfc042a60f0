package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scrawl.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
pen_size: 12
color: "#336699"
alpha: 0
offset_x: 4
offset_y: -2
history_limit: 50
log_level: debug
`)
	c, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if c.PenSize != 12 || c.Color != "#336699" || c.OffsetX != 4 || c.OffsetY != -2 {
		t.Errorf("config = %+v", c)
	}
	if c.Alpha == nil || *c.Alpha != 0 {
		t.Errorf("Alpha = %v, want explicit 0", c.Alpha)
	}
	if c.HistoryLimit != 50 || c.LogLevel != "debug" {
		t.Errorf("HistoryLimit, LogLevel = %d, %q", c.HistoryLimit, c.LogLevel)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	c, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if c.PenSize != defaultPenSize || c.Color != defaultColor || *c.Alpha != defaultAlpha {
		t.Errorf("defaults = %+v", c)
	}
	if c.HistoryLimit != 0 {
		t.Errorf("HistoryLimit = %d, want 0 (unbounded)", c.HistoryLimit)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "pen_size: [1, 2\n")
	if _, err := loadConfig(path); err == nil {
		t.Error("loadConfig succeeded on malformed YAML")
	}
}

func TestNewSettings(t *testing.T) {
	a := 0.3
	s := NewSettings(&Config{PenSize: 7, Color: "#abcdef", Alpha: &a, OffsetX: 1, OffsetY: 2})
	want := Settings{PenSize: 7, Color: "#abcdef", Alpha: 0.3, OffsetX: 1, OffsetY: 2}
	if *s != want {
		t.Errorf("NewSettings = %+v, want %+v", *s, want)
	}

	d := NewSettings(nil)
	if d.PenSize != defaultPenSize || d.Color != defaultColor || d.Alpha != defaultAlpha {
		t.Errorf("NewSettings(nil) = %+v", *d)
	}
}

func TestSettingsLastWriteWins(t *testing.T) {
	s := NewSettings(nil)
	s.SetColor("#111111")
	s.SetColor("#FF0000")
	s.SetAlpha(0.5)
	p := s.Paint()
	if p.R != 255 || p.G != 0 || p.B != 0 || p.A != 0.5 {
		t.Errorf("Paint() = %v", p)
	}
}

func TestParsePenSize(t *testing.T) {
	if n, err := parsePenSize(" 8 "); err != nil || n != 8 {
		t.Errorf("parsePenSize(\" 8 \") = %d, %v", n, err)
	}
	for _, in := range []string{"0", "-3", "abc", ""} {
		if _, err := parsePenSize(in); err == nil {
			t.Errorf("parsePenSize(%q) succeeded", in)
		}
	}
}

func TestParseAlpha(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0.25", 0.25},
		{"1.5", 1},
		{"-2", 0},
	}
	for _, tt := range tests {
		got, err := parseAlpha(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("parseAlpha(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
	for _, in := range []string{"NaN", "half"} {
		if _, err := parseAlpha(in); err == nil {
			t.Errorf("parseAlpha(%q) succeeded", in)
		}
	}
}

func TestParseOffset(t *testing.T) {
	if n, err := parseOffset("-12"); err != nil || n != -12 {
		t.Errorf("parseOffset(-12) = %d, %v", n, err)
	}
	if _, err := parseOffset("1.5"); err == nil {
		t.Error("parseOffset(1.5) succeeded")
	}
}
