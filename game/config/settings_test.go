package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wricardo/monster-chase/game/engine"
)

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	s := Default()

	if err := Validate(s); err != nil {
		t.Fatalf("Default settings must be valid: %v", err)
	}
	if s.Delay() != time.Second {
		t.Errorf("Expected 1s reveal delay, got %s", s.Delay())
	}
	if s.GlyphTheme() != engine.ThemeEmoji {
		t.Errorf("Expected emoji theme, got %s", s.GlyphTheme())
	}
	if s.SpectateAddr != "" || s.Ngrok {
		t.Error("Spectators must be off by default")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"negative delay", func(s *Settings) { s.RevealDelay = Duration(-time.Second) }},
		{"delay too long", func(s *Settings) { s.RevealDelay = Duration(MaxRevealDelay + time.Millisecond) }},
		{"unknown theme", func(s *Settings) { s.Theme = "neon" }},
		{"unknown log level", func(s *Settings) { s.LogLevel = "loud" }},
		{"unknown log format", func(s *Settings) { s.LogFormat = "xml" }},
		{"unknown clear mode", func(s *Settings) { s.ClearScreen = "sometimes" }},
		{"bad spectate addr", func(s *Settings) { s.SpectateAddr = "localhost" }},
		{"ngrok without spectators", func(s *Settings) { s.Ngrok = true }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := Default()
			test.modify(s)
			if err := Validate(s); !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Expected ErrInvalidSettings, got %v", err)
			}
		})
	}

	if err := Validate(nil); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("Expected ErrInvalidSettings for nil, got %v", err)
	}
}

func TestValidate_Accepts(t *testing.T) {
	s := Default()
	s.RevealDelay = 0
	s.Theme = "ascii"
	s.LogLevel = "debug"
	s.LogFormat = "json"
	s.ClearScreen = ClearNever
	s.SpectateAddr = ":8080"
	s.Ngrok = true

	if err := Validate(s); err != nil {
		t.Errorf("Expected valid settings, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeSettingsFile(t, `{"reveal_delay": "250ms", "theme": "ascii", "seed": 42}`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Delay() != 250*time.Millisecond {
		t.Errorf("Expected 250ms, got %s", s.Delay())
	}
	if s.GlyphTheme() != engine.ThemeASCII {
		t.Errorf("Expected ascii theme, got %s", s.Theme)
	}
	if s.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", s.Seed)
	}
	// Unset fields keep defaults
	if s.LogFormat != FormatText || s.ClearScreen != ClearAuto {
		t.Errorf("Expected defaults for unset fields, got %+v", s)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, ErrSettingsNotFound) {
		t.Errorf("Expected ErrSettingsNotFound, got %v", err)
	}

	tests := []struct {
		name    string
		content string
	}{
		{"invalid json", `{"theme": `},
		{"unknown field", `{"grid_size": 10}`},
		{"numeric delay", `{"reveal_delay": 1000}`},
		{"bad duration", `{"reveal_delay": "soon"}`},
		{"invalid value", `{"theme": "neon"}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeSettingsFile(t, test.content))
			if err == nil {
				t.Fatal("Expected an error")
			}
		})
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	s := Default()
	s.RevealDelay = Duration(1500 * time.Millisecond)
	s.SpectateAddr = "127.0.0.1:9000"

	if err := Save(path, s); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *s {
		t.Errorf("Expected %+v, got %+v", s, loaded)
	}

	bad := Default()
	bad.Theme = "neon"
	if err := Save(path, bad); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("Expected ErrInvalidSettings, got %v", err)
	}
}
