package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wricardo/monster-chase/game/config"
	"github.com/wricardo/monster-chase/transport/console"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName != "Monster Chase" {
		t.Errorf("Unexpected app name %s", AppName)
	}
}

func runApp(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	app := newApp()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.Run(context.Background(), append([]string{"monster-chase"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestPlay_ClosedInputExitsCleanly(t *testing.T) {
	out, _, err := runApp(t, "", "play", "--delay", "0s", "--seed", "7", "--theme", "ascii", "--clear", "never")
	if err != nil {
		t.Fatalf("Expected clean exit on EOF, got %v", err)
	}

	if !strings.Contains(out, "SCORE: 0") {
		t.Errorf("Expected a score line, got:\n%s", out)
	}
	if !strings.Contains(out, "'w' => UP") {
		t.Errorf("Expected the key legend, got:\n%s", out)
	}
	if strings.Contains(out, console.ClearScreen) {
		t.Error("Expected no clear sequence with --clear never")
	}
	if strings.Contains(out, console.GameOverMessage) {
		t.Error("A closed input must not announce game over")
	}
}

func TestPlay_DefaultCommand(t *testing.T) {
	out, _, err := runApp(t, "", "--delay", "0s", "--theme", "ascii")
	if err != nil {
		t.Fatalf("Expected clean exit, got %v", err)
	}
	if !strings.Contains(out, "SCORE: 0") {
		t.Errorf("Expected the root command to play, got:\n%s", out)
	}
}

func TestPlay_EmptyPathEndsGame(t *testing.T) {
	// An empty path never reaches the target, which always starts apart
	out, _, err := runApp(t, "\n", "play", "--delay", "0s", "--theme", "ascii", "--clear", "never")
	if err != nil {
		t.Fatalf("Expected clean exit, got %v", err)
	}
	if !strings.Contains(out, console.GameOverMessage) {
		t.Errorf("Expected game over, got:\n%s", out)
	}
	if !strings.Contains(out, "x") {
		t.Errorf("Expected a footprint on the final board, got:\n%s", out)
	}
}

func TestPlay_InvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"theme", []string{"play", "--theme", "neon"}},
		{"clear", []string{"play", "--clear", "sometimes"}},
		{"log level", []string{"play", "--log-level", "loud"}},
		{"ngrok without spectators", []string{"play", "--ngrok"}},
		{"missing config", []string{"--config", "/non/existent/settings.json", "play"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := runApp(t, "", test.args...)
			if err == nil {
				t.Fatal("Expected a startup error")
			}
		})
	}
}

func TestConfigCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, []byte(`{"theme": "ascii", "seed": 9}`), 0644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	out, _, err := runApp(t, "", "--config", path, "config", "--delay", "2s")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}

	var settings config.Settings
	if err := json.Unmarshal([]byte(out), &settings); err != nil {
		t.Fatalf("Expected JSON settings, got %q: %v", out, err)
	}
	if settings.Theme != "ascii" || settings.Seed != 9 {
		t.Errorf("Expected file values, got %+v", settings)
	}
	if settings.Delay().String() != "2s" {
		t.Errorf("Expected the flag to override the delay, got %s", settings.Delay())
	}

	written := filepath.Join(dir, "out.json")
	if _, _, err := runApp(t, "", "--config", path, "config", "--write", written); err != nil {
		t.Fatalf("config --write failed: %v", err)
	}
	loaded, err := config.Load(written)
	if err != nil {
		t.Fatalf("Failed to load written settings: %v", err)
	}
	if loaded.Seed != 9 {
		t.Errorf("Expected seed 9 in written settings, got %d", loaded.Seed)
	}
}

func TestConfigCommand_Invalid(t *testing.T) {
	_, _, err := runApp(t, "", "config", "--theme", "neon")
	if !errors.Is(err, config.ErrInvalidSettings) {
		t.Errorf("Expected ErrInvalidSettings, got %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runApp(t, "", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, AppName+" v"+Version) {
		t.Errorf("Unexpected version output %q", out)
	}
}
