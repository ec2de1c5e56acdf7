package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wricardo/monster-chase/game/engine"
)

var (
	ErrSettingsNotFound = errors.New("settings file not found")
	ErrInvalidSettings  = errors.New("invalid settings")
)

const (
	MaxRevealDelay = 10 * time.Second

	ClearAuto   = "auto"
	ClearAlways = "always"
	ClearNever  = "never"

	FormatText = "text"
	FormatJSON = "json"
)

// Duration is a time.Duration encoded as a Go duration string ("1s", "750ms")
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a string like \"1s\": %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Settings holds every runtime option of the game
type Settings struct {
	RevealDelay  Duration `json:"reveal_delay"`
	Theme        string   `json:"theme"`
	Seed         uint64   `json:"seed"` // 0 draws a time-based seed
	LogLevel     string   `json:"log_level"`
	LogFormat    string   `json:"log_format"`
	ClearScreen  string   `json:"clear_screen"`
	SpectateAddr string   `json:"spectate_addr,omitempty"` // empty disables spectators
	Ngrok        bool     `json:"ngrok"`
	NgrokDomain  string   `json:"ngrok_domain,omitempty"`
}

// Default returns the built-in settings
func Default() *Settings {
	return &Settings{
		RevealDelay: Duration(time.Second),
		Theme:       string(engine.ThemeEmoji),
		LogLevel:    logrus.WarnLevel.String(),
		LogFormat:   FormatText,
		ClearScreen: ClearAuto,
	}
}

// Delay returns the reveal delay as a time.Duration
func (s *Settings) Delay() time.Duration {
	return time.Duration(s.RevealDelay)
}

// GlyphTheme returns the validated glyph theme
func (s *Settings) GlyphTheme() engine.GlyphTheme {
	theme, err := engine.ParseTheme(s.Theme)
	if err != nil {
		return engine.ThemeEmoji
	}
	return theme
}

// Validate checks every field for correctness
func Validate(s *Settings) error {
	if s == nil {
		return fmt.Errorf("%w: settings cannot be nil", ErrInvalidSettings)
	}

	if d := s.Delay(); d < 0 || d > MaxRevealDelay {
		return fmt.Errorf("%w: reveal_delay must be between 0 and %s, got %s", ErrInvalidSettings, MaxRevealDelay, d)
	}
	if _, err := engine.ParseTheme(s.Theme); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if _, err := logrus.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidSettings, err)
	}

	switch strings.ToLower(s.LogFormat) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: log_format must be %q or %q, got %q", ErrInvalidSettings, FormatText, FormatJSON, s.LogFormat)
	}

	switch s.ClearScreen {
	case ClearAuto, ClearAlways, ClearNever:
	default:
		return fmt.Errorf("%w: clear_screen must be one of auto, always, never, got %q", ErrInvalidSettings, s.ClearScreen)
	}

	if s.SpectateAddr != "" {
		if _, _, err := net.SplitHostPort(s.SpectateAddr); err != nil {
			return fmt.Errorf("%w: spectate_addr: %v", ErrInvalidSettings, err)
		}
	}
	if s.Ngrok && s.SpectateAddr == "" {
		return fmt.Errorf("%w: ngrok requires spectate_addr", ErrInvalidSettings)
	}

	return nil
}

// Load reads a settings file over the defaults and validates the result
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSettingsNotFound, path)
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := Default()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(settings); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidSettings, path, err)
	}

	if err := Validate(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Save validates and writes settings as indented JSON
func Save(path string, s *Settings) error {
	if err := Validate(s); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
