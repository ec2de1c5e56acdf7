// Package config provides settings management for Monster Chase.
//
// The config package handles:
//   - Default settings
//   - Loading settings from a JSON file
//   - Validation of every field
//   - Writing settings back to disk
//
// Settings Format:
//
// Settings files are JSON objects. Every field is optional; missing fields
// keep their defaults:
//
//	{
//	  "reveal_delay": "1s",
//	  "theme": "emoji",
//	  "seed": 0,
//	  "log_level": "warn",
//	  "log_format": "text",
//	  "clear_screen": "auto",
//	  "spectate_addr": "127.0.0.1:8080",
//	  "ngrok": false
//	}
//
// The grid size is not a setting. It is fixed at compile time.
//
// Usage:
//
//	settings, err := config.Load("monster-chase.json")
//	if errors.Is(err, config.ErrSettingsNotFound) {
//		settings = config.Default()
//	}
//
// Command-line flags and MONSTER_CHASE_* environment variables override file
// values; see the root command.
package config
