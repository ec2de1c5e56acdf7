// Command validate checks Monster Chase settings files. With no arguments it
// validates every *.json file in the current directory. It checks:
//   - JSON structure and unknown fields
//   - Duration syntax and the reveal delay range
//   - Glyph theme, log level, log format and clear-screen mode
//   - Spectator address syntax and the ngrok dependency on it
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/monster-chase/game/config"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Notes describes the effective settings; otherwise it
// holds the validation error.
type ValidationResult struct {
	File  string
	Valid bool
	Notes []string
}

func validateFile(path string) ValidationResult {
	result := ValidationResult{File: path}

	settings, err := config.Load(path)
	if err != nil {
		result.Notes = append(result.Notes, err.Error())
		return result
	}

	result.Valid = true
	result.Notes = append(result.Notes,
		fmt.Sprintf("✓ Reveal delay: %s", settings.Delay()),
		fmt.Sprintf("✓ Theme: %s", settings.GlyphTheme()),
		fmt.Sprintf("✓ Logging: %s/%s", settings.LogLevel, settings.LogFormat),
	)
	if settings.Seed != 0 {
		result.Notes = append(result.Notes, fmt.Sprintf("✓ Fixed seed: %d", settings.Seed))
	}
	if settings.SpectateAddr != "" {
		result.Notes = append(result.Notes, fmt.Sprintf("✓ Spectators on %s", settings.SpectateAddr))
	}
	return result
}

func main() {
	files := os.Args[1:]
	if len(files) == 0 {
		matches, err := filepath.Glob("*.json")
		if err != nil {
			fmt.Printf("Error finding settings files: %v\n", err)
			os.Exit(1)
		}
		files = matches
	}
	if len(files) == 0 {
		fmt.Println("No settings files found")
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateFile(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
		}
		for _, note := range result.Notes {
			fmt.Println("  " + note)
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All settings files are valid!")
	} else {
		fmt.Println("❌ Some settings files have errors")
		os.Exit(1)
	}
}
