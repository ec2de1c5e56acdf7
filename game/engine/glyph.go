package engine

import "fmt"

// GlyphTheme selects the symbol set used to draw cells
type GlyphTheme string

const (
	ThemeEmoji GlyphTheme = "emoji"
	ThemeASCII GlyphTheme = "ascii"
)

// ParseTheme validates a theme name
func ParseTheme(name string) (GlyphTheme, error) {
	switch GlyphTheme(name) {
	case ThemeEmoji, ThemeASCII:
		return GlyphTheme(name), nil
	case "":
		return ThemeEmoji, nil
	default:
		return "", fmt.Errorf("unknown glyph theme %q (want %q or %q)", name, ThemeEmoji, ThemeASCII)
	}
}

// Glyph returns the display symbol for a cell. Unknown themes draw with the
// emoji set and unknown cell values draw as "?".
func Glyph(c Cell, theme GlyphTheme) string {
	if theme == ThemeASCII {
		switch c {
		case Monster:
			return "M"
		case Target:
			return "T"
		case Footprint:
			return "x"
		case Empty:
			return "."
		default:
			return "?"
		}
	}

	switch c {
	case Monster:
		return "🐸"
	case Target:
		return "🍎"
	case Footprint:
		return "🐾"
	case Empty:
		return "⚪"
	default:
		return "?"
	}
}
