package engine

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGridConstants(t *testing.T) {
	if Rows != 6 || Cols != 6 {
		t.Errorf("Expected a 6x6 grid, got %dx%d", Rows, Cols)
	}
}

func TestCellStrings(t *testing.T) {
	tests := []struct {
		cell     Cell
		expected string
	}{
		{Empty, "empty"},
		{Monster, "monster"},
		{Target, "target"},
		{Footprint, "footprint"},
		{Cell(9), "cell(9)"},
	}

	for _, test := range tests {
		if test.cell.String() != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, test.cell.String())
		}
	}
}

func TestGlyph_Total(t *testing.T) {
	cells := []Cell{Empty, Monster, Target, Footprint, Cell(-1), Cell(99)}

	for _, theme := range []GlyphTheme{ThemeEmoji, ThemeASCII, GlyphTheme("unknown")} {
		seen := make(map[string]bool)
		for _, cell := range cells {
			glyph := Glyph(cell, theme)
			if glyph == "" {
				t.Errorf("Theme %s: empty glyph for %s", theme, cell)
			}
			if cell >= Empty && cell <= Footprint {
				if seen[glyph] {
					t.Errorf("Theme %s: glyph %q used twice", theme, glyph)
				}
				seen[glyph] = true
			}
		}
	}
}

func TestGlyph_EmojiSet(t *testing.T) {
	expected := map[Cell]string{
		Monster:   "🐸",
		Target:    "🍎",
		Footprint: "🐾",
		Empty:     "⚪",
	}
	for cell, glyph := range expected {
		if got := Glyph(cell, ThemeEmoji); got != glyph {
			t.Errorf("Glyph(%s): expected %q, got %q", cell, glyph, got)
		}
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		input    string
		expected GlyphTheme
		wantErr  bool
	}{
		{"emoji", ThemeEmoji, false},
		{"ascii", ThemeASCII, false},
		{"", ThemeEmoji, false},
		{"neon", "", true},
	}

	for _, test := range tests {
		theme, err := ParseTheme(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseTheme(%q): unexpected error state %v", test.input, err)
			continue
		}
		if theme != test.expected {
			t.Errorf("ParseTheme(%q): expected %q, got %q", test.input, test.expected, theme)
		}
	}
}

func TestPositionString(t *testing.T) {
	if got := (Position{Row: 2, Col: 5}).String(); got != "(2,5)" {
		t.Errorf("Expected (2,5), got %s", got)
	}
}

func TestTurnResultJSON(t *testing.T) {
	next := Position{Row: 1, Col: 1}
	result := TurnResult{
		Number:    1,
		Path:      "d",
		Outcome:   OutcomeCapture,
		NewTarget: &next,
		Score:     1,
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Failed to marshal turn: %v", err)
	}
	if !strings.Contains(string(data), `"outcome":"capture"`) {
		t.Errorf("Expected outcome in JSON, got %s", data)
	}
	if !strings.Contains(string(data), `"new_target":{"row":1,"col":1}`) {
		t.Errorf("Expected new target in JSON, got %s", data)
	}

	board, err := json.Marshal(Board{Phase: GameOver})
	if err != nil {
		t.Fatalf("Failed to marshal board: %v", err)
	}
	if !strings.Contains(string(board), `"phase":"game_over"`) {
		t.Errorf("Expected phase name in JSON, got %s", board)
	}
}

func TestPhaseUnmarshalText(t *testing.T) {
	var board Board
	if err := json.Unmarshal([]byte(`{"phase":"awaiting_input"}`), &board); err != nil {
		t.Fatalf("Failed to unmarshal board: %v", err)
	}
	if board.Phase != AwaitingInput {
		t.Errorf("Expected awaiting_input, got %s", board.Phase)
	}

	if err := json.Unmarshal([]byte(`{"phase":"sleeping"}`), &board); err == nil {
		t.Error("Expected an error for an unknown phase")
	}
}
