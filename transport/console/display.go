package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/wricardo/monster-chase/game/engine"
	"golang.org/x/term"
)

// ClearScreen moves the cursor home after erasing the screen
const ClearScreen = "\x1B[2J\x1B[1;1H"

const GameOverMessage = "GAME OVER :("

// ClearMode decides when the screen is erased before a frame
type ClearMode string

const (
	ClearAuto   ClearMode = "auto"
	ClearAlways ClearMode = "always"
	ClearNever  ClearMode = "never"
)

// Display renders boards as text. It is not safe for concurrent use.
type Display struct {
	out   io.Writer
	clear bool
}

// NewDisplay creates a display on out. ClearAuto clears only when out is a
// terminal.
func NewDisplay(out io.Writer, mode ClearMode) *Display {
	d := &Display{out: out}
	switch mode {
	case ClearAlways:
		d.clear = true
	case ClearNever:
		d.clear = false
	default:
		d.clear = isTerminal(out)
	}
	return d
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Render draws the board followed by the score line
func (d *Display) Render(board engine.Board) error {
	var b strings.Builder
	if d.clear {
		b.WriteString(ClearScreen)
	}
	b.WriteString(FormatBoard(board))
	fmt.Fprintf(&b, "SCORE: %d\n", board.Score)

	_, err := io.WriteString(d.out, b.String())
	return err
}

func (d *Display) Prompt(text string) error {
	_, err := fmt.Fprintln(d.out, text)
	return err
}

func (d *Display) Warn(text string) error {
	_, err := fmt.Fprintln(d.out, text)
	return err
}

func (d *Display) GameOver(score int) error {
	_, err := fmt.Fprintln(d.out, GameOverMessage)
	return err
}

// FormatBoard lays out the board as one line per row with every glyph padded
// to the widest glyph so emoji and ASCII columns line up.
func FormatBoard(board engine.Board) string {
	width := 1
	for _, row := range board.Rows {
		for _, glyph := range row {
			if w := runewidth.StringWidth(glyph); w > width {
				width = w
			}
		}
	}

	var b strings.Builder
	for _, row := range board.Rows {
		for _, glyph := range row {
			b.WriteByte(' ')
			b.WriteString(runewidth.FillRight(glyph, width))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
