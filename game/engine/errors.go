package engine

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds      = errors.New("position out of bounds")
	ErrPositionsOverlap = errors.New("monster and target share a cell")
	ErrGridFull         = errors.New("no empty cell left for the target")
	ErrGameOver         = errors.New("game is over")
	ErrInvalidOrigin    = errors.New("origin does not hold the monster")
)

// UnrecognizedCommandError reports an input character that maps to no direction.
// It is a warning: the rest of the path is still applied.
type UnrecognizedCommandError struct {
	Char  rune `json:"char"`
	Index int  `json:"index"`
}

func (e UnrecognizedCommandError) Error() string {
	return fmt.Sprintf("unrecognized command %q at index %d", e.Char, e.Index)
}
