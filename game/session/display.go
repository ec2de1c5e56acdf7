package session

import (
	"errors"

	"github.com/wricardo/monster-chase/game/engine"
)

// Display is the surface a session draws on
type Display interface {
	// Render redraws the whole board and the score line
	Render(board engine.Board) error
	// Prompt shows the key legend before input is read
	Prompt(text string) error
	// Warn reports a non-fatal input problem
	Warn(text string) error
	// GameOver announces the end of the game
	GameOver(score int) error
}

// InputSource provides one raw line of player input per call.
// A closed stream reports io.EOF.
type InputSource interface {
	ReadLine() (string, error)
}

// MultiDisplay fans every call out to several displays. All displays are
// called even when one fails; the errors are joined.
type MultiDisplay []Display

func (m MultiDisplay) Render(board engine.Board) error {
	var errs []error
	for _, d := range m {
		errs = append(errs, d.Render(board))
	}
	return errors.Join(errs...)
}

func (m MultiDisplay) Prompt(text string) error {
	var errs []error
	for _, d := range m {
		errs = append(errs, d.Prompt(text))
	}
	return errors.Join(errs...)
}

func (m MultiDisplay) Warn(text string) error {
	var errs []error
	for _, d := range m {
		errs = append(errs, d.Warn(text))
	}
	return errors.Join(errs...)
}

func (m MultiDisplay) GameOver(score int) error {
	var errs []error
	for _, d := range m {
		errs = append(errs, d.GameOver(score))
	}
	return errors.Join(errs...)
}
