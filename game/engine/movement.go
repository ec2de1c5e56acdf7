package engine

import "strings"

// ParseDirection maps an input key to a direction
func ParseDirection(key rune) (Direction, bool) {
	switch key {
	case 'w':
		return Up, true
	case 's':
		return Down, true
	case 'a':
		return Left, true
	case 'd':
		return Right, true
	default:
		return 0, false
	}
}

// CanMove checks if the monster can step in the given direction without
// leaving the grid
func (e *GameEngine) CanMove(d Direction) bool {
	switch d {
	case Up:
		return e.monster.Row > 0
	case Down:
		return e.monster.Row < Rows-1
	case Left:
		return e.monster.Col > 0
	case Right:
		return e.monster.Col < Cols-1
	default:
		return false
	}
}

// GetPossibleMoves returns all directions the monster can step in
func (e *GameEngine) GetPossibleMoves() []Direction {
	var possible []Direction
	for _, d := range Directions {
		if e.CanMove(d) {
			possible = append(possible, d)
		}
	}
	return possible
}

// Move steps the monster one cell. Only the position changes; the grid is
// reconciled when the turn resolves. A blocked move is dropped and reports
// false.
func (e *GameEngine) Move(d Direction) bool {
	if e.phase == GameOver || !e.CanMove(d) {
		return false
	}

	dr, dc := d.delta()
	e.monster.Row += dr
	e.monster.Col += dc
	return true
}

// ApplyPath trims the line and applies each character as a move.
// Unrecognized characters are reported and skipped.
func (e *GameEngine) ApplyPath(line string) (PathReport, error) {
	var report PathReport
	if e.phase == GameOver {
		return report, ErrGameOver
	}

	for i, key := range []rune(strings.TrimSpace(line)) {
		d, ok := ParseDirection(key)
		if !ok {
			report.Unrecognized = append(report.Unrecognized, UnrecognizedCommandError{Char: key, Index: i})
			continue
		}
		if e.Move(d) {
			report.Steps++
		} else {
			report.Blocked++
		}
	}

	e.phase = Resolving
	return report, nil
}
