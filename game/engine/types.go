package engine

import "fmt"

const (
	// Grid dimensions
	Rows = 6
	Cols = 6

	DefaultHistoryLimit = 256
)

// Cell represents the content of a single grid cell
type Cell int

const (
	Empty Cell = iota
	Monster
	Target
	Footprint
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Monster:
		return "monster"
	case Target:
		return "target"
	case Footprint:
		return "footprint"
	default:
		return fmt.Sprintf("cell(%d)", int(c))
	}
}

// MarshalText encodes the cell by name
func (c Cell) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Position represents row,col coordinates
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds reports whether the position lies inside the grid
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is a single-step move of the monster
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in key-legend order
var Directions = []Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Key returns the input key bound to the direction
func (d Direction) Key() rune {
	switch d {
	case Up:
		return 'w'
	case Down:
		return 's'
	case Left:
		return 'a'
	case Right:
		return 'd'
	default:
		return '?'
	}
}

// delta returns the row and column offsets of one step
func (d Direction) delta() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// Phase is the state of the game's turn cycle
type Phase int

const (
	Initializing Phase = iota
	AwaitingInput
	Resolving
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Initializing:
		return "initializing"
	case AwaitingInput:
		return "awaiting_input"
	case Resolving:
		return "resolving"
	case GameOver:
		return "game_over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// MarshalText encodes the phase by name
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	for _, candidate := range []Phase{Initializing, AwaitingInput, Resolving, GameOver} {
		if candidate.String() == string(text) {
			*p = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", text)
}

// Outcome is how a turn resolved
type Outcome string

const (
	OutcomeCapture Outcome = "capture"
	OutcomeMiss    Outcome = "miss"
)

// PathReport summarizes how an input line was applied
type PathReport struct {
	Steps        int                        `json:"steps"`   // moves that changed the position
	Blocked      int                        `json:"blocked"` // moves dropped at the grid edge
	Unrecognized []UnrecognizedCommandError `json:"unrecognized,omitempty"`
}

// TurnResult records one resolved turn
type TurnResult struct {
	Number       int       `json:"number"`
	Path         string    `json:"path"`
	Outcome      Outcome   `json:"outcome"`
	Origin       Position  `json:"origin"`
	Final        Position  `json:"final"`
	Target       Position  `json:"target"`
	NewTarget    *Position `json:"new_target,omitempty"` // set on capture
	Score        int       `json:"score"`
	Steps        int       `json:"steps"`
	Blocked      int       `json:"blocked"`
	Unrecognized int       `json:"unrecognized"`
}

// Board is a glyph-resolved view of the grid ready for display
type Board struct {
	Rows   [][]string `json:"rows"`
	Score  int        `json:"score"`
	Hidden bool       `json:"hidden"`
	Phase  Phase      `json:"phase"`
}
