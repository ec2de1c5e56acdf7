package engine

import "fmt"

// Grid is the fixed-size playing field, indexed [row][col]
type Grid [Rows][Cols]Cell

// At returns the cell at p
func (g *Grid) At(p Position) (Cell, error) {
	if !p.InBounds() {
		return Empty, fmt.Errorf("%w: %s outside %dx%d grid", ErrOutOfBounds, p, Rows, Cols)
	}
	return g[p.Row][p.Col], nil
}

func (g *Grid) set(p Position, c Cell) {
	if !p.InBounds() {
		panic(fmt.Sprintf("engine: write to %s outside %dx%d grid", p, Rows, Cols))
	}
	g[p.Row][p.Col] = c
}

// Count counts the cells holding c
func (g *Grid) Count(c Cell) int {
	count := 0
	for _, row := range g {
		for _, cell := range row {
			if cell == c {
				count++
			}
		}
	}
	return count
}

// Find returns the position of the first cell holding c in row-major order
func (g *Grid) Find(c Cell) (Position, bool) {
	for y, row := range g {
		for x, cell := range row {
			if cell == c {
				return Position{Row: y, Col: x}, true
			}
		}
	}
	return Position{}, false
}

// EmptyCells lists every Empty cell in row-major order
func (g *Grid) EmptyCells() []Position {
	var cells []Position
	for y, row := range g {
		for x, cell := range row {
			if cell == Empty {
				cells = append(cells, Position{Row: y, Col: x})
			}
		}
	}
	return cells
}

// pickEmpty chooses one Empty cell uniformly at random. The scan runs fresh
// on every call.
func pickEmpty(g *Grid, rng Rand) (Position, error) {
	cells := g.EmptyCells()
	if len(cells) == 0 {
		return Position{}, ErrGridFull
	}
	return cells[rng.Intn(len(cells))], nil
}
