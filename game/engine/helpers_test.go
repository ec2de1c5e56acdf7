package engine

import (
	"strings"
	"testing"
)

// sequenceRand replays fixed values and records the bounds it was asked for
type sequenceRand struct {
	values []int
	bounds []int
}

func (r *sequenceRand) Intn(n int) int {
	r.bounds = append(r.bounds, n)
	v := 0
	if len(r.values) > 0 {
		v = r.values[0]
		r.values = r.values[1:]
	}
	return v % n
}

func mustEngine(t testing.TB, monster, target Position, opts ...Option) *GameEngine {
	t.Helper()
	e, err := NewEngine(monster, target, opts...)
	if err != nil {
		t.Fatalf("NewEngine(%s, %s) failed: %v", monster, target, err)
	}
	return e
}

// pathTo builds a w/a/s/d path from one cell to another
func pathTo(from, to Position) string {
	var b strings.Builder
	for r := from.Row; r < to.Row; r++ {
		b.WriteRune('s')
	}
	for r := from.Row; r > to.Row; r-- {
		b.WriteRune('w')
	}
	for c := from.Col; c < to.Col; c++ {
		b.WriteRune('d')
	}
	for c := from.Col; c > to.Col; c-- {
		b.WriteRune('a')
	}
	return b.String()
}
