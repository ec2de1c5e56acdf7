package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wricardo/monster-chase/game/engine"
)

func TestPathTo(t *testing.T) {
	tests := []struct {
		from, to engine.Position
		want     string
	}{
		{engine.Position{Row: 0, Col: 0}, engine.Position{Row: 0, Col: 0}, ""},
		{engine.Position{Row: 0, Col: 0}, engine.Position{Row: 2, Col: 3}, "ssddd"},
		{engine.Position{Row: 5, Col: 5}, engine.Position{Row: 4, Col: 0}, "waaaaa"},
		{engine.Position{Row: 3, Col: 1}, engine.Position{Row: 0, Col: 2}, "wwwd"},
	}

	for _, test := range tests {
		if got := PathTo(test.from, test.to); got != test.want {
			t.Errorf("PathTo(%s, %s) = %q, want %q", test.from, test.to, got, test.want)
		}
	}
}

func TestPathTo_Captures(t *testing.T) {
	eng, err := engine.NewEngine(engine.Position{Row: 4, Col: 1}, engine.Position{Row: 1, Col: 5})
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	result, _, err := eng.PlayTurn(PathTo(eng.Monster(), eng.Target()))
	if err != nil {
		t.Fatalf("PlayTurn failed: %v", err)
	}
	if result.Outcome != engine.OutcomeCapture {
		t.Errorf("Expected capture, got %s", result.Outcome)
	}
}

func TestSimulate(t *testing.T) {
	report, err := Simulate(50, 10, 3)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	if report.Captures != 500 {
		t.Errorf("Expected 500 captures, got %d", report.Captures)
	}

	total := 0
	for _, row := range report.Counts {
		for _, n := range row {
			total += n
		}
	}
	if total != report.Captures {
		t.Errorf("Cell counts sum to %d, want %d", total, report.Captures)
	}

	// New targets never land on the monster, so the distance is at least 1
	if report.MeanDistance() < 1 {
		t.Errorf("Expected mean distance >= 1, got %.2f", report.MeanDistance())
	}

	// Deterministic for a fixed seed
	again, _ := Simulate(50, 10, 3)
	if again.Counts != report.Counts {
		t.Error("Expected identical counts for the same seed")
	}
}

func TestSimulate_InvalidArguments(t *testing.T) {
	if _, err := Simulate(0, 10, 1); err == nil {
		t.Error("Expected an error for zero games")
	}
	if _, err := Simulate(10, -1, 1); err == nil {
		t.Error("Expected an error for negative captures")
	}
}

func TestReportWrite(t *testing.T) {
	report := &Report{Games: 1, Captures: 2, TotalDistance: 6}
	report.Counts[0][0] = 1
	report.Counts[5][5] = 1

	var buf bytes.Buffer
	if err := report.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Games: 1 | Captures: 2", "50.00", "Least / most frequent cell: 0 / 1", "Mean distance to new target: 3.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output, got:\n%s", want, out)
		}
	}

	lines := strings.Split(out, "\n")
	if len(lines) < engine.Rows+3 {
		t.Errorf("Expected a %d-row grid, got:\n%s", engine.Rows, out)
	}
}
