package console

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestLineReader(t *testing.T) {
	r := NewLineReader(strings.NewReader("dd\r\n\nwasd\npartial"))

	for _, want := range []string{"dd", "", "wasd", "partial"} {
		got, err := r.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine failed: %v", err)
		}
		if got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}

	if _, err := r.ReadLine(); !errors.Is(err, io.EOF) {
		t.Errorf("Expected io.EOF, got %v", err)
	}
}

func TestLineReader_Empty(t *testing.T) {
	r := NewLineReader(strings.NewReader(""))
	if _, err := r.ReadLine(); !errors.Is(err, io.EOF) {
		t.Errorf("Expected io.EOF, got %v", err)
	}
}

func TestContextReader(t *testing.T) {
	r := NewContextReader(context.Background(), strings.NewReader("ddw\nsa\n"))

	for _, want := range []string{"ddw", "sa"} {
		got, err := r.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine failed: %v", err)
		}
		if got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}

	for i := 0; i < 2; i++ {
		if _, err := r.ReadLine(); !errors.Is(err, io.EOF) {
			t.Errorf("Expected sticky io.EOF, got %v", err)
		}
	}
}

func TestContextReader_Cancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	r := NewContextReader(ctx, pr)

	done := make(chan error, 1)
	go func() {
		_, err := r.ReadLine()
		done <- err
	}()

	// The pipe never delivers a line; only cancellation can end the read
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("ReadLine did not return after cancellation")
	}
}
