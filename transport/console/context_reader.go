package console

import (
	"context"
	"io"
)

type lineResult struct {
	line string
	err  error
}

// ContextReader reads lines on a background goroutine so a pending read is
// abandoned when ctx is done. Input is only consumed when ReadLine asks for
// it. A ContextReader has a single consumer.
type ContextReader struct {
	ctx   context.Context
	next  chan struct{}
	lines chan lineResult
	err   error
}

func NewContextReader(ctx context.Context, r io.Reader) *ContextReader {
	c := &ContextReader{
		ctx:   ctx,
		next:  make(chan struct{}),
		lines: make(chan lineResult),
	}
	go c.loop(NewLineReader(r))
	return c
}

func (c *ContextReader) loop(lr *LineReader) {
	for {
		select {
		case <-c.next:
		case <-c.ctx.Done():
			return
		}

		line, err := lr.ReadLine()
		select {
		case c.lines <- lineResult{line: line, err: err}:
		case <-c.ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}

// ReadLine returns the next line, the reader's terminal error, or ctx.Err()
func (c *ContextReader) ReadLine() (string, error) {
	if c.err != nil {
		return "", c.err
	}

	select {
	case c.next <- struct{}{}:
	case <-c.ctx.Done():
		return "", c.ctx.Err()
	}

	select {
	case res := <-c.lines:
		if res.err != nil {
			c.err = res.err
		}
		return res.line, res.err
	case <-c.ctx.Done():
		return "", c.ctx.Err()
	}
}
