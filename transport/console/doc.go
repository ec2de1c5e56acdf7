// Package console is the terminal front end of Monster Chase.
//
// Display draws boards on an io.Writer, clearing the screen between frames
// when the writer is a terminal. LineReader turns an io.Reader into the line
// source a session reads paths from.
//
// Usage:
//
//	display := console.NewDisplay(os.Stdout, console.ClearAuto)
//	input := console.NewLineReader(os.Stdin)
//	sess := session.New(eng, display, input)
package console
