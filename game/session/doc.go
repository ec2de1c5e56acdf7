// Package session drives a game of Monster Chase turn by turn.
//
// A turn is:
//  1. render the full board
//  2. wait for the reveal delay
//  3. render the hidden board (every cell drawn as empty)
//  4. show the key legend and read one line of input
//  5. apply the path and resolve the turn
//
// A capture loops back to step 1. A miss renders the full board once more,
// announces the game over and ends the session. A closed input stream ends
// the session without resolving the pending turn.
//
// Collaborators:
//
// Display and InputSource are the only ways a session touches the outside
// world. The console transport implements both for a terminal; MultiDisplay
// fans renders out to additional surfaces such as the websocket spectator hub.
//
// Usage:
//
//	sess := session.New(gameEngine, console.NewDisplay(os.Stdout), console.NewLineReader(os.Stdin),
//		session.WithRevealDelay(time.Second),
//		session.WithTheme(engine.ThemeEmoji),
//	)
//	outcome, err := sess.Run(ctx)
package session
