package game

// Director is a computer player driving a game through its public command
// surface. Directors are stepped synchronously by whoever owns the game
// loop.
type Director interface {
	// Init hands the director the game it will play.
	Init(*Game)

	// Act performs a single step of actions. It returns false once the
	// director has nothing further to do (usually because the game
	// reached a terminal state).
	Act() bool
}
