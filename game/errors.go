package game

import "errors"

var (
	// ErrInvalidDimensions is returned when a board is constructed with a
	// non-positive number of rows or columns, or a mine count that does not
	// fit the grid.
	ErrInvalidDimensions = errors.New("invalid board dimensions")

	// ErrOutOfBounds is returned by any coordinate-taking operation given
	// indices outside the grid. The board is left untouched.
	ErrOutOfBounds = errors.New("coordinates out of bounds")

	// ErrNoFlagsRemaining is returned when flagging a hidden cell while the
	// flag pool is exhausted. Unflagging always succeeds.
	ErrNoFlagsRemaining = errors.New("no flags remaining")

	// ErrGameOver is returned by mutating commands once the game is won or
	// lost. The caller should start a new game.
	ErrGameOver = errors.New("game is over")
)
