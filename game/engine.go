package game

import (
	"fmt"
	"math/rand"

	"github.com/sweeplab/minefield/util/collections"
)

// Status is the aggregate game state. It is derived from board contents on
// every query and never stored, so it cannot drift from the cells it
// summarizes.
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

func (status Status) String() string {
	switch status {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in progress"
	}
}

// Config carries the parameters for a new game.
type Config struct {
	Rows, Cols int

	// NumMines < 0 means "use the default density" (15% of cells).
	NumMines int

	// Seed for mine placement; 0 leaves placement to the global rand
	// source.
	Seed int64
}

// NewConfig returns the classic beginner setup.
func NewConfig() Config {
	return Config{
		Rows:     9,
		Cols:     9,
		NumMines: -1,
	}
}

func (config Config) numMines() int {
	if config.NumMines < 0 {
		return DefaultNumMines(config.Rows, config.Cols)
	}
	return config.NumMines
}

// Game is the façade the presentation layer talks to: it owns one board,
// sequences player commands, and answers status queries. One Game serves
// one player from one goroutine; concurrent callers must wrap it in their
// own locking.
type Game struct {
	board *Board
}

// New creates a game from config. It fails with ErrInvalidDimensions when
// the grid or mine count is unusable.
func New(config Config) (*Game, error) {
	var rng *rand.Rand
	if config.Seed != 0 {
		rng = rand.New(rand.NewSource(config.Seed))
	}

	board, err := NewBoard(config.Rows, config.Cols, config.numMines(), rng)
	if err != nil {
		return nil, err
	}
	return &Game{board: board}, nil
}

// Restore wraps an already-built board in a game, used when loading
// snapshots.
func Restore(board *Board) *Game {
	return &Game{board: board}
}

// Status derives the aggregate state from the board. Loss wins ties: a
// board that is somehow both misflagged-out and fully flagged reads as
// lost.
func (game *Game) Status() Status {
	switch {
	case game.IsLost():
		return Lost
	case game.IsWon():
		return Won
	default:
		return InProgress
	}
}

// terminal reports whether mutating commands should be rejected. A
// zero-mine board is born vacuously won and still accepts reveals, so the
// player can uncover the (harmless) grid.
func (game *Game) terminal() bool {
	if game.IsLost() {
		return true
	}
	return game.board.totalMines > 0 && game.IsWon()
}

// Reveal executes the player's reveal command at (row, col), cascading
// through lone-cell regions. After a terminal state is reached further
// reveals fail with ErrGameOver.
func (game *Game) Reveal(row, col int) error {
	if err := game.checkCommand(row, col); err != nil {
		return err
	}
	game.board.reveal(row, col)
	return nil
}

// ToggleFlag flags or unflags the cell at (row, col). An exhausted flag
// pool is reported ahead of terminal-state rejection, since a full pool is
// by itself what ended the game.
func (game *Game) ToggleFlag(row, col int) error {
	if !game.board.inBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfBounds, row, col, game.board.rows, game.board.cols)
	}
	if game.board.cells[game.board.index(row, col)].IsHidden() && game.board.RemainingFlags() == 0 {
		return ErrNoFlagsRemaining
	}
	if game.terminal() {
		return fmt.Errorf("%w: %s", ErrGameOver, game.Status())
	}
	return game.board.toggleFlag(row, col)
}

// ToggleQuestion marks or unmarks the cell at (row, col) with a question.
func (game *Game) ToggleQuestion(row, col int) error {
	if err := game.checkCommand(row, col); err != nil {
		return err
	}
	game.board.toggleQuestion(row, col)
	return nil
}

func (game *Game) checkCommand(row, col int) error {
	if !game.board.inBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfBounds, row, col, game.board.rows, game.board.cols)
	}
	if game.terminal() {
		return fmt.Errorf("%w: %s", ErrGameOver, game.Status())
	}
	return nil
}

// IsWon reports whether the flagged-cell set exactly equals the mine set:
// every mine flagged, and nothing else. Flagging all mines plus one extra
// cell does not count.
func (game *Game) IsWon() bool {
	mines := make(collections.Set[int])
	flags := make(collections.Set[int])
	for idx, cell := range game.board.cells {
		if cell.IsMined() {
			mines.Add(idx)
		}
		if cell.IsFlagged() {
			flags.Add(idx)
		}
	}
	return mines.Equal(flags)
}

// IsLost reports whether the game is lost: a mine has been revealed, or
// the flag pool is exhausted with at least one flag sitting on an empty
// cell (a guaranteed-wrong placement, judged lazily at query time).
func (game *Game) IsLost() bool {
	misflagged := false
	for _, cell := range game.board.cells {
		if cell.IsMined() && cell.IsRevealed() {
			return true
		}
		if cell.IsFlagged() && !cell.IsMined() {
			misflagged = true
		}
	}
	return misflagged && game.board.RemainingFlags() == 0
}

func (game *Game) Rows() int {
	return game.board.rows
}

func (game *Game) Cols() int {
	return game.board.cols
}

func (game *Game) TotalMines() int {
	return game.board.totalMines
}

func (game *Game) RemainingFlags() int {
	return game.board.RemainingFlags()
}

// CellAt exposes a read-only copy of a single cell, giving the
// presentation layer the per-cell predicates without any way to mutate
// board state.
func (game *Game) CellAt(row, col int) (Cell, error) {
	return game.board.CellAt(row, col)
}
