package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweeplab/minefield/game"
)

func restoreGame(t *testing.T, serialized string) *game.Game {
	t.Helper()
	board, err := (&game.BoardSnapshot{SerializedBoard: serialized}).Restore(false)
	require.NoError(t, err)
	return game.Restore(board)
}

func TestDirectorFlagsCertainMine(t *testing.T) {
	// Lone mine in a corner. Revealing the opposite corner floods every
	// empty cell, leaving the mine as the only hidden cell; each numbered
	// neighbor then pins it exactly.
	g := restoreGame(t, "O##\n###\n###")
	require.NoError(t, g.Reveal(2, 2))

	director := NewDirector(nil)
	director.Init(g)

	assert.True(t, director.Act())
	assert.Equal(t, game.Won, g.Status(), "flagging the only mine wins")
	assert.False(t, director.Act(), "no moves after the game ends")
}

func TestDirectorRevealsCellsClearedByFlags(t *testing.T) {
	// Two mines. With the left mine flagged and (1, 0) revealed showing 1,
	// every other neighbor of (1, 0) is provably safe.
	g := restoreGame(t, "O#O\n###\n###")
	require.NoError(t, g.ToggleFlag(0, 0))
	require.NoError(t, g.Reveal(1, 0))

	director := NewDirector(nil)
	director.Init(g)
	assert.True(t, director.Act())

	for _, coord := range []game.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 0}, {Row: 2, Col: 1}} {
		cell, err := g.CellAt(coord.Row, coord.Col)
		require.NoError(t, err)
		assert.True(t, cell.IsRevealed(), "%v should be deduced safe", coord)
	}

	// The same pass keeps deducing off the newly revealed numbers: the
	// remaining mine gets pinned and flagged, which wins the game.
	otherMine, err := g.CellAt(0, 2)
	require.NoError(t, err)
	assert.True(t, otherMine.IsFlagged())
	assert.Equal(t, game.Won, g.Status())
}

func TestDirectorGuessesWhenNothingIsCertain(t *testing.T) {
	g := restoreGame(t, "O##\n###\n###")

	director := NewDirector(nil)
	director.Init(g)

	// Fresh board, nothing revealed: the only option is a guess, which
	// must still count as a move.
	assert.True(t, director.Act())
}
