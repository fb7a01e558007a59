package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweeplab/minefield/game"
)

func TestManagerLifecycle(t *testing.T) {
	manager := NewManager()
	assert.Equal(t, 0, manager.Len())

	session, err := manager.Create(game.NewConfig())
	require.NoError(t, err)
	require.NotEmpty(t, session.ID)
	assert.Equal(t, 1, manager.Len())

	found, err := manager.Get(session.ID)
	require.NoError(t, err)
	assert.Same(t, session, found)

	manager.Delete(session.ID)
	assert.Equal(t, 0, manager.Len())

	_, err = manager.Get(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManagerRejectsInvalidConfig(t *testing.T) {
	manager := NewManager()

	_, err := manager.Create(game.Config{Rows: 0, Cols: 9, NumMines: 1})
	assert.ErrorIs(t, err, game.ErrInvalidDimensions)
	assert.Equal(t, 0, manager.Len())
}

func TestSessionsAreIndependent(t *testing.T) {
	manager := NewManager()

	first, err := manager.Create(game.Config{Rows: 3, Cols: 3, NumMines: 1, Seed: 1})
	require.NoError(t, err)
	second, err := manager.Create(game.Config{Rows: 5, Cols: 5, NumMines: 2, Seed: 2})
	require.NoError(t, err)

	require.NotEqual(t, first.ID, second.ID)

	require.NoError(t, first.With(func(g *game.Game) error {
		return g.ToggleQuestion(0, 0)
	}))

	_ = second.With(func(g *game.Game) error {
		cell, err := g.CellAt(0, 0)
		require.NoError(t, err)
		assert.True(t, cell.IsHidden(), "moves in one session must not leak into another")
		return nil
	})
}

func TestSessionReset(t *testing.T) {
	manager := NewManager()
	session, err := manager.Create(game.Config{Rows: 3, Cols: 3, NumMines: 1, Seed: 1})
	require.NoError(t, err)

	require.NoError(t, session.With(func(g *game.Game) error {
		return g.ToggleQuestion(1, 1)
	}))

	// A failed reset leaves the running game alone.
	require.Error(t, session.Reset(game.Config{Rows: -1, Cols: 3, NumMines: 1}))
	_ = session.With(func(g *game.Game) error {
		cell, err := g.CellAt(1, 1)
		require.NoError(t, err)
		assert.True(t, cell.IsQuestioned())
		return nil
	})

	require.NoError(t, session.Reset(game.Config{Rows: 4, Cols: 4, NumMines: 2, Seed: 3}))
	_ = session.With(func(g *game.Game) error {
		assert.Equal(t, 4, g.Rows())
		cell, err := g.CellAt(1, 1)
		require.NoError(t, err)
		assert.True(t, cell.IsHidden())
		return nil
	})
}
