package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustBoard rebuilds a deterministic board from per-cell characters
// ('O' hidden mine, '#' hidden empty, and so on per BoardSnapshot).
func mustBoard(t *testing.T, serialized string) *Board {
	t.Helper()
	snapshot := &BoardSnapshot{SerializedBoard: serialized}
	board, err := snapshot.Restore(false)
	require.NoError(t, err)
	return board
}

func TestNewBoardValidation(t *testing.T) {
	tests := []struct {
		name             string
		rows, cols, mine int
	}{
		{"zero rows", 0, 5, 1},
		{"zero cols", 5, 0, 1},
		{"negative rows", -1, 3, 1},
		{"negative mines", 3, 3, -1},
		{"mines fill the board", 3, 3, 9},
		{"mines exceed the board", 2, 2, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoard(tt.rows, tt.cols, tt.mine, nil)
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		})
	}
}

func TestNewBoardMineCount(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		rows := 1 + rng.Intn(12)
		cols := 1 + rng.Intn(12)
		mines := rng.Intn(rows * cols)

		board, err := NewBoard(rows, cols, mines, rng)
		require.NoError(t, err)

		placed := 0
		for _, cell := range board.cells {
			if cell.IsMined() {
				placed++
			}
		}
		assert.Equal(t, mines, placed, "%dx%d with %d mines", rows, cols, mines)
		assert.Equal(t, mines, board.TotalMines())
	}
}

func TestAdjacencyInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		rows := 1 + rng.Intn(10)
		cols := 1 + rng.Intn(10)
		mines := rng.Intn(rows * cols)

		board, err := NewBoard(rows, cols, mines, rng)
		require.NoError(t, err)

		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				want := 0
				for _, coord := range board.Neighbors(row, col) {
					neighbor, err := board.CellAt(coord.Row, coord.Col)
					require.NoError(t, err)
					if neighbor.IsMined() {
						want++
					}
				}

				cell, err := board.CellAt(row, col)
				require.NoError(t, err)
				assert.Equal(t, want, cell.AdjacentMines(),
					"cell (%d, %d) on %dx%d board with %d mines", row, col, rows, cols, mines)
			}
		}
	}
}

func TestNeighborsClipping(t *testing.T) {
	board, err := NewBoard(3, 3, 0, nil)
	require.NoError(t, err)

	assert.Len(t, board.Neighbors(0, 0), 3, "corner")
	assert.Len(t, board.Neighbors(0, 1), 5, "edge")
	assert.Len(t, board.Neighbors(1, 1), 8, "center")

	single, err := NewBoard(1, 1, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, single.Neighbors(0, 0))
}

func TestCellAtOutOfBounds(t *testing.T) {
	board, err := NewBoard(2, 3, 1, nil)
	require.NoError(t, err)

	for _, coord := range []Coord{{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {99, 99}} {
		_, err := board.CellAt(coord.Row, coord.Col)
		assert.ErrorIs(t, err, ErrOutOfBounds, "%v", coord)
	}

	_, err = board.CellAt(1, 2)
	assert.NoError(t, err)
}

func TestDefaultNumMines(t *testing.T) {
	assert.Equal(t, 12, DefaultNumMines(9, 9))
	assert.Equal(t, 15, DefaultNumMines(10, 10))
	assert.Equal(t, 72, DefaultNumMines(16, 30))
	assert.Equal(t, 0, DefaultNumMines(1, 1))
}

func TestFreshBoardAllHidden(t *testing.T) {
	board, err := NewBoard(4, 4, 5, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			cell, err := board.CellAt(row, col)
			require.NoError(t, err)
			assert.True(t, cell.IsHidden())
		}
	}
	assert.Equal(t, 5, board.RemainingFlags())
}
