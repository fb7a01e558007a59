package game

import "strings"

// PackedCellSize is the size in bytes of one cell in the packed export:
// visibility code, kind code, adjacency count.
const PackedCellSize = 3

// CellRecord is one cell's worth of the bulk state export, row-major.
type CellRecord struct {
	Visibility    Visibility `json:"visibility"`
	Kind          CellKind   `json:"kind"`
	AdjacentMines uint8      `json:"adjacentMines"`
}

// Export returns a flat row-major copy of per-cell state, so the
// presentation layer can redraw a frame without one query per cell.
func (game *Game) Export() []CellRecord {
	records := make([]CellRecord, len(game.board.cells))
	for idx, cell := range game.board.cells {
		records[idx] = CellRecord{
			Visibility:    cell.visibility,
			Kind:          cell.kind,
			AdjacentMines: cell.adjacentMines,
		}
	}
	return records
}

// ExportPacked returns the compact bulk export: PackedCellSize bytes per
// cell in row-major order. Suited to shipping board state across a process
// or socket boundary in one write.
func (game *Game) ExportPacked() []byte {
	packed := make([]byte, 0, len(game.board.cells)*PackedCellSize)
	for _, cell := range game.board.cells {
		packed = append(packed, byte(cell.visibility), byte(cell.kind), cell.adjacentMines)
	}
	return packed
}

// Render draws the board as a text grid, one rune per cell: hidden □,
// flag ⚑, question ?, revealed mine ●, revealed empty cells as their
// adjacency digit. Debugging and terminal-play convenience, not a wire
// format.
func (game *Game) Render() string {
	var grid strings.Builder
	for row := 0; row < game.board.rows; row++ {
		for col := 0; col < game.board.cols; col++ {
			if col > 0 {
				grid.WriteByte(' ')
			}
			grid.WriteRune(game.board.cells[game.board.index(row, col)].rune())
		}
		grid.WriteByte('\n')
	}
	return grid.String()
}
