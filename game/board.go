package game

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultMineDensity is the fraction of cells that carry a mine when the
// caller does not pick an explicit count.
const DefaultMineDensity = 0.15

// DefaultNumMines computes the mine count for a rows×cols grid at the
// default density, rounded to nearest.
func DefaultNumMines(rows, cols int) int {
	return int(math.Round(float64(rows*cols) * DefaultMineDensity))
}

// Coord addresses a cell by zero-based (row, col).
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Board owns a rows×cols grid of cells stored in row-major order. A board
// is generated once per game and afterwards mutated only through visibility
// transitions; cell kinds and adjacency counts are fixed at generation.
type Board struct {
	rows, cols int
	totalMines int
	numFlagged int
	cells      []Cell
}

// NewBoard allocates a rows×cols board and places mines distinct positions
// uniformly at random, then computes every cell's adjacent mine count.
// rng may be nil, in which case placement uses the global rand source.
func NewBoard(rows, cols, mines int, rng *rand.Rand) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if mines < 0 || mines >= rows*cols {
		return nil, fmt.Errorf("%w: %d mines do not fit %dx%d", ErrInvalidDimensions, mines, rows, cols)
	}

	board := &Board{
		rows:       rows,
		cols:       cols,
		totalMines: mines,
		cells:      make([]Cell, rows*cols),
	}
	for i := range board.cells {
		board.cells[i] = Cell{kind: KindEmpty, visibility: Hidden}
	}

	// Fisher-Yates over all cell indexes; the first `mines` entries become
	// mine positions.
	indexes := make([]int, len(board.cells))
	for i := range indexes {
		indexes[i] = i
	}
	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(indexes), func(i, j int) {
		indexes[i], indexes[j] = indexes[j], indexes[i]
	})
	for _, idx := range indexes[:mines] {
		board.cells[idx].kind = KindMine
	}

	board.computeAdjacency()

	return board, nil
}

// computeAdjacency walks every mine and increments the count of each of its
// neighbors. Valid only once, right after the mines are placed.
func (board *Board) computeAdjacency() {
	for idx := range board.cells {
		if !board.cells[idx].IsMined() {
			continue
		}
		for _, neighbor := range board.Neighbors(idx/board.cols, idx%board.cols) {
			board.cells[board.index(neighbor.Row, neighbor.Col)].adjacentMines++
		}
	}
}

func (board *Board) Rows() int {
	return board.rows
}

func (board *Board) Cols() int {
	return board.cols
}

func (board *Board) NumCells() int {
	return board.rows * board.cols
}

func (board *Board) TotalMines() int {
	return board.totalMines
}

func (board *Board) index(row, col int) int {
	return row*board.cols + col
}

func (board *Board) inBounds(row, col int) bool {
	return row >= 0 && row < board.rows && col >= 0 && col < board.cols
}

// CellAt returns the cell at (row, col) by value, or ErrOutOfBounds.
func (board *Board) CellAt(row, col int) (Cell, error) {
	if !board.inBounds(row, col) {
		return Cell{}, fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfBounds, row, col, board.rows, board.cols)
	}
	return board.cells[board.index(row, col)], nil
}

// Neighbors returns the coordinates of the up-to-8 cells in the Moore
// neighborhood of (row, col), clipped at edges and corners.
func (board *Board) Neighbors(row, col int) []Coord {
	neighbors := make([]Coord, 0, 8)
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if r == row && c == col {
				continue
			}
			if board.inBounds(r, c) {
				neighbors = append(neighbors, Coord{Row: r, Col: c})
			}
		}
	}
	return neighbors
}

// setVisibility is the single mutation point for cell state. It keeps the
// flagged-cell count in step and enforces that revealed cells stay revealed.
func (board *Board) setVisibility(row, col int, visibility Visibility) {
	cell := &board.cells[board.index(row, col)]
	if cell.visibility == visibility || cell.visibility == Revealed {
		return
	}

	if cell.visibility == Flagged {
		board.numFlagged--
	}
	if visibility == Flagged {
		board.numFlagged++
	}
	cell.visibility = visibility
}

// RemainingFlags returns how many flags the player may still place:
// total mines minus currently flagged cells, never negative.
func (board *Board) RemainingFlags() int {
	return board.totalMines - board.numFlagged
}
