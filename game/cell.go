package game

import "fmt"

// CellKind says whether a cell carries a mine. It is fixed at board
// generation and never changes afterwards.
type CellKind uint8

const (
	KindMine CellKind = iota
	KindEmpty
)

// Visibility is the player-facing state of a cell. Revealed is terminal:
// once a cell is revealed no further transition is possible.
type Visibility uint8

const (
	Revealed Visibility = iota
	Flagged
	Questioned
	Hidden
)

// Cell is the indivisible unit of board state. Cells are plain values
// stored inline in the board's grid; they are only ever mutated through
// Board operations, and queries hand them out by value.
type Cell struct {
	kind          CellKind
	visibility    Visibility
	adjacentMines uint8
}

func (cell Cell) String() string {
	return fmt.Sprintf("Cell(%c)", cell.rune())
}

func (cell Cell) IsMined() bool {
	return cell.kind == KindMine
}

func (cell Cell) IsHidden() bool {
	return cell.visibility == Hidden
}

func (cell Cell) IsRevealed() bool {
	return cell.visibility == Revealed
}

func (cell Cell) IsFlagged() bool {
	return cell.visibility == Flagged
}

func (cell Cell) IsQuestioned() bool {
	return cell.visibility == Questioned
}

// AdjacentMines returns the number of mined cells in this cell's Moore
// neighborhood. The count is stored for mined cells too, where it carries
// no gameplay meaning.
func (cell Cell) AdjacentMines() int {
	return int(cell.adjacentMines)
}

func (cell Cell) FlaggedAndMined() bool {
	return cell.visibility == Flagged && cell.kind == KindMine
}

func (cell Cell) UnflaggedAndMined() bool {
	return cell.visibility != Flagged && cell.kind == KindMine
}

// isLone reports whether the cell is empty with no mined neighbors.
// Lone cells are the ones that trigger the reveal cascade.
func (cell Cell) isLone() bool {
	return cell.kind == KindEmpty && cell.adjacentMines == 0
}

// rune returns the character used for text rendering of a board.
func (cell Cell) rune() rune {
	switch cell.visibility {
	case Flagged:
		return '⚑'
	case Questioned:
		return '?'
	case Hidden:
		return '□'
	default:
		if cell.kind == KindMine {
			return '●'
		}
		return rune('0' + cell.adjacentMines)
	}
}
