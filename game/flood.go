package game

import "github.com/gammazero/deque"

// reveal discloses the cell at (row, col). It reports whether a mine was
// revealed; interpreting that as a loss is the caller's concern.
//
// Revealing a non-hidden cell is a no-op: already-revealed cells stay put,
// and flagged or questioned cells are protected until the player unmarks
// them. When the target is a lone cell the disclosure cascades through the
// connected zero-adjacency region and its numbered perimeter.
//
// The cascade runs over an explicit work queue rather than recursion, so
// stack depth is independent of board size. Cells are marked revealed
// before they are enqueued, which bounds the walk at one visit per cell.
func (board *Board) reveal(row, col int) bool {
	cell := &board.cells[board.index(row, col)]
	if !cell.IsHidden() {
		return false
	}

	board.setVisibility(row, col, Revealed)
	if cell.IsMined() {
		return true
	}
	if !cell.isLone() {
		return false
	}

	queue := deque.New[Coord]()
	queue.PushBack(Coord{Row: row, Col: col})
	for queue.Len() > 0 {
		current := queue.PopFront()

		// A lone cell has no mined neighbors, so everything disclosed
		// here is empty: lone neighbors keep the flood going, numbered
		// ones form the perimeter and stop it.
		for _, coord := range board.Neighbors(current.Row, current.Col) {
			neighbor := &board.cells[board.index(coord.Row, coord.Col)]
			if !neighbor.IsHidden() {
				continue
			}
			board.setVisibility(coord.Row, coord.Col, Revealed)
			if neighbor.isLone() {
				queue.PushBack(coord)
			}
		}
	}

	return false
}
