package game

// toggleFlag flips a cell between Hidden and Flagged. Flagging draws from
// the shared flag pool (one flag per mine); when the pool is empty the
// toggle is rejected with ErrNoFlagsRemaining and the board is unchanged.
// Revealed and questioned cells are left alone.
func (board *Board) toggleFlag(row, col int) error {
	switch board.cells[board.index(row, col)].visibility {
	case Flagged:
		board.setVisibility(row, col, Hidden)
	case Hidden:
		if board.RemainingFlags() == 0 {
			return ErrNoFlagsRemaining
		}
		board.setVisibility(row, col, Flagged)
	}
	return nil
}

// toggleQuestion flips a cell between Hidden and Questioned. Revealed and
// flagged cells are left alone; question marks are free and unlimited.
func (board *Board) toggleQuestion(row, col int) {
	switch board.cells[board.index(row, col)].visibility {
	case Questioned:
		board.setVisibility(row, col, Hidden)
	case Hidden:
		board.setVisibility(row, col, Questioned)
	}
}
