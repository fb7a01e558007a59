package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// BoardSnapshot is the YAML-serializable form of a board: the seed it was
// generated from plus one character per cell, rows separated by newlines.
//
// Cell characters: mines are 'F' (flagged), 'Q' (questioned), '*'
// (revealed) or 'O' (hidden); empty cells are 'f', '?', '.' or '#' in the
// same order.
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed,omitempty"`
	SerializedBoard string `yaml:"board,flow"`
}

// Snapshot captures the game's board in snapshot form.
func (game *Game) Snapshot() *BoardSnapshot {
	var rows []string
	for row := 0; row < game.board.rows; row++ {
		var builder strings.Builder
		for col := 0; col < game.board.cols; col++ {
			builder.WriteByte(serializeCell(game.board.cells[game.board.index(row, col)]))
		}
		rows = append(rows, builder.String())
	}
	return &BoardSnapshot{SerializedBoard: strings.Join(rows, "\n")}
}

func serializeCell(cell Cell) byte {
	mined := cell.IsMined()
	switch cell.visibility {
	case Flagged:
		if mined {
			return 'F'
		}
		return 'f'
	case Questioned:
		if mined {
			return 'Q'
		}
		return '?'
	case Revealed:
		if mined {
			return '*'
		}
		return '.'
	default:
		if mined {
			return 'O'
		}
		return '#'
	}
}

func deserializeCell(c byte) (Cell, error) {
	var cell Cell
	switch c {
	case 'F', 'Q', '*', 'O':
		cell.kind = KindMine
	case 'f', '?', '.', '#':
		cell.kind = KindEmpty
	default:
		return Cell{}, fmt.Errorf("snapshot: unknown cell character %q", c)
	}
	switch c {
	case 'F', 'f':
		cell.visibility = Flagged
	case 'Q', '?':
		cell.visibility = Questioned
	case '*', '.':
		cell.visibility = Revealed
	default:
		cell.visibility = Hidden
	}
	return cell, nil
}

// Serialize renders the snapshot as YAML.
func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// LoadSnapshot parses a YAML snapshot.
func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Restore rebuilds a board from the snapshot, recomputing adjacency counts
// from the mine layout. With fresh set, every cell starts hidden again;
// otherwise visibility is restored as recorded.
func (snapshot *BoardSnapshot) Restore(fresh bool) (*Board, error) {
	rows := strings.Split(snapshot.SerializedBoard, "\n")
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty snapshot", ErrInvalidDimensions)
	}

	board := &Board{
		rows:  len(rows),
		cols:  len(rows[0]),
		cells: make([]Cell, 0, len(rows)*len(rows[0])),
	}

	for _, row := range rows {
		if len(row) != board.cols {
			return nil, fmt.Errorf("%w: ragged snapshot rows", ErrInvalidDimensions)
		}
		for i := 0; i < len(row); i++ {
			cell, err := deserializeCell(row[i])
			if err != nil {
				return nil, err
			}
			if fresh {
				cell.visibility = Hidden
			}
			if cell.IsMined() {
				board.totalMines++
			}
			if cell.IsFlagged() {
				board.numFlagged++
			}
			board.cells = append(board.cells, cell)
		}
	}

	board.computeAdjacency()

	return board, nil
}
