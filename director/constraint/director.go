// Package constraint implements a deducing director. Every revealed
// numbered cell is an observation: its adjacency count, minus the flags
// already around it, must be hidden among its unrevealed neighbors. When
// the arithmetic pins every hidden neighbor as a mine the director flags
// them; when it clears them all the director reveals them. With no certain
// move available it falls back to a random reveal.
package constraint

import (
	"errors"
	"math/rand"

	"github.com/sweeplab/minefield/game"
	"github.com/sweeplab/minefield/util/collections"
)

type Director struct {
	game *game.Game
	rng  *rand.Rand
}

// NewDirector returns a director with its own randomness source for
// fallback guesses. A nil rng falls back to the global source.
func NewDirector(rng *rand.Rand) *Director {
	return &Director{rng: rng}
}

func (director *Director) Init(g *game.Game) {
	director.game = g
}

// Act performs one pass of certain moves, or one guess when nothing is
// certain. It returns false once the game has ended.
func (director *Director) Act() bool {
	if director.game.Status() != game.InProgress {
		return false
	}

	if director.actCertain() {
		return true
	}
	return director.guess()
}

// actCertain applies every deduction available from a single scan of the
// board. It reports whether any move was made.
func (director *Director) actCertain() bool {
	acted := false

	for row := 0; row < director.game.Rows(); row++ {
		for col := 0; col < director.game.Cols(); col++ {
			cell, err := director.game.CellAt(row, col)
			if err != nil || !cell.IsRevealed() || cell.AdjacentMines() == 0 {
				continue
			}

			hidden, flagged := director.observe(row, col)
			if len(hidden) == 0 {
				continue
			}

			switch {
			case cell.AdjacentMines() == len(flagged):
				// Every mine around this number is already flagged;
				// the rest of its neighbors are safe.
				for coord := range hidden {
					if director.game.Reveal(coord.Row, coord.Col) == nil {
						acted = true
					}
				}
			case cell.AdjacentMines()-len(flagged) == len(hidden):
				// Exactly as many hidden neighbors as missing mines;
				// all of them are mines.
				for coord := range hidden {
					err := director.game.ToggleFlag(coord.Row, coord.Col)
					if err == nil {
						acted = true
					} else if errors.Is(err, game.ErrGameOver) {
						return acted
					}
				}
			}

			if director.game.Status() != game.InProgress {
				return acted
			}
		}
	}

	return acted
}

// observe partitions the neighbors of a revealed numbered cell into the
// hidden set and the flagged set.
func (director *Director) observe(row, col int) (hidden, flagged collections.Set[game.Coord]) {
	hidden = make(collections.Set[game.Coord])
	flagged = make(collections.Set[game.Coord])

	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if r == row && c == col {
				continue
			}
			neighbor, err := director.game.CellAt(r, c)
			if err != nil {
				continue
			}
			if neighbor.IsHidden() {
				hidden.Add(game.Coord{Row: r, Col: c})
			} else if neighbor.IsFlagged() {
				flagged.Add(game.Coord{Row: r, Col: c})
			}
		}
	}
	return hidden, flagged
}

// guess reveals a uniformly random hidden cell. It reports false when no
// hidden cell is left to try.
func (director *Director) guess() bool {
	var candidates []game.Coord
	for row := 0; row < director.game.Rows(); row++ {
		for col := 0; col < director.game.Cols(); col++ {
			cell, err := director.game.CellAt(row, col)
			if err == nil && cell.IsHidden() {
				candidates = append(candidates, game.Coord{Row: row, Col: col})
			}
		}
	}
	if len(candidates) == 0 {
		return false
	}

	pick := rand.Intn(len(candidates))
	if director.rng != nil {
		pick = director.rng.Intn(len(candidates))
	}
	coord := candidates[pick]
	return director.game.Reveal(coord.Row, coord.Col) == nil
}
