// Package random implements the simplest possible director: it reveals
// hidden cells in a random order until the game ends. Useful as a baseline
// opponent and for soaking the reveal cascade in tests.
package random

import (
	"errors"
	"math/rand"

	"github.com/sweeplab/minefield/game"
)

type Director struct {
	game  *game.Game
	order []game.Coord
	next  int
}

func (director *Director) Init(g *game.Game) {
	director.game = g
	director.next = 0

	director.order = make([]game.Coord, 0, g.Rows()*g.Cols())
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			director.order = append(director.order, game.Coord{Row: row, Col: col})
		}
	}
	rand.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

// Act reveals the next hidden, unmarked cell in the shuffled order.
func (director *Director) Act() bool {
	if director.game.Status() != game.InProgress {
		return false
	}

	for ; director.next < len(director.order); director.next++ {
		coord := director.order[director.next]
		cell, err := director.game.CellAt(coord.Row, coord.Col)
		if err != nil || !cell.IsHidden() {
			continue
		}

		err = director.game.Reveal(coord.Row, coord.Col)
		if errors.Is(err, game.ErrGameOver) {
			return false
		}
		director.next++
		return true
	}

	return false
}
