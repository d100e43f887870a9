package random

import (
	"math/rand"

	"github.com/they4kman/sweep/game"
)

// Director clicks a random hidden, unflagged cell each step
type Director struct {
	board *game.Board
	rand  *rand.Rand
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.rand = rand.New(rand.NewSource(board.Seed()))
}

func (director *Director) Act() []game.CellAction {
	if director.board == nil || !director.board.CanPlay() {
		return nil
	}

	var candidates []game.Position
	for _, cell := range director.board.Cells() {
		if cell.State() == game.Hidden {
			candidates = append(candidates, cell.Position())
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	return []game.CellAction{candidates[director.rand.Intn(len(candidates))].Click()}
}

// Pick returns one of the given positions, or false if there are none
func (director *Director) Pick(positions []game.Position) (game.Position, bool) {
	if len(positions) == 0 {
		return game.Position{}, false
	}
	return positions[director.rand.Intn(len(positions))], true
}
