package game

import (
	"github.com/sirupsen/logrus"
)

type RevealResult struct {
	Outcome Outcome
	// Cells whose visible state changed, in the order they changed
	Changed []CellView
}

type FlagResult struct {
	Changed []CellView
}

// Reveal opens the cell at (row, col). The first reveal of a game places the
// mines, never under the revealed cell. Revealing a flagged or already
// revealed cell, or any cell once the game is over, changes nothing.
func (board *Board) Reveal(row, col int) RevealResult {
	cell := board.CellAt(row, col)
	if !board.CanPlay() || cell.state != Hidden {
		return board.revealResult(nil)
	}

	if board.phase == NotStarted {
		board.start(cell)
	}

	return board.revealResult(board.reveal(cell))
}

// Chord reveals every hidden neighbor of a revealed number once the player
// has flagged as many neighbors as the number says.
func (board *Board) Chord(row, col int) RevealResult {
	cell := board.CellAt(row, col)
	if board.phase != InProgress || cell.state != Revealed || cell.hasMine || cell.adjacentMines == 0 {
		return board.revealResult(nil)
	}

	neighbors := board.Neighbors(row, col)
	numFlaggedNeighbors := 0
	for _, neighbor := range neighbors {
		if neighbor.state == Flagged {
			numFlaggedNeighbors++
		}
	}
	if numFlaggedNeighbors != cell.adjacentMines {
		return board.revealResult(nil)
	}

	var changed []*Cell
	for _, neighbor := range neighbors {
		if !board.CanPlay() {
			break
		}
		if neighbor.state == Hidden {
			changed = append(changed, board.reveal(neighbor)...)
		}
	}
	return board.revealResult(changed)
}

// ToggleFlag flips a hidden cell to flagged and back. Revealed cells and
// finished games are left alone.
func (board *Board) ToggleFlag(row, col int) FlagResult {
	cell := board.CellAt(row, col)
	if !board.CanPlay() {
		return FlagResult{}
	}

	switch cell.state {
	case Hidden:
		cell.state = Flagged
		board.numFlags++
	case Flagged:
		cell.state = Hidden
		board.numFlags--
	default:
		return FlagResult{}
	}

	return FlagResult{Changed: board.views([]*Cell{cell})}
}

func (board *Board) reveal(cell *Cell) []*Cell {
	if cell.hasMine {
		return board.lose(cell)
	}

	changed := board.flood(cell)
	if board.CheckWin() {
		changed = append(changed, board.win()...)
	}
	return changed
}

// win flags every mine that the player left unflagged
func (board *Board) win() []*Cell {
	board.phase = Won

	var changed []*Cell
	for _, cell := range board.Cells() {
		if cell.hasMine && cell.state == Hidden {
			cell.state = Flagged
			board.numFlags++
			changed = append(changed, cell)
		}
	}

	board.endGame()
	return changed
}

// lose shows every unflagged mine. Flags stay where they are, right or wrong.
func (board *Board) lose(detonated *Cell) []*Cell {
	board.phase = Lost
	detonated.state = Revealed
	detonated.detonated = true

	changed := []*Cell{detonated}
	for _, cell := range board.Cells() {
		switch {
		case cell == detonated:
		case cell.state == Flagged:
			changed = append(changed, cell)
		case cell.hasMine && cell.state == Hidden:
			cell.state = Revealed
			changed = append(changed, cell)
		}
	}

	board.endGame()
	return changed
}

func (board *Board) endGame() {
	Log.WithFields(logrus.Fields{
		"phase":     board.phase,
		"remaining": board.MinesRemaining(),
		"seed":      board.seed,
	}).Debug("game over")
}

func (board *Board) revealResult(changed []*Cell) RevealResult {
	return RevealResult{
		Outcome: outcomeFor(board.phase),
		Changed: board.views(changed),
	}
}

func outcomeFor(phase Phase) Outcome {
	switch phase {
	case Won:
		return OutcomeWon
	case Lost:
		return OutcomeLost
	default:
		return OutcomeContinue
	}
}
