package game

import (
	"fmt"
)

type Position struct {
	Row, Col int
}

func (pos Position) String() string {
	return fmt.Sprintf("(%d, %d)", pos.Row, pos.Col)
}

type Cell struct {
	row, col      int
	hasMine       bool
	adjacentMines int
	state         CellState

	// Set on the mine whose reveal lost the game
	detonated bool
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.row, cell.col)
}

func (cell *Cell) Row() int {
	return cell.row
}

func (cell *Cell) Col() int {
	return cell.col
}

func (cell *Cell) Position() Position {
	return Position{Row: cell.row, Col: cell.col}
}

func (cell *Cell) HasMine() bool {
	return cell.hasMine
}

// AdjacentMines is only meaningful for cells without a mine
func (cell *Cell) AdjacentMines() int {
	return cell.adjacentMines
}

func (cell *Cell) State() CellState {
	return cell.state
}

func (cell *Cell) IsRevealed() bool {
	return cell.state == Revealed
}

func (cell *Cell) IsFlagged() bool {
	return cell.state == Flagged
}

func (cell *Cell) IsDetonated() bool {
	return cell.detonated
}

// CellView is what a player is allowed to know about a cell. Mine is only
// filled in once the cell is revealed or the game is over, Adjacent only once
// the cell is revealed.
type CellView struct {
	Row, Col  int
	State     CellState
	Mine      bool
	Adjacent  int
	Detonated bool
	// Flag placed on a cell without a mine, known once the game is lost
	WrongFlag bool
}

func (view CellView) Position() Position {
	return Position{Row: view.Row, Col: view.Col}
}

func (cell *Cell) view(phase Phase) CellView {
	view := CellView{
		Row:   cell.row,
		Col:   cell.col,
		State: cell.state,
	}

	if cell.state == Revealed || phase.IsOver() {
		view.Mine = cell.hasMine
		view.Detonated = cell.detonated
	}
	if cell.state == Revealed && !cell.hasMine {
		view.Adjacent = cell.adjacentMines
	}
	if phase == Lost && cell.state == Flagged && !cell.hasMine {
		view.WrongFlag = true
	}

	return view
}
