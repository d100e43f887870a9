package game

import (
	"fmt"
	"math/rand"
	"time"
)

type Board struct {
	rows, cols int
	totalMines int
	cells      [][]Cell

	phase       Phase
	minesPlaced bool
	numFlags    int

	seed   int64
	rand   *rand.Rand
	placer MinePlacer
}

type BoardConfig struct {
	Rows, Cols int
	NumMines   int

	// Zero picks a time-based seed
	Seed int64
	// Nil uses a RandomPlacer driven by the board's seeded source
	Placer MinePlacer
}

// NewGame creates a fresh board. Out-of-range parameters are clamped.
func NewGame(rows, cols, mines int) *Board {
	return NewBoard(BoardConfig{Rows: rows, Cols: cols, NumMines: mines})
}

func NewBoard(config BoardConfig) *Board {
	rows := ClampDimension(config.Rows)
	cols := ClampDimension(config.Cols)

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board := &Board{
		rows:       rows,
		cols:       cols,
		totalMines: ClampMines(config.NumMines, rows, cols),
		cells:      make([][]Cell, rows),
		phase:      NotStarted,
		seed:       seed,
		rand:       rand.New(rand.NewSource(seed)),
		placer:     config.Placer,
	}

	if board.placer == nil {
		board.placer = RandomPlacer{Rand: board.rand}
	}

	for row := 0; row < rows; row++ {
		board.cells[row] = make([]Cell, cols)
		for col := 0; col < cols; col++ {
			cell := &board.cells[row][col]
			cell.row, cell.col = row, col
			cell.state = Hidden
		}
	}

	return board
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

// MinesRemaining goes negative when more cells are flagged than there are mines
func (board *Board) MinesRemaining() int {
	return board.totalMines - board.numFlags
}

func (board *Board) Phase() Phase {
	return board.phase
}

func (board *Board) MinesPlaced() bool {
	return board.minesPlaced
}

func (board *Board) Seed() int64 {
	return board.seed
}

func (board *Board) Rand() *rand.Rand {
	return board.rand
}

func (board *Board) CanPlay() bool {
	return !board.phase.IsOver()
}

func (board *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < board.rows && col < board.cols
}

// CellAt panics on coordinates outside the board
func (board *Board) CellAt(row, col int) *Cell {
	if !board.InBounds(row, col) {
		panic(fmt.Sprintf("game: cell (%d, %d) is outside the %dx%d board", row, col, board.rows, board.cols))
	}
	return &board.cells[row][col]
}

func (board *Board) View(row, col int) CellView {
	return board.CellAt(row, col).view(board.phase)
}

// Cells returns every cell in row-major order
func (board *Board) Cells() []*Cell {
	out := make([]*Cell, 0, board.NumCells())
	for row := range board.cells {
		for col := range board.cells[row] {
			out = append(out, &board.cells[row][col])
		}
	}
	return out
}

// Neighbors returns the in-bounds cells around (row, col), scanning the 3x3
// block row by row and skipping the center.
func (board *Board) Neighbors(row, col int) []*Cell {
	board.CellAt(row, col)

	neighbors := make([]*Cell, 0, 8)
	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			if dRow == 0 && dCol == 0 {
				continue
			}
			if r, c := row+dRow, col+dCol; board.InBounds(r, c) {
				neighbors = append(neighbors, &board.cells[r][c])
			}
		}
	}
	return neighbors
}

// CheckWin reports whether every cell without a mine has been revealed
func (board *Board) CheckWin() bool {
	for _, cell := range board.Cells() {
		if !cell.hasMine && cell.state != Revealed {
			return false
		}
	}
	return true
}

func (board *Board) String() string {
	return fmt.Sprintf("Board(%dx%d, %d mines, %v)", board.rows, board.cols, board.totalMines, board.phase)
}
