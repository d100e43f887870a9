package game

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// MinePlacer picks where mines go once the first cell has been revealed. The
// returned positions must not include exclude; the board drops any that are
// out of bounds, duplicated or equal to exclude.
type MinePlacer interface {
	PlaceMines(rows, cols, numMines int, exclude Position) []Position
}

// RandomPlacer chooses every set of numMines distinct cells (other than the
// excluded one) with equal probability.
type RandomPlacer struct {
	Rand *rand.Rand
}

func (placer RandomPlacer) PlaceMines(rows, cols, numMines int, exclude Position) []Position {
	excludeIdx := exclude.Row*cols + exclude.Col

	// Store cell indexes, to shuffle later and fill mines
	cellIndexes := make([]int, 0, rows*cols-1)
	for idx := 0; idx < rows*cols; idx++ {
		if idx != excludeIdx {
			cellIndexes = append(cellIndexes, idx)
		}
	}

	shuffle := rand.Shuffle
	if placer.Rand != nil {
		shuffle = placer.Rand.Shuffle
	}
	shuffle(len(cellIndexes), func(i, j int) {
		cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
	})

	if numMines > len(cellIndexes) {
		numMines = len(cellIndexes)
	}
	positions := make([]Position, numMines)
	for i, idx := range cellIndexes[:numMines] {
		positions[i] = Position{Row: idx / cols, Col: idx % cols}
	}
	return positions
}

// FixedPlacer places mines exactly where it is told, ignoring the requested
// count. A listed position equal to the first revealed cell is skipped.
type FixedPlacer []Position

func (placer FixedPlacer) PlaceMines(rows, cols, numMines int, exclude Position) []Position {
	positions := make([]Position, 0, len(placer))
	for _, pos := range placer {
		if pos != exclude {
			positions = append(positions, pos)
		}
	}
	return positions
}

// start performs the NotStarted -> InProgress transition: mines are laid
// around the first revealed cell and adjacency counts computed.
func (board *Board) start(first *Cell) {
	if board.phase != NotStarted {
		return
	}

	exclude := first.Position()
	placed := 0
	for _, pos := range board.placer.PlaceMines(board.rows, board.cols, board.totalMines, exclude) {
		if !board.InBounds(pos.Row, pos.Col) || pos == exclude {
			continue
		}
		cell := &board.cells[pos.Row][pos.Col]
		if cell.hasMine {
			continue
		}
		cell.hasMine = true
		placed++
	}

	board.totalMines = placed
	board.fillAdjacency()
	board.minesPlaced = true
	board.phase = InProgress

	Log.WithFields(logrus.Fields{
		"rows":  board.rows,
		"cols":  board.cols,
		"mines": placed,
		"first": exclude,
		"seed":  board.seed,
	}).Debug("placed mines")
}

func (board *Board) fillAdjacency() {
	for _, cell := range board.Cells() {
		cell.adjacentMines = 0
		if cell.hasMine {
			continue
		}
		for _, neighbor := range board.Neighbors(cell.row, cell.col) {
			if neighbor.hasMine {
				cell.adjacentMines++
			}
		}
	}
}
