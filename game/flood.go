package game

import "github.com/gammazero/deque"

// flood reveals origin and, while the revealed cell has no adjacent mines,
// keeps revealing its hidden neighbors. Cells are marked as they are queued,
// so each is visited once; flagged cells are never touched.
func (board *Board) flood(origin *Cell) []*Cell {
	var changed []*Cell
	var visitQueue deque.Deque[*Cell]

	visit := func(cell *Cell) {
		cell.state = Revealed
		changed = append(changed, cell)
		visitQueue.PushBack(cell)
	}

	visit(origin)
	for visitQueue.Len() > 0 {
		cell := visitQueue.PopFront()
		if cell.adjacentMines != 0 {
			continue
		}

		for _, neighbor := range board.Neighbors(cell.row, cell.col) {
			if neighbor.state == Hidden {
				visit(neighbor)
			}
		}
	}

	return changed
}

func (board *Board) views(cells []*Cell) []CellView {
	views := make([]CellView, len(cells))
	for i, cell := range cells {
		views[i] = cell.view(board.phase)
	}
	return views
}
