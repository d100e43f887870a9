package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every safe cell of this 5x5 layout touches a mine, so nothing floods
var diamondMines = []Position{{1, 1}, {1, 3}, {3, 1}, {3, 3}}

func countState(board *Board, state CellState) int {
	n := 0
	for _, cell := range board.Cells() {
		if cell.State() == state {
			n++
		}
	}
	return n
}

func TestRevealEmptyBoardFloodsEverything(t *testing.T) {
	board := NewGame(5, 5, 0)

	result := board.Reveal(0, 0)

	assert.Equal(t, OutcomeWon, result.Outcome)
	assert.Equal(t, Won, board.Phase())
	assert.Len(t, result.Changed, 25)
	assert.Equal(t, 25, countState(board, Revealed))

	seen := make(map[Position]bool)
	for _, view := range result.Changed {
		require.False(t, seen[view.Position()], "%v revealed twice", view.Position())
		seen[view.Position()] = true
	}
}

func TestRevealFloodStopsAtNumbers(t *testing.T) {
	wall := []Position{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}}
	board := newFixedBoard(5, 5, wall...)

	result := board.Reveal(2, 0)

	assert.Equal(t, OutcomeContinue, result.Outcome)
	assert.Len(t, result.Changed, 10)
	assert.Equal(t, 10, countState(board, Revealed))
	for row := 0; row < 5; row++ {
		assert.Equal(t, 0, board.View(row, 0).Adjacent)
		assert.Equal(t, Revealed, board.CellAt(row, 1).State())
		assert.Equal(t, Hidden, board.CellAt(row, 3).State())
		assert.Equal(t, Hidden, board.CellAt(row, 4).State())
	}
	assert.Equal(t, 2, board.View(0, 1).Adjacent)
	assert.Equal(t, 3, board.View(2, 1).Adjacent)
	assert.False(t, board.CheckWin())
}

func TestRevealNumberDoesNotFlood(t *testing.T) {
	board := newFixedBoard(5, 5, diamondMines...)

	result := board.Reveal(2, 2)

	assert.Equal(t, OutcomeContinue, result.Outcome)
	require.Len(t, result.Changed, 1)
	assert.Equal(t, CellView{Row: 2, Col: 2, State: Revealed, Adjacent: 4}, result.Changed[0])
	assert.Equal(t, 1, countState(board, Revealed))
}

func TestWinOnLastSafeReveal(t *testing.T) {
	board := newFixedBoard(5, 5, diamondMines...)
	mines := make(map[Position]bool)
	for _, pos := range diamondMines {
		mines[pos] = true
	}

	var safe []Position
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if !mines[Position{row, col}] {
				safe = append(safe, Position{row, col})
			}
		}
	}
	require.Len(t, safe, 21)

	for i, pos := range safe {
		result := board.Reveal(pos.Row, pos.Col)
		if i < len(safe)-1 {
			require.Equal(t, OutcomeContinue, result.Outcome, "reveal %d", i+1)
			require.False(t, board.CheckWin())
		} else {
			require.Equal(t, OutcomeWon, result.Outcome)
		}
	}

	assert.Equal(t, Won, board.Phase())
	assert.True(t, board.CheckWin())
	for pos := range mines {
		assert.Equal(t, Flagged, board.CellAt(pos.Row, pos.Col).State())
	}
	assert.Equal(t, 0, board.MinesRemaining())
}

func TestWinWithSingleMineFloods(t *testing.T) {
	board := newFixedBoard(5, 5, Position{0, 0})

	result := board.Reveal(4, 4)

	assert.Equal(t, OutcomeWon, result.Outcome)
	assert.Equal(t, 24, countState(board, Revealed))
	assert.Equal(t, Flagged, board.CellAt(0, 0).State())

	last := result.Changed[len(result.Changed)-1]
	assert.Equal(t, Position{0, 0}, last.Position())
	assert.True(t, last.Mine)
}

func TestRevealMineLoses(t *testing.T) {
	board := newFixedBoard(5, 5, Position{0, 0}, Position{2, 2}, Position{4, 0})

	board.ToggleFlag(0, 0)
	board.ToggleFlag(4, 4)

	require.Equal(t, OutcomeContinue, board.Reveal(1, 1).Outcome)
	require.Equal(t, 2, board.View(1, 1).Adjacent)

	result := board.Reveal(2, 2)

	assert.Equal(t, OutcomeLost, result.Outcome)
	assert.Equal(t, Lost, board.Phase())
	assert.False(t, board.CanPlay())

	detonated := board.View(2, 2)
	assert.True(t, detonated.Mine)
	assert.True(t, detonated.Detonated)
	assert.Equal(t, Revealed, detonated.State)

	// Unflagged mines are shown, the flagged one keeps its flag
	assert.Equal(t, Revealed, board.CellAt(4, 0).State())
	assert.Equal(t, CellView{Row: 0, Col: 0, State: Flagged, Mine: true}, board.View(0, 0))

	// A wrong flag is left in place, and reported as wrong
	wrong := board.View(4, 4)
	assert.Equal(t, Flagged, wrong.State)
	assert.False(t, wrong.Mine)
	assert.True(t, wrong.WrongFlag)

	// Safe hidden cells are not opened
	assert.Equal(t, Hidden, board.CellAt(0, 4).State())

	changed := make(map[Position]bool)
	for _, view := range result.Changed {
		changed[view.Position()] = true
	}
	assert.Equal(t, map[Position]bool{{2, 2}: true, {0, 0}: true, {4, 0}: true, {4, 4}: true}, changed)
	assert.Equal(t, Position{2, 2}, result.Changed[0].Position())
}

func TestViewHidesMinesWhilePlaying(t *testing.T) {
	board := newFixedBoard(5, 5, diamondMines...)
	board.Reveal(0, 0)

	assert.Equal(t, CellView{Row: 1, Col: 1, State: Hidden}, board.View(1, 1))
	assert.Equal(t, CellView{Row: 0, Col: 1, State: Hidden}, board.View(0, 1))
	assert.Equal(t, CellView{Row: 0, Col: 0, State: Revealed, Adjacent: 1}, board.View(0, 0))
}

func TestRevealSkipsFlaggedAndRevealed(t *testing.T) {
	board := newFixedBoard(5, 5, diamondMines...)
	board.ToggleFlag(0, 0)

	result := board.Reveal(0, 0)
	assert.Empty(t, result.Changed)
	assert.Equal(t, Flagged, board.CellAt(0, 0).State())
	assert.Equal(t, NotStarted, board.Phase())

	board.Reveal(2, 2)
	result = board.Reveal(2, 2)
	assert.Empty(t, result.Changed)
	assert.Equal(t, OutcomeContinue, result.Outcome)
}

func TestFloodLeavesFlagsAlone(t *testing.T) {
	board := NewGame(5, 5, 0)
	board.ToggleFlag(4, 4)

	result := board.Reveal(0, 0)

	assert.Equal(t, OutcomeContinue, result.Outcome)
	assert.Equal(t, 24, countState(board, Revealed))
	assert.Equal(t, Flagged, board.CellAt(4, 4).State())
	assert.Equal(t, -1, board.MinesRemaining())

	board.ToggleFlag(4, 4)
	assert.Equal(t, OutcomeWon, board.Reveal(4, 4).Outcome)
}

func TestToggleFlag(t *testing.T) {
	board := newFixedBoard(5, 5, diamondMines...)
	board.Reveal(2, 2)
	before := board.MinesRemaining()

	result := board.ToggleFlag(1, 1)
	require.Len(t, result.Changed, 1)
	assert.Equal(t, Flagged, result.Changed[0].State)
	assert.Equal(t, before-1, board.MinesRemaining())

	result = board.ToggleFlag(1, 1)
	require.Len(t, result.Changed, 1)
	assert.Equal(t, Hidden, result.Changed[0].State)
	assert.Equal(t, before, board.MinesRemaining())

	// Revealed cells can't be flagged
	result = board.ToggleFlag(2, 2)
	assert.Empty(t, result.Changed)
	assert.Equal(t, Revealed, board.CellAt(2, 2).State())
	assert.Equal(t, before, board.MinesRemaining())
}

func TestOverFlaggingGoesNegative(t *testing.T) {
	board := newFixedBoard(5, 5, Position{0, 0})
	for col := 0; col < 5; col++ {
		board.ToggleFlag(4, col)
	}

	assert.Equal(t, -4, board.MinesRemaining())
}

func TestNoChangesAfterGameOver(t *testing.T) {
	won := newFixedBoard(5, 5, Position{0, 0})
	won.Reveal(4, 4)
	require.Equal(t, Won, won.Phase())

	lost := newFixedBoard(5, 5, diamondMines...)
	lost.Reveal(0, 0)
	lost.Reveal(1, 1)
	require.Equal(t, Lost, lost.Phase())

	for _, board := range []*Board{won, lost} {
		before := board.Snapshot().Serialize()
		remaining := board.MinesRemaining()
		phase := board.Phase()

		for _, cell := range board.Cells() {
			reveal := board.Reveal(cell.Row(), cell.Col())
			flag := board.ToggleFlag(cell.Row(), cell.Col())
			chord := board.Chord(cell.Row(), cell.Col())

			assert.Empty(t, reveal.Changed)
			assert.Empty(t, flag.Changed)
			assert.Empty(t, chord.Changed)
			assert.Equal(t, outcomeFor(phase), reveal.Outcome)
		}

		assert.Equal(t, before, board.Snapshot().Serialize())
		assert.Equal(t, remaining, board.MinesRemaining())
		assert.Equal(t, phase, board.Phase())
	}
}

func TestChord(t *testing.T) {
	t.Run("matching flags reveal neighbors", func(t *testing.T) {
		board := newFixedBoard(5, 5, diamondMines...)
		board.Reveal(0, 0)
		board.ToggleFlag(1, 1)

		result := board.Chord(0, 0)

		assert.Equal(t, OutcomeContinue, result.Outcome)
		assert.Len(t, result.Changed, 2)
		assert.Equal(t, Revealed, board.CellAt(0, 1).State())
		assert.Equal(t, Revealed, board.CellAt(1, 0).State())
	})

	t.Run("missing flags do nothing", func(t *testing.T) {
		board := newFixedBoard(5, 5, diamondMines...)
		board.Reveal(0, 0)

		result := board.Chord(0, 0)

		assert.Empty(t, result.Changed)
		assert.Equal(t, Hidden, board.CellAt(0, 1).State())
	})

	t.Run("wrong flag loses", func(t *testing.T) {
		board := newFixedBoard(5, 5, diamondMines...)
		board.Reveal(0, 0)
		board.ToggleFlag(0, 1)

		result := board.Chord(0, 0)

		assert.Equal(t, OutcomeLost, result.Outcome)
		assert.True(t, board.View(1, 1).Detonated)
		assert.True(t, board.View(0, 1).WrongFlag)
	})

	t.Run("chord can win", func(t *testing.T) {
		board := newFixedBoard(5, 5, Position{0, 0})
		board.Reveal(1, 1)
		board.ToggleFlag(0, 0)

		result := board.Chord(1, 1)

		assert.Equal(t, OutcomeWon, result.Outcome)
		assert.Equal(t, 24, countState(board, Revealed))
		assert.Equal(t, 0, board.MinesRemaining())
	})

	t.Run("hidden cell is ignored", func(t *testing.T) {
		board := newFixedBoard(5, 5, diamondMines...)
		board.Reveal(0, 0)

		assert.Empty(t, board.Chord(4, 4).Changed)
	})
}
