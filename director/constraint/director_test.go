package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/sweep/game"
	"github.com/they4kman/sweep/util/collections"
)

func fixedBoard(mines ...game.Position) *game.Board {
	return game.NewBoard(game.BoardConfig{
		Rows:     5,
		Cols:     5,
		NumMines: len(mines),
		Seed:     1,
		Placer:   game.FixedPlacer(mines),
	})
}

func TestActFlagsCertainMines(t *testing.T) {
	wall := []game.Position{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 3, Col: 2}, {Row: 4, Col: 2}}
	board := fixedBoard(wall...)
	board.Reveal(2, 0)

	director := &Director{}
	director.Init(board)
	actions := director.Act()

	expected := make([]game.CellAction, len(wall))
	for i, pos := range wall {
		expected[i] = pos.RightClick()
	}
	assert.Equal(t, expected, actions)
}

func TestActClicksCertainSafeCells(t *testing.T) {
	board := fixedBoard(game.Position{Row: 1, Col: 1}, game.Position{Row: 1, Col: 3}, game.Position{Row: 3, Col: 1}, game.Position{Row: 3, Col: 3})
	board.Reveal(0, 0)
	board.ToggleFlag(1, 1)

	director := &Director{}
	director.Init(board)
	actions := director.Act()

	assert.Equal(t, []game.CellAction{
		game.Position{Row: 0, Col: 1}.Click(),
		game.Position{Row: 1, Col: 0}.Click(),
	}, actions)
}

func TestSimplifySplitsSubsets(t *testing.T) {
	a := game.Position{Row: 0, Col: 0}
	b := game.Position{Row: 0, Col: 1}
	c := game.Position{Row: 0, Col: 2}

	director := &Director{}
	director.addObservation(&Observation{numMines: 1, cells: collections.NewSet(a, b)})
	director.addObservation(&Observation{numMines: 1, cells: collections.NewSet(a, b, c)})

	require.True(t, director.simplifyObservations())
	require.Len(t, director.observations, 3)

	split := director.observations[2]
	assert.Equal(t, 0, split.numMines)
	assert.True(t, split.cells.Equal(collections.NewSet(c)))
	assert.Equal(t, "Obs[       ?, 0 ε (0, 2)]", split.String())

	assert.False(t, director.simplifyObservations())
	assert.Equal(t, []game.CellAction{c.Click()}, director.actDeliberate())
}

func TestFirstMoveIsAClick(t *testing.T) {
	board := game.NewBoard(game.BoardConfig{Rows: 9, Cols: 9, NumMines: 10, Seed: 3})

	director := &Director{}
	director.Init(board)
	actions := director.Act()

	require.Len(t, actions, 1)
	assert.Equal(t, game.Click, actions[0].Action)
}

func TestPlayNeverFlagsSafeCells(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		board := game.NewBoard(game.BoardConfig{Rows: 9, Cols: 9, NumMines: 10, Seed: seed})

		outcome := board.Play(&Director{})

		require.NotEqual(t, game.OutcomeContinue, outcome, "seed %d", seed)
		for _, cell := range board.Cells() {
			view := board.View(cell.Row(), cell.Col())
			require.False(t, view.WrongFlag, "seed %d: wrong flag at %v", seed, view.Position())
		}
	}
}

func TestActStopsWhenGameIsOver(t *testing.T) {
	board := fixedBoard(game.Position{Row: 0, Col: 0})
	board.Reveal(4, 4)
	require.Equal(t, game.Won, board.Phase())

	director := &Director{}
	director.Init(board)
	assert.Empty(t, director.Act())
}

func TestOverFlaggedNumbersAreIgnored(t *testing.T) {
	board := fixedBoard(game.Position{Row: 1, Col: 1}, game.Position{Row: 1, Col: 3}, game.Position{Row: 3, Col: 1}, game.Position{Row: 3, Col: 3})
	board.Reveal(0, 0)
	// (0, 0) touches one mine; both flags are wrong
	board.ToggleFlag(0, 1)
	board.ToggleFlag(1, 0)

	director := &Director{}
	director.Init(board)
	director.observe()

	assert.Empty(t, director.observations)
	assert.Empty(t, director.actLowestProbability())
}

func TestAddObservationRejectsImpossibleCounts(t *testing.T) {
	a := game.Position{Row: 0, Col: 0}
	b := game.Position{Row: 0, Col: 1}

	director := &Director{}
	assert.False(t, director.addObservation(&Observation{numMines: -1, cells: collections.NewSet(a)}))
	assert.False(t, director.addObservation(&Observation{numMines: 3, cells: collections.NewSet(a, b)}))
	assert.True(t, director.addObservation(&Observation{numMines: 2, cells: collections.NewSet(a, b)}))
	assert.Len(t, director.observations, 1)
}
