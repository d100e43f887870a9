package constraint

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/sweep/director/random"
	"github.com/they4kman/sweep/game"
	"github.com/they4kman/sweep/util/collections"
)

// Director plays by deduction: every revealed number constrains its hidden
// neighbors, and constraints that contain one another are split into
// smaller ones. When nothing is certain it clicks the cell least likely to
// hold a mine.
type Director struct {
	board    *game.Board
	fallback random.Director

	observations []*Observation
}

// Observation says that exactly numMines of cells hold a mine
type Observation struct {
	origin   *game.Position
	numMines int
	cells    collections.Set[game.Position]
}

func (observation Observation) String() string {
	cells := sortedPositions(observation.cells)
	cellsRepr := make([]string, len(cells))
	for i, cell := range cells {
		cellsRepr[i] = cell.String()
	}

	originRepr := "?"
	if observation.origin != nil {
		originRepr = observation.origin.String()
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, strings.Join(cellsRepr, ", "))
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.fallback.Init(board)
	director.observations = nil
}

func (director *Director) Act() []game.CellAction {
	if director.board == nil || !director.board.CanPlay() {
		return nil
	}

	director.observe()
	for i := 0; i < 4; i++ {
		if !director.simplifyObservations() {
			break
		}
	}

	if actions := director.actDeliberate(); len(actions) > 0 {
		return actions
	}
	if actions := director.actLowestProbability(); len(actions) > 0 {
		return actions
	}
	return director.fallback.Act()
}

// observe rebuilds one observation per revealed number that still borders
// hidden cells
func (director *Director) observe() {
	board := director.board
	director.observations = director.observations[:0]

	for _, cell := range board.Cells() {
		view := board.View(cell.Row(), cell.Col())
		if view.State != game.Revealed || view.Mine {
			continue
		}

		origin := view.Position()
		observation := Observation{
			origin:   &origin,
			numMines: view.Adjacent,
			cells:    make(collections.Set[game.Position]),
		}
		for _, neighbor := range board.Neighbors(view.Row, view.Col) {
			switch neighbor.State() {
			case game.Flagged:
				observation.numMines--
			case game.Hidden:
				observation.cells.Add(neighbor.Position())
			}
		}

		director.addObservation(&observation)
	}
}

// simplifyObservations splits every observation that contains another into
// the part outside it. It reports whether anything new was learned.
func (director *Director) simplifyObservations() bool {
	learned := false

	for _, observation := range director.observations {
		for _, other := range director.observations {
			if other == observation || len(other.cells) <= len(observation.cells) {
				continue
			}
			if _, isSubset := observation.cells.IntersectionEx(other.cells); !isSubset {
				continue
			}

			split := Observation{
				numMines: other.numMines - observation.numMines,
				cells:    other.cells.Difference(observation.cells),
			}
			if director.addObservation(&split) {
				learned = true
			}
		}
	}

	return learned
}

// addObservation ignores vacuous observations, ones already known, and ones
// that wrong player flags have made impossible
func (director *Director) addObservation(observation *Observation) bool {
	if len(observation.cells) == 0 {
		return false
	}
	if observation.numMines < 0 || observation.numMines > len(observation.cells) {
		return false
	}
	for _, known := range director.observations {
		if known.cells.Equal(observation.cells) {
			return false
		}
	}

	director.observations = append(director.observations, observation)
	return true
}

func (director *Director) actDeliberate() []game.CellAction {
	clicks := make(collections.Set[game.Position])
	flags := make(collections.Set[game.Position])

	for _, observation := range director.observations {
		switch observation.numMines {
		case 0:
			for cell := range observation.cells {
				clicks.Add(cell)
			}
		case len(observation.cells):
			for cell := range observation.cells {
				flags.Add(cell)
			}
		}
	}

	var actions []game.CellAction
	for _, cell := range sortedPositions(flags) {
		actions = append(actions, cell.RightClick())
	}
	for _, cell := range sortedPositions(clicks) {
		actions = append(actions, cell.Click())
	}

	if len(actions) > 0 {
		game.Log.WithFields(logrus.Fields{
			"flags":  len(flags),
			"clicks": len(clicks),
		}).Debug("director deduced moves")
	}
	return actions
}

func (director *Director) actLowestProbability() []game.CellAction {
	lowestProbability := math.Inf(1)
	cellProbabilities := make(map[game.Position]float64)

	// A cell is as risky as the riskiest observation it belongs to
	for _, observation := range director.observations {
		probability := observation.MineProbability()
		for cell := range observation.cells {
			if past, ok := cellProbabilities[cell]; ok && past >= probability {
				continue
			}
			cellProbabilities[cell] = probability
		}
	}
	for _, probability := range cellProbabilities {
		lowestProbability = math.Min(lowestProbability, probability)
	}

	var lowestProbabilityCells []game.Position
	for cell, probability := range cellProbabilities {
		if probability <= lowestProbability {
			lowestProbabilityCells = append(lowestProbabilityCells, cell)
		}
	}
	sort.Slice(lowestProbabilityCells, func(i, j int) bool {
		return less(lowestProbabilityCells[i], lowestProbabilityCells[j])
	})

	cell, ok := director.fallback.Pick(lowestProbabilityCells)
	if !ok {
		return nil
	}

	game.Log.WithFields(logrus.Fields{
		"cell":        cell,
		"probability": lowestProbability,
	}).Debug("director guessed")
	return []game.CellAction{cell.Click()}
}

func sortedPositions(set collections.Set[game.Position]) []game.Position {
	positions := make([]game.Position, 0, len(set))
	for pos := range set {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		return less(positions[i], positions[j])
	})
	return positions
}

func less(a, b game.Position) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}
