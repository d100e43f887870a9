package game

// Director plays a board on the player's behalf. It should only rely on
// what Board.View exposes.
type Director interface {
	// Init binds the director to a fresh board, before the first Act
	Init(*Board)

	// Act returns the next moves to make; none means the director is stuck
	Act() []CellAction
}

type Action int

const (
	Click Action = iota
	RightClick
	MiddleClick
)

func (action Action) String() string {
	switch action {
	case Click:
		return "click"
	case RightClick:
		return "right-click"
	case MiddleClick:
		return "middle-click"
	default:
		return "unknown"
	}
}

type CellAction struct {
	Position
	Action Action
}

func (pos Position) Click() CellAction {
	return CellAction{Position: pos, Action: Click}
}

func (pos Position) RightClick() CellAction {
	return CellAction{Position: pos, Action: RightClick}
}

func (pos Position) MiddleClick() CellAction {
	return CellAction{Position: pos, Action: MiddleClick}
}

// Apply performs a single move
func (board *Board) Apply(action CellAction) RevealResult {
	switch action.Action {
	case RightClick:
		flagged := board.ToggleFlag(action.Row, action.Col)
		return RevealResult{Outcome: outcomeFor(board.phase), Changed: flagged.Changed}
	case MiddleClick:
		return board.Chord(action.Row, action.Col)
	default:
		return board.Reveal(action.Row, action.Col)
	}
}

// StepResult is the combined effect of one director step
type StepResult struct {
	RevealResult
	// Moves actually applied; the rest are dropped once the game ends
	Applied []CellAction
}

// Step asks the director for its next moves and applies them, stopping early
// if the game ends. The bool is false when the director had nothing to do.
func (board *Board) Step(director Director) (StepResult, bool) {
	result := StepResult{RevealResult: board.revealResult(nil)}

	actions := director.Act()
	if len(actions) == 0 {
		return result, false
	}

	var changed []CellView
	for _, action := range actions {
		if !board.CanPlay() {
			break
		}
		result.RevealResult = board.Apply(action)
		result.Applied = append(result.Applied, action)
		changed = append(changed, result.Changed...)
	}
	result.Changed = changed

	return result, true
}

// Play lets the director run the board until the game ends or it gets stuck
func (board *Board) Play(director Director) Outcome {
	director.Init(board)

	// Every useful move reveals or flags at least one cell
	for steps := 0; board.CanPlay() && steps < 2*board.NumCells(); steps++ {
		if _, acted := board.Step(director); !acted {
			break
		}
	}

	return outcomeFor(board.phase)
}
