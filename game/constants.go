package game

type CellState int
type Phase int
type Outcome int

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

func (state CellState) String() string {
	switch state {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "unknown"
	}
}

const (
	NotStarted Phase = iota
	InProgress
	Won
	Lost
)

func (phase Phase) String() string {
	switch phase {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// IsOver reports whether the phase rejects further moves
func (phase Phase) IsOver() bool {
	return phase == Won || phase == Lost
}

const (
	OutcomeContinue Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (outcome Outcome) String() string {
	switch outcome {
	case OutcomeContinue:
		return "continue"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

const (
	MinDimension     = 5
	MaxDimension     = 30
	DefaultDimension = 9
	DefaultMines     = 10
)
