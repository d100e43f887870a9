package game

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

var ErrInvalidSnapshot = errors.New("invalid board snapshot")

// Cell codes used in serialized boards
const (
	codeHidden        = '#'
	codeRevealed      = '.'
	codeFlagged       = 'f'
	codeMine          = 'O'
	codeMineFlagged   = 'F'
	codeMineRevealed  = 'X'
	codeMineDetonated = '*'
)

type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board"`
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &snapshot, nil
}

func (board *Board) Snapshot() *BoardSnapshot {
	rows := make([]string, board.rows)
	for row := range board.cells {
		var b strings.Builder
		for col := range board.cells[row] {
			b.WriteRune(board.cells[row][col].serialize())
		}
		rows[row] = b.String()
	}

	return &BoardSnapshot{
		Seed:            board.seed,
		SerializedBoard: strings.Join(rows, "\n"),
	}
}

func (cell *Cell) serialize() rune {
	switch {
	case cell.hasMine:
		switch {
		case cell.detonated:
			return codeMineDetonated
		case cell.state == Flagged:
			return codeMineFlagged
		case cell.state == Revealed:
			return codeMineRevealed
		default:
			return codeMine
		}
	case cell.state == Flagged:
		return codeFlagged
	case cell.state == Revealed:
		return codeRevealed
	default:
		return codeHidden
	}
}

// CreateBoard rebuilds the board a snapshot describes. A snapshot with no
// revealed cells (or any snapshot loaded fresh) comes back NotStarted, with
// its mines handed to a FixedPlacer so the first reveal is still safe.
// Otherwise mines, flags and reveals are restored as they were.
func (snapshot *BoardSnapshot) CreateBoard(fresh bool) (*Board, error) {
	rows := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\n"), "\n")
	for i, row := range rows {
		rows[i] = strings.TrimSpace(row)
	}

	numRows, numCols := len(rows), len(rows[0])
	if numRows < MinDimension || numRows > MaxDimension || numCols < MinDimension || numCols > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d is outside %d..%d", ErrInvalidSnapshot, numRows, numCols, MinDimension, MaxDimension)
	}

	var mines FixedPlacer
	started := false
	for row, line := range rows {
		if len(line) != numCols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSnapshot, row, len(line), numCols)
		}
		for col, code := range line {
			switch code {
			case codeMine, codeMineFlagged:
				mines = append(mines, Position{Row: row, Col: col})
			case codeMineRevealed, codeMineDetonated:
				mines = append(mines, Position{Row: row, Col: col})
				started = true
			case codeRevealed:
				started = true
			case codeHidden, codeFlagged:
			default:
				return nil, fmt.Errorf("%w: unknown cell code %q at (%d, %d)", ErrInvalidSnapshot, code, row, col)
			}
		}
	}

	board := NewBoard(BoardConfig{
		Rows:     numRows,
		Cols:     numCols,
		NumMines: len(mines),
		Seed:     snapshot.Seed,
		Placer:   mines,
	})
	if fresh {
		return board, nil
	}

	if started {
		for _, pos := range mines {
			board.cells[pos.Row][pos.Col].hasMine = true
		}
		board.totalMines = len(mines)
		board.fillAdjacency()
		board.minesPlaced = true
		board.phase = InProgress
	}

	for row, line := range rows {
		for col, code := range line {
			board.cells[row][col].deserialize(code)
		}
	}
	for _, cell := range board.Cells() {
		if cell.state == Flagged {
			board.numFlags++
		}
		if cell.detonated {
			board.phase = Lost
		}
	}
	if board.phase == InProgress && board.CheckWin() {
		board.phase = Won
	}

	return board, nil
}

func (cell *Cell) deserialize(code rune) {
	switch code {
	case codeFlagged, codeMineFlagged:
		cell.state = Flagged
	case codeRevealed, codeMineRevealed:
		cell.state = Revealed
	case codeMineDetonated:
		cell.state = Revealed
		cell.detonated = true
	default:
		cell.state = Hidden
	}
}
