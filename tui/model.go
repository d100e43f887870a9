// Package tui plays the game in a terminal with Bubble Tea.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/they4kman/sweep/game"
)

type Config struct {
	NewBoard func() *game.Board
	// Optional; nil disables the director key
	NewDirector func() game.Director
}

// tickMsg advances the clock of the game it was started for
type tickMsg struct {
	id int
}

func tickCmd(id int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

// Model is the Bubble Tea model for one terminal session.
type Model struct {
	config   Config
	board    *game.Board
	director game.Director
	cursor   game.Position

	// Counts games started, so ticks from an abandoned game are ignored
	games   int
	elapsed int
	ticking bool

	message  string
	quitting bool
}

func NewModel(config Config) Model {
	m := Model{config: config}
	m.newGame()
	return m
}

func (m *Model) newGame() {
	m.board = m.config.NewBoard()
	m.director = nil
	if m.config.NewDirector != nil {
		m.director = m.config.NewDirector()
		m.director.Init(m.board)
	}
	m.cursor = game.Position{Row: m.board.Rows() / 2, Col: m.board.Cols() / 2}
	m.games++
	m.elapsed = 0
	m.ticking = false
	m.message = ""
}

func (m Model) Board() *game.Board {
	return m.board
}

func (m Model) Cursor() game.Position {
	return m.cursor
}

func (m Model) Elapsed() int {
	return m.elapsed
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if msg.id != m.games || m.board.Phase() != game.InProgress {
			if msg.id == m.games {
				m.ticking = false
			}
			return m, nil
		}
		m.elapsed++
		return m, tickCmd(m.games)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "n":
		m.newGame()
		return m, nil

	case "up", "k":
		m.move(-1, 0)
	case "down", "j":
		m.move(1, 0)
	case "left", "h":
		m.move(0, -1)
	case "right", "l":
		m.move(0, 1)

	case " ", "enter":
		m.board.Reveal(m.cursor.Row, m.cursor.Col)
		return m.afterMove()
	case "f":
		m.board.ToggleFlag(m.cursor.Row, m.cursor.Col)
		return m.afterMove()
	case "c":
		m.board.Chord(m.cursor.Row, m.cursor.Col)
		return m.afterMove()
	case "a":
		if m.director == nil {
			m.message = "no director; start with --director"
			return m, nil
		}
		if _, acted := m.board.Step(m.director); !acted && m.board.CanPlay() {
			m.message = "the director is stuck"
		}
		return m.afterMove()
	}

	return m, nil
}

func (m *Model) move(dRow, dCol int) {
	row, col := m.cursor.Row+dRow, m.cursor.Col+dCol
	if m.board.InBounds(row, col) {
		m.cursor = game.Position{Row: row, Col: col}
	}
}

// afterMove starts the clock once the first reveal has been made
func (m Model) afterMove() (tea.Model, tea.Cmd) {
	if m.board.Phase() == game.InProgress && !m.ticking {
		m.ticking = true
		return m, tickCmd(m.games)
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var status string
	switch m.board.Phase() {
	case game.Won:
		status = wonStyle.Render("WIN!")
	case game.Lost:
		status = lostStyle.Render("LOSE :(")
	default:
		status = titleStyle.Render("sweep")
	}

	var grid strings.Builder
	for row := 0; row < m.board.Rows(); row++ {
		if row > 0 {
			grid.WriteString("\n")
		}
		for col := 0; col < m.board.Cols(); col++ {
			if col > 0 {
				grid.WriteString(" ")
			}
			view := m.board.View(row, col)
			if view.Position() == m.cursor {
				grid.WriteString(cursorStyle.Render(glyph(view)))
			} else {
				grid.WriteString(cellStyle(view).Render(glyph(view)))
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%03d  %s  %03d\n", m.board.MinesRemaining(), status, m.elapsed)
	b.WriteString(boardStyle.Render(grid.String()))
	b.WriteString("\n")
	if m.message != "" {
		b.WriteString(m.message)
		b.WriteString("\n")
	}

	help := "arrows move • space reveal • f flag • c chord • n new • q quit"
	if m.director != nil {
		help = "arrows move • space reveal • f flag • c chord • a director • n new • q quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
