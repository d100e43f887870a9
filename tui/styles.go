package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/they4kman/sweep/game"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	wonStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	lostStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	hiddenStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	flagStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	wrongFlagStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	mineStyle      = lipgloss.NewStyle().Bold(true)
	detonatedStyle = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("9"))
	cursorStyle    = lipgloss.NewStyle().Reverse(true)

	numberStyles = [9]lipgloss.Style{
		lipgloss.NewStyle(),
		lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
)

// glyph is the single character a cell is drawn as
func glyph(view game.CellView) string {
	switch {
	case view.State == game.Flagged && view.WrongFlag:
		return "x"
	case view.State == game.Flagged:
		return "F"
	case view.Mine:
		return "*"
	case view.State == game.Hidden:
		return "#"
	case view.Adjacent == 0:
		return "."
	default:
		return strconv.Itoa(view.Adjacent)
	}
}

func cellStyle(view game.CellView) lipgloss.Style {
	switch {
	case view.State == game.Flagged && view.WrongFlag:
		return wrongFlagStyle
	case view.State == game.Flagged:
		return flagStyle
	case view.Detonated:
		return detonatedStyle
	case view.Mine:
		return mineStyle
	case view.State == game.Hidden:
		return hiddenStyle
	default:
		return numberStyles[view.Adjacent]
	}
}
