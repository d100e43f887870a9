package cmd

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/they4kman/sweep/game"
	"github.com/they4kman/sweep/tui"
)

var flagLogFile string

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play Minesweeper in the terminal.

Controls:
  Arrows/hjkl  - Move the cursor
  Space/Enter  - Reveal
  F            - Toggle flag
  C            - Chord (reveal around a satisfied number)
  A            - Let the director take a step
  N            - New game
  Q/Ctrl+C     - Quit`,
	RunE: runTerm,
}

func init() {
	termCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while the terminal UI runs")
}

func runTerm(cmd *cobra.Command, args []string) error {
	// Anything logged to the terminal would tear the UI
	if flagLogFile == "" {
		game.Log.SetOutput(io.Discard)
	} else {
		file, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer file.Close()
		game.Log.SetOutput(file)
	}

	model := tui.NewModel(tui.Config{
		NewBoard:    session.NewBoard,
		NewDirector: session.DirectorFactory(),
	})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}
