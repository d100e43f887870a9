package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/sweep/game"
)

var flagGames int

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Let a director play headless games and report how it did",
	Long: `Play games without a window, letting a director make every move.
The constraint director is used unless --director or the config file names
another one; "none" is rejected.

Examples:
  sweep auto --games 1000 --rows 16 --cols 30 --mines 99
  sweep auto --director random --seed 42 --log-level debug`,
	RunE: runAuto,
}

func init() {
	autoCmd.Flags().IntVarP(&flagGames, "games", "n", 100, "Number of games to play")
}

func runAuto(cmd *cobra.Command, args []string) error {
	if flagGames < 1 {
		return fmt.Errorf("--games must be at least 1, got %d", flagGames)
	}

	newDirector, err := session.HeadlessDirectorFactory()
	if err != nil {
		return err
	}

	outcomes := map[game.Outcome]int{}
	for i := 1; i <= flagGames; i++ {
		board := session.NewBoard()
		outcome := board.Play(newDirector())
		outcomes[outcome]++

		game.Log.WithFields(logrus.Fields{
			"game":      i,
			"seed":      board.Seed(),
			"outcome":   outcome,
			"remaining": board.MinesRemaining(),
		}).Debug("played")
	}

	won := outcomes[game.OutcomeWon]
	rate := 100 * float64(won) / float64(flagGames)
	game.Log.WithFields(logrus.Fields{
		"games": flagGames,
		"won":   won,
		"lost":  outcomes[game.OutcomeLost],
		"stuck": outcomes[game.OutcomeContinue],
	}).Info("finished")

	fmt.Fprintf(cmd.OutOrStdout(), "won %d of %d games (%.1f%%)\n", won, flagGames, rate)
	return nil
}
