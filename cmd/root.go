package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/faiface/pixel/pixelgl"
	"github.com/spf13/cobra"
	"github.com/they4kman/sweep/config"
	"github.com/they4kman/sweep/game"
	"github.com/they4kman/sweep/gui"
)

var (
	flagRows, flagCols, flagMines string
	flagSeed                      int64
	flagDirector                  directorValue
	flagConfig                    string
	flagLayout                    string
	flagLogLevel                  string

	// Built from the config file and flags before any command runs
	session *config.Session
)

var rootCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Play manual or computer-driven Minesweeper",
	Long: `sweep is a Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play in a window
	sweep

Play in the terminal instead
	sweep term

Use the director flag to let the computer play; Right arrow takes one step,
Space toggles autoplay
	sweep --director constraint

Measure a director over many headless games
	sweep auto --games 500
`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		var err error
		pixelgl.Run(func() {
			err = gui.Run(gui.Config{
				NewBoard:    session.NewBoard,
				NewDirector: session.DirectorFactory(),
			})
		})
		return err
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// setup layers command-line flags over the config file
func setup(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	changedString := func(name string, value *string) *string {
		if flags.Changed(name) {
			return value
		}
		return nil
	}

	overrides := config.Overrides{
		Rows:     changedString("rows", &flagRows),
		Cols:     changedString("cols", &flagCols),
		Mines:    changedString("mines", &flagMines),
		Director: changedString("director", (*string)(&flagDirector)),
		Layout:   changedString("layout", &flagLayout),
		LogLevel: changedString("log-level", &flagLogLevel),
	}
	if flags.Changed("seed") {
		overrides.Seed = &flagSeed
	}

	cfg, err := config.Resolve(flagConfig, overrides)
	if err != nil {
		return err
	}

	level, _ := cfg.Level() // validated by Resolve
	game.Log.SetLevel(level)

	session, err = config.NewSession(cfg)
	return err
}

type directorValue string

func (directorVal *directorValue) String() string {
	return string(*directorVal)
}

func (directorVal *directorValue) Set(value string) error {
	if _, err := config.DirectorFactory(value); err != nil {
		return err
	}
	*directorVal = directorValue(value)
	return nil
}

func (directorVal *directorValue) Type() string {
	return "director"
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&flagRows, "rows", "r", "9", "Height of game board, in cells (5-30)")
	flags.StringVarP(&flagCols, "cols", "c", "9", "Width of game board, in cells (5-30)")
	flags.StringVarP(&flagMines, "mines", "m", "10", "Number of mines to place in the game board")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.VarP(&flagDirector, "director", "d", fmt.Sprintf("Computer player: %s", strings.Join(config.DirectorNames(), ", ")))
	flags.StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	flags.StringVar(&flagLayout, "layout", "", "Path to a board snapshot to play instead of a random board")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(autoCmd)
}
