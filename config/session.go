package config

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/they4kman/sweep/director/constraint"
	"github.com/they4kman/sweep/director/random"
	"github.com/they4kman/sweep/game"
)

var directors = map[string]func() game.Director{
	"none":       nil,
	"random":     func() game.Director { return &random.Director{} },
	"constraint": func() game.Director { return &constraint.Director{} },
}

// DirectorNames lists the accepted values of the director setting
func DirectorNames() []string {
	names := make([]string, 0, len(directors))
	for name := range directors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DirectorFactory returns the constructor registered under name. "none" and
// an empty name give a nil factory.
func DirectorFactory(name string) (func() game.Director, error) {
	if name == "" {
		return nil, nil
	}
	factory, ok := directors[name]
	if !ok {
		return nil, fmt.Errorf("unknown director %q (expected one of %s)", name, strings.Join(DirectorNames(), ", "))
	}
	return factory, nil
}

// Session hands out the boards for consecutive games played with one Config.
type Session struct {
	config      Config
	layout      *game.BoardSnapshot
	newDirector func() game.Director

	// Seeds for every game after the first
	seeds  *rand.Rand
	played int
}

func NewSession(config Config) (*Session, error) {
	newDirector, err := DirectorFactory(config.Director)
	if err != nil {
		return nil, err
	}

	session := &Session{config: config, newDirector: newDirector}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session.seeds = rand.New(rand.NewSource(seed))

	if config.Layout != "" {
		data, err := os.ReadFile(config.Layout)
		if err != nil {
			return nil, fmt.Errorf("failed to read layout %s: %w", config.Layout, err)
		}
		snapshot, err := game.LoadSnapshot(string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to load layout %s: %w", config.Layout, err)
		}
		if _, err := snapshot.CreateBoard(true); err != nil {
			return nil, fmt.Errorf("failed to load layout %s: %w", config.Layout, err)
		}
		session.layout = snapshot
	}

	return session, nil
}

func (session *Session) Config() Config {
	return session.config
}

// NewBoard starts the next game. A layout is replayed from scratch every time;
// otherwise the first board uses the configured seed and later ones draw
// theirs from it, so a seeded session is reproducible.
func (session *Session) NewBoard() *game.Board {
	defer func() { session.played++ }()

	if session.layout != nil {
		// Already validated by NewSession
		board, _ := session.layout.CreateBoard(true)
		return board
	}

	seed := session.config.Seed
	if session.played > 0 || seed == 0 {
		seed = session.seeds.Int63()
	}

	rows, cols, mines := game.ParseParams(session.config.Rows, session.config.Cols, session.config.Mines)
	return game.NewBoard(game.BoardConfig{
		Rows:     rows,
		Cols:     cols,
		NumMines: mines,
		Seed:     seed,
	})
}

// DirectorFactory is nil when the session has no director
func (session *Session) DirectorFactory() func() game.Director {
	return session.newDirector
}

// HeadlessDirectorFactory picks the director for games nobody watches: the
// configured one, or the constraint director when none was configured.
// Asking for "none" explicitly is an error, as nobody would make the moves.
func (session *Session) HeadlessDirectorFactory() (func() game.Director, error) {
	switch session.config.Director {
	case "":
		return directors["constraint"], nil
	case "none":
		return nil, fmt.Errorf("headless play needs a director (one of %s)", strings.Join(playingDirectorNames(), ", "))
	default:
		return session.newDirector, nil
	}
}

func playingDirectorNames() []string {
	var names []string
	for _, name := range DirectorNames() {
		if directors[name] != nil {
			names = append(names, name)
		}
	}
	return names
}
