// Package clock times a single game for a frontend.
package clock

import (
	"time"

	"github.com/they4kman/sweep/game"
)

// Clock starts with the first move of a game and stops when the game ends.
// Reset it whenever a new board replaces the old one.
type Clock struct {
	now func() time.Time

	startedAt time.Time
	elapsed   time.Duration
	running   bool
}

func New() *Clock {
	return &Clock{now: time.Now}
}

func (clock *Clock) Reset() {
	clock.startedAt = time.Time{}
	clock.elapsed = 0
	clock.running = false
}

// Observe follows the board's phase after a move
func (clock *Clock) Observe(phase game.Phase) {
	if phase == game.NotStarted {
		return
	}

	if clock.startedAt.IsZero() {
		clock.startedAt = clock.now()
		clock.running = true
	}
	if phase.IsOver() && clock.running {
		clock.elapsed = clock.now().Sub(clock.startedAt)
		clock.running = false
	}
}

func (clock *Clock) Running() bool {
	return clock.running
}

func (clock *Clock) Elapsed() time.Duration {
	if clock.running {
		return clock.now().Sub(clock.startedAt)
	}
	return clock.elapsed
}

func (clock *Clock) Seconds() int {
	return int(clock.Elapsed().Seconds())
}
