package chill

import (
	"time"

	"github.com/vovakirdan/chill-runner/internal/core"
)

// gameClock converts wall-clock time into elapsed-time score.
// Movement and spawning stay per tick; only this score source uses real time.
type gameClock struct {
	clock    core.Clock
	last     time.Time // Start of the current, not yet awarded second
	pausedAt time.Time
}

// start restarts second counting from now.
func (c *gameClock) start() {
	c.last = c.clock.Now()
	c.pausedAt = time.Time{}
}

// wholeSeconds returns the number of whole seconds elapsed since the last
// award and consumes them. The fractional remainder carries over.
func (c *gameClock) wholeSeconds() int {
	elapsed := c.clock.Now().Sub(c.last)
	if elapsed < time.Second {
		return 0
	}
	n := elapsed / time.Second
	c.last = c.last.Add(n * time.Second)
	return int(n)
}

func (c *gameClock) pause() {
	c.pausedAt = c.clock.Now()
}

// resume shifts the reference time so the pause does not count as play time.
func (c *gameClock) resume() {
	if c.pausedAt.IsZero() {
		return
	}
	c.last = c.last.Add(c.clock.Now().Sub(c.pausedAt))
	c.pausedAt = time.Time{}
}
