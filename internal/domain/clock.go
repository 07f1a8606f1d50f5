package domain

import (
	"time"

	"github.com/jonboulle/clockwork"
)

var clock clockwork.Clock = clockwork.NewRealClock()

// SetClock replaces the clock that stamps summaries and returns the one it
// replaced. A nil c selects the real clock.
func SetClock(c clockwork.Clock) clockwork.Clock {
	prev := clock
	if c == nil {
		c = clockwork.NewRealClock()
	}
	clock = c
	return prev
}

// stampTime is the generation time recorded on a summary: UTC, whole seconds,
// matching the precision the summary page prints.
func stampTime() time.Time {
	return clock.Now().UTC().Truncate(time.Second)
}
