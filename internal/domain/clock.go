package domain

import "github.com/jonboulle/clockwork"

// clock is a package-level time source so tests can freeze time via SetClock.
// Production code uses the real clock; tests inject a fake so Dataset.LoadedAt
// is deterministic.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for dataset loading. Pass nil to reset to
// real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// Clock returns the package time source. The parser stamps Dataset.LoadedAt
// from it.
func Clock() clockwork.Clock { return clock }
