package fixture

import "time"

// Status advancement piggybacks on read traffic instead of a background
// scheduler: a pending fixture becomes started when between 90 and 100
// minutes have elapsed since kickoff, and a started fixture becomes
// completed once more than 100 minutes have elapsed. A fixture that is
// never read during its window keeps its stale status until the next read.
const (
	statusWindowOpen  = 90 * time.Minute
	statusWindowClose = 100 * time.Minute
)

// NextStatus computes the status a fixture should hold at now. It never
// regresses: callers may apply the result unconditionally, and writing the
// same status twice is harmless under racing readers.
func NextStatus(current Status, date, now time.Time) Status {
	elapsed := now.Sub(date)

	switch current {
	case StatusPending:
		if elapsed >= statusWindowOpen && elapsed <= statusWindowClose {
			return StatusStarted
		}
	case StatusStarted:
		if elapsed > statusWindowClose {
			return StatusCompleted
		}
	}

	return current
}
