package fixture

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusStarted   Status = "started"
	StatusCompleted Status = "completed"
)

// Score is the running result of a fixture, owned by the fixture itself.
type Score struct {
	Home int
	Away int
}

// Fixture represents one scheduled match between two teams.
// Teams are referenced by id only; the fixture does not own them.
type Fixture struct {
	ID         string
	HomeTeamID string
	AwayTeamID string
	Date       time.Time
	Status     Status
	Score      Score
}

func ParseStatus(value string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(value))) {
	case StatusPending:
		return StatusPending, true
	case StatusStarted:
		return StatusStarted, true
	case StatusCompleted:
		return StatusCompleted, true
	default:
		return "", false
	}
}

func (s Status) rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusStarted:
		return 1
	case StatusCompleted:
		return 2
	default:
		return -1
	}
}

// Before reports whether s comes earlier than other in the
// pending -> started -> completed lifecycle.
func (s Status) Before(other Status) bool {
	return s.rank() < other.rank()
}

func (f Fixture) Involves(teamID string) bool {
	return f.HomeTeamID == teamID || f.AwayTeamID == teamID
}
