package fixture

import (
	"errors"
	"time"
)

var (
	ErrNotStarted       = errors.New("game has not started, you cannot update scores yet or set as completed")
	ErrStatusRegression = errors.New("fixture status cannot move backwards")
)

// Patch carries a partial fixture update; nil fields are left untouched.
type Patch struct {
	HomeTeamID *string
	AwayTeamID *string
	Date       *time.Time
	Status     *Status
	Score      *Score
}

// AuthorizeUpdate gates a patch against the fixture's kickoff time: the
// score may not be set and the status may not be forced to completed while
// the fixture is still in the future. Status changes must move forward.
func AuthorizeUpdate(f Fixture, p Patch, now time.Time) error {
	if f.Date.After(now) {
		if p.Score != nil {
			return ErrNotStarted
		}
		if p.Status != nil && *p.Status == StatusCompleted {
			return ErrNotStarted
		}
	}

	if p.Status != nil && p.Status.Before(f.Status) {
		return ErrStatusRegression
	}

	return nil
}

// Apply returns a copy of f with the patch's set fields applied verbatim.
func (p Patch) Apply(f Fixture) Fixture {
	if p.HomeTeamID != nil {
		f.HomeTeamID = *p.HomeTeamID
	}
	if p.AwayTeamID != nil {
		f.AwayTeamID = *p.AwayTeamID
	}
	if p.Date != nil {
		f.Date = *p.Date
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
	if p.Score != nil {
		f.Score = *p.Score
	}
	return f
}
