package fixture

import (
	"errors"
	"time"
)

// ConflictWindow is the interval around a kickoff during which neither
// participating team may have another fixture.
const ConflictWindow = 24 * time.Hour

var (
	ErrDuplicateFixture   = errors.New("this fixture already exists")
	ErrPastDate           = errors.New("cannot create a fixture in the past")
	ErrSchedulingConflict = errors.New("one of the teams has a match within 24 hours of this fixture")
)

// ValidateNew decides whether a new fixture between the two teams may be
// scheduled at date. It is a pure read-then-decide check over the fixtures
// already on the calendar; checks run in order and the first failure wins.
// Window bounds are inclusive on both ends.
func ValidateNew(homeTeamID, awayTeamID string, date time.Time, existing []Fixture, now time.Time) error {
	for _, item := range existing {
		if item.HomeTeamID == homeTeamID && item.AwayTeamID == awayTeamID && item.Date.Equal(date) {
			return ErrDuplicateFixture
		}
	}

	if date.Before(now) {
		return ErrPastDate
	}

	for _, item := range existing {
		if !item.Involves(homeTeamID) && !item.Involves(awayTeamID) {
			continue
		}
		gap := item.Date.Sub(date)
		if gap < 0 {
			gap = -gap
		}
		if gap <= ConflictWindow {
			return ErrSchedulingConflict
		}
	}

	return nil
}
