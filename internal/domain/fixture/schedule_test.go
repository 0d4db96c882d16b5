package fixture

import (
	"errors"
	"testing"
	"time"
)

var scheduleNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestValidateNew_AcceptsCleanCalendar(t *testing.T) {
	date := scheduleNow.Add(30 * 24 * time.Hour)
	existing := []Fixture{
		{ID: "fx-1", HomeTeamID: "team-c", AwayTeamID: "team-d", Date: date},
	}

	if err := ValidateNew("team-a", "team-b", date, existing, scheduleNow); err != nil {
		t.Fatalf("expected clean validation, got %v", err)
	}
}

func TestValidateNew_RejectsExactDuplicate(t *testing.T) {
	date := scheduleNow.Add(30 * 24 * time.Hour)
	existing := []Fixture{
		{ID: "fx-1", HomeTeamID: "team-a", AwayTeamID: "team-b", Date: date},
	}

	err := ValidateNew("team-a", "team-b", date, existing, scheduleNow)
	if !errors.Is(err, ErrDuplicateFixture) {
		t.Fatalf("expected ErrDuplicateFixture, got %v", err)
	}
}

func TestValidateNew_DuplicateWinsOverPastDate(t *testing.T) {
	date := scheduleNow.Add(-time.Hour)
	existing := []Fixture{
		{ID: "fx-1", HomeTeamID: "team-a", AwayTeamID: "team-b", Date: date},
	}

	err := ValidateNew("team-a", "team-b", date, existing, scheduleNow)
	if !errors.Is(err, ErrDuplicateFixture) {
		t.Fatalf("expected duplicate to win over past date, got %v", err)
	}
}

func TestValidateNew_RejectsPastDate(t *testing.T) {
	err := ValidateNew("team-a", "team-b", scheduleNow.Add(-time.Minute), nil, scheduleNow)
	if !errors.Is(err, ErrPastDate) {
		t.Fatalf("expected ErrPastDate, got %v", err)
	}
}

func TestValidateNew_ConflictWindow(t *testing.T) {
	date := scheduleNow.Add(30 * 24 * time.Hour)

	cases := []struct {
		name     string
		existing Fixture
		wantErr  error
	}{
		{
			name:     "same team ten hours later",
			existing: Fixture{HomeTeamID: "team-c", AwayTeamID: "team-b", Date: date.Add(10 * time.Hour)},
			wantErr:  ErrSchedulingConflict,
		},
		{
			name:     "home team plays away elsewhere",
			existing: Fixture{HomeTeamID: "team-d", AwayTeamID: "team-a", Date: date.Add(-20 * time.Hour)},
			wantErr:  ErrSchedulingConflict,
		},
		{
			name:     "exactly 24 hours is still a conflict",
			existing: Fixture{HomeTeamID: "team-b", AwayTeamID: "team-e", Date: date.Add(ConflictWindow)},
			wantErr:  ErrSchedulingConflict,
		},
		{
			name:     "just outside the window",
			existing: Fixture{HomeTeamID: "team-b", AwayTeamID: "team-e", Date: date.Add(ConflictWindow + time.Minute)},
			wantErr:  nil,
		},
		{
			name:     "unrelated teams inside the window",
			existing: Fixture{HomeTeamID: "team-c", AwayTeamID: "team-d", Date: date.Add(time.Hour)},
			wantErr:  nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateNew("team-a", "team-b", date, []Fixture{tc.existing}, scheduleNow)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
