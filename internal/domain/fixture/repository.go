package fixture

import (
	"context"
	"time"
)

// SearchFilter narrows a fixture search. Zero values mean "no filter",
// except Skip/Limit which the caller is expected to have clamped.
type SearchFilter struct {
	From    time.Time
	To      time.Time
	Status  Status
	TeamIDs []string
	Skip    int
	Limit   int
}

// Repository describes fixture persistence needs from use cases.
type Repository interface {
	Insert(ctx context.Context, item Fixture) error
	GetByID(ctx context.Context, id string) (Fixture, bool, error)
	Update(ctx context.Context, item Fixture) error
	// UpdateStatus persists a lifecycle advancement. It must be idempotent:
	// writing the same target status twice is not an error.
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]Fixture, error)
	// ListInvolving returns fixtures where any of the teams plays home or
	// away with a kickoff inside [from, to], bounds inclusive.
	ListInvolving(ctx context.Context, teamIDs []string, from, to time.Time) ([]Fixture, error)
	Search(ctx context.Context, filter SearchFilter) ([]Fixture, error)
}
