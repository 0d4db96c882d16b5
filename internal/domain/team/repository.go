package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	Insert(ctx context.Context, item Team) error
	GetByID(ctx context.Context, id string) (Team, bool, error)
	// FindByName matches on the normalized name.
	FindByName(ctx context.Context, name string) (Team, bool, error)
	Update(ctx context.Context, item Team) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]Team, error)
	// Search performs a case-insensitive substring match against name,
	// stadium and manager. An empty term matches every team.
	Search(ctx context.Context, term string, skip, limit int) ([]Team, error)
}
