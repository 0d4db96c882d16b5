package user

import "context"

// Repository describes user persistence needs from use cases.
type Repository interface {
	Insert(ctx context.Context, item User) error
	GetByID(ctx context.Context, id string) (User, bool, error)
	FindByEmail(ctx context.Context, email string) (User, bool, error)
}
