package user

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is a registered account. PasswordHash never leaves the backend.
type User struct {
	ID           string
	Name         string
	Email        string
	Role         string
	PasswordHash string
	CreatedAt    time.Time
}

// Principal is the authenticated identity carried through request context.
type Principal struct {
	UserID string
	Email  string
	Role   string
}

func (p Principal) HasRole(roles ...string) bool {
	for _, role := range roles {
		if p.Role == role {
			return true
		}
	}
	return false
}
