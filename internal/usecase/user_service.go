package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/leaguepulse/leaguepulse/internal/domain/session"
	"github.com/leaguepulse/leaguepulse/internal/domain/user"
	"github.com/leaguepulse/leaguepulse/internal/platform/id"
	"github.com/leaguepulse/leaguepulse/internal/platform/password"
	"github.com/leaguepulse/leaguepulse/internal/platform/token"
)

type UserService struct {
	userRepo user.Repository
	sessions session.Store
	tokens   *token.Manager
	idGen    id.Generator
	now      func() time.Time
}

func NewUserService(userRepo user.Repository, sessions session.Store, tokens *token.Manager, idGen id.Generator) *UserService {
	return &UserService{
		userRepo: userRepo,
		sessions: sessions,
		tokens:   tokens,
		idGen:    idGen,
		now:      time.Now,
	}
}

type SignUpInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthResult is the outcome of a successful signup or login.
type AuthResult struct {
	User  user.User
	Token string
}

func (s *UserService) SignUp(ctx context.Context, input SignUpInput) (AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return AuthResult{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if input.Password == "" {
		return AuthResult{}, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = user.RoleUser
	}
	if role != user.RoleAdmin && role != user.RoleUser {
		return AuthResult{}, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	_, exists, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("find user by email: %w", err)
	}
	if exists {
		return AuthResult{}, fmt.Errorf("%w: record already exists", ErrConflict)
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	newID, err := s.idGen.NewID()
	if err != nil {
		return AuthResult{}, fmt.Errorf("generate user id: %w", err)
	}

	item := user.User{
		ID:           newID,
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.userRepo.Insert(ctx, item); err != nil {
		return AuthResult{}, fmt.Errorf("insert user: %w", err)
	}

	return s.openSession(ctx, item)
}

type LogInInput struct {
	Email    string
	Password string
}

func (s *UserService) LogIn(ctx context.Context, input LogInInput) (AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return AuthResult{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	item, exists, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("find user by email: %w", err)
	}
	if !exists {
		return AuthResult{}, fmt.Errorf("%w: user does not exist", ErrNotFound)
	}

	if err := password.Compare(item.PasswordHash, input.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return AuthResult{}, fmt.Errorf("%w: invalid credentials", ErrInvalidInput)
		}
		return AuthResult{}, fmt.Errorf("compare password: %w", err)
	}

	return s.openSession(ctx, item)
}

func (s *UserService) LogOut(ctx context.Context, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if err := s.sessions.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// openSession issues a fresh token and records it as the user's single
// active session, replacing any previous one.
func (s *UserService) openSession(ctx context.Context, item user.User) (AuthResult, error) {
	signed, err := s.tokens.Issue(token.Claims{
		UserID: item.ID,
		Email:  item.Email,
		Role:   item.Role,
	})
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}
	if err := s.sessions.Set(ctx, item.ID, signed); err != nil {
		return AuthResult{}, fmt.Errorf("store session: %w", err)
	}

	return AuthResult{User: item, Token: signed}, nil
}
