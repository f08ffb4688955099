package ports

import (
	"context"

	"github.com/fitengage/gym-manager/internal/core/domain"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	User         *domain.User
	SessionToken string
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (uint, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	CheckSession(ctx context.Context, token string) (*domain.User, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, userID uint) (*domain.User, error)
	ActiveSession(ctx context.Context) (*domain.Session, error)
}
