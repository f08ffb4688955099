package ports

import (
	"context"

	"github.com/fitengage/gym-manager/internal/core/domain"
)

// UserRepository defines persistence for staff accounts.
type UserRepository interface {
	// Create inserts the user and returns its id. A unique-email violation is
	// reported as domain.ErrDuplicateEmail.
	Create(ctx context.Context, user *domain.User) (uint, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
}

// SessionRepository defines persistence for login sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	// FindByToken joins the session to its user. Unknown tokens return
	// domain.ErrInvalidSession.
	FindByToken(ctx context.Context, token string) (*domain.Session, *domain.User, error)
	// DeleteByToken removes the session; deleting an unknown token is not an error.
	DeleteByToken(ctx context.Context, token string) error
	// Latest returns the most recently created session, or nil when there are none.
	Latest(ctx context.Context) (*domain.Session, error)
}
