package ports

import (
	"context"

	"github.com/fitengage/gym-manager/internal/core/domain"
)

// MemberFilter narrows ListMembers. The zero value returns every member.
type MemberFilter struct {
	Search string // optional: case-insensitive partial match on name
}

// MemberRepository defines persistence operations for members.
type MemberRepository interface {
	List(ctx context.Context, filter MemberFilter) ([]domain.Member, error)
	// FindByID returns domain.ErrMemberNotFound when no row matches.
	FindByID(ctx context.Context, id uint) (*domain.Member, error)
	Create(ctx context.Context, m *domain.Member) (uint, error)
	// Update overwrites every column of the row with m.ID.
	Update(ctx context.Context, m *domain.Member) error
	Delete(ctx context.Context, id uint) error
}

// MembershipTypeRepository exposes the membership-type catalog.
type MembershipTypeRepository interface {
	List(ctx context.Context) ([]domain.MembershipType, error)
	// FindByID returns domain.ErrInvalidMembershipType when no row matches.
	FindByID(ctx context.Context, id uint) (*domain.MembershipType, error)
	Create(ctx context.Context, t *domain.MembershipType) (uint, error)
	Count(ctx context.Context) (int64, error)
}

// TxRunner runs fn inside a single store transaction. Repositories called with
// the ctx passed to fn take part in that transaction.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
