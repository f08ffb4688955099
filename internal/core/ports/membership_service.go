package ports

import (
	"context"

	"github.com/fitengage/gym-manager/internal/core/domain"
)

// MemberInput carries the editable member fields. Dates are raw strings and
// are normalized by the service.
type MemberInput struct {
	Name             string
	Email            string
	Phone            string
	Address          string
	MembershipTypeID uint
	MembershipStart  string
	MembershipEnd    string
	Notes            string
}

// MembershipService defines use-case operations for members and the type catalog.
type MembershipService interface {
	ListMembers(ctx context.Context, filter MemberFilter) ([]domain.Member, error)
	ListMembershipTypes(ctx context.Context) ([]domain.MembershipType, error)
	AddMember(ctx context.Context, in MemberInput) (uint, error)
	UpdateMember(ctx context.Context, id uint, in MemberInput) error
	DeleteMember(ctx context.Context, id uint) error
}
