package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fitengage/gym-manager/internal/core/domain"
	"github.com/fitengage/gym-manager/internal/core/ports"
)

// MembershipService implements member CRUD and catalog reads.
type MembershipService struct {
	members ports.MemberRepository
	types   ports.MembershipTypeRepository
	tx      ports.TxRunner
	logger  zerolog.Logger
}

func NewMembershipService(
	members ports.MemberRepository,
	types ports.MembershipTypeRepository,
	tx ports.TxRunner,
	logger zerolog.Logger,
) *MembershipService {
	return &MembershipService{members: members, types: types, tx: tx, logger: logger}
}

// ListMembers returns members with dates already normalized by the store mapping.
func (s *MembershipService) ListMembers(ctx context.Context, filter ports.MemberFilter) ([]domain.Member, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	members, err := s.members.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list members")
		return []domain.Member{}, err
	}
	return members, nil
}

func (s *MembershipService) ListMembershipTypes(ctx context.Context) ([]domain.MembershipType, error) {
	types, err := s.types.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list membership types")
		return []domain.MembershipType{}, err
	}
	return types, nil
}

// AddMember validates the membership type by explicit lookup and inserts the
// member in the same transaction.
func (s *MembershipService) AddMember(ctx context.Context, in ports.MemberInput) (uint, error) {
	if in.MembershipTypeID == 0 {
		return 0, domain.ErrMissingMembershipType
	}

	member := toMember(in)
	var id uint
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.types.FindByID(ctx, in.MembershipTypeID); err != nil {
			return err
		}
		var err error
		id, err = s.members.Create(ctx, member)
		return err
	})
	if err != nil {
		s.logger.Warn().Err(err).Uint("membership_type_id", in.MembershipTypeID).Msg("add member rejected")
		return 0, fmt.Errorf("add member: %w", err)
	}

	s.logger.Info().Uint("member_id", id).Uint("membership_type_id", in.MembershipTypeID).Msg("member added")
	return id, nil
}

// UpdateMember overwrites every field of an existing member.
func (s *MembershipService) UpdateMember(ctx context.Context, id uint, in ports.MemberInput) error {
	member := toMember(in)
	member.ID = id

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.members.FindByID(ctx, id); err != nil {
			return err
		}
		if in.MembershipTypeID != 0 {
			if _, err := s.types.FindByID(ctx, in.MembershipTypeID); err != nil {
				return err
			}
		}
		return s.members.Update(ctx, member)
	})
	if err != nil {
		s.logger.Warn().Err(err).Uint("member_id", id).Msg("update member rejected")
		return fmt.Errorf("update member: %w", err)
	}

	s.logger.Info().Uint("member_id", id).Msg("member updated")
	return nil
}

// DeleteMember is idempotent: a missing row already satisfies the request.
func (s *MembershipService) DeleteMember(ctx context.Context, id uint) error {
	if err := s.members.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Uint("member_id", id).Msg("failed to delete member")
		return fmt.Errorf("delete member: %w", err)
	}
	s.logger.Info().Uint("member_id", id).Msg("member deleted")
	return nil
}

func toMember(in ports.MemberInput) *domain.Member {
	return &domain.Member{
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		Address:          in.Address,
		MembershipTypeID: in.MembershipTypeID,
		MembershipStart:  domain.ParseDate(in.MembershipStart),
		MembershipEnd:    domain.ParseDate(in.MembershipEnd),
		Notes:            in.Notes,
	}
}
