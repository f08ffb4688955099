package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fitengage/gym-manager/internal/core/domain"
	"github.com/fitengage/gym-manager/internal/core/ports"
)

const maxPageLimit = 100

type PaymentService struct {
	payments ports.PaymentRepository
	members  ports.MemberRepository
	tx       ports.TxRunner
	logger   zerolog.Logger
}

func NewPaymentService(payments ports.PaymentRepository, members ports.MemberRepository, tx ports.TxRunner, logger zerolog.Logger) *PaymentService {
	return &PaymentService{payments: payments, members: members, tx: tx, logger: logger}
}

// AddPayment records a payment dated with the store's current date. The member
// must exist; orphan payments would never show up in the joined listing.
func (s *PaymentService) AddPayment(ctx context.Context, in ports.PaymentInput) (uint, error) {
	if in.MemberID == 0 {
		return 0, domain.Validation("Member ID is required.")
	}

	var id uint
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.members.FindByID(ctx, in.MemberID); err != nil {
			return err
		}
		var err error
		id, err = s.payments.Create(ctx, &domain.Payment{
			MemberID:    in.MemberID,
			Amount:      in.Amount,
			PaymentType: in.PaymentType,
		})
		return err
	})
	if err != nil {
		s.logger.Warn().Err(err).Uint("member_id", in.MemberID).Msg("add payment rejected")
		return 0, fmt.Errorf("add payment: %w", err)
	}

	s.logger.Info().Uint("payment_id", id).Uint("member_id", in.MemberID).Float64("amount", in.Amount).Msg("payment recorded")
	return id, nil
}

// ListPayments returns payments most recent first unless Order is "asc".
// Page 0 returns every matching row.
func (s *PaymentService) ListPayments(ctx context.Context, in ports.ListPaymentsInput) (*ports.ListPaymentsResult, error) {
	filter := ports.PaymentFilter{
		Search:    strings.TrimSpace(in.Search),
		Ascending: strings.EqualFold(in.Order, "asc"),
	}
	if in.Page > 0 {
		filter.Page = in.Page
		filter.Limit = in.Limit
		if filter.Limit <= 0 {
			filter.Limit = 20
		}
		if filter.Limit > maxPageLimit {
			filter.Limit = maxPageLimit
		}
	}

	items, total, err := s.payments.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list payments")
		return &ports.ListPaymentsResult{Items: []domain.Payment{}}, err
	}

	result := &ports.ListPaymentsResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: 1,
	}
	if filter.Limit > 0 {
		result.TotalPages = int(math.Ceil(float64(total) / float64(filter.Limit)))
		if result.TotalPages == 0 {
			result.TotalPages = 1
		}
	}
	return result, nil
}

func (s *PaymentService) DeletePayment(ctx context.Context, id uint) error {
	if err := s.payments.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Uint("payment_id", id).Msg("failed to delete payment")
		return fmt.Errorf("delete payment: %w", err)
	}
	s.logger.Info().Uint("payment_id", id).Msg("payment deleted")
	return nil
}
