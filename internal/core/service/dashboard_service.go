package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitengage/gym-manager/internal/core/domain"
	"github.com/fitengage/gym-manager/internal/core/ports"
)

type DashboardService struct {
	members  ports.MemberRepository
	types    ports.MembershipTypeRepository
	payments ports.PaymentRepository
	logger   zerolog.Logger
}

func NewDashboardService(
	members ports.MemberRepository,
	types ports.MembershipTypeRepository,
	payments ports.PaymentRepository,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{members: members, types: types, payments: payments, logger: logger}
}

// Summary counts overdue and soon-to-expire memberships relative to today and
// builds two revenue series for today's year: projected (type price by
// membership start month) and collected (payments by payment month).
func (s *DashboardService) Summary(ctx context.Context, today domain.Date) (*domain.DashboardSummary, error) {
	if !today.Valid() {
		return nil, domain.Validation("A valid date is required.")
	}

	members, err := s.members.List(ctx, ports.MemberFilter{})
	if err != nil {
		return nil, fmt.Errorf("dashboard: members: %w", err)
	}
	types, err := s.types.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: membership types: %w", err)
	}
	payments, _, err := s.payments.List(ctx, ports.PaymentFilter{})
	if err != nil {
		return nil, fmt.Errorf("dashboard: payments: %w", err)
	}

	prices := make(map[uint]float64, len(types))
	for _, t := range types {
		prices[t.ID] = t.Price
	}

	var projected, collected [12]float64
	summary := &domain.DashboardSummary{AsOf: today, TotalMembers: len(members)}
	for i := range members {
		m := &members[i]
		switch {
		case m.Overdue(today):
			summary.OverdueMembers++
		case m.ExpiringWithin(today, domain.ExpiringSoonDays):
			summary.ExpiringSoonMembers++
		}
		if m.MembershipStart.Valid() && m.MembershipStart.Year() == today.Year() {
			projected[m.MembershipStart.Month()-1] += prices[m.MembershipTypeID]
		}
	}
	for _, p := range payments {
		if p.Date.Valid() && p.Date.Year() == today.Year() {
			collected[p.Date.Month()-1] += p.Amount
		}
	}

	summary.ProjectedRevenue = revenueSeries(projected)
	summary.CollectedRevenue = revenueSeries(collected)

	s.logger.Debug().
		Str("as_of", today.String()).
		Int("overdue", summary.OverdueMembers).
		Int("expiring_soon", summary.ExpiringSoonMembers).
		Msg("dashboard summary computed")
	return summary, nil
}

func revenueSeries(totals [12]float64) []domain.MonthlyRevenue {
	out := make([]domain.MonthlyRevenue, 12)
	for i, v := range totals {
		out[i] = domain.MonthlyRevenue{Month: time.Month(i + 1).String()[:3], Revenue: v}
	}
	return out
}
