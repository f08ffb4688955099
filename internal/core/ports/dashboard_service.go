package ports

import (
	"context"

	"github.com/fitengage/gym-manager/internal/core/domain"
)

// DashboardService derives overview statistics for a given calendar day.
type DashboardService interface {
	Summary(ctx context.Context, today domain.Date) (*domain.DashboardSummary, error)
}
