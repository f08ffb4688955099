package ports

import (
	"context"

	"github.com/fitengage/gym-manager/internal/core/domain"
)

// PaymentFilter carries the query parameters for listing payments.
type PaymentFilter struct {
	Search    string // optional: partial match on member name
	Ascending bool   // default is most recent first
	Page      int    // 1-based; 0 disables pagination
	Limit     int    // rows per page when paginating
}

// PaymentRepository defines persistence operations for payments.
type PaymentRepository interface {
	// Create inserts p. When p.Date is absent the store's current date is used.
	Create(ctx context.Context, p *domain.Payment) (uint, error)
	// List returns payments joined with the member name, ordered by date and
	// then id, together with the total number of matching rows.
	List(ctx context.Context, filter PaymentFilter) ([]domain.Payment, int64, error)
	Delete(ctx context.Context, id uint) error
}
