package ports

import (
	"context"

	"github.com/fitengage/gym-manager/internal/core/domain"
)

// PaymentInput carries the data needed to record a payment.
type PaymentInput struct {
	MemberID    uint
	Amount      float64
	PaymentType string
}

// ListPaymentsInput carries all parameters for the list endpoint.
type ListPaymentsInput struct {
	Search string
	Order  string // "asc" or "desc" (default)
	Page   int
	Limit  int
}

// ListPaymentsResult is returned by ListPayments.
type ListPaymentsResult struct {
	Items      []domain.Payment
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

type PaymentService interface {
	AddPayment(ctx context.Context, in PaymentInput) (uint, error)
	ListPayments(ctx context.Context, in ListPaymentsInput) (*ListPaymentsResult, error)
	DeletePayment(ctx context.Context, id uint) error
}
