package handler

import "github.com/fitengage/gym-manager/internal/core/domain"

type paymentRequest struct {
	MemberID    uint    `json:"member_id"    validate:"required"`
	Amount      float64 `json:"amount"`
	PaymentType string  `json:"payment_type" validate:"max=64"`
}

type listPaymentsQuery struct {
	Search string `query:"search"`
	Order  string `query:"order" validate:"omitempty,oneof=asc desc"`
	Page   int    `query:"page"  validate:"gte=0"`
	Limit  int    `query:"limit" validate:"gte=0"`
}

type paymentsResponse struct {
	envelope
	Payments   []domain.Payment `json:"payments"`
	Total      int64            `json:"total"`
	Page       int              `json:"page,omitempty"`
	Limit      int              `json:"limit,omitempty"`
	TotalPages int              `json:"total_pages,omitempty"`
}

type paymentCreatedResponse struct {
	envelope
	PaymentID uint `json:"paymentId,omitempty"`
}
