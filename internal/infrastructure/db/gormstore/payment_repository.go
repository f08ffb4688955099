package gormstore

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/fitengage/gym-manager/internal/core/domain"
	"github.com/fitengage/gym-manager/internal/core/ports"
)

type PaymentRepository struct {
	store *Store
}

func NewPaymentRepository(store *Store) *PaymentRepository {
	return &PaymentRepository{store: store}
}

// Create leaves the date column out of the insert when p.Date is absent so
// the column default (CURRENT_DATE) applies.
func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) (uint, error) {
	row := paymentRow{MemberID: p.MemberID, Date: p.Date, Amount: p.Amount, PaymentType: p.PaymentType}
	omit := []string{"Member"}
	if !p.Date.Valid() {
		omit = append(omit, "Date")
	}
	if err := r.store.conn(ctx).Omit(omit...).Create(&row).Error; err != nil {
		return 0, domain.StoreFailure("insert payment", err)
	}
	return row.ID, nil
}

func (r *PaymentRepository) List(ctx context.Context, filter ports.PaymentFilter) ([]domain.Payment, int64, error) {
	base := r.store.conn(ctx).
		Table("payments").
		Joins("JOIN members ON members.id = payments.member_id")
	if filter.Search != "" {
		base = base.Where("LOWER(members.name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, domain.StoreFailure("count payments", err)
	}

	order := "payments.date DESC, payments.id ASC"
	if filter.Ascending {
		order = "payments.date ASC, payments.id ASC"
	}
	q := base.
		Select("payments.id, payments.member_id, members.name AS member_name, payments.date, payments.amount, payments.payment_type").
		Order(order)
	if filter.Page > 0 && filter.Limit > 0 {
		q = q.Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var views []paymentView
	if err := q.Scan(&views).Error; err != nil {
		return nil, 0, domain.StoreFailure("list payments", err)
	}

	payments := make([]domain.Payment, 0, len(views))
	for i := range views {
		payments = append(payments, views[i].toDomain())
	}
	return payments, total, nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id uint) error {
	if err := r.store.conn(ctx).Delete(&paymentRow{}, id).Error; err != nil {
		return domain.StoreFailure("delete payment", err)
	}
	return nil
}
