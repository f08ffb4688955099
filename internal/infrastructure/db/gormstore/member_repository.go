package gormstore

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/fitengage/gym-manager/internal/core/domain"
	"github.com/fitengage/gym-manager/internal/core/ports"
)

type MemberRepository struct {
	store *Store
}

func NewMemberRepository(store *Store) *MemberRepository {
	return &MemberRepository{store: store}
}

func (r *MemberRepository) List(ctx context.Context, filter ports.MemberFilter) ([]domain.Member, error) {
	q := r.store.conn(ctx).Model(&memberRow{})
	if filter.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var rows []memberRow
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, domain.StoreFailure("list members", err)
	}

	members := make([]domain.Member, 0, len(rows))
	for i := range rows {
		members = append(members, rows[i].toDomain())
	}
	return members, nil
}

func (r *MemberRepository) FindByID(ctx context.Context, id uint) (*domain.Member, error) {
	var row memberRow
	if err := r.store.conn(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, domain.StoreFailure("find member", err)
	}
	m := row.toDomain()
	return &m, nil
}

func (r *MemberRepository) Create(ctx context.Context, m *domain.Member) (uint, error) {
	row := newMemberRow(m)
	row.ID = 0
	if err := r.store.conn(ctx).Omit("MembershipType").Create(row).Error; err != nil {
		return 0, domain.StoreFailure("insert member", err)
	}
	return row.ID, nil
}

// Update writes every column, zero values included.
func (r *MemberRepository) Update(ctx context.Context, m *domain.Member) error {
	row := newMemberRow(m)
	err := r.store.conn(ctx).Model(&memberRow{}).Where("id = ?", m.ID).Updates(map[string]any{
		"name":               row.Name,
		"email":              row.Email,
		"phone":              row.Phone,
		"address":            row.Address,
		"membership_type_id": row.MembershipTypeID,
		"membership_start":   row.MembershipStart,
		"membership_end":     row.MembershipEnd,
		"notes":              row.Notes,
	}).Error
	if err != nil {
		return domain.StoreFailure("update member", err)
	}
	return nil
}

func (r *MemberRepository) Delete(ctx context.Context, id uint) error {
	if err := r.store.conn(ctx).Delete(&memberRow{}, id).Error; err != nil {
		return domain.StoreFailure("delete member", err)
	}
	return nil
}
