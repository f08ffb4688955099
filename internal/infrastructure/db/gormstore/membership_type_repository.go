package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fitengage/gym-manager/internal/core/domain"
)

type MembershipTypeRepository struct {
	store *Store
}

func NewMembershipTypeRepository(store *Store) *MembershipTypeRepository {
	return &MembershipTypeRepository{store: store}
}

func (r *MembershipTypeRepository) List(ctx context.Context) ([]domain.MembershipType, error) {
	var rows []membershipTypeRow
	if err := r.store.conn(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, domain.StoreFailure("list membership types", err)
	}
	types := make([]domain.MembershipType, 0, len(rows))
	for i := range rows {
		types = append(types, rows[i].toDomain())
	}
	return types, nil
}

func (r *MembershipTypeRepository) FindByID(ctx context.Context, id uint) (*domain.MembershipType, error) {
	var row membershipTypeRow
	if err := r.store.conn(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidMembershipType
		}
		return nil, domain.StoreFailure("find membership type", err)
	}
	t := row.toDomain()
	return &t, nil
}

// Create is used by seeding; services never write the catalog.
func (r *MembershipTypeRepository) Create(ctx context.Context, t *domain.MembershipType) (uint, error) {
	row := membershipTypeRow{ID: t.ID, Name: t.Name, Price: t.Price, DurationDays: t.DurationDays}
	if err := r.store.conn(ctx).Create(&row).Error; err != nil {
		return 0, domain.StoreFailure("insert membership type", err)
	}
	return row.ID, nil
}

func (r *MembershipTypeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.store.conn(ctx).Model(&membershipTypeRow{}).Count(&n).Error; err != nil {
		return 0, domain.StoreFailure("count membership types", err)
	}
	return n, nil
}
