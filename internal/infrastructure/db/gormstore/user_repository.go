package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fitengage/gym-manager/internal/core/domain"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create relies on the unique index on email; there is no pre-check.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (uint, error) {
	row := userRow{Name: user.Name, Email: user.Email, PasswordHash: user.PasswordHash}
	if err := r.store.conn(ctx).Create(&row).Error; err != nil {
		if isDuplicate(err) {
			return 0, domain.ErrDuplicateEmail
		}
		return 0, domain.StoreFailure("insert user", err)
	}
	return row.ID, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var row userRow
	if err := r.store.conn(ctx).Where(query, arg).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.StoreFailure("find user", err)
	}
	return row.toDomain(), nil
}
