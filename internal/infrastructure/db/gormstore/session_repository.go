package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fitengage/gym-manager/internal/core/domain"
)

type SessionRepository struct {
	store *Store
}

func NewSessionRepository(store *Store) *SessionRepository {
	return &SessionRepository{store: store}
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	row := sessionRow{UserID: session.UserID, SessionToken: session.Token, CreatedAt: session.CreatedAt}
	if err := r.store.conn(ctx).Create(&row).Error; err != nil {
		return domain.StoreFailure("insert session", err)
	}
	session.ID = row.ID
	session.CreatedAt = row.CreatedAt
	return nil
}

// FindByToken performs a single inner join of sessions to users.
func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*domain.Session, *domain.User, error) {
	var row sessionRow
	err := r.store.conn(ctx).
		InnerJoins("User").
		Where("sessions.session_token = ?", token).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrInvalidSession
		}
		return nil, nil, domain.StoreFailure("find session", err)
	}
	if row.User == nil {
		return nil, nil, domain.ErrInvalidSession
	}
	return row.toDomain(), row.User.toDomain(), nil
}

func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	if err := r.store.conn(ctx).Where("session_token = ?", token).Delete(&sessionRow{}).Error; err != nil {
		return domain.StoreFailure("delete session", err)
	}
	return nil
}

func (r *SessionRepository) Latest(ctx context.Context) (*domain.Session, error) {
	var rows []sessionRow
	if err := r.store.conn(ctx).Order("created_at DESC, id DESC").Limit(1).Find(&rows).Error; err != nil {
		return nil, domain.StoreFailure("latest session", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].toDomain(), nil
}
