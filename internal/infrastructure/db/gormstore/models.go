package gormstore

import (
	"time"

	"github.com/fitengage/gym-manager/internal/core/domain"
)

type userRow struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null;default:''"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password;not null"`
}

func (userRow) TableName() string { return "users" }

func (r *userRow) toDomain() *domain.User {
	return &domain.User{ID: r.ID, Name: r.Name, Email: r.Email, PasswordHash: r.PasswordHash}
}

type sessionRow struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;index"`
	User         *userRow  `gorm:"constraint:OnDelete:CASCADE"`
	SessionToken string    `gorm:"uniqueIndex;not null"`
	CreatedAt    time.Time `gorm:"index"`
}

func (sessionRow) TableName() string { return "sessions" }

func (r *sessionRow) toDomain() *domain.Session {
	return &domain.Session{ID: r.ID, UserID: r.UserID, Token: r.SessionToken, CreatedAt: r.CreatedAt}
}

type membershipTypeRow struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"not null"`
	Price        float64 `gorm:"type:numeric(10,2);not null;default:0"`
	DurationDays int     `gorm:"not null;default:0"`
}

func (membershipTypeRow) TableName() string { return "membership_types" }

func (r *membershipTypeRow) toDomain() domain.MembershipType {
	return domain.MembershipType{ID: r.ID, Name: r.Name, Price: r.Price, DurationDays: r.DurationDays}
}

type memberRow struct {
	ID               uint               `gorm:"primaryKey"`
	Name             string             `gorm:"not null"`
	Email            string
	Phone            string
	Address          string
	MembershipTypeID *uint              `gorm:"index"`
	MembershipType   *membershipTypeRow `gorm:"constraint:OnDelete:RESTRICT"`
	MembershipStart  domain.Date        `gorm:"type:date"`
	MembershipEnd    domain.Date        `gorm:"type:date"`
	Notes            string
}

func (memberRow) TableName() string { return "members" }

func newMemberRow(m *domain.Member) *memberRow {
	return &memberRow{
		ID:               m.ID,
		Name:             m.Name,
		Email:            m.Email,
		Phone:            m.Phone,
		Address:          m.Address,
		MembershipTypeID: optionalID(m.MembershipTypeID),
		MembershipStart:  m.MembershipStart,
		MembershipEnd:    m.MembershipEnd,
		Notes:            m.Notes,
	}
}

func (r *memberRow) toDomain() domain.Member {
	m := domain.Member{
		ID:              r.ID,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Address:         r.Address,
		MembershipStart: r.MembershipStart,
		MembershipEnd:   r.MembershipEnd,
		Notes:           r.Notes,
	}
	if r.MembershipTypeID != nil {
		m.MembershipTypeID = *r.MembershipTypeID
	}
	return m
}

type paymentRow struct {
	ID          uint        `gorm:"primaryKey"`
	MemberID    uint        `gorm:"not null;index"`
	Member      *memberRow  `gorm:"constraint:OnDelete:CASCADE"`
	Date        domain.Date `gorm:"type:date;not null;default:(CURRENT_DATE);index"`
	Amount      float64     `gorm:"type:numeric(10,2);not null"`
	PaymentType string
}

func (paymentRow) TableName() string { return "payments" }

// paymentView is the joined projection returned by List.
type paymentView struct {
	ID          uint
	MemberID    uint
	MemberName  string
	Date        domain.Date
	Amount      float64
	PaymentType string
}

func (v *paymentView) toDomain() domain.Payment {
	return domain.Payment{
		ID:          v.ID,
		MemberID:    v.MemberID,
		MemberName:  v.MemberName,
		Date:        v.Date,
		Amount:      v.Amount,
		PaymentType: v.PaymentType,
	}
}

func optionalID(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}
