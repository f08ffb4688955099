package domain

import "time"

// User models a staff account that can sign in to the back office.
type User struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Session is an opaque login credential bound to a user.
type Session struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	Token     string    `json:"sessionToken"`
	CreatedAt time.Time `json:"createdAt"`
}

// Expired reports whether the session is older than ttl. A non-positive ttl
// means sessions never expire.
func (s *Session) Expired(ttl time.Duration, now time.Time) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(s.CreatedAt) > ttl
}
