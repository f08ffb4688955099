package domain

// MembershipType is a price and duration tier members enroll under.
type MembershipType struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"duration_days"`
}

// Member is a gym member record managed by staff.
type Member struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	MembershipTypeID uint   `json:"membership_type_id"`
	MembershipStart  Date   `json:"membership_start"`
	MembershipEnd    Date   `json:"membership_end"`
	Notes            string `json:"notes"`
}

// Overdue reports whether the membership ended before today.
func (m *Member) Overdue(today Date) bool {
	return m.MembershipEnd.Before(today)
}

// ExpiringWithin reports whether the membership ends in [today, today+days).
func (m *Member) ExpiringWithin(today Date, days int) bool {
	if !m.MembershipEnd.Valid() || m.MembershipEnd.Before(today) {
		return false
	}
	return m.MembershipEnd.Before(today.AddDays(days))
}

// Payment is a recorded payment from a member.
type Payment struct {
	ID          uint    `json:"id"`
	MemberID    uint    `json:"member_id"`
	MemberName  string  `json:"member_name,omitempty"`
	Date        Date    `json:"date"`
	Amount      float64 `json:"amount"`
	PaymentType string  `json:"payment_type"`
}
