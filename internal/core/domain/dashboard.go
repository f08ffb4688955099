package domain

// ExpiringSoonDays is the window used for the "expiring soon" counter.
const ExpiringSoonDays = 7

// MonthlyRevenue is one point of a revenue series.
type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// DashboardSummary aggregates member and payment data for the overview page.
type DashboardSummary struct {
	AsOf                Date             `json:"as_of"`
	TotalMembers        int              `json:"total_members"`
	OverdueMembers      int              `json:"overdue_members"`
	ExpiringSoonMembers int              `json:"expiring_soon_members"`
	ProjectedRevenue    []MonthlyRevenue `json:"projected_revenue"`
	CollectedRevenue    []MonthlyRevenue `json:"collected_revenue"`
}
