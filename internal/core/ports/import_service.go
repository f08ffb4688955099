package ports

import "context"

// LegacyMemberRow is one row of the legacy spreadsheet export.
type LegacyMemberRow struct {
	Line      int
	FirstName string
	LastName  string
	Renewal   string
	Expiry    string
	Notes     []string
}

// ImportReport summarizes a bulk import.
type ImportReport struct {
	Imported int64 `json:"imported"`
	Skipped  int64 `json:"skipped"`
}

// ImportService converts legacy rows into members.
type ImportService interface {
	ImportRow(ctx context.Context, row LegacyMemberRow) (uint, error)
}
