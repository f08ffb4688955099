package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fitengage/gym-manager/internal/core/domain"
	"github.com/fitengage/gym-manager/internal/core/ports"
)

const placeholderEmailDomain = "fitengage.com"

// ImportService maps legacy spreadsheet rows onto members. Legacy rows carry
// no membership type, so they bypass the catalog check that AddMember applies.
type ImportService struct {
	members ports.MemberRepository
	logger  zerolog.Logger
}

func NewImportService(members ports.MemberRepository, logger zerolog.Logger) *ImportService {
	return &ImportService{members: members, logger: logger}
}

func (s *ImportService) ImportRow(ctx context.Context, row ports.LegacyMemberRow) (uint, error) {
	first := strings.TrimSpace(row.FirstName)
	last := strings.TrimSpace(row.LastName)
	name := strings.TrimSpace(first + " " + last)
	if name == "" {
		return 0, domain.Validation(fmt.Sprintf("line %d: member has no name", row.Line))
	}

	email := "N/A"
	if first == "" || last == "" {
		email = fmt.Sprintf("na-%s_%s@%s", strings.ToLower(first), strings.ToLower(last), placeholderEmailDomain)
	}

	notes := make([]string, 0, len(row.Notes))
	for _, n := range row.Notes {
		if n = strings.TrimSpace(n); n != "" {
			notes = append(notes, n)
		}
	}
	joined := strings.Join(notes, " | ")
	if joined == "" {
		joined = "N/A"
	}

	id, err := s.members.Create(ctx, &domain.Member{
		Name:            name,
		Email:           email,
		Phone:           "N/A",
		MembershipStart: domain.ParseDate(row.Renewal),
		MembershipEnd:   domain.ParseDate(row.Expiry),
		Notes:           joined,
	})
	if err != nil {
		return 0, fmt.Errorf("import line %d: %w", row.Line, err)
	}

	s.logger.Debug().Int("line", row.Line).Uint("member_id", id).Msg("legacy member imported")
	return id, nil
}
