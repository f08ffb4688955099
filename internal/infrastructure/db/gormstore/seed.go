package gormstore

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"

	"github.com/fitengage/gym-manager/internal/core/domain"
)

//go:embed seeds/membership_types.yaml
var defaultSeed []byte

type seedFile struct {
	MembershipTypes []struct {
		ID           uint    `yaml:"id"`
		Name         string  `yaml:"name"`
		Price        float64 `yaml:"price"`
		DurationDays int     `yaml:"duration_days"`
	} `yaml:"membership_types"`
}

// LoadSeed reads a membership-type catalog. An empty path returns the
// embedded default catalog.
func LoadSeed(path string) ([]domain.MembershipType, error) {
	data := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("gormstore: read seed %s: %w", path, err)
		}
		data = b
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("gormstore: parse seed: %w", err)
	}

	types := make([]domain.MembershipType, 0, len(f.MembershipTypes))
	for _, t := range f.MembershipTypes {
		if t.Name == "" {
			return nil, fmt.Errorf("gormstore: seed entry %d has no name", t.ID)
		}
		types = append(types, domain.MembershipType{ID: t.ID, Name: t.Name, Price: t.Price, DurationDays: t.DurationDays})
	}
	return types, nil
}

// SeedMembershipTypes inserts types only when the catalog is empty, so an
// operator-edited catalog is never overwritten on restart.
func SeedMembershipTypes(ctx context.Context, repo *MembershipTypeRepository, types []domain.MembershipType, log zerolog.Logger) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Debug().Int64("existing", n).Msg("membership catalog already seeded")
		return nil
	}

	return repo.store.WithinTx(ctx, func(ctx context.Context) error {
		for i := range types {
			if _, err := repo.Create(ctx, &types[i]); err != nil {
				return err
			}
		}
		log.Info().Int("count", len(types)).Msg("membership catalog seeded")
		return nil
	})
}
