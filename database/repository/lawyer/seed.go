package lawyerRepo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"justnest/models"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// seedFile is the layout of the lawyer seed document.
type seedFile struct {
	Lawyers []models.Lawyer `yaml:"lawyers"`
}

// LoadSeed parses a YAML lawyer seed document.
func LoadSeed(path string) ([]models.Lawyer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lawyer seed %s: %w", path, err)
	}
	var doc seedFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse lawyer seed %s: %w", path, err)
	}
	for i, l := range doc.Lawyers {
		if l.ID == "" {
			return nil, fmt.Errorf("lawyer seed entry %d has no id", i)
		}
		if l.Availability == "" {
			doc.Lawyers[i].Availability = models.AvailabilityAvailable
		}
	}
	return doc.Lawyers, nil
}

// Seed inserts every lawyer of the seed file, skipping entries already present.
func Seed(ctx context.Context, repo LawyerRepository, path string, now time.Time, logger *zap.Logger) (int, error) {
	lawyers, err := LoadSeed(path)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for i := range lawyers {
		l := &lawyers[i]
		l.CreatedAt = now
		l.UpdatedAt = now
		if err := repo.Create(ctx, l); err != nil {
			if errors.Is(err, ErrDuplicateLawyer) {
				logger.Debug("Lawyer seed entry already present", zap.String("id", l.ID))
				continue
			}
			return inserted, fmt.Errorf("failed to seed lawyer %s: %w", l.ID, err)
		}
		inserted++
	}
	return inserted, nil
}
