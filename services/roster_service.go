package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/blogem/dues-ledger/models"
	"github.com/blogem/dues-ledger/repositories"
)

// RosterService loads roster data into the backing sheet
type RosterService interface {
	Seed(ctx context.Context, seed *models.RosterSeed) (int, error)
}

// rosterService implements RosterService interface
type rosterService struct {
	rosterRepo repositories.SheetRepository
	logger     *zap.Logger
}

// NewRosterService creates a new roster service
func NewRosterService(rosterRepo repositories.SheetRepository, logger *zap.Logger) RosterService {
	return &rosterService{rosterRepo: rosterRepo, logger: logger}
}

// Seed writes the header and rows into an empty sheet and returns the
// number of member rows written. A sheet that already has rows is left
// untouched.
func (s *rosterService) Seed(ctx context.Context, seed *models.RosterSeed) (int, error) {
	if errors := seed.Validate(); len(errors) > 0 {
		return 0, fmt.Errorf("validation failed: %s", strings.Join(errors, ", "))
	}

	used, err := s.rosterRepo.RowCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to inspect roster: %w", err)
	}
	if used > 0 {
		return 0, fmt.Errorf("roster already has %d rows; refusing to seed", used)
	}

	if err := s.rosterRepo.AppendRow(ctx, seed.Columns); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range seed.Rows {
		if err := s.rosterRepo.AppendRow(ctx, row); err != nil {
			return i, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	s.logger.Info("roster seeded",
		zap.Int("columns", len(seed.Columns)),
		zap.Int("rows", len(seed.Rows)))
	return len(seed.Rows), nil
}
