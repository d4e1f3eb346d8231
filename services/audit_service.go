package services

import (
	"context"
	"fmt"

	"github.com/blogem/dues-ledger/models"
	"github.com/blogem/dues-ledger/repositories"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// AuditService exposes the append-only audit log for reading
type AuditService interface {
	GetRecentEntries(ctx context.Context, limit int) ([]models.AuditLogEntry, error)
	GetEntryCount(ctx context.Context) (int, error)
}

// auditService implements AuditService interface
type auditService struct {
	auditRepo repositories.AuditRepository
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repositories.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// GetRecentEntries returns the newest entries first. Non-positive limits
// use the default and large ones are capped.
func (s *auditService) GetRecentEntries(ctx context.Context, limit int) ([]models.AuditLogEntry, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}

	entries, err := s.auditRepo.GetRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit entries: %w", err)
	}
	return entries, nil
}

// GetEntryCount returns the number of audit entries
func (s *auditService) GetEntryCount(ctx context.Context) (int, error) {
	return s.auditRepo.Count(ctx)
}
