package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/dues-ledger/models"
	"github.com/blogem/dues-ledger/repositories"
	"github.com/blogem/dues-ledger/userctx"
)

var timeNow = func() time.Time {
	return time.Now()
}

// LedgerService resolves members and fields and applies single-cell
// mutations to the roster.
//
// Lookup failures are answered with a reply string and a nil error. A
// returned error means the store itself failed; in that case nothing was
// audited.
//
// Mutations read the current roster and then write back without any
// version check. Two processes sharing one database can lose an update;
// within one process CommandService serializes commands.
type LedgerService interface {
	FindMember(ctx context.Context, name string) (*models.Member, error)
	AddPayment(ctx context.Context, name string, amount float64) (string, error)
	SetPayment(ctx context.Context, name string, amount float64) (string, error)
	SetField(ctx context.Context, name, field, value string) (string, error)
	GetInfo(ctx context.Context, name, field string) (string, error)
}

// ledgerService implements LedgerService interface
type ledgerService struct {
	rosterRepo repositories.SheetRepository
	auditRepo  repositories.AuditRepository
	logger     *zap.Logger
}

// NewLedgerService creates a new ledger service
func NewLedgerService(rosterRepo repositories.SheetRepository, auditRepo repositories.AuditRepository, logger *zap.Logger) LedgerService {
	return &ledgerService{
		rosterRepo: rosterRepo,
		auditRepo:  auditRepo,
		logger:     logger,
	}
}

// FindMember resolves a name to its roster row, or models.ErrMemberNotFound
func (s *ledgerService) FindMember(ctx context.Context, name string) (*models.Member, error) {
	member, ok, err := s.resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrMemberNotFound, strings.TrimSpace(name))
	}
	return &member, nil
}

// AddPayment adds amount to the member's Dues Payed
func (s *ledgerService) AddPayment(ctx context.Context, name string, amount float64) (string, error) {
	member, ok, err := s.resolve(ctx, name)
	if err != nil {
		return "", err
	}
	if !ok {
		return noMatchReply(name), nil
	}

	coord, err := member.Coordinate(models.FieldDuesPayed)
	if err != nil {
		return fieldNotFoundReply(models.FieldDuesPayed, member), nil
	}

	current, err := member.DuesPayed()
	if err != nil {
		return "", fmt.Errorf("failed to read payment for %s: %w", member.FullName(), err)
	}

	newPaid := current + amount
	if err := s.writeCell(ctx, coord, models.FormatCell(newPaid)); err != nil {
		return "", err
	}

	details := fmt.Sprintf("+%s → %s", models.FormatMoney(amount), models.FormatMoney(newPaid))
	if err := s.recordAudit(ctx, models.AuditActionUpdatePayment, name, details); err != nil {
		return "", err
	}

	return fmt.Sprintf("Updated %s's payment. Total now: %s.", displayName(name), models.FormatMoney(newPaid)), nil
}

// SetPayment replaces the member's Dues Payed with amount
func (s *ledgerService) SetPayment(ctx context.Context, name string, amount float64) (string, error) {
	member, ok, err := s.resolve(ctx, name)
	if err != nil {
		return "", err
	}
	if !ok {
		return noMatchReply(name), nil
	}

	coord, err := member.Coordinate(models.FieldDuesPayed)
	if err != nil {
		return fieldNotFoundReply(models.FieldDuesPayed, member), nil
	}

	if err := s.writeCell(ctx, coord, models.FormatCell(amount)); err != nil {
		return "", err
	}

	details := "Set to " + models.FormatMoney(amount)
	if err := s.recordAudit(ctx, models.AuditActionSetPayment, name, details); err != nil {
		return "", err
	}

	return fmt.Sprintf("Set %s's payment to %s.", displayName(name), models.FormatMoney(amount)), nil
}

// SetField writes value verbatim into the column named by field
func (s *ledgerService) SetField(ctx context.Context, name, field, value string) (string, error) {
	member, ok, err := s.resolve(ctx, name)
	if err != nil {
		return "", err
	}
	if !ok {
		return fmt.Sprintf("Couldn't find '%s'.", strings.TrimSpace(name)), nil
	}

	key, ok := NormalizeField(field, member)
	if !ok {
		return fmt.Sprintf("Field '%s' doesn’t exist. Available fields: %s", strings.TrimSpace(field), availableFields(member)), nil
	}

	coord, err := member.Coordinate(key)
	if err != nil {
		return fieldNotFoundReply(key, member), nil
	}

	if err := s.writeCell(ctx, coord, value); err != nil {
		return "", err
	}

	if err := s.recordAudit(ctx, models.AuditActionSetField, name, key+" = "+value); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s for %s updated to: %s", key, displayName(name), value), nil
}

// GetInfo reads a single field. It never writes or audits.
func (s *ledgerService) GetInfo(ctx context.Context, name, field string) (string, error) {
	member, ok, err := s.resolve(ctx, name)
	if err != nil {
		return "", err
	}
	if !ok {
		return noMatchReply(name), nil
	}

	key, ok := NormalizeField(field, member)
	if !ok {
		return fieldNotFoundReply(field, member), nil
	}

	return fmt.Sprintf("%s's %s is %s", displayName(name), key, member.Get(key)), nil
}

// resolve loads the full roster and applies FindMember
func (s *ledgerService) resolve(ctx context.Context, name string) (models.Member, bool, error) {
	members, err := s.rosterRepo.ReadAllRecords(ctx)
	if err != nil {
		return models.Member{}, false, fmt.Errorf("failed to load roster: %w", err)
	}

	member, ok := FindMember(members, name)
	if !ok {
		s.logger.Debug("no member matched", zap.String("query", name), zap.Int("members", len(members)))
	}
	return member, ok, nil
}

// writeCell writes through to the roster sheet
func (s *ledgerService) writeCell(ctx context.Context, coord models.Coordinate, value string) error {
	if err := s.rosterRepo.WriteCell(ctx, coord.Row, coord.Col, value); err != nil {
		s.logger.Error("roster write failed",
			zap.Int("row", coord.Row),
			zap.Int("col", coord.Col),
			zap.Error(err))
		return fmt.Errorf("%w: %w", models.ErrStoreWrite, err)
	}
	return nil
}

// recordAudit appends one audit entry for a mutation that has been written
func (s *ledgerService) recordAudit(ctx context.Context, action, target, details string) error {
	entry := &models.AuditLogEntry{
		Timestamp: timeNow(),
		Action:    action,
		Target:    strings.TrimSpace(target),
		Details:   details,
		Actor:     userctx.GetActor(ctx),
	}

	if err := s.auditRepo.Create(ctx, entry); err != nil {
		s.logger.Error("audit append failed after roster write",
			zap.String("action", action),
			zap.String("target", entry.Target),
			zap.Error(err))
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	s.logger.Info("ledger updated",
		zap.String("action", action),
		zap.String("target", entry.Target),
		zap.String("details", details),
		zap.String("actor", entry.Actor))
	return nil
}

func noMatchReply(name string) string {
	return fmt.Sprintf("No match found for '%s'.", strings.TrimSpace(name))
}

func fieldNotFoundReply(field string, member models.Member) string {
	return fmt.Sprintf("Field '%s' not found. Available fields: %s", strings.TrimSpace(field), availableFields(member))
}
