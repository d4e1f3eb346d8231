package services

import (
	"context"
	"testing"

	"go.uber.org/goleak"

	"github.com/blogem/dues-ledger/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testHeader = []string{"First Name", "Last Name", "Email", "Dues Owed", "Dues Payed"}

// roster builds members the way the sheet repository returns them
func roster(rows ...[]string) []models.Member {
	members := make([]models.Member, 0, len(rows))
	for i, row := range rows {
		members = append(members, models.NewMember(i+2, testHeader, row))
	}
	return members
}

// memorySheet is an in-memory SheetRepository for end-to-end service tests
type memorySheet struct {
	header    []string
	rows      [][]string
	writeErr  error
	readCalls int
}

func newMemorySheet(rows ...[]string) *memorySheet {
	s := &memorySheet{header: append([]string(nil), testHeader...)}
	for _, row := range rows {
		s.rows = append(s.rows, append([]string(nil), row...))
	}
	return s
}

func (s *memorySheet) ReadAllRecords(ctx context.Context) ([]models.Member, error) {
	s.readCalls++
	members := make([]models.Member, 0, len(s.rows))
	for i, row := range s.rows {
		members = append(members, models.NewMember(i+2, s.header, row))
	}
	return members, nil
}

func (s *memorySheet) WriteCell(ctx context.Context, row, col int, value string) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	if row == models.HeaderRow {
		s.header[col-1] = value
		return nil
	}
	for len(s.rows) < row-1 {
		s.rows = append(s.rows, nil)
	}
	r := s.rows[row-2]
	for len(r) < col {
		r = append(r, "")
	}
	r[col-1] = value
	s.rows[row-2] = r
	return nil
}

func (s *memorySheet) AppendRow(ctx context.Context, values []string) error {
	if s.header == nil {
		s.header = append([]string(nil), values...)
		return nil
	}
	s.rows = append(s.rows, append([]string(nil), values...))
	return nil
}

func (s *memorySheet) RowCount(ctx context.Context) (int, error) {
	if s.header == nil {
		return 0, nil
	}
	return len(s.rows) + 1, nil
}

func (s *memorySheet) cell(row int, key string) string {
	return models.NewMember(row, s.header, s.rows[row-2]).Get(key)
}

// memoryAudit is an in-memory AuditRepository
type memoryAudit struct {
	entries []models.AuditLogEntry
}

func (a *memoryAudit) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	entry.ID = int64(len(a.entries) + 1)
	a.entries = append(a.entries, *entry)
	return nil
}

func (a *memoryAudit) GetRecent(ctx context.Context, limit int) ([]models.AuditLogEntry, error) {
	var out []models.AuditLogEntry
	for i := len(a.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, a.entries[i])
	}
	return out, nil
}

func (a *memoryAudit) Count(ctx context.Context) (int, error) {
	return len(a.entries), nil
}
