package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Roster SheetRepository
	Audit  AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB, rosterSheet string) *Repositories {
	return &Repositories{
		Roster: NewSheetRepository(db, rosterSheet),
		Audit:  NewAuditRepository(db),
	}
}
