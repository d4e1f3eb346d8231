package services

import (
	"go.uber.org/zap"

	"github.com/blogem/dues-ledger/repositories"
)

// Services holds all service instances
type Services struct {
	Ledger   LedgerService
	Reports  ReportService
	Audit    AuditService
	Roster   RosterService
	Commands CommandService
}

// NewServices creates and initializes all service instances. parser may be
// nil when no intent parser is configured.
func NewServices(repos *repositories.Repositories, parser IntentParser, logger *zap.Logger) *Services {
	ledger := NewLedgerService(repos.Roster, repos.Audit, logger)
	reports := NewReportService(repos.Roster)

	return &Services{
		Ledger:   ledger,
		Reports:  reports,
		Audit:    NewAuditService(repos.Audit),
		Roster:   NewRosterService(repos.Roster, logger),
		Commands: NewCommandService(ledger, reports, parser, logger),
	}
}
