package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/blogem/dues-ledger/models"
)

const (
	replyNotUnderstood = "❓ Sorry, I couldn't understand what to do."
	replyErrorPrefix   = "⚠️ Error: "
)

// errInvalidCommandAmount marks an amount typed into the command itself, as
// opposed to a malformed value already stored in the roster.
var errInvalidCommandAmount = errors.New("invalid command amount")

// IntentParser turns free text into a structured command
type IntentParser interface {
	Parse(ctx context.Context, input string) (*models.Command, error)
}

// CommandService is the single entry point for structured and free-text
// commands. Every reply is a human-readable string; errors never escape.
type CommandService interface {
	Execute(ctx context.Context, cmd models.Command) string
	Ask(ctx context.Context, input string) string
}

// commandService implements CommandService interface
type commandService struct {
	// mu runs one command at a time so a read-then-write on the roster is
	// never interleaved with another command from this process.
	mu sync.Mutex

	ledger  LedgerService
	reports ReportService
	parser  IntentParser
	logger  *zap.Logger
}

// NewCommandService creates a new command service. parser may be nil, in
// which case Ask reports that free-text parsing is unavailable.
func NewCommandService(ledger LedgerService, reports ReportService, parser IntentParser, logger *zap.Logger) CommandService {
	return &commandService{
		ledger:  ledger,
		reports: reports,
		parser:  parser,
		logger:  logger,
	}
}

// Ask parses free text and executes the resulting command
func (s *commandService) Ask(ctx context.Context, input string) string {
	if s.parser == nil {
		return replyErrorPrefix + "natural-language parsing is not configured"
	}
	if strings.TrimSpace(input) == "" {
		return replyNotUnderstood
	}

	cmd, err := s.parser.Parse(ctx, input)
	if err != nil {
		s.logger.Warn("intent parsing failed", zap.Error(err))
		return replyErrorPrefix + err.Error()
	}

	s.logger.Debug("parsed intent",
		zap.String("action", string(cmd.Action)),
		zap.String("name", cmd.Name))
	return s.Execute(ctx, *cmd)
}

// Execute dispatches one structured command
func (s *commandService) Execute(ctx context.Context, cmd models.Command) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	reply, err := s.dispatch(ctx, cmd)
	if err != nil {
		if errors.Is(err, errInvalidCommandAmount) {
			s.logger.Warn("malformed amount", zap.String("amount", string(cmd.Amount)))
			return "⚠️ Invalid amount '" + strings.TrimSpace(string(cmd.Amount)) + "'."
		}
		s.logger.Error("command failed", zap.String("action", string(cmd.Action)), zap.Error(err))
		return replyErrorPrefix + err.Error()
	}
	return reply
}

func (s *commandService) dispatch(ctx context.Context, cmd models.Command) (string, error) {
	switch models.Action(strings.TrimSpace(string(cmd.Action))) {
	case models.ActionCheckPaid, models.ActionCheckIfPaid:
		return s.reports.CheckPaidInFull(ctx, cmd.Name)
	case models.ActionGetPaymentAmount:
		return s.reports.GetPaymentAmount(ctx, cmd.Name)
	case models.ActionAddPayment:
		amount, err := commandAmount(cmd)
		if err != nil {
			return "", err
		}
		return s.ledger.AddPayment(ctx, cmd.Name, amount)
	case models.ActionSetPayment:
		amount, err := commandAmount(cmd)
		if err != nil {
			return "", err
		}
		return s.ledger.SetPayment(ctx, cmd.Name, amount)
	case models.ActionLookup:
		return s.ledger.GetInfo(ctx, cmd.Name, cmd.Field)
	case models.ActionSetField:
		return s.ledger.SetField(ctx, cmd.Name, cmd.Field, string(cmd.Value))
	case models.ActionCountFullyPaid:
		return s.reports.CountFullyPaid(ctx)
	case models.ActionCurrentDuesAmount:
		return s.reports.CurrentDuesAmount(ctx)
	case models.ActionCountWithEmail:
		return s.reports.CountWithEmail(ctx)
	case models.ActionListUnpaid:
		return s.reports.ListUnpaid(ctx)
	case models.ActionListWithBalances:
		return s.reports.ListWithBalances(ctx)
	case models.ActionGetTotalCollected:
		return s.reports.GetTotalCollected(ctx)
	case models.ActionGetTotalOutstanding:
		return s.reports.GetTotalOutstanding(ctx)
	case models.ActionGetTotalExpected:
		return s.reports.GetTotalExpected(ctx)
	default:
		return replyNotUnderstood, nil
	}
}

func commandAmount(cmd models.Command) (float64, error) {
	amount, err := cmd.ParsedAmount()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errInvalidCommandAmount, err)
	}
	return amount, nil
}
