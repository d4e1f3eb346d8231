package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/blogem/dues-ledger/models"
)

type stubParser struct {
	cmd    *models.Command
	err    error
	inputs []string
}

func (p *stubParser) Parse(ctx context.Context, input string) (*models.Command, error) {
	p.inputs = append(p.inputs, input)
	return p.cmd, p.err
}

type failingSheet struct {
	*memorySheet
}

func (s failingSheet) ReadAllRecords(ctx context.Context) ([]models.Member, error) {
	return nil, errors.New("database is locked")
}

func newCommandFixture(t *testing.T, parser IntentParser) (CommandService, *memorySheet, *memoryAudit) {
	t.Helper()
	sheet := newMemorySheet(
		[]string{"Chris", "Lee", "chris@example.com", "100", "40"},
		[]string{"Dana", "Park", "", "100", "100"},
	)
	audit := &memoryAudit{}
	logger := zaptest.NewLogger(t)
	ledger := NewLedgerService(sheet, audit, logger)
	reports := NewReportService(sheet)
	return NewCommandService(ledger, reports, parser, logger), sheet, audit
}

func TestExecuteDispatch(t *testing.T) {
	cases := []struct {
		name string
		cmd  models.Command
		want string
	}{
		{"check paid", models.Command{Action: models.ActionCheckPaid, Name: "dana"}, "✅ Dana has paid in full ($100.00)."},
		{"check if paid alias", models.Command{Action: models.ActionCheckIfPaid, Name: "chris"}, "❌ Chris still owes $60.00 ($40.00 paid)."},
		{"blank name is first row", models.Command{Action: models.ActionCheckPaid}, "❌  still owes $60.00 ($40.00 paid)."},
		{"payment amount", models.Command{Action: models.ActionGetPaymentAmount, Name: "chris"}, "Chris has paid $40.00."},
		{"lookup", models.Command{Action: models.ActionLookup, Name: "chris", Field: "email"}, "Chris's Email is chris@example.com"},
		{"count fully paid", models.Command{Action: models.ActionCountFullyPaid}, "✅ 1 members have paid in full."},
		{"current dues", models.Command{Action: models.ActionCurrentDuesAmount}, "📌 Current dues: $100.00"},
		{"count with email", models.Command{Action: models.ActionCountWithEmail}, "📧 1 members have provided emails."},
		{"list unpaid", models.Command{Action: models.ActionListUnpaid}, "🧾 Unpaid Members:\n- Chris Lee | Paid: $40.00 | Owes: $60.00"},
		{"collected", models.Command{Action: models.ActionGetTotalCollected}, "💰 Total collected: $140.00"},
		{"outstanding", models.Command{Action: models.ActionGetTotalOutstanding}, "📉 Total outstanding: $60.00"},
		{"expected", models.Command{Action: models.ActionGetTotalExpected}, "📈 Total expected if all dues are paid: $200.00"},
		{"padded action", models.Command{Action: " get_total_expected "}, "📈 Total expected if all dues are paid: $200.00"},
		{"unknown action", models.Command{Action: "delete_everyone"}, "❓ Sorry, I couldn't understand what to do."},
		{"empty action", models.Command{}, "❓ Sorry, I couldn't understand what to do."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, audit := newCommandFixture(t, nil)
			assert.Equal(t, tc.want, svc.Execute(context.Background(), tc.cmd))
			assert.Empty(t, audit.entries)
		})
	}
}

func TestExecuteMutations(t *testing.T) {
	svc, sheet, audit := newCommandFixture(t, nil)
	ctx := context.Background()

	assert.Equal(t, "Updated Chris's payment. Total now: $60.00.",
		svc.Execute(ctx, models.Command{Action: models.ActionAddPayment, Name: "chris", Amount: "20"}))
	assert.Equal(t, "Set Dana's payment to $0.00.",
		svc.Execute(ctx, models.Command{Action: models.ActionSetPayment, Name: "dana", Amount: "$0"}))
	assert.Equal(t, "Email for Dana updated to: dana@example.com",
		svc.Execute(ctx, models.Command{Action: models.ActionSetField, Name: "dana", Field: "email", Value: "dana@example.com"}))

	assert.Equal(t, "60", sheet.cell(2, models.FieldDuesPayed))
	assert.Equal(t, "0", sheet.cell(3, models.FieldDuesPayed))
	assert.Equal(t, "dana@example.com", sheet.cell(3, models.FieldEmail))
	assert.Len(t, audit.entries, 3)
}

func TestExecuteMalformedAmount(t *testing.T) {
	svc, sheet, audit := newCommandFixture(t, nil)

	reply := svc.Execute(context.Background(), models.Command{Action: models.ActionAddPayment, Name: "chris", Amount: "twenty"})

	assert.Equal(t, "⚠️ Invalid amount 'twenty'.", reply)
	assert.Equal(t, "40", sheet.cell(2, models.FieldDuesPayed))
	assert.Zero(t, sheet.readCalls)
	assert.Empty(t, audit.entries)
}

func TestExecuteMalformedStoredAmount(t *testing.T) {
	sheet := newMemorySheet([]string{"Chris", "Lee", "", "100", "forty"})
	audit := &memoryAudit{}
	logger := zaptest.NewLogger(t)
	svc := NewCommandService(NewLedgerService(sheet, audit, logger), NewReportService(sheet), nil, logger)
	ctx := context.Background()

	paid := svc.Execute(ctx, models.Command{Action: models.ActionAddPayment, Name: "chris", Amount: "20"})
	unpaid := svc.Execute(ctx, models.Command{Action: models.ActionListUnpaid})

	assert.True(t, strings.HasPrefix(paid, "⚠️ Error: "), paid)
	assert.Contains(t, paid, `malformed amount: "forty"`)
	assert.NotContains(t, paid, "Invalid amount")
	assert.Equal(t, `⚠️ Error: row 2 (Chris Lee) dues payed: malformed amount: "forty"`, unpaid)
	assert.Equal(t, "forty", sheet.cell(2, models.FieldDuesPayed))
	assert.Empty(t, audit.entries)
}

func TestExecuteMissingAmountIsZero(t *testing.T) {
	svc, sheet, _ := newCommandFixture(t, nil)

	reply := svc.Execute(context.Background(), models.Command{Action: models.ActionAddPayment, Name: "chris"})

	assert.Equal(t, "Updated Chris's payment. Total now: $40.00.", reply)
	assert.Equal(t, "40", sheet.cell(2, models.FieldDuesPayed))
}

func TestExecuteRendersStoreErrors(t *testing.T) {
	sheet := newMemorySheet([]string{"Chris", "Lee", "", "100", "40"})
	sheet.writeErr = errors.New("disk full")
	audit := &memoryAudit{}
	logger := zaptest.NewLogger(t)
	svc := NewCommandService(NewLedgerService(sheet, audit, logger), NewReportService(sheet), nil, logger)

	reply := svc.Execute(context.Background(), models.Command{Action: models.ActionAddPayment, Name: "chris", Amount: "5"})

	assert.Equal(t, "⚠️ Error: store write failed: disk full", reply)
	assert.Empty(t, audit.entries)
}

func TestExecuteRendersReadErrors(t *testing.T) {
	sheet := failingSheet{newMemorySheet()}
	logger := zaptest.NewLogger(t)
	svc := NewCommandService(NewLedgerService(sheet, &memoryAudit{}, logger), NewReportService(sheet), nil, logger)

	reply := svc.Execute(context.Background(), models.Command{Action: models.ActionListUnpaid})

	assert.Equal(t, "⚠️ Error: failed to load roster: database is locked", reply)
}

func TestExecuteSerializesConcurrentPayments(t *testing.T) {
	svc, sheet, audit := newCommandFixture(t, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.Execute(ctx, models.Command{Action: models.ActionAddPayment, Name: "chris", Amount: "1"})
		}()
	}
	wg.Wait()

	assert.Equal(t, "90", sheet.cell(2, models.FieldDuesPayed))
	assert.Len(t, audit.entries, 50)
}

func TestAsk(t *testing.T) {
	parser := &stubParser{cmd: &models.Command{Action: models.ActionAddPayment, Name: "Chris", Amount: "20"}}
	svc, sheet, _ := newCommandFixture(t, parser)

	reply := svc.Ask(context.Background(), "chris paid 20")

	assert.Equal(t, "Updated Chris's payment. Total now: $60.00.", reply)
	assert.Equal(t, []string{"chris paid 20"}, parser.inputs)
	assert.Equal(t, "60", sheet.cell(2, models.FieldDuesPayed))
}

func TestAskBlankInput(t *testing.T) {
	parser := &stubParser{}
	svc, _, _ := newCommandFixture(t, parser)

	assert.Equal(t, "❓ Sorry, I couldn't understand what to do.", svc.Ask(context.Background(), "   "))
	assert.Empty(t, parser.inputs)
}

func TestAskParserError(t *testing.T) {
	parser := &stubParser{err: errors.New("chat request status 429: rate limited")}
	svc, _, audit := newCommandFixture(t, parser)

	reply := svc.Ask(context.Background(), "chris paid 20")

	assert.Equal(t, "⚠️ Error: chat request status 429: rate limited", reply)
	assert.Empty(t, audit.entries)
}

func TestAskWithoutParser(t *testing.T) {
	svc, _, _ := newCommandFixture(t, nil)

	reply := svc.Ask(context.Background(), "who owes money?")

	require.NotEmpty(t, reply)
	assert.Equal(t, "⚠️ Error: natural-language parsing is not configured", reply)
}
