package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/blogem/dues-ledger/models"
	"github.com/blogem/dues-ledger/repositories"
)

// ReportService computes read-only reports. Every call reloads the whole
// roster; nothing is cached between calls.
type ReportService interface {
	CountFullyPaid(ctx context.Context) (string, error)
	CurrentDuesAmount(ctx context.Context) (string, error)
	CountWithEmail(ctx context.Context) (string, error)
	ListUnpaid(ctx context.Context) (string, error)
	ListWithBalances(ctx context.Context) (string, error)
	CheckPaidInFull(ctx context.Context, name string) (string, error)
	GetPaymentAmount(ctx context.Context, name string) (string, error)
	GetTotalCollected(ctx context.Context) (string, error)
	GetTotalOutstanding(ctx context.Context) (string, error)
	GetTotalExpected(ctx context.Context) (string, error)
	GetSummary(ctx context.Context) (*LedgerSummary, error)
}

// LedgerSummary is the structured form of the roster reports
type LedgerSummary struct {
	MemberCount      int                    `json:"member_count"`
	FullyPaidCount   int                    `json:"fully_paid_count"`
	WithEmailCount   int                    `json:"with_email_count"`
	CurrentDues      *float64               `json:"current_dues,omitempty"`
	TotalExpected    float64                `json:"total_expected"`
	TotalCollected   float64                `json:"total_collected"`
	TotalOutstanding float64                `json:"total_outstanding"`
	Unpaid           []models.MemberBalance `json:"unpaid"`
}

// ledgerTotals are the three roster-wide sums
type ledgerTotals struct {
	Expected    float64
	Collected   float64
	Outstanding float64
}

const (
	breakdownBanner = "📋 Payment Breakdown:"
	breakdownHeader = "Name                          | Paid     | Owes"
	breakdownRule   = "------------------------------|----------|---------"
	breakdownWidth  = 30
)

// reportService implements ReportService interface
type reportService struct {
	rosterRepo repositories.SheetRepository
}

// NewReportService creates a new report service
func NewReportService(rosterRepo repositories.SheetRepository) ReportService {
	return &reportService{rosterRepo: rosterRepo}
}

// CountFullyPaid counts members whose paid amount covers what they owe
func (s *reportService) CountFullyPaid(ctx context.Context) (string, error) {
	_, balances, err := s.loadBalances(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("✅ %d members have paid in full.", countFullyPaid(balances)), nil
}

// CurrentDuesAmount reports the first member's Dues Owed as the dues amount
func (s *reportService) CurrentDuesAmount(ctx context.Context) (string, error) {
	members, err := s.loadMembers(ctx)
	if err != nil {
		return "", err
	}

	dues, err := currentDues(members)
	if errors.Is(err, models.ErrEmptyStore) {
		return "No data found.", nil
	}
	if err != nil {
		return "", err
	}
	return "📌 Current dues: " + models.FormatMoney(dues), nil
}

// CountWithEmail counts members with a non-blank Email
func (s *reportService) CountWithEmail(ctx context.Context) (string, error) {
	members, err := s.loadMembers(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("📧 %d members have provided emails.", countWithEmail(members)), nil
}

// ListUnpaid lists members who still owe, sorted by last then first name
func (s *reportService) ListUnpaid(ctx context.Context) (string, error) {
	_, balances, err := s.loadBalances(ctx)
	if err != nil {
		return "", err
	}

	unpaid := unpaidBalances(balances)
	if len(unpaid) == 0 {
		return "🎉 All dues are paid.", nil
	}

	lines := []string{"🧾 Unpaid Members:"}
	for _, b := range unpaid {
		lines = append(lines, fmt.Sprintf("- %s | Paid: %s | Owes: %s",
			b.Name(), models.FormatMoney(b.Paid), models.FormatMoney(b.Remaining())))
	}
	return strings.Join(lines, "\n"), nil
}

// ListWithBalances renders the unpaid members as a fixed-width table
func (s *reportService) ListWithBalances(ctx context.Context) (string, error) {
	_, balances, err := s.loadBalances(ctx)
	if err != nil {
		return "", err
	}

	unpaid := unpaidBalances(balances)
	if len(unpaid) == 0 {
		return "🎉 Everyone has paid in full.", nil
	}

	lines := []string{breakdownBanner, breakdownHeader, breakdownRule}
	for _, b := range unpaid {
		lines = append(lines, fmt.Sprintf("%s | $%7.2f | $%6.2f", breakdownName(b), b.Paid, b.Remaining()))
	}
	return strings.Join(lines, "\n"), nil
}

// CheckPaidInFull reports whether one member has paid what they owe
func (s *reportService) CheckPaidInFull(ctx context.Context, name string) (string, error) {
	members, err := s.loadMembers(ctx)
	if err != nil {
		return "", err
	}

	member, ok := FindMember(members, name)
	if !ok {
		return noMatchReply(name), nil
	}

	b, err := balanceOf(member)
	if err != nil {
		return "", err
	}

	if b.PaidInFull() {
		return fmt.Sprintf("✅ %s has paid in full (%s).", displayName(name), models.FormatMoney(b.Paid)), nil
	}
	return fmt.Sprintf("❌ %s still owes %s (%s paid).",
		displayName(name), models.FormatMoney(b.Remaining()), models.FormatMoney(b.Paid)), nil
}

// GetPaymentAmount reports how much one member has paid
func (s *reportService) GetPaymentAmount(ctx context.Context, name string) (string, error) {
	members, err := s.loadMembers(ctx)
	if err != nil {
		return "", err
	}

	member, ok := FindMember(members, name)
	if !ok {
		return noMatchReply(name), nil
	}

	paid, err := member.DuesPayed()
	if err != nil {
		return "", fmt.Errorf("failed to read payment for %s: %w", member.FullName(), err)
	}
	return fmt.Sprintf("%s has paid %s.", displayName(name), models.FormatMoney(paid)), nil
}

// GetTotalCollected sums Dues Payed over the roster
func (s *reportService) GetTotalCollected(ctx context.Context) (string, error) {
	_, balances, err := s.loadBalances(ctx)
	if err != nil {
		return "", err
	}
	return "💰 Total collected: " + models.FormatMoney(sumTotals(balances).Collected), nil
}

// GetTotalOutstanding sums owed minus paid over the roster. Overpayments
// reduce the total.
func (s *reportService) GetTotalOutstanding(ctx context.Context) (string, error) {
	_, balances, err := s.loadBalances(ctx)
	if err != nil {
		return "", err
	}
	return "📉 Total outstanding: " + models.FormatMoney(sumTotals(balances).Outstanding), nil
}

// GetTotalExpected sums Dues Owed over the roster
func (s *reportService) GetTotalExpected(ctx context.Context) (string, error) {
	_, balances, err := s.loadBalances(ctx)
	if err != nil {
		return "", err
	}
	return "📈 Total expected if all dues are paid: " + models.FormatMoney(sumTotals(balances).Expected), nil
}

// GetSummary computes every report in one pass over a single roster read
func (s *reportService) GetSummary(ctx context.Context) (*LedgerSummary, error) {
	members, balances, err := s.loadBalances(ctx)
	if err != nil {
		return nil, err
	}

	var duesPtr *float64
	dues, err := currentDues(members)
	switch {
	case err == nil:
		duesPtr = &dues
	case !errors.Is(err, models.ErrEmptyStore):
		return nil, err
	}

	totals := sumTotals(balances)
	unpaid := unpaidBalances(balances)
	if unpaid == nil {
		unpaid = []models.MemberBalance{}
	}

	return &LedgerSummary{
		MemberCount:      len(members),
		FullyPaidCount:   countFullyPaid(balances),
		WithEmailCount:   countWithEmail(members),
		CurrentDues:      duesPtr,
		TotalExpected:    totals.Expected,
		TotalCollected:   totals.Collected,
		TotalOutstanding: totals.Outstanding,
		Unpaid:           unpaid,
	}, nil
}

func (s *reportService) loadMembers(ctx context.Context) ([]models.Member, error) {
	members, err := s.rosterRepo.ReadAllRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	return members, nil
}

func (s *reportService) loadBalances(ctx context.Context) ([]models.Member, []models.MemberBalance, error) {
	members, err := s.loadMembers(ctx)
	if err != nil {
		return nil, nil, err
	}

	balances := make([]models.MemberBalance, 0, len(members))
	for _, member := range members {
		b, err := balanceOf(member)
		if err != nil {
			return nil, nil, err
		}
		balances = append(balances, b)
	}
	return members, balances, nil
}

func balanceOf(member models.Member) (models.MemberBalance, error) {
	owed, err := member.DuesOwed()
	if err != nil {
		return models.MemberBalance{}, fmt.Errorf("row %d (%s) dues owed: %w", member.Row, member.FullName(), err)
	}
	paid, err := member.DuesPayed()
	if err != nil {
		return models.MemberBalance{}, fmt.Errorf("row %d (%s) dues payed: %w", member.Row, member.FullName(), err)
	}
	return models.MemberBalance{
		FirstName: member.FirstName(),
		LastName:  member.LastName(),
		Owed:      owed,
		Paid:      paid,
	}, nil
}

// currentDues returns the first member's Dues Owed
func currentDues(members []models.Member) (float64, error) {
	if len(members) == 0 {
		return 0, models.ErrEmptyStore
	}
	owed, err := members[0].DuesOwed()
	if err != nil {
		return 0, fmt.Errorf("row %d dues owed: %w", members[0].Row, err)
	}
	return owed, nil
}

func countFullyPaid(balances []models.MemberBalance) int {
	count := 0
	for _, b := range balances {
		if b.PaidInFull() {
			count++
		}
	}
	return count
}

func countWithEmail(members []models.Member) int {
	count := 0
	for _, m := range members {
		if m.HasEmail() {
			count++
		}
	}
	return count
}

func sumTotals(balances []models.MemberBalance) ledgerTotals {
	var t ledgerTotals
	for _, b := range balances {
		t.Expected += b.Owed
		t.Collected += b.Paid
		t.Outstanding += b.Owed - b.Paid
	}
	return t
}

// unpaidBalances filters to members with paid < owed, sorted by
// (last name, first name) as stored
func unpaidBalances(balances []models.MemberBalance) []models.MemberBalance {
	sorted := make([]models.MemberBalance, len(balances))
	copy(sorted, balances)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].LastName != sorted[j].LastName {
			return sorted[i].LastName < sorted[j].LastName
		}
		return sorted[i].FirstName < sorted[j].FirstName
	})

	var unpaid []models.MemberBalance
	for _, b := range sorted {
		if !b.PaidInFull() {
			unpaid = append(unpaid, b)
		}
	}
	return unpaid
}

// breakdownName pads the last name to 26 columns, then fits "First Last"
// into exactly breakdownWidth columns
func breakdownName(b models.MemberBalance) string {
	name := b.FirstName + " " + padRight(b.LastName, 26)
	return padRight(truncate(name, breakdownWidth), breakdownWidth)
}

// padRight and truncate measure in runes; wide or combining characters can
// still misalign the table.
func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width])
}
