package models

import (
	"fmt"
	"strings"
)

// Canonical column names the ledger engine depends on. Any other header
// columns are carried through untouched.
const (
	FieldFirstName = "First Name"
	FieldLastName  = "Last Name"
	FieldEmail     = "Email"
	FieldDuesOwed  = "Dues Owed"
	FieldDuesPayed = "Dues Payed"
)

// HeaderRow is the 1-based index of the header row in a sheet.
// The first member record lives on row HeaderRow+1.
const HeaderRow = 1

// Member is one roster row: an ordered mapping from header key to cell value.
type Member struct {
	Row    int               `json:"row"`
	Keys   []string          `json:"keys"`
	Values map[string]string `json:"values"`
}

// NewMember builds a member from a header and the row's cell values.
// Missing trailing cells read as empty strings.
func NewMember(row int, header []string, cells []string) Member {
	m := Member{
		Row:    row,
		Keys:   append([]string(nil), header...),
		Values: make(map[string]string, len(header)),
	}
	for i, key := range header {
		if i < len(cells) {
			m.Values[key] = cells[i]
		} else {
			m.Values[key] = ""
		}
	}
	return m
}

// Get returns the value stored under key, or "" if the column is absent.
func (m Member) Get(key string) string {
	return m.Values[key]
}

// Has reports whether the ledger defines the given column.
func (m Member) Has(key string) bool {
	_, ok := m.Values[key]
	return ok
}

// ColumnIndex returns the 1-based column of key, or 0 when it is not a header.
func (m Member) ColumnIndex(key string) int {
	for i, k := range m.Keys {
		if k == key {
			return i + 1
		}
	}
	return 0
}

// Coordinate returns the storage coordinate of key for this member.
func (m Member) Coordinate(key string) (Coordinate, error) {
	col := m.ColumnIndex(key)
	if col == 0 {
		return Coordinate{}, fmt.Errorf("%w: %s", ErrFieldNotFound, key)
	}
	return Coordinate{Row: m.Row, Col: col}, nil
}

// FirstName returns the "First Name" cell.
func (m Member) FirstName() string {
	return m.Get(FieldFirstName)
}

// LastName returns the "Last Name" cell.
func (m Member) LastName() string {
	return m.Get(FieldLastName)
}

// FullName joins first and last name with a single space.
func (m Member) FullName() string {
	return m.FirstName() + " " + m.LastName()
}

// DuesOwed parses the "Dues Owed" cell.
func (m Member) DuesOwed() (float64, error) {
	return ParseAmount(m.Get(FieldDuesOwed))
}

// DuesPayed parses the "Dues Payed" cell.
func (m Member) DuesPayed() (float64, error) {
	return ParseAmount(m.Get(FieldDuesPayed))
}

// HasEmail reports whether the Email cell is non-blank.
func (m Member) HasEmail() bool {
	return strings.TrimSpace(m.Get(FieldEmail)) != ""
}

// Coordinate addresses a single cell. Both indexes are 1-based.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MemberBalance is a member's paid amount against what they owe.
type MemberBalance struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Owed      float64 `json:"owed"`
	Paid      float64 `json:"paid"`
}

// Remaining is what is still owed. Negative for overpayment.
func (b MemberBalance) Remaining() float64 {
	return b.Owed - b.Paid
}

// PaidInFull reports whether the member has paid at least what they owe.
func (b MemberBalance) PaidInFull() bool {
	return b.Paid >= b.Owed
}

// Name returns "First Last".
func (b MemberBalance) Name() string {
	return b.FirstName + " " + b.LastName
}
