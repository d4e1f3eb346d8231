package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Action identifies what a structured command asks the ledger to do.
type Action string

const (
	ActionCheckPaid           Action = "check_paid"
	ActionCheckIfPaid         Action = "check_if_paid"
	ActionGetPaymentAmount    Action = "get_payment_amount"
	ActionAddPayment          Action = "add_payment"
	ActionSetPayment          Action = "set_payment"
	ActionLookup              Action = "lookup"
	ActionSetField            Action = "set_field"
	ActionCountFullyPaid      Action = "count_fully_paid"
	ActionCurrentDuesAmount   Action = "current_dues_amount"
	ActionCountWithEmail      Action = "count_with_email"
	ActionListUnpaid          Action = "list_unpaid"
	ActionListWithBalances    Action = "list_with_balances"
	ActionGetTotalCollected   Action = "get_total_collected"
	ActionGetTotalOutstanding Action = "get_total_outstanding"
	ActionGetTotalExpected    Action = "get_total_expected"
)

// SupportedActions lists the canonical actions in the order they are
// advertised to the intent parser. check_if_paid is an accepted alias only.
var SupportedActions = []Action{
	ActionCheckPaid,
	ActionGetPaymentAmount,
	ActionAddPayment,
	ActionSetPayment,
	ActionLookup,
	ActionSetField,
	ActionCountFullyPaid,
	ActionCurrentDuesAmount,
	ActionCountWithEmail,
	ActionListUnpaid,
	ActionListWithBalances,
	ActionGetTotalCollected,
	ActionGetTotalOutstanding,
	ActionGetTotalExpected,
}

// Command is the structured form of a user request.
type Command struct {
	Action Action   `json:"action"`
	Name   string   `json:"name,omitempty"`
	Amount LooseStr `json:"amount,omitempty"`
	Field  string   `json:"field,omitempty"`
	Value  LooseStr `json:"value,omitempty"`
}

// ParsedAmount parses the command amount. A missing amount is zero.
func (c Command) ParsedAmount() (float64, error) {
	return ParseAmount(string(c.Amount))
}

// LooseStr decodes from a JSON string, number, boolean or null. Language
// models are inconsistent about quoting amounts and field values.
type LooseStr string

// UnmarshalJSON implements json.Unmarshaler.
func (l *LooseStr) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = ""
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*l = LooseStr(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err == nil {
		*l = LooseStr(n.String())
		return nil
	}

	var b bool
	if err := json.Unmarshal(trimmed, &b); err == nil {
		*l = LooseStr(fmt.Sprintf("%t", b))
		return nil
	}

	return fmt.Errorf("unsupported JSON value %s", strings.TrimSpace(string(data)))
}
