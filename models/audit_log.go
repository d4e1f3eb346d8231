package models

import "time"

// Audit action names, one per kind of ledger mutation.
const (
	AuditActionUpdatePayment = "Update Payment"
	AuditActionSetPayment    = "Set Payment"
	AuditActionSetField      = "Set Field"
)

// AuditLogEntry records a single successful ledger mutation.
// Entries are append-only; the audit_log table rejects updates and deletes.
type AuditLogEntry struct {
	ID        int64     `json:"id"`
	Ref       string    `json:"ref"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Target    string    `json:"target"`
	Details   string    `json:"details"`
	Actor     string    `json:"actor"`
}
