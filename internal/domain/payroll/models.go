package payroll

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type Record struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	PayPeriod    string `json:"payPeriod"`
	PayDate      string `json:"payDate"`

	BasicPay    decimal.Decimal `json:"basicPay"`
	Overtime    decimal.Decimal `json:"overtime"`
	Commissions decimal.Decimal `json:"commissions"`
	Allowances  decimal.Decimal `json:"allowances"`
	GrossPay    decimal.Decimal `json:"grossPay"`

	SSS             decimal.Decimal `json:"sss"`
	PhilHealth      decimal.Decimal `json:"philHealth"`
	PagIbig         decimal.Decimal `json:"pagIbig"`
	Tax             decimal.Decimal `json:"tax"`
	Loans           decimal.Decimal `json:"loans"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`

	NetPay decimal.Decimal `json:"netPay"`
	Status string          `json:"status"`

	Adjustments []Adjustment `json:"adjustments"`
	AuditTrail  []AuditEntry `json:"auditTrail"`
}

// Adjustment is a manual addition or deduction applied after initial
// computation. Immutable once created, only ever appended.
type Adjustment struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Reason      string          `json:"reason"`
	ApprovedBy  string          `json:"approvedBy"`
	Timestamp   time.Time       `json:"timestamp"`
}

// AuditEntry is one append-only audit-trail line. Every mutating operation on
// a record writes one.
type AuditEntry struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Field     string    `json:"field"`
	OldValue  string    `json:"oldValue"`
	NewValue  string    `json:"newValue"`
	ChangedBy string    `json:"changedBy"`
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason"`
}

// Clone deep-copies the record so callers never alias adjustments or audit
// trail across copy-on-write updates.
func (r Record) Clone() Record {
	out := r
	out.Adjustments = slices.Clone(r.Adjustments)
	out.AuditTrail = slices.Clone(r.AuditTrail)
	return out
}
