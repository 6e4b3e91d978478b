package payroll

const (
	StatusDraft     = "draft"
	StatusProcessed = "processed"
	StatusPaid      = "paid"

	AdjustmentAddition  = "addition"
	AdjustmentDeduction = "deduction"
)

// nextStatus encodes the forward-only record lifecycle: draft → processed →
// paid, no skipping, no reversal.
var nextStatus = map[string]string{
	StatusDraft:     StatusProcessed,
	StatusProcessed: StatusPaid,
}
