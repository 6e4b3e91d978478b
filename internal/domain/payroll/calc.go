package payroll

import (
	"iter"
	"strings"

	"github.com/shopspring/decimal"
)

// RecalculateNetPay re-derives net pay from scratch:
// grossPay - totalDeductions + the signed sum of all adjustments. It is never
// cached incrementally, so the stored value can always be reproduced.
func RecalculateNetPay(r Record) decimal.Decimal {
	net := r.GrossPay.Sub(r.TotalDeductions)
	for _, adj := range r.Adjustments {
		if adj.Type == AdjustmentAddition {
			net = net.Add(adj.Amount)
		} else {
			net = net.Sub(adj.Amount)
		}
	}
	return net
}

// FilterRecords returns a lazy, restartable view of records whose employee
// name or ID contains searchTerm (case-insensitive) and whose pay period
// equals periodFilter when it is non-empty. Input order is preserved.
func FilterRecords(records []Record, searchTerm, periodFilter string) iter.Seq[Record] {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	return func(yield func(Record) bool) {
		for _, record := range records {
			if term != "" &&
				!strings.Contains(strings.ToLower(record.EmployeeName), term) &&
				!strings.Contains(strings.ToLower(record.EmployeeID), term) {
				continue
			}
			if periodFilter != "" && record.PayPeriod != periodFilter {
				continue
			}
			if !yield(record) {
				return
			}
		}
	}
}
