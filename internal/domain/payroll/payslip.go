package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// RenderPayslip renders the record as a PDF payslip into memory.
func RenderPayslip(record Record) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", record.EmployeeName, record.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Pay period: %s", record.PayPeriod))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Pay date: %s", record.PayDate))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	payslipLine(pdf, "Basic pay", record.BasicPay)
	payslipLine(pdf, "Overtime", record.Overtime)
	payslipLine(pdf, "Commissions", record.Commissions)
	payslipLine(pdf, "Allowances", record.Allowances)
	payslipLine(pdf, "Gross pay", record.GrossPay)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	payslipLine(pdf, "SSS", record.SSS)
	payslipLine(pdf, "PhilHealth", record.PhilHealth)
	payslipLine(pdf, "Pag-IBIG", record.PagIbig)
	payslipLine(pdf, "Tax", record.Tax)
	payslipLine(pdf, "Loans", record.Loans)
	payslipLine(pdf, "Total deductions", record.TotalDeductions)

	if len(record.Adjustments) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Adjustments")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 12)
		for _, adj := range record.Adjustments {
			sign := "+"
			if adj.Type == AdjustmentDeduction {
				sign = "-"
			}
			pdf.Cell(0, 7, fmt.Sprintf("%s: %s%s", adj.Description, sign, adj.Amount.StringFixed(2)))
			pdf.Ln(7)
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	payslipLine(pdf, "Net pay", record.NetPay)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func payslipLine(pdf *gofpdf.Fpdf, label string, amount decimal.Decimal) {
	pdf.Cell(0, 7, fmt.Sprintf("%s: %s", label, amount.StringFixed(2)))
	pdf.Ln(7)
}
