// Package seed loads the demo dataset the portal ships with. There is no
// persistence layer; every boot starts from this snapshot.
package seed

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"hrportal/internal/domain/auth"
	"hrportal/internal/domain/leave"
	"hrportal/internal/domain/payroll"
)

// DemoPassword is the shared password for all demo accounts.
const DemoPassword = "password123"

func Users(directory *auth.Directory) error {
	hash, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	users := []auth.User{
		{ID: "HR001", Name: "Sarah Johnson", Role: auth.RoleHRAdmin, Department: "Human Resources", Email: "sarah.johnson@company.com", Position: "HR Manager"},
		{ID: "EMP001", Name: "Michael Chen", Role: auth.RoleEmployee, Department: "Engineering", Email: "michael.chen@company.com", Position: "Senior Developer"},
		{ID: "EMP002", Name: "Emily Rodriguez", Role: auth.RoleEmployee, Department: "Marketing", Email: "emily.rodriguez@company.com", Position: "Marketing Manager"},
		{ID: "INT001", Name: "Alex Thompson", Role: auth.RoleIntern, Department: "Design", Email: "alex.thompson@company.com", Position: "Design Intern"},
		{ID: "VP001", Name: "Robert Wilson", Role: auth.RoleVPOps, Department: "Operations", Email: "robert.wilson@company.com", Position: "VP Operations"},
		{ID: "IT001", Name: "Lisa Chang", Role: auth.RoleITHead, Department: "Information Technology", Email: "lisa.chang@company.com", Position: "IT Head"},
	}
	for _, user := range users {
		user.PasswordHash = hash
		directory.Put(user)
	}
	return nil
}

func Leave(store *leave.Store) {
	for _, employeeID := range []string{"EMP001", "EMP002", "INT001"} {
		store.PutBalance(leave.Balance{
			EmployeeID: employeeID,
			Year:       2024,
			Vacation:   15,
			Sick:       10,
			Maternity:  60,
			Emergency:  5,
		})
	}

	store.InsertRequest(leave.LeaveRequest{
		ID:           "LR002",
		EmployeeID:   "EMP001",
		EmployeeName: "Michael Chen",
		LeaveType:    leave.TypeSick,
		StartDate:    date(2024, 1, 20),
		EndDate:      date(2024, 1, 22),
		Days:         3,
		Reason:       "Medical treatment",
		Status:       leave.StatusITApproved,
		SubmittedAt:  date(2024, 1, 18),
		ApprovalHistory: []leave.ApprovalStep{
			{Step: leave.StepHRAdmin, Status: leave.StepApproved, Approver: "Sarah Johnson", Timestamp: timePtr(time.Date(2024, 1, 18, 10, 0, 0, 0, time.UTC))},
			{Step: leave.StepVPOps, Status: leave.StepApproved, Approver: "Robert Wilson", Timestamp: timePtr(time.Date(2024, 1, 18, 14, 0, 0, 0, time.UTC))},
			{Step: leave.StepITHead, Status: leave.StepApproved, Approver: "Lisa Chang", Timestamp: timePtr(time.Date(2024, 1, 19, 9, 0, 0, 0, time.UTC))},
		},
	})

	store.InsertRequest(leave.LeaveRequest{
		ID:           "LR001",
		EmployeeID:   "EMP001",
		EmployeeName: "Michael Chen",
		LeaveType:    leave.TypeVacation,
		StartDate:    date(2024, 2, 15),
		EndDate:      date(2024, 2, 17),
		Days:         3,
		Reason:       "Family vacation",
		Status:       leave.StatusPending,
		SubmittedAt:  date(2024, 2, 1),
		ApprovalHistory: []leave.ApprovalStep{
			{Step: leave.StepHRAdmin, Status: leave.StepPending},
			{Step: leave.StepVPOps, Status: leave.StepPending},
			{Step: leave.StepITHead, Status: leave.StepPending},
		},
	})
}

func Payroll(store *payroll.Store) {
	createdAt := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	store.Insert(payroll.Record{
		ID:              "PR001",
		EmployeeID:      "EMP001",
		EmployeeName:    "Michael Chen",
		PayPeriod:       "2024-01-15",
		PayDate:         "2024-01-15",
		BasicPay:        dec("42500"),
		Overtime:        dec("5000"),
		Commissions:     dec("2000"),
		Allowances:      dec("3000"),
		GrossPay:        dec("52500"),
		SSS:             dec("2362.50"),
		PhilHealth:      dec("1312.50"),
		PagIbig:         dec("200"),
		Tax:             dec("8500"),
		Loans:           dec("1000"),
		TotalDeductions: dec("13375"),
		NetPay:          dec("39125"),
		Status:          payroll.StatusPaid,
		AuditTrail: []payroll.AuditEntry{{
			ID:        "AT001",
			Action:    "Created",
			Field:     "payroll",
			NewValue:  "Initial payroll creation",
			ChangedBy: "Sarah Johnson",
			Timestamp: createdAt,
			Reason:    "Regular payroll processing",
		}},
	})

	store.Insert(payroll.Record{
		ID:              "PR002",
		EmployeeID:      "EMP002",
		EmployeeName:    "Emily Rodriguez",
		PayPeriod:       "2024-01-15",
		PayDate:         "2024-01-15",
		BasicPay:        dec("37500"),
		Overtime:        dec("3000"),
		Commissions:     dec("1500"),
		Allowances:      dec("2500"),
		GrossPay:        dec("44500"),
		SSS:             dec("2025"),
		PhilHealth:      dec("1112.50"),
		PagIbig:         dec("200"),
		Tax:             dec("6800"),
		Loans:           dec("500"),
		TotalDeductions: dec("10637.50"),
		NetPay:          dec("33862.50"),
		Status:          payroll.StatusProcessed,
		AuditTrail: []payroll.AuditEntry{{
			ID:        "AT002",
			Action:    "Created",
			Field:     "payroll",
			NewValue:  "Initial payroll creation",
			ChangedBy: "Sarah Johnson",
			Timestamp: createdAt,
			Reason:    "Regular payroll processing",
		}},
	})
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
