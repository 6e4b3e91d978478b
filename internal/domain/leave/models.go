package leave

import (
	"slices"
	"time"
)

type LeaveRequest struct {
	ID              string         `json:"id"`
	EmployeeID      string         `json:"employeeId"`
	EmployeeName    string         `json:"employeeName"`
	LeaveType       string         `json:"leaveType"`
	StartDate       time.Time      `json:"startDate"`
	EndDate         time.Time      `json:"endDate"`
	Days            int            `json:"days"`
	Reason          string         `json:"reason"`
	Status          string         `json:"status"`
	SubmittedAt     time.Time      `json:"submittedDate"`
	ApprovalHistory []ApprovalStep `json:"approvalHistory"`
}

type ApprovalStep struct {
	Step      string     `json:"step"`
	Status    string     `json:"status"`
	Approver  string     `json:"approver,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Comment   string     `json:"comments,omitempty"`
}

// Terminal reports whether the request can no longer transition.
func (r LeaveRequest) Terminal() bool {
	return r.Status == StatusITApproved || r.Status == StatusRejected
}

// Clone deep-copies the request so callers never alias approval history.
func (r LeaveRequest) Clone() LeaveRequest {
	out := r
	out.ApprovalHistory = slices.Clone(r.ApprovalHistory)
	return out
}

// Balance holds the remaining day counts for one employee and year.
// Counts are decremented only on terminal approval, never on submission.
type Balance struct {
	EmployeeID string `json:"employeeId"`
	Year       int    `json:"year"`
	Vacation   int    `json:"vacation"`
	Sick       int    `json:"sick"`
	Maternity  int    `json:"maternity"`
	Emergency  int    `json:"emergency"`
}

func (b Balance) Remaining(leaveType string) int {
	switch leaveType {
	case TypeVacation:
		return b.Vacation
	case TypeSick:
		return b.Sick
	case TypeMaternity:
		return b.Maternity
	case TypeEmergency:
		return b.Emergency
	}
	return 0
}

// Deduct removes days from one category, clamping at zero. The second return
// reports whether clamping occurred.
func (b Balance) Deduct(leaveType string, days int) (Balance, bool) {
	remaining := b.Remaining(leaveType)
	next := remaining - days
	clamped := next < 0
	if clamped {
		next = 0
	}
	switch leaveType {
	case TypeVacation:
		b.Vacation = next
	case TypeSick:
		b.Sick = next
	case TypeMaternity:
		b.Maternity = next
	case TypeEmergency:
		b.Emergency = next
	}
	return b, clamped
}
