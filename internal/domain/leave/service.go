package leave

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	Store *Store

	// DeductOnApproval controls whether the requester's balance is
	// decremented when the final step approves.
	DeductOnApproval bool
}

func NewService(store *Store, deductOnApproval bool) *Service {
	return &Service{Store: store, DeductOnApproval: deductOnApproval}
}

type SubmitInput struct {
	EmployeeID   string
	EmployeeName string
	LeaveType    string
	StartDate    time.Time
	EndDate      time.Time
	Reason       string
}

// Submit validates the input and prepends a new pending request with the
// fixed three-step approval chain. Balances are not touched here.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (LeaveRequest, error) {
	if strings.TrimSpace(input.EmployeeID) == "" {
		return LeaveRequest{}, &ValidationError{Field: "employeeId", Reason: "is required"}
	}
	if strings.TrimSpace(input.Reason) == "" {
		return LeaveRequest{}, &ValidationError{Field: "reason", Reason: "is required"}
	}
	if !slices.Contains(Types, input.LeaveType) {
		return LeaveRequest{}, &ValidationError{Field: "leaveType", Reason: "unknown leave type"}
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return LeaveRequest{}, &ValidationError{Field: "startDate", Reason: "start and end dates are required"}
	}

	days, err := CalculateDays(input.StartDate, input.EndDate)
	if err != nil {
		return LeaveRequest{}, err
	}

	req := LeaveRequest{
		ID:              uuid.NewString(),
		EmployeeID:      input.EmployeeID,
		EmployeeName:    input.EmployeeName,
		LeaveType:       input.LeaveType,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Days:            days,
		Reason:          input.Reason,
		Status:          StatusPending,
		SubmittedAt:     time.Now().UTC(),
		ApprovalHistory: newApprovalHistory(),
	}
	s.Store.InsertRequest(req)
	return req, nil
}

// Advance applies one approver's decision to the named step. Steps execute
// strictly in chain order; a rejection is immediately terminal.
func (s *Service) Advance(ctx context.Context, requestID, step, decision, approver, comment string) (LeaveRequest, error) {
	now := time.Now().UTC()
	updated, err := s.Store.Update(requestID, func(req LeaveRequest) (LeaveRequest, error) {
		return advance(req, step, decision, approver, comment, now)
	})
	if err != nil {
		return LeaveRequest{}, err
	}

	if s.DeductOnApproval && updated.Status == StatusITApproved {
		year := updated.StartDate.Year()
		if _, clamped := s.Store.DeductBalance(updated.EmployeeID, year, updated.LeaveType, updated.Days); clamped {
			slog.Warn("leave balance exhausted, clamped at zero",
				"employeeId", updated.EmployeeID,
				"leaveType", updated.LeaveType,
				"requestId", updated.ID)
		}
	}
	return updated, nil
}

func (s *Service) Request(ctx context.Context, requestID string) (LeaveRequest, error) {
	return s.Store.Request(requestID)
}

func (s *Service) Requests(ctx context.Context) []LeaveRequest {
	return s.Store.Requests()
}

func (s *Service) Balance(ctx context.Context, employeeID string, year int) (Balance, bool) {
	return s.Store.Balance(employeeID, year)
}
