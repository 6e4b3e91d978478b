package leave

import (
	"iter"
	"math"
	"slices"
	"strings"
	"time"
)

// CalculateDays returns the inclusive day count between start and end, so a
// same-day request counts as one day.
func CalculateDays(start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, &ValidationError{Field: "endDate", Reason: "must be on or after startDate"}
	}
	hours := end.Sub(start).Hours()
	return int(math.Ceil(hours/24)) + 1, nil
}

// newApprovalHistory returns the fixed three-step chain, all pending.
func newApprovalHistory() []ApprovalStep {
	history := make([]ApprovalStep, 0, len(ApprovalChain))
	for _, step := range ApprovalChain {
		history = append(history, ApprovalStep{Step: step, Status: StepPending})
	}
	return history
}

// advance is the pure approval-step transition: it validates ordering against
// the fixed chain and returns the next request value without touching the input.
func advance(req LeaveRequest, step, decision, approver, comment string, now time.Time) (LeaveRequest, error) {
	if req.Terminal() {
		return LeaveRequest{}, ErrAlreadyFinalized
	}
	if decision != DecisionApproved && decision != DecisionRejected {
		return LeaveRequest{}, &ValidationError{Field: "decision", Reason: "must be approved or rejected"}
	}
	if !slices.Contains(ApprovalChain[:], step) {
		return LeaveRequest{}, &ValidationError{Field: "step", Reason: "unknown approval step"}
	}

	next := req.Clone()
	cursor := -1
	for i, entry := range next.ApprovalHistory {
		if entry.Status == StepPending {
			cursor = i
			break
		}
	}
	if cursor < 0 || next.ApprovalHistory[cursor].Step != step {
		return LeaveRequest{}, ErrSequenceViolation
	}

	entry := &next.ApprovalHistory[cursor]
	entry.Approver = approver
	entry.Timestamp = &now
	entry.Comment = comment

	if decision == DecisionRejected {
		entry.Status = StepRejected
		next.Status = StatusRejected
		return next, nil
	}

	entry.Status = StepApproved
	next.Status = statusAfterApproval[step]
	return next, nil
}

// FilterRequests returns a lazy, restartable view of requests whose reason or
// leave type contains searchTerm (case-insensitive) and whose status equals
// statusFilter when it is non-empty. Input order is preserved.
func FilterRequests(requests []LeaveRequest, searchTerm, statusFilter string) iter.Seq[LeaveRequest] {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	return func(yield func(LeaveRequest) bool) {
		for _, req := range requests {
			if term != "" &&
				!strings.Contains(strings.ToLower(req.Reason), term) &&
				!strings.Contains(strings.ToLower(req.LeaveType), term) {
				continue
			}
			if statusFilter != "" && req.Status != statusFilter {
				continue
			}
			if !yield(req) {
				return
			}
		}
	}
}
