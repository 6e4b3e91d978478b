package leave

import (
	"context"
	"errors"
	"testing"
)

func submitVacation(t *testing.T, svc *Service) LeaveRequest {
	t.Helper()
	req, err := svc.Submit(context.Background(), SubmitInput{
		EmployeeID:   "EMP001",
		EmployeeName: "Michael Chen",
		LeaveType:    TypeVacation,
		StartDate:    date("2024-02-15"),
		EndDate:      date("2024-02-17"),
		Reason:       "Family vacation",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	return req
}

func TestSubmitCreatesPendingRequestWithFullChain(t *testing.T) {
	svc := NewService(NewStore(), true)
	req := submitVacation(t, svc)

	if req.Days != 3 {
		t.Fatalf("expected 3 days, got %d", req.Days)
	}
	if req.Status != StatusPending {
		t.Fatalf("expected pending status, got %s", req.Status)
	}
	if len(req.ApprovalHistory) != 3 {
		t.Fatalf("expected 3 approval steps, got %d", len(req.ApprovalHistory))
	}
	for i, step := range req.ApprovalHistory {
		if step.Step != ApprovalChain[i] {
			t.Fatalf("step %d: expected %s, got %s", i, ApprovalChain[i], step.Step)
		}
		if step.Status != StepPending {
			t.Fatalf("step %s: expected pending, got %s", step.Step, step.Status)
		}
	}
}

func TestSubmitPrependsMostRecentFirst(t *testing.T) {
	svc := NewService(NewStore(), true)
	first := submitVacation(t, svc)
	second := submitVacation(t, svc)

	requests := svc.Requests(context.Background())
	if len(requests) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(requests))
	}
	if requests[0].ID != second.ID || requests[1].ID != first.ID {
		t.Fatal("expected most-recent-first ordering")
	}
}

func TestSubmitValidation(t *testing.T) {
	svc := NewService(NewStore(), true)
	ctx := context.Background()

	cases := []struct {
		name  string
		input SubmitInput
	}{
		{"empty reason", SubmitInput{EmployeeID: "EMP001", LeaveType: TypeSick, StartDate: date("2024-03-01"), EndDate: date("2024-03-02")}},
		{"unknown type", SubmitInput{EmployeeID: "EMP001", LeaveType: "sabbatical", StartDate: date("2024-03-01"), EndDate: date("2024-03-02"), Reason: "x"}},
		{"reversed range", SubmitInput{EmployeeID: "EMP001", LeaveType: TypeSick, StartDate: date("2024-03-02"), EndDate: date("2024-03-01"), Reason: "x"}},
		{"missing dates", SubmitInput{EmployeeID: "EMP001", LeaveType: TypeSick, Reason: "x"}},
	}
	for _, tc := range cases {
		if _, err := svc.Submit(ctx, tc.input); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		} else {
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("%s: expected *ValidationError, got %T", tc.name, err)
			}
		}
	}

	if len(svc.Requests(ctx)) != 0 {
		t.Fatal("failed submissions must not be stored")
	}
}

func TestAdvanceFullApprovalChain(t *testing.T) {
	svc := NewService(NewStore(), false)
	ctx := context.Background()
	req := submitVacation(t, svc)

	steps := []struct {
		step     string
		approver string
		status   string
	}{
		{StepHRAdmin, "Sarah Johnson", StatusHRApproved},
		{StepVPOps, "Robert Wilson", StatusVPApproved},
		{StepITHead, "Lisa Chang", StatusITApproved},
	}
	for _, tc := range steps {
		updated, err := svc.Advance(ctx, req.ID, tc.step, DecisionApproved, tc.approver, "")
		if err != nil {
			t.Fatalf("advance %s failed: %v", tc.step, err)
		}
		if updated.Status != tc.status {
			t.Fatalf("after %s expected status %s, got %s", tc.step, tc.status, updated.Status)
		}
	}

	final, err := svc.Request(ctx, req.ID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	for _, step := range final.ApprovalHistory {
		if step.Status != StepApproved {
			t.Fatalf("step %s: expected approved, got %s", step.Step, step.Status)
		}
		if step.Approver == "" || step.Timestamp == nil {
			t.Fatalf("step %s: expected approver and timestamp", step.Step)
		}
	}

	if _, err := svc.Advance(ctx, req.ID, StepHRAdmin, DecisionApproved, "Sarah Johnson", ""); !errors.Is(err, ErrAlreadyFinalized) {
		t.Fatalf("expected ErrAlreadyFinalized, got %v", err)
	}
}

func TestAdvanceEnforcesStrictOrdering(t *testing.T) {
	svc := NewService(NewStore(), false)
	ctx := context.Background()
	req := submitVacation(t, svc)

	for _, step := range []string{StepVPOps, StepITHead} {
		if _, err := svc.Advance(ctx, req.ID, step, DecisionApproved, "someone", ""); !errors.Is(err, ErrSequenceViolation) {
			t.Fatalf("step %s: expected ErrSequenceViolation, got %v", step, err)
		}
	}

	if _, err := svc.Advance(ctx, req.ID, StepHRAdmin, DecisionApproved, "Sarah Johnson", ""); err != nil {
		t.Fatalf("first step should succeed: %v", err)
	}
	if _, err := svc.Advance(ctx, req.ID, StepHRAdmin, DecisionApproved, "Sarah Johnson", ""); !errors.Is(err, ErrSequenceViolation) {
		t.Fatalf("re-approving a settled step: expected ErrSequenceViolation, got %v", err)
	}
	if _, err := svc.Advance(ctx, req.ID, StepITHead, DecisionApproved, "Lisa Chang", ""); !errors.Is(err, ErrSequenceViolation) {
		t.Fatalf("skipping vp-ops: expected ErrSequenceViolation, got %v", err)
	}
}

func TestRejectionIsImmediatelyTerminal(t *testing.T) {
	svc := NewService(NewStore(), false)
	ctx := context.Background()
	req := submitVacation(t, svc)

	updated, err := svc.Advance(ctx, req.ID, StepHRAdmin, DecisionRejected, "Sarah Johnson", "insufficient coverage")
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if updated.Status != StatusRejected {
		t.Fatalf("expected rejected status, got %s", updated.Status)
	}
	if updated.ApprovalHistory[0].Status != StepRejected {
		t.Fatalf("expected first step rejected, got %s", updated.ApprovalHistory[0].Status)
	}
	if updated.ApprovalHistory[1].Status != StepPending || updated.ApprovalHistory[2].Status != StepPending {
		t.Fatal("later steps must never be evaluated after a rejection")
	}

	for _, step := range ApprovalChain {
		if _, err := svc.Advance(ctx, req.ID, step, DecisionApproved, "anyone", ""); !errors.Is(err, ErrAlreadyFinalized) {
			t.Fatalf("step %s after rejection: expected ErrAlreadyFinalized, got %v", step, err)
		}
	}
}

func TestAdvanceUnknownRequest(t *testing.T) {
	svc := NewService(NewStore(), false)
	if _, err := svc.Advance(context.Background(), "missing", StepHRAdmin, DecisionApproved, "x", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFinalApprovalDeductsBalanceWhenEnabled(t *testing.T) {
	store := NewStore()
	store.PutBalance(Balance{EmployeeID: "EMP001", Year: 2024, Vacation: 15, Sick: 10, Maternity: 60, Emergency: 5})
	svc := NewService(store, true)
	ctx := context.Background()
	req := submitVacation(t, svc)

	if balance, _ := store.Balance("EMP001", 2024); balance.Vacation != 15 {
		t.Fatalf("submission must not touch balance, got %d", balance.Vacation)
	}

	approvers := map[string]string{StepHRAdmin: "Sarah Johnson", StepVPOps: "Robert Wilson", StepITHead: "Lisa Chang"}
	for _, step := range ApprovalChain {
		if _, err := svc.Advance(ctx, req.ID, step, DecisionApproved, approvers[step], ""); err != nil {
			t.Fatalf("advance %s failed: %v", step, err)
		}
	}

	balance, ok := store.Balance("EMP001", 2024)
	if !ok {
		t.Fatal("expected balance row")
	}
	if balance.Vacation != 12 {
		t.Fatalf("expected vacation balance 12 after approving 3 days, got %d", balance.Vacation)
	}
	if balance.Sick != 10 {
		t.Fatalf("other categories must be untouched, got sick=%d", balance.Sick)
	}
}

func TestFinalApprovalKeepsBalanceWhenDisabled(t *testing.T) {
	store := NewStore()
	store.PutBalance(Balance{EmployeeID: "EMP001", Year: 2024, Vacation: 15})
	svc := NewService(store, false)
	ctx := context.Background()
	req := submitVacation(t, svc)

	approvers := map[string]string{StepHRAdmin: "Sarah Johnson", StepVPOps: "Robert Wilson", StepITHead: "Lisa Chang"}
	for _, step := range ApprovalChain {
		if _, err := svc.Advance(ctx, req.ID, step, DecisionApproved, approvers[step], ""); err != nil {
			t.Fatalf("advance %s failed: %v", step, err)
		}
	}

	if balance, _ := store.Balance("EMP001", 2024); balance.Vacation != 15 {
		t.Fatalf("expected untouched balance 15, got %d", balance.Vacation)
	}
}

func TestBalanceClampsAtZero(t *testing.T) {
	store := NewStore()
	store.PutBalance(Balance{EmployeeID: "EMP001", Year: 2024, Vacation: 2})
	svc := NewService(store, true)
	ctx := context.Background()
	req := submitVacation(t, svc) // 3 days against a balance of 2

	approvers := map[string]string{StepHRAdmin: "Sarah Johnson", StepVPOps: "Robert Wilson", StepITHead: "Lisa Chang"}
	for _, step := range ApprovalChain {
		if _, err := svc.Advance(ctx, req.ID, step, DecisionApproved, approvers[step], ""); err != nil {
			t.Fatalf("advance %s failed: %v", step, err)
		}
	}

	if balance, _ := store.Balance("EMP001", 2024); balance.Vacation != 0 {
		t.Fatalf("expected balance clamped at 0, got %d", balance.Vacation)
	}
}

func TestStoreUpdateDoesNotAliasHistory(t *testing.T) {
	svc := NewService(NewStore(), false)
	ctx := context.Background()
	req := submitVacation(t, svc)

	before, _ := svc.Request(ctx, req.ID)
	if _, err := svc.Advance(ctx, req.ID, StepHRAdmin, DecisionApproved, "Sarah Johnson", ""); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if before.ApprovalHistory[0].Status != StepPending {
		t.Fatal("earlier snapshot mutated by later transition")
	}
}
