package payroll

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

type AdjustmentInput struct {
	Type        string
	Description string
	Amount      decimal.Decimal
	Reason      string
	ApprovedBy  string
}

// AddAdjustment appends an immutable adjustment, re-derives net pay and writes
// an audit entry for the adjustment-count transition. The returned record is a
// new value; the stored collection is replaced under the store lock.
func (s *Service) AddAdjustment(ctx context.Context, recordID string, input AdjustmentInput) (Record, error) {
	if input.Type != AdjustmentAddition && input.Type != AdjustmentDeduction {
		return Record{}, &ValidationError{Field: "type", Reason: "must be addition or deduction"}
	}
	if strings.TrimSpace(input.Description) == "" {
		return Record{}, &ValidationError{Field: "description", Reason: "is required"}
	}
	if strings.TrimSpace(input.Reason) == "" {
		return Record{}, &ValidationError{Field: "reason", Reason: "is required"}
	}
	if !input.Amount.IsPositive() {
		return Record{}, &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}

	now := time.Now().UTC()
	return s.Store.Update(recordID, func(record Record) (Record, error) {
		oldCount := len(record.Adjustments)
		record.Adjustments = append(record.Adjustments, Adjustment{
			ID:          uuid.NewString(),
			Type:        input.Type,
			Description: input.Description,
			Amount:      input.Amount,
			Reason:      input.Reason,
			ApprovedBy:  input.ApprovedBy,
			Timestamp:   now,
		})
		record.NetPay = RecalculateNetPay(record)
		record.AuditTrail = append(record.AuditTrail, AuditEntry{
			ID:        uuid.NewString(),
			Action:    "Adjustment Added",
			Field:     "adjustments",
			OldValue:  strconv.Itoa(oldCount),
			NewValue:  strconv.Itoa(oldCount + 1),
			ChangedBy: input.ApprovedBy,
			Timestamp: now,
			Reason:    input.Type + ": " + input.Description,
		})
		return record, nil
	})
}

// SetStatus validates a forward-only lifecycle transition and records it in
// the audit trail. Transitions are externally triggered; the engine only
// accepts or refuses them.
func (s *Service) SetStatus(ctx context.Context, recordID, newStatus, actor string) (Record, error) {
	if newStatus != StatusDraft && newStatus != StatusProcessed && newStatus != StatusPaid {
		return Record{}, &ValidationError{Field: "status", Reason: "unknown status"}
	}

	now := time.Now().UTC()
	return s.Store.Update(recordID, func(record Record) (Record, error) {
		if nextStatus[record.Status] != newStatus {
			return Record{}, ErrInvalidTransition
		}
		old := record.Status
		record.Status = newStatus
		record.AuditTrail = append(record.AuditTrail, AuditEntry{
			ID:        uuid.NewString(),
			Action:    "Status Changed",
			Field:     "status",
			OldValue:  old,
			NewValue:  newStatus,
			ChangedBy: actor,
			Timestamp: now,
			Reason:    "status advanced from " + old + " to " + newStatus,
		})
		return record, nil
	})
}

func (s *Service) Record(ctx context.Context, recordID string) (Record, error) {
	return s.Store.Record(recordID)
}

func (s *Service) Records(ctx context.Context) []Record {
	return s.Store.Records()
}
