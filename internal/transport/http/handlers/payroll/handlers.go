package payrollhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"hrportal/internal/domain/auth"
	"hrportal/internal/domain/payroll"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/middleware"
	"hrportal/internal/transport/http/shared"
)

type Handler struct {
	Service *payroll.Service
}

func NewHandler(service *payroll.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermPayrollRead)).Get("/records", h.handleListRecords)
		r.With(middleware.RequirePermission(auth.PermPayrollRead)).Get("/records/{recordID}", h.handleGetRecord)
		r.With(middleware.RequirePermission(auth.PermPayrollAdjust)).Post("/records/{recordID}/adjustments", h.handleAddAdjustment)
		r.With(middleware.RequirePermission(auth.PermPayrollStatus)).Post("/records/{recordID}/status", h.handleSetStatus)
		r.With(middleware.RequirePermission(auth.PermPayrollRead)).Get("/records/{recordID}/payslip", h.handlePayslip)
	})
}

func (h *Handler) handleListRecords(w http.ResponseWriter, r *http.Request) {
	records := h.Service.Records(r.Context())
	filtered := slices.Collect(payroll.FilterRecords(
		records,
		r.URL.Query().Get("search"),
		r.URL.Query().Get("period"),
	))
	if filtered == nil {
		filtered = []payroll.Record{}
	}
	api.Success(w, filtered, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	record, err := h.Service.Record(r.Context(), chi.URLParam(r, "recordID"))
	if err != nil {
		failPayrollError(w, err, requestID)
		return
	}
	api.Success(w, record, requestID)
}

type adjustmentPayload struct {
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Reason      string          `json:"reason"`
}

func (h *Handler) handleAddAdjustment(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var payload adjustmentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	record, err := h.Service.AddAdjustment(r.Context(), chi.URLParam(r, "recordID"), payroll.AdjustmentInput{
		Type:        payload.Type,
		Description: payload.Description,
		Amount:      payload.Amount,
		Reason:      payload.Reason,
		ApprovedBy:  user.Name,
	})
	if err != nil {
		failPayrollError(w, err, requestID)
		return
	}
	api.Created(w, record, requestID)
}

type statusPayload struct {
	Status string `json:"status"`
}

func (h *Handler) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var payload statusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	record, err := h.Service.SetStatus(r.Context(), chi.URLParam(r, "recordID"), payload.Status, user.Name)
	if err != nil {
		failPayrollError(w, err, requestID)
		return
	}
	api.Success(w, record, requestID)
}

func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	record, err := h.Service.Record(r.Context(), chi.URLParam(r, "recordID"))
	if err != nil {
		failPayrollError(w, err, requestID)
		return
	}

	pdf, err := payroll.RenderPayslip(record)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_failed", "failed to render payslip", requestID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "payslip-"+record.ID+".pdf"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func failPayrollError(w http.ResponseWriter, err error, requestID string) {
	var verr *payroll.ValidationError
	switch {
	case errors.As(err, &verr):
		shared.FailValidation(w, requestID, []shared.ValidationIssue{{Field: verr.Field, Reason: verr.Reason}})
	case errors.Is(err, payroll.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "payroll record not found", requestID)
	case errors.Is(err, payroll.ErrInvalidTransition):
		api.Fail(w, http.StatusConflict, "invalid_transition", "payroll status can only move forward", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "payroll_failed", "payroll operation failed", requestID)
	}
}
