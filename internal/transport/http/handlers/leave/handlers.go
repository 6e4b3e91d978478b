package leavehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain/auth"
	"hrportal/internal/domain/leave"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/middleware"
	"hrportal/internal/transport/http/shared"
)

type Handler struct {
	Service *leave.Service
}

func NewHandler(service *leave.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermLeaveRead)).Get("/balances", h.handleBalance)
		r.With(middleware.RequirePermission(auth.PermLeaveRead)).Get("/requests", h.handleListRequests)
		r.With(middleware.RequirePermission(auth.PermLeaveRead)).Get("/requests/{requestID}", h.handleGetRequest)
		r.With(middleware.RequirePermission(auth.PermLeaveWrite)).Post("/requests", h.handleSubmitRequest)
		r.With(middleware.RequirePermission(auth.PermLeaveApprove)).Post("/requests/{requestID}/approve", h.handleApprove)
		r.With(middleware.RequirePermission(auth.PermLeaveApprove)).Post("/requests/{requestID}/reject", h.handleReject)
	})
}

func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	employeeID := user.UserID
	if requested := r.URL.Query().Get("employeeId"); requested != "" && requested != user.UserID {
		if user.Role != auth.RoleHRAdmin {
			api.Fail(w, http.StatusForbidden, "forbidden", "cannot view another employee's balance", requestID)
			return
		}
		employeeID = requested
	}

	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			shared.FailValidation(w, requestID, []shared.ValidationIssue{{Field: "year", Reason: "must be a number"}})
			return
		}
		year = parsed
	}

	balance, ok := h.Service.Balance(r.Context(), employeeID, year)
	if !ok {
		api.Fail(w, http.StatusNotFound, "not_found", "no balance for employee and year", requestID)
		return
	}
	api.Success(w, balance, requestID)
}

func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	requests := h.Service.Requests(r.Context())
	filtered := slices.Collect(leave.FilterRequests(
		requests,
		r.URL.Query().Get("search"),
		r.URL.Query().Get("status"),
	))
	if filtered == nil {
		filtered = []leave.LeaveRequest{}
	}
	api.Success(w, filtered, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	req, err := h.Service.Request(r.Context(), chi.URLParam(r, "requestID"))
	if err != nil {
		failLeaveError(w, err, requestID)
		return
	}
	api.Success(w, req, requestID)
}

type submitPayload struct {
	LeaveType string `json:"leaveType"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

func (h *Handler) handleSubmitRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var payload submitPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("reason", payload.Reason, "is required")
	v.Enum("leaveType", payload.LeaveType, leave.Types, "unknown leave type")
	start, startOK := v.Date("startDate", payload.StartDate)
	end, endOK := v.Date("endDate", payload.EndDate)
	if startOK && endOK {
		v.DateOrder("startDate", start, "endDate", end)
	}
	if v.Reject(w, requestID) {
		return
	}

	req, err := h.Service.Submit(r.Context(), leave.SubmitInput{
		EmployeeID:   user.UserID,
		EmployeeName: user.Name,
		LeaveType:    payload.LeaveType,
		StartDate:    start,
		EndDate:      end,
		Reason:       payload.Reason,
	})
	if err != nil {
		failLeaveError(w, err, requestID)
		return
	}
	api.Created(w, req, requestID)
}

type decisionPayload struct {
	Step    string `json:"step"`
	Comment string `json:"comment"`
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.handleDecision(w, r, leave.DecisionApproved)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	h.handleDecision(w, r, leave.DecisionRejected)
}

func (h *Handler) handleDecision(w http.ResponseWriter, r *http.Request, decision string) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var payload decisionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	step := payload.Step
	if step == "" {
		// Approvers default to the step their role owns.
		step = user.Role
	}

	req, err := h.Service.Advance(r.Context(), chi.URLParam(r, "requestID"), step, decision, user.Name, payload.Comment)
	if err != nil {
		failLeaveError(w, err, requestID)
		return
	}
	api.Success(w, req, requestID)
}

func failLeaveError(w http.ResponseWriter, err error, requestID string) {
	var verr *leave.ValidationError
	switch {
	case errors.As(err, &verr):
		shared.FailValidation(w, requestID, []shared.ValidationIssue{{Field: verr.Field, Reason: verr.Reason}})
	case errors.Is(err, leave.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", requestID)
	case errors.Is(err, leave.ErrSequenceViolation):
		api.Fail(w, http.StatusConflict, "sequence_violation", "approval step out of order", requestID)
	case errors.Is(err, leave.ErrAlreadyFinalized):
		api.Fail(w, http.StatusConflict, "already_finalized", "leave request already finalized", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "leave_failed", "leave operation failed", requestID)
	}
}
