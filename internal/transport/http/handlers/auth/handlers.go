package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrportal/internal/domain/auth"
	"hrportal/internal/transport/http/api"
	"hrportal/internal/transport/http/middleware"
	"hrportal/internal/transport/http/shared"
)

type Handler struct {
	Service *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{Service: service}
}

// RegisterRoutes mounts the auth endpoints. The login middleware carries the
// tighter per-IP rate limit configured for the credential endpoint.
func (h *Handler) RegisterRoutes(r chi.Router, loginMiddleware ...func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.With(loginMiddleware...).Post("/login", h.handleLogin)
		r.Post("/logout", h.handleLogout)
		r.With(middleware.RequirePermission(auth.PermActivityRead)).Get("/activity", h.handleActivity)
	})
}

type loginResponse struct {
	Token            string    `json:"token"`
	User             auth.User `json:"user"`
	SessionTimeoutMs int64     `json:"sessionTimeoutMs"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var creds auth.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	user, token, err := h.Service.Authenticate(r.Context(), creds, middleware.ClientIPKey(r))
	if err != nil {
		var aerr *auth.AuthError
		switch {
		case errors.As(err, &aerr):
			shared.FailValidation(w, requestID, []shared.ValidationIssue{{Field: aerr.Field, Reason: aerr.Reason}})
		case errors.Is(err, auth.ErrInvalidCredentials):
			api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid employee ID or password", requestID)
		case errors.Is(err, auth.ErrIPNotAllowed):
			api.Fail(w, http.StatusForbidden, "ip_not_allowed", "access denied from this network", requestID)
		default:
			api.Fail(w, http.StatusInternalServerError, "login_failed", "login failed", requestID)
		}
		return
	}

	api.Success(w, loginResponse{
		Token:            token,
		User:             user,
		SessionTimeoutMs: h.Service.SessionTimeout().Milliseconds(),
	}, requestID)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}
	h.Service.Logout(r.Context(), user, middleware.ClientIPKey(r))
	api.Success(w, map[string]string{"status": "logged out"}, requestID)
}

func (h *Handler) handleActivity(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.Activity.Entries(), middleware.GetRequestID(r.Context()))
}
