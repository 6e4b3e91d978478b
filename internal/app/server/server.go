package server

import (
	"encoding/json"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"hrportal/internal/domain/auth"
	"hrportal/internal/domain/leave"
	"hrportal/internal/domain/payroll"
	"hrportal/internal/platform/config"
	"hrportal/internal/platform/metrics"
	"hrportal/internal/platform/seed"
	authhandler "hrportal/internal/transport/http/handlers/auth"
	leavehandler "hrportal/internal/transport/http/handlers/leave"
	payrollhandler "hrportal/internal/transport/http/handlers/payroll"
	"hrportal/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	Router  http.Handler
	Auth    *auth.Service
	Leave   *leave.Service
	Payroll *payroll.Service
	Metrics *metrics.Collector
}

// New assembles the services, seeds the demo dataset and builds the router.
func New(cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	directory := auth.NewDirectory()
	activity := auth.NewActivityLog()
	authSvc := auth.NewService(directory, activity, cfg.JWTSecret, cfg.SessionTimeout, cfg.AllowedNetworks)

	leaveStore := leave.NewStore()
	leaveSvc := leave.NewService(leaveStore, cfg.LeaveDeductOnApproval)

	payrollStore := payroll.NewStore()
	payrollSvc := payroll.NewService(payrollStore)

	if cfg.SeedDemoData {
		if err := seed.Users(directory); err != nil {
			return nil, err
		}
		seed.Leave(leaveStore)
		seed.Payroll(payrollStore)
	}

	collector := metrics.New()

	app := &App{
		Config:  cfg,
		Auth:    authSvc,
		Leave:   leaveSvc,
		Payroll: payrollSvc,
		Metrics: collector,
	}
	app.Router = app.buildRouter()
	return app, nil
}

func (a *App) buildRouter() http.Handler {
	cfg := a.Config

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics(a.Metrics))
	}
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(a.Auth))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(a.Metrics.Snapshot()); err != nil {
				slog.Warn("write metrics failed", "err", err)
			}
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		loginLimit := max(cfg.RateLimitPerMinute/4, 1)
		authhandler.NewHandler(a.Auth).RegisterRoutes(r, middleware.LoginRateLimit(loginLimit, time.Minute))
		leavehandler.NewHandler(a.Leave).RegisterRoutes(r)
		payrollhandler.NewHandler(a.Payroll).RegisterRoutes(r)
	})

	return router
}

// Run starts the HTTP server and blocks until it exits.
func Run() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()
	app, err := New(cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}

	slog.Info("HR portal listening", "addr", cfg.Addr, "env", cfg.Environment)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
