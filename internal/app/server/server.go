// Package server assembles the HTTP application: database, routes,
// middleware chain and background jobs.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/employee"
	"hrms/internal/domain/engagement"
	"hrms/internal/domain/journey"
	"hrms/internal/domain/leave"
	"hrms/internal/domain/org"
	"hrms/internal/domain/payroll"
	"hrms/internal/domain/performance"
	"hrms/internal/domain/projects"
	"hrms/internal/domain/recruitment"
	"hrms/internal/platform/config"
	"hrms/internal/platform/crypto"
	"hrms/internal/platform/db"
	"hrms/internal/platform/email"
	"hrms/internal/platform/jobs"
	"hrms/internal/platform/metrics"
	"hrms/internal/transport/http/api"
	authhandler "hrms/internal/transport/http/handlers/auth"
	employeehandler "hrms/internal/transport/http/handlers/employee"
	engagementhandler "hrms/internal/transport/http/handlers/engagement"
	journeyhandler "hrms/internal/transport/http/handlers/journey"
	leavehandler "hrms/internal/transport/http/handlers/leave"
	orghandler "hrms/internal/transport/http/handlers/org"
	payrollhandler "hrms/internal/transport/http/handlers/payroll"
	performancehandler "hrms/internal/transport/http/handlers/performance"
	projectshandler "hrms/internal/transport/http/handlers/projects"
	recruitmenthandler "hrms/internal/transport/http/handlers/recruitment"
	"hrms/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	DB      *pgxpool.Pool
	Router  chi.Router
	sweeper *jobs.Sweeper
	logger  *slog.Logger
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			pool.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			pool.Close()
			return nil, fmt.Errorf("seed database: %w", err)
		}
	}

	cryptoSvc, err := crypto.New(cfg.DataEncryptionKey)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("init encryption: %w", err)
	}
	mailer := email.New(cfg)

	authStore := auth.NewStore(pool)
	orgStore := org.NewStore(pool)
	employeeStore := employee.NewStore(pool)
	leaveStore := leave.NewStore(pool)
	payrollStore := payroll.NewStore(pool)
	recruitmentStore := recruitment.NewStore(pool)
	journeyStore := journey.NewStore(pool)
	performanceStore := performance.NewStore(pool)
	projectsStore := projects.NewStore(pool)
	engagementStore := engagement.NewStore(pool)

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(collector))
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	r.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	r.Use(middleware.Auth(cfg.JWTSecret))
	r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		api.Success(w, map[string]string{"status": "ok"}, middleware.GetRequestID(req.Context()))
	})
	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		requestID := middleware.GetRequestID(req.Context())
		pingCtx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			api.Fail(w, http.StatusServiceUnavailable, "not_ready", "database is unreachable", requestID)
			return
		}
		api.Success(w, map[string]string{"status": "ready"}, requestID)
	})

	r.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(authStore, cryptoSvc, mailer, cfg).RegisterRoutes(r)
		orghandler.NewHandler(orgStore).RegisterRoutes(r)
		employeehandler.NewHandler(employeeStore).RegisterRoutes(r)
		leavehandler.NewHandler(leaveStore).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollStore).RegisterRoutes(r)
		recruitmenthandler.NewHandler(recruitmentStore).RegisterRoutes(r)
		journeyhandler.NewHandler(journeyStore).RegisterRoutes(r)
		performancehandler.NewHandler(performanceStore).RegisterRoutes(r)
		projectshandler.NewHandler(projectsStore).RegisterRoutes(r)
		engagementhandler.NewHandler(engagementStore).RegisterRoutes(r)

		r.With(middleware.RequireUser).Get("/policy", func(w http.ResponseWriter, req *http.Request) {
			api.Success(w, auth.Matrix(), middleware.GetRequestID(req.Context()))
		})

		if collector != nil {
			r.With(middleware.RequireRole(auth.RoleAdmin)).Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
				api.Success(w, collector.Snapshot(), middleware.GetRequestID(req.Context()))
			})
		}
	})

	if cfg.FrontendDir != "" {
		r.NotFound(spaHandler(cfg.FrontendDir))
	}

	app := &App{
		Config: cfg,
		DB:     pool,
		Router: r,
		logger: logger,
	}
	if cfg.PortalSweepInterval > 0 {
		app.sweeper = jobs.NewSweeper(recruitmentStore, cfg.PortalSweepInterval, logger)
	}
	return app, nil
}

// spaHandler serves static assets from dir, falling back to index.html
// for client-side routes. API paths still get a JSON 404.
func spaHandler(dir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(dir))
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			api.Fail(w, http.StatusNotFound, "not_found", "route not found", middleware.GetRequestID(r.Context()))
			return
		}
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Config.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if a.sweeper != nil {
		go a.sweeper.Run(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", "addr", a.Config.Addr, "env", a.Config.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		a.DB.Close()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	a.DB.Close()
	return err
}
