package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"rodacerta/frotagest/internal/api"
	"rodacerta/frotagest/internal/config"
	"rodacerta/frotagest/internal/jobs"
	"rodacerta/frotagest/internal/logging"
	"rodacerta/frotagest/internal/metrics"
	"rodacerta/frotagest/internal/middleware"
	"rodacerta/frotagest/pkg/ws"
)

func RegisterRoutes(cfg *config.Config, sqlxDB *sqlx.DB, gormDB *gorm.DB, upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// Initialize metrics registry
	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")
	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(sqlxDB, upSince))

	// Initialize dependencies using DI pattern
	deps, err := api.InitDependencies(cfg, sqlxDB, gormDB)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	// fleet console live feed
	hub := ws.NewHub(logging.GetLogger().Desugar())
	hub.SetInitDataProvider(func() *ws.InitData {
		vehicles, err := deps.Services.Fleet.ListVehicles(context.Background())
		if err != nil {
			logging.Warn("Failed to build WebSocket init snapshot", "error", err.Error())
			return nil
		}
		return &ws.InitData{Vehicles: vehicles}
	})
	go hub.Run()
	r.Get("/ws/fleet", api.FleetWSHandler(hub))

	// Background sweep for expired stock tires
	jobs.InitializeJobs(
		context.Background(),
		deps.Repo.Tires,
		hub,
		metricsReg,
		cfg.TireExpiryInterval,
	)

	// Register API routes
	RegisterAPIRoutes(r, cfg, metricsReg, deps, hub)

	return r
}
