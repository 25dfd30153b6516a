package api

import (
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"rodacerta/frotagest/internal/common"
	"rodacerta/frotagest/internal/config"
	"rodacerta/frotagest/internal/db/repositories"
	"rodacerta/frotagest/internal/services"
)

type Repositories struct {
	Tires       *repositories.TireRepository
	Vehicles    *repositories.VehicleRepository
	Keys        *repositories.KeysRepo
	Operators   *repositories.OperatorRepositoryGORM
	FuelLogs    *repositories.FuelLogRepository
	Parts       *repositories.PartReplacementRepository
	Inspections *repositories.InspectionRepository
}

type Services struct {
	Cache      common.CacheInterface
	Assignment *services.AssignmentService
	Fleet      *services.FleetService
	Tires      *services.TireService
	Stock      *services.StockService
	Records    *services.RecordsService
	Reports    *services.ReportService
	Auth       *services.AuthService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

// InitDependencies wires repositories and services together. Redis backs
// the cache when configured; otherwise the in-memory cache serves.
func InitDependencies(cfg *config.Config, sqlxDB *sqlx.DB, gormDB *gorm.DB) (*Dependencies, error) {

	repos := &Repositories{
		Tires:       repositories.NewTireRepository(sqlxDB),
		Vehicles:    repositories.NewVehicleRepository(sqlxDB),
		Keys:        repositories.NewApiKeysRepo(sqlxDB),
		Operators:   repositories.NewOperatorRepositoryGORM(gormDB),
		FuelLogs:    repositories.NewFuelLogRepository(gormDB),
		Parts:       repositories.NewPartReplacementRepository(gormDB),
		Inspections: repositories.NewInspectionRepository(gormDB),
	}

	var cache common.CacheInterface
	if cfg.RedisHost != "" {
		cache = common.NewRedisCacheService(common.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword))
	} else {
		cache = common.NewCacheService(300, 600)
	}

	svcs := &Services{
		Cache:      cache,
		Assignment: services.NewAssignmentService(repos.Tires, repos.Vehicles),
		Fleet:      services.NewFleetService(repos.Vehicles, repos.Tires, cache),
		Tires:      services.NewTireService(repos.Tires),
		Stock:      services.NewStockService(repos.Tires),
		Records:    services.NewRecordsService(repos.FuelLogs, repos.Parts, repos.Inspections, repos.Vehicles),
		Reports:    services.NewReportService(repos.FuelLogs, repos.Vehicles, cache),
		Auth:       services.NewAuthService(repos.Operators, cfg.JWTSecret, cfg.SessionTTL),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
	}, nil
}
