package routes

import (
	"github.com/go-chi/chi/v5"

	"rodacerta/frotagest/internal/api"
	"rodacerta/frotagest/internal/config"
	"rodacerta/frotagest/internal/metrics"
	"rodacerta/frotagest/internal/middleware"
	"rodacerta/frotagest/pkg/ws"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, cfg *config.Config, metricsReg *metrics.MetricsRegistry, deps *api.Dependencies, hub *ws.Hub) {

	svcs := deps.Services

	// API v1 routes
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.MetricsMiddleware(metricsReg))

		// login is the one unauthenticated endpoint
		v1.Post("/auth/login", api.LoginHandler(svcs.Auth))

		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(cfg.JWTSecret, deps.Repo.Keys))

			authed.Get("/user/details", api.UserDetailsHandler(svcs.Auth))

			// fleet registry and tire maps
			authed.Get("/layouts", api.LayoutsHandler(svcs.Fleet))
			authed.Get("/vehicles", api.ListVehiclesHandler(svcs.Fleet))
			authed.Get("/vehicles/{vehicleID}", api.GetVehicleHandler(svcs.Fleet))
			authed.Get("/vehicles/{vehicleID}/layout", api.VehicleLayoutHandler(svcs.Fleet))
			authed.Get("/vehicles/{vehicleID}/tires", api.TireMapHandler(svcs.Fleet))

			// tire registry and stock
			authed.Get("/tires", api.ListTiresHandler(svcs.Tires, svcs.Stock))
			authed.Get("/tires/stock", api.StockSearchHandler(svcs.Stock))
			authed.Get("/tires/{tireID}", api.GetTireHandler(svcs.Tires))

			// maintenance records
			authed.Get("/vehicles/{vehicleID}/fuel", api.FuelLogsHandler(svcs.Records))
			authed.Get("/vehicles/{vehicleID}/parts", api.PartsHandler(svcs.Records))
			authed.Get("/vehicles/{vehicleID}/inspections", api.InspectionsHandler(svcs.Records))
			authed.Post("/vehicles/{vehicleID}/fuel", api.AddFuelLogHandler(svcs.Records))
			authed.Post("/vehicles/{vehicleID}/inspections", api.AddInspectionHandler(svcs.Records))

			// reports
			authed.Get("/reports/consumption", api.FleetConsumptionHandler(svcs.Reports))
			authed.Get("/reports/consumption/{vehicleID}", api.VehicleConsumptionHandler(svcs.Reports))

			// writes that reshape the fleet require the manager role
			authed.Group(func(mgr chi.Router) {
				mgr.Use(middleware.RequireManager)

				mgr.Post("/vehicles", api.CreateVehicleHandler(svcs.Fleet))
				mgr.Put("/vehicles/{vehicleID}", api.UpdateVehicleHandler(svcs.Fleet))

				mgr.Post("/tires", api.CreateTireHandler(svcs.Tires))
				mgr.Put("/tires/{tireID}", api.UpdateTireHandler(svcs.Tires))
				mgr.Post("/tires/{tireID}/status", api.ChangeTireStatusHandler(svcs.Tires, metricsReg))
				mgr.Delete("/tires/{tireID}", api.DeleteTireHandler(svcs.Tires))

				mgr.Post("/vehicles/{vehicleID}/tires/assign", api.AssignTireHandler(svcs.Assignment, svcs.Fleet, hub, metricsReg))
				mgr.Post("/vehicles/{vehicleID}/tires/swap", api.SwapTiresHandler(svcs.Assignment, svcs.Fleet, hub, metricsReg))
				mgr.Post("/vehicles/{vehicleID}/tires/unassign", api.UnassignTireHandler(svcs.Assignment, svcs.Fleet, hub, metricsReg))

				mgr.Post("/vehicles/{vehicleID}/parts", api.AddPartHandler(svcs.Records))
				mgr.Delete("/fuel/{logID}", api.DeleteFuelLogHandler(svcs.Records))
				mgr.Delete("/parts/{partID}", api.DeletePartHandler(svcs.Records))
			})

			// operator and API key administration is admin-only
			authed.Group(func(admin chi.Router) {
				admin.Use(middleware.RequireAdmin)

				admin.Get("/operators", api.ListOperatorsHandler(svcs.Auth))
				admin.Post("/operators", api.CreateOperatorHandler(svcs.Auth))
				admin.Put("/operators/{operatorID}", api.UpdateOperatorHandler(svcs.Auth))

				admin.Get("/keys", api.ListAPIKeysHandler(deps.Repo.Keys))
				admin.Post("/keys", api.CreateAPIKeyHandler(deps.Repo.Keys))
				admin.Delete("/keys/{keyID}", api.RevokeAPIKeyHandler(deps.Repo.Keys))
			})
		})
	})
}
