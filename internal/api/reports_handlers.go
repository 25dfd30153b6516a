package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"rodacerta/frotagest/internal/services"
)

// VehicleConsumptionHandler handles GET /api/v1/reports/consumption/{vehicleID}?year=
func VehicleConsumptionHandler(reportSvc *services.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year := parseYear(r)

		report, err := reportSvc.VehicleConsumption(r.Context(), chi.URLParam(r, "vehicleID"), year)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, report)
	}
}

// FleetConsumptionHandler handles GET /api/v1/reports/consumption?year=
func FleetConsumptionHandler(reportSvc *services.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year := parseYear(r)

		reports, err := reportSvc.FleetConsumption(r.Context(), year)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &reports)
	}
}

func parseYear(r *http.Request) int {
	if raw := r.URL.Query().Get("year"); raw != "" {
		if year, err := strconv.Atoi(raw); err == nil {
			return year
		}
	}
	return time.Now().Year()
}
