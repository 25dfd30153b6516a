package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rodacerta/frotagest/internal/metrics"
	"rodacerta/frotagest/internal/models/dtos"
	"rodacerta/frotagest/internal/models/entities"
	"rodacerta/frotagest/internal/services"
	"rodacerta/frotagest/pkg/ws"
)

// TireMapHandler handles GET /api/v1/vehicles/{vehicleID}/tires
func TireMapHandler(fleetSvc *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicleID := chi.URLParam(r, "vehicleID")

		tireMap, err := fleetSvc.TireMap(r.Context(), vehicleID)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, tireMap)
	}
}

// AssignTireHandler handles POST /api/v1/vehicles/{vehicleID}/tires/assign
func AssignTireHandler(
	assignSvc *services.AssignmentService,
	fleetSvc *services.FleetService,
	hub *ws.Hub,
	metricsReg *metrics.MetricsRegistry,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicleID := chi.URLParam(r, "vehicleID")

		var req dtos.AssignTireReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		tireMap, err := assignSvc.Assign(r.Context(), vehicleID, req.Position, req.TireID,
			entities.TireStatus(req.OutgoingDisposition))
		if err != nil {
			respondDomainError(w, err)
			return
		}

		metricsReg.TireAssignmentsTotal.WithLabelValues(dispositionLabel(req.OutgoingDisposition)).Inc()
		fleetSvc.InvalidateTireMap(vehicleID)
		hub.BroadcastTireMap(tireMap)
		respondWithSuccess(w, http.StatusOK, tireMap)
	}
}

// SwapTiresHandler handles POST /api/v1/vehicles/{vehicleID}/tires/swap
func SwapTiresHandler(
	assignSvc *services.AssignmentService,
	fleetSvc *services.FleetService,
	hub *ws.Hub,
	metricsReg *metrics.MetricsRegistry,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicleID := chi.URLParam(r, "vehicleID")

		var req dtos.SwapTireReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		tireMap, err := assignSvc.Swap(r.Context(), vehicleID, req.PositionA, req.PositionB)
		if err != nil {
			respondDomainError(w, err)
			return
		}

		metricsReg.TireSwapsTotal.Inc()
		fleetSvc.InvalidateTireMap(vehicleID)
		hub.BroadcastTireMap(tireMap)
		respondWithSuccess(w, http.StatusOK, tireMap)
	}
}

// UnassignTireHandler handles POST /api/v1/vehicles/{vehicleID}/tires/unassign
func UnassignTireHandler(
	assignSvc *services.AssignmentService,
	fleetSvc *services.FleetService,
	hub *ws.Hub,
	metricsReg *metrics.MetricsRegistry,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicleID := chi.URLParam(r, "vehicleID")

		var req dtos.UnassignTireReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		tireMap, err := assignSvc.Unassign(r.Context(), vehicleID, req.Position,
			entities.TireStatus(req.Disposition))
		if err != nil {
			respondDomainError(w, err)
			return
		}

		metricsReg.TireAssignmentsTotal.WithLabelValues(dispositionLabel(req.Disposition)).Inc()
		fleetSvc.InvalidateTireMap(vehicleID)
		hub.BroadcastTireMap(tireMap)
		respondWithSuccess(w, http.StatusOK, tireMap)
	}
}

func dispositionLabel(d string) string {
	if d == "" {
		return "none"
	}
	return d
}
