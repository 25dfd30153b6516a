package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rodacerta/frotagest/internal/models/dtos"
	"rodacerta/frotagest/internal/services"
)

// ListVehiclesHandler handles GET /api/v1/vehicles
func ListVehiclesHandler(fleetSvc *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vehicles, err := fleetSvc.ListVehicles(r.Context())
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &vehicles)
	}
}

// GetVehicleHandler handles GET /api/v1/vehicles/{vehicleID}
func GetVehicleHandler(fleetSvc *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := fleetSvc.Vehicle(r.Context(), chi.URLParam(r, "vehicleID"))
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, v)
	}
}

// CreateVehicleHandler handles POST /api/v1/vehicles
func CreateVehicleHandler(fleetSvc *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.VehicleReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		v, err := fleetSvc.CreateVehicle(r.Context(), &req)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, v)
	}
}

// UpdateVehicleHandler handles PUT /api/v1/vehicles/{vehicleID}
func UpdateVehicleHandler(fleetSvc *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.VehicleReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		v, err := fleetSvc.UpdateVehicle(r.Context(), chi.URLParam(r, "vehicleID"), &req)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, v)
	}
}

// VehicleLayoutHandler handles GET /api/v1/vehicles/{vehicleID}/layout
func VehicleLayoutHandler(fleetSvc *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, err := fleetSvc.VehicleLayout(r.Context(), chi.URLParam(r, "vehicleID"))
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &l)
	}
}

// LayoutsHandler handles GET /api/v1/layouts, the static vehicle-type →
// wheel-position catalog the UI renders slot grids from.
func LayoutsHandler(fleetSvc *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		layouts := fleetSvc.Layouts()
		respondWithSuccess(w, http.StatusOK, &layouts)
	}
}
