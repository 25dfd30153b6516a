package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rodacerta/frotagest/internal/auth"
	"rodacerta/frotagest/internal/models/dtos"
	"rodacerta/frotagest/internal/services"
)

// FuelLogsHandler handles GET /api/v1/vehicles/{vehicleID}/fuel
func FuelLogsHandler(recordsSvc *services.RecordsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logs, err := recordsSvc.FuelLogs(r.Context(), chi.URLParam(r, "vehicleID"))
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &logs)
	}
}

// AddFuelLogHandler handles POST /api/v1/vehicles/{vehicleID}/fuel
func AddFuelLogHandler(recordsSvc *services.RecordsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.FuelLogReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		log, err := recordsSvc.AddFuelLog(r.Context(), chi.URLParam(r, "vehicleID"), operatorID(r), &req)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, log)
	}
}

// DeleteFuelLogHandler handles DELETE /api/v1/fuel/{logID}
func DeleteFuelLogHandler(recordsSvc *services.RecordsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := recordsSvc.DeleteFuelLog(r.Context(), chi.URLParam(r, "logID")); err != nil {
			respondDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// PartsHandler handles GET /api/v1/vehicles/{vehicleID}/parts
func PartsHandler(recordsSvc *services.RecordsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts, err := recordsSvc.Parts(r.Context(), chi.URLParam(r, "vehicleID"))
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &parts)
	}
}

// AddPartHandler handles POST /api/v1/vehicles/{vehicleID}/parts
func AddPartHandler(recordsSvc *services.RecordsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.PartReplacementReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		part, err := recordsSvc.AddPart(r.Context(), chi.URLParam(r, "vehicleID"), &req)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, part)
	}
}

// DeletePartHandler handles DELETE /api/v1/parts/{partID}
func DeletePartHandler(recordsSvc *services.RecordsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := recordsSvc.DeletePart(r.Context(), chi.URLParam(r, "partID")); err != nil {
			respondDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// InspectionsHandler handles GET /api/v1/vehicles/{vehicleID}/inspections
func InspectionsHandler(recordsSvc *services.RecordsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inspections, err := recordsSvc.Inspections(r.Context(), chi.URLParam(r, "vehicleID"))
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &inspections)
	}
}

// AddInspectionHandler handles POST /api/v1/vehicles/{vehicleID}/inspections
func AddInspectionHandler(recordsSvc *services.RecordsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.InspectionReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		insp, err := recordsSvc.AddInspection(r.Context(), chi.URLParam(r, "vehicleID"), operatorID(r), &req)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, insp)
	}
}

func operatorID(r *http.Request) string {
	if claims := auth.GetUserClaims(r.Context()); claims != nil {
		return claims.UserID()
	}
	return ""
}
