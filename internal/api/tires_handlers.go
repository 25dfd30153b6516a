package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"rodacerta/frotagest/internal/metrics"
	"rodacerta/frotagest/internal/models/dtos"
	"rodacerta/frotagest/internal/models/entities"
	"rodacerta/frotagest/internal/services"
)

// ListTiresHandler handles GET /api/v1/tires.
// An optional ?status= filter narrows the registry to one lifecycle state.
func ListTiresHandler(tireSvc *services.TireService, stockSvc *services.StockService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if raw := r.URL.Query().Get("status"); raw != "" {
			status, ok := entities.ParseTireStatus(raw)
			if !ok {
				respondWithMessage(w, http.StatusBadRequest, "unknown status "+raw)
				return
			}
			tires, err := stockSvc.ByStatus(r.Context(), status)
			if err != nil {
				respondDomainError(w, err)
				return
			}
			respondWithSuccess(w, http.StatusOK, &tires)
			return
		}

		tires, err := tireSvc.List(r.Context())
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &tires)
	}
}

// GetTireHandler handles GET /api/v1/tires/{tireID}
func GetTireHandler(tireSvc *services.TireService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := tireSvc.Get(r.Context(), chi.URLParam(r, "tireID"))
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, t)
	}
}

// CreateTireHandler handles POST /api/v1/tires
func CreateTireHandler(tireSvc *services.TireService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.TireReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		t, err := tireSvc.Create(r.Context(), &req)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, t)
	}
}

// UpdateTireHandler handles PUT /api/v1/tires/{tireID}
func UpdateTireHandler(tireSvc *services.TireService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.TireReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		t, err := tireSvc.Update(r.Context(), chi.URLParam(r, "tireID"), &req)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, t)
	}
}

// ChangeTireStatusHandler handles POST /api/v1/tires/{tireID}/status.
// It covers the off-vehicle moves: recap completion and scrapping.
func ChangeTireStatusHandler(tireSvc *services.TireService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.TireStatusChangeReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		status, ok := entities.ParseTireStatus(req.Status)
		if !ok {
			respondWithMessage(w, http.StatusBadRequest, "unknown status "+req.Status)
			return
		}

		t, err := tireSvc.ChangeStatus(r.Context(), chi.URLParam(r, "tireID"), status)
		if err != nil {
			respondDomainError(w, err)
			return
		}

		switch status {
		case entities.TireInStock:
			metricsReg.RecapCompletionsTotal.Inc()
		case entities.TireScrapped:
			metricsReg.TiresScrappedTotal.Inc()
		}
		respondWithSuccess(w, http.StatusOK, t)
	}
}

// DeleteTireHandler handles DELETE /api/v1/tires/{tireID}
func DeleteTireHandler(tireSvc *services.TireService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := tireSvc.Delete(r.Context(), chi.URLParam(r, "tireID")); err != nil {
			respondDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// StockSearchHandler handles GET /api/v1/tires/stock?status=&q=.
// status accepts a comma separated list; the default scope is
// in_stock plus in_recapping.
func StockSearchHandler(stockSvc *services.StockService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var statuses []entities.TireStatus
		if raw := r.URL.Query().Get("status"); raw != "" {
			for _, part := range strings.Split(raw, ",") {
				status, ok := entities.ParseTireStatus(strings.TrimSpace(part))
				if !ok {
					respondWithMessage(w, http.StatusBadRequest, "unknown status "+part)
					return
				}
				statuses = append(statuses, status)
			}
		}

		tires, err := stockSvc.Search(r.Context(), r.URL.Query().Get("q"), statuses...)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &tires)
	}
}
