package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"rodacerta/frotagest/internal/logging"
	"rodacerta/frotagest/internal/models/dtos"
	"rodacerta/frotagest/internal/models/dtos/responses"
	"rodacerta/frotagest/internal/tire"
)

func respondWithSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	resp := responses.APIResponse[T]{
		Status:    "success",
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func respondWithError(w http.ResponseWriter, statusCode int, payload *dtos.ErrorPayload) {
	resp := responses.APIResponse[any]{
		Status:    "error",
		Timestamp: time.Now().UTC(),
		Error:     payload,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(resp)
}

func respondWithMessage(w http.ResponseWriter, statusCode int, message string) {
	respondWithError(w, statusCode, &dtos.ErrorPayload{Message: message})
}

// respondDomainError maps engine errors onto HTTP statuses: validation
// errors re-show the form (400), conflicts ask for reload-and-retry
// (409), not-found drops the stale reference (404).
func respondDomainError(w http.ResponseWriter, err error) {
	var domainErr *tire.Error
	if errors.As(err, &domainErr) {
		payload := &dtos.ErrorPayload{
			Code:    domainErr.Code,
			Field:   domainErr.Field,
			Message: domainErr.Message,
		}
		switch domainErr.Kind {
		case tire.KindNotFound:
			respondWithError(w, http.StatusNotFound, payload)
		case tire.KindConflict:
			respondWithError(w, http.StatusConflict, payload)
		default:
			respondWithError(w, http.StatusBadRequest, payload)
		}
		return
	}

	logging.Error("Request failed", "error", err.Error())
	respondWithMessage(w, http.StatusInternalServerError, "internal error")
}
