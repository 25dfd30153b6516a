package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"rodacerta/frotagest/internal/db/repositories"
	"rodacerta/frotagest/internal/models/dtos"
)

// ListAPIKeysHandler handles GET /api/v1/keys
func ListAPIKeysHandler(keysRepo *repositories.KeysRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keys, err := keysRepo.List(r.Context())
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &keys)
	}
}

// CreateAPIKeyHandler handles POST /api/v1/keys. The key value is the
// generated row id; this response is the only place it is shown in full.
func CreateAPIKeyHandler(keysRepo *repositories.KeysRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.ApiKeyReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "Invalid request payload")
			return
		}
		if req.Label == "" {
			respondWithMessage(w, http.StatusBadRequest, "label is required")
			return
		}

		key, err := keysRepo.Create(r.Context(), uuid.NewString(), req.Label)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, key)
	}
}

// RevokeAPIKeyHandler handles DELETE /api/v1/keys/{keyID}. Keys are
// deactivated, not deleted, so the audit trail keeps the label.
func RevokeAPIKeyHandler(keysRepo *repositories.KeysRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := keysRepo.SetStatus(r.Context(), chi.URLParam(r, "keyID"), false); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				respondWithMessage(w, http.StatusNotFound, "API key not found")
				return
			}
			respondDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
