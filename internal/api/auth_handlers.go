package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rodacerta/frotagest/internal/auth"
	"rodacerta/frotagest/internal/models/dtos"
	"rodacerta/frotagest/internal/services"
	"rodacerta/frotagest/internal/tire"
)

// LoginHandler handles POST /api/v1/auth/login
func LoginHandler(authSvc *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.LoginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		resp, err := authSvc.Login(r.Context(), &req)
		if err != nil {
			if errors.Is(err, services.ErrBadCredentials) {
				respondWithMessage(w, http.StatusUnauthorized, err.Error())
				return
			}
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, resp)
	}
}

// UserDetailsHandler handles GET /api/v1/user/details, describing whoever
// the request authenticated as. API-key callers have no operator row, so
// their view is built from the claims alone.
func UserDetailsHandler(authSvc *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			respondWithMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		view, err := authSvc.Operator(r.Context(), claims.UserID())
		if err != nil {
			var domainErr *tire.Error
			if errors.As(err, &domainErr) && domainErr.Kind == tire.KindNotFound {
				view = &dtos.OperatorView{
					ID:       claims.UserID(),
					Role:     string(claims.Role()),
					IsActive: true,
				}
				respondWithSuccess(w, http.StatusOK, view)
				return
			}
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, view)
	}
}

// ListOperatorsHandler handles GET /api/v1/operators
func ListOperatorsHandler(authSvc *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ops, err := authSvc.ListOperators(r.Context())
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &ops)
	}
}

// CreateOperatorHandler handles POST /api/v1/operators
func CreateOperatorHandler(authSvc *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.OperatorReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		op, err := authSvc.CreateOperator(r.Context(), &req)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, op)
	}
}

// UpdateOperatorHandler handles PUT /api/v1/operators/{operatorID}
func UpdateOperatorHandler(authSvc *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.OperatorReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		op, err := authSvc.UpdateOperator(r.Context(), chi.URLParam(r, "operatorID"), &req)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, op)
	}
}
