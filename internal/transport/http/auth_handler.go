package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pairpad/collab-service/internal/errs"
	"github.com/pairpad/collab-service/internal/repository"
	httpmw "github.com/pairpad/collab-service/internal/transport/http/middleware"
	"github.com/pairpad/collab-service/pkg/httputil"
)

// POST /auth/signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	res, err := h.authSvc.Signup(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyExists):
			httputil.Error(w, http.StatusBadRequest, "email already registered")
		case errors.Is(err, errs.ErrInvalidEmail),
			errors.Is(err, errs.ErrInvalidRole),
			errors.Is(err, errs.ErrPasswordTooShort):
			httputil.Error(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("handler.Signup", slog.Any("err", err))
			httputil.Error(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	httputil.JSON(w, http.StatusOK, TokenResponse{Token: res.AccessToken})
}

// POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	res, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			httputil.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		slog.Error("handler.Login", slog.Any("err", err))
		httputil.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	httputil.JSON(w, http.StatusOK, TokenResponse{Token: res.AccessToken})
}

// GET /users/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := httpmw.UserIDFromCtx(r.Context())

	u, err := h.authSvc.Me(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httputil.Error(w, http.StatusNotFound, "user not found")
			return
		}
		slog.Error("handler.Me", slog.Any("err", err))
		httputil.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	httputil.JSON(w, http.StatusOK, MeResponse{
		ID:    u.ID,
		Email: u.Email,
		Role:  string(u.Role),
	})
}
