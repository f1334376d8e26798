// Package http provides the portal's HTTP handlers and router.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/atinyakov/StorePortal/internal/models"
	"github.com/atinyakov/StorePortal/internal/service"
	"go.uber.org/zap"
)

// AuthService defines the authentication operations required by the HTTP handlers.
type AuthService interface {
	// Login verifies credentials and returns the user with a token pair.
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResult, error)
}

// AuthHandler handles HTTP requests for seller login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
	// Log receives internal errors. May be nil.
	Log *zap.Logger
}

// Login handles POST /api/auth/login.
// It expects a JSON body with non-empty "email" and "password" and responds
// with {"data": {"user", "accessToken", "refreshToken"}}.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	res, err := h.AuthService.Login(r.Context(), creds)
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		if h.Log != nil {
			h.Log.Error("login failed", zap.String("email", creds.Email), zap.Error(err))
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeData(w, http.StatusOK, res)
}
