package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/atinyakov/StorePortal/internal/middleware"
	"github.com/atinyakov/StorePortal/internal/models"
	"github.com/atinyakov/StorePortal/internal/repository"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// StoreService defines the store lookups required by StoreHandler.
type StoreService interface {
	FindByUser(ctx context.Context, userID string) (*models.StoreLink, error)
	GetByID(ctx context.Context, storeID string) (*models.Store, error)
}

// StoreHandler serves store lookups for the authenticated seller.
type StoreHandler struct {
	StoreService StoreService
	// Log receives internal errors. May be nil.
	Log *zap.Logger
}

// ByUser handles GET /api/stores/user/{userID}. Sellers may only look up
// their own store.
func (h *StoreHandler) ByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID != middleware.GetUserIDFromContext(r.Context()) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	link, err := h.StoreService.FindByUser(r.Context(), userID)
	if h.fail(w, err, "find store by user") {
		return
	}
	writeData(w, http.StatusOK, link)
}

// ByID handles GET /api/stores/{storeID}. Only the owner can read a store.
func (h *StoreHandler) ByID(w http.ResponseWriter, r *http.Request) {
	store, err := h.StoreService.GetByID(r.Context(), chi.URLParam(r, "storeID"))
	if h.fail(w, err, "get store") {
		return
	}
	if store.UserID != middleware.GetUserIDFromContext(r.Context()) {
		writeError(w, http.StatusNotFound, "store not found")
		return
	}
	writeData(w, http.StatusOK, store)
}

// fail writes the error response for err and reports whether it did.
func (h *StoreHandler) fail(w http.ResponseWriter, err error, op string) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "store not found")
	default:
		if h.Log != nil {
			h.Log.Error(op, zap.Error(err))
		}
		writeError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
