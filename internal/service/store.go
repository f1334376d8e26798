package service

import (
	"context"
	"strings"
	"time"

	"github.com/atinyakov/StorePortal/internal/models"
	"github.com/google/uuid"
)

// StoreRepository defines the store persistence operations.
type StoreRepository interface {
	GetStoreIDByUser(ctx context.Context, userID string) (string, error)
	GetStoreByID(ctx context.Context, id string) (*models.Store, error)
	CreateStore(ctx context.Context, s *models.Store) error
}

// StoreService resolves and describes seller stores.
type StoreService struct {
	repo StoreRepository
}

// NewStoreService constructs a new StoreService.
func NewStoreService(repo StoreRepository) *StoreService {
	return &StoreService{repo: repo}
}

// FindByUser returns the store linked to userID.
func (s *StoreService) FindByUser(ctx context.Context, userID string) (*models.StoreLink, error) {
	id, err := s.repo.GetStoreIDByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.StoreLink{StoreID: id}, nil
}

// GetByID returns store details.
func (s *StoreService) GetByID(ctx context.Context, storeID string) (*models.Store, error) {
	return s.repo.GetStoreByID(ctx, storeID)
}

// OpenStore creates a store for userID with the given status.
func (s *StoreService) OpenStore(ctx context.Context, userID, name string, status models.StoreStatus) (*models.Store, error) {
	st := &models.Store{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Slug:      slugify(name),
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateStore(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
