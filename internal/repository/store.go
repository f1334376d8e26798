package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atinyakov/StorePortal/internal/models"
)

// PostgresStoreRepository implements store lookups against PostgreSQL.
type PostgresStoreRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresStoreRepository creates a new PostgresStoreRepository using the provided *sql.DB.
func NewPostgresStoreRepository(db *sql.DB) *PostgresStoreRepository {
	return &PostgresStoreRepository{DB: db}
}

const storeColumns = `id, user_id, name, slug, status, created_at`

func scanStore(row *sql.Row) (*models.Store, error) {
	var s models.Store
	var status string
	if err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Slug, &status, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.Status = models.StoreStatus(status)
	return &s, nil
}

// GetStoreIDByUser returns the id of the store owned by userID.
func (r *PostgresStoreRepository) GetStoreIDByUser(ctx context.Context, userID string) (string, error) {
	var id string
	err := r.DB.QueryRowContext(ctx, `SELECT id FROM stores WHERE user_id = $1`, userID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("GetStoreIDByUser: %w", err)
	}
	return id, nil
}

// GetStoreByID returns the store with the given id.
func (r *PostgresStoreRepository) GetStoreByID(ctx context.Context, id string) (*models.Store, error) {
	s, err := scanStore(r.DB.QueryRowContext(ctx,
		`SELECT `+storeColumns+` FROM stores WHERE id = $1`, id))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("GetStoreByID: %w", err)
	}
	return s, err
}

// CreateStore inserts s. A user that already owns a store is left untouched.
func (r *PostgresStoreRepository) CreateStore(ctx context.Context, s *models.Store) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO stores (id, user_id, name, slug, status, created_at) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (user_id) DO NOTHING`,
		s.ID, s.UserID, s.Name, s.Slug, string(s.Status), s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("CreateStore: %w", err)
	}
	return nil
}
