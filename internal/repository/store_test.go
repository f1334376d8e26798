package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/atinyakov/StorePortal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStoreMock(t *testing.T) (*PostgresStoreRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled expectations: %v", err)
		}
		db.Close()
	})
	return NewPostgresStoreRepository(db), mock
}

func TestGetStoreIDByUser(t *testing.T) {
	repo, mock := setupStoreMock(t)
	q := regexp.QuoteMeta(`SELECT id FROM stores WHERE user_id = $1`)

	mock.ExpectQuery(q).WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("s1"))
	id, err := repo.GetStoreIDByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "s1", id)

	mock.ExpectQuery(q).WithArgs("u2").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	_, err = repo.GetStoreIDByUser(context.Background(), "u2")
	assert.ErrorIs(t, err, ErrNotFound)

	mock.ExpectQuery(q).WithArgs("u3").WillReturnError(errors.New("conn reset"))
	_, err = repo.GetStoreIDByUser(context.Background(), "u3")
	assert.ErrorContains(t, err, "GetStoreIDByUser")
}

func TestGetStoreByID(t *testing.T) {
	repo, mock := setupStoreMock(t)
	q := regexp.QuoteMeta(`SELECT id, user_id, name, slug, status, created_at FROM stores WHERE id = $1`)
	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	cols := []string{"id", "user_id", "name", "slug", "status", "created_at"}

	mock.ExpectQuery(q).WithArgs("s1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("s1", "u1", "Shop", "shop", "pending", created))
	s, err := repo.GetStoreByID(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, &models.Store{ID: "s1", UserID: "u1", Name: "Shop", Slug: "shop", Status: models.StorePending, CreatedAt: created}, s)

	mock.ExpectQuery(q).WithArgs("missing").WillReturnRows(sqlmock.NewRows(cols))
	_, err = repo.GetStoreByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	mock.ExpectQuery(q).WithArgs("s2").WillReturnError(errors.New("boom"))
	_, err = repo.GetStoreByID(context.Background(), "s2")
	assert.ErrorContains(t, err, "GetStoreByID")
}

func TestCreateStore(t *testing.T) {
	repo, mock := setupStoreMock(t)
	created := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO stores (id, user_id, name, slug, status, created_at)`)).
		WithArgs("s1", "u1", "Shop", "shop", "active", created).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateStore(context.Background(), &models.Store{
		ID: "s1", UserID: "u1", Name: "Shop", Slug: "shop", Status: models.StoreActive, CreatedAt: created,
	})
	require.NoError(t, err)
}
