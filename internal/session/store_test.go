package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atinyakov/StorePortal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() models.SessionRecord {
	return models.SessionRecord{
		User:         &models.User{ID: "u1", Email: "a@b.com"},
		AccessToken:  "T1",
		RefreshToken: "R1",
		StoreID:      "s1",
		Store: &models.Store{
			ID:        "s1",
			UserID:    "u1",
			Name:      "Shop",
			Status:    models.StoreActive,
			CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		StoreStatus: models.StoreActive,
	}
}

// failingStore fails Set for one key and records the keys it saw.
type failingStore struct {
	*MemoryStore
	failOn string
	seen   []string
}

func (f *failingStore) Set(ctx context.Context, key, value string) error {
	f.seen = append(f.seen, key)
	if key == f.failOn {
		return errors.New("disk full")
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func TestSave_WritesAllKeysInOrder(t *testing.T) {
	st := &failingStore{MemoryStore: NewMemoryStore()}
	require.NoError(t, Save(context.Background(), st, sampleRecord()))

	assert.Equal(t, Keys, st.seen)
	assert.Equal(t, 6, st.Len())

	v, ok, _ := st.Get(context.Background(), KeyStoreStatus)
	assert.True(t, ok)
	assert.Equal(t, "active", v)

	v, _, _ = st.Get(context.Background(), KeyAccessToken)
	assert.Equal(t, "T1", v)
	v, _, _ = st.Get(context.Background(), KeyUser)
	assert.JSONEq(t, `{"id":"u1","email":"a@b.com"}`, v)
}

func TestSave_StopsAtFirstFailure(t *testing.T) {
	st := &failingStore{MemoryStore: NewMemoryStore(), failOn: KeyStoreID}
	err := Save(context.Background(), st, sampleRecord())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set store_id")

	// earlier writes stay
	assert.Equal(t, 3, st.Len())
	_, ok, _ := st.Get(context.Background(), KeyStore)
	assert.False(t, ok)
}

func TestLoad_RoundTrip(t *testing.T) {
	st := NewMemoryStore()
	want := sampleRecord()
	require.NoError(t, Save(context.Background(), st, want))

	got, err := Load(context.Background(), st)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestLoad_Empty(t *testing.T) {
	_, err := Load(context.Background(), NewMemoryStore())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestLoad_CorruptUser(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	_ = st.Set(ctx, KeyAccessToken, "T1")
	_ = st.Set(ctx, KeyUser, "{")

	_, err := Load(ctx, st)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode user")
}

func TestClearAndRestore(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	require.NoError(t, Save(ctx, st, sampleRecord()))

	state := NewState()
	rec, err := Restore(ctx, st, state)
	require.NoError(t, err)
	assert.Equal(t, "s1", rec.StoreID)
	assert.True(t, state.LoggedIn())
	assert.Equal(t, models.StoreActive, state.Snapshot().StoreStatus)

	require.NoError(t, Clear(ctx, st))
	assert.Zero(t, st.Len())

	_, err = Restore(ctx, st, state)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.False(t, state.LoggedIn())
}
