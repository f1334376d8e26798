package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/atinyakov/StorePortal/internal/models"
)

// Keys under which a SessionRecord is persisted.
const (
	KeyUser         = "user"
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
	KeyStoreID      = "store_id"
	KeyStore        = "store"
	KeyStoreStatus  = "store_status"
)

// Keys lists every session key in write order.
var Keys = []string{KeyUser, KeyAccessToken, KeyRefreshToken, KeyStoreID, KeyStore, KeyStoreStatus}

// ErrNotLoggedIn is returned by Load when no access token is persisted.
var ErrNotLoggedIn = errors.New("not logged in")

// Store is durable key/value persistence for session artifacts.
type Store interface {
	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Get returns the value under key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Delete removes the given keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}

// Save writes rec into st one key at a time, in the order of Keys.
// It stops at the first failed write; earlier writes are not undone.
func Save(ctx context.Context, st Store, rec models.SessionRecord) error {
	user, err := json.Marshal(rec.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	store, err := json.Marshal(rec.Store)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	values := map[string]string{
		KeyUser:         string(user),
		KeyAccessToken:  rec.AccessToken,
		KeyRefreshToken: rec.RefreshToken,
		KeyStoreID:      rec.StoreID,
		KeyStore:        string(store),
		KeyStoreStatus:  string(rec.StoreStatus),
	}
	for _, k := range Keys {
		if err := st.Set(ctx, k, values[k]); err != nil {
			return fmt.Errorf("set %s: %w", k, err)
		}
	}
	return nil
}

// Load reads a SessionRecord back from st.
func Load(ctx context.Context, st Store) (*models.SessionRecord, error) {
	raw := make(map[string]string, len(Keys))
	for _, k := range Keys {
		v, ok, err := st.Get(ctx, k)
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", k, err)
		}
		if ok {
			raw[k] = v
		}
	}
	if raw[KeyAccessToken] == "" {
		return nil, ErrNotLoggedIn
	}

	rec := &models.SessionRecord{
		AccessToken:  raw[KeyAccessToken],
		RefreshToken: raw[KeyRefreshToken],
		StoreID:      raw[KeyStoreID],
		StoreStatus:  models.StoreStatus(raw[KeyStoreStatus]),
	}
	if v := raw[KeyUser]; v != "" {
		if err := json.Unmarshal([]byte(v), &rec.User); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
	}
	if v := raw[KeyStore]; v != "" {
		if err := json.Unmarshal([]byte(v), &rec.Store); err != nil {
			return nil, fmt.Errorf("decode store: %w", err)
		}
	}
	return rec, nil
}

// Clear removes every session key from st.
func Clear(ctx context.Context, st Store) error {
	return st.Delete(ctx, Keys...)
}

// Restore rehydrates state from st. It leaves state anonymous and returns
// ErrNotLoggedIn when nothing is persisted.
func Restore(ctx context.Context, st Store, state *State) (*models.SessionRecord, error) {
	rec, err := Load(ctx, st)
	if err != nil {
		state.Logout()
		return nil, err
	}
	state.Login(rec.User, rec.StoreID, rec.StoreStatus)
	return rec, nil
}
