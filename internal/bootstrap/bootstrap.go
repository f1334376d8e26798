// Package bootstrap turns a seller's credentials into a ready session: it
// logs in, resolves the seller's store, fetches the store details, persists
// the session and decides where the seller lands.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/atinyakov/StorePortal/internal/models"
	"github.com/atinyakov/StorePortal/internal/session"
	"go.uber.org/zap"
)

// AuthClient exchanges credentials for a user identity and a token pair.
type AuthClient interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResult, error)
}

// StoreDirectory maps a user to their store.
type StoreDirectory interface {
	FindByUser(ctx context.Context, userID string) (*models.StoreLink, error)
}

// StoreRepository fetches store details.
type StoreRepository interface {
	GetByID(ctx context.Context, storeID string) (*models.Store, error)
}

// StoreClientFactory returns the directory and repository to use once the
// access token is known. Calls after login are authenticated with it.
type StoreClientFactory func(accessToken string) (StoreDirectory, StoreRepository)

// Static returns a StoreClientFactory that ignores the token.
func Static(dir StoreDirectory, repo StoreRepository) StoreClientFactory {
	return func(string) (StoreDirectory, StoreRepository) { return dir, repo }
}

var (
	errNoUser    = errors.New("login returned no user or token")
	errNoStoreID = errors.New("no store linked to user")
	errNoStore   = errors.New("store details are empty")
)

// Phases of one Bootstrap call, logged as the call progresses.
const (
	phaseAuthenticating  = "authenticating"
	phaseResolvingStore  = "resolving_store"
	phaseFetchingDetails = "fetching_details"
	phasePersisting      = "persisting"
	phaseRouted          = "routed"
	phaseFailed          = "failed"
)

// Bootstrapper runs the login sequence. It does not serialize concurrent
// calls; callers sharing a session store must not overlap them.
type Bootstrapper struct {
	auth   AuthClient
	stores StoreClientFactory
	store  session.Store
	state  *session.State
	log    *zap.Logger
}

// New returns a Bootstrapper. A nil log discards logs.
func New(auth AuthClient, stores StoreClientFactory, store session.Store, state *session.State, log *zap.Logger) *Bootstrapper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bootstrapper{
		auth:   auth,
		stores: stores,
		store:  store,
		state:  state,
		log:    log,
	}
}

// Bootstrap performs login → store link → store details → persist → route.
// Each step short-circuits on failure and nothing is persisted unless all
// three remote calls succeed. Exactly one Outcome is returned.
func (b *Bootstrapper) Bootstrap(ctx context.Context, creds models.Credentials) (out Outcome) {
	log := b.log.With(zap.String("email", creds.Email))

	defer func() {
		if r := recover(); r != nil {
			log.Error("login flow panicked", zap.Any("panic", r))
			out = failed(UnexpectedError, "unexpected error", fmt.Errorf("panic: %v", r))
		}
		if out.OK() {
			log.Debug("login phase", zap.String("phase", phaseRouted), zap.String("route", out.Route))
		} else {
			log.Info("login failed", zap.String("phase", phaseFailed), zap.Stringer("kind", out.Kind), zap.Error(out.Err))
		}
	}()

	log.Debug("login phase", zap.String("phase", phaseAuthenticating))
	auth, err := b.auth.Login(ctx, creds)
	if err != nil {
		return failed(AuthFailed, "login failed", err)
	}
	if auth == nil || auth.User == nil || auth.User.ID == "" || auth.AccessToken == "" {
		return failed(AuthFailed, "login failed", errNoUser)
	}

	dir, repo := b.stores(auth.AccessToken)

	log.Debug("login phase", zap.String("phase", phaseResolvingStore), zap.String("user_id", auth.User.ID))
	link, err := dir.FindByUser(ctx, auth.User.ID)
	if err != nil {
		return failed(StoreLinkMissing, "store not found for user", err)
	}
	if link == nil || link.StoreID == "" {
		return failed(StoreLinkMissing, "store not found for user", errNoStoreID)
	}

	log.Debug("login phase", zap.String("phase", phaseFetchingDetails), zap.String("store_id", link.StoreID))
	store, err := repo.GetByID(ctx, link.StoreID)
	if err != nil {
		return failed(StoreDetailsUnavailable, "store details unavailable", err)
	}
	if store == nil {
		return failed(StoreDetailsUnavailable, "store details unavailable", errNoStore)
	}

	log.Debug("login phase", zap.String("phase", phasePersisting))
	rec := models.SessionRecord{
		User:         auth.User,
		AccessToken:  auth.AccessToken,
		RefreshToken: auth.RefreshToken,
		StoreID:      link.StoreID,
		Store:        store,
		StoreStatus:  store.Status,
	}
	if err := session.Save(ctx, b.store, rec); err != nil {
		return failed(PersistenceFailed, "could not save session", err)
	}
	b.state.Login(auth.User, link.StoreID, store.Status)

	if store.Status.IsActive() {
		return ready(RouteHome)
	}
	return pending(RouteStores)
}
