// Package service provides the portal's business logic: password login,
// token issuing and store lookups, delegating persistence to repositories.
package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/atinyakov/StorePortal/internal/models"
	"github.com/atinyakov/StorePortal/internal/repository"
	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned for an unknown email or a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthRepository defines the persistence operations
// required by the authentication service.
type AuthRepository interface {
	// GetUserByEmail returns repository.ErrNotFound for unknown emails.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// CreateUser inserts a user.
	CreateUser(ctx context.Context, u *models.User) error
	// SaveRefreshToken stores the hash of an issued refresh token.
	SaveRefreshToken(ctx context.Context, id, userID, tokenHash string, expiresAt int64) error
}

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}

// AuthService implements login by delegating to an AuthRepository.
type AuthService struct {
	repo       AuthRepository
	tokens     TokenIssuer
	refreshTTL time.Duration
	now        func() time.Time
}

// NewAuthService constructs a new AuthService.
func NewAuthService(repo AuthRepository, tokens TokenIssuer, refreshTTL time.Duration) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, refreshTTL: refreshTTL, now: time.Now}
}

// Login verifies creds and issues an access token and a refresh token.
// Only the refresh token's SHA-256 is stored.
func (s *AuthService) Login(ctx context.Context, creds models.Credentials) (*models.AuthResult, error) {
	user, err := s.repo.GetUserByEmail(ctx, creds.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	ok, err := VerifyPassword(creds.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	access, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	refresh, hash, err := newRefreshToken()
	if err != nil {
		return nil, err
	}
	expires := s.now().Add(s.refreshTTL).Unix()
	if err := s.repo.SaveRefreshToken(ctx, uuid.NewString(), user.ID, hash, expires); err != nil {
		return nil, err
	}

	return &models.AuthResult{User: user, AccessToken: access, RefreshToken: refresh}, nil
}

// RegisterSeller creates a user with a hashed password and returns it.
func (s *AuthService) RegisterSeller(ctx context.Context, email, name, password string) (*models.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &models.User{ID: uuid.NewString(), Email: email, Name: name, PasswordHash: hash}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	// an existing email keeps its original row and id
	return s.repo.GetUserByEmail(ctx, email)
}

func newRefreshToken() (token, hash string, err error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("generate refresh token: %w", err)
	}
	token = base64.RawURLEncoding.EncodeToString(b)
	sum := sha256.Sum256([]byte(token))
	return token, hex.EncodeToString(sum[:]), nil
}
