// Package api is the HTTP client for the seller portal API. It implements
// the login, store directory and store details calls the login flow makes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/atinyakov/StorePortal/internal/models"
	"go.uber.org/zap"
)

// Portal API routes.
const (
	PathLogin       = "/api/auth/login"
	PathStoreByUser = "/api/stores/user/"
	PathStore       = "/api/stores/"
)

var (
	// ErrEmptyPayload is returned when a 2xx response carries no data.
	ErrEmptyPayload = errors.New("response has no data")
	// ErrUnauthorized is returned on 401 responses.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is returned on 404 responses.
	ErrNotFound = errors.New("not found")
)

// StatusError is a non-2xx response that is neither 401 nor 404.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Code, e.Message)
}

// Client talks to the portal API.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
	token   string
}

// New returns a Client for baseURL. A nil httpClient uses http.DefaultClient,
// a nil logger discards logs.
func New(baseURL string, httpClient *http.Client, log *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     log,
	}
}

// WithToken returns a copy of c that sends token as a bearer credential.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// Login exchanges credentials for a user and a token pair.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.AuthResult, error) {
	var out models.AuthResult
	if err := do(ctx, c, http.MethodPost, PathLogin, creds, &out); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &out, nil
}

// FindByUser returns the store linked to userID.
func (c *Client) FindByUser(ctx context.Context, userID string) (*models.StoreLink, error) {
	var out models.StoreLink
	if err := do(ctx, c, http.MethodGet, PathStoreByUser+url.PathEscape(userID), nil, &out); err != nil {
		return nil, fmt.Errorf("find store by user: %w", err)
	}
	return &out, nil
}

// GetByID returns the details of store storeID.
func (c *Client) GetByID(ctx context.Context, storeID string) (*models.Store, error) {
	var out models.Store
	if err := do(ctx, c, http.MethodGet, PathStore+url.PathEscape(storeID), nil, &out); err != nil {
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &out, nil
}

// do sends one request and decodes the envelope's data into out.
func do[T any](ctx context.Context, c *Client, method, path string, body any, out *T) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug("portal api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)

	var env models.Envelope[T]
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrNotFound, msg)
		}
		return &StatusError{Code: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return fmt.Errorf("invalid response: %w", decodeErr)
	}
	if env.Data == nil {
		return ErrEmptyPayload
	}
	*out = *env.Data
	return nil
}
