// Package models defines the core data structures shared by the seller
// portal API server and the login client.
package models

import "time"

// Credentials is what a seller types into the login form.
type Credentials struct {
	// Email is the seller's login identifier.
	Email string `json:"email"`
	// Password is the plain-text password; it never leaves the login request.
	Password string `json:"password"`
}

// User is the seller account returned by the login API.
// Only ID is interpreted by the login flow; the rest is profile data.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`
	// Email is the login name of the user.
	Email string `json:"email"`
	// Name is the display name.
	Name string `json:"name,omitempty"`
	// Phone is an optional contact number.
	Phone string `json:"phone,omitempty"`
	// PasswordHash is the argon2id PHC string. Never serialized.
	PasswordHash string `json:"-"`
}

// AuthResult is the payload of a successful login.
type AuthResult struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// StoreLink maps a user to the store they own.
type StoreLink struct {
	StoreID string `json:"storeId"`
}

// StoreStatus is the approval state of a store.
type StoreStatus string

const (
	// StoreActive is the only status that grants full portal access.
	StoreActive StoreStatus = "active"
	// StorePending means the store awaits review.
	StorePending StoreStatus = "pending"
	// StoreRejected means the store application was declined.
	StoreRejected StoreStatus = "rejected"
	// StoreSuspended means an active store was disabled by an operator.
	StoreSuspended StoreStatus = "suspended"
)

// IsActive reports whether the store may use the full portal.
func (s StoreStatus) IsActive() bool { return s == StoreActive }

// Valid reports whether s is one of the known statuses.
func (s StoreStatus) Valid() bool {
	switch s {
	case StoreActive, StorePending, StoreRejected, StoreSuspended:
		return true
	}
	return false
}

// Store holds the details of a seller's shop.
type Store struct {
	// ID is the unique identifier for the store.
	ID string `json:"storeId"`
	// UserID is the owner of the store.
	UserID string `json:"userId"`
	// Name is the public shop name.
	Name string `json:"name"`
	// Slug is the URL-friendly shop name.
	Slug string `json:"slug,omitempty"`
	// Status is the approval state.
	Status StoreStatus `json:"status"`
	// CreatedAt is when the store application was submitted.
	CreatedAt time.Time `json:"createdAt"`
}

// SessionRecord is everything the client persists after a successful login.
type SessionRecord struct {
	User         *User
	AccessToken  string
	RefreshToken string
	StoreID      string
	Store        *Store
	StoreStatus  StoreStatus
}

// Envelope wraps every portal API response body.
type Envelope[T any] struct {
	// Data is the payload; nil on errors.
	Data *T `json:"data,omitempty"`
	// Message is a human readable error or status message.
	Message string `json:"message,omitempty"`
}
