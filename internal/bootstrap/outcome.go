package bootstrap

import "fmt"

// Kind classifies the result of one Bootstrap call.
type Kind int

const (
	// Ready: the store is active and the seller lands on the home route.
	Ready Kind = iota + 1
	// PendingApproval: the store exists but is not active yet.
	PendingApproval
	// AuthFailed: the login call failed or returned no user/token.
	AuthFailed
	// StoreLinkMissing: no store is linked to the user.
	StoreLinkMissing
	// StoreDetailsUnavailable: the store details call failed.
	StoreDetailsUnavailable
	// PersistenceFailed: a session write failed.
	PersistenceFailed
	// UnexpectedError: anything not covered above, including panics.
	UnexpectedError
)

var kindNames = map[Kind]string{
	Ready:                   "ready",
	PendingApproval:         "pending_approval",
	AuthFailed:              "auth_failed",
	StoreLinkMissing:        "store_link_missing",
	StoreDetailsUnavailable: "store_details_unavailable",
	PersistenceFailed:       "persistence_failed",
	UnexpectedError:         "unexpected_error",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Routes chosen after a successful login.
const (
	RouteHome   = "/"
	RouteStores = "/stores"
)

// Outcome is the single result of a Bootstrap call.
type Outcome struct {
	Kind Kind
	// Route is set for Ready and PendingApproval only.
	Route string
	// Reason is a short human-readable cause, set for failure kinds only.
	Reason string
	// Err is the underlying error for failure kinds, if any.
	Err error
}

// OK reports whether the login succeeded, regardless of store status.
func (o Outcome) OK() bool {
	return o.Kind == Ready || o.Kind == PendingApproval
}

func ready(route string) Outcome { return Outcome{Kind: Ready, Route: route} }

func pending(route string) Outcome { return Outcome{Kind: PendingApproval, Route: route} }

func failed(k Kind, reason string, err error) Outcome {
	return Outcome{Kind: k, Reason: reason, Err: err}
}
