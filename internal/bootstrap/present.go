package bootstrap

// Notifier shows fire-and-forget feedback to the seller.
type Notifier interface {
	Success(message, description string)
	Error(message, description string)
	Warning(message, description string)
}

// Router performs the redirect once a route is decided.
type Router interface {
	Navigate(path string)
}

// Notification messages, one per outcome kind.
var messages = map[Kind][2]string{
	Ready:                   {"Login successful", "Welcome back."},
	PendingApproval:         {"Store not active", "Your store is awaiting approval. You can review its status on the stores page."},
	AuthFailed:              {"Login failed", "Check your email and password and try again."},
	StoreLinkMissing:        {"Store not found", "No store is linked to this account."},
	StoreDetailsUnavailable: {"Store unavailable", "Store details could not be loaded. Please try again."},
	PersistenceFailed:       {"Session not saved", "Your session could not be stored on this device."},
	UnexpectedError:         {"Something went wrong", "An unexpected error occurred. Please try again."},
}

// Present maps an outcome to exactly one notification and, for successful
// logins, a navigation.
func Present(o Outcome, n Notifier, r Router) {
	msg, ok := messages[o.Kind]
	if !ok {
		msg = messages[UnexpectedError]
	}

	switch o.Kind {
	case Ready:
		n.Success(msg[0], msg[1])
		r.Navigate(o.Route)
	case PendingApproval:
		n.Warning(msg[0], msg[1])
		r.Navigate(o.Route)
	default:
		n.Error(msg[0], msg[1])
	}
}
