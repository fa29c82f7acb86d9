package herokuauth

import (
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// Strategy is the provider-agnostic contract a host authentication framework
// drives. The host owns routing, sessions and failure presentation; a strategy
// owns the two-phase OAuth dance and the projection of its results.
//
// The flow is: HandleRequest redirects the end user to the provider,
// HandleCallback finishes authentication into a State, the projections
// (UID, Credentials, Info, Extra) read that State, and Cleanup discards it.
type Strategy interface {
	// Name returns the provider identifier (e.g., "heroku").
	Name() string

	// HandleRequest runs the request phase: it redirects the end user to the
	// provider's consent page. It never fails.
	HandleRequest(w http.ResponseWriter, r *http.Request)

	// HandleCallback runs the callback phase: it exchanges the authorization
	// code for a token and fetches the user profile into st. Provider-level
	// failures are recorded on st, not returned; the returned error is
	// non-nil only for transport faults during the token exchange.
	HandleCallback(r *http.Request, st *State) error

	// Cleanup discards the token and profile held by st. Idempotent.
	Cleanup(st *State)

	// UID returns the stable user identifier for the authenticated user.
	UID(st *State) string

	// Credentials projects the exchanged token into a normalized record.
	Credentials(st *State) Credentials

	// Info projects the user profile into a normalized record.
	Info(st *State) Info

	// Extra exposes the raw provider responses for diagnostic consumption.
	Extra(st *State) Extra
}

// Credentials is the normalized view of an exchanged token.
type Credentials struct {
	Token        string
	RefreshToken string
	ExpiresAt    time.Time
	TokenType    string
	Scopes       []string
	Expires      bool
}

// Info is the normalized view of the authenticated user.
type Info struct {
	Name  string
	Email string
}

// Extra carries the unprocessed provider responses.
type Extra struct {
	RawInfo RawInfo
}

// RawInfo is the token and profile exactly as the provider returned them.
type RawInfo struct {
	Token *oauth2.Token
	User  Profile
}
