package herokuauth

import "errors"

var (
	// ErrMissingClientID is returned when the OAuth client ID is not provided.
	ErrMissingClientID = errors.New("herokuauth: missing client ID")

	// ErrMissingClientSecret is returned when the OAuth client secret is not provided.
	ErrMissingClientSecret = errors.New("herokuauth: missing client secret")

	// ErrExchangeFailed is returned when the token exchange fails at the
	// transport layer, before the provider could answer.
	ErrExchangeFailed = errors.New("herokuauth: token exchange failed")
)
