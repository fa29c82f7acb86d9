package herokuauth

import (
	"log/slog"
	"net/http"
)

// Option configures the Heroku strategy.
type Option func(*options)

type options struct {
	httpClient   *http.Client
	logger       *slog.Logger
	callbackPath string
}

// WithHTTPClient sets a custom HTTP client for OAuth requests.
// This is useful for testing with httptest servers or injecting
// custom transports (e.g., logging, timeouts).
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets a structured logger for the strategy.
// Without it the strategy stays silent.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.logger = log
	}
}

// WithCallbackPath overrides the path used when deriving the redirect URI
// from the incoming request. Defaults to "/auth/heroku/callback".
// Ignored when Config.RedirectURL is set.
func WithCallbackPath(path string) Option {
	return func(o *options) {
		o.callbackPath = path
	}
}
