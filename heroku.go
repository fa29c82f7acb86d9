package herokuauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"golang.org/x/oauth2"
)

const (
	// ProviderName is the identifier for the Heroku OAuth provider.
	ProviderName = "heroku"

	herokuAuthURL    = "https://id.heroku.com/oauth/authorize"
	herokuTokenURL   = "https://id.heroku.com/oauth/token"
	herokuAccountURL = "https://api.heroku.com/account"

	// herokuAcceptHeader selects version 3 of the Platform API.
	herokuAcceptHeader = "application/vnd.heroku+json; version=3"

	defaultScope        = "identity"
	defaultCallbackPath = "/auth/heroku/callback"
)

// Heroku implements Strategy for Heroku's OAuth2 identity provider.
type Heroku struct {
	config       *oauth2.Config
	httpClient   *http.Client
	log          *slog.Logger
	scope        string
	callbackPath string
}

var _ Strategy = (*Heroku)(nil)

// New creates a Heroku OAuth strategy.
// Returns an error if ClientID or ClientSecret is empty.
func New(cfg Config, opts ...Option) (*Heroku, error) {
	if cfg.ClientID == "" {
		return nil, ErrMissingClientID
	}
	if cfg.ClientSecret == "" {
		return nil, ErrMissingClientSecret
	}

	o := options{callbackPath: defaultCallbackPath}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	scope := cfg.DefaultScope
	if scope == "" {
		scope = defaultScope
	}

	return &Heroku{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:   herokuAuthURL,
				TokenURL:  herokuTokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient:   o.httpClient,
		log:          o.logger,
		scope:        scope,
		callbackPath: o.callbackPath,
	}, nil
}

// Name returns the provider identifier.
func (p *Heroku) Name() string {
	return ProviderName
}

// HandleRequest runs the request phase. The requested scope comes from the
// request's "scope" query parameter, falling back to the configured default.
// An incoming "state" parameter is passed through unchanged; when absent the
// authorization URL carries no state parameter at all.
func (p *Heroku) HandleRequest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	scope := q.Get("scope")
	if scope == "" {
		scope = p.scope
	}

	u := p.config.AuthCodeURL(q.Get("state"),
		oauth2.SetAuthURLParam("redirect_uri", p.redirectURL(r)),
		oauth2.SetAuthURLParam("scope", scope),
	)

	p.log.DebugContext(r.Context(), "redirecting to authorization endpoint",
		slog.String("provider", ProviderName),
		slog.String("scope", scope),
	)
	http.Redirect(w, r, u, http.StatusFound)
}

// HandleCallback runs the callback phase. Provider-level failures (a missing
// code, a rejected exchange, an unauthorized or failed profile fetch) are
// recorded on st. Only a transport fault during the token exchange is
// returned as an error.
func (p *Heroku) HandleCallback(r *http.Request, st *State) error {
	ctx := p.contextWithHTTPClient(r.Context())

	code := r.URL.Query().Get("code")
	if code == "" {
		p.fail(ctx, st, FailureMissingCode, "No code received")
		return nil
	}

	cfg := p.exchangeConfig(r)
	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) {
			kind := rerr.ErrorCode
			if kind == "" {
				kind = FailureInvalidResponse
			}
			p.fail(ctx, st, kind, rerr.ErrorDescription)
			return nil
		}
		return errors.Join(ErrExchangeFailed, fmt.Errorf("exchange code: %w", err))
	}
	st.Token = token

	p.fetchAccount(ctx, st)
	return nil
}

// fetchAccount performs the authenticated account lookup and stores the
// result on st. All outcomes, including transport faults, are recorded as
// failures rather than returned.
func (p *Heroku) fetchAccount(ctx context.Context, st *State) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, herokuAccountURL, nil)
	if err != nil {
		p.fail(ctx, st, FailureOAuth2, err.Error())
		return
	}
	req.Header.Set("Accept", herokuAcceptHeader)

	resp, err := p.config.Client(ctx, st.Token).Do(req)
	if err != nil {
		p.fail(ctx, st, FailureOAuth2, err.Error())
		return
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		p.fail(ctx, st, FailureToken, "unauthorized")
	case resp.StatusCode >= 200 && resp.StatusCode < 400:
		var profile Profile
		if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
			p.fail(ctx, st, FailureOAuth2, fmt.Sprintf("decode account: %v", err))
			return
		}
		st.Profile = profile
		p.log.DebugContext(ctx, "account profile fetched",
			slog.String("provider", ProviderName),
		)
	default:
		p.fail(ctx, st, FailureOAuth2, fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}
}

// Cleanup discards the token and profile held by st. Idempotent; recorded
// failures remain readable by the host.
func (p *Heroku) Cleanup(st *State) {
	if st == nil {
		return
	}
	st.Token = nil
	st.Profile = nil
}

func (p *Heroku) fail(ctx context.Context, st *State, kind, description string) {
	st.Fail(kind, description)
	p.log.WarnContext(ctx, "authentication failed",
		slog.String("provider", ProviderName),
		slog.String("kind", kind),
		slog.String("description", description),
	)
}

// redirectURL returns the configured redirect URL, or derives one from the
// incoming request's scheme and host plus the callback path.
func (p *Heroku) redirectURL(r *http.Request) string {
	if p.config.RedirectURL != "" {
		return p.config.RedirectURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host + p.callbackPath
}

// exchangeConfig clones the OAuth config so the token exchange presents the
// same redirect URI the authorization request carried.
func (p *Heroku) exchangeConfig(r *http.Request) *oauth2.Config {
	redirect := p.redirectURL(r)
	if redirect == p.config.RedirectURL {
		return p.config
	}
	return &oauth2.Config{
		ClientID:     p.config.ClientID,
		ClientSecret: p.config.ClientSecret,
		RedirectURL:  redirect,
		Endpoint:     p.config.Endpoint,
	}
}

func (p *Heroku) contextWithHTTPClient(ctx context.Context) context.Context {
	if p.httpClient != nil {
		return context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	}
	return ctx
}
