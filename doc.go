// Package herokuauth implements an OAuth2 authorization code strategy for
// Heroku's identity provider.
//
// The package is a thin adapter between a host authentication framework and
// Heroku's OAuth2 endpoints. It builds the authorization redirect, exchanges
// the callback code for a token, fetches the account profile from the
// Platform API, and projects the results into a small set of normalized
// records the host consumes uniformly across providers.
//
// # Flow
//
// Authentication runs in two phases. The request phase redirects the end
// user to Heroku's consent page:
//
//	strategy, err := herokuauth.New(herokuauth.Config{
//		ClientID:     os.Getenv("HEROKU_OAUTH_CLIENT_ID"),
//		ClientSecret: os.Getenv("HEROKU_OAUTH_CLIENT_SECRET"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	http.HandleFunc("/auth/heroku", strategy.HandleRequest)
//
// The callback phase finishes authentication into a per-request State and
// the projections read it:
//
//	http.HandleFunc("/auth/heroku/callback", func(w http.ResponseWriter, r *http.Request) {
//		st := &herokuauth.State{}
//		defer strategy.Cleanup(st)
//
//		if err := strategy.HandleCallback(r, st); err != nil {
//			// transport fault during the token exchange
//		}
//		if fails := st.Failures(); len(fails) > 0 {
//			// provider-level failures: {Kind, Description} in order
//		}
//
//		uid := strategy.UID(st)           // account email
//		creds := strategy.Credentials(st) // token, scopes, expiry
//		info := strategy.Info(st)         // name, email
//	})
//
// # Failure model
//
// Provider-level failures never surface as Go errors. They accumulate on the
// State as ordered {Kind, Description} pairs: "missing_code" when the
// callback carries no code, the provider's own error code (for example
// "invalid_grant") when the exchange is rejected, "token" when the profile
// fetch is unauthorized, and "OAuth2" when it fails in transit. Only a
// transport fault during the token exchange itself is returned as an error,
// wrapped around ErrExchangeFailed.
//
// # Per-request scope and state
//
// The initiating request may carry a "scope" query parameter to override the
// configured default ("identity"), and an opaque "state" parameter that is
// passed through to the authorization URL unchanged. The strategy never
// synthesizes state; CSRF protection is the host's responsibility.
//
// # Testing
//
// Use WithHTTPClient to route provider traffic to a test handler:
//
//	ts := &http.Client{Transport: myRewriteTransport}
//	strategy, err := herokuauth.New(cfg, herokuauth.WithHTTPClient(ts))
package herokuauth
