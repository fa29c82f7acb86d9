package herokuauth

import "golang.org/x/oauth2"

// Failure is a provider-level authentication failure. Failures accumulate on
// State in the order they occur and are reported to the host framework
// instead of being returned as errors.
type Failure struct {
	Kind        string
	Description string
}

// Failure kinds recorded during the callback phase. A failed token exchange
// is recorded under the provider's own error code when the response carries
// one, or FailureInvalidResponse when it does not.
const (
	FailureMissingCode     = "missing_code"
	FailureToken           = "token"
	FailureOAuth2          = "OAuth2"
	FailureInvalidResponse = "invalid_response"
)

// Profile is the raw account payload returned by the provider, kept as an
// untyped mapping. Lookups on missing keys yield zero values, never panics.
type Profile map[string]any

// String returns the string value stored under key, or "" when the key is
// absent or holds a non-string value.
func (p Profile) String(key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

// State carries the per-request outcome of a callback phase. Each inbound
// request gets its own State; instances must not be shared across requests.
type State struct {
	Token    *oauth2.Token
	Profile  Profile
	failures []Failure
}

// Fail records a provider-level failure. Exported so sibling strategies can
// share the same accumulation mechanism.
func (s *State) Fail(kind, description string) {
	s.failures = append(s.failures, Failure{Kind: kind, Description: description})
}

// Failures returns the recorded failures in order.
func (s *State) Failures() []Failure {
	return s.failures
}
