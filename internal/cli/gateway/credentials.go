package gateway

import (
	"fmt"
	"net/http"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderEmailToken    = "X-Email-Token"

	schemeBearer = "Bearer"
	schemeEmail  = "EmailToken"
)

// CredentialSource exposes the tokens available for outgoing requests.
// Implementations must be safe for concurrent reads.
type CredentialSource interface {
	AccessToken() string
	EmailToken() string
}

// TokenSnapshotter is implemented by sources that can read both tokens under
// one lock. Apply prefers it so a concurrent logout cannot split the pair.
type TokenSnapshotter interface {
	Tokens() (access, email string)
}

func readTokens(creds CredentialSource) (access, email string) {
	switch c := creds.(type) {
	case nil:
		return "", ""
	case TokenSnapshotter:
		return c.Tokens()
	default:
		return c.AccessToken(), c.EmailToken()
	}
}

// Decision is the outcome of credential selection for one request.
type Decision int

const (
	// DecisionAnonymous strips any stale Authorization header.
	DecisionAnonymous Decision = iota
	// DecisionBearer attaches the access token.
	DecisionBearer
	// DecisionWithheld is an admin request without an access token. Nothing is attached.
	DecisionWithheld
	// DecisionEmail attaches the email-session token.
	DecisionEmail
)

func (d Decision) String() string {
	switch d {
	case DecisionBearer:
		return "bearer"
	case DecisionWithheld:
		return "withheld"
	case DecisionEmail:
		return "email"
	default:
		return "anonymous"
	}
}

// Select decides which credential, if any, a request to route should carry.
func Select(route Route, creds CredentialSource) Decision {
	access, email := readTokens(creds)
	d, _ := choose(route, access, email)
	return d
}

// choose returns the decision together with the token it was made on.
func choose(route Route, access, email string) (Decision, string) {
	switch {
	case access != "" && (!route.AuthFree || route.Admin):
		return DecisionBearer, access
	case route.Admin:
		return DecisionWithheld, ""
	case email != "" && route.Booking:
		return DecisionEmail, email
	default:
		return DecisionAnonymous, ""
	}
}

// Apply sets the authentication headers for route on h and returns the
// decision it acted on. The source is read once, so the header always carries
// the token the decision was made on.
func Apply(h http.Header, route Route, creds CredentialSource) Decision {
	access, email := readTokens(creds)
	d, token := choose(route, access, email)
	switch d {
	case DecisionBearer:
		h.Set(HeaderAuthorization, fmt.Sprintf("%s %s", schemeBearer, token))
	case DecisionEmail:
		h.Set(HeaderAuthorization, fmt.Sprintf("%s %s", schemeEmail, token))
		h.Set(HeaderEmailToken, token)
	case DecisionAnonymous:
		h.Del(HeaderAuthorization)
	}
	return d
}

// StaticCredentials is a fixed CredentialSource.
type StaticCredentials struct {
	Access string
	Email  string
}

func (s StaticCredentials) AccessToken() string { return s.Access }
func (s StaticCredentials) EmailToken() string  { return s.Email }
