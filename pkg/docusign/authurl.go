package docusign

import (
	"net/url"
	"strings"
)

// AuthOptions are the per-request extension parameters of the authorization
// redirect. Empty fields are omitted from the URL.
type AuthOptions struct {
	// Display selects the provider login page layout, e.g. "mobile".
	Display string
	// AuthType and AuthNonce drive the provider's re-authentication flow and
	// are sent as auth_type / auth_nonce.
	AuthType  string
	AuthNonce string
	// Scopes overrides Config.Scopes for this request when non-empty.
	Scopes []string
	// State is sent verbatim when no StateStore is configured.
	State string
}

// queryParam is one ordered key/value pair of the authorization URL.
type queryParam struct {
	key   string
	value string
}

// BuildAuthorizationURL returns the authorization redirect for cfg and opts.
// Extension parameters come first, followed by the OAuth 2.0 parameters and
// client_id last, matching the layout DocuSign documents.
func BuildAuthorizationURL(cfg Config, opts AuthOptions, state string) string {
	cfg = cfg.withDefaults()

	params := make([]queryParam, 0, 8)
	add := func(key, value string) {
		if value != "" {
			params = append(params, queryParam{key: key, value: value})
		}
	}

	add("display", opts.Display)
	add("auth_type", opts.AuthType)
	add("auth_nonce", opts.AuthNonce)
	add("response_type", "code")
	add("redirect_uri", cfg.CallbackURL)

	scopes := cfg.Scopes
	if len(opts.Scopes) > 0 {
		scopes = opts.Scopes
	}
	add("scope", strings.Join(scopes, " "))
	add("state", state)
	add("client_id", cfg.ClientID)

	var b strings.Builder
	b.WriteString(cfg.AuthorizationURL)
	if strings.Contains(cfg.AuthorizationURL, "?") {
		b.WriteByte('&')
	} else {
		b.WriteByte('?')
	}
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escape(p.key))
		b.WriteByte('=')
		b.WriteString(escape(p.value))
	}
	return b.String()
}

// escape percent-encodes a query component with %20 for spaces.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
