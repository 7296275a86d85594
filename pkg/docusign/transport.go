package docusign

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// maxBodySize caps responses read by the default transport.
const maxBodySize = 1 << 20

// Token is the result of a successful code exchange.
type Token struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	Expiry       time.Time
	// Params holds additional token response fields (expires_in, scope, ...).
	Params map[string]any
}

// Transport is the OAuth 2.0 client the strategy delegates network calls to.
// Failures should be returned as *TransportError so provider error bodies can
// be classified; any other error is treated as a transport failure.
type Transport interface {
	// ExchangeCode trades an authorization code for a token.
	ExchangeCode(ctx context.Context, code, redirectURI string) (*Token, error)
	// AuthenticatedGet performs a GET with the access token as a bearer credential.
	AuthenticatedGet(ctx context.Context, url, accessToken string) ([]byte, http.Header, error)
}

type oauth2Transport struct {
	conf       *oauth2.Config
	httpClient *http.Client
}

// NewOAuth2Transport returns a Transport backed by golang.org/x/oauth2.
// A nil client gets a 10 second timeout default.
func NewOAuth2Transport(cfg Config, client *http.Client) Transport {
	cfg = cfg.withDefaults()
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &oauth2Transport{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthorizationURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		httpClient: client,
	}
}

// ExchangeCode exchanges the code at the token endpoint.
func (t *oauth2Transport) ExchangeCode(ctx context.Context, code, redirectURI string) (*Token, error) {
	conf := *t.conf
	if redirectURI != "" {
		conf.RedirectURL = redirectURI
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, t.httpClient)
	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) {
			status := 0
			if re.Response != nil {
				status = re.Response.StatusCode
			}
			return nil, &TransportError{StatusCode: status, Body: re.Body, Err: err}
		}
		return nil, &TransportError{Err: err}
	}

	params := make(map[string]any, 3)
	for _, key := range []string{"token_type", "expires_in", "scope"} {
		if v := tok.Extra(key); v != nil {
			params[key] = v
		}
	}

	return &Token{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.Type(),
		Expiry:       tok.Expiry,
		Params:       params,
	}, nil
}

// AuthenticatedGet fetches url with a bearer token. Non-2xx responses are
// returned as *TransportError carrying the response body.
func (t *oauth2Transport) AuthenticatedGet(ctx context.Context, url, accessToken string) ([]byte, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, &TransportError{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, nil, &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, resp.Header, &TransportError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("read response body: %w", err),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.Header, &TransportError{StatusCode: resp.StatusCode, Body: body}
	}
	return body, resp.Header, nil
}

var _ Transport = (*oauth2Transport)(nil)
