package docusign

import (
	"strings"
	"time"
)

// ProviderName identifies this strategy and is stamped on every Profile.
const ProviderName = "docusign"

// DocuSign account server hosts.
const (
	DemoHost       = "https://account-d.docusign.com"
	ProductionHost = "https://account.docusign.com"
)

// Endpoint paths relative to the account server host.
const (
	authorizationPath = "/oauth/auth"
	tokenPath         = "/oauth/token"
	userInfoPath      = "/oauth/userinfo"
)

// Config holds the DocuSign OAuth client configuration.
// Endpoint URLs left empty are derived from Host.
type Config struct {
	ClientID         string        `env:"DOCUSIGN_CLIENT_ID,required" yaml:"client_id"`
	ClientSecret     string        `env:"DOCUSIGN_CLIENT_SECRET,required" yaml:"client_secret"`
	CallbackURL      string        `env:"DOCUSIGN_CALLBACK_URL" yaml:"callback_url"`
	Host             string        `env:"DOCUSIGN_HOST" envDefault:"https://account-d.docusign.com" yaml:"host"`
	AuthorizationURL string        `env:"DOCUSIGN_AUTHORIZATION_URL" yaml:"authorization_url"`
	TokenURL         string        `env:"DOCUSIGN_TOKEN_URL" yaml:"token_url"`
	UserProfileURL   string        `env:"DOCUSIGN_USER_PROFILE_URL" yaml:"user_profile_url"`
	Scopes           []string      `env:"DOCUSIGN_SCOPES" envSeparator:"," yaml:"scopes"`
	StateTTL         time.Duration `env:"DOCUSIGN_STATE_TTL" envDefault:"10m" yaml:"state_ttl"`
}

// Validate reports missing credentials.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ClientID) == "" {
		return ErrMissingClientID
	}
	if strings.TrimSpace(c.ClientSecret) == "" {
		return ErrMissingClientSecret
	}
	return nil
}

// withDefaults returns a copy with every endpoint resolved.
func (c Config) withDefaults() Config {
	host := strings.TrimRight(c.Host, "/")
	if host == "" {
		host = DemoHost
	}
	c.Host = host
	if c.AuthorizationURL == "" {
		c.AuthorizationURL = host + authorizationPath
	}
	if c.TokenURL == "" {
		c.TokenURL = host + tokenPath
	}
	if c.UserProfileURL == "" {
		c.UserProfileURL = host + userInfoPath
	}
	if c.StateTTL <= 0 {
		c.StateTTL = 10 * time.Minute
	}
	c.Scopes = append([]string(nil), c.Scopes...)
	return c
}
