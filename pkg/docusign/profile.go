package docusign

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

var (
	errNotJSONObject  = errors.New("profile body is not a JSON object")
	errMissingSubject = errors.New("profile body has no sub")
)

// Profile is the normalized DocuSign user profile.
type Profile struct {
	Provider   string    `json:"provider"`
	Sub        string    `json:"sub"`
	Name       string    `json:"name,omitempty"`
	GivenName  string    `json:"given_name,omitempty"`
	FamilyName string    `json:"family_name,omitempty"`
	Email      string    `json:"email,omitempty"`
	Accounts   []Account `json:"accounts,omitempty"`

	// Raw is the userinfo response body exactly as received.
	Raw string `json:"-"`
	// JSON is Raw decoded into a generic structure, numbers kept as json.Number.
	JSON map[string]any `json:"-"`
}

// Account is one DocuSign account the user belongs to.
type Account struct {
	AccountID   string `json:"account_id"`
	IsDefault   bool   `json:"is_default"`
	AccountName string `json:"account_name"`
	BaseURI     string `json:"base_uri"`
}

// DefaultAccount returns the account flagged is_default, if any.
func (p *Profile) DefaultAccount() (Account, bool) {
	for _, a := range p.Accounts {
		if a.IsDefault {
			return a, true
		}
	}
	return Account{}, false
}

// SubjectUUID parses Sub as a UUID.
func (p *Profile) SubjectUUID() (uuid.UUID, error) {
	return uuid.Parse(p.Sub)
}

// ParseProfile normalizes a userinfo response body. It fails with *ParseError
// when the body is not a JSON object or carries no sub.
func ParseProfile(raw []byte) (*Profile, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &ParseError{Message: MsgFailedToParseProfile, Cause: errNotJSONObject}
	}

	var generic map[string]any
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	if err := dec.Decode(&generic); err != nil {
		return nil, &ParseError{Message: MsgFailedToParseProfile, Cause: err}
	}
	if dec.More() {
		return nil, &ParseError{Message: MsgFailedToParseProfile, Cause: errNotJSONObject}
	}

	if sub, _ := generic["sub"].(string); sub == "" {
		return nil, &ParseError{Message: MsgFailedToParseProfile, Cause: errMissingSubject}
	}

	var p Profile
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return nil, &ParseError{Message: MsgFailedToParseProfile, Cause: err}
	}

	p.Provider = ProviderName
	p.Raw = string(raw)
	p.JSON = generic
	return &p, nil
}
