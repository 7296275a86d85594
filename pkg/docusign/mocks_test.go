package docusign_test

import (
	"context"
	"net/http"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/docusign-oauth/pkg/docusign"
)

// MockTransport is a mock implementation of docusign.Transport.
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) ExchangeCode(ctx context.Context, code, redirectURI string) (*docusign.Token, error) {
	args := m.Called(ctx, code, redirectURI)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docusign.Token), args.Error(1)
}

func (m *MockTransport) AuthenticatedGet(ctx context.Context, url, accessToken string) ([]byte, http.Header, error) {
	args := m.Called(ctx, url, accessToken)
	var body []byte
	if b := args.Get(0); b != nil {
		body = b.([]byte)
	}
	return body, nil, args.Error(1)
}

// MockStateStore is a mock implementation of docusign.StateStore.
type MockStateStore struct {
	mock.Mock
}

func (m *MockStateStore) Store(ctx context.Context, state string, expiresAt time.Time) error {
	args := m.Called(ctx, state, expiresAt)
	return args.Error(0)
}

func (m *MockStateStore) Consume(ctx context.Context, state string) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

// MockHost is a mock implementation of docusign.Host.
type MockHost struct {
	mock.Mock
}

func (m *MockHost) Redirect(url string) {
	m.Called(url)
}

func (m *MockHost) Success(user any, profile *docusign.Profile) {
	m.Called(user, profile)
}

func (m *MockHost) Fail(info docusign.FailInfo) {
	m.Called(info)
}

func (m *MockHost) Error(err error) {
	m.Called(err)
}
