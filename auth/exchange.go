package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Identity is what the external identity provider returns for a valid
// session id. SessionToken is an opaque credential minted by the provider;
// this service never generates its own.
type Identity struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

// ExchangeError reports a failed identity exchange. Transient marks
// transport-level failures (timeout, connection refused); otherwise the
// upstream answered and rejected the session id.
type ExchangeError struct {
	StatusCode int
	Transient  bool
	Err        error
}

func (e *ExchangeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("identity exchange failed: %v", e.Err)
	}
	return fmt.Sprintf("identity exchange failed: upstream returned %d", e.StatusCode)
}

func (e *ExchangeError) Unwrap() error { return e.Err }

// ExchangeClient resolves opaque external session ids against the identity
// provider. A single attempt, no retries; failures surface to the caller.
type ExchangeClient struct {
	endpoint string
	client   *http.Client
}

func NewExchangeClient(endpoint string) *ExchangeClient {
	return &ExchangeClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *ExchangeClient) Exchange(ctx context.Context, sessionID string) (*Identity, error) {
	if sessionID == "" {
		return nil, &ExchangeError{Err: fmt.Errorf("session id is empty")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, &ExchangeError{Err: err}
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ExchangeError{Transient: true, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ExchangeError{StatusCode: resp.StatusCode}
	}

	var identity Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, &ExchangeError{StatusCode: resp.StatusCode, Err: err}
	}
	if identity.Email == "" || identity.SessionToken == "" {
		return nil, &ExchangeError{StatusCode: resp.StatusCode, Err: fmt.Errorf("incomplete identity payload")}
	}
	return &identity, nil
}
