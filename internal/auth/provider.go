package auth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// SessionSignOuter ends a session held by the external auth provider.
type SessionSignOuter interface {
	SignOutToken(ctx context.Context, token string) error
}

// Session is the per-request view of the external auth provider. It
// satisfies the cart lifecycle's AuthProvider: identity was already resolved
// from the bearer token, and SignOut forwards to the hosted service.
type Session struct {
	UserID string
	Token  string
	Remote SessionSignOuter
}

func (s *Session) CurrentUserID(ctx context.Context) (string, error) {
	return s.UserID, nil
}

func (s *Session) SignOut(ctx context.Context) error {
	if s.Remote == nil {
		return nil
	}
	return s.Remote.SignOutToken(ctx, s.Token)
}

// RemoteProvider calls the hosted auth service over HTTP.
type RemoteProvider struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewRemoteProvider(baseURL, apiKey string) *RemoteProvider {
	return &RemoteProvider{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// SignOutToken revokes the session behind the given access token.
func (p *RemoteProvider) SignOutToken(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/auth/v1/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("auth sign-out: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("auth sign-out: status %d", resp.StatusCode)
	}
	return nil
}
