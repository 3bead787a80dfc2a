package apiclient

import (
	"context"
	"errors"
	"fmt"
)

// ErrAuthRequired is returned when no usable token could be obtained; the
// caller should send the user back to the login flow.
var ErrAuthRequired = errors.New("authentication required")

// TokenSource supplies bearer tokens for authenticated calls. Both methods
// return ("", nil) when no token can be obtained without user interaction.
type TokenSource interface {
	// ValidToken returns a non-expired access token, refreshing the stored
	// one first if its expiry has passed.
	ValidToken(ctx context.Context) (string, error)
	// RefreshedToken discards the stored access token and refreshes
	// unconditionally. Used after the server rejects a token the client
	// still believed valid.
	RefreshedToken(ctx context.Context) (string, error)
}

// AuthClient wraps Client with "ensure valid token, execute,
// retry-once-on-401" semantics. Only a 401 triggers the retry, and only one
// retry ever happens; every other failure propagates unchanged.
type AuthClient struct {
	client *Client
	tokens TokenSource
}

// NewAuthClient creates an authenticated client on top of client.
func NewAuthClient(client *Client, tokens TokenSource) *AuthClient {
	return &AuthClient{
		client: client,
		tokens: tokens,
	}
}

// GetWithAuth performs an authenticated GET request.
func (a *AuthClient) GetWithAuth(ctx context.Context, endpoint string, out interface{}) error {
	return a.withAuth(ctx, func(token string) error {
		return a.client.Get(ctx, endpoint, token, out)
	})
}

// PostWithAuth performs an authenticated POST request with a JSON body.
func (a *AuthClient) PostWithAuth(ctx context.Context, endpoint string, body interface{}, out interface{}) error {
	return a.withAuth(ctx, func(token string) error {
		return a.client.Post(ctx, endpoint, body, token, out)
	})
}

// PutWithAuth performs an authenticated PUT request with a JSON body.
func (a *AuthClient) PutWithAuth(ctx context.Context, endpoint string, body interface{}, out interface{}) error {
	return a.withAuth(ctx, func(token string) error {
		return a.client.Put(ctx, endpoint, body, token, out)
	})
}

// DeleteWithAuth performs an authenticated DELETE request.
func (a *AuthClient) DeleteWithAuth(ctx context.Context, endpoint string, out interface{}) error {
	return a.withAuth(ctx, func(token string) error {
		return a.client.Delete(ctx, endpoint, token, out)
	})
}

// PostFormWithAuth performs an authenticated multipart POST request.
func (a *AuthClient) PostFormWithAuth(ctx context.Context, endpoint string, fields map[string]string, out interface{}) error {
	return a.withAuth(ctx, func(token string) error {
		return a.client.PostForm(ctx, endpoint, fields, token, out)
	})
}

// withAuth obtains a valid token, runs call, and on a 401 refreshes the
// token and retries exactly once.
func (a *AuthClient) withAuth(ctx context.Context, call func(token string) error) error {
	token, err := a.tokens.ValidToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to obtain access token: %w", err)
	}
	if token == "" {
		return ErrAuthRequired
	}

	err = call(token)
	if err == nil || !IsUnauthorized(err) {
		return err
	}

	// The server rejected a token we believed valid; force a refresh and
	// give the call one more chance.
	token, refreshErr := a.tokens.RefreshedToken(ctx)
	if refreshErr != nil {
		return fmt.Errorf("failed to refresh authentication: %w", refreshErr)
	}
	if token == "" {
		return fmt.Errorf("failed to refresh authentication: %w", ErrAuthRequired)
	}

	return call(token)
}
