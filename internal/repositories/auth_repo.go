package repositories

import (
	"context"
	"net/url"

	"dores/internal/models"
	"dores/pkg/apiclient"
)

// AuthRepository defines the interface for the public auth endpoints. None
// of them require a bearer token, which keeps this repository free of the
// authenticated client and breaks the cycle between token refresh and
// authenticated calls.
type AuthRepository interface {
	Login(ctx context.Context, data models.LoginData) (*models.TokenPair, error)
	Register(ctx context.Context, data models.RegisterData) (*models.TokenPair, error)
	ValidateEmail(ctx context.Context, email, password string) error
	RefreshToken(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	RequestPasswordReset(ctx context.Context, email string) error
	VerifyResetCode(ctx context.Context, data models.ResetPasswordData) error
}

// APIAuthRepository implements AuthRepository against the remote API.
type APIAuthRepository struct {
	client *apiclient.Client
}

// NewAPIAuthRepository creates a new APIAuthRepository.
func NewAPIAuthRepository(client *apiclient.Client) *APIAuthRepository {
	return &APIAuthRepository{client: client}
}

// Login exchanges credentials for a token pair.
func (r *APIAuthRepository) Login(ctx context.Context, data models.LoginData) (*models.TokenPair, error) {
	var tokens models.TokenPair
	if err := r.client.Post(ctx, "/auth/public/v1/login", data, "", &tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Register creates a new customer account and returns its token pair.
func (r *APIAuthRepository) Register(ctx context.Context, data models.RegisterData) (*models.TokenPair, error) {
	var tokens models.TokenPair
	if err := r.client.Post(ctx, "/auth/public/v1/register-customer", data, "", &tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}

// ValidateEmail checks whether the credentials can be registered.
func (r *APIAuthRepository) ValidateEmail(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	return r.client.Post(ctx, "/auth/public/v1/validate-email", body, "", nil)
}

// RefreshToken exchanges a refresh token for a fresh token pair.
func (r *APIAuthRepository) RefreshToken(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	body := map[string]string{"refreshToken": refreshToken}
	var tokens models.TokenPair
	if err := r.client.Post(ctx, "/auth/public/v1/refresh-token", body, "", &tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}

// RequestPasswordReset asks the backend to email a reset code.
func (r *APIAuthRepository) RequestPasswordReset(ctx context.Context, email string) error {
	endpoint := "/auth/public/v1/request-retrieve?email=" + url.QueryEscape(email)
	return r.client.Post(ctx, endpoint, nil, "", nil)
}

// VerifyResetCode submits the emailed code together with the new password.
func (r *APIAuthRepository) VerifyResetCode(ctx context.Context, data models.ResetPasswordData) error {
	return r.client.Put(ctx, "/auth/public/v1/recover-password", data, "", nil)
}
