package repositories

import (
	"context"
	"fmt"

	"dores/internal/models"
	"dores/pkg/apiclient"
)

// UserRepository defines the interface for the authenticated profile
// endpoints.
type UserRepository interface {
	GetCurrentUser(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, data models.UpdateData) (*models.User, error)
	GetAvatars(ctx context.Context) ([]models.Avatar, error)
	UpdateAvatar(ctx context.Context, avatarID int) error
	SavePushToken(ctx context.Context, token, previousToken string) error
}

// APIUserRepository implements UserRepository against the remote API.
type APIUserRepository struct {
	auth *apiclient.AuthClient
}

// NewAPIUserRepository creates a new APIUserRepository.
func NewAPIUserRepository(auth *apiclient.AuthClient) *APIUserRepository {
	return &APIUserRepository{auth: auth}
}

// GetCurrentUser fetches the authenticated user's profile.
func (r *APIUserRepository) GetCurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := r.auth.GetWithAuth(ctx, "/auth/user/v1/get-me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile updates the customer profile and returns the new state.
func (r *APIUserRepository) UpdateProfile(ctx context.Context, data models.UpdateData) (*models.User, error) {
	var user models.User
	if err := r.auth.PutWithAuth(ctx, "/usuarios/user/v1/update-profile-customer", data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAvatars lists the selectable profile images.
func (r *APIUserRepository) GetAvatars(ctx context.Context) ([]models.Avatar, error) {
	var avatars []models.Avatar
	if err := r.auth.GetWithAuth(ctx, "/usuarios/user/v1/avatars", &avatars); err != nil {
		return nil, err
	}
	return avatars, nil
}

// UpdateAvatar selects one of the predefined avatars as profile image.
func (r *APIUserRepository) UpdateAvatar(ctx context.Context, avatarID int) error {
	endpoint := fmt.Sprintf("/usuarios/user/v1/update-image-profile-customer?id-avatar=%d", avatarID)
	return r.auth.PutWithAuth(ctx, endpoint, nil, nil)
}

// SavePushToken registers the device push token, replacing previousToken
// when the device token rotated.
func (r *APIUserRepository) SavePushToken(ctx context.Context, token, previousToken string) error {
	body := map[string]string{"token": token}
	if previousToken != "" {
		body["previousToken"] = previousToken
	}
	return r.auth.PostWithAuth(ctx, "/auth/user/v1/save-token", body, nil)
}
