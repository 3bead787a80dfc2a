package services

import (
	"context"
	"encoding/json"
	"log"

	"dores/internal/models"
	"dores/internal/repositories"
	"dores/pkg/storage"
)

// UserService exposes the user profile operations and keeps a serialized
// copy of the last-known profile in local storage as a display cache.
type UserService struct {
	userRepo repositories.UserRepository
	store    storage.Store
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, store storage.Store) *UserService {
	return &UserService{
		userRepo: userRepo,
		store:    store,
	}
}

// GetCurrentUser fetches the authenticated profile and refreshes the local
// cache. Cache write failures are logged, not surfaced; the cache is a
// convenience, not a source of truth.
func (s *UserService) GetCurrentUser(ctx context.Context) (*models.User, error) {
	user, err := s.userRepo.GetCurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheUser(user)
	return user, nil
}

// CachedUser returns the last-known profile from local storage, or nil when
// none was cached.
func (s *UserService) CachedUser() *models.User {
	cached, err := s.store.Get(storage.KeyUser)
	if err != nil || cached == "" {
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(cached), &user); err != nil {
		log.Printf("Error decoding cached user: %v", err)
		return nil
	}
	return &user
}

// UpdateProfile updates the customer profile and the local cache.
func (s *UserService) UpdateProfile(ctx context.Context, data models.UpdateData) (*models.User, error) {
	user, err := s.userRepo.UpdateProfile(ctx, data)
	if err != nil {
		return nil, err
	}
	s.cacheUser(user)
	return user, nil
}

// GetAvatars lists the selectable profile images.
func (s *UserService) GetAvatars(ctx context.Context) ([]models.Avatar, error) {
	return s.userRepo.GetAvatars(ctx)
}

// UpdateAvatar selects one of the predefined avatars as profile image.
func (s *UserService) UpdateAvatar(ctx context.Context, avatarID int) error {
	return s.userRepo.UpdateAvatar(ctx, avatarID)
}

// SyncPushToken registers the stored device push token with the backend,
// sending the previous token along when the device token rotated, and
// records the token as registered.
func (s *UserService) SyncPushToken(ctx context.Context) error {
	pushToken, err := s.store.Get(storage.KeyPushToken)
	if err != nil || pushToken == "" {
		return err
	}

	previousToken, err := s.store.Get(storage.KeyPreviousPushToken)
	if err != nil {
		return err
	}
	if previousToken == pushToken {
		return nil
	}

	if err := s.userRepo.SavePushToken(ctx, pushToken, previousToken); err != nil {
		return err
	}
	return s.store.Set(storage.KeyPreviousPushToken, pushToken)
}

func (s *UserService) cacheUser(user *models.User) {
	encoded, err := json.Marshal(user)
	if err != nil {
		log.Printf("Error encoding user cache: %v", err)
		return
	}
	if err := s.store.Set(storage.KeyUser, string(encoded)); err != nil {
		log.Printf("Error caching user: %v", err)
	}
}
