package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"

	"dores/internal/models"
	"dores/internal/repositories"
	"dores/pkg/storage"
)

// authKeys are the storage entries wiped on logout or when a refresh fails
// beyond recovery.
var authKeys = []string{storage.KeyAccessToken, storage.KeyRefreshToken, storage.KeyUser}

// AuthService handles login, registration and the access-token lifecycle.
// It implements apiclient.TokenSource: every authenticated call asks it for
// a usable bearer token, and it refreshes behind a single mutex so
// concurrent callers discovering an expired token share one refresh round
// trip instead of racing the refresh token.
type AuthService struct {
	authRepo repositories.AuthRepository
	store    storage.Store
	mu       sync.Mutex
}

// NewAuthService creates a new AuthService.
func NewAuthService(authRepo repositories.AuthRepository, store storage.Store) *AuthService {
	return &AuthService{
		authRepo: authRepo,
		store:    store,
	}
}

// IsTokenExpired decodes the token's embedded expiry without verifying the
// signature (the server owns verification) and compares it against the
// current time. A token that cannot be decoded, or carries no expiry, is
// treated as expired rather than trusted.
func IsTokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		log.Printf("Error decoding token: %v", err)
		return true
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return true
	}
	return float64(time.Now().Unix()) >= exp
}

// ValidToken returns the stored access token if it has not expired,
// refreshing it first when it has. It returns ("", nil) when no token can
// be obtained without the user logging in again. The happy path performs no
// network call and no mutation.
func (s *AuthService) ValidToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accessToken, err := s.store.Get(storage.KeyAccessToken)
	if err != nil {
		return "", fmt.Errorf("failed to read access token: %w", err)
	}
	if accessToken == "" {
		return "", nil
	}

	if !IsTokenExpired(accessToken) {
		return accessToken, nil
	}

	return s.refreshLocked(ctx)
}

// RefreshedToken discards the stored access token and refreshes
// unconditionally. The authenticated request wrapper calls this after the
// server rejects a token the client still believed valid.
func (s *AuthService) RefreshedToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshLocked(ctx)
}

// refreshLocked exchanges the stored refresh token for a new pair. Any
// failure clears all stored auth state so the app falls back to the login
// flow instead of retrying with credentials known to be bad.
func (s *AuthService) refreshLocked(ctx context.Context) (string, error) {
	refreshToken, err := s.store.Get(storage.KeyRefreshToken)
	if err != nil {
		return "", fmt.Errorf("failed to read refresh token: %w", err)
	}
	if refreshToken == "" {
		if err := s.store.MultiRemove(authKeys); err != nil {
			log.Printf("Error clearing auth state: %v", err)
		}
		return "", nil
	}

	tokens, err := s.authRepo.RefreshToken(ctx, refreshToken)
	if err != nil {
		log.Printf("Token refresh error: %v", err)
		if err := s.store.MultiRemove(authKeys); err != nil {
			log.Printf("Error clearing auth state: %v", err)
		}
		return "", nil
	}

	if err := s.persistTokens(tokens); err != nil {
		return "", err
	}
	return tokens.AccessToken, nil
}

// Login authenticates the user and persists the returned token pair. Stale
// tokens are cleared when the attempt fails.
func (s *AuthService) Login(ctx context.Context, data models.LoginData) (*models.TokenPair, error) {
	tokens, err := s.authRepo.Login(ctx, data)
	if err != nil {
		if removeErr := s.store.MultiRemove([]string{storage.KeyAccessToken, storage.KeyRefreshToken}); removeErr != nil {
			log.Printf("Error clearing tokens after failed login: %v", removeErr)
		}
		return nil, err
	}

	if err := s.persistTokens(tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

// Register creates a new customer account and persists its token pair.
func (s *AuthService) Register(ctx context.Context, data models.RegisterData) (*models.TokenPair, error) {
	tokens, err := s.authRepo.Register(ctx, data)
	if err != nil {
		return nil, err
	}

	if err := s.persistTokens(tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

// ValidateEmail checks whether the credentials can be registered.
func (s *AuthService) ValidateEmail(ctx context.Context, email, password string) error {
	return s.authRepo.ValidateEmail(ctx, email, password)
}

// RequestPasswordReset asks the backend to email a reset code.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	return s.authRepo.RequestPasswordReset(ctx, email)
}

// VerifyResetCode submits the emailed code together with the new password.
func (s *AuthService) VerifyResetCode(ctx context.Context, data models.ResetPasswordData) error {
	return s.authRepo.VerifyResetCode(ctx, data)
}

// Logout clears all stored auth state.
func (s *AuthService) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.MultiRemove(authKeys)
}

func (s *AuthService) persistTokens(tokens *models.TokenPair) error {
	if err := s.store.Set(storage.KeyAccessToken, tokens.AccessToken); err != nil {
		return fmt.Errorf("failed to persist access token: %w", err)
	}
	if tokens.RefreshToken != "" {
		if err := s.store.Set(storage.KeyRefreshToken, tokens.RefreshToken); err != nil {
			return fmt.Errorf("failed to persist refresh token: %w", err)
		}
	}
	return nil
}
