package repositories

import (
	"context"
	"fmt"

	"dores/internal/models"
	"dores/pkg/apiclient"
)

// NotificationRepository defines the interface for notification endpoints.
type NotificationRepository interface {
	GetNotifications(ctx context.Context, page, size int) (*models.NotificationPage, error)
	MarkNotificationAsRead(ctx context.Context, notificationID int) error
	MarkAllNotificationsAsRead(ctx context.Context) error
}

// APINotificationRepository implements NotificationRepository against the
// remote API.
type APINotificationRepository struct {
	auth *apiclient.AuthClient
}

// NewAPINotificationRepository creates a new APINotificationRepository.
func NewAPINotificationRepository(auth *apiclient.AuthClient) *APINotificationRepository {
	return &APINotificationRepository{auth: auth}
}

// GetNotifications lists notifications, newest first.
func (r *APINotificationRepository) GetNotifications(ctx context.Context, page, size int) (*models.NotificationPage, error) {
	if size == 0 {
		size = 10
	}
	endpoint := fmt.Sprintf(
		"/notificaciones/user/v1/get-notifications?page-number=%d&page-size=%d&sort-direction=DESC",
		page, size,
	)

	var result models.NotificationPage
	if err := r.auth.GetWithAuth(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// MarkNotificationAsRead marks a single notification as viewed.
func (r *APINotificationRepository) MarkNotificationAsRead(ctx context.Context, notificationID int) error {
	endpoint := fmt.Sprintf("/notificaciones/user/v1/update-notification?id-notification=%d", notificationID)
	return r.auth.PutWithAuth(ctx, endpoint, nil, nil)
}

// MarkAllNotificationsAsRead marks every notification as viewed.
func (r *APINotificationRepository) MarkAllNotificationsAsRead(ctx context.Context) error {
	return r.auth.PutWithAuth(ctx, "/notificaciones/user/v1/mark-all-read", nil, nil)
}
