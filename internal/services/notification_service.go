package services

import (
	"context"

	"dores/internal/models"
	"dores/internal/repositories"
)

// NotificationService exposes the user notification feed.
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notificationRepo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// GetNotifications lists notifications, newest first.
func (s *NotificationService) GetNotifications(ctx context.Context, page, size int) (*models.NotificationPage, error) {
	return s.notificationRepo.GetNotifications(ctx, page, size)
}

// MarkNotificationAsRead marks a single notification as viewed.
func (s *NotificationService) MarkNotificationAsRead(ctx context.Context, notificationID int) error {
	return s.notificationRepo.MarkNotificationAsRead(ctx, notificationID)
}

// MarkAllNotificationsAsRead marks every notification as viewed.
func (s *NotificationService) MarkAllNotificationsAsRead(ctx context.Context) error {
	return s.notificationRepo.MarkAllNotificationsAsRead(ctx)
}
