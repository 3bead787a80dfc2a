package models

// NotificationType classifies a user notification.
type NotificationType string

const (
	NotificationOrderReceived    NotificationType = "ORDER_RECEIVED"
	NotificationOrderPreparing   NotificationType = "ORDER_PREPARING"
	NotificationOrderDispatched  NotificationType = "ORDER_DISPATCHED"
	NotificationOrderDelivered   NotificationType = "ORDER_DELIVERED"
	NotificationOrderCancelled   NotificationType = "ORDER_CANCELLED_REFUNDED"
	NotificationPaymentConfirmed NotificationType = "PAYMENT_CONFIRMED"
	NotificationPaymentFailed    NotificationType = "PAYMENT_FAILED"
	NotificationPaymentPending   NotificationType = "PAYMENT_PENDING"
)

// Notification is a single user notification.
type Notification struct {
	ID               int              `json:"id"`
	IDUser           int              `json:"idUser"`
	Title            string           `json:"title"`
	Message          string           `json:"message"`
	Type             NotificationType `json:"type"`
	NotificationView bool             `json:"notificationView"`
	CreatedAt        string           `json:"createdAt"`
}

// NotificationPage is the paginated shape of the notification listing.
type NotificationPage struct {
	Content    []Notification `json:"content"`
	TotalPages int            `json:"totalPages"`
}
