package repositories

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"dores/internal/models"
	"dores/pkg/apiclient"
)

// OrderFilters narrows the purchase-order listing.
type OrderFilters struct {
	PageNumber    int
	PageSize      int
	SortDirection string
	OrderID       int
}

// OrderRepository defines the interface for order endpoints.
type OrderRepository interface {
	CreateOrder(ctx context.Context, body models.CreateOrderBody) (*models.Order, error)
	UpdateOrder(ctx context.Context, body models.CreateOrderBody) (*models.Order, error)
	GetAllOrders(ctx context.Context, filters OrderFilters) (*models.OrderPage, error)
	GetOrderByID(ctx context.Context, orderID int) (*models.Order, error)
	CreateOrderPayment(ctx context.Context, orderID int, cashPayment bool) (*models.PaymentOrder, error)
	CancelOrder(ctx context.Context, orderID int) (*models.CancelOrderResponse, error)
}

// APIOrderRepository implements OrderRepository against the remote API.
type APIOrderRepository struct {
	auth *apiclient.AuthClient
}

// NewAPIOrderRepository creates a new APIOrderRepository.
func NewAPIOrderRepository(auth *apiclient.AuthClient) *APIOrderRepository {
	return &APIOrderRepository{auth: auth}
}

// CreateOrder submits a new draft order with its menu lines. The backend
// uses a single endpoint for creating a draft and replacing its lines; the
// presence of idOrder in the body selects the behavior.
func (r *APIOrderRepository) CreateOrder(ctx context.Context, body models.CreateOrderBody) (*models.Order, error) {
	return r.submitOrder(ctx, body)
}

// UpdateOrder replaces the full line set of an existing draft order.
func (r *APIOrderRepository) UpdateOrder(ctx context.Context, body models.CreateOrderBody) (*models.Order, error) {
	if body.IDOrder == 0 {
		return nil, fmt.Errorf("order id is required to update an order")
	}
	return r.submitOrder(ctx, body)
}

func (r *APIOrderRepository) submitOrder(ctx context.Context, body models.CreateOrderBody) (*models.Order, error) {
	var order models.Order
	if err := r.auth.PostWithAuth(ctx, "/pedidos/user/v1/create-order-add-menus", body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetAllOrders lists the user's purchase orders, newest first by default.
func (r *APIOrderRepository) GetAllOrders(ctx context.Context, filters OrderFilters) (*models.OrderPage, error) {
	if filters.PageSize == 0 {
		filters.PageSize = 10
	}
	if filters.SortDirection == "" {
		filters.SortDirection = "DESC"
	}

	params := url.Values{}
	params.Set("page-number", strconv.Itoa(filters.PageNumber))
	params.Set("page-size", strconv.Itoa(filters.PageSize))
	params.Set("sort-direction", filters.SortDirection)
	if filters.OrderID != 0 {
		params.Set("id", strconv.Itoa(filters.OrderID))
	}

	var page models.OrderPage
	endpoint := "/pedidos/user/v1/get-all-purchase-orders?" + params.Encode()
	if err := r.auth.GetWithAuth(ctx, endpoint, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetOrderByID fetches a single order through the filtered listing.
func (r *APIOrderRepository) GetOrderByID(ctx context.Context, orderID int) (*models.Order, error) {
	page, err := r.GetAllOrders(ctx, OrderFilters{PageSize: 100, OrderID: orderID})
	if err != nil {
		return nil, err
	}
	for i := range page.Content {
		if page.Content[i].ID == orderID {
			return &page.Content[i], nil
		}
	}
	return nil, fmt.Errorf("order with ID %d not found", orderID)
}

// CreateOrderPayment initiates payment for an order, either cash on
// delivery or through the external checkout.
func (r *APIOrderRepository) CreateOrderPayment(ctx context.Context, orderID int, cashPayment bool) (*models.PaymentOrder, error) {
	endpoint := fmt.Sprintf("/pagos/user/v1/order-payment?id-order=%d&cash-payment=%t", orderID, cashPayment)
	var payment models.PaymentOrder
	if err := r.auth.PostWithAuth(ctx, endpoint, nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// CancelOrder requests server-side deletion of an order. Callers must check
// the confirmation description before discarding local state.
func (r *APIOrderRepository) CancelOrder(ctx context.Context, orderID int) (*models.CancelOrderResponse, error) {
	endpoint := fmt.Sprintf("/pedidos/user/v1/delete-order?id-order=%d", orderID)
	var response models.CancelOrderResponse
	if err := r.auth.DeleteWithAuth(ctx, endpoint, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
