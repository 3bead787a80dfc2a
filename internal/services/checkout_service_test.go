package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dores/internal/models"
	"dores/internal/services"
	"dores/pkg/storage"
)

func newCheckoutService(t *testing.T) (*services.CheckoutService, *services.CartService, *MockOrderRepository) {
	t.Helper()
	store := storage.NewMemoryStore()
	orderRepo := new(MockOrderRepository)
	cart := services.NewCartService(store, orderRepo)
	return services.NewCheckoutService(cart, orderRepo), cart, orderRepo
}

func deliveryAddress() models.Address {
	return models.Address{ID: 5, Title: "Home", Streets: "Av. Siempre Viva 742", Floor: "2B", Reference: "blue door"}
}

func TestCheckoutService_SyncOrder_EmptyCart(t *testing.T) {
	checkout, _, _ := newCheckoutService(t)

	_, err := checkout.SyncOrder(context.Background(), deliveryAddress())
	assert.ErrorIs(t, err, services.ErrEmptyCart)
}

func TestCheckoutService_SyncOrder_RequiresPersistedAddress(t *testing.T) {
	checkout, cart, _ := newCheckoutService(t)
	require.NoError(t, cart.AddItem(burgerMenu(), 1, ""))

	_, err := checkout.SyncOrder(context.Background(), models.Address{Title: "unsaved"})
	assert.ErrorIs(t, err, services.ErrMissingAddress)
}

func TestCheckoutService_SyncOrder_CreatesDraftOrder(t *testing.T) {
	checkout, cart, orderRepo := newCheckoutService(t)
	require.NoError(t, cart.AddItem(burgerMenu(), 2, "no onions"))
	require.NoError(t, cart.AddItem(friesMenu(), 1, ""))

	orderRepo.On("CreateOrder", mock.Anything, mock.MatchedBy(func(body models.CreateOrderBody) bool {
		return body.IDCommerce == 10 &&
			body.IDOrder == 0 &&
			body.IDDeliveryAddress == 5 &&
			body.Delivery &&
			body.Floor == "2B" &&
			len(body.OrderRequests) == 2 &&
			body.OrderRequests[0].IDMenu == 1 &&
			body.OrderRequests[0].Quantity == 2 &&
			body.OrderRequests[0].Observaciones[0] == "no onions"
	})).Return(&models.Order{ID: 42, CostDelivery: 2.5, CostFee: 1.0}, nil)

	order, err := checkout.SyncOrder(context.Background(), deliveryAddress())
	require.NoError(t, err)
	assert.Equal(t, 42, order.ID)
	assert.Equal(t, 42, cart.OrderID(), "the cart couples to the created draft")
	orderRepo.AssertExpectations(t)
	orderRepo.AssertNotCalled(t, "UpdateOrder")
}

func TestCheckoutService_SyncOrder_ResubmitsFullLineSet(t *testing.T) {
	checkout, cart, orderRepo := newCheckoutService(t)
	require.NoError(t, cart.AddItem(burgerMenu(), 2, ""))
	require.NoError(t, cart.SetOrder(&models.Order{ID: 42}))
	require.NoError(t, cart.AddItem(friesMenu(), 3, ""))

	orderRepo.On("UpdateOrder", mock.Anything, mock.MatchedBy(func(body models.CreateOrderBody) bool {
		// The whole line set goes up again, not a delta.
		return body.IDOrder == 42 && len(body.OrderRequests) == 2
	})).Return(&models.Order{ID: 42, CostDelivery: 3.0}, nil)

	order, err := checkout.SyncOrder(context.Background(), deliveryAddress())
	require.NoError(t, err)
	assert.Equal(t, 42, order.ID)
	orderRepo.AssertExpectations(t)
	orderRepo.AssertNotCalled(t, "CreateOrder")
}

func TestCheckoutService_SyncOrder_FailureKeepsCart(t *testing.T) {
	checkout, cart, orderRepo := newCheckoutService(t)
	require.NoError(t, cart.AddItem(burgerMenu(), 2, ""))

	orderRepo.On("CreateOrder", mock.Anything, mock.Anything).
		Return(nil, errors.New("commerce closed"))

	_, err := checkout.SyncOrder(context.Background(), deliveryAddress())
	require.Error(t, err)
	assert.Len(t, cart.Items(), 1, "a failed sync must not touch the cart")
	assert.Zero(t, cart.OrderID())
}

func TestCheckoutService_Total(t *testing.T) {
	checkout, cart, orderRepo := newCheckoutService(t)
	require.NoError(t, cart.AddItem(burgerMenu(), 2, ""))

	// Before the first sync only the items count.
	assert.Equal(t, 20.0, checkout.Total())

	orderRepo.On("CreateOrder", mock.Anything, mock.Anything).
		Return(&models.Order{ID: 42, CostDelivery: 2.5, CostFee: 1.5}, nil)
	_, err := checkout.SyncOrder(context.Background(), deliveryAddress())
	require.NoError(t, err)

	assert.Equal(t, 24.0, checkout.Total())
}

func TestCheckoutService_Pay_RequiresOpenOrder(t *testing.T) {
	checkout, _, _ := newCheckoutService(t)

	_, err := checkout.Pay(context.Background(), true, nil)
	assert.ErrorIs(t, err, services.ErrNoOpenOrder)
}

func TestCheckoutService_Pay_CashClearsCartImmediately(t *testing.T) {
	checkout, cart, orderRepo := newCheckoutService(t)
	require.NoError(t, cart.AddItem(burgerMenu(), 1, ""))
	require.NoError(t, cart.SetOrder(&models.Order{ID: 42}))

	orderRepo.On("CreateOrderPayment", mock.Anything, 42, true).
		Return(&models.PaymentOrder{ID: 9, PriceTotal: 10}, nil)

	result, err := checkout.Pay(context.Background(), true, nil)
	require.NoError(t, err)
	require.NotNil(t, result.CashOrder)
	assert.Nil(t, result.CheckoutOrder)
	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.OrderID())
}

func TestCheckoutService_Pay_CheckoutLinkClearsAfterHandoff(t *testing.T) {
	checkout, cart, orderRepo := newCheckoutService(t)
	require.NoError(t, cart.AddItem(burgerMenu(), 1, ""))
	require.NoError(t, cart.SetOrder(&models.Order{ID: 42}))

	link := "https://pay.example.com/session/abc"
	orderRepo.On("CreateOrderPayment", mock.Anything, 42, false).
		Return(&models.PaymentOrder{ID: 9, PaymentLink: &link}, nil)

	var opened string
	result, err := checkout.Pay(context.Background(), false, func(paymentLink string) error {
		opened = paymentLink
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, result.CheckoutOrder)
	assert.Nil(t, result.CashOrder)
	assert.Equal(t, link, opened)
	assert.Empty(t, cart.Items())
}

func TestCheckoutService_Pay_FailedHandoffKeepsCart(t *testing.T) {
	checkout, cart, orderRepo := newCheckoutService(t)
	require.NoError(t, cart.AddItem(burgerMenu(), 1, ""))
	require.NoError(t, cart.SetOrder(&models.Order{ID: 42}))

	link := "https://pay.example.com/session/abc"
	orderRepo.On("CreateOrderPayment", mock.Anything, 42, false).
		Return(&models.PaymentOrder{ID: 9, PaymentLink: &link}, nil)

	result, err := checkout.Pay(context.Background(), false, func(string) error {
		return errors.New("no browser available")
	})
	require.Error(t, err)
	require.NotNil(t, result.CheckoutOrder, "the payment attempt is still reported")
	assert.Len(t, cart.Items(), 1, "the cart survives a failed handoff for retry")
	assert.Equal(t, 42, cart.OrderID())
}

func TestCheckoutService_Pay_PaymentErrorKeepsCart(t *testing.T) {
	checkout, cart, orderRepo := newCheckoutService(t)
	require.NoError(t, cart.AddItem(burgerMenu(), 1, ""))
	require.NoError(t, cart.SetOrder(&models.Order{ID: 42}))

	orderRepo.On("CreateOrderPayment", mock.Anything, 42, false).
		Return(nil, errors.New("payment provider unavailable"))

	result, err := checkout.Pay(context.Background(), false, nil)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Len(t, cart.Items(), 1)
	assert.Equal(t, 42, cart.OrderID())
}

func TestCheckoutService_CancelOrder_ConfirmedDeletionClearsCart(t *testing.T) {
	checkout, cart, orderRepo := newCheckoutService(t)
	require.NoError(t, cart.AddItem(burgerMenu(), 1, ""))
	require.NoError(t, cart.SetOrder(&models.Order{ID: 42}))

	orderRepo.On("CancelOrder", mock.Anything, 42).
		Return(&models.CancelOrderResponse{Description: "Order with ID 42 deleted successfully"}, nil)

	require.NoError(t, checkout.CancelOrder(context.Background()))
	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.OrderID())
}

func TestCheckoutService_CancelOrder_UnexpectedResponseKeepsCart(t *testing.T) {
	checkout, cart, orderRepo := newCheckoutService(t)
	require.NoError(t, cart.AddItem(burgerMenu(), 1, ""))
	require.NoError(t, cart.SetOrder(&models.Order{ID: 42}))

	orderRepo.On("CancelOrder", mock.Anything, 42).
		Return(&models.CancelOrderResponse{Description: "Order with ID 42 is being prepared"}, nil)

	err := checkout.CancelOrder(context.Background())
	require.Error(t, err)
	assert.Len(t, cart.Items(), 1, "an unconfirmed cancellation must not discard local state")
	assert.Equal(t, 42, cart.OrderID())
}

func TestCheckoutService_CancelOrder_RequiresOpenOrder(t *testing.T) {
	checkout, _, _ := newCheckoutService(t)
	assert.ErrorIs(t, checkout.CancelOrder(context.Background()), services.ErrNoOpenOrder)
}

func TestCheckoutService_Checkout_FullFlow(t *testing.T) {
	checkout, cart, orderRepo := newCheckoutService(t)
	require.NoError(t, cart.AddItem(burgerMenu(), 2, ""))

	orderRepo.On("CreateOrder", mock.Anything, mock.Anything).
		Return(&models.Order{ID: 42, CostDelivery: 2.0}, nil)
	orderRepo.On("CreateOrderPayment", mock.Anything, 42, true).
		Return(&models.PaymentOrder{ID: 9}, nil)

	result, err := checkout.Checkout(context.Background(), deliveryAddress(), true, nil)
	require.NoError(t, err)
	require.NotNil(t, result.CashOrder)
	assert.Empty(t, cart.Items())
	orderRepo.AssertExpectations(t)
}
