package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"

	"dores/internal/models"
	"dores/internal/repositories"
)

var (
	// ErrEmptyCart signals an order action on a cart with no items.
	ErrEmptyCart = errors.New("the cart is empty")
	// ErrMissingAddress signals an order action without a persisted
	// delivery address; the caller must have the user pick one first.
	ErrMissingAddress = errors.New("a delivery address with an id is required")
	// ErrNoOpenOrder signals a payment or cancellation without a draft
	// order coupled to the cart.
	ErrNoOpenOrder = errors.New("no open order")
)

// PaymentResult is the outcome of initiating payment. Exactly one field is
// set: CashOrder when the order was confirmed for cash on delivery,
// CheckoutOrder when an external payment link must be opened.
type PaymentResult struct {
	CashOrder     *models.PaymentOrder
	CheckoutOrder *models.PaymentOrder
}

// LinkOpener hands a checkout payment link to an external flow (browser,
// in-app webview). A returned error means the handoff failed and the cart
// must be kept.
type LinkOpener func(paymentLink string) error

// CheckoutService keeps the remote draft order in sync with the local cart
// and drives the create, pay and cancel transitions. Failures leave both
// the cart and the remote order untouched so the user can simply retry.
type CheckoutService struct {
	cart      *CartService
	orderRepo repositories.OrderRepository
	validate  *validator.Validate
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(cart *CartService, orderRepo repositories.OrderRepository) *CheckoutService {
	return &CheckoutService{
		cart:      cart,
		orderRepo: orderRepo,
		validate:  validator.New(),
	}
}

// SyncOrder submits the entire current line set to the server, creating a
// draft order when the cart has none and replacing the lines of the
// existing draft otherwise. The returned order carries the recomputed
// delivery cost and fee. It must run after any cart or address change the
// caller deems significant and before any payment action.
func (s *CheckoutService) SyncOrder(ctx context.Context, address models.Address) (*models.Order, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	// The cart already enforces the single-commerce invariant; re-check
	// defensively rather than submit inconsistent state.
	for _, item := range items {
		if item.CommerceID != items[0].CommerceID {
			if err := s.cart.Clear(); err != nil {
				log.Printf("Error clearing inconsistent cart: %v", err)
			}
			return nil, fmt.Errorf("cart held items from several commerces and was cleared: %w", ErrDifferentCommerce)
		}
	}

	if address.ID == 0 {
		return nil, ErrMissingAddress
	}

	body := models.CreateOrderBody{
		IDCommerce:        items[0].CommerceID,
		Delivery:          true,
		Floor:             address.Floor,
		Reference:         address.Reference,
		IDOrder:           s.cart.OrderID(),
		IDDeliveryAddress: address.ID,
		OrderRequests:     orderRequests(items),
	}
	if err := s.validate.Struct(body); err != nil {
		return nil, fmt.Errorf("invalid order payload: %w", err)
	}

	var (
		order *models.Order
		err   error
	)
	if body.IDOrder == 0 {
		order, err = s.orderRepo.CreateOrder(ctx, body)
	} else {
		order, err = s.orderRepo.UpdateOrder(ctx, body)
	}
	if err != nil {
		return nil, err
	}

	if err := s.cart.SetOrder(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Total returns the amount due: the cart's item total plus the delivery
// cost and service fee of the synced order. Before the first sync both
// costs read as zero.
func (s *CheckoutService) Total() float64 {
	total := s.cart.Total()
	if order := s.cart.Order(); order != nil {
		total += order.CostDelivery + order.CostFee
	}
	return total
}

// Pay initiates payment for the draft order. A cash confirmation clears the
// cart immediately. A checkout confirmation is first handed to openLink;
// the cart is cleared only when that handoff succeeds, so a failed handoff
// leaves everything in place for a retry.
func (s *CheckoutService) Pay(ctx context.Context, cashPayment bool, openLink LinkOpener) (*PaymentResult, error) {
	orderID := s.cart.OrderID()
	if orderID == 0 {
		return nil, ErrNoOpenOrder
	}

	payment, err := s.orderRepo.CreateOrderPayment(ctx, orderID, cashPayment)
	if err != nil {
		return nil, err
	}

	if payment.IsCash() {
		if err := s.cart.Clear(); err != nil {
			log.Printf("Error clearing cart after cash payment: %v", err)
		}
		return &PaymentResult{CashOrder: payment}, nil
	}

	if openLink != nil {
		if err := openLink(*payment.PaymentLink); err != nil {
			return &PaymentResult{CheckoutOrder: payment}, fmt.Errorf("failed to open payment link: %w", err)
		}
	}

	if err := s.cart.Clear(); err != nil {
		log.Printf("Error clearing cart after checkout handoff: %v", err)
	}
	return &PaymentResult{CheckoutOrder: payment}, nil
}

// Checkout runs the full flow: sync the draft order against the given
// address, then initiate payment.
func (s *CheckoutService) Checkout(ctx context.Context, address models.Address, cashPayment bool, openLink LinkOpener) (*PaymentResult, error) {
	if _, err := s.SyncOrder(ctx, address); err != nil {
		return nil, err
	}
	return s.Pay(ctx, cashPayment, openLink)
}

// CancelOrder requests deletion of the draft order. The local cart is
// cleared only when the server confirms with the exact "deleted
// successfully" description; any other response keeps local state so
// nothing is lost on a half-failed cancellation. The string match is a
// contract shared with the backend.
func (s *CheckoutService) CancelOrder(ctx context.Context) error {
	orderID := s.cart.OrderID()
	if orderID == 0 {
		return ErrNoOpenOrder
	}

	response, err := s.orderRepo.CancelOrder(ctx, orderID)
	if err != nil {
		return err
	}

	confirmation := fmt.Sprintf("Order with ID %d deleted successfully", orderID)
	if !strings.Contains(response.Description, confirmation) {
		return fmt.Errorf("unexpected cancellation response: %s", response.Description)
	}

	return s.cart.Clear()
}

func orderRequests(items []models.CartItem) []models.OrderRequest {
	requests := make([]models.OrderRequest, 0, len(items))
	for _, item := range items {
		requests = append(requests, models.OrderRequest{
			IDMenu:        item.ID,
			Quantity:      item.Quantity,
			Observaciones: []string{item.Observations},
		})
	}
	return requests
}
