package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"

	"dores/internal/models"
	"dores/internal/repositories"
	"dores/pkg/storage"
)

const (
	// MinQuantity and MaxQuantity bound the quantity of a single cart line.
	MinQuantity = 1
	MaxQuantity = 99
)

// ErrDifferentCommerce signals that the added item belongs to a different
// commerce than the items already in the cart. Callers handle it by
// offering to clear the cart and continue.
var ErrDifferentCommerce = errors.New("cart already holds items from another commerce")

// ErrQuantityOutOfRange signals a quantity outside [MinQuantity, MaxQuantity].
var ErrQuantityOutOfRange = fmt.Errorf("quantity must be between %d and %d", MinQuantity, MaxQuantity)

// CartService holds the line items of the current shopping session. All
// items belong to a single commerce. Every mutation is persisted to the
// key-value store together with the current draft-order id so both survive
// restarts, and mutations are serialized behind a mutex because callers may
// fire them concurrently.
type CartService struct {
	store     storage.Store
	orderRepo repositories.OrderRepository

	mu      sync.Mutex
	items   []models.CartItem
	orderID int
	order   *models.Order
}

// NewCartService creates an empty cart backed by store.
func NewCartService(store storage.Store, orderRepo repositories.OrderRepository) *CartService {
	return &CartService{
		store:     store,
		orderRepo: orderRepo,
	}
}

// Load restores the persisted cart and order id. When an order id was
// stored, the matching remote order is fetched to rehydrate delivery cost,
// fee and status; a fetch failure is logged but does not discard the cart.
func (s *CartService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	savedCart, err := s.store.Get(storage.KeyCartItems)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}
	if savedCart != "" {
		if err := json.Unmarshal([]byte(savedCart), &s.items); err != nil {
			return fmt.Errorf("failed to decode saved cart: %w", err)
		}
	}

	savedOrderID, err := s.store.Get(storage.KeyCurrentOrderID)
	if err != nil {
		return fmt.Errorf("failed to load order id: %w", err)
	}
	if savedOrderID != "" && savedOrderID != "null" {
		orderID, err := strconv.Atoi(savedOrderID)
		if err != nil {
			return fmt.Errorf("failed to decode saved order id %q: %w", savedOrderID, err)
		}
		s.orderID = orderID

		order, err := s.orderRepo.GetOrderByID(ctx, orderID)
		if err != nil {
			log.Printf("Error loading order %d: %v", orderID, err)
		} else {
			s.order = order
		}
	}

	return nil
}

// AddItem puts quantity units of a menu entry into the cart. An existing
// line with the same menu id and the same observations text is merged, with
// the summed quantity capped at MaxQuantity. Items from a different
// commerce are rejected with ErrDifferentCommerce and the cart is left
// untouched.
func (s *CartService) AddItem(item models.Menu, quantity int, observations string) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return ErrQuantityOutOfRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) > 0 && s.items[0].CommerceID != item.CommerceID {
		return ErrDifferentCommerce
	}

	merged := false
	for i := range s.items {
		if s.items[i].ID == item.ID && s.items[i].Observations == observations {
			s.items[i].Quantity += quantity
			if s.items[i].Quantity > MaxQuantity {
				s.items[i].Quantity = MaxQuantity
			}
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, models.CartItem{
			Menu:         item,
			Quantity:     quantity,
			Observations: observations,
		})
	}

	return s.persistLocked()
}

// UpdateQuantity replaces the quantity of the line matching both the menu
// id and the observations text; two lines of the same menu with different
// observations are distinct.
func (s *CartService) UpdateQuantity(itemID, quantity int, observations string) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return ErrQuantityOutOfRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == itemID && s.items[i].Observations == observations {
			s.items[i].Quantity = quantity
		}
	}

	return s.persistLocked()
}

// RemoveItem deletes every line with the given menu id.
func (s *CartService) RemoveItem(itemID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	s.items = kept

	return s.persistLocked()
}

// Clear empties the cart and detaches it from its draft order.
func (s *CartService) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.orderID = 0
	s.order = nil

	return s.persistLocked()
}

// Items returns a copy of the current line items.
func (s *CartService) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// CommerceID returns the commerce the cart belongs to, or zero when empty.
func (s *CartService) CommerceID() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return 0
	}
	return s.items[0].CommerceID
}

// Total returns the sum of price times quantity over all lines. Delivery
// and service fees live on the order, not here.
func (s *CartService) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.items {
		total += item.LineTotal()
	}
	return total
}

// OrderID returns the id of the draft order coupled to this cart, or zero.
func (s *CartService) OrderID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderID
}

// Order returns the last fetched remote order state, or nil.
func (s *CartService) Order() *models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order
}

// SetOrder couples the cart to a remote draft order and persists the
// association.
func (s *CartService) SetOrder(order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = order
	s.orderID = 0
	if order != nil {
		s.orderID = order.ID
	}

	return s.persistLocked()
}

// persistLocked writes the full line set and the order id. Callers hold the
// mutex.
func (s *CartService) persistLocked() error {
	items := s.items
	if items == nil {
		items = []models.CartItem{}
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.store.Set(storage.KeyCartItems, string(encoded)); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	if err := s.store.Set(storage.KeyCurrentOrderID, strconv.Itoa(s.orderID)); err != nil {
		return fmt.Errorf("failed to persist order id: %w", err)
	}
	return nil
}
