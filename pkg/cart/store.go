package cart

import (
	"sync"

	"floraform.ca/storefront/pkg/models"
)

// Store holds the in-memory set of items a session intends to purchase.
// State is process-local: carts do not survive a restart. All mutations
// serialize under the store's mutex so back-to-back adds for the same
// product never lose an increment.
type Store struct {
	mu    sync.Mutex
	items map[int]*models.CartItem
	order []int // product IDs in insertion order, for stable rendering
}

func NewStore() *Store {
	return &Store{items: make(map[int]*models.CartItem)}
}

// AddItem inserts the product with the given quantity, or increments the
// existing line when the product is already in the cart.
func (s *Store) AddItem(product models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.items[product.ID]; ok {
		existing.Quantity += quantity
		return
	}
	s.items[product.ID] = &models.CartItem{Product: product, Quantity: quantity}
	s.order = append(s.order, product.ID)
}

// RemoveItem deletes the line for the product. Removing an absent product
// is a no-op, not an error.
func (s *Store) RemoveItem(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(productID)
}

// SetQuantity replaces the stored quantity for the product. A quantity of
// zero or less removes the line. Unknown products are left untouched.
func (s *Store) SetQuantity(productID int, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[productID]
	if !ok {
		return
	}
	if quantity <= 0 {
		s.remove(productID)
		return
	}
	item.Quantity = quantity
}

// Clear empties the cart. Called on successful order placement and on
// logout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[int]*models.CartItem)
	s.order = nil
}

// ItemCount is the sum of quantities across all lines, recomputed on
// every call.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// TotalPrice is the sum of price times quantity across all lines,
// recomputed on every call.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.items {
		total += item.Subtotal()
	}
	return total
}

// Items returns a snapshot of the cart lines in insertion order. Mutating
// the returned slice does not affect the store.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartItem, 0, len(s.order))
	for _, id := range s.order {
		if item, ok := s.items[id]; ok {
			items = append(items, *item)
		}
	}
	return items
}

func (s *Store) remove(productID int) {
	if _, ok := s.items[productID]; !ok {
		return
	}
	delete(s.items, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
