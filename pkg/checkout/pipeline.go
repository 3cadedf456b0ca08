package checkout

import (
	"context"
	"log"
	"time"

	"floraform.ca/storefront/pkg/cart"
	"floraform.ca/storefront/pkg/models"
)

// OrderCreator persists an order draft and assigns its identifier.
type OrderCreator interface {
	CreateOrder(ctx context.Context, draft *models.OrderDraft) (*models.Order, error)
}

// OrderCreatorFunc adapts a plain function to the OrderCreator interface.
type OrderCreatorFunc func(ctx context.Context, draft *models.OrderDraft) (*models.Order, error)

func (f OrderCreatorFunc) CreateOrder(ctx context.Context, draft *models.OrderDraft) (*models.Order, error) {
	return f(ctx, draft)
}

// Notifier sends transactional email for a placed order. Delivery is
// best-effort; failures never reach the buyer.
type Notifier interface {
	SendOrderConfirmation(ctx context.Context, order *models.Order, user *models.User) error
	SendAdminNotification(ctx context.Context, order *models.Order, user *models.User) error
}

// Pipeline converts a cart into a persisted order and dispatches
// notification side effects with clear success/failure boundaries.
type Pipeline struct {
	orders   OrderCreator
	notifier Notifier
}

func NewPipeline(orders OrderCreator, notifier Notifier) *Pipeline {
	return &Pipeline{orders: orders, notifier: notifier}
}

// Submit builds an order draft from the cart and the authenticated user,
// persists it, then triggers notification email and clears the cart.
//
// Preconditions (no network call is made when they fail): a user must be
// present and the cart must be non-empty. Line prices and names are frozen
// copies taken at this instant, and the total is recomputed from those
// lines rather than trusted from any client input. A persistence failure
// leaves the cart populated so the user may retry.
func (p *Pipeline) Submit(ctx context.Context, store *cart.Store, user *models.User) (*models.Order, error) {
	if user == nil {
		return nil, &ValidationError{Message: "You must be signed in to place an order"}
	}

	items := store.Items()
	if len(items) == 0 {
		return nil, &ValidationError{Message: "Your cart is empty"}
	}

	draft := &models.OrderDraft{
		UserID: user.ID,
		Date:   time.Now().UTC(),
		Items:  make([]models.OrderItem, 0, len(items)),
	}
	for _, item := range items {
		draft.Items = append(draft.Items, models.OrderItem{
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Price:       item.Product.Price,
		})
		draft.Total += item.Product.Price * float64(item.Quantity)
	}

	order, err := p.orders.CreateOrder(ctx, draft)
	if err != nil {
		return nil, &SubmissionError{Message: "Failed to place order", Cause: err}
	}

	// Fire-and-forget: email must never block or roll back a placed order.
	go p.notify(order, user)

	store.Clear()
	return order, nil
}

func (p *Pipeline) notify(order *models.Order, user *models.User) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := p.notifier.SendOrderConfirmation(ctx, order, user); err != nil {
		log.Printf("Warning: Failed to send confirmation email for order %s: %v", order.ID, err)
	}
	if err := p.notifier.SendAdminNotification(ctx, order, user); err != nil {
		log.Printf("Warning: Failed to send admin notification for order %s: %v", order.ID, err)
	}
}
