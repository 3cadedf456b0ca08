package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floraform.ca/storefront/pkg/cart"
	"floraform.ca/storefront/pkg/models"
)

type fakeOrders struct {
	mu     sync.Mutex
	err    error
	block  func()
	drafts []*models.OrderDraft
}

func (f *fakeOrders) CreateOrder(ctx context.Context, draft *models.OrderDraft) (*models.Order, error) {
	if f.block != nil {
		f.block()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.drafts = append(f.drafts, draft)
	return &models.Order{
		ID:     "68b1f2c4a9d3e5f601234567",
		UserID: draft.UserID,
		Date:   draft.Date,
		Total:  draft.Total,
		Items:  draft.Items,
	}, nil
}

func (f *fakeOrders) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.drafts)
}

type fakeNotifier struct {
	confirmations chan *models.Order
	adminNotices  chan *models.Order
	err           error
}

func (f *fakeNotifier) SendOrderConfirmation(ctx context.Context, order *models.Order, user *models.User) error {
	if f.confirmations != nil {
		f.confirmations <- order
	}
	return f.err
}

func (f *fakeNotifier) SendAdminNotification(ctx context.Context, order *models.Order, user *models.User) error {
	if f.adminNotices != nil {
		f.adminNotices <- order
	}
	return f.err
}

func demoUser() *models.User {
	return &models.User{ID: 1, Name: "Demo User", Email: "user@example.com"}
}

func TestSubmitRejectsMissingUserBeforeAnyPersistence(t *testing.T) {
	orders := &fakeOrders{}
	pipeline := NewPipeline(orders, &fakeNotifier{})
	store := cart.NewStore()
	store.AddItem(models.Product{ID: 1, Name: "Jade Plant", Price: 18.00}, 1)

	_, err := pipeline.Submit(context.Background(), store, nil)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "You must be signed in to place an order", verr.Message)
	assert.Zero(t, orders.calls())
	assert.Equal(t, 1, store.ItemCount())
}

func TestSubmitRejectsEmptyCartBeforeAnyPersistence(t *testing.T) {
	orders := &fakeOrders{}
	pipeline := NewPipeline(orders, &fakeNotifier{})

	_, err := pipeline.Submit(context.Background(), cart.NewStore(), demoUser())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Your cart is empty", verr.Message)
	assert.Zero(t, orders.calls())
}

func TestSubmitRecomputesTotalFromFrozenLines(t *testing.T) {
	orders := &fakeOrders{}
	pipeline := NewPipeline(orders, &fakeNotifier{})
	store := cart.NewStore()
	store.AddItem(models.Product{ID: 4, Name: "Echeveria Elegans", Price: 12.50}, 2)
	store.AddItem(models.Product{ID: 11, Name: "Air Plant", Price: 7.25}, 1)

	order, err := pipeline.Submit(context.Background(), store, demoUser())

	require.NoError(t, err)
	assert.InDelta(t, 32.25, order.Total, 0.0001)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Echeveria Elegans", order.Items[0].ProductName)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 12.50, order.Items[0].Price)
	assert.Equal(t, 1, order.UserID)
	assert.False(t, order.Date.IsZero())
}

func TestSubmitClearsCartOnlyOnSuccess(t *testing.T) {
	orders := &fakeOrders{err: errors.New("connection reset")}
	pipeline := NewPipeline(orders, &fakeNotifier{})
	store := cart.NewStore()
	store.AddItem(models.Product{ID: 6, Name: "Lavender", Price: 16.75}, 3)

	_, err := pipeline.Submit(context.Background(), store, demoUser())

	var serr *SubmissionError
	require.ErrorAs(t, err, &serr)
	assert.ErrorIs(t, err, orders.err)
	assert.Equal(t, 3, store.ItemCount())

	// Retry after the backend recovers.
	orders.err = nil
	order, err := pipeline.Submit(context.Background(), store, demoUser())

	require.NoError(t, err)
	assert.InDelta(t, 50.25, order.Total, 0.0001)
	assert.Equal(t, 0, store.ItemCount())
}

func TestSubmitDispatchesBothNotifications(t *testing.T) {
	notifier := &fakeNotifier{
		confirmations: make(chan *models.Order, 1),
		adminNotices:  make(chan *models.Order, 1),
	}
	pipeline := NewPipeline(&fakeOrders{}, notifier)
	store := cart.NewStore()
	store.AddItem(models.Product{ID: 8, Name: "Peace Lily", Price: 24.00}, 1)

	order, err := pipeline.Submit(context.Background(), store, demoUser())
	require.NoError(t, err)

	select {
	case sent := <-notifier.confirmations:
		assert.Equal(t, order.ID, sent.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("confirmation email was never dispatched")
	}
	select {
	case sent := <-notifier.adminNotices:
		assert.Equal(t, order.ID, sent.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("admin notification was never dispatched")
	}
}

func TestSubmitSucceedsWhenNotificationsFail(t *testing.T) {
	notifier := &fakeNotifier{
		confirmations: make(chan *models.Order, 1),
		adminNotices:  make(chan *models.Order, 1),
		err:           errors.New("relay unavailable"),
	}
	pipeline := NewPipeline(&fakeOrders{}, notifier)
	store := cart.NewStore()
	store.AddItem(models.Product{ID: 2, Name: "Snake Plant", Price: 28.50}, 1)

	order, err := pipeline.Submit(context.Background(), store, demoUser())

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, 0, store.ItemCount())

	<-notifier.confirmations
	<-notifier.adminNotices
}
