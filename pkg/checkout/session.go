package checkout

import (
	"context"
	"sync"

	"floraform.ca/storefront/pkg/cart"
	"floraform.ca/storefront/pkg/global"
	"floraform.ca/storefront/pkg/models"
)

// State of a checkout session. Details and payment are bidirectional;
// submitting is transient and resolves to placed or back to payment.
type State string

const (
	StateDetails    State = "details"
	StatePayment    State = "payment"
	StateSubmitting State = "submitting"
	StatePlaced     State = "placed"
)

// Session is the two-step checkout state machine for one cart session.
// It is owned by a single logical caller, but every transition still
// serializes under the mutex so a double-click on "place order" cannot
// create two submissions.
type Session struct {
	mu            sync.Mutex
	state         State
	shipping      models.ShippingDetails
	paymentMethod string
	lastError     string
}

func NewSession() *Session {
	return &Session{state: StateDetails}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot returns the session's user-visible state for rendering.
func (s *Session) Snapshot() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionView{
		State:         s.state,
		Shipping:      s.shipping,
		PaymentMethod: s.paymentMethod,
		LastError:     s.lastError,
	}
}

type SessionView struct {
	State         State                  `json:"state"`
	Shipping      models.ShippingDetails `json:"shipping"`
	PaymentMethod string                 `json:"payment_method,omitempty"`
	LastError     string                 `json:"last_error,omitempty"`
}

// SubmitDetails validates the shipping form and advances to the payment
// step. Validation failure blocks the transition and commits nothing.
func (s *Session) SubmitDetails(details models.ShippingDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateDetails && s.state != StatePayment {
		return &ValidationError{Message: "Checkout is not at the details step"}
	}

	if fieldErrs := ValidateShippingDetails(details); len(fieldErrs) > 0 {
		return &ValidationError{Message: "Please correct the shipping details", Fields: fieldErrs}
	}

	s.shipping = details
	s.state = StatePayment
	return nil
}

// SelectPayment records the chosen payment method while on the payment
// step.
func (s *Session) SelectPayment(method string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePayment {
		return &ValidationError{Message: "Checkout is not at the payment step"}
	}
	if !IsValidPaymentMethod(method) {
		return &ValidationError{Message: "Unknown payment method", Fields: []global.ValidationError{
			{Field: "method", Message: "Choose one of: gpay, phonepe, paytm, card", Code: "invalid_value"},
		}}
	}

	s.paymentMethod = method
	return nil
}

// Back returns from the payment step to the details step.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePayment {
		return &ValidationError{Message: "Checkout is not at the payment step"}
	}
	s.state = StateDetails
	return nil
}

// Cancel abandons the checkout from the details step. The cart is left
// untouched; the transient form state is discarded.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateSubmitting {
		return &ValidationError{Message: "Cannot cancel while an order is being placed"}
	}
	s.state = StateDetails
	s.shipping = models.ShippingDetails{}
	s.paymentMethod = ""
	s.lastError = ""
	return nil
}

// PlaceOrder runs the submission pipeline exactly once per user action.
// While a submission is pending, further calls are rejected. On failure
// the session returns to the payment step with a message and the cart is
// preserved for retry; on success the session reaches placed and the
// transient form state is discarded.
func (s *Session) PlaceOrder(ctx context.Context, pipeline *Pipeline, store *cart.Store, user *models.User) (*models.Order, error) {
	s.mu.Lock()
	switch s.state {
	case StateSubmitting:
		s.mu.Unlock()
		return nil, &ValidationError{Message: "An order submission is already in progress"}
	case StatePayment:
		// proceed
	default:
		s.mu.Unlock()
		return nil, &ValidationError{Message: "Checkout is not at the payment step"}
	}
	if s.paymentMethod == "" {
		s.mu.Unlock()
		return nil, &ValidationError{Message: "Please select a payment method"}
	}
	s.state = StateSubmitting
	s.mu.Unlock()

	order, err := pipeline.Submit(ctx, store, user)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StatePayment
		s.lastError = "There was an issue placing your order. Please try again."
		return nil, err
	}

	s.state = StatePlaced
	s.shipping = models.ShippingDetails{}
	s.paymentMethod = ""
	s.lastError = ""
	return order, nil
}
