package session

import (
	"errors"
	"time"

	"github.com/fjod/go_cart/storefront/internal/domain"
)

// Common errors returned by the store
var (
	ErrSessionNotFound = errors.New("session not found")
)

// Visitor is the state one shopper owns: a cart and, while the checkout
// overlay is open, a checkout session.
type Visitor struct {
	ID       string
	Cart     domain.Cart
	Checkout *domain.CheckoutSession
	LastSeen time.Time
}

// Store defines the interface for visitor session storage
type Store interface {
	// Create registers a new visitor with an empty cart
	Create() (Visitor, error)

	// Get returns a snapshot of the visitor
	Get(id string) (Visitor, error)

	// Update runs fn against the visitor while holding the store lock.
	// Changes are kept only if fn returns nil.
	Update(id string, fn func(v *Visitor) error) (Visitor, error)

	// Delete forgets the visitor
	Delete(id string) error

	// Close shuts down the store and any background processes
	Close() error
}
