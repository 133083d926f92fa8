package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fjod/go_cart/storefront/internal/cart"
	"github.com/fjod/go_cart/storefront/internal/catalog"
	"github.com/fjod/go_cart/storefront/internal/checkout"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/session"
	"go.uber.org/zap"
)

const (
	QuestionSubmittedMessage = "Question submitted! Our team will reply via email."
	SubscribedMessage        = "Subscribed!"
)

// CartSnapshot is what a presentation layer needs to render the cart.
type CartSnapshot struct {
	Lines     []domain.CartLine
	Totals    domain.Totals
	ItemCount int
}

// CheckoutSnapshot is the open checkout session plus the cart it reviews.
type CheckoutSnapshot struct {
	Session    domain.CheckoutSession
	CanAdvance bool
	Cart       CartSnapshot
}

type StorefrontService struct {
	catalog  *catalog.Catalog
	sessions session.Store
	notifier Notifier
	logger   *zap.Logger
}

func NewStorefrontService(c *catalog.Catalog, sessions session.Store, notifier Notifier, logger *zap.Logger) *StorefrontService {
	return &StorefrontService{
		catalog:  c,
		sessions: sessions,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *StorefrontService) Categories() []domain.Category {
	return domain.Categories()
}

func (s *StorefrontService) Products(query string, category domain.Category) []domain.Product {
	return s.catalog.Visible(query, category)
}

func (s *StorefrontService) Product(id string) (domain.Product, error) {
	p, ok := s.catalog.Product(id)
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (s *StorefrontService) CreateSession(_ context.Context) (string, error) {
	v, err := s.sessions.Create()
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	s.logger.Debug("session created", zap.String("session_id", v.ID))
	return v.ID, nil
}

// EndSession forgets the visitor together with its cart and checkout.
func (s *StorefrontService) EndSession(_ context.Context, sessionID string) error {
	if err := s.sessions.Delete(sessionID); err != nil {
		return err
	}
	s.logger.Debug("session ended", zap.String("session_id", sessionID))
	return nil
}

func (s *StorefrontService) Cart(_ context.Context, sessionID string) (CartSnapshot, error) {
	v, err := s.sessions.Get(sessionID)
	if err != nil {
		return CartSnapshot{}, err
	}
	return cartSnapshot(v.Cart), nil
}

// AddToCart adds qty of a catalog product; quantities below 1 count as 1.
func (s *StorefrontService) AddToCart(_ context.Context, sessionID, productID string, qty int) (CartSnapshot, error) {
	p, ok := s.catalog.Product(productID)
	if !ok {
		return CartSnapshot{}, ErrProductNotFound
	}
	qty = cart.ClampQuantity(qty)

	v, err := s.sessions.Update(sessionID, func(v *session.Visitor) error {
		v.Cart = cart.Add(v.Cart, p, qty)
		return nil
	})
	if err != nil {
		return CartSnapshot{}, err
	}

	s.logger.Debug("item added",
		zap.String("session_id", sessionID),
		zap.String("product_id", productID),
		zap.Int("quantity", qty))
	return cartSnapshot(v.Cart), nil
}

func (s *StorefrontService) UpdateQuantity(_ context.Context, sessionID, productID string, qty int) (CartSnapshot, error) {
	return s.mutateCart(sessionID, func(c domain.Cart) domain.Cart {
		return cart.UpdateQuantity(c, productID, qty)
	})
}

func (s *StorefrontService) RemoveFromCart(_ context.Context, sessionID, productID string) (CartSnapshot, error) {
	return s.mutateCart(sessionID, func(c domain.Cart) domain.Cart {
		return cart.Remove(c, productID)
	})
}

func (s *StorefrontService) ClearCart(_ context.Context, sessionID string) (CartSnapshot, error) {
	return s.mutateCart(sessionID, cart.Clear)
}

func (s *StorefrontService) mutateCart(sessionID string, fn func(domain.Cart) domain.Cart) (CartSnapshot, error) {
	v, err := s.sessions.Update(sessionID, func(v *session.Visitor) error {
		v.Cart = fn(v.Cart)
		return nil
	})
	if err != nil {
		return CartSnapshot{}, err
	}
	return cartSnapshot(v.Cart), nil
}

// OpenCheckout starts a checkout session, or returns the one already open.
func (s *StorefrontService) OpenCheckout(_ context.Context, sessionID string) (CheckoutSnapshot, error) {
	v, err := s.sessions.Update(sessionID, func(v *session.Visitor) error {
		if v.Checkout == nil {
			co := checkout.Open()
			v.Checkout = &co
		}
		return nil
	})
	if err != nil {
		return CheckoutSnapshot{}, err
	}
	return checkoutSnapshot(v), nil
}

func (s *StorefrontService) Checkout(_ context.Context, sessionID string) (CheckoutSnapshot, error) {
	v, err := s.sessions.Get(sessionID)
	if err != nil {
		return CheckoutSnapshot{}, err
	}
	if v.Checkout == nil {
		return CheckoutSnapshot{}, ErrNoCheckout
	}
	return checkoutSnapshot(v), nil
}

// CloseCheckout discards the checkout session and its form. The cart stays.
func (s *StorefrontService) CloseCheckout(_ context.Context, sessionID string) error {
	_, err := s.sessions.Update(sessionID, func(v *session.Visitor) error {
		v.Checkout = nil
		return nil
	})
	return err
}

// AdvanceCheckout moves to the next step. A refused transition is reported
// through the boolean, not as an error.
func (s *StorefrontService) AdvanceCheckout(_ context.Context, sessionID string) (CheckoutSnapshot, bool, error) {
	advanced := false
	v, err := s.updateCheckout(sessionID, func(v *session.Visitor) {
		*v.Checkout, advanced = checkout.Advance(*v.Checkout, v.Cart)
	})
	if err != nil {
		return CheckoutSnapshot{}, false, err
	}
	return checkoutSnapshot(v), advanced, nil
}

func (s *StorefrontService) BackCheckout(_ context.Context, sessionID string) (CheckoutSnapshot, error) {
	v, err := s.updateCheckout(sessionID, func(v *session.Visitor) {
		*v.Checkout = checkout.Back(*v.Checkout)
	})
	if err != nil {
		return CheckoutSnapshot{}, err
	}
	return checkoutSnapshot(v), nil
}

func (s *StorefrontService) UpdateCheckoutForm(_ context.Context, sessionID string, patch checkout.FormPatch) (CheckoutSnapshot, error) {
	v, err := s.updateCheckout(sessionID, func(v *session.Visitor) {
		*v.Checkout = checkout.UpdateForm(*v.Checkout, patch)
	})
	if err != nil {
		return CheckoutSnapshot{}, err
	}
	return checkoutSnapshot(v), nil
}

func (s *StorefrontService) updateCheckout(sessionID string, fn func(v *session.Visitor)) (session.Visitor, error) {
	return s.sessions.Update(sessionID, func(v *session.Visitor) error {
		if v.Checkout == nil {
			return ErrNoCheckout
		}
		fn(v)
		return nil
	})
}

// PlaceOrder finishes checkout from the payment step: the cart is emptied,
// the checkout session is closed and the confirmation is returned.
func (s *StorefrontService) PlaceOrder(ctx context.Context, sessionID string) (domain.Notification, CartSnapshot, error) {
	var (
		notification domain.Notification
		form         domain.CheckoutForm
		totals       domain.Totals
	)

	v, err := s.sessions.Update(sessionID, func(v *session.Visitor) error {
		if v.Checkout == nil {
			return ErrNoCheckout
		}
		form = v.Checkout.Form
		totals = cart.ComputeTotals(v.Cart)

		_, cleared, n, ok := checkout.PlaceOrder(*v.Checkout, v.Cart)
		if !ok {
			return ErrNotAtPayment
		}
		v.Cart = cleared
		v.Checkout = nil
		notification = n
		return nil
	})
	if err != nil {
		return domain.Notification{}, CartSnapshot{}, err
	}

	s.logger.Info("order placed",
		zap.String("session_id", sessionID),
		zap.String("payment", string(form.Payment)),
		zap.String("total", cart.FormatMoney(totals.Total)))
	s.notifier.Notify(ctx, sessionID, notification)
	return notification, cartSnapshot(v.Cart), nil
}

// SubmitQuestion accepts a shopper question about a product. Blank questions
// are ignored and reported through the boolean.
func (s *StorefrontService) SubmitQuestion(ctx context.Context, productID, question string) (domain.Notification, bool, error) {
	if _, ok := s.catalog.Product(productID); !ok {
		return domain.Notification{}, false, ErrProductNotFound
	}
	if strings.TrimSpace(question) == "" {
		return domain.Notification{}, false, nil
	}

	n := domain.Notification{
		Kind:    domain.NotificationQuestionSubmitted,
		Message: QuestionSubmittedMessage,
	}
	s.notifier.Notify(ctx, "", n)
	return n, true, nil
}

// Subscribe signs an email address up for the newsletter. The address is
// not checked.
func (s *StorefrontService) Subscribe(ctx context.Context, email string) domain.Notification {
	n := domain.Notification{
		Kind:    domain.NotificationNewsletterSubscribed,
		Message: SubscribedMessage,
	}
	s.logger.Debug("newsletter subscription", zap.String("email", email))
	s.notifier.Notify(ctx, "", n)
	return n
}

func cartSnapshot(c domain.Cart) CartSnapshot {
	return CartSnapshot{
		Lines:     c.Lines,
		Totals:    cart.ComputeTotals(c),
		ItemCount: cart.ItemCount(c),
	}
}

func checkoutSnapshot(v session.Visitor) CheckoutSnapshot {
	return CheckoutSnapshot{
		Session:    *v.Checkout,
		CanAdvance: checkout.CanAdvance(*v.Checkout, v.Cart),
		Cart:       cartSnapshot(v.Cart),
	}
}
