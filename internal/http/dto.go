package http

import (
	"strings"

	"github.com/fjod/go_cart/storefront/internal/cart"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/service"
)

// QuantityInput accepts any JSON value for a quantity. Whatever the shopper
// typed is coerced to a positive integer instead of being rejected.
type QuantityInput struct {
	n int
}

func (q *QuantityInput) UnmarshalJSON(b []byte) error {
	q.n = cart.NormalizeQuantity(strings.Trim(string(b), `"`))
	return nil
}

// Int returns the quantity, 1 when the field was absent.
func (q QuantityInput) Int() int {
	return cart.ClampQuantity(q.n)
}

type AddItemRequestDTO struct {
	ProductID string        `json:"product_id"`
	Quantity  QuantityInput `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity QuantityInput `json:"quantity"`
}

type CheckoutFormPatchDTO struct {
	Email      *string `json:"email"`
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	PostalCode *string `json:"postal_code"`
	Payment    *string `json:"payment"`
}

type QuestionRequestDTO struct {
	Question string `json:"question"`
}

type SubscribeRequestDTO struct {
	Email string `json:"email"`
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type ProductSummaryResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    string  `json:"price"`
	Image    string  `json:"image,omitempty"`
	Rating   float64 `json:"rating"`
}

type ProductsResponse struct {
	Products []ProductSummaryResponse `json:"products"`
	Count    int                      `json:"count"`
}

type ReviewResponse struct {
	ID     string `json:"id"`
	User   string `json:"user"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

type ProductResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	Price       string           `json:"price"`
	Images      []string         `json:"images"`
	Rating      float64          `json:"rating"`
	Reviews     []ReviewResponse `json:"reviews"`
	Description string           `json:"description"`
	Benefits    []string         `json:"benefits"`
	Ingredients string           `json:"ingredients"`
	Usage       string           `json:"usage"`
}

type CartLineResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type CartResponse struct {
	Items        []CartLineResponse `json:"items"`
	ItemCount    int                `json:"item_count"`
	Subtotal     string             `json:"subtotal"`
	Shipping     string             `json:"shipping"`
	Total        string             `json:"total"`
	FreeShipping bool               `json:"free_shipping"`
}

type CheckoutFormResponse struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Payment    string `json:"payment"`
}

type CheckoutResponse struct {
	Step       int                  `json:"step"`
	StepName   string               `json:"step_name"`
	CanAdvance bool                 `json:"can_advance"`
	Form       CheckoutFormResponse `json:"form"`
	Cart       CartResponse         `json:"cart"`
}

type AdvanceResponse struct {
	Advanced bool             `json:"advanced"`
	Checkout CheckoutResponse `json:"checkout"`
}

type NotificationResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type PlaceOrderResponse struct {
	Notification NotificationResponse `json:"notification"`
	Cart         CartResponse         `json:"cart"`
}

type QuestionResponse struct {
	Accepted     bool                  `json:"accepted"`
	Notification *NotificationResponse `json:"notification,omitempty"`
}

func toProductSummary(p domain.Product) ProductSummaryResponse {
	var image string
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	return ProductSummaryResponse{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category.String(),
		Price:    cart.FormatMoney(p.Price),
		Image:    image,
		Rating:   p.Rating,
	}
}

func toProductResponse(p domain.Product) ProductResponse {
	reviews := make([]ReviewResponse, len(p.Reviews))
	for i, r := range p.Reviews {
		reviews[i] = ReviewResponse{ID: r.ID, User: r.User, Rating: r.Rating, Text: r.Text}
	}
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category.String(),
		Price:       cart.FormatMoney(p.Price),
		Images:      append([]string{}, p.Images...),
		Rating:      p.Rating,
		Reviews:     reviews,
		Description: p.Description,
		Benefits:    append([]string{}, p.Benefits...),
		Ingredients: p.Ingredients,
		Usage:       p.Usage,
	}
}

func toCartResponse(s service.CartSnapshot) CartResponse {
	items := make([]CartLineResponse, len(s.Lines))
	for i, l := range s.Lines {
		items[i] = CartLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     cart.FormatMoney(l.Price),
			Quantity:  l.Quantity,
			LineTotal: cart.FormatMoney(l.LineTotal()),
		}
	}
	return CartResponse{
		Items:        items,
		ItemCount:    s.ItemCount,
		Subtotal:     cart.FormatMoney(s.Totals.Subtotal),
		Shipping:     cart.FormatMoney(s.Totals.Shipping),
		Total:        cart.FormatMoney(s.Totals.Total),
		FreeShipping: s.Totals.FreeShipping(),
	}
}

func toCheckoutResponse(s service.CheckoutSnapshot) CheckoutResponse {
	f := s.Session.Form
	return CheckoutResponse{
		Step:       int(s.Session.Step),
		StepName:   s.Session.Step.String(),
		CanAdvance: s.CanAdvance,
		Form: CheckoutFormResponse{
			Email:      f.Email,
			Name:       f.Name,
			Address:    f.Address,
			City:       f.City,
			PostalCode: f.PostalCode,
			Payment:    string(f.Payment),
		},
		Cart: toCartResponse(s.Cart),
	}
}

func toNotificationResponse(n domain.Notification) NotificationResponse {
	return NotificationResponse{Kind: string(n.Kind), Message: n.Message}
}
