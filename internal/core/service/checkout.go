package service

import (
	"github.com/craftly/storefront/internal/core/domain"
	"github.com/craftly/storefront/internal/core/port"
)

// CheckoutService derives the order summary the checkout flow displays.
// It only consumes the cart's total; collecting shipping and payment
// details is a view concern.
type CheckoutService struct {
	cart port.CartReader
}

func NewCheckout(cart port.CartReader) CheckoutService {
	return CheckoutService{cart: cart}
}

func (s CheckoutService) Summary() domain.OrderSummary {
	return domain.Summarize(s.cart.Total())
}
