package domain

import "github.com/shopspring/decimal"

var (
	freeShippingFrom = decimal.NewFromInt(50)
	flatShipping     = decimal.RequireFromString("9.99")
	taxRate          = decimal.RequireFromString("0.08")
)

// OrderSummary is the checkout breakdown derived from the cart subtotal.
// Values are unrounded; display formatting is a view concern.
type OrderSummary struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Summarize applies the storefront's checkout rules: shipping is free
// above 50 (strictly greater), otherwise a 9.99 flat rate, and tax is 8%
// of the subtotal.
func Summarize(subtotal decimal.Decimal) OrderSummary {
	shipping := flatShipping
	if subtotal.GreaterThan(freeShippingFrom) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(taxRate)

	return OrderSummary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}
