package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// CartLine is one product's entry in the cart. Title, price and image are
// snapshots taken when the product was first added: later catalog changes
// never propagate into existing lines.
type CartLine struct {
	ProductID int
	Title     string
	Price     decimal.Decimal
	Image     string
	Quantity  int
}

func NewCartLine(p Product, quantity int) (CartLine, error) {
	if quantity < 1 {
		return CartLine{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	var image string
	if len(p.Images) > 0 {
		image = p.Images[0]
	}

	return CartLine{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Image:     image,
		Quantity:  quantity,
	}, nil
}

// Cart holds lines in first-added order. At most one line per product id;
// adding an existing product merges into its line in place.
type Cart struct {
	Lines []CartLine
}

func (c Cart) indexOf(productID int) int {
	for i, l := range c.Lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

func (c Cart) Line(productID int) (CartLine, bool) {
	i := c.indexOf(productID)
	if i < 0 {
		return CartLine{}, false
	}
	return c.Lines[i], true
}

// Merge adds the line's quantity into an existing line for the same
// product, or appends it. Reports whether an existing line was merged into.
func (c *Cart) Merge(line CartLine) (merged bool) {
	if i := c.indexOf(line.ProductID); i >= 0 {
		c.Lines[i].Quantity += line.Quantity
		return true
	}
	c.Lines = append(c.Lines, line)
	return false
}

// SetQuantity sets an existing line's quantity exactly. Reports whether
// the line was found.
func (c *Cart) SetQuantity(productID, quantity int) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	c.Lines[i].Quantity = quantity
	return true
}

// Remove deletes the line for the product, preserving the order of the
// remaining lines. Returns the removed line when found.
func (c *Cart) Remove(productID int) (CartLine, bool) {
	i := c.indexOf(productID)
	if i < 0 {
		return CartLine{}, false
	}
	removed := c.Lines[i]
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	return removed, true
}

func (c *Cart) Clear() {
	c.Lines = nil
}

// Total is the sum of price times quantity over all lines, unrounded.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// Count is the total number of units, not the number of lines.
func (c Cart) Count() int {
	var n int
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}
