package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("invalid product")
	ErrEmptyCatalog    = errors.New("catalog is empty")
)

// Product is a catalog record. The catalog is read-only: products are
// validated once at load time and never mutated afterwards.
type Product struct {
	ID          int
	Title       string
	Description string
	Price       decimal.Decimal
	Category    string
	Images      []string
	InStock     bool
	Featured    bool
}

func NewProduct(
	id int,
	title, description string,
	price decimal.Decimal,
	category string,
	images []string,
	inStock, featured bool,
) (Product, error) {
	if id <= 0 {
		return Product{}, fmt.Errorf("%w: id %d is not positive", ErrInvalidProduct, id)
	}
	if title == "" {
		return Product{}, fmt.Errorf("%w: title is empty", ErrInvalidProduct)
	}
	if price.IsNegative() {
		return Product{}, fmt.Errorf("%w: price %s is negative", ErrInvalidProduct, price)
	}
	if len(images) == 0 {
		return Product{}, fmt.Errorf("%w: images are empty", ErrInvalidProduct)
	}

	return Product{
		ID:          id,
		Title:       title,
		Description: description,
		Price:       price,
		Category:    category,
		Images:      images,
		InStock:     inStock,
		Featured:    featured,
	}, nil
}

// Clone returns a deep copy, so callers never share the Images slice
// with catalog state.
func (p Product) Clone() Product {
	cp := p
	cp.Images = make([]string, len(p.Images))
	copy(cp.Images, p.Images)
	return cp
}

func CloneProducts(ps []Product) []Product {
	out := make([]Product, len(ps))
	for i, p := range ps {
		out[i] = p.Clone()
	}
	return out
}

// PriceRange is the min/max over all catalog prices.
type PriceRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}
