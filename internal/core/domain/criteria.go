package domain

import "github.com/shopspring/decimal"

// SortKey selects the ordering of a product listing.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
)

// QueryCriteria is the combined filter/sort input for a product listing.
// It is ephemeral view state and never persisted.
//
// SearchText takes precedence over Category as the primary filter. A
// zero-valued price range (both bounds zero) disables the price filter:
// views seed the range from the catalog's PriceRange, so an unset range
// means "everything". An unknown sort key sorts as SortFeatured.
type QueryCriteria struct {
	Category   string
	PriceMin   decimal.Decimal
	PriceMax   decimal.Decimal
	SearchText string
	Sort       SortKey
}

func (c QueryCriteria) HasPriceFilter() bool {
	return !c.PriceMin.IsZero() || !c.PriceMax.IsZero()
}
