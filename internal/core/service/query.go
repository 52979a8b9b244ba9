package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/craftly/storefront/internal/core/domain"
	"github.com/craftly/storefront/internal/core/port"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var _ port.ProductQuerier = (*ProductQueryService)(nil)

// ProductQueryService derives the listing a view displays: source
// selection, price filter, stable sort, in that fixed order. It never
// mutates the catalog and the same criteria always produce the same
// sequence.
type ProductQueryService struct {
	catalog  port.CatalogStore
	collator *collate.Collator
}

func NewProductQuery(catalog port.CatalogStore) *ProductQueryService {
	return &ProductQueryService{
		catalog:  catalog,
		collator: collate.New(language.English),
	}
}

func (s *ProductQueryService) Query(
	ctx context.Context, c domain.QueryCriteria,
) ([]domain.Product, error) {
	const op = "ProductQueryService.Query"

	base, err := s.baseSet(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	products := filterPrice(base, c)
	s.sort(products, c.Sort)
	return products, nil
}

// baseSet picks the primary filter: search text wins over category, as
// the listing view clears the category selection when a search runs.
func (s *ProductQueryService) baseSet(
	ctx context.Context, c domain.QueryCriteria,
) ([]domain.Product, error) {
	switch {
	case c.SearchText != "":
		return s.catalog.Search(ctx, c.SearchText)
	case c.Category != "":
		return s.catalog.GetByCategory(ctx, c.Category)
	default:
		return s.catalog.GetAll(ctx)
	}
}

// filterPrice keeps products inside the inclusive range. A zero-valued
// range means the view has not constrained prices.
func filterPrice(ps []domain.Product, c domain.QueryCriteria) []domain.Product {
	if !c.HasPriceFilter() {
		return ps
	}

	out := ps[:0]
	for _, p := range ps {
		if p.Price.GreaterThanOrEqual(c.PriceMin) && p.Price.LessThanOrEqual(c.PriceMax) {
			out = append(out, p)
		}
	}
	return out
}

// sort orders the slice in place. Every ordering is stable, so products
// that compare equal keep their base-set order; SortFeatured is a stable
// partition with featured products first.
func (s *ProductQueryService) sort(ps []domain.Product, key domain.SortKey) {
	switch key {
	case domain.SortPriceAsc:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case domain.SortPriceDesc:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			return b.Price.Cmp(a.Price)
		})
	case domain.SortNameAsc:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			return s.collator.CompareString(a.Title, b.Title)
		})
	default:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			switch {
			case a.Featured == b.Featured:
				return 0
			case a.Featured:
				return -1
			default:
				return 1
			}
		})
	}
}
