package storage

import (
	"context"
	"fmt"

	"github.com/craftly/storefront/internal/core/domain"
	"github.com/craftly/storefront/internal/core/port"
	"github.com/craftly/storefront/pkg/schema"
	"github.com/shopspring/decimal"
)

var _ port.WishlistRepository = (*WishlistRepository)(nil)

// WishlistRepository stores product snapshots under WishlistKey as an
// Avro-encoded WishlistV1 blob.
type WishlistRepository struct {
	backend Backend
	serde   schema.Serde
}

func NewWishlistRepository(backend Backend, serde schema.Serde) WishlistRepository {
	return WishlistRepository{backend: backend, serde: serde}
}

func (r WishlistRepository) Load(ctx context.Context) ([]domain.Product, bool, error) {
	const op = "WishlistRepository.Load"

	blob, found, err := r.backend.Read(ctx, WishlistKey)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return nil, false, nil
	}

	var v schema.WishlistV1
	if err := r.serde.Decode(blob, &v); err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	products, err := productsToDomain(v.Products)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	return products, true, nil
}

func (r WishlistRepository) Save(ctx context.Context, products []domain.Product) error {
	const op = "WishlistRepository.Save"

	blob, err := r.serde.Encode(productsFromDomain(products))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := r.backend.Write(ctx, WishlistKey, blob); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func productsFromDomain(ps []domain.Product) schema.WishlistV1 {
	v := schema.WishlistV1{Products: make([]schema.ProductV1, 0, len(ps))}
	for _, p := range ps {
		v.Products = append(v.Products, schema.ProductV1{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price.String(),
			Category:    p.Category,
			Images:      p.Images,
			InStock:     p.InStock,
			Featured:    p.Featured,
		})
	}
	return v
}

func productsToDomain(vs []schema.ProductV1) ([]domain.Product, error) {
	var products []domain.Product
	for _, v := range vs {
		price, err := decimal.NewFromString(v.Price)
		if err != nil {
			return nil, fmt.Errorf("price[%s] is not valid: %w", v.Price, err)
		}
		products = append(products, domain.Product{
			ID:          v.ID,
			Title:       v.Title,
			Description: v.Description,
			Price:       price,
			Category:    v.Category,
			Images:      v.Images,
			InStock:     v.InStock,
			Featured:    v.Featured,
		})
	}
	return products, nil
}
