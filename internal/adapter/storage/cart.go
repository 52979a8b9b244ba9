package storage

import (
	"context"
	"fmt"

	"github.com/craftly/storefront/internal/core/domain"
	"github.com/craftly/storefront/internal/core/port"
	"github.com/craftly/storefront/pkg/schema"
	"github.com/shopspring/decimal"
)

var _ port.CartRepository = (*CartRepository)(nil)

// CartRepository stores the whole cart under CartKey as an Avro-encoded
// CartV1 blob.
type CartRepository struct {
	backend Backend
	serde   schema.Serde
}

func NewCartRepository(backend Backend, serde schema.Serde) CartRepository {
	return CartRepository{backend: backend, serde: serde}
}

func (r CartRepository) Load(ctx context.Context) ([]domain.CartLine, bool, error) {
	const op = "CartRepository.Load"

	blob, found, err := r.backend.Read(ctx, CartKey)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return nil, false, nil
	}

	var v schema.CartV1
	if err := r.serde.Decode(blob, &v); err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	lines, err := cartLinesToDomain(v.Lines)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	return lines, true, nil
}

func (r CartRepository) Save(ctx context.Context, lines []domain.CartLine) error {
	const op = "CartRepository.Save"

	blob, err := r.serde.Encode(cartLinesFromDomain(lines))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := r.backend.Write(ctx, CartKey, blob); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func cartLinesFromDomain(lines []domain.CartLine) schema.CartV1 {
	v := schema.CartV1{Lines: make([]schema.CartLineV1, 0, len(lines))}
	for _, l := range lines {
		v.Lines = append(v.Lines, schema.CartLineV1{
			ProductID: l.ProductID,
			Title:     l.Title,
			Price:     l.Price.String(),
			Image:     l.Image,
			Quantity:  l.Quantity,
		})
	}
	return v
}

func cartLinesToDomain(vs []schema.CartLineV1) ([]domain.CartLine, error) {
	var lines []domain.CartLine
	for _, v := range vs {
		price, err := decimal.NewFromString(v.Price)
		if err != nil {
			return nil, fmt.Errorf("price[%s] is not valid: %w", v.Price, err)
		}
		lines = append(lines, domain.CartLine{
			ProductID: v.ProductID,
			Title:     v.Title,
			Price:     price,
			Image:     v.Image,
			Quantity:  v.Quantity,
		})
	}
	return lines, nil
}
