// Package catalog is the static product catalog: loaded once from a JSON
// file, immutable afterwards. All queries are pure reads over the loaded
// set and hand out defensive copies, so they are safe for concurrent use
// by any number of views.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/craftly/storefront/internal/core/domain"
	"github.com/craftly/storefront/internal/core/port"
	"github.com/shopspring/decimal"
)

var _ port.CatalogStore = (*Store)(nil)

// productJSON is the on-disk shape of one catalog record, matching the
// original mock-data file field for field.
type productJSON struct {
	ID          int             `json:"Id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Images      []string        `json:"images"`
	InStock     bool            `json:"inStock"`
	Featured    bool            `json:"featured"`
}

type Store struct {
	products []domain.Product
}

// New validates the records and fixes their order for the lifetime of
// the store. Duplicate ids are rejected.
func New(products []domain.Product) (*Store, error) {
	const op = "catalog.New"

	seen := make(map[int]struct{}, len(products))
	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("%s: %w: duplicate id %d", op, domain.ErrInvalidProduct, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return &Store{products: domain.CloneProducts(products)}, nil
}

// LoadFile reads a JSON catalog file and builds a Store from it. Every
// record passes domain validation; a single bad record fails the load.
func LoadFile(path string) (*Store, error) {
	const op = "catalog.LoadFile"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var raw []productJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	products := make([]domain.Product, 0, len(raw))
	for _, r := range raw {
		p, err := domain.NewProduct(
			r.ID, r.Title, r.Description, r.Price,
			r.Category, r.Images, r.InStock, r.Featured,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: record id=%d: %w", op, r.ID, err)
		}
		products = append(products, p)
	}

	return New(products)
}

func (s *Store) GetAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return domain.CloneProducts(s.products), nil
}

func (s *Store) GetByID(ctx context.Context, id int) (domain.Product, error) {
	const op = "Store.GetByID"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}

	for _, p := range s.products {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return domain.Product{}, fmt.Errorf("%s: id %d: %w", op, id, domain.ErrProductNotFound)
}

// GetByCategory matches the category exactly, case-sensitive, and keeps
// catalog order.
func (s *Store) GetByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []domain.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

func (s *Store) GetFeatured(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []domain.Product
	for _, p := range s.products {
		if p.Featured {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

// Search matches case-insensitively against title, description and
// category. Empty or whitespace-only text returns the full catalog.
func (s *Store) Search(ctx context.Context, text string) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(text))
	if term == "" {
		return domain.CloneProducts(s.products), nil
	}

	var out []domain.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			strings.Contains(strings.ToLower(p.Category), term) {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

// Categories returns the distinct category names, sorted ascending.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	var out []string
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	slices.Sort(out)
	return out, nil
}

// PriceRange fails with domain.ErrEmptyCatalog when there are no
// products: an empty catalog has no defined range.
func (s *Store) PriceRange(ctx context.Context) (domain.PriceRange, error) {
	const op = "Store.PriceRange"

	if err := ctx.Err(); err != nil {
		return domain.PriceRange{}, err
	}

	if len(s.products) == 0 {
		return domain.PriceRange{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyCatalog)
	}

	r := domain.PriceRange{Min: s.products[0].Price, Max: s.products[0].Price}
	for _, p := range s.products[1:] {
		if p.Price.LessThan(r.Min) {
			r.Min = p.Price
		}
		if p.Price.GreaterThan(r.Max) {
			r.Max = p.Price
		}
	}
	return r, nil
}
