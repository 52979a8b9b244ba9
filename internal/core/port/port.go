package port

import (
	"context"

	"github.com/craftly/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CatalogStore exposes the static product set. Implementations are
// read-only, return defensive copies and are safe for concurrent use.
type CatalogStore interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int) (domain.Product, error)
	GetByCategory(ctx context.Context, category string) ([]domain.Product, error)
	GetFeatured(ctx context.Context) ([]domain.Product, error)
	Search(ctx context.Context, text string) ([]domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	PriceRange(ctx context.Context) (domain.PriceRange, error)
}

// CartRepository persists the whole cart as one blob. Save replaces the
// stored blob atomically; Load reports found=false when nothing has been
// stored yet.
type CartRepository interface {
	Load(ctx context.Context) (lines []domain.CartLine, found bool, err error)
	Save(ctx context.Context, lines []domain.CartLine) error
}

// WishlistRepository persists the wishlist snapshots under its own key,
// with the same replace-not-patch contract as CartRepository.
type WishlistRepository interface {
	Load(ctx context.Context) (products []domain.Product, found bool, err error)
	Save(ctx context.Context, products []domain.Product) error
}

// Notifier receives user-visible engine events (the library-side stand-in
// for UI toasts).
type Notifier interface {
	Notify(e domain.Event)
}

// CartReader is the view-facing read surface of the cart engine.
type CartReader interface {
	Items() []domain.CartLine
	Total() decimal.Decimal
	Count() int
}

// WishlistReader is the view-facing read surface of the wishlist engine.
type WishlistReader interface {
	Items() []domain.Product
	Contains(productID int) bool
	Count() int
}

// ProductQuerier derives a filtered, sorted listing from the catalog.
type ProductQuerier interface {
	Query(ctx context.Context, c domain.QueryCriteria) ([]domain.Product, error)
}
