package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/craftly/storefront/config"
	"github.com/craftly/storefront/internal/adapter/catalog"
	"github.com/craftly/storefront/internal/adapter/notify"
	"github.com/craftly/storefront/internal/adapter/storage"
	"github.com/craftly/storefront/internal/core/service"
	"github.com/craftly/storefront/pkg/schema"
)

// App wires the storefront engines: file-backed blob storage underneath
// the cart and wishlist repositories, the static catalog, and the query
// and checkout services on top.
type App struct {
	Catalog  *catalog.Store
	Cart     *service.CartService
	Wishlist *service.WishlistService
	Query    *service.ProductQueryService
	Checkout service.CheckoutService
}

func New(ctx context.Context, cfg config.Config) (App, error) {
	const op = "app.New"

	initLogger(cfg.LogLevel)

	backend, err := storage.NewFileBackend(cfg.StorageDir)
	if err != nil {
		return App{}, fmt.Errorf("%s: %w", op, err)
	}

	cartSerde, err := schema.NewSerdeCartV1()
	if err != nil {
		return App{}, fmt.Errorf("%s: %w", op, err)
	}
	wishlistSerde, err := schema.NewSerdeWishlistV1()
	if err != nil {
		return App{}, fmt.Errorf("%s: %w", op, err)
	}

	catalogStore, err := catalog.LoadFile(cfg.CatalogFile)
	if err != nil {
		return App{}, fmt.Errorf("%s: %w", op, err)
	}

	notifier := notify.NewLogNotifier()

	cart, err := service.NewCart(
		ctx, storage.NewCartRepository(backend, cartSerde), notifier,
	)
	if err != nil {
		return App{}, fmt.Errorf("%s: %w", op, err)
	}

	wishlist, err := service.NewWishlist(
		ctx, storage.NewWishlistRepository(backend, wishlistSerde), notifier,
	)
	if err != nil {
		return App{}, fmt.Errorf("%s: %w", op, err)
	}

	return App{
		Catalog:  catalogStore,
		Cart:     cart,
		Wishlist: wishlist,
		Query:    service.NewProductQuery(catalogStore),
		Checkout: service.NewCheckout(cart),
	}, nil
}

func initLogger(level slog.Leveler) {
	opts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}
