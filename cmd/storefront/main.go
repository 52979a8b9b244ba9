package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/craftly/storefront/config"
	"github.com/craftly/storefront/internal/app"
	"github.com/craftly/storefront/pkg/sigctx"
)

// The storefront has no server surface: the binary boots the engines,
// rehydrates persisted state and reports a summary of the session.
func main() {
	const op = "main"

	ctx, stop := sigctx.NotifyContext()
	defer stop()

	cfg := config.Load()
	cfg.Print()

	a, err := app.New(ctx, cfg)
	if err != nil {
		panic(fmt.Errorf("%s: %w", op, err))
	}

	report(ctx, a)
}

func report(ctx context.Context, a app.App) {
	const op = "main.report"
	log := slog.With("op", op)

	products, err := a.Catalog.GetAll(ctx)
	if err != nil {
		log.Error("failed to read catalog", "err", err)
		return
	}
	categories, err := a.Catalog.Categories(ctx)
	if err != nil {
		log.Error("failed to read categories", "err", err)
		return
	}

	log.Info("storefront is ready",
		"products", len(products),
		"categories", categories,
		"cartUnits", a.Cart.Count(),
		"cartTotal", a.Cart.Total().String(),
		"wishlistProducts", a.Wishlist.Count(),
	)
}
