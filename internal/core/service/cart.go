package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/craftly/storefront/internal/core/domain"
	"github.com/craftly/storefront/internal/core/port"
	"github.com/shopspring/decimal"
)

var _ port.CartReader = (*CartService)(nil)

// CartService owns the shopping cart. Every mutation writes the whole
// cart through to the repository before returning; when the write fails
// the in-memory cart stays authoritative for the session and the error
// is returned to the caller.
type CartService struct {
	mu       sync.Mutex
	cart     domain.Cart
	repo     port.CartRepository
	notifier port.Notifier
}

// NewCart rehydrates the cart from the repository; a never-written key
// starts an empty cart.
func NewCart(
	ctx context.Context, repo port.CartRepository, notifier port.Notifier,
) (*CartService, error) {
	const op = "NewCart"

	lines, found, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if found {
		slog.Debug("cart rehydrated", "op", op, "lines", len(lines))
	}

	return &CartService{
		cart:     domain.Cart{Lines: lines},
		repo:     repo,
		notifier: notifier,
	}, nil
}

// Add merges quantity into an existing line for the product or appends a
// new snapshot line. Non-positive quantities are rejected with
// domain.ErrInvalidQuantity.
func (s *CartService) Add(ctx context.Context, p domain.Product, quantity int) error {
	const op = "CartService.Add"

	line, err := domain.NewCartLine(p, quantity)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := s.cart.Merge(line)
	if err := s.persist(ctx, op); err != nil {
		return err
	}

	if merged {
		s.notify(domain.NewEvent(domain.EventCartUpdated, p.ID,
			fmt.Sprintf("Updated %s quantity in cart", p.Title)))
	} else {
		s.notify(domain.NewEvent(domain.EventCartAdded, p.ID,
			fmt.Sprintf("Added %s to cart", p.Title)))
	}
	return nil
}

// UpdateQuantity sets a line's quantity exactly; zero or negative removes
// the line. An unknown product id is a no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, productID, quantity int) error {
	const op = "CartService.UpdateQuantity"

	if quantity <= 0 {
		return s.Remove(ctx, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.SetQuantity(productID, quantity) {
		return nil
	}
	return s.persist(ctx, op)
}

// Remove deletes the product's line. Removing an absent id is a no-op,
// so repeated removals are idempotent.
func (s *CartService) Remove(ctx context.Context, productID int) error {
	const op = "CartService.Remove"

	s.mu.Lock()
	defer s.mu.Unlock()

	removed, ok := s.cart.Remove(productID)
	if !ok {
		return nil
	}
	if err := s.persist(ctx, op); err != nil {
		return err
	}

	s.notify(domain.NewEvent(domain.EventCartRemoved, productID,
		fmt.Sprintf("Removed %s from cart", removed.Title)))
	return nil
}

func (s *CartService) Clear(ctx context.Context) error {
	const op = "CartService.Clear"

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	if err := s.persist(ctx, op); err != nil {
		return err
	}

	s.notify(domain.NewEvent(domain.EventCartCleared, 0, "Cart cleared"))
	return nil
}

func (s *CartService) Items() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartLine, len(s.cart.Lines))
	copy(out, s.cart.Lines)
	return out
}

func (s *CartService) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

func (s *CartService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Count()
}

// persist is called with the mutex held, after the in-memory mutation.
func (s *CartService) persist(ctx context.Context, op string) error {
	if err := s.repo.Save(ctx, s.cart.Lines); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *CartService) notify(e domain.Event) {
	if s.notifier != nil {
		s.notifier.Notify(e)
	}
}
