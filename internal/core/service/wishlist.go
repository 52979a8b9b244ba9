package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/craftly/storefront/internal/core/domain"
	"github.com/craftly/storefront/internal/core/port"
)

var _ port.WishlistReader = (*WishlistService)(nil)

// WishlistService owns the saved-products set, unique by product id,
// with the same write-through contract as the cart.
type WishlistService struct {
	mu       sync.Mutex
	wishlist domain.Wishlist
	repo     port.WishlistRepository
	notifier port.Notifier
}

func NewWishlist(
	ctx context.Context, repo port.WishlistRepository, notifier port.Notifier,
) (*WishlistService, error) {
	const op = "NewWishlist"

	products, found, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if found {
		slog.Debug("wishlist rehydrated", "op", op, "products", len(products))
	}

	return &WishlistService{
		wishlist: domain.Wishlist{Products: products},
		repo:     repo,
		notifier: notifier,
	}, nil
}

// Add saves a snapshot of the product. A product already on the list is
// left untouched: nothing is persisted and an "already saved" event is
// emitted instead of an error.
func (s *WishlistService) Add(ctx context.Context, p domain.Product) error {
	const op = "WishlistService.Add"

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.wishlist.Add(p) {
		s.notify(domain.NewEvent(domain.EventWishlistExists, p.ID,
			fmt.Sprintf("%s is already in your wishlist", p.Title)))
		return nil
	}

	if err := s.persist(ctx, op); err != nil {
		return err
	}

	s.notify(domain.NewEvent(domain.EventWishlistAdded, p.ID,
		fmt.Sprintf("Added %s to wishlist", p.Title)))
	return nil
}

func (s *WishlistService) Remove(ctx context.Context, productID int) error {
	const op = "WishlistService.Remove"

	s.mu.Lock()
	defer s.mu.Unlock()

	removed, ok := s.wishlist.Remove(productID)
	if !ok {
		return nil
	}
	if err := s.persist(ctx, op); err != nil {
		return err
	}

	s.notify(domain.NewEvent(domain.EventWishlistRemoved, productID,
		fmt.Sprintf("Removed %s from wishlist", removed.Title)))
	return nil
}

func (s *WishlistService) Clear(ctx context.Context) error {
	const op = "WishlistService.Clear"

	s.mu.Lock()
	defer s.mu.Unlock()

	s.wishlist.Clear()
	if err := s.persist(ctx, op); err != nil {
		return err
	}

	s.notify(domain.NewEvent(domain.EventWishlistCleared, 0, "Wishlist cleared"))
	return nil
}

func (s *WishlistService) Contains(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Contains(productID)
}

func (s *WishlistService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Count()
}

func (s *WishlistService) Items() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneProducts(s.wishlist.Products)
}

func (s *WishlistService) persist(ctx context.Context, op string) error {
	if err := s.repo.Save(ctx, s.wishlist.Products); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *WishlistService) notify(e domain.Event) {
	if s.notifier != nil {
		s.notifier.Notify(e)
	}
}
