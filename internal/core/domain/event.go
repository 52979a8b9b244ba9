package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventKind discriminates user-visible engine events.
type EventKind string

const (
	EventCartAdded       EventKind = "cart.added"
	EventCartUpdated     EventKind = "cart.updated"
	EventCartRemoved     EventKind = "cart.removed"
	EventCartCleared     EventKind = "cart.cleared"
	EventWishlistAdded   EventKind = "wishlist.added"
	EventWishlistExists  EventKind = "wishlist.exists"
	EventWishlistRemoved EventKind = "wishlist.removed"
	EventWishlistCleared EventKind = "wishlist.cleared"
)

// Event is emitted by the cart and wishlist engines after a mutation, in
// place of the toasts the storefront UI shows. ProductID is zero for
// whole-collection events such as clears.
type Event struct {
	ID         uuid.UUID
	Kind       EventKind
	ProductID  int
	Message    string
	OccurredAt time.Time
}

func NewEvent(kind EventKind, productID int, message string) Event {
	return Event{
		ID:         uuid.New(),
		Kind:       kind,
		ProductID:  productID,
		Message:    message,
		OccurredAt: time.Now(),
	}
}
