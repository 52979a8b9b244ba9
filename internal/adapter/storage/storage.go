// Package storage persists the cart and wishlist collections as
// string-keyed blobs. Each engine owns exactly one key and writes through
// on every mutation; a write replaces the stored blob or fails leaving
// the previous blob intact.
package storage

import "context"

// Storage keys. They mirror the browser localStorage keys of the
// original storefront, one per engine.
const (
	CartKey     = "craftly-cart"
	WishlistKey = "craftly-wishlist"
)

// Backend is a durable string-keyed blob store. Read reports found=false
// when the key has never been written.
type Backend interface {
	Read(ctx context.Context, key string) (blob []byte, found bool, err error)
	Write(ctx context.Context, key string, blob []byte) error
}
