package domain

// Wishlist keeps full product snapshots in insertion order, unique by
// product id. Adding a duplicate is a no-op, not an error.
type Wishlist struct {
	Products []Product
}

func (w Wishlist) Contains(productID int) bool {
	for _, p := range w.Products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Add appends a snapshot of the product. Reports whether the product
// was added; false means it was already present.
func (w *Wishlist) Add(p Product) bool {
	if w.Contains(p.ID) {
		return false
	}
	w.Products = append(w.Products, p.Clone())
	return true
}

func (w *Wishlist) Remove(productID int) (Product, bool) {
	for i, p := range w.Products {
		if p.ID == productID {
			w.Products = append(w.Products[:i], w.Products[i+1:]...)
			return p, true
		}
	}
	return Product{}, false
}

func (w *Wishlist) Clear() {
	w.Products = nil
}

func (w Wishlist) Count() int {
	return len(w.Products)
}
