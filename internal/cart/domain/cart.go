package domain

import (
	catalog "github.com/samudrapos/kasir-service/internal/catalog/domain"
)

// Line is one cart entry: the product as it looked when it was first added,
// plus a quantity that is always at least 1.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart holds the session's lines in insertion order, at most one line per
// product id. A quantity that would drop to zero removes its line; the cart
// never holds a zero- or negative-quantity line.
type Cart struct {
	lines []Line
	index map[string]int
}

func NewCart() *Cart {
	return &Cart{index: make(map[string]int)}
}

// Add inserts a new line with quantity 1, or increments the existing line
// for the same product id. The snapshot taken at first add is retained:
// later catalog changes do not rewrite lines already in the cart.
func (c *Cart) Add(p catalog.Product) {
	if i, ok := c.index[p.ID]; ok {
		c.lines[i].Quantity++
		return
	}
	c.index[p.ID] = len(c.lines)
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
}

// Adjust changes a line's quantity by delta (+1 or -1). A decrement at
// quantity 1 removes the line. Unknown ids are a no-op.
func (c *Cart) Adjust(productID string, delta int) {
	i, ok := c.index[productID]
	if !ok {
		return
	}
	c.lines[i].Quantity += delta
	if c.lines[i].Quantity <= 0 {
		c.remove(i)
	}
}

func (c *Cart) remove(i int) {
	delete(c.index, c.lines[i].Product.ID)
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	for j := i; j < len(c.lines); j++ {
		c.index[c.lines[j].Product.ID] = j
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[string]int)
}

// Items returns the lines in insertion order. The slice is a copy; mutating
// it does not touch the cart.
func (c *Cart) Items() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
