package domain

import "fmt"

// Product is one catalog entry. Prices are in the smallest currency unit.
// Stock is nil when the source does not track stock for the item.
type Product struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Price    int64             `json:"price"`
	Category string            `json:"category"`
	Unit     string            `json:"unit"`
	Stock    *int64            `json:"stock,omitempty"`
	Cost     int64             `json:"cost,omitempty"`
	Vendor   string            `json:"vendor,omitempty"`
	Image    string            `json:"image"`
	Extra    map[string]string `json:"extra,omitempty"`
}

// DefaultImage is the derived image path for products whose source row
// carries no image reference.
func DefaultImage(id string) string {
	return fmt.Sprintf("images/products/%s.png", id)
}
