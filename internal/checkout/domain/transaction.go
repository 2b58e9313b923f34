package domain

import (
	"time"

	cart "github.com/samudrapos/kasir-service/internal/cart/domain"
)

const StatusPending = "pending"

// Record is the transaction snapshot sent to the records sheet. It is built
// once from the cart at the moment of checkout and never mutated afterwards;
// the remote acknowledgement travels in the submission result, not in the
// record.
type Record struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Items     []Item `json:"items"`
	Subtotal  int64  `json:"subtotal"`
	Tax       int64  `json:"tax"`
	Total     int64  `json:"total"`
	Status    string `json:"status"`
}

type Item struct {
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"lineTotal"`
}

// NewRecord freezes the given cart lines and summary into a Record. Line
// order follows cart insertion order.
func NewRecord(id string, lines []cart.Line, summary cart.Summary, now time.Time) Record {
	items := make([]Item, 0, len(lines))
	for _, line := range lines {
		items = append(items, Item{
			SKU:       line.Product.ID,
			Name:      line.Product.Name,
			UnitPrice: line.Product.Price,
			Quantity:  line.Quantity,
			LineTotal: line.Product.Price * int64(line.Quantity),
		})
	}
	return Record{
		ID:        id,
		Timestamp: now.UTC().Format(time.RFC3339),
		Items:     items,
		Subtotal:  summary.Subtotal,
		Tax:       summary.Tax,
		Total:     summary.Total,
		Status:    StatusPending,
	}
}
