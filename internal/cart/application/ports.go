package application

import (
	"github.com/samudrapos/kasir-service/internal/cart/domain"
	catalog "github.com/samudrapos/kasir-service/internal/catalog/domain"
)

// ProductFinder resolves a product id against the current catalog.
type ProductFinder interface {
	Find(id string) (catalog.Product, bool)
}

// SummaryObserver is told the recomputed summary after every cart mutation.
// The presentation surface registers one to keep its totals display current.
type SummaryObserver interface {
	SummaryChanged(domain.Summary)
}

// SummaryObserverFunc adapts a function to the SummaryObserver interface.
type SummaryObserverFunc func(domain.Summary)

func (f SummaryObserverFunc) SummaryChanged(s domain.Summary) { f(s) }
