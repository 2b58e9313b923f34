package application

import (
	"context"

	"github.com/samudrapos/kasir-service/internal/catalog/domain"
)

// Source is one place a product catalog can come from. Fetch returns the
// full product list or an error; the Loader decides what an error means.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.Product, error)
}
