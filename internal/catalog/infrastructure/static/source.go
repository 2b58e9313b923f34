// Package static serves the built-in product table, the terminal tier of the
// catalog source chain.
package static

import (
	"context"

	"github.com/samudrapos/kasir-service/internal/catalog/domain"
)

type Source struct{}

func NewSource() *Source { return &Source{} }

func (s *Source) Name() string { return "builtin" }

func (s *Source) Fetch(_ context.Context) ([]domain.Product, error) {
	return domain.Builtin(), nil
}
