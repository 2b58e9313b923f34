package application

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/samudrapos/kasir-service/internal/catalog/domain"
)

// Loader walks an ordered list of catalog sources until one yields products,
// and retains the result for lookup, search and category filtering. The last
// source is expected to be the built-in table, which cannot fail and is never
// empty, so Load never returns an empty catalog and never returns an error
// to its caller.
type Loader struct {
	log     *slog.Logger
	sources []Source

	mu         sync.Mutex
	products   []domain.Product
	lastSource string
}

func NewLoader(log *slog.Logger, sources []Source) *Loader {
	return &Loader{log: log, sources: sources}
}

// Load fetches the catalog, falling through to the next source on any
// failure or empty result.
func (l *Loader) Load(ctx context.Context) []domain.Product {
	for _, src := range l.sources {
		products, err := src.Fetch(ctx)
		if err != nil {
			l.log.Warn("catalog source failed", "source", src.Name(), "err", err)
			continue
		}
		if len(products) == 0 {
			l.log.Warn("catalog source returned no products", "source", src.Name())
			continue
		}
		l.log.Info("catalog loaded", "source", src.Name(), "products", len(products))
		l.retain(src.Name(), products)
		return products
	}

	// Unreachable as long as the static source is wired last; kept so a
	// misconfigured source list still honors the non-empty contract.
	l.log.Error("all catalog sources failed, serving built-in fallback")
	l.retain("builtin", domain.Builtin())
	return domain.Builtin()
}

func (l *Loader) retain(source string, products []domain.Product) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastSource = source
	l.products = products
}

// Products returns the most recently loaded catalog.
func (l *Loader) Products() []domain.Product {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.Product, len(l.products))
	copy(out, l.products)
	return out
}

// LastSource names the source tier that served the current catalog.
func (l *Loader) LastSource() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastSource
}

// Find returns the product with the given id from the current catalog.
func (l *Loader) Find(id string) (domain.Product, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, p := range l.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Search returns products whose name contains the query, case-insensitively.
// An empty query returns the whole catalog.
func (l *Loader) Search(query string) []domain.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return l.Products()
	}
	var out []domain.Product
	for _, p := range l.Products() {
		if strings.Contains(strings.ToLower(p.Name), query) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByCategory returns products with the given category tag. An empty
// category returns the whole catalog.
func (l *Loader) FilterByCategory(category string) []domain.Product {
	if category == "" {
		return l.Products()
	}
	var out []domain.Product
	for _, p := range l.Products() {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}
