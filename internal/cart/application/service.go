package application

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/samudrapos/kasir-service/internal/cart/domain"
)

var ErrProductNotFound = errors.New("product not found in catalog")

// Service owns the session cart. All mutations pass through it: each one is
// atomic under the service mutex, recomputes the summary from the full cart,
// and notifies the registered observer. Reads hand out copies.
type Service struct {
	log     *slog.Logger
	finder  ProductFinder
	taxRate float64

	mu       sync.Mutex
	cart     *domain.Cart
	observer SummaryObserver
}

func NewService(log *slog.Logger, finder ProductFinder, taxRate float64) *Service {
	return &Service{
		log:     log,
		finder:  finder,
		taxRate: taxRate,
		cart:    domain.NewCart(),
	}
}

// SetObserver registers the observer notified after every mutation.
func (s *Service) SetObserver(o SummaryObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observer = o
}

// Add puts one unit of the identified product into the cart, snapshotting
// the product from the current catalog on first add. Ids absent from the
// catalog fail with ErrProductNotFound and leave the cart untouched.
func (s *Service) Add(productID string) error {
	p, ok := s.finder.Find(productID)
	if !ok {
		return ErrProductNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(p)
	s.log.Debug("cart add", "product", productID)
	s.notify()
	return nil
}

// Adjust moves the identified line's quantity by delta (+1 or -1); reaching
// zero removes the line. Unknown ids are a no-op, mirroring the cart.
func (s *Service) Adjust(productID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Adjust(productID, delta)
	s.notify()
}

// Clear empties the cart. Called by the checkout coordinator after a
// confirmed successful submission.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	s.log.Info("cart cleared")
	s.notify()
}

// Snapshot returns the current lines and their freshly computed summary.
// Display and checkout both read through here, so they can never disagree.
func (s *Service) Snapshot() ([]domain.Line, domain.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.cart.Items()
	return lines, domain.Summarize(lines, s.taxRate)
}

func (s *Service) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.IsEmpty()
}

// notify expects the mutex held.
func (s *Service) notify() {
	if s.observer == nil {
		return
	}
	summary := domain.Summarize(s.cart.Items(), s.taxRate)
	s.observer.SummaryChanged(summary)
}
