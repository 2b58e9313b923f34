package application

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/samudrapos/kasir-service/internal/checkout/domain"
)

var (
	// ErrEmptyCart reports a checkout attempt with nothing in the cart.
	// Checked before anything touches the network.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNoEndpoint reports that no records endpoint is configured, so
	// there is nowhere to submit to. Also checked before the network.
	ErrNoEndpoint = errors.New("no records endpoint configured")
)

// Submitter builds the frozen transaction record and performs exactly one
// submission round trip. It never retries and never touches the cart: on
// success the caller clears the cart, keeping that effect auditable and
// separately testable.
type Submitter struct {
	log      *slog.Logger
	cart     CartReader
	recorder Recorder
	now      func() time.Time
}

func NewSubmitter(log *slog.Logger, cart CartReader, recorder Recorder) *Submitter {
	return &Submitter{log: log, cart: cart, recorder: recorder, now: time.Now}
}

// Submit checks preconditions, freezes the record, and saves it. The
// returned record is the exact snapshot that went over the wire.
func (s *Submitter) Submit(ctx context.Context) (domain.Record, error) {
	if s.cart.IsEmpty() {
		return domain.Record{}, ErrEmptyCart
	}
	if s.recorder == nil {
		return domain.Record{}, ErrNoEndpoint
	}

	lines, summary := s.cart.Snapshot()
	record := domain.NewRecord(uuid.NewString(), lines, summary, s.now())

	if err := s.recorder.Save(ctx, record); err != nil {
		s.log.Warn("transaction submission failed", "transaction", record.ID, "err", err)
		return domain.Record{}, err
	}

	s.log.Info("transaction recorded",
		"transaction", record.ID, "items", summary.ItemCount, "total", summary.Total)
	return record, nil
}
