package application

import (
	"context"

	cart "github.com/samudrapos/kasir-service/internal/cart/domain"
	"github.com/samudrapos/kasir-service/internal/checkout/domain"
)

// Recorder delivers a transaction record to the remote records endpoint in
// one request/response round trip.
type Recorder interface {
	Save(ctx context.Context, record domain.Record) error
}

// CartReader is the submitter's view of the cart service: the frozen lines
// and the summary computed by the one shared pricing path.
type CartReader interface {
	Snapshot() ([]cart.Line, cart.Summary)
	IsEmpty() bool
}
