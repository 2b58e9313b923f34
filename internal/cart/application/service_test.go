package application

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samudrapos/kasir-service/internal/cart/domain"
	catalog "github.com/samudrapos/kasir-service/internal/catalog/domain"
)

type finderMock struct {
	products map[string]catalog.Product
}

func (f *finderMock) Find(id string) (catalog.Product, bool) {
	p, ok := f.products[id]
	return p, ok
}

func newService() *Service {
	finder := &finderMock{products: map[string]catalog.Product{
		"A-1": {ID: "A-1", Name: "Teh Celup", Price: 9500},
		"B-1": {ID: "B-1", Name: "Kopi Bubuk", Price: 24000},
	}}
	return NewService(slog.New(slog.DiscardHandler), finder, 0.11)
}

func TestAddUnknownProduct(t *testing.T) {
	svc := newService()

	err := svc.Add("Z-9")

	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.True(t, svc.IsEmpty(), "failed add leaves the cart untouched")
}

func TestAddSnapshotsFromCatalog(t *testing.T) {
	svc := newService()

	require.NoError(t, svc.Add("A-1"))
	require.NoError(t, svc.Add("A-1"))

	lines, summary := svc.Snapshot()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, int64(19000), summary.Subtotal)
}

func TestEveryMutationNotifiesObserver(t *testing.T) {
	svc := newService()
	var seen []domain.Summary
	svc.SetObserver(SummaryObserverFunc(func(s domain.Summary) {
		seen = append(seen, s)
	}))

	require.NoError(t, svc.Add("A-1"))
	svc.Adjust("A-1", 1)
	svc.Adjust("A-1", -1)
	svc.Clear()

	require.Len(t, seen, 4, "add, two adjusts and clear each notify")
	assert.Equal(t, 1, seen[0].ItemCount)
	assert.Equal(t, 2, seen[1].ItemCount)
	assert.Equal(t, 1, seen[2].ItemCount)
	assert.Equal(t, domain.Summary{}, seen[3])
}

func TestObserverSummaryMatchesSnapshot(t *testing.T) {
	svc := newService()
	var last domain.Summary
	svc.SetObserver(SummaryObserverFunc(func(s domain.Summary) { last = s }))

	require.NoError(t, svc.Add("A-1"))
	require.NoError(t, svc.Add("B-1"))

	_, summary := svc.Snapshot()
	assert.Equal(t, summary, last, "observer and snapshot read the same computation")
}

func TestSnapshotRecomputesEveryCall(t *testing.T) {
	svc := newService()
	require.NoError(t, svc.Add("A-1"))

	_, first := svc.Snapshot()
	_, second := svc.Snapshot()
	assert.Equal(t, first, second)

	svc.Adjust("A-1", 1)
	_, third := svc.Snapshot()
	assert.Equal(t, first.Subtotal*2, third.Subtotal)
}
