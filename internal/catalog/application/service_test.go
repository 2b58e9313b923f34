package application

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samudrapos/kasir-service/internal/catalog/domain"
)

type sourceMock struct {
	name      string
	fetchFunc func(ctx context.Context) ([]domain.Product, error)
	calls     int
}

func (s *sourceMock) Name() string { return s.name }

func (s *sourceMock) Fetch(ctx context.Context) ([]domain.Product, error) {
	s.calls++
	return s.fetchFunc(ctx)
}

func failing(name string) *sourceMock {
	return &sourceMock{name: name, fetchFunc: func(context.Context) ([]domain.Product, error) {
		return nil, errors.New("unreachable")
	}}
}

func serving(name string, products []domain.Product) *sourceMock {
	return &sourceMock{name: name, fetchFunc: func(context.Context) ([]domain.Product, error) {
		return products, nil
	}}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestLoadFirstSourceWins(t *testing.T) {
	want := []domain.Product{{ID: "A-1", Name: "Teh", Price: 9500}}
	second := serving("remote-flatfile", domain.Builtin())
	loader := NewLoader(testLogger(), []Source{serving("sheets", want), second})

	got := loader.Load(context.Background())

	assert.Equal(t, want, got)
	assert.Equal(t, "sheets", loader.LastSource())
	assert.Zero(t, second.calls, "later sources are not consulted when an earlier one serves")
}

func TestLoadFallsThroughFailures(t *testing.T) {
	loader := NewLoader(testLogger(), []Source{
		failing("sheets"),
		failing("remote-flatfile"),
		serving("local-flatfile", []domain.Product{{ID: "A-1", Name: "Teh"}}),
	})

	got := loader.Load(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, "local-flatfile", loader.LastSource())
}

func TestLoadSkipsEmptySources(t *testing.T) {
	loader := NewLoader(testLogger(), []Source{
		serving("sheets", nil),
		serving("builtin", domain.Builtin()),
	})

	got := loader.Load(context.Background())

	assert.NotEmpty(t, got)
	assert.Equal(t, "builtin", loader.LastSource())
}

func TestLoadNeverReturnsEmpty(t *testing.T) {
	loader := NewLoader(testLogger(), []Source{failing("sheets"), failing("remote-flatfile"), failing("local-flatfile")})

	got := loader.Load(context.Background())

	assert.NotEmpty(t, got, "even with every source down the catalog is served from the built-in table")
	assert.Equal(t, "builtin", loader.LastSource())
}

func TestFind(t *testing.T) {
	loader := NewLoader(testLogger(), []Source{serving("sheets", []domain.Product{
		{ID: "A-1", Name: "Teh"},
		{ID: "A-2", Name: "Kopi"},
	})})
	loader.Load(context.Background())

	p, ok := loader.Find("A-2")
	require.True(t, ok)
	assert.Equal(t, "Kopi", p.Name)

	_, ok = loader.Find("A-3")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	loader := NewLoader(testLogger(), []Source{serving("sheets", []domain.Product{
		{ID: "A-1", Name: "Teh Celup", Category: "minuman"},
		{ID: "A-2", Name: "Kopi Bubuk", Category: "minuman"},
		{ID: "B-1", Name: "Sabun Mandi", Category: "kebersihan"},
	})})
	loader.Load(context.Background())

	assert.Len(t, loader.Search("kopi"), 1)
	assert.Len(t, loader.Search("  TEH "), 1)
	assert.Len(t, loader.Search(""), 3)
	assert.Empty(t, loader.Search("beras"))
}

func TestFilterByCategory(t *testing.T) {
	loader := NewLoader(testLogger(), []Source{serving("sheets", []domain.Product{
		{ID: "A-1", Name: "Teh Celup", Category: "minuman"},
		{ID: "A-2", Name: "Kopi Bubuk", Category: "minuman"},
		{ID: "B-1", Name: "Sabun Mandi", Category: "kebersihan"},
	})})
	loader.Load(context.Background())

	assert.Len(t, loader.FilterByCategory("minuman"), 2)
	assert.Len(t, loader.FilterByCategory("Kebersihan"), 1)
	assert.Len(t, loader.FilterByCategory(""), 3)
	assert.Empty(t, loader.FilterByCategory("sembako"))
}
