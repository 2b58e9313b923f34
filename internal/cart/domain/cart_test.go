package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/samudrapos/kasir-service/internal/catalog/domain"
)

func product(id string, price int64) catalog.Product {
	return catalog.Product{ID: id, Name: "Product " + id, Price: price}
}

func TestAddSameProductIncrementsOneLine(t *testing.T) {
	c := NewCart()
	c.Add(product("A-1", 9500))
	c.Add(product("A-1", 9500))

	items := c.Items()
	require.Len(t, items, 1, "adding the same product twice never produces two lines")
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddRetainsFirstSnapshot(t *testing.T) {
	c := NewCart()
	c.Add(product("A-1", 9500))

	changed := product("A-1", 12000)
	changed.Name = "Renamed"
	c.Add(changed)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(9500), items[0].Product.Price, "snapshot from first add is retained")
	assert.Equal(t, "Product A-1", items[0].Product.Name)
}

func TestInsertionOrderPreserved(t *testing.T) {
	c := NewCart()
	c.Add(product("A-1", 1))
	c.Add(product("B-1", 2))
	c.Add(product("C-1", 3))
	c.Add(product("B-1", 2))

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "A-1", items[0].Product.ID)
	assert.Equal(t, "B-1", items[1].Product.ID)
	assert.Equal(t, "C-1", items[2].Product.ID)
}

func TestAdjustDecrementAtOneRemovesLine(t *testing.T) {
	c := NewCart()
	c.Add(product("A-1", 1))
	c.Add(product("B-1", 2))

	c.Adjust("A-1", -1)

	items := c.Items()
	require.Len(t, items, 1, "cart length decreases by exactly one")
	assert.Equal(t, "B-1", items[0].Product.ID)

	// The removed id can be re-added as a fresh line at the end.
	c.Add(product("A-1", 1))
	items = c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "A-1", items[1].Product.ID)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestQuantityAlwaysPositive(t *testing.T) {
	c := NewCart()
	c.Add(product("A-1", 1))
	c.Adjust("A-1", 1)
	c.Adjust("A-1", 1)
	c.Adjust("A-1", -1)
	c.Adjust("A-1", -1)
	c.Adjust("A-1", -1)
	c.Adjust("A-1", -1)

	for _, line := range c.Items() {
		assert.GreaterOrEqual(t, line.Quantity, 1)
	}
	assert.True(t, c.IsEmpty())
}

func TestAdjustUnknownIDNoOp(t *testing.T) {
	c := NewCart()
	c.Add(product("A-1", 1))

	c.Adjust("Z-9", -1)

	require.Len(t, c.Items(), 1)
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestClear(t *testing.T) {
	c := NewCart()
	c.Add(product("A-1", 1))
	c.Add(product("B-1", 2))

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.Items())

	c.Add(product("A-1", 1))
	require.Len(t, c.Items(), 1)
}

func TestItemsReturnsCopy(t *testing.T) {
	c := NewCart()
	c.Add(product("A-1", 1))

	items := c.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, c.Items()[0].Quantity)
}
