package cart

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddSameProductIncrementsQuantity(t *testing.T) {
	t.Parallel()

	c, err := Load(&MemStore{})
	require.NoError(t, err)

	count, err := c.Add("P1", "Widget", 99.5)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = c.Add("P1", "Widget", 99.5)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "P1", items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCart_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	store := &MemStore{}
	c, err := Load(store)
	require.NoError(t, err)

	_, err = c.Add("P2", "Gadget", 10)
	require.NoError(t, err)
	_, err = c.Add("P1", "Widget", 20)
	require.NoError(t, err)
	_, err = c.Add("P3", "Gizmo", 30)
	require.NoError(t, err)
	_, err = c.Add("P1", "Widget", 20)
	require.NoError(t, err)

	// reload from the persisted blob
	reloaded, err := Load(store)
	require.NoError(t, err)

	items := reloaded.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "P2", items[0].ProductID)
	assert.Equal(t, "P1", items[1].ProductID)
	assert.Equal(t, "P3", items[2].ProductID)
	assert.Equal(t, 2, items[1].Quantity)
	assert.Equal(t, 4, reloaded.Count())
}

func TestCart_CountLabelSuppressesZero(t *testing.T) {
	t.Parallel()

	c, err := Load(&MemStore{})
	require.NoError(t, err)
	assert.Equal(t, "", c.CountLabel())

	_, err = c.Add("P1", "Widget", 5)
	require.NoError(t, err)
	_, err = c.Add("P1", "Widget", 5)
	require.NoError(t, err)
	_, err = c.Add("P2", "Gadget", 7)
	require.NoError(t, err)

	assert.Equal(t, "3", c.CountLabel())
}

func TestCart_RenderEmpty(t *testing.T) {
	t.Parallel()

	c, err := Load(&MemStore{})
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, c.Render(&out))

	html := out.String()
	assert.Contains(t, html, "Your cart is empty.")
	assert.Contains(t, html, "₹0")
	assert.NotContains(t, html, "cart-row")
}

func TestCart_RenderRowsAndGrandTotal(t *testing.T) {
	t.Parallel()

	c, err := Load(&MemStore{})
	require.NoError(t, err)

	_, err = c.Add("P1", "Widget", 99.5)
	require.NoError(t, err)
	_, err = c.Add("P1", "Widget", 99.5)
	require.NoError(t, err)
	_, err = c.Add("P2", "Gadget", 10)
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, c.Render(&out))

	html := out.String()
	assert.Contains(t, html, "Widget")
	assert.Contains(t, html, "Qty: 2 x ₹99.5")
	assert.Contains(t, html, "₹199.00")
	assert.Contains(t, html, "Qty: 1 x ₹10")
	assert.Contains(t, html, "₹209.00")
	assert.NotContains(t, html, "Your cart is empty.")

	// rows follow insertion order
	assert.Less(t, strings.Index(html, "Widget"), strings.Index(html, "Gadget"))
}

func TestCart_RenderEscapesNames(t *testing.T) {
	t.Parallel()

	c, err := Load(&MemStore{})
	require.NoError(t, err)

	_, err = c.Add("P1", "<script>alert(1)</script>", 1)
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, c.Render(&out))
	assert.NotContains(t, out.String(), "<script>")
}

func TestFileStore_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cart.json")
	store := NewFileStore(path)

	// nothing saved yet
	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	c, err := Load(store)
	require.NoError(t, err)
	_, err = c.Add("P1", "Widget", 42)
	require.NoError(t, err)

	reloaded, err := Load(NewFileStore(path))
	require.NoError(t, err)
	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].Name)
	assert.Equal(t, 42.0, items[0].Price)
}

func TestMemStore_LoadReturnsCopy(t *testing.T) {
	t.Parallel()

	store := &MemStore{}
	require.NoError(t, store.Save([]byte(`{"P1":1}`)))

	blob, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)

	// clobbering the returned slice must not corrupt the stored blob
	for i := range blob {
		blob[i] = 'x'
	}

	again, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"P1":1}`), again)
}
