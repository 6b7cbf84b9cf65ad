package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkingSet(t *testing.T) (*Snapshot, *WorkingSet) {
	t.Helper()
	snap, err := Load(context.Background(), "")
	require.NoError(t, err)
	return snap, NewWorkingSet(snap)
}

func TestWorkingSetEditsNeverReachSnapshot(t *testing.T) {
	snap, ws := newWorkingSet(t)
	before := len(snap.All())

	_, err := ws.Add(ProductInput{
		Name:      "Seedai",
		Category:  "Savory",
		Price:     dec("48"),
		PriceUnit: "per-100g",
	})
	require.NoError(t, err)
	require.NoError(t, ws.Delete("murukku"))

	assert.Len(t, snap.All(), before, "snapshot is immutable under admin edits")
	_, ok := snap.ByID("murukku")
	assert.True(t, ok)

	assert.Len(t, ws.All(), before, "one added, one deleted")
}

func TestAddDefaults(t *testing.T) {
	_, ws := newWorkingSet(t)

	p, err := ws.Add(ProductInput{Name: "Seedai", Price: dec("48"), PriceUnit: "per-100g"})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.True(t, p.InStock, "new products start in stock")
	assert.False(t, p.Popular)
	assert.True(t, p.PricePerGram.Equal(dec("0.48")))
}

func TestAddRejectsInvalidInput(t *testing.T) {
	_, ws := newWorkingSet(t)

	_, err := ws.Add(ProductInput{Price: dec("48")})
	assert.ErrorIs(t, err, ErrInvalidProduct)

	_, err = ws.Add(ProductInput{Name: "Seedai", Price: dec("0")})
	assert.ErrorIs(t, err, ErrInvalidProduct)
}

func TestUpdateRecomputesCanonicalPrice(t *testing.T) {
	_, ws := newWorkingSet(t)

	p, err := ws.Update("murukku", ProductInput{
		Name:      "Murukku",
		Category:  "Savory",
		Price:     dec("180"),
		PriceUnit: "per-250g",
	})
	require.NoError(t, err)
	assert.True(t, p.PricePerGram.Equal(dec("0.72")), "canonical price must track the edit, got %s", p.PricePerGram)
	assert.True(t, p.OriginalPrice.Equal(dec("180")), "display price refreshed, never stale")
	assert.True(t, p.InStock, "stock flag preserved across edits")
}

func TestUpdateUnknownID(t *testing.T) {
	_, ws := newWorkingSet(t)
	_, err := ws.Update("ghost", ProductInput{Name: "x", Price: dec("1")})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteUnknownID(t *testing.T) {
	_, ws := newWorkingSet(t)
	assert.ErrorIs(t, ws.Delete("ghost"), ErrProductNotFound)
}
