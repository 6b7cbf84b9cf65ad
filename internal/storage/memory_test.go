package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, KeyCart)
	assert.ErrorIs(t, err, ErrNoBlob)

	require.NoError(t, m.Put(ctx, KeyCart, []byte(`[{"id":"a"}]`)))
	got, err := m.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"a"}]`), got)

	require.NoError(t, m.Delete(ctx, KeyCart))
	_, err = m.Get(ctx, KeyCart)
	assert.ErrorIs(t, err, ErrNoBlob)
}

func TestMemoryDeleteMissingKey(t *testing.T) {
	assert.NoError(t, NewMemory().Delete(context.Background(), "ghost"))
}

func TestMemoryCopiesBlobs(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	in := []byte("original")
	require.NoError(t, m.Put(ctx, "k", in))
	in[0] = 'X'

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got, "Put must copy its input")

	got[0] = 'Y'
	again, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again, "Get must return a copy")
}
