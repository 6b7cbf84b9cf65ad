// Package storage defines the keyed-blob persistence port the cart, ledger
// and session state are written through. Values are JSON-serialized blobs
// under logical keys ("cart", "orders", "adminAuth", "user"); writes are
// last-writer-wins with no merge, so consumers must re-read before every
// mutation.
package storage

import (
	"context"
	"errors"
)

// Logical keys used by the storefront.
const (
	KeyCart      = "cart"
	KeyOrders    = "orders"
	KeyAdminAuth = "adminAuth"
	KeyUser      = "user"
)

// ErrNoBlob is returned by Get when no value exists under the key.
var ErrNoBlob = errors.New("no blob under key")

// Blobs is the persistence port. Implementations must be safe for
// concurrent use; they provide no transactions or optimistic checks.
type Blobs interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
