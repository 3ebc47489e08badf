// FilePath: internal/kvstore/kvstore.go
package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound indicates a Get on a key that holds no value. Callers can
// rely on it to distinguish absence from an empty stored value.
var ErrKeyNotFound = errors.New("key not found")

// Store is the key-value adapter the time-series repositories run on.
// Keys are opaque strings; entities embed patient identity and creation
// time into their own keys so prefix scans partition by patient and kind.
//
// Put fully overwrites an existing key. GetByPrefix returns all values
// whose key starts with prefix, unordered, consistent with every Put that
// completed before the call. Implementations are injected, never global.
type Store interface {
	Put(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	GetByPrefix(ctx context.Context, prefix string) (map[string][]byte, error)
	Ping(ctx context.Context) error
	Close() error
}
