// Package metadata holds the client's durable key/value storage: the SQLite
// table used for persisted session state plus an in-memory twin for tests and
// ephemeral runs.
package metadata

import (
	"context"
)

// Store is the minimal key/value contract. Get returns (nil, nil) when the key
// is absent; Delete of a missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Transactor runs fn against a Store whose writes become visible together or
// not at all.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}

type Repository interface {
	Store
	Transactor
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
