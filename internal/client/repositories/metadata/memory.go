package metadata

import (
	"context"
	"maps"
	"sync"
)

var _ Repository = (*MemoryRepository)(nil)

// MemoryRepository is a process-local Repository. Values are copied on the
// way in and out so callers cannot alias stored bytes.
type MemoryRepository struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	data map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	return cloneBytes(v), nil
}

func (r *MemoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = cloneBytes(value)
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

func (r *MemoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.data)
	return nil
}

func (r *MemoryRepository) List(_ context.Context) (map[string][]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string][]byte, len(r.data))
	for k, v := range r.data {
		out[k] = cloneBytes(v)
	}
	return out, nil
}

// WithTx stages fn's writes on a copy and swaps it in only when fn succeeds.
// Transactions are serialized; a plain Set racing a transaction is lost when
// the transaction commits.
func (r *MemoryRepository) WithTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	r.mu.RLock()
	stage := &MemoryRepository{data: maps.Clone(r.data)}
	r.mu.RUnlock()

	if err := fn(ctx, stage); err != nil {
		return err
	}

	r.mu.Lock()
	r.data = stage.data
	r.mu.Unlock()
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return append([]byte(nil), b...)
}
