package client

import (
	"context"

	"github.com/dmitrijs2005/feedbackdesk/internal/client/config"
	"github.com/dmitrijs2005/feedbackdesk/internal/client/repositories/metadata"
)

// OpenStore returns the session store for dsn and a function releasing it.
// config.StoreMemory selects a process-local store.
func OpenStore(ctx context.Context, dsn string) (metadata.Repository, func() error, error) {
	if dsn == config.StoreMemory {
		return metadata.NewMemoryRepository(), func() error { return nil }, nil
	}

	db, err := InitDatabase(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}
	return metadata.NewSQLiteRepository(db), db.Close, nil
}
