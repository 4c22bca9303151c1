package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Repository is a key-value store of JSON documents. Each persisted
// entry (tasks, lists, settings, meta) is one document saved
// independently; there is no transactionality across keys.
type Repository interface {
	LoadDocument(ctx context.Context, key string) ([]byte, error)
	SaveDocument(ctx context.Context, key string, value []byte) error
	DeleteDocument(ctx context.Context, key string) error
}
