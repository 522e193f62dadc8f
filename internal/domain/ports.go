package domain

import "context"

// DocumentStore owns the backing file exclusively; services never touch it
// directly. Load returns a fresh document each call.
type DocumentStore interface {
	Load(ctx context.Context) (*Document, error)
	Persist(ctx context.Context, doc *Document) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
