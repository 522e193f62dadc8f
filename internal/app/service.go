package app

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"

	"tourdesk/internal/domain"
)

const documentCacheKey = "document"

// Service exposes every repository operation over one shared document store.
// Mutations follow a single contract: acquire the write lock, load the
// document, validate and mutate it in memory, persist, invalidate the cache.
type Service struct {
	store    domain.DocumentStore
	cache    domain.Cache
	cacheTTL time.Duration
	write    *semaphore.Weighted
}

func NewService(store domain.DocumentStore, cache domain.Cache, ttl time.Duration) *Service {
	return &Service{store: store, cache: cache, cacheTTL: ttl, write: semaphore.NewWeighted(1)}
}

// Data returns the whole document, cache-first when a cache is configured.
func (s *Service) Data(ctx context.Context) (*domain.Document, error) {
	if s.cache != nil {
		var doc domain.Document
		if ok, _ := s.cache.Get(ctx, documentCacheKey, &doc); ok {
			return &doc, nil
		}
	}
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, documentCacheKey, doc, int(s.cacheTTL.Seconds()))
	}
	return doc, nil
}

// mutate runs fn against a freshly loaded document and persists the result.
// The whole load→mutate→persist scope holds the write semaphore: persistence
// is whole-document, so two interleaved writers would silently drop one set of
// changes. An error from fn aborts before anything is written.
func (s *Service) mutate(ctx context.Context, fn func(doc *domain.Document) error) (*domain.Document, error) {
	if err := s.write.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.write.Release(1)

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := fn(doc); err != nil {
		return nil, err
	}
	if err := s.store.Persist(ctx, doc); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, documentCacheKey)
	}
	return doc, nil
}
