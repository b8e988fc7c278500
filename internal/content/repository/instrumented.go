package repository

import (
	"context"

	"github.com/leadcore/cms-backend/internal/content"
	"github.com/leadcore/cms-backend/pkg/metrics"
)

// InstrumentedStore wraps a Store and counts every operation and failure in
// Prometheus. Backend-agnostic, so both local and mongo stores report the
// same series.
type InstrumentedStore struct {
	inner Store
}

func NewInstrumentedStore(inner Store) *InstrumentedStore {
	return &InstrumentedStore{inner: inner}
}

func (s *InstrumentedStore) observe(collection, op string, err error) {
	metrics.StoreOperations.WithLabelValues(collection, op).Inc()
	if err != nil {
		metrics.StoreErrors.WithLabelValues(collection, op).Inc()
	}
}

func (s *InstrumentedStore) GetAll(ctx context.Context, collection string) ([]content.Fields, error) {
	docs, err := s.inner.GetAll(ctx, collection)
	s.observe(collection, "getAll", err)
	return docs, err
}

func (s *InstrumentedStore) GetByID(ctx context.Context, collection, id string) (content.Fields, error) {
	doc, err := s.inner.GetByID(ctx, collection, id)
	s.observe(collection, "getById", err)
	return doc, err
}

func (s *InstrumentedStore) GetBySlug(ctx context.Context, collection, slug string) (content.Fields, error) {
	doc, err := s.inner.GetBySlug(ctx, collection, slug)
	s.observe(collection, "getBySlug", err)
	return doc, err
}

func (s *InstrumentedStore) Create(ctx context.Context, collection string, fields content.Fields) (string, error) {
	id, err := s.inner.Create(ctx, collection, fields)
	s.observe(collection, "create", err)
	return id, err
}

func (s *InstrumentedStore) Update(ctx context.Context, collection, id string, fields content.Fields) error {
	err := s.inner.Update(ctx, collection, id, fields)
	s.observe(collection, "update", err)
	return err
}

func (s *InstrumentedStore) Delete(ctx context.Context, collection, id string) error {
	err := s.inner.Delete(ctx, collection, id)
	s.observe(collection, "delete", err)
	return err
}

func (s *InstrumentedStore) GetPublished(ctx context.Context, collection string) ([]content.Fields, error) {
	docs, err := s.inner.GetPublished(ctx, collection)
	s.observe(collection, "getPublished", err)
	return docs, err
}

func (s *InstrumentedStore) GetVisible(ctx context.Context, collection string) ([]content.Fields, error) {
	docs, err := s.inner.GetVisible(ctx, collection)
	s.observe(collection, "getVisible", err)
	return docs, err
}
