package service

import (
	"context"

	"github.com/leadcore/cms-backend/internal/content"
	"github.com/leadcore/cms-backend/internal/content/repository"
)

// ContactMethodService is the typed facade over the contactMethods collection.
type ContactMethodService struct {
	store repository.Store
}

func NewContactMethodService(store repository.Store) *ContactMethodService {
	return &ContactMethodService{store: store}
}

func (s *ContactMethodService) GetVisible(ctx context.Context) ([]content.ContactMethod, error) {
	docs, err := s.store.GetVisible(ctx, repository.CollectionContactMethods)
	if err != nil {
		return nil, err
	}
	return content.DecodeAll[content.ContactMethod](docs)
}

func (s *ContactMethodService) GetAll(ctx context.Context) ([]content.ContactMethod, error) {
	docs, err := s.store.GetAll(ctx, repository.CollectionContactMethods)
	if err != nil {
		return nil, err
	}
	repository.SortByOrder(docs)
	return content.DecodeAll[content.ContactMethod](docs)
}

func (s *ContactMethodService) GetByID(ctx context.Context, id string) (*content.ContactMethod, error) {
	doc, err := s.store.GetByID(ctx, repository.CollectionContactMethods, id)
	if err != nil || doc == nil {
		return nil, err
	}
	var m content.ContactMethod
	if err := content.Decode(doc, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *ContactMethodService) Create(ctx context.Context, fields content.Fields) (string, error) {
	if err := requireText(fields, "label"); err != nil {
		return "", err
	}
	return s.store.Create(ctx, repository.CollectionContactMethods, fields)
}

func (s *ContactMethodService) Update(ctx context.Context, id string, fields content.Fields) error {
	if _, ok := fields["label"]; ok {
		if err := requireText(fields, "label"); err != nil {
			return err
		}
	}
	return s.store.Update(ctx, repository.CollectionContactMethods, id, fields)
}

func (s *ContactMethodService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, repository.CollectionContactMethods, id)
}
