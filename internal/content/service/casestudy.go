package service

import (
	"context"

	"github.com/leadcore/cms-backend/internal/content"
	"github.com/leadcore/cms-backend/internal/content/repository"
)

// CaseStudyService is the typed facade over the caseStudies collection.
// Case studies carry an explicit display order, so listings here re-sort by
// order ascending rather than keeping the store's publishedAt ordering.
type CaseStudyService struct {
	store repository.Store
}

func NewCaseStudyService(store repository.Store) *CaseStudyService {
	return &CaseStudyService{store: store}
}

func (s *CaseStudyService) GetPublished(ctx context.Context) ([]content.CaseStudy, error) {
	docs, err := s.store.GetPublished(ctx, repository.CollectionCaseStudies)
	if err != nil {
		return nil, err
	}
	repository.SortByOrder(docs)
	return content.DecodeAll[content.CaseStudy](docs)
}

func (s *CaseStudyService) GetAll(ctx context.Context) ([]content.CaseStudy, error) {
	docs, err := s.store.GetAll(ctx, repository.CollectionCaseStudies)
	if err != nil {
		return nil, err
	}
	repository.SortByOrder(docs)
	return content.DecodeAll[content.CaseStudy](docs)
}

func (s *CaseStudyService) GetByID(ctx context.Context, id string) (*content.CaseStudy, error) {
	doc, err := s.store.GetByID(ctx, repository.CollectionCaseStudies, id)
	if err != nil || doc == nil {
		return nil, err
	}
	var cs content.CaseStudy
	if err := content.Decode(doc, &cs); err != nil {
		return nil, err
	}
	return &cs, nil
}

func (s *CaseStudyService) GetBySlug(ctx context.Context, slug string) (*content.CaseStudy, error) {
	doc, err := s.store.GetBySlug(ctx, repository.CollectionCaseStudies, slug)
	if err != nil || doc == nil {
		return nil, err
	}
	var cs content.CaseStudy
	if err := content.Decode(doc, &cs); err != nil {
		return nil, err
	}
	return &cs, nil
}

func (s *CaseStudyService) Create(ctx context.Context, fields content.Fields) (string, error) {
	if err := requireText(fields, "title"); err != nil {
		return "", err
	}
	if err := resolveSlug(ctx, s.store, repository.CollectionCaseStudies, fields, ""); err != nil {
		return "", err
	}
	if textField(fields, "status") == "" {
		fields["status"] = content.StatusDraft
	}
	return s.store.Create(ctx, repository.CollectionCaseStudies, fields)
}

func (s *CaseStudyService) Update(ctx context.Context, id string, fields content.Fields) error {
	if _, ok := fields["title"]; ok {
		if err := requireText(fields, "title"); err != nil {
			return err
		}
	}
	if _, ok := fields["slug"]; ok {
		if err := resolveSlug(ctx, s.store, repository.CollectionCaseStudies, fields, id); err != nil {
			return err
		}
	}
	return s.store.Update(ctx, repository.CollectionCaseStudies, id, fields)
}

func (s *CaseStudyService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, repository.CollectionCaseStudies, id)
}

func (s *CaseStudyService) Publish(ctx context.Context, id string) error {
	return s.store.Update(ctx, repository.CollectionCaseStudies, id, content.Fields{
		"status":      content.StatusPublished,
		"publishedAt": content.Now(),
	})
}

func (s *CaseStudyService) Unpublish(ctx context.Context, id string) error {
	return s.store.Update(ctx, repository.CollectionCaseStudies, id, content.Fields{
		"status": content.StatusDraft,
	})
}
