package service

import (
	"context"

	"github.com/leadcore/cms-backend/internal/content"
	"github.com/leadcore/cms-backend/internal/content/repository"
)

// PricingService is the typed facade over the pricingPlans collection.
type PricingService struct {
	store repository.Store
}

func NewPricingService(store repository.Store) *PricingService {
	return &PricingService{store: store}
}

// GetVisible returns the plans shown on the public pricing page, by display
// order.
func (s *PricingService) GetVisible(ctx context.Context) ([]content.PricingPlan, error) {
	docs, err := s.store.GetVisible(ctx, repository.CollectionPricingPlans)
	if err != nil {
		return nil, err
	}
	return content.DecodeAll[content.PricingPlan](docs)
}

func (s *PricingService) GetAll(ctx context.Context) ([]content.PricingPlan, error) {
	docs, err := s.store.GetAll(ctx, repository.CollectionPricingPlans)
	if err != nil {
		return nil, err
	}
	repository.SortByOrder(docs)
	return content.DecodeAll[content.PricingPlan](docs)
}

func (s *PricingService) GetByID(ctx context.Context, id string) (*content.PricingPlan, error) {
	doc, err := s.store.GetByID(ctx, repository.CollectionPricingPlans, id)
	if err != nil || doc == nil {
		return nil, err
	}
	var p content.PricingPlan
	if err := content.Decode(doc, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PricingService) Create(ctx context.Context, fields content.Fields) (string, error) {
	if err := requireText(fields, "name"); err != nil {
		return "", err
	}
	return s.store.Create(ctx, repository.CollectionPricingPlans, fields)
}

func (s *PricingService) Update(ctx context.Context, id string, fields content.Fields) error {
	if _, ok := fields["name"]; ok {
		if err := requireText(fields, "name"); err != nil {
			return err
		}
	}
	return s.store.Update(ctx, repository.CollectionPricingPlans, id, fields)
}

func (s *PricingService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, repository.CollectionPricingPlans, id)
}
