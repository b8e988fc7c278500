package service

import (
	"context"

	"github.com/leadcore/cms-backend/internal/content"
	"github.com/leadcore/cms-backend/internal/content/repository"
)

// TeamService is the typed facade over the teamMembers collection.
type TeamService struct {
	store repository.Store
}

func NewTeamService(store repository.Store) *TeamService {
	return &TeamService{store: store}
}

func (s *TeamService) GetVisible(ctx context.Context) ([]content.TeamMember, error) {
	docs, err := s.store.GetVisible(ctx, repository.CollectionTeamMembers)
	if err != nil {
		return nil, err
	}
	return content.DecodeAll[content.TeamMember](docs)
}

func (s *TeamService) GetAll(ctx context.Context) ([]content.TeamMember, error) {
	docs, err := s.store.GetAll(ctx, repository.CollectionTeamMembers)
	if err != nil {
		return nil, err
	}
	repository.SortByOrder(docs)
	return content.DecodeAll[content.TeamMember](docs)
}

func (s *TeamService) GetByID(ctx context.Context, id string) (*content.TeamMember, error) {
	doc, err := s.store.GetByID(ctx, repository.CollectionTeamMembers, id)
	if err != nil || doc == nil {
		return nil, err
	}
	var m content.TeamMember
	if err := content.Decode(doc, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *TeamService) Create(ctx context.Context, fields content.Fields) (string, error) {
	if err := requireText(fields, "name"); err != nil {
		return "", err
	}
	return s.store.Create(ctx, repository.CollectionTeamMembers, fields)
}

func (s *TeamService) Update(ctx context.Context, id string, fields content.Fields) error {
	if _, ok := fields["name"]; ok {
		if err := requireText(fields, "name"); err != nil {
			return err
		}
	}
	return s.store.Update(ctx, repository.CollectionTeamMembers, id, fields)
}

func (s *TeamService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, repository.CollectionTeamMembers, id)
}
