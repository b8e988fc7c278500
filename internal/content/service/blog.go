package service

import (
	"context"

	"github.com/leadcore/cms-backend/internal/content"
	"github.com/leadcore/cms-backend/internal/content/repository"
)

// BlogService is the typed facade over the blogs collection.
type BlogService struct {
	store repository.Store
}

func NewBlogService(store repository.Store) *BlogService {
	return &BlogService{store: store}
}

// GetPublished returns published posts, newest publication first.
func (s *BlogService) GetPublished(ctx context.Context) ([]content.Blog, error) {
	docs, err := s.store.GetPublished(ctx, repository.CollectionBlogs)
	if err != nil {
		return nil, err
	}
	return content.DecodeAll[content.Blog](docs)
}

// GetAll returns every post for the admin listing, newest created first.
func (s *BlogService) GetAll(ctx context.Context) ([]content.Blog, error) {
	docs, err := s.store.GetAll(ctx, repository.CollectionBlogs)
	if err != nil {
		return nil, err
	}
	repository.SortByCreatedAtDesc(docs)
	return content.DecodeAll[content.Blog](docs)
}

func (s *BlogService) GetByID(ctx context.Context, id string) (*content.Blog, error) {
	doc, err := s.store.GetByID(ctx, repository.CollectionBlogs, id)
	if err != nil || doc == nil {
		return nil, err
	}
	var b content.Blog
	if err := content.Decode(doc, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*content.Blog, error) {
	doc, err := s.store.GetBySlug(ctx, repository.CollectionBlogs, slug)
	if err != nil || doc == nil {
		return nil, err
	}
	var b content.Blog
	if err := content.Decode(doc, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Create validates the post, derives a slug from the title when none was
// supplied, and persists it as a draft unless a status is given.
func (s *BlogService) Create(ctx context.Context, fields content.Fields) (string, error) {
	if err := requireText(fields, "title"); err != nil {
		return "", err
	}
	if err := resolveSlug(ctx, s.store, repository.CollectionBlogs, fields, ""); err != nil {
		return "", err
	}
	if textField(fields, "status") == "" {
		fields["status"] = content.StatusDraft
	}
	return s.store.Create(ctx, repository.CollectionBlogs, fields)
}

func (s *BlogService) Update(ctx context.Context, id string, fields content.Fields) error {
	if _, ok := fields["title"]; ok {
		if err := requireText(fields, "title"); err != nil {
			return err
		}
	}
	if _, ok := fields["slug"]; ok {
		if err := resolveSlug(ctx, s.store, repository.CollectionBlogs, fields, id); err != nil {
			return err
		}
	}
	return s.store.Update(ctx, repository.CollectionBlogs, id, fields)
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, repository.CollectionBlogs, id)
}

// Publish flips the post to published and stamps publishedAt.
func (s *BlogService) Publish(ctx context.Context, id string) error {
	return s.store.Update(ctx, repository.CollectionBlogs, id, content.Fields{
		"status":      content.StatusPublished,
		"publishedAt": content.Now(),
	})
}

// Unpublish reverts the post to draft. publishedAt is kept as a record of the
// last publication; it is re-stamped on the next Publish.
func (s *BlogService) Unpublish(ctx context.Context, id string) error {
	return s.store.Update(ctx, repository.CollectionBlogs, id, content.Fields{
		"status": content.StatusDraft,
	})
}
