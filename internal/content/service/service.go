// Package service holds the typed facades over the generic content store,
// one per entity kind. Validation and slug uniqueness live here; the store
// underneath is schema-agnostic.
package service

import (
	"context"
	"strings"

	"github.com/leadcore/cms-backend/internal/content"
	"github.com/leadcore/cms-backend/internal/content/repository"
)

// IsSlugUnique reports whether no document in the collection carries the
// slug, except possibly the one identified by excludeID (self-exclusion when
// editing). Exact, case-sensitive comparison.
func IsSlugUnique(ctx context.Context, store repository.Store, collection, slug, excludeID string) (bool, error) {
	docs, err := store.GetAll(ctx, collection)
	if err != nil {
		return false, err
	}
	for _, d := range docs {
		if s, _ := d["slug"].(string); s == slug {
			if id, _ := d["id"].(string); id != excludeID {
				return false, nil
			}
		}
	}
	return true, nil
}

func textField(f content.Fields, key string) string {
	s, _ := f[key].(string)
	return strings.TrimSpace(s)
}

// requireText rejects a missing or blank required field.
func requireText(f content.Fields, key string) error {
	if textField(f, key) == "" {
		return &content.ValidationError{Field: key, Reason: "required"}
	}
	return nil
}

// resolveSlug fills in a missing slug from the title, then enforces
// uniqueness within the collection. excludeID is empty on create.
func resolveSlug(ctx context.Context, store repository.Store, collection string, f content.Fields, excludeID string) error {
	slug := textField(f, "slug")
	if slug == "" {
		slug = content.GenerateSlug(textField(f, "title"))
	}
	if slug == "" {
		return &content.ValidationError{Field: "slug", Reason: "empty after normalization"}
	}
	ok, err := IsSlugUnique(ctx, store, collection, slug, excludeID)
	if err != nil {
		return err
	}
	if !ok {
		return &content.UniquenessError{Collection: collection, Slug: slug}
	}
	f["slug"] = slug
	return nil
}
