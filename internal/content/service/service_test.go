package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leadcore/cms-backend/internal/content"
	"github.com/leadcore/cms-backend/internal/content/repository"
)

func TestIsSlugUnique(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, repository.CollectionBlogs, content.Fields{"title": "Taken", "slug": "taken"})
	require.NoError(t, err)

	ok, err := IsSlugUnique(ctx, store, repository.CollectionBlogs, "free", "")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = IsSlugUnique(ctx, store, repository.CollectionBlogs, "taken", "")
	require.NoError(t, err)
	require.False(t, ok)

	// case-sensitive, exact match only
	ok, err = IsSlugUnique(ctx, store, repository.CollectionBlogs, "Taken", "")
	require.NoError(t, err)
	require.True(t, ok)

	// the colliding document itself is excluded when editing
	ok, err = IsSlugUnique(ctx, store, repository.CollectionBlogs, "taken", id)
	require.NoError(t, err)
	require.True(t, ok)

	// slugs are scoped per collection
	ok, err = IsSlugUnique(ctx, store, repository.CollectionCaseStudies, "taken", "")
	require.NoError(t, err)
	require.True(t, ok)
}
