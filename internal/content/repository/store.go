package repository

import (
	"context"
	"sort"

	"github.com/leadcore/cms-backend/internal/content"
)

// CMS collection names. The store itself is collection-agnostic; these are
// the buckets the domain services bind to.
const (
	CollectionBlogs          = "blogs"
	CollectionCaseStudies    = "caseStudies"
	CollectionPricingPlans   = "pricingPlans"
	CollectionTeamMembers    = "teamMembers"
	CollectionContactMethods = "contactMethods"
)

// Collections lists every CMS bucket, in the order backends initialize them.
var Collections = []string{
	CollectionBlogs,
	CollectionCaseStudies,
	CollectionPricingPlans,
	CollectionTeamMembers,
	CollectionContactMethods,
}

// Store is the generic content-store contract both backends implement.
// Point lookups report absence as (nil, nil); only Update treats a missing
// id as an error. Delete is idempotent.
type Store interface {
	GetAll(ctx context.Context, collection string) ([]content.Fields, error)
	GetByID(ctx context.Context, collection, id string) (content.Fields, error)
	GetBySlug(ctx context.Context, collection, slug string) (content.Fields, error)
	Create(ctx context.Context, collection string, fields content.Fields) (string, error)
	Update(ctx context.Context, collection, id string, fields content.Fields) error
	Delete(ctx context.Context, collection, id string) error

	// GetPublished returns status=="published" documents, publishedAt descending.
	GetPublished(ctx context.Context, collection string) ([]content.Fields, error)
	// GetVisible returns visible==true documents, order ascending, stable ties.
	GetVisible(ctx context.Context, collection string) ([]content.Fields, error)
}

// fieldString reads a string-valued field, tolerating absence.
func fieldString(f content.Fields, key string) string {
	s, _ := f[key].(string)
	return s
}

// fieldInt reads an integer field. JSON deserialization yields float64, so
// both numeric shapes are accepted.
func fieldInt(f content.Fields, key string) int {
	switch v := f[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func fieldBool(f content.Fields, key string) bool {
	b, _ := f[key].(bool)
	return b
}

// SortByOrder sorts documents by their order field ascending, keeping
// insertion order for ties.
func SortByOrder(list []content.Fields) {
	sort.SliceStable(list, func(i, j int) bool {
		return fieldInt(list[i], "order") < fieldInt(list[j], "order")
	})
}

// SortByPublishedAtDesc sorts documents newest-published first. Timestamps
// use the fixed-width layout, so string comparison is chronological.
func SortByPublishedAtDesc(list []content.Fields) {
	sort.SliceStable(list, func(i, j int) bool {
		return fieldString(list[i], "publishedAt") > fieldString(list[j], "publishedAt")
	})
}

// SortByCreatedAtDesc sorts documents newest-created first.
func SortByCreatedAtDesc(list []content.Fields) {
	sort.SliceStable(list, func(i, j int) bool {
		return fieldString(list[i], "createdAt") > fieldString(list[j], "createdAt")
	})
}
