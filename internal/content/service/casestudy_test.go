package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leadcore/cms-backend/internal/content"
)

func TestCaseStudyOrdering(t *testing.T) {
	svc := NewCaseStudyService(newTestStore(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, content.Fields{"title": "Later", "order": 2})
	require.NoError(t, err)
	_, err = svc.Create(ctx, content.Fields{"title": "Earlier", "order": 1})
	require.NoError(t, err)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "Earlier", all[0].Title)
	require.Equal(t, "Later", all[1].Title)
}

func TestCaseStudyPublishedSortedByOrder(t *testing.T) {
	svc := NewCaseStudyService(newTestStore(t))
	ctx := context.Background()

	a, err := svc.Create(ctx, content.Fields{"title": "Third Slot", "order": 3})
	require.NoError(t, err)
	b, err := svc.Create(ctx, content.Fields{"title": "First Slot", "order": 1})
	require.NoError(t, err)
	_, err = svc.Create(ctx, content.Fields{"title": "Draft Slot", "order": 2})
	require.NoError(t, err)

	// publish in reverse display order so publishedAt ordering would differ
	require.NoError(t, svc.Publish(ctx, a))
	require.NoError(t, svc.Publish(ctx, b))

	pub, err := svc.GetPublished(ctx)
	require.NoError(t, err)
	require.Len(t, pub, 2)
	require.Equal(t, "First Slot", pub[0].Title)
	require.Equal(t, "Third Slot", pub[1].Title)
}

func TestCaseStudyPayloadRoundTrip(t *testing.T) {
	svc := NewCaseStudyService(newTestStore(t))
	ctx := context.Background()

	id, err := svc.Create(ctx, content.Fields{
		"title":    "Doubling Pipeline with LinkedIn",
		"subtitle": "SaaS Company",
		"industry": "SaaS",
		"metrics": []content.Fields{
			{"label": "Pipeline growth", "value": "+180%"},
			{"label": "Meetings booked", "value": "42"},
		},
		"servicesProvided": []string{"LinkedIn Lead Generation", "Email Outreach"},
		"order":            1,
	})
	require.NoError(t, err)

	cs, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, cs)
	require.Equal(t, "doubling-pipeline-with-linkedin", cs.Slug)
	require.Len(t, cs.Metrics, 2)
	require.Equal(t, "Pipeline growth", cs.Metrics[0].Label)
	require.Equal(t, "+180%", cs.Metrics[0].Value)
	require.Equal(t, []string{"LinkedIn Lead Generation", "Email Outreach"}, cs.ServicesProvided)
}

func TestCaseStudySlugSelfExclusion(t *testing.T) {
	svc := NewCaseStudyService(newTestStore(t))
	ctx := context.Background()

	id, err := svc.Create(ctx, content.Fields{"title": "Repeat Winner"})
	require.NoError(t, err)

	// re-saving the same slug on the same document is not a collision
	require.NoError(t, svc.Update(ctx, id, content.Fields{"slug": "repeat-winner", "results": "updated"}))

	var uerr *content.UniquenessError
	_, err = svc.Create(ctx, content.Fields{"title": "Repeat Winner"})
	require.ErrorAs(t, err, &uerr)
}
