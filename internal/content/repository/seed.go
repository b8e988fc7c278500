package repository

import "github.com/leadcore/cms-backend/internal/content"

// seedDocuments returns demo fixtures for a collection. Used only when the
// local backend is opened with seeding enabled; correctness never depends on
// seed content.
func seedDocuments(collection string) []content.Fields {
	now := content.Now()
	switch collection {
	case CollectionCaseStudies:
		return []content.Fields{
			{
				"id":       newID(),
				"slug":     "doubling-pipeline",
				"title":    "Doubling Pipeline with LinkedIn",
				"subtitle": "SaaS Company",
				"excerpt":  "How we scaled targeted outreach",
				"industry": "SaaS",
				"problem":  "Low qualified lead volume",
				"solution": "Multi-channel LinkedIn automation",
				"results":  "Pipeline grew 180% in 8 weeks",
				"metrics": []content.Fields{
					{"label": "Pipeline growth", "value": "+180%"},
				},
				"servicesProvided": []string{"LinkedIn Lead Generation"},
				"status":           content.StatusPublished,
				"publishedAt":      now,
				"order":            1,
				"createdAt":        now,
				"updatedAt":        now,
			},
		}
	case CollectionPricingPlans:
		return []content.Fields{
			{
				"id":          newID(),
				"name":        "Growth",
				"price":       "2400",
				"period":      "month",
				"description": "Outbound engine for scaling teams",
				"features":    []string{"Dedicated SDR", "LinkedIn + email sequences", "Weekly reporting"},
				"order":       1,
				"visible":     true,
				"highlighted": true,
				"createdAt":   now,
				"updatedAt":   now,
			},
		}
	default:
		return []content.Fields{}
	}
}
