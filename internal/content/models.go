package content

import (
	"encoding/json"
	"time"
)

// Fields is the loosely-typed document shape the store layer works with.
// Reserved keys (id, createdAt, updatedAt, slug, status, publishedAt, order,
// visible) carry the CMS contract; anything else is opaque payload the store
// passes through unchanged.
type Fields map[string]any

// Document statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// TimeLayout is the fixed-width RFC 3339 form all timestamps use across both
// backends. Fixed fractional digits keep lexicographic order equal to
// chronological order, which the publishedAt sort relies on.
const TimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Now returns the current UTC time in TimeLayout.
func Now() string {
	return time.Now().UTC().Format(TimeLayout)
}

// Base holds the store-managed fields every document carries.
type Base struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Metric is one label/value pair on a case study ("+180%" pipeline growth etc).
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Blog is a post on the marketing site.
type Blog struct {
	Base
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt,omitempty"`
	Content     string   `json:"content,omitempty"`
	Author      string   `json:"author,omitempty"`
	CoverImage  string   `json:"coverImage,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Status      string   `json:"status"`
	PublishedAt string   `json:"publishedAt,omitempty"`
}

// CaseStudy is a client success story.
type CaseStudy struct {
	Base
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	Subtitle         string   `json:"subtitle,omitempty"`
	Excerpt          string   `json:"excerpt,omitempty"`
	Image            string   `json:"image,omitempty"`
	Industry         string   `json:"industry,omitempty"`
	Problem          string   `json:"problem,omitempty"`
	Solution         string   `json:"solution,omitempty"`
	Results          string   `json:"results,omitempty"`
	Metrics          []Metric `json:"metrics,omitempty"`
	ServicesProvided []string `json:"servicesProvided,omitempty"`
	Status           string   `json:"status"`
	Order            int      `json:"order"`
	PublishedAt      string   `json:"publishedAt,omitempty"`
}

// PricingPlan is one column of the pricing table.
type PricingPlan struct {
	Base
	Name        string   `json:"name"`
	Price       string   `json:"price,omitempty"`
	Period      string   `json:"period,omitempty"`
	Description string   `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`
	Order       int      `json:"order"`
	Visible     bool     `json:"visible"`
	Highlighted bool     `json:"highlighted"`
}

// TeamMember appears on the about page.
type TeamMember struct {
	Base
	Name    string `json:"name"`
	Role    string `json:"role,omitempty"`
	Bio     string `json:"bio,omitempty"`
	Image   string `json:"image,omitempty"`
	Order   int    `json:"order"`
	Visible bool   `json:"visible"`
}

// ContactMethod is one entry on the contact page (email, phone, calendar link).
type ContactMethod struct {
	Base
	Label   string `json:"label"`
	Value   string `json:"value,omitempty"`
	Icon    string `json:"icon,omitempty"`
	Order   int    `json:"order"`
	Visible bool   `json:"visible"`
}

// Decode maps a raw document onto a typed entity via a JSON round trip.
// Payload keys without a matching struct field are dropped from the typed
// view but remain in the stored document.
func Decode(f Fields, v any) error {
	b, err := json.Marshal(f)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// DecodeAll maps a slice of raw documents onto typed entities.
func DecodeAll[T any](list []Fields) ([]T, error) {
	out := make([]T, 0, len(list))
	for _, f := range list {
		var v T
		if err := Decode(f, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
