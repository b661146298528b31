package entity

import (
	"encoding/json"
)

// ProjectRecord is the raw listing shape as delivered by the provider and
// as stored in the bundled static snapshot.
type ProjectRecord struct {
	ID         string          `json:"id"`
	Slug       string          `json:"slug"`
	Title      string          `json:"title"`
	Type       string          `json:"type"`
	PriceFrom  float64         `json:"price_from"`
	PriceTo    float64         `json:"price_to"`
	Cover      string          `json:"cover"`
	Logo       string          `json:"logo"`
	Photos     []string        `json:"photos"`
	Location   string          `json:"location"`
	Locality   string          `json:"locality"`
	City       string          `json:"city"`
	Developer  string          `json:"developer"`
	ReadyDate  string          `json:"ready_date"`
	Statistics json.RawMessage `json:"statistics,omitempty"`
}

// EffectivePrice resolves the price used by the filter predicates:
// price_from if present, else price_to, else 0. A record with only an
// upper bound is treated as if that bound is its only known price.
func (r ProjectRecord) EffectivePrice() float64 {
	if r.PriceFrom > 0 {
		return r.PriceFrom
	}
	if r.PriceTo > 0 {
		return r.PriceTo
	}
	return 0
}

// ListingItem is the normalized listing shape returned to clients.
// It is derived per request and never persisted.
type ListingItem struct {
	ID         string          `json:"id"`
	Slug       string          `json:"slug"`
	Title      string          `json:"title"`
	Type       string          `json:"type"`
	Price      float64         `json:"price"`
	MinPrice   float64         `json:"minPrice"`
	MaxPrice   float64         `json:"maxPrice"`
	MainImage  string          `json:"mainImage"`
	Gallery    []string        `json:"gallery"`
	Location   string          `json:"location"`
	Locality   string          `json:"locality"`
	City       string          `json:"city"`
	Developer  string          `json:"developer"`
	ReadyDate  string          `json:"readyDate"`
	Statistics json.RawMessage `json:"statistics,omitempty"`
}

// DeveloperRecord is the raw developer shape from the provider's
// developer/find endpoint.
type DeveloperRecord struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	CompanyTitle  string `json:"company_title"`
	CompanyLogo   string `json:"company_logo"`
	ProjectsCount int    `json:"projects_count"`
	Logo          string `json:"logo"`
}

// DeveloperCompany nests the company block of a normalized developer.
type DeveloperCompany struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// DeveloperItem is the normalized developer shape returned to clients.
type DeveloperItem struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Company      DeveloperCompany `json:"company"`
	ProjectCount int              `json:"project_count"`
	Logo         string           `json:"logo"`
}

// ProjectDetail is the reduced single-project shape returned from the
// provider's project/look endpoint. Fields the provider sends beyond
// these are intentionally dropped.
type ProjectDetail struct {
	Description                string          `json:"description"`
	PlannedAt                  string          `json:"planned_at"`
	ConstructionInspectionDate string          `json:"construction_inspection_date"`
	Statistics                 json.RawMessage `json:"statistics,omitempty"`
	Cover                      string          `json:"cover"`
	Galleries                  json.RawMessage `json:"galleries,omitempty"`
}

// PaginationBlock describes the page window of a list response.
type PaginationBlock struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPaginationBlock computes totalPages = ceil(total/limit). Page may
// exceed TotalPages; callers then receive an empty slice, not an error.
func NewPaginationBlock(page, limit, total int) PaginationBlock {
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return PaginationBlock{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
