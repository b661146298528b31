package staticdata

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/roshan-1001/credence-realtor-sub001/internal/domain/contract"
	"github.com/roshan-1001/credence-realtor-sub001/internal/domain/entity"
)

//go:embed listings.json
var listingsJSON []byte

// ListingRepository evaluates canonical filters against the bundled
// snapshot with a linear scan. The snapshot is read once at startup and
// never mutated.
type ListingRepository struct {
	records []entity.ProjectRecord
}

// NewListingRepository loads the embedded snapshot.
func NewListingRepository() (*ListingRepository, error) {
	var records []entity.ProjectRecord
	if err := json.Unmarshal(listingsJSON, &records); err != nil {
		return nil, fmt.Errorf("failed to load static listings dataset: %w", err)
	}
	return &ListingRepository{records: records}, nil
}

// NewListingRepositoryFromRecords builds a repository over the given
// records instead of the embedded snapshot.
func NewListingRepositoryFromRecords(records []entity.ProjectRecord) *ListingRepository {
	return &ListingRepository{records: records}
}

// make sure ListingRepository implements contract.IListingDataset
var _ contract.IListingDataset = (*ListingRepository)(nil)

// Query applies the filter predicates in sequence, each narrowing the
// working set. The predicates are conjunctive, so order does not affect
// the result set. Pagination slices the filtered set; an out-of-range
// page yields an empty slice with the correct total.
func (r *ListingRepository) Query(ctx context.Context, filter entity.FilterSet) ([]entity.ProjectRecord, int, error) {
	working := r.records

	if filter.Locality != "" {
		working = filterRecords(working, func(rec entity.ProjectRecord) bool {
			return strings.Contains(strings.ToLower(rec.Locality), filter.Locality)
		})
	}
	if filter.Search != "" {
		working = filterRecords(working, func(rec entity.ProjectRecord) bool {
			return strings.Contains(strings.ToLower(rec.Title), filter.Search) ||
				strings.Contains(strings.ToLower(rec.Developer), filter.Search) ||
				strings.Contains(strings.ToLower(rec.Locality), filter.Search)
		})
	}
	if filter.Developer != "" {
		working = filterRecords(working, func(rec entity.ProjectRecord) bool {
			return strings.Contains(strings.ToLower(rec.Developer), filter.Developer)
		})
	}
	if filter.MinPrice > 0 {
		working = filterRecords(working, func(rec entity.ProjectRecord) bool {
			return rec.EffectivePrice() >= filter.MinPrice
		})
	}
	if filter.MaxPrice > 0 {
		working = filterRecords(working, func(rec entity.ProjectRecord) bool {
			return rec.EffectivePrice() <= filter.MaxPrice
		})
	}

	total := len(working)
	start := (filter.Page - 1) * filter.Limit
	if start >= total {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}
	return working[start:end], total, nil
}

// GetBySlug returns the record with the given slug, or entity.ErrNotFound.
func (r *ListingRepository) GetBySlug(ctx context.Context, slug string) (*entity.ProjectRecord, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for i := range r.records {
		if strings.ToLower(r.records[i].Slug) == slug {
			rec := r.records[i]
			return &rec, nil
		}
	}
	return nil, entity.ErrNotFound
}

func filterRecords(records []entity.ProjectRecord, keep func(entity.ProjectRecord) bool) []entity.ProjectRecord {
	var out []entity.ProjectRecord
	for _, rec := range records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}
