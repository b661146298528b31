package contract

import (
	"context"

	"github.com/roshan-1001/credence-realtor-sub001/internal/domain/entity"
)

// IListingDataset evaluates canonical filters against the bundled static
// snapshot when no live upstream is configured.
type IListingDataset interface {
	// Query returns the page slice for the filter plus the total match
	// count before pagination. An out-of-range page yields an empty
	// slice with the correct total, not an error.
	Query(ctx context.Context, filter entity.FilterSet) ([]entity.ProjectRecord, int, error)
	// GetBySlug returns the record with the given slug, or
	// entity.ErrNotFound.
	GetBySlug(ctx context.Context, slug string) (*entity.ProjectRecord, error)
}
