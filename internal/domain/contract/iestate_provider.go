package contract

import (
	"context"
	"encoding/json"

	"github.com/roshan-1001/credence-realtor-sub001/internal/domain/entity"
)

// IEstateProvider performs the network calls to the upstream listings
// provider. Every method makes a single attempt: a non-2xx response
// surfaces as *entity.UpstreamError (or entity.ErrNotFound for a 404
// lookup miss), and a network or parse failure surfaces as a plain
// wrapped error.
type IEstateProvider interface {
	// SearchProjects posts the filter body to the project search
	// endpoint and returns the provider's JSON unmodified.
	SearchProjects(ctx context.Context, filter entity.FilterSet) (json.RawMessage, error)
	// FindDevelopers fetches one page of developers plus the total count.
	FindDevelopers(ctx context.Context, page, limit int) ([]entity.DeveloperRecord, int, error)
	// LookupProject fetches a single project by slug, reduced to the
	// detail shape.
	LookupProject(ctx context.Context, slug string) (*entity.ProjectDetail, error)
}
