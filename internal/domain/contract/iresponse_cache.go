package contract

import (
	"github.com/roshan-1001/credence-realtor-sub001/internal/domain/entity"
)

// CachedListingsPage is the cached payload for listing list endpoints.
type CachedListingsPage struct {
	Items []entity.ListingItem `json:"items"`
	Total int                  `json:"total"`
}

// CachedDevelopersPage is the cached payload for the developer list
// endpoint.
type CachedDevelopersPage struct {
	Items []entity.DeveloperItem `json:"items"`
	Total int                    `json:"total"`
}

// IResponseCache defines the keyed response cache. Entries are read-only
// after creation: a Get never mutates or promotes an entry, and an
// expired entry reads as a miss. Set assigns the entry's lifetime from
// the TTL class and may trigger a capacity eviction sweep.
type IResponseCache interface {
	Get(key string) (any, bool)
	Set(key string, payload any, class entity.TTLClass)
}
