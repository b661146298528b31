package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/roshan-1001/credence-realtor-sub001/internal/domain/contract"
	"github.com/roshan-1001/credence-realtor-sub001/internal/domain/entity"
	"github.com/roshan-1001/credence-realtor-sub001/internal/infrastructure/metrics"
	usecasecontract "github.com/roshan-1001/credence-realtor-sub001/internal/usecase/contract"
)

// IListingUseCase defines the static-dataset listing operations.
type IListingUseCase interface {
	GetListings(ctx context.Context, filter entity.FilterSet) ([]entity.ListingItem, entity.PaginationBlock, error)
	GetListingBySlug(ctx context.Context, slug string) (*entity.ListingItem, error)
}

// ListingUseCaseImpl serves listing queries from the response cache,
// falling back to a scan of the static dataset on a miss.
type ListingUseCaseImpl struct {
	dataset contract.IListingDataset
	logger  usecasecontract.IAppLogger
	cache   contract.IResponseCache
	// simple metrics
	listHits uint64
	listMiss uint64
}

// NewListingUseCase creates a new instance of ListingUseCase.
func NewListingUseCase(dataset contract.IListingDataset, logger usecasecontract.IAppLogger) *ListingUseCaseImpl {
	return &ListingUseCaseImpl{
		dataset: dataset,
		logger:  logger,
	}
}

// check if ListingUseCaseImpl implements the IListingUseCase
var _ IListingUseCase = (*ListingUseCaseImpl)(nil)

// SetResponseCache injects the response cache; without it every request
// scans the dataset.
func (uc *ListingUseCaseImpl) SetResponseCache(cache contract.IResponseCache) {
	uc.cache = cache
}

// CacheStats returns the hit and miss counters.
func (uc *ListingUseCaseImpl) CacheStats() (hits, misses uint64) {
	return atomic.LoadUint64(&uc.listHits), atomic.LoadUint64(&uc.listMiss)
}

// GetListings retrieves a filtered, paginated page of listings.
func (uc *ListingUseCaseImpl) GetListings(ctx context.Context, filter entity.FilterSet) ([]entity.ListingItem, entity.PaginationBlock, error) {
	key := filter.CacheKey("listings")

	if uc.cache != nil {
		t0 := time.Now()
		cached, found := uc.cache.Get(key)
		elapsed := time.Since(t0)
		if found {
			if page, ok := cached.(*contract.CachedListingsPage); ok {
				atomic.AddUint64(&uc.listHits, 1)
				go metrics.IncListHit()
				go metrics.AddHitDuration(elapsed.Seconds())
				if uc.logger != nil {
					uc.logger.Infof("cache hit: listings key=%s took=%s", key, elapsed)
				}
				return page.Items, entity.NewPaginationBlock(filter.Page, filter.Limit, page.Total), nil
			}
		}
		atomic.AddUint64(&uc.listMiss, 1)
		go metrics.IncListMiss()
		go metrics.AddMissDuration(elapsed.Seconds())
		if uc.logger != nil {
			uc.logger.Infof("cache miss: listings key=%s took=%s", key, elapsed)
		}
	}

	scanStart := time.Now()
	records, total, err := uc.dataset.Query(ctx, filter)
	if err != nil {
		uc.logger.Errorf("failed to query listings dataset: %v", err)
		return nil, entity.PaginationBlock{}, fmt.Errorf("failed to query listings: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Infof("dataset scan: listings page=%d limit=%d took=%s", filter.Page, filter.Limit, time.Since(scanStart))
	}

	items := make([]entity.ListingItem, 0, len(records))
	for _, rec := range records {
		items = append(items, toListingItem(rec))
	}

	// The cache stores the assembled items, not raw records, so that
	// transform changes never require separate invalidation.
	if uc.cache != nil {
		uc.cache.Set(key, &contract.CachedListingsPage{Items: items, Total: total}, filter.Class())
		if uc.logger != nil {
			uc.logger.Infof("cache set: listings key=%s size=%d ttl=%s", key, len(items), filter.Class().TTL())
		}
	}

	return items, entity.NewPaginationBlock(filter.Page, filter.Limit, total), nil
}

// GetListingBySlug retrieves a single listing from the static dataset.
func (uc *ListingUseCaseImpl) GetListingBySlug(ctx context.Context, slug string) (*entity.ListingItem, error) {
	if slug == "" {
		return nil, &entity.ValidationError{Reason: "slug is required"}
	}

	rec, err := uc.dataset.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	item := toListingItem(*rec)
	return &item, nil
}
