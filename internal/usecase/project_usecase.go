package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/roshan-1001/credence-realtor-sub001/internal/domain/contract"
	"github.com/roshan-1001/credence-realtor-sub001/internal/domain/entity"
	"github.com/roshan-1001/credence-realtor-sub001/internal/infrastructure/metrics"
	usecasecontract "github.com/roshan-1001/credence-realtor-sub001/internal/usecase/contract"
)

// IProjectUseCase defines the upstream-backed operations.
type IProjectUseCase interface {
	SearchProjects(ctx context.Context, filter entity.FilterSet) (json.RawMessage, error)
	GetProjectDetail(ctx context.Context, slug string) (*entity.ProjectDetail, error)
	GetDevelopers(ctx context.Context, page, limit, minProjects int) ([]entity.DeveloperItem, entity.PaginationBlock, error)
}

// ProjectUseCaseImpl serves upstream queries cache-first. Fetches run
// outside any cache lock: the store is only touched to read before the
// call and to insert after a success. Upstream and transport failures
// are surfaced to the caller and never written into the cache, so a
// failure cannot be frozen for the TTL window.
type ProjectUseCaseImpl struct {
	provider  contract.IEstateProvider
	validator usecasecontract.IValidator
	logger    usecasecontract.IAppLogger
	cache     contract.IResponseCache
	// simple metrics
	searchHits uint64
	searchMiss uint64
	detailHits uint64
	detailMiss uint64
}

// NewProjectUseCase creates a new instance of ProjectUseCase.
func NewProjectUseCase(provider contract.IEstateProvider, validator usecasecontract.IValidator, logger usecasecontract.IAppLogger) *ProjectUseCaseImpl {
	return &ProjectUseCaseImpl{
		provider:  provider,
		validator: validator,
		logger:    logger,
	}
}

// check if ProjectUseCaseImpl implements the IProjectUseCase
var _ IProjectUseCase = (*ProjectUseCaseImpl)(nil)

// SetResponseCache injects the response cache.
func (uc *ProjectUseCaseImpl) SetResponseCache(cache contract.IResponseCache) {
	uc.cache = cache
}

// CacheStats returns the search hit and miss counters.
func (uc *ProjectUseCaseImpl) CacheStats() (hits, misses uint64) {
	return atomic.LoadUint64(&uc.searchHits), atomic.LoadUint64(&uc.searchMiss)
}

// SearchProjects proxies the provider's project search. The upstream
// JSON is passed through unmodified except for response wrapping.
func (uc *ProjectUseCaseImpl) SearchProjects(ctx context.Context, filter entity.FilterSet) (json.RawMessage, error) {
	key := filter.CacheKey("projects")

	if uc.cache != nil {
		t0 := time.Now()
		cached, found := uc.cache.Get(key)
		elapsed := time.Since(t0)
		if found {
			if raw, ok := cached.(json.RawMessage); ok {
				atomic.AddUint64(&uc.searchHits, 1)
				go metrics.IncListHit()
				go metrics.AddHitDuration(elapsed.Seconds())
				if uc.logger != nil {
					uc.logger.Infof("cache hit: project search key=%s took=%s", key, elapsed)
				}
				return raw, nil
			}
		}
		atomic.AddUint64(&uc.searchMiss, 1)
		go metrics.IncListMiss()
		go metrics.AddMissDuration(elapsed.Seconds())
	}

	raw, err := uc.provider.SearchProjects(ctx, filter)
	if err != nil {
		uc.logger.Errorf("project search failed: %v", err)
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Set(key, raw, filter.Class())
	}
	return raw, nil
}

// GetProjectDetail fetches a single project by slug, reduced to the
// detail shape. Slug-specific payloads churn like filtered search
// results, so they take the short TTL class.
func (uc *ProjectUseCaseImpl) GetProjectDetail(ctx context.Context, slug string) (*entity.ProjectDetail, error) {
	if err := uc.validator.ValidateSlug(slug); err != nil {
		return nil, err
	}
	key := fmt.Sprintf("project:slug=%s", slug)

	if uc.cache != nil {
		t0 := time.Now()
		cached, found := uc.cache.Get(key)
		elapsed := time.Since(t0)
		if found {
			if detail, ok := cached.(*entity.ProjectDetail); ok {
				atomic.AddUint64(&uc.detailHits, 1)
				go metrics.IncDetailHit()
				go metrics.AddHitDuration(elapsed.Seconds())
				if uc.logger != nil {
					uc.logger.Infof("cache hit: project detail slug=%s took=%s", slug, elapsed)
				}
				return detail, nil
			}
		}
		atomic.AddUint64(&uc.detailMiss, 1)
		go metrics.IncDetailMiss()
		go metrics.AddMissDuration(elapsed.Seconds())
	}

	detail, err := uc.provider.LookupProject(ctx, slug)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Set(key, detail, entity.TTLFiltered)
	}
	return detail, nil
}

// GetDevelopers fetches one page of developers, optionally keeping only
// those at or above the minProjects threshold.
func (uc *ProjectUseCaseImpl) GetDevelopers(ctx context.Context, page, limit, minProjects int) ([]entity.DeveloperItem, entity.PaginationBlock, error) {
	key := fmt.Sprintf("developers:p=%d:s=%d:min=%d", page, limit, minProjects)
	class := entity.TTLGeneral
	if minProjects > 0 {
		class = entity.TTLFiltered
	}

	if uc.cache != nil {
		cached, found := uc.cache.Get(key)
		if found {
			if devPage, ok := cached.(*contract.CachedDevelopersPage); ok {
				atomic.AddUint64(&uc.searchHits, 1)
				go metrics.IncListHit()
				return devPage.Items, entity.NewPaginationBlock(page, limit, devPage.Total), nil
			}
		}
		atomic.AddUint64(&uc.searchMiss, 1)
		go metrics.IncListMiss()
	}

	records, total, err := uc.provider.FindDevelopers(ctx, page, limit)
	if err != nil {
		uc.logger.Errorf("developer list failed: %v", err)
		return nil, entity.PaginationBlock{}, err
	}

	items := make([]entity.DeveloperItem, 0, len(records))
	for _, rec := range records {
		item := toDeveloperItem(rec)
		if minProjects > 0 && item.ProjectCount < minProjects {
			continue
		}
		items = append(items, item)
	}

	if uc.cache != nil {
		uc.cache.Set(key, &contract.CachedDevelopersPage{Items: items, Total: total}, class)
	}
	return items, entity.NewPaginationBlock(page, limit, total), nil
}
