package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roshan-1001/credence-realtor-sub001/internal/domain/entity"
	"github.com/roshan-1001/credence-realtor-sub001/internal/infrastructure/logger"
	"github.com/roshan-1001/credence-realtor-sub001/internal/infrastructure/store"
	"github.com/roshan-1001/credence-realtor-sub001/internal/usecase"
)

// fakeProvider counts upstream calls and can be switched to fail.
type fakeProvider struct {
	searchCalls int
	lookupCalls int
	failWith    error

	searchBody json.RawMessage
	detail     entity.ProjectDetail
	developers []entity.DeveloperRecord
	total      int
}

func (f *fakeProvider) SearchProjects(ctx context.Context, filter entity.FilterSet) (json.RawMessage, error) {
	f.searchCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.searchBody, nil
}

func (f *fakeProvider) FindDevelopers(ctx context.Context, page, limit int) ([]entity.DeveloperRecord, int, error) {
	if f.failWith != nil {
		return nil, 0, f.failWith
	}
	return f.developers, f.total, nil
}

func (f *fakeProvider) LookupProject(ctx context.Context, slug string) (*entity.ProjectDetail, error) {
	f.lookupCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	return &f.detail, nil
}

// fakeValidator accepts any non-empty slug.
type fakeValidator struct{}

func (fakeValidator) ValidateSlug(slug string) error {
	if slug == "" {
		return &entity.ValidationError{Reason: "slug is required"}
	}
	return nil
}

func newProjectUsecase(provider *fakeProvider) *usecase.ProjectUseCaseImpl {
	uc := usecase.NewProjectUseCase(provider, fakeValidator{}, logger.NewStdLogger())
	uc.SetResponseCache(store.NewMemoryStore(50))
	return uc
}

func upstreamFilter(raw entity.RawFilter) entity.FilterSet {
	return entity.NewFilterSet(raw, entity.DefaultUpstreamLimit)
}

func TestSearchProjectsPassesThroughAndCaches(t *testing.T) {
	provider := &fakeProvider{searchBody: json.RawMessage(`{"projects":[],"total":0}`)}
	uc := newProjectUsecase(provider)
	filter := upstreamFilter(entity.RawFilter{Search: "marina"})

	first, err := uc.SearchProjects(context.Background(), filter)
	assert.NoError(t, err)
	assert.Equal(t, provider.searchBody, first)

	second, err := uc.SearchProjects(context.Background(), filter)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.searchCalls, "second identical request must be served from cache")
}

func TestSearchProjectsUpstreamErrorIsNotCached(t *testing.T) {
	provider := &fakeProvider{failWith: &entity.UpstreamError{Status: http.StatusServiceUnavailable, Body: `{"error":"maintenance"}`}}
	uc := newProjectUsecase(provider)
	filter := upstreamFilter(entity.RawFilter{})

	_, err := uc.SearchProjects(context.Background(), filter)
	var upstreamErr *entity.UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusServiceUnavailable, upstreamErr.Status)

	// No negative caching: the retry goes back upstream.
	_, err = uc.SearchProjects(context.Background(), filter)
	assert.Error(t, err)
	assert.Equal(t, 2, provider.searchCalls)
}

func TestGetProjectDetailCachesReducedShape(t *testing.T) {
	provider := &fakeProvider{detail: entity.ProjectDetail{Description: "waterfront tower", PlannedAt: "2026-12"}}
	uc := newProjectUsecase(provider)

	first, err := uc.GetProjectDetail(context.Background(), "marina-one")
	assert.NoError(t, err)
	assert.Equal(t, "waterfront tower", first.Description)

	second, err := uc.GetProjectDetail(context.Background(), "marina-one")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.lookupCalls)
}

func TestGetProjectDetailNotFoundPassesThrough(t *testing.T) {
	provider := &fakeProvider{failWith: entity.ErrNotFound}
	uc := newProjectUsecase(provider)

	_, err := uc.GetProjectDetail(context.Background(), "ghost-tower")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestGetProjectDetailValidatesSlug(t *testing.T) {
	provider := &fakeProvider{}
	uc := newProjectUsecase(provider)

	_, err := uc.GetProjectDetail(context.Background(), "")
	var validationErr *entity.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 0, provider.lookupCalls)
}

func TestGetDevelopersThresholdFilter(t *testing.T) {
	provider := &fakeProvider{
		developers: []entity.DeveloperRecord{
			{ID: "d1", Title: "Emaar Properties", CompanyTitle: "Emaar Holding", ProjectsCount: 42},
			{ID: "d2", Title: "Small Shop", CompanyTitle: "Small Shop LLC", ProjectsCount: 2},
		},
		total: 2,
	}
	uc := newProjectUsecase(provider)

	items, pagination, err := uc.GetDevelopers(context.Background(), 1, 20, 10)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Emaar Properties", items[0].Name)
	assert.Equal(t, "Emaar Holding", items[0].Company.Name)
	assert.Equal(t, 2, pagination.Total)
}

func TestGetDevelopersNoThresholdKeepsAll(t *testing.T) {
	provider := &fakeProvider{
		developers: []entity.DeveloperRecord{
			{ID: "d1", Title: "Emaar Properties", ProjectsCount: 42},
			{ID: "d2", Title: "Small Shop", ProjectsCount: 2},
		},
		total: 2,
	}
	uc := newProjectUsecase(provider)

	items, _, err := uc.GetDevelopers(context.Background(), 1, 20, 0)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
}
