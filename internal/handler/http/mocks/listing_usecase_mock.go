package mocks

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/roshan-1001/credence-realtor-sub001/internal/domain/entity"
	"github.com/roshan-1001/credence-realtor-sub001/internal/usecase"
)

// MockListingUsecase is a mock implementation of the IListingUseCase interface
type MockListingUsecase struct {
	// Control mock behavior
	ShouldFailGetListings bool
	ShouldReturnNotFound  bool

	// Return values
	MockItems      []entity.ListingItem
	MockPagination entity.PaginationBlock
}

// Ensure MockListingUsecase implements the correct interface for handler.NewListingHandler
var _ usecase.IListingUseCase = (*MockListingUsecase)(nil)

func NewMockListingUsecase() *MockListingUsecase {
	return &MockListingUsecase{
		MockItems: []entity.ListingItem{
			{
				ID:        "prj-1",
				Slug:      "mock-residences",
				Title:     "Mock Residences",
				Type:      "apartment",
				Price:     750000,
				MinPrice:  750000,
				MaxPrice:  1250000,
				MainImage: "https://example.com/cover.jpg",
				Gallery:   []string{"https://example.com/1.jpg"},
				Locality:  "dubai marina",
				City:      "dubai",
				Developer: "mock developer",
				ReadyDate: "Q3 2026",
			},
		},
		MockPagination: entity.PaginationBlock{Page: 1, Limit: 9, Total: 1, TotalPages: 1},
	}
}

func (m *MockListingUsecase) GetListings(ctx context.Context, filter entity.FilterSet) ([]entity.ListingItem, entity.PaginationBlock, error) {
	if m.ShouldFailGetListings {
		return nil, entity.PaginationBlock{}, errors.New("dataset query failed")
	}
	return m.MockItems, m.MockPagination, nil
}

func (m *MockListingUsecase) GetListingBySlug(ctx context.Context, slug string) (*entity.ListingItem, error) {
	if m.ShouldReturnNotFound {
		return nil, entity.ErrNotFound
	}
	return &m.MockItems[0], nil
}

// MockProjectUsecase is a mock implementation of the IProjectUseCase interface
type MockProjectUsecase struct {
	// Control mock behavior
	UpstreamStatus       int
	UpstreamBody         string
	ShouldFailTransport  bool
	ShouldReturnNotFound bool

	// Return values
	MockSearchBody json.RawMessage
	MockDetail     entity.ProjectDetail
	MockDevelopers []entity.DeveloperItem
}

// Ensure MockProjectUsecase implements the correct interface for handler.NewProjectHandler
var _ usecase.IProjectUseCase = (*MockProjectUsecase)(nil)

func NewMockProjectUsecase() *MockProjectUsecase {
	return &MockProjectUsecase{
		MockSearchBody: json.RawMessage(`{"projects":[{"slug":"mock-tower"}],"total":1}`),
		MockDetail: entity.ProjectDetail{
			Description: "mock project detail",
			PlannedAt:   "2026-09",
			Cover:       "https://example.com/detail.jpg",
		},
		MockDevelopers: []entity.DeveloperItem{
			{
				ID:           "dev-1",
				Name:         "Mock Developer",
				Company:      entity.DeveloperCompany{Name: "Mock Holding", Logo: "https://example.com/logo.png"},
				ProjectCount: 12,
			},
		},
	}
}

func (m *MockProjectUsecase) err() error {
	if m.ShouldFailTransport {
		return errors.New("upstream request failed: connection refused")
	}
	if m.ShouldReturnNotFound {
		return entity.ErrNotFound
	}
	if m.UpstreamStatus != 0 {
		return &entity.UpstreamError{Status: m.UpstreamStatus, Body: m.UpstreamBody}
	}
	return nil
}

func (m *MockProjectUsecase) SearchProjects(ctx context.Context, filter entity.FilterSet) (json.RawMessage, error) {
	if err := m.err(); err != nil {
		return nil, err
	}
	return m.MockSearchBody, nil
}

func (m *MockProjectUsecase) GetProjectDetail(ctx context.Context, slug string) (*entity.ProjectDetail, error) {
	if err := m.err(); err != nil {
		return nil, err
	}
	return &m.MockDetail, nil
}

func (m *MockProjectUsecase) GetDevelopers(ctx context.Context, page, limit, minProjects int) ([]entity.DeveloperItem, entity.PaginationBlock, error) {
	if err := m.err(); err != nil {
		return nil, entity.PaginationBlock{}, err
	}
	return m.MockDevelopers, entity.PaginationBlock{Page: page, Limit: limit, Total: len(m.MockDevelopers), TotalPages: 1}, nil
}
