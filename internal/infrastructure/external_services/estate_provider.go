package external_services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/roshan-1001/credence-realtor-sub001/internal/domain/contract"
	"github.com/roshan-1001/credence-realtor-sub001/internal/domain/entity"
	usecasecontract "github.com/roshan-1001/credence-realtor-sub001/internal/usecase/contract"
)

// EstateProviderService talks to the upstream real-estate listings API.
// Every call is a single attempt bounded by the client timeout; failures
// are surfaced, never retried.
type EstateProviderService struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     usecasecontract.IAppLogger
}

// NewEstateProviderService creates a provider client for the given base
// URL. The timeout bounds every request including body read.
func NewEstateProviderService(baseURL, apiKey string, timeout time.Duration, logger usecasecontract.IAppLogger) *EstateProviderService {
	return &EstateProviderService{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		logger:     logger,
	}
}

// make sure EstateProviderService implements contract.IEstateProvider
var _ contract.IEstateProvider = (*EstateProviderService)(nil)

// searchBody is the JSON filter body for the project search endpoint.
// Absent constraints are omitted entirely rather than sent empty.
type searchBody struct {
	City      string  `json:"city,omitempty"`
	Locality  string  `json:"locality,omitempty"`
	Search    string  `json:"search,omitempty"`
	Developer string  `json:"developer,omitempty"`
	MinPrice  float64 `json:"min_price,omitempty"`
	MaxPrice  float64 `json:"max_price,omitempty"`
}

// SearchProjects posts the filter to POST {base}/projects?page&limit and
// returns the provider's JSON body unmodified.
func (s *EstateProviderService) SearchProjects(ctx context.Context, filter entity.FilterSet) (json.RawMessage, error) {
	body, err := json.Marshal(searchBody{
		City:      filter.City,
		Locality:  filter.Locality,
		Search:    filter.Search,
		Developer: filter.Developer,
		MinPrice:  filter.MinPrice,
		MaxPrice:  filter.MaxPrice,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode search filter: %w", err)
	}

	url := fmt.Sprintf("%s/projects?page=%d&limit=%d", s.baseURL, filter.Page, filter.Limit)
	raw, err := s.do(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("upstream returned malformed JSON for project search")
	}
	return raw, nil
}

// developerEnvelope is the provider's developer/find response shape.
type developerEnvelope struct {
	Data  []entity.DeveloperRecord `json:"data"`
	Total int                      `json:"total"`
}

// FindDevelopers calls GET {base}/developer/find?page&limit.
func (s *EstateProviderService) FindDevelopers(ctx context.Context, page, limit int) ([]entity.DeveloperRecord, int, error) {
	url := fmt.Sprintf("%s/developer/find?page=%d&limit=%d", s.baseURL, page, limit)
	raw, err := s.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}

	var envelope developerEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, 0, fmt.Errorf("failed to decode developer list: %w", err)
	}
	return envelope.Data, envelope.Total, nil
}

// LookupProject calls GET {base}/project/look/{slug} and reduces the
// response to the detail shape; provider fields beyond it are dropped.
func (s *EstateProviderService) LookupProject(ctx context.Context, slug string) (*entity.ProjectDetail, error) {
	url := fmt.Sprintf("%s/project/look/%s", s.baseURL, slug)
	raw, err := s.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var detail entity.ProjectDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, fmt.Errorf("failed to decode project detail: %w", err)
	}
	return &detail, nil
}

// do issues one request and classifies the outcome: a 2xx body is
// returned raw, a 404 becomes entity.ErrNotFound, any other non-2xx
// becomes *entity.UpstreamError with the raw body kept for diagnostics,
// and a network failure is returned wrapped.
func (s *EstateProviderService) do(ctx context.Context, method, url string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Api-Key", s.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, entity.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		if s.logger != nil {
			s.logger.Warnf("upstream error: %s %s status=%d", method, url, resp.StatusCode)
		}
		return nil, &entity.UpstreamError{Status: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}
