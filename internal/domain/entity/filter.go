package entity

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultStaticLimit is the page size used by the static dataset path.
	DefaultStaticLimit = 9
	// DefaultUpstreamLimit is the page size used by the upstream path.
	DefaultUpstreamLimit = 20
	// MaxLimit caps the page size on every path.
	MaxLimit = 100
)

// RawFilter carries the unvalidated query input exactly as the client
// sent it. It is converted to a FilterSet once at the boundary; nothing
// downstream sees raw values.
type RawFilter struct {
	City      string
	Locality  string
	Search    string
	Developer string
	MinPrice  string
	MaxPrice  string
	Page      string
	Limit     string
}

// FilterSet is the canonical, normalized filter. String fields are
// trimmed and lower-cased; the zero value of a field means "no
// constraint", not empty-string.
type FilterSet struct {
	City      string
	Locality  string
	Search    string
	Developer string
	MinPrice  float64
	MaxPrice  float64
	Page      int
	Limit     int
}

// NewFilterSet normalizes a raw filter. Malformed pagination values are
// clamped, never rejected: page defaults to 1 and limit to defaultLimit,
// clamped to [1, MaxLimit]. Non-positive or unparsable prices are
// treated as absent. Locality takes precedence over city when both are
// present (more specific wins).
func NewFilterSet(raw RawFilter, defaultLimit int) FilterSet {
	fs := FilterSet{
		City:      normalizeString(raw.City),
		Locality:  normalizeString(raw.Locality),
		Search:    normalizeString(raw.Search),
		Developer: normalizeString(raw.Developer),
		MinPrice:  parsePrice(raw.MinPrice),
		MaxPrice:  parsePrice(raw.MaxPrice),
		Page:      parsePage(raw.Page),
		Limit:     clampLimit(raw.Limit, defaultLimit),
	}
	if fs.Locality != "" {
		fs.City = ""
	}
	return fs
}

// Filtered reports whether any constraint beyond pagination is set.
func (f FilterSet) Filtered() bool {
	return f.City != "" || f.Locality != "" || f.Search != "" ||
		f.Developer != "" || f.MinPrice > 0 || f.MaxPrice > 0
}

// Class returns the cache TTL class for this filter shape.
func (f FilterSet) Class() TTLClass {
	if f.Filtered() {
		return TTLFiltered
	}
	return TTLGeneral
}

// CacheKey derives the cache key for this filter plus pagination. Fields
// are serialized in a fixed order so that identical normalized input
// always yields an identical key; no clock reads, no randomness.
func (f FilterSet) CacheKey(prefix string) string {
	return fmt.Sprintf("%s:c=%s:l=%s:q=%s:d=%s:min=%s:max=%s:p=%d:s=%d",
		prefix, f.City, f.Locality, f.Search, f.Developer,
		formatPrice(f.MinPrice), formatPrice(f.MaxPrice), f.Page, f.Limit)
}

func normalizeString(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0
	}
	return v
}

func formatPrice(v float64) string {
	if v <= 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parsePage(s string) int {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || p < 1 {
		return 1
	}
	return p
}

func clampLimit(s string, defaultLimit int) int {
	l, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || l < 1 {
		l = defaultLimit
	}
	if l < 1 {
		l = 1
	}
	if l > MaxLimit {
		l = MaxLimit
	}
	return l
}
