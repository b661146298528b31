package http_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	handler "github.com/roshan-1001/credence-realtor-sub001/internal/handler/http"
	mocks "github.com/roshan-1001/credence-realtor-sub001/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupListingRouter(h handler.ListingHandlerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	r.GET("/listings", h.GetListingsHandler)
	r.GET("/listings/:slug", h.GetListingDetailHandler)
	return r
}

func TestGetListingsHandler(t *testing.T) {
	mockUsecase := mocks.NewMockListingUsecase()
	h := handler.NewListingHandler(mockUsecase)
	r := setupListingRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/listings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Listings retrieved successfully")
	assert.Contains(t, w.Body.String(), "mock-residences")
	// Unfiltered requests take the long TTL class.
	assert.Equal(t, "public, max-age=600, stale-while-revalidate=120", w.Header().Get("Cache-Control"))
}

func TestGetListingsHandler_FilteredCacheControl(t *testing.T) {
	mockUsecase := mocks.NewMockListingUsecase()
	h := handler.NewListingHandler(mockUsecase)
	r := setupListingRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/listings?locality=Dubai+Marina", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, max-age=300, stale-while-revalidate=60", w.Header().Get("Cache-Control"))
}

func TestGetListingsHandler_MalformedParamsAreNormalized(t *testing.T) {
	mockUsecase := mocks.NewMockListingUsecase()
	h := handler.NewListingHandler(mockUsecase)
	r := setupListingRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/listings?page=abc&limit=-4&minPrice=oops", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetListingsHandler_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockListingUsecase()
	mockUsecase.ShouldFailGetListings = true
	h := handler.NewListingHandler(mockUsecase)
	r := setupListingRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/listings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to get listings")
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestGetListingDetailHandler(t *testing.T) {
	mockUsecase := mocks.NewMockListingUsecase()
	h := handler.NewListingHandler(mockUsecase)
	r := setupListingRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/listings/mock-residences", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Listing retrieved successfully")
	assert.Equal(t, "public, max-age=300, stale-while-revalidate=60", w.Header().Get("Cache-Control"))
}

func TestGetListingDetailHandler_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockListingUsecase()
	mockUsecase.ShouldReturnNotFound = true
	h := handler.NewListingHandler(mockUsecase)
	r := setupListingRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/listings/no-such-slug", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Resource not found")
}
