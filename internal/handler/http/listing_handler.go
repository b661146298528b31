package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/roshan-1001/credence-realtor-sub001/internal/domain/entity"
	"github.com/roshan-1001/credence-realtor-sub001/internal/handler/http/dto"
	"github.com/roshan-1001/credence-realtor-sub001/internal/usecase"
)

// ListingHandlerInterface defines the methods for the listing handler to allow interface-based dependency injection (for testing/mocking)
type ListingHandlerInterface interface {
	GetListingsHandler(*gin.Context)
	GetListingDetailHandler(*gin.Context)
}

// Ensure ListingHandler implements ListingHandlerInterface
var _ ListingHandlerInterface = (*ListingHandler)(nil)

type ListingHandler struct {
	listingUsecase usecase.IListingUseCase
}

func NewListingHandler(listingUsecase usecase.IListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUsecase: listingUsecase,
	}
}

// GetListingsHandler serves the static-dataset listing search. All
// filter values are normalized, never rejected: malformed pagination is
// clamped and malformed prices are treated as absent.
func (h *ListingHandler) GetListingsHandler(c *gin.Context) {
	filter := entity.NewFilterSet(entity.RawFilter{
		City:      c.Query("city"),
		Locality:  c.Query("locality"),
		Search:    c.Query("search"),
		Developer: c.Query("developer"),
		MinPrice:  c.Query("minPrice"),
		MaxPrice:  c.Query("maxPrice"),
		Page:      c.DefaultQuery("page", "1"),
		Limit:     c.Query("limit"),
	}, entity.DefaultStaticLimit)

	items, pagination, err := h.listingUsecase.GetListings(c.Request.Context(), filter)
	if err != nil {
		HandleUseCaseError(c, err, "Failed to get listings")
		return
	}

	SetCacheControl(c, filter.Class())
	SuccessHandler(c, http.StatusOK, dto.ListingsResponse("Listings retrieved successfully", items, pagination))
}

// GetListingDetailHandler serves a single listing by slug.
func (h *ListingHandler) GetListingDetailHandler(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		ErrorHandler(c, http.StatusBadRequest, "Slug is required")
		return
	}

	item, err := h.listingUsecase.GetListingBySlug(c.Request.Context(), slug)
	if err != nil {
		HandleUseCaseError(c, err, "Failed to get listing")
		return
	}

	SetCacheControl(c, entity.TTLFiltered)
	SuccessHandler(c, http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Listing retrieved successfully",
		Data:    item,
	})
}
