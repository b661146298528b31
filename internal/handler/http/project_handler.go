package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/roshan-1001/credence-realtor-sub001/internal/domain/entity"
	"github.com/roshan-1001/credence-realtor-sub001/internal/handler/http/dto"
	"github.com/roshan-1001/credence-realtor-sub001/internal/usecase"
)

// ProjectHandlerInterface defines the methods for the project handler to allow interface-based dependency injection (for testing/mocking)
type ProjectHandlerInterface interface {
	SearchProjectsHandler(*gin.Context)
	GetProjectDetailHandler(*gin.Context)
}

// Ensure ProjectHandler implements ProjectHandlerInterface
var _ ProjectHandlerInterface = (*ProjectHandler)(nil)

type ProjectHandler struct {
	projectUsecase usecase.IProjectUseCase
}

func NewProjectHandler(projectUsecase usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{
		projectUsecase: projectUsecase,
	}
}

// SearchProjectsHandler proxies the upstream project search. The
// provider's JSON is returned unmodified inside the response envelope.
func (h *ProjectHandler) SearchProjectsHandler(c *gin.Context) {
	filter := entity.NewFilterSet(entity.RawFilter{
		City:      c.Query("city"),
		Locality:  c.Query("locality"),
		Search:    c.Query("search"),
		Developer: c.Query("developer"),
		MinPrice:  c.Query("minPrice"),
		MaxPrice:  c.Query("maxPrice"),
		Page:      c.DefaultQuery("page", "1"),
		Limit:     c.Query("limit"),
	}, entity.DefaultUpstreamLimit)

	raw, err := h.projectUsecase.SearchProjects(c.Request.Context(), filter)
	if err != nil {
		HandleUseCaseError(c, err, "Failed to search projects")
		return
	}

	SetCacheControl(c, filter.Class())
	SuccessHandler(c, http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Projects retrieved successfully",
		Data:    raw,
	})
}

// GetProjectDetailHandler serves a single upstream project by slug.
func (h *ProjectHandler) GetProjectDetailHandler(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		ErrorHandler(c, http.StatusBadRequest, "Slug is required")
		return
	}

	detail, err := h.projectUsecase.GetProjectDetail(c.Request.Context(), slug)
	if err != nil {
		HandleUseCaseError(c, err, "Failed to get project")
		return
	}

	SetCacheControl(c, entity.TTLFiltered)
	SuccessHandler(c, http.StatusOK, dto.APIResponse{
		Success: true,
		Message: "Project retrieved successfully",
		Data:    detail,
	})
}
