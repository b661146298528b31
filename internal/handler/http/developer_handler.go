package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/roshan-1001/credence-realtor-sub001/internal/domain/entity"
	"github.com/roshan-1001/credence-realtor-sub001/internal/handler/http/dto"
	"github.com/roshan-1001/credence-realtor-sub001/internal/usecase"
)

// DeveloperHandlerInterface defines the methods for the developer handler to allow interface-based dependency injection (for testing/mocking)
type DeveloperHandlerInterface interface {
	GetDevelopersHandler(*gin.Context)
}

// Ensure DeveloperHandler implements DeveloperHandlerInterface
var _ DeveloperHandlerInterface = (*DeveloperHandler)(nil)

type DeveloperHandler struct {
	projectUsecase usecase.IProjectUseCase
}

func NewDeveloperHandler(projectUsecase usecase.IProjectUseCase) *DeveloperHandler {
	return &DeveloperHandler{
		projectUsecase: projectUsecase,
	}
}

// GetDevelopersHandler serves the upstream developer list, optionally
// filtered by a minimum project count. Malformed optional values are
// normalized to "no constraint", never rejected.
func (h *DeveloperHandler) GetDevelopersHandler(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = entity.DefaultUpstreamLimit
	}
	if limit > entity.MaxLimit {
		limit = entity.MaxLimit
	}
	minProjects, err := strconv.Atoi(c.Query("min_projects"))
	if err != nil || minProjects < 0 {
		minProjects = 0
	}

	items, pagination, err := h.projectUsecase.GetDevelopers(c.Request.Context(), page, limit, minProjects)
	if err != nil {
		HandleUseCaseError(c, err, "Failed to get developers")
		return
	}

	class := entity.TTLGeneral
	if minProjects > 0 {
		class = entity.TTLFiltered
	}
	SetCacheControl(c, class)
	SuccessHandler(c, http.StatusOK, dto.DevelopersResponse("Developers retrieved successfully", items, pagination))
}
