package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roshan-1001/credence-realtor-sub001/internal/domain/entity"
	"github.com/roshan-1001/credence-realtor-sub001/internal/handler/http/dto"
)

// ErrorHandler centralizes error responses. Errors always carry
// non-cacheable directives.
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	ErrorDetailHandler(c, statusCode, message, message)
}

// ErrorDetailHandler is ErrorHandler with a separate diagnostic detail,
// used to carry a raw upstream error body alongside the stable message.
func ErrorDetailHandler(c *gin.Context, statusCode int, message, detail string) {
	c.Header("Cache-Control", "no-store")
	c.JSON(statusCode, dto.APIResponse{Success: false, Message: message, Error: detail})
}

// SuccessHandler centralizes success responses.
func SuccessHandler(c *gin.Context, statusCode int, resp dto.APIResponse) {
	c.JSON(statusCode, resp)
}

// SetCacheControl attaches the HTTP cache metadata for the TTL class
// that actually served the query.
func SetCacheControl(c *gin.Context, class entity.TTLClass) {
	c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d",
		class.MaxAge(), class.StaleWhileRevalidate()))
}

// HandleUseCaseError maps the error taxonomy onto HTTP statuses: 400 for
// validation failures, 404 for lookup misses, the upstream's own status
// (with its raw body as the error detail) for provider errors, and a
// generic 500 for transport or internal failures.
func HandleUseCaseError(c *gin.Context, err error, fallbackMessage string) {
	var validationErr *entity.ValidationError
	var upstreamErr *entity.UpstreamError
	switch {
	case errors.As(err, &validationErr):
		ErrorHandler(c, http.StatusBadRequest, validationErr.Reason)
	case errors.Is(err, entity.ErrNotFound):
		ErrorHandler(c, http.StatusNotFound, "Resource not found")
	case errors.As(err, &upstreamErr):
		ErrorDetailHandler(c, upstreamErr.Status, "Upstream provider error", upstreamErr.Body)
	default:
		ErrorHandler(c, http.StatusInternalServerError, fallbackMessage)
	}
}
