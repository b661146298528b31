package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/roshan-1001/credence-realtor-sub001/internal/handler/http/middleware"
	"github.com/roshan-1001/credence-realtor-sub001/internal/usecase"
)

type Router struct {
	listingHandler   *ListingHandler
	projectHandler   *ProjectHandler
	developerHandler *DeveloperHandler
}

// NewRouter wires the handlers. projectUsecase may be nil when no
// upstream is configured; the upstream routes are then not registered
// and only the static dataset endpoints serve.
func NewRouter(listingUsecase usecase.IListingUseCase, projectUsecase usecase.IProjectUseCase) *Router {
	r := &Router{
		listingHandler: NewListingHandler(listingUsecase),
	}
	if projectUsecase != nil {
		r.projectHandler = NewProjectHandler(projectUsecase)
		r.developerHandler = NewDeveloperHandler(projectUsecase)
	}
	return r
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Cache-Control", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(middleware.RequestID())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Static dataset routes
	listings := v1.Group("/listings")
	{
		listings.GET("", r.listingHandler.GetListingsHandler)
		listings.GET("/:slug", r.listingHandler.GetListingDetailHandler)
	}

	// Upstream-backed routes
	if r.projectHandler != nil {
		projects := v1.Group("/projects")
		{
			projects.GET("", r.projectHandler.SearchProjectsHandler)
			projects.GET("/:slug", r.projectHandler.GetProjectDetailHandler)
		}
		v1.GET("/developers", r.developerHandler.GetDevelopersHandler)
	}
}
