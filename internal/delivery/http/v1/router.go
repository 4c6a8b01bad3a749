package v1

import (
	"net/http"

	"obsidianiq-forms-api/config"
	"obsidianiq-forms-api/internal/delivery/http/middleware"
	"obsidianiq-forms-api/internal/domain"
	"obsidianiq-forms-api/internal/usecase"
	"obsidianiq-forms-api/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	FormUC   domain.FormUsecase
	HealthUC usecase.HealthUsecase
	Config   *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(middleware.NewCORSPolicy(deps.Config.CORSPolicy, deps.Config.CORSAllowedOrigins))) // CORS must be first!
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperror.NotFound("Resource not found"))
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.HealthUC.Check(c.Request.Context(), ""))
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	NewFormHandler(api, deps.FormUC)
	NewHealthHandler(api, deps.HealthUC)

	if deps.Config.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
