package v1

import (
	"net/http"

	"obsidianiq-forms-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

// NewHealthHandler registers per-form health checks and the email configuration report
func NewHealthHandler(api *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}

	api.GET("/contact/health", handler.serviceHealth("contact-form"))
	api.GET("/workwithus/health", handler.serviceHealth("work-with-us-form"))
	api.GET("/configtest/email-config", handler.EmailConfig)
	api.GET("/configtest/environment", handler.Environment)
}

func (h *HealthHandler) serviceHealth(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, h.healthUC.Check(c.Request.Context(), service))
	}
}

// EmailConfig godoc
// @Summary      Email configuration report
// @Description  Shows which SMTP settings are present. Credentials are reported only by presence and length.
// @Tags         diagnostics
// @Produce      json
// @Success      200  {object}  usecase.EmailConfigReport
// @Router       /configtest/email-config [get]
func (h *HealthHandler) EmailConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthUC.EmailConfig(c.Request.Context()))
}

// Environment godoc
// @Summary      Environment report
// @Description  Shows the runtime environment and whether SMTP credentials are set, never their values.
// @Tags         diagnostics
// @Produce      json
// @Success      200  {object}  usecase.EnvironmentReport
// @Router       /configtest/environment [get]
func (h *HealthHandler) Environment(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthUC.Environment(c.Request.Context()))
}
