package v1

import (
	"context"
	"net/http"
	"time"

	"obsidianiq-forms-api/internal/delivery/http/response"
	"obsidianiq-forms-api/internal/domain"
	"obsidianiq-forms-api/pkg/apperror"
	"obsidianiq-forms-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Response texts
const (
	msgContactAccepted    = "Thank you for contacting us! We'll get back to you soon."
	msgWorkWithUsAccepted = "Thank you for your interest in working with us! We'll review your project details and get back to you soon."
	msgValidationFailed   = "Validation failed"
	msgTransportFailed    = "There was an error processing your request. Please try again later."
	msgInvalidBody        = "Invalid request body"
)

type FormHandler struct {
	formUC domain.FormUsecase
	now    func() time.Time
}

// NewFormHandler registers the public form routes (no auth required)
func NewFormHandler(api *gin.RouterGroup, formUC domain.FormUsecase) {
	handler := &FormHandler{
		formUC: formUC,
		now:    time.Now,
	}

	api.POST("/contact", handler.SubmitContact)
	api.POST("/workwithus", handler.SubmitWorkWithUs)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates a contact inquiry and forwards it by email. Public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactInquiry  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *FormHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactInquiry
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequest(msgInvalidBody).WithErrors(err.Error()))
		return
	}
	req.SubmittedAt = h.now().UTC()

	logger.Log.Info("Contact form submission received", "client_ip", c.ClientIP(),
		"request_id", c.GetString("RequestID"))

	h.render(c, h.formUC.SubmitContact(submissionContext(c), &req), msgContactAccepted)
}

// SubmitWorkWithUs godoc
// @Summary      Submit Work With Us Form
// @Description  Validates a work-with-us application and forwards it by email. Public endpoint.
// @Tags         work-with-us
// @Accept       json
// @Produce      json
// @Param        application  body      domain.WorkApplication  true  "Work With Us Form Data"
// @Success      200          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Failure      500          {object}  response.Response
// @Router       /workwithus [post]
func (h *FormHandler) SubmitWorkWithUs(c *gin.Context) {
	var req domain.WorkApplication
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequest(msgInvalidBody).WithErrors(err.Error()))
		return
	}
	req.SubmittedAt = h.now().UTC()

	logger.Log.Info("Work With Us form submission received", "client_ip", c.ClientIP(),
		"request_id", c.GetString("RequestID"))

	h.render(c, h.formUC.SubmitWorkApplication(submissionContext(c), &req), msgWorkWithUsAccepted)
}

// submissionContext keeps request values but drops client cancellation, so a
// disconnect cannot abort a send that has started. The notifier bounds the send.
func submissionContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

func (h *FormHandler) render(c *gin.Context, result domain.SubmissionResult, accepted string) {
	switch result.Outcome {
	case domain.OutcomeAccepted:
		response.Success(c, http.StatusOK, accepted)
	case domain.OutcomeRejectedValidation:
		response.Error(c, http.StatusBadRequest, msgValidationFailed, result.Violations)
	case domain.OutcomeTransportFailed:
		_ = c.Error(apperror.New(http.StatusInternalServerError, msgTransportFailed, result.Err))
	default:
		_ = c.Error(apperror.Internal(result.Err))
	}
}
