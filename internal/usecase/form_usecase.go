package usecase

import (
	"context"
	"fmt"
	"runtime/debug"

	"obsidianiq-forms-api/internal/domain"
	"obsidianiq-forms-api/pkg/audit"
	"obsidianiq-forms-api/pkg/logger"
	"obsidianiq-forms-api/pkg/metrics"
)

// FormNotifier delivers validated submissions. *Notifier is the production implementation.
type FormNotifier interface {
	NotifyContact(ctx context.Context, inquiry *domain.ContactInquiry) error
	NotifyWorkApplication(ctx context.Context, application *domain.WorkApplication) error
}

type formUsecase struct {
	validator *FormValidator
	notifier  FormNotifier
	audit     *audit.Logger
}

// NewFormUsecase creates the submission pipeline: validate, then notify.
func NewFormUsecase(fv *FormValidator, notifier FormNotifier, auditLog *audit.Logger) domain.FormUsecase {
	if auditLog == nil {
		auditLog = audit.Nop()
	}
	return &formUsecase{
		validator: fv,
		notifier:  notifier,
		audit:     auditLog,
	}
}

// SubmitContact validates the inquiry and, when valid, sends the notification email
func (uc *formUsecase) SubmitContact(ctx context.Context, inquiry *domain.ContactInquiry) domain.SubmissionResult {
	var submitter string
	if inquiry != nil {
		submitter = inquiry.Email
	}
	return uc.submit(ctx, domain.FormContact, submitter,
		func() []string { return uc.validator.ValidateContact(inquiry) },
		func() error { return uc.notifier.NotifyContact(ctx, inquiry) },
	)
}

// SubmitWorkApplication validates the application and, when valid, sends the notification email
func (uc *formUsecase) SubmitWorkApplication(ctx context.Context, application *domain.WorkApplication) domain.SubmissionResult {
	var submitter string
	if application != nil {
		submitter = application.Email
	}
	return uc.submit(ctx, domain.FormWorkWithUs, submitter,
		func() []string { return uc.validator.ValidateWorkApplication(application) },
		func() error { return uc.notifier.NotifyWorkApplication(ctx, application) },
	)
}

// submit runs validate then notify. A panic in either step is recovered into an
// internal-error result so nothing escapes to the HTTP layer.
func (uc *formUsecase) submit(
	ctx context.Context,
	form domain.Form,
	submitter string,
	validate func() []string,
	notify func() error,
) (result domain.SubmissionResult) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic while processing %s submission: %v", form, r)
			logger.Log.Error("Unexpected error processing form submission",
				"form", form, "error", err, "stack", string(debug.Stack()))
			result = domain.InternalError(err)
		}
		uc.record(ctx, form, submitter, result)
	}()

	uc.audit.Log(ctx, audit.Event{Event: audit.EventSubmissionReceived, Form: string(form), Submitter: submitter})

	if violations := validate(); len(violations) > 0 {
		return domain.Rejected(violations)
	}

	if err := notify(); err != nil {
		logger.Log.Error("Failed to process form submission", "form", form, "error", err)
		return domain.TransportFailed(err)
	}

	logger.Log.Info("Form submission processed successfully", "form", form)
	return domain.Accepted()
}

func (uc *formUsecase) record(ctx context.Context, form domain.Form, submitter string, result domain.SubmissionResult) {
	metrics.ObserveSubmission(string(form), result.Outcome.String())

	event := audit.Event{Form: string(form), Submitter: submitter, Err: result.Err}
	switch result.Outcome {
	case domain.OutcomeAccepted:
		event.Event = audit.EventSubmissionSent
	case domain.OutcomeRejectedValidation:
		event.Event = audit.EventSubmissionRejected
		event.Violations = len(result.Violations)
	case domain.OutcomeTransportFailed:
		event.Event = audit.EventDeliveryFailed
	default:
		event.Event = audit.EventInternalError
	}
	uc.audit.Log(ctx, event)
}
