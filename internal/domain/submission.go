package domain

import "context"

// Form identifies which form a submission came from.
type Form string

const (
	FormContact    Form = "contact"
	FormWorkWithUs Form = "work_with_us"
)

// Outcome is the terminal classification of a submission.
type Outcome int

const (
	OutcomeAccepted Outcome = iota
	OutcomeRejectedValidation
	OutcomeTransportFailed
	OutcomeInternalError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejectedValidation:
		return "rejected_validation"
	case OutcomeTransportFailed:
		return "transport_failed"
	case OutcomeInternalError:
		return "internal_error"
	default:
		return "unknown"
	}
}

// SubmissionResult is returned for every submission. Violations is set only
// for OutcomeRejectedValidation; Err carries the cause of the two failure outcomes.
type SubmissionResult struct {
	Outcome    Outcome
	Violations []string
	Err        error
}

// Accepted builds a successful result
func Accepted() SubmissionResult {
	return SubmissionResult{Outcome: OutcomeAccepted}
}

// Rejected builds a validation failure carrying the violation messages
func Rejected(violations []string) SubmissionResult {
	return SubmissionResult{Outcome: OutcomeRejectedValidation, Violations: violations}
}

// TransportFailed builds a delivery failure
func TransportFailed(err error) SubmissionResult {
	return SubmissionResult{Outcome: OutcomeTransportFailed, Err: err}
}

// InternalError builds an unexpected failure
func InternalError(err error) SubmissionResult {
	return SubmissionResult{Outcome: OutcomeInternalError, Err: err}
}

// FormUsecase validates submissions and forwards accepted ones as email notifications
type FormUsecase interface {
	SubmitContact(ctx context.Context, inquiry *ContactInquiry) SubmissionResult
	SubmitWorkApplication(ctx context.Context, application *WorkApplication) SubmissionResult
}
