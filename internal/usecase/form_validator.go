package usecase

import (
	"obsidianiq-forms-api/internal/domain"
	"obsidianiq-forms-api/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// User-facing violation messages
const (
	MsgServiceRequestedRequired = "Service requested is required"
	MsgServiceRequestedMax      = "Service requested must not exceed 100 characters"
	MsgFullNameRequired         = "Full name is required"
	MsgFullNameMax              = "Full name must not exceed 100 characters"
	MsgFirstNameRequired        = "First name is required"
	MsgFirstNameMax             = "First name must not exceed 50 characters"
	MsgLastNameRequired         = "Last name is required"
	MsgLastNameMax              = "Last name must not exceed 50 characters"
	MsgEmailRequired            = "Email is required"
	MsgEmailInvalid             = "Please provide a valid email address"
	MsgEmailMax                 = "Email must not exceed 255 characters"
	MsgPhoneMax                 = "Phone number must not exceed 20 characters"
	MsgPhoneInvalid             = "Please provide a valid phone number"
	MsgCompanyNameMax           = "Company name must not exceed 100 characters"
	MsgPositionMax              = "Position must not exceed 100 characters"
	MsgCountryRequired          = "Country is required"
	MsgCountryMax               = "Country must not exceed 50 characters"
	MsgStateProvinceRequired    = "State/Province is required"
	MsgStateProvinceMax         = "State/Province must not exceed 50 characters"
	MsgMessageRequired          = "Message is required"
	MsgMessageMin               = "Message must be at least 10 characters"
	MsgMessageMax               = "Message must not exceed 2000 characters"
)

var (
	emailChecks = []validation.Check{
		validation.Required(MsgEmailRequired),
		validation.EmailFormat(MsgEmailInvalid),
		validation.MaxLength(255, MsgEmailMax),
	}
	messageChecks = []validation.Check{
		validation.Required(MsgMessageRequired),
		validation.MinLength(10, MsgMessageMin),
		validation.MaxLength(2000, MsgMessageMax),
	}
)

// FormValidator checks both form kinds. It is pure and safe for concurrent use.
type FormValidator struct {
	validate *validator.Validate
	contact  *validation.RuleSet[*domain.ContactInquiry]
	work     *validation.RuleSet[*domain.WorkApplication]
}

// NewFormValidator wires the rule tables onto v, which must have the custom
// tags from validation.RegisterValidators.
func NewFormValidator(v *validator.Validate) *FormValidator {
	return &FormValidator{
		validate: v,
		contact:  validation.NewRuleSet(v, contactRules()...),
		work:     validation.NewRuleSet(v, workApplicationRules()...),
	}
}

// ValidateContact returns every violated rule message in declaration order.
// An empty result means the inquiry is valid.
func (fv *FormValidator) ValidateContact(inquiry *domain.ContactInquiry) []string {
	return validation.Messages(fv.contact.Validate(inquiry))
}

// ValidateWorkApplication returns every violated rule message in declaration order.
func (fv *FormValidator) ValidateWorkApplication(application *domain.WorkApplication) []string {
	return validation.Messages(fv.work.Validate(application))
}

// IsEmail reports whether s is a well-formed address, used to decide on Reply-To.
func (fv *FormValidator) IsEmail(s string) bool {
	return validation.IsEmail(fv.validate, s)
}

func contactRules() []validation.FieldRule[*domain.ContactInquiry] {
	type rule = validation.FieldRule[*domain.ContactInquiry]
	return []rule{
		{
			Field: "ServiceRequested",
			Value: func(c *domain.ContactInquiry) string { return c.ServiceRequested },
			Checks: []validation.Check{
				validation.Required(MsgServiceRequestedRequired),
				validation.MaxLength(100, MsgServiceRequestedMax),
			},
		},
		{
			Field: "FullName",
			Value: func(c *domain.ContactInquiry) string { return c.FullName },
			Checks: []validation.Check{
				validation.Required(MsgFullNameRequired),
				validation.MaxLength(100, MsgFullNameMax),
			},
		},
		{
			Field:  "Email",
			Value:  func(c *domain.ContactInquiry) string { return c.Email },
			Checks: emailChecks,
		},
		{
			Field: "PhoneNumber",
			Value: func(c *domain.ContactInquiry) string { return c.PhoneNumber },
			When:  validation.NotBlank,
			Checks: []validation.Check{
				validation.MaxLength(20, MsgPhoneMax),
				validation.Pattern(validation.TagContactPhone, MsgPhoneInvalid),
			},
		},
		{
			Field:  "CompanyName",
			Value:  func(c *domain.ContactInquiry) string { return c.CompanyName },
			Checks: []validation.Check{validation.MaxLength(100, MsgCompanyNameMax)},
		},
		{
			Field:  "Position",
			Value:  func(c *domain.ContactInquiry) string { return c.Position },
			Checks: []validation.Check{validation.MaxLength(100, MsgPositionMax)},
		},
		{
			Field: "Country",
			Value: func(c *domain.ContactInquiry) string { return c.Country },
			Checks: []validation.Check{
				validation.Required(MsgCountryRequired),
				validation.MaxLength(50, MsgCountryMax),
			},
		},
		{
			Field: "StateProvince",
			Value: func(c *domain.ContactInquiry) string { return c.StateProvince },
			Checks: []validation.Check{
				validation.Required(MsgStateProvinceRequired),
				validation.MaxLength(50, MsgStateProvinceMax),
			},
		},
		{
			Field:  "Message",
			Value:  func(c *domain.ContactInquiry) string { return c.Message },
			Checks: messageChecks,
		},
	}
}

func workApplicationRules() []validation.FieldRule[*domain.WorkApplication] {
	type rule = validation.FieldRule[*domain.WorkApplication]
	// HasResume carries no rules
	return []rule{
		{
			Field: "FirstName",
			Value: func(w *domain.WorkApplication) string { return w.FirstName },
			Checks: []validation.Check{
				validation.Required(MsgFirstNameRequired),
				validation.MaxLength(50, MsgFirstNameMax),
			},
		},
		{
			Field: "LastName",
			Value: func(w *domain.WorkApplication) string { return w.LastName },
			Checks: []validation.Check{
				validation.Required(MsgLastNameRequired),
				validation.MaxLength(50, MsgLastNameMax),
			},
		},
		{
			Field:  "Email",
			Value:  func(w *domain.WorkApplication) string { return w.Email },
			Checks: emailChecks,
		},
		{
			Field: "PhoneNumber",
			Value: func(w *domain.WorkApplication) string { return w.PhoneNumber },
			When:  validation.NotBlank,
			Checks: []validation.Check{
				validation.MaxLength(20, MsgPhoneMax),
				validation.Pattern(validation.TagWorkPhone, MsgPhoneInvalid),
			},
		},
		{
			Field:  "Message",
			Value:  func(w *domain.WorkApplication) string { return w.Message },
			Checks: messageChecks,
		},
	}
}
