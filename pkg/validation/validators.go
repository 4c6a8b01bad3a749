package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Custom tags registered by RegisterValidators
const (
	TagContactPhone = "contact_phone"
	TagWorkPhone    = "work_phone"
)

// Regex patterns
var (
	// Loose: optional +, optional leading country digit, then up to 20 digits/space/-/()/.
	contactPhoneRegex = regexp.MustCompile(`^[\+]?[1-9]?[\d\s\-\(\)\.]{0,20}$`)

	// Strict: optional +, optional leading country digit, then 7-15 digits/space/-/()
	workPhoneRegex = regexp.MustCompile(`^[\+]?[1-9]?[\d\s\-\(\)]{7,15}$`)
)

// New returns a validator with the custom form tags registered.
func New() *validator.Validate {
	v := validator.New()
	if err := RegisterValidators(v); err != nil {
		// Only reachable with a malformed tag name above.
		panic(fmt.Sprintf("validation: register validators: %v", err))
	}
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation(TagContactPhone, ContactPhone); err != nil {
		return err
	}
	return v.RegisterValidation(TagWorkPhone, WorkPhone)
}

// ContactPhone validates a phone number against the contact form pattern
func ContactPhone(fl validator.FieldLevel) bool {
	return contactPhoneRegex.MatchString(fl.Field().String())
}

// WorkPhone validates a phone number against the stricter work-with-us pattern
func WorkPhone(fl validator.FieldLevel) bool {
	return workPhoneRegex.MatchString(fl.Field().String())
}

// IsEmail reports whether s is a single well-formed email address.
func IsEmail(v *validator.Validate, s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && v.Var(s, "email") == nil
}

// NotBlank is a FieldRule condition applying rules only to values with content.
func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}
