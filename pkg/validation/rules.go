package validation

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Check pairs a validator tag with the message reported when the tag fails.
type Check struct {
	Tag     string
	Message string
}

func Required(message string) Check {
	return Check{Tag: "required", Message: message}
}

func MaxLength(n int, message string) Check {
	return Check{Tag: "max=" + strconv.Itoa(n), Message: message}
}

func MinLength(n int, message string) Check {
	return Check{Tag: "min=" + strconv.Itoa(n), Message: message}
}

func EmailFormat(message string) Check {
	return Check{Tag: "email", Message: message}
}

// Pattern uses a tag registered with RegisterValidators.
func Pattern(tag, message string) Check {
	return Check{Tag: tag, Message: message}
}

// FieldRule lists the checks for one field of T, in the order they are reported.
type FieldRule[T any] struct {
	Field  string
	Value  func(T) string
	When   func(value string) bool // nil applies the checks unconditionally
	Checks []Check
}

// Violation is a single failed check.
type Violation struct {
	Field   string
	Message string
}

// RuleSet evaluates field rules in declaration order without stopping at the first failure.
// It holds no mutable state and is safe for concurrent use.
type RuleSet[T any] struct {
	validate *validator.Validate
	rules    []FieldRule[T]
}

func NewRuleSet[T any](v *validator.Validate, rules ...FieldRule[T]) *RuleSet[T] {
	return &RuleSet[T]{validate: v, rules: rules}
}

// Validate returns every violated check. Values are trimmed before checking.
func (rs *RuleSet[T]) Validate(target T) []Violation {
	var violations []Violation
	for _, rule := range rs.rules {
		value := strings.TrimSpace(rule.Value(target))
		if rule.When != nil && !rule.When(value) {
			continue
		}
		for _, check := range rule.Checks {
			if err := rs.validate.Var(value, check.Tag); err != nil {
				violations = append(violations, Violation{Field: rule.Field, Message: check.Message})
			}
		}
	}
	return violations
}

// Messages flattens violations to their user-facing text.
func Messages(violations []Violation) []string {
	messages := make([]string, 0, len(violations))
	for _, v := range violations {
		messages = append(messages, v.Message)
	}
	return messages
}
