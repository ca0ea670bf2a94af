package models

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// Violation describes a single field constraint failure.
type Violation struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Message    string `json:"message"`
}

// ValidationError aggregates every violation found on an entity. It is
// returned by the entities' Validate methods before a record reaches the
// store, so callers can report all problems at once.
type ValidationError struct {
	Entity     string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return fmt.Sprintf("%s validation failed: %s", e.Entity, strings.Join(msgs, "; "))
}

// violations collects constraint failures while an entity is checked.
type violations struct {
	list []Violation
}

func (v *violations) add(field, constraint, format string, args ...interface{}) {
	v.list = append(v.list, Violation{
		Field:      field,
		Constraint: constraint,
		Message:    fmt.Sprintf(format, args...),
	})
}

// err returns the aggregated error, or nil when every check passed.
func (v *violations) err(entity string) error {
	if len(v.list) == 0 {
		return nil
	}
	return &ValidationError{Entity: entity, Violations: v.list}
}

func (v *violations) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, "required", "must not be empty")
	}
}

func (v *violations) maxLen(field, value string, max int) {
	if len(value) > max {
		v.add(field, "max_length", "must be at most %d characters, got %d", max, len(value))
	}
}

func (v *violations) minLen(field, value string, min int) {
	if len(value) < min {
		v.add(field, "min_length", "must be at least %d characters", min)
	}
}

func (v *violations) email(field, value string) {
	if _, err := mail.ParseAddress(value); err != nil {
		v.add(field, "email", "must be a valid email address")
	}
}

func (v *violations) absoluteURL(field, value string) {
	u, err := url.Parse(value)
	if err != nil || !u.IsAbs() || u.Host == "" {
		v.add(field, "url", "must be an absolute URL")
	}
}

func (v *violations) nonNegative(field string, value decimal.Decimal) {
	if value.IsNegative() {
		v.add(field, "min", "must not be negative, got %s", value)
	}
}

func (v *violations) nonNegativePtr(field string, value *decimal.Decimal) {
	if value != nil && value.IsNegative() {
		v.add(field, "min", "must not be negative, got %s", value)
	}
}

func (v *violations) intRange(field string, value, min, max int) {
	if value < min || value > max {
		v.add(field, "range", "must be between %d and %d, got %d", min, max, value)
	}
}

func (v *violations) enum(field string, valid bool, value string) {
	if !valid {
		v.add(field, "enum", "%q is not an allowed value", value)
	}
}
