// Package validation collects field-level input errors independently of the
// transport DTOs. Usecases build an Errors value and return Err().
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"shop_backend/internal/shared/apperr"
)

var validate = validator.New()

// Errors accumulates field errors. The zero value is ready to use.
type Errors struct {
	fields []apperr.FieldError
}

// Add records an error for field.
func (v *Errors) Add(field, format string, args ...any) {
	v.fields = append(v.fields, apperr.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Required checks that value is not blank.
func (v *Errors) Required(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
		return false
	}
	return true
}

// Length checks that the trimmed value has between min and max runes.
func (v *Errors) Length(field, value string, min, max int) {
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	if n < min || n > max {
		v.Add(field, "must be between %d and %d characters", min, max)
	}
}

// MaxLength checks an optional value.
func (v *Errors) MaxLength(field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		v.Add(field, "must be at most %d characters", max)
	}
}

// Email checks the address format.
func (v *Errors) Email(field, value string) {
	if !v.Required(field, value) {
		return
	}
	if err := validate.Var(value, "email"); err != nil {
		v.Add(field, "must be a valid email address")
	}
}

// URL checks an optional absolute URL.
func (v *Errors) URL(field, value string) {
	if value == "" {
		return
	}
	if err := validate.Var(value, "url"); err != nil {
		v.Add(field, "must be a valid URL")
	}
}

// ID checks a reference to another entity.
func (v *Errors) ID(field string, id uint) {
	if id == 0 {
		v.Add(field, "is required")
	}
}

// Positive checks n > 0.
func (v *Errors) Positive(field string, n int) {
	if n <= 0 {
		v.Add(field, "must be greater than 0")
	}
}

// NonNegative checks n >= 0.
func (v *Errors) NonNegative(field string, n int) {
	if n < 0 {
		v.Add(field, "must be 0 or greater")
	}
}

// Amount checks 0 < d <= max on the value rounded to cents, which is what
// gets stored or charged.
func (v *Errors) Amount(field string, d, max decimal.Decimal) {
	d = d.Round(2)
	if !d.IsPositive() {
		v.Add(field, "must be greater than 0")
		return
	}
	if d.GreaterThan(max) {
		v.Add(field, "must be at most %s", max.String())
	}
}

// Fields returns the collected errors.
func (v *Errors) Fields() []apperr.FieldError {
	return v.fields
}

// Err returns nil when no error was collected, otherwise a validation error.
func (v *Errors) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return apperr.Invalid(v.fields)
}
