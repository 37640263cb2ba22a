// Package validator provides validation infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package validator

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// MinYearBuilt is the earliest construction year accepted for a listing.
	MinYearBuilt = 1800
	// YearBuiltLookahead is how many years past the current one are accepted
	// for listings still under construction.
	YearBuiltLookahead = 5
	postalCodeLength   = 5
)

// Validator wraps the go-playground validator for structured validation.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

// New creates a new Validator instance with the catalog rules registered.
func New() *Validator {
	val := &Validator{
		v:   validator.New(),
		now: time.Now,
	}
	_ = val.v.RegisterValidation("postalcode", validatePostalCode)
	_ = val.v.RegisterValidation("yearbuilt", val.validateYearBuilt)
	return val
}

// Struct validates a struct based on validation tags.
func (val *Validator) Struct(s interface{}) error {
	return val.v.Struct(s)
}

// Var validates a single variable against a tag.
func (val *Validator) Var(field interface{}, tag string) error {
	return val.v.Var(field, tag)
}

// RegisterValidation registers a custom validation function.
func (val *Validator) RegisterValidation(tag string, fn validator.Func) error {
	return val.v.RegisterValidation(tag, fn)
}

func validatePostalCode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != postalCodeLength {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (val *Validator) validateYearBuilt(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	maxYear := int64(val.now().Year() + YearBuiltLookahead)
	return year >= MinYearBuilt && year <= maxYear
}
