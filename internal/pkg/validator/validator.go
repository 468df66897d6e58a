// Package validator checks values against go-playground/validator tags and
// flattens the resulting field errors into one joined error whose first
// element is ErrValidationFailed.
//
//	type Vault struct {
//	    Address string `validate:"required,eth_addr"`
//	}
//
//	if err := validator.Validate(v); errors.Is(err, validator.ErrValidationFailed) {
//	    // reject v
//	}
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of every chain returned for a value
// that breaks one of its rules.
var ErrValidationFailed = errors.New("validation failed")

// validate is shared by every caller; go-playground caches struct metadata per instance.
var validate = gvalidator.New(gvalidator.WithRequiredStructEnabled())

// errStringFormat describes one broken rule, e.g.
// "'Address': value '0x' does not meet the requirements for the 'eth_addr' validation".
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// formatError turns validator field errors into ErrValidationFailed joined with
// one message per field. Any other error is returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := make([]error, 0, len(validationErrors)+1)
	errs = append(errs, ErrValidationFailed)
	for _, fe := range validationErrors {
		field := fe.Field()
		if field == "" {
			field = "value"
		}

		errs = append(errs, fmt.Errorf(errStringFormat, field, fe.Value(), fe.Tag()))
	}

	return errors.Join(errs...)
}

// Validate checks the validate tags of struct v.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var checks a single value against tag, e.g. Var(address, "required,eth_addr").
func Var(v any, tag string) error {
	if err := validate.Var(v, tag); err != nil {
		return formatError(err)
	}

	return nil
}
