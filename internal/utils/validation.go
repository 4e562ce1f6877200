package utils

import (
	"fmt"
	"strings"

	"github.com/toyz/scaffold/internal/errors"
)

// Validator represents a validation function
type Validator[T any] func(T) error

// ValidatorChain allows chaining multiple validators
type ValidatorChain[T any] struct {
	validators []Validator[T]
	hint       string
}

// NewValidatorChain creates a new validator chain
func NewValidatorChain[T any](validators ...Validator[T]) *ValidatorChain[T] {
	return &ValidatorChain[T]{validators: validators}
}

// WithHint attaches a suggestion to any validation error the chain returns
func (vc *ValidatorChain[T]) WithHint(hint string) *ValidatorChain[T] {
	vc.hint = hint
	return vc
}

// Validate runs all validators in the chain, stopping at the first failure
func (vc *ValidatorChain[T]) Validate(value T) error {
	for _, validator := range vc.validators {
		if err := validator(value); err != nil {
			if ve, ok := err.(*errors.ValidationError); ok && vc.hint != "" {
				ve.WithSuggestion(vc.hint)
			}
			return err
		}
	}
	return nil
}

// NotBlank validates that a string has non-whitespace content
func NotBlank(field string) Validator[string] {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.NewValidationError(field, value, "must not be empty")
		}
		return nil
	}
}

// IsOneOf validates that a value is one of the allowed values
func IsOneOf[T comparable](field string, allowed ...T) Validator[T] {
	return func(value T) error {
		for _, allowedValue := range allowed {
			if value == allowedValue {
				return nil
			}
		}
		return errors.NewValidationError(field, value, fmt.Sprintf("must be one of: %v", allowed))
	}
}
