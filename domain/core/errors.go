package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrConfiguration reports an incomplete or contradictory hypothesis
	// specification (missing H1 estimate and explicit parameters, malformed
	// bounds, non-positive spread).
	ErrConfiguration = errors.New("invalid hypothesis configuration")

	// ErrInvalidInput reports a physically invalid scalar input, such as a
	// non-positive standard error or a non-finite mean.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIntegration reports that the marginal likelihood integral could not
	// be evaluated to tolerance or produced a non-finite value.
	ErrIntegration = errors.New("numeric integration failed")

	// Not found errors
	ErrNotFound         = errors.New("resource not found")
	ErrAnalysisNotFound = fmt.Errorf("%w: analysis", ErrNotFound)
	ErrDatasetNotFound  = fmt.Errorf("%w: dataset", ErrNotFound)
)

// Error constructors with context
func NewConfigurationError(reason string) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, reason)
}

func NewInvalidInputError(field string, value float64) error {
	return fmt.Errorf("%w: %s = %g", ErrInvalidInput, field, value)
}

func NewIntegrationError(detail string) error {
	return fmt.Errorf("%w: %s", ErrIntegration, detail)
}

func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

// Error checking helpers
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsIntegrationError(err error) bool {
	return errors.Is(err, ErrIntegration)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
