package scheme

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidParams is returned when a Params record fails validation.
	ErrInvalidParams = errors.New("scheme: invalid cipher parameters")
	// ErrInvalidName is returned when a scheme name fails validation.
	ErrInvalidName = errors.New("scheme: invalid scheme name")
)

// ErrValidatorInit is returned when custom validator registration fails
// during initialization.
var ErrValidatorInit = errors.New("scheme: validator initialization failed")

// Params describes the fixed limits of a cipher scheme. The record is
// informative: it lets callers pick correct key and nonce material up front,
// while the constructed cipher instance remains responsible for enforcing
// its own limits.
//
// A nil or empty NonceSizes means the scheme takes no nonce. TagSize is zero
// for unauthenticated schemes.
type Params struct {
	// BlockSize is the internal block length in bytes.
	BlockSize int `validate:"required,gt=0"`
	// NonceSizes lists every nonce length in bytes the scheme accepts.
	NonceSizes []int `validate:"omitempty,unique,dive,gt=0"`
	// TagSize is the authentication tag length in bytes.
	TagSize int `validate:"gte=0"`
}

// Validate checks the record against its struct tags, wrapping any failure
// in ErrInvalidParams.
func (p Params) Validate() error {
	vld, err := getValidator()
	if err != nil {
		return err
	}

	if err := vld.Struct(p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}

	return nil
}

// clone returns a copy that shares no memory with p, so a Params handed out
// or stored cannot be mutated through the original slices.
func (p Params) clone() Params {
	out := p

	if p.NonceSizes != nil {
		out.NonceSizes = append([]int(nil), p.NonceSizes...)
	}

	return out
}

// schemeNamePattern accepts lowercase alphanumeric labels joined by single
// dashes, e.g. "chacha20-poly1305" or "aes-256-gcm".
var schemeNamePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
	errValidate  error
)

// initValidators creates and configures the validator with custom validation
// rules. Returns an error if any custom validator registration fails.
func initValidators() (*validator.Validate, error) {
	vld := validator.New(validator.WithRequiredStructEnabled())

	// Register custom validator for scheme names used as registry keys.
	if err := vld.RegisterValidation("scheme_name", func(fl validator.FieldLevel) bool {
		return schemeNamePattern.MatchString(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("%w: failed to register 'scheme_name': %w", ErrValidatorInit, err)
	}

	return vld, nil
}

// getValidator returns the singleton validator instance and any
// initialization error that may have occurred.
func getValidator() (*validator.Validate, error) {
	validateOnce.Do(func() {
		validate, errValidate = initValidators()
	})

	return validate, errValidate
}

// validateName checks a scheme name against the registry key format.
func validateName(name string) error {
	vld, err := getValidator()
	if err != nil {
		return err
	}

	if err := vld.Var(name, "required,scheme_name"); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return nil
}
