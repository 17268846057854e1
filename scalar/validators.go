// SPDX-License-Identifier: MIT
// Package: scalar
//
// Purpose:
//   - Opt-in strict validation. The arithmetic in scalar.go never validates;
//     callers that prefer an error over NaN/Inf check first with these.
//   - Return sentinel errors wrapped with the operation tag so call sites can
//     match with errors.Is.
//
// Note:
//   - Each composite validator follows a fixed sequence (finite → ordered → non-empty).

package scalar

import (
	"fmt"
	"math"
)

// Operation tags for unified error wrapping.
const (
	opValidate           = "Validate"
	opValidateNonEmpty   = "ValidateNonEmpty"
	opGetPositionChecked = "GetPositionChecked"
	opWrapChecked        = "WrapChecked"
)

// validatorErrorf wraps an underlying error with the given operation tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

func validateBounds(min, max float64) error {
	if isNonFinite(min) || isNonFinite(max) {
		return ErrNaNInf
	}
	if !IsValid(min, max) {
		return ErrInvalidBounds
	}

	return nil
}

func validateNonEmpty(min, max float64) error {
	if err := validateBounds(min, max); err != nil {
		return err
	}
	if min == max {
		return ErrEmptyRange
	}

	return nil
}

// Validate ensures both bounds are finite and max >= min.
//
// Returns ErrNaNInf or ErrInvalidBounds, wrapped with "Validate".
// Complexity: O(1).
func Validate(min, max float64) error {
	if err := validateBounds(min, max); err != nil {
		return validatorErrorf(opValidate, err)
	}

	return nil
}

// ValidateNonEmpty is Validate plus a non-zero length check (ErrEmptyRange).
func ValidateNonEmpty(min, max float64) error {
	if err := validateNonEmpty(min, max); err != nil {
		return validatorErrorf(opValidateNonEmpty, err)
	}

	return nil
}

// GetPositionChecked is GetPosition that rejects a non-finite x and any range
// ValidateNonEmpty rejects, instead of returning ±Inf or NaN.
func GetPositionChecked(x, min, max float64, opts ...Option) (float64, error) {
	if isNonFinite(x) {
		return 0, validatorErrorf(opGetPositionChecked, ErrNaNInf)
	}
	if err := validateNonEmpty(min, max); err != nil {
		return 0, validatorErrorf(opGetPositionChecked, err)
	}

	return GetPosition(x, min, max, opts...), nil
}

// WrapChecked is Wrap that rejects a non-finite x and any range
// ValidateNonEmpty rejects, instead of returning NaN.
func WrapChecked(x, min, max float64) (float64, error) {
	if isNonFinite(x) {
		return 0, validatorErrorf(opWrapChecked, ErrNaNInf)
	}
	if err := validateNonEmpty(min, max); err != nil {
		return 0, validatorErrorf(opWrapChecked, err)
	}

	return Wrap(x, min, max), nil
}
