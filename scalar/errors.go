// SPDX-License-Identifier: MIT

package scalar

import "errors"

// Sentinel errors returned ONLY by the opt-in validation surface
// (Validate, ValidateNonEmpty, GetPositionChecked, WrapChecked).
// The arithmetic functions themselves never return errors.
//
// Every message is prefixed with "scalar: ". Validators wrap the sentinel
// with the operation name; match with errors.Is.
var (
	// ErrInvalidBounds indicates max < min.
	ErrInvalidBounds = errors.New("scalar: max is less than min")

	// ErrEmptyRange indicates min == max, where a non-zero length is required
	// (position and wrap divide by the length).
	ErrEmptyRange = errors.New("scalar: range has zero length")

	// ErrNaNInf indicates a NaN or ±Inf bound or value.
	ErrNaNInf = errors.New("scalar: NaN or Inf encountered")
)
