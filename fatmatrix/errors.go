// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fatmatrix

import "errors"

var (
	// ErrDimensionMismatch is returned when two fat matrices' outer or
	// inner shapes are incompatible for the requested operation.
	ErrDimensionMismatch = errors.New("fatmatrix: dimension mismatch")

	// ErrFieldMismatch is returned when an operand's inner field does not
	// match the expected one.
	ErrFieldMismatch = errors.New("fatmatrix: field mismatch")

	// ErrIndexOutOfRange is returned by a 1-indexed accessor whose row or
	// column falls outside the outer shape.
	ErrIndexOutOfRange = errors.New("fatmatrix: index out of range")

	// ErrGroupIDMissing is returned by ToBytes when the outer matrix has
	// no groupID labelled for persistence.
	ErrGroupIDMissing = errors.New("fatmatrix: groupID not set before serialisation")

	// ErrGroupIDInvalid is returned when WithGroupID is given a value
	// outside {G1, G2, Zr}.
	ErrGroupIDInvalid = errors.New("fatmatrix: invalid groupID")
)
