// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package matrix

import "errors"

var (
	// ErrDimensionMismatch is returned when two matrices' shapes are
	// incompatible for the requested operation.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrFieldMismatch is returned when an operand or cell does not
	// belong to the expected algebraic field.
	ErrFieldMismatch = errors.New("matrix: field mismatch")

	// ErrIndexOutOfRange is returned by a 1-indexed accessor whose row or
	// column falls outside the matrix's shape.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrFlattenShape is returned by Flatten on anything but a 1x1 matrix.
	ErrFlattenShape = errors.New("matrix: flatten requires a 1x1 matrix")

	// ErrGroupIDInvalid is returned when WithGroupID is given a value
	// outside {G1, G2, Zr}.
	ErrGroupIDInvalid = errors.New("matrix: invalid groupID")
)
