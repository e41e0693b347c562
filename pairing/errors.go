// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pairing

import "errors"

var (
	// ErrCurveUnknown is returned when a curve key has no registered Suite.
	ErrCurveUnknown = errors.New("pairing: unknown curve key")

	// ErrFieldMismatch is returned when an element from one field is used
	// where an element of a different field is required.
	ErrFieldMismatch = errors.New("pairing: field mismatch")

	// ErrEncodingLength is returned when a byte blob does not match a
	// field's fixed encoding length.
	ErrEncodingLength = errors.New("pairing: wrong encoding length")
)
