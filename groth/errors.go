// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package groth

import "errors"

var (
	// ErrWitnessDimension is returned when a witness or constant vector
	// does not match the shape a prover or verifier requires.
	ErrWitnessDimension = errors.New("groth: witness dimension mismatch")

	// ErrGroupID is returned when a scheme is asked to embed a value into
	// a group other than G1 or G2.
	ErrGroupID = errors.New("groth: expected G1 or G2")
)
