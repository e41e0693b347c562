// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package groth implements the Groth-Sahai scheme itself: commitment maps,
// and provers/verifiers for the pairing-product, multi-scalar-multiplication
// and quadratic equation families plus their linear sub-cases.
package groth

import (
	"fmt"

	"github.com/luxfi/log"

	"github.com/luxfi/grothsahai/crs"
	"github.com/luxfi/grothsahai/fatmatrix"
	"github.com/luxfi/grothsahai/matrix"
	"github.com/luxfi/grothsahai/pairing"
)

// Scheme binds the commitment/proof machinery to one CommonReferenceString.
// It is stateless beyond that reference: every Commit/Prove/Verify call is
// pure with respect to its arguments (randomness excepted).
type Scheme struct {
	crs *crs.CommonReferenceString
	log log.Logger
}

// SchemeOption configures New.
type SchemeOption func(*Scheme)

// WithSchemeLogger attaches a structured logger; New defaults to log.NoLog{}.
func WithSchemeLogger(l log.Logger) SchemeOption {
	return func(s *Scheme) { s.log = l }
}

// New binds a Scheme to c.
func New(c *crs.CommonReferenceString, opts ...SchemeOption) *Scheme {
	s := &Scheme{crs: c, log: log.NoLog{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CRS returns the scheme's bound common reference string.
func (s *Scheme) CRS() *crs.CommonReferenceString { return s.crs }

// Commit commits to a column of group-b witnesses X, with commitment
// randomness R (n x 2 over Zr); a nil R samples fresh randomness. Returns
// the commitment C = fatMap(X, ι) + R*u (b=1) or R*v (b=2), and the
// randomness actually used.
func (s *Scheme) Commit(groupID matrix.GroupID, x *matrix.Matrix, r *matrix.Matrix) (*fatmatrix.FatMatrix, *matrix.Matrix, error) {
	n := x.Rows()
	if x.Cols() != 1 {
		return nil, nil, fmt.Errorf("%w: witness column must be n x 1, got %dx%d", ErrWitnessDimension, x.Rows(), x.Cols())
	}
	var err error
	if r == nil {
		r, err = s.crs.RandomZrMatrix(n, 2)
		if err != nil {
			return nil, nil, err
		}
	}

	lifted, err := fatMapIota(x)
	if err != nil {
		return nil, nil, err
	}

	var key *fatmatrix.FatMatrix
	switch groupID {
	case matrix.GroupG1:
		key = s.crs.U()
	case matrix.GroupG2:
		key = s.crs.V()
	default:
		return nil, nil, fmt.Errorf("%w: got %s", ErrGroupID, groupID)
	}

	blind, err := fatmatrix.LeftMulMatrix(r, key)
	if err != nil {
		return nil, nil, err
	}
	c, err := lifted.Add(blind)
	if err != nil {
		return nil, nil, err
	}
	return c, r, nil
}

// CommitPrime commits to a column of Zr witnesses z, embedded into group
// groupID via ι′, with per-row randomness t (n x 1 over Zr); a nil t
// samples fresh randomness. Cell i is ι′_b(z(i,1)) + (u1 or v1)*t(i,1).
func (s *Scheme) CommitPrime(groupID matrix.GroupID, z *matrix.Matrix, t *matrix.Matrix) (*fatmatrix.FatMatrix, *matrix.Matrix, error) {
	n := z.Rows()
	if z.Cols() != 1 {
		return nil, nil, fmt.Errorf("%w: witness column must be n x 1, got %dx%d", ErrWitnessDimension, z.Rows(), z.Cols())
	}
	var err error
	if t == nil {
		t, err = s.crs.RandomZrMatrix(n, 1)
		if err != nil {
			return nil, nil, err
		}
	}

	var field pairing.Field
	var one *matrix.Matrix
	switch groupID {
	case matrix.GroupG1:
		field = s.crs.G1()
		one = s.crs.U1()
	case matrix.GroupG2:
		field = s.crs.G2()
		one = s.crs.V1()
	default:
		return nil, nil, fmt.Errorf("%w: got %s", ErrGroupID, groupID)
	}

	out := fatmatrix.New(n, 1, 2, 1, field)
	for i := 1; i <= n; i++ {
		zi, err := z.Get(i, 1)
		if err != nil {
			return nil, nil, err
		}
		lifted, err := iotaPrime(s.crs, groupID, zi)
		if err != nil {
			return nil, nil, err
		}
		ti, err := t.Get(i, 1)
		if err != nil {
			return nil, nil, err
		}
		scaled, err := one.ScalarMul(ti)
		if err != nil {
			return nil, nil, err
		}
		cell, err := lifted.Add(scaled)
		if err != nil {
			return nil, nil, err
		}
		if err := out.Set(i, 1, cell); err != nil {
			return nil, nil, err
		}
	}
	return out, t, nil
}
