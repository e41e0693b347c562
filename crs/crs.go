// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package crs generates, persists and serves the Groth-Sahai common
// reference string: the structured commitment keys (u1, u2, v1, v2) that
// make the scheme's commitments perfectly binding under SXDH.
package crs

import (
	"fmt"

	"github.com/luxfi/log"

	"github.com/luxfi/grothsahai/fatmatrix"
	"github.com/luxfi/grothsahai/matrix"
	"github.com/luxfi/grothsahai/pairing"
)

// CommonReferenceString holds a curve's pairing handle and the
// u1, u2 (in G1) / v1, v2 (in G2) commitment-key vectors spec §4.3
// describes. Once generated or loaded it is treated as read-only: every
// accessor returns either an immutable value or a duplicate.
type CommonReferenceString struct {
	curveKey string
	suite    pairing.Suite

	g pairing.Element // generator in G1
	h pairing.Element // generator in G2

	u1, u2 *matrix.Matrix // G1^{2x1}
	v1, v2 *matrix.Matrix // G2^{2x1}

	log log.Logger
}

// Option configures Generate.
type Option func(*genOptions)

type genOptions struct {
	log log.Logger
}

// WithLogger attaches a structured logger; Generate defaults to log.NoLog{}.
func WithLogger(l log.Logger) Option {
	return func(o *genOptions) { o.log = l }
}

// Generate produces a fresh CRS for curveKey, per spec §4.3:
//  1. sample G ← G1, H ← G2 uniformly;
//  2. sample α, β ← Zr; set u1 = (G, αG), u2 = β·u1;
//  3. sample γ, δ ← Zr; set v1 = (H, γH), v2 = δ·v1.
func Generate(curveKey string, opts ...Option) (*CommonReferenceString, error) {
	o := genOptions{log: log.NoLog{}}
	for _, opt := range opts {
		opt(&o)
	}

	suite, err := pairing.Lookup(curveKey)
	if err != nil {
		return nil, fmt.Errorf("crs: %w", err)
	}

	g, err := suite.G1().Random()
	if err != nil {
		return nil, fmt.Errorf("crs: sampling G: %w", err)
	}
	h, err := suite.G2().Random()
	if err != nil {
		return nil, fmt.Errorf("crs: sampling H: %w", err)
	}

	alpha, err := suite.Zr().Random()
	if err != nil {
		return nil, fmt.Errorf("crs: sampling alpha: %w", err)
	}
	beta, err := suite.Zr().Random()
	if err != nil {
		return nil, fmt.Errorf("crs: sampling beta: %w", err)
	}
	u1, err := commitmentVector(suite.G1(), g, alpha)
	if err != nil {
		return nil, err
	}
	u2, err := u1.ScalarMul(beta)
	if err != nil {
		return nil, fmt.Errorf("crs: computing u2: %w", err)
	}

	gamma, err := suite.Zr().Random()
	if err != nil {
		return nil, fmt.Errorf("crs: sampling gamma: %w", err)
	}
	delta, err := suite.Zr().Random()
	if err != nil {
		return nil, fmt.Errorf("crs: sampling delta: %w", err)
	}
	v1, err := commitmentVector(suite.G2(), h, gamma)
	if err != nil {
		return nil, err
	}
	v2, err := v1.ScalarMul(delta)
	if err != nil {
		return nil, fmt.Errorf("crs: computing v2: %w", err)
	}

	c := &CommonReferenceString{
		curveKey: suite.CurveKey(),
		suite:    suite,
		g:        g, h: h,
		u1: u1, u2: u2,
		v1: v1, v2: v2,
		log: o.log,
	}
	c.log.Debug("generated CRS", log.String("curve", c.curveKey))
	return c, nil
}

// commitmentVector builds the 2x1 matrix (base, exponent*base).
func commitmentVector(field pairing.Field, base, exponent pairing.Element) (*matrix.Matrix, error) {
	scaled, err := base.MulZn(exponent)
	if err != nil {
		return nil, fmt.Errorf("crs: scaling generator: %w", err)
	}
	m := matrix.New(2, 1, field)
	if err := m.Set(1, 1, base); err != nil {
		return nil, err
	}
	if err := m.Set(2, 1, scaled); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *CommonReferenceString) CurveKey() string { return c.curveKey }
func (c *CommonReferenceString) Suite() pairing.Suite { return c.suite }

func (c *CommonReferenceString) G1() pairing.Field { return c.suite.G1() }
func (c *CommonReferenceString) G2() pairing.Field { return c.suite.G2() }
func (c *CommonReferenceString) Gt() pairing.Field { return c.suite.Gt() }
func (c *CommonReferenceString) Zr() pairing.Field { return c.suite.Zr() }

func (c *CommonReferenceString) G() pairing.Element { return c.g.Dup() }
func (c *CommonReferenceString) H() pairing.Element { return c.h.Dup() }

func (c *CommonReferenceString) U1() *matrix.Matrix { return c.u1.Dup() }
func (c *CommonReferenceString) U2() *matrix.Matrix { return c.u2.Dup() }
func (c *CommonReferenceString) V1() *matrix.Matrix { return c.v1.Dup() }
func (c *CommonReferenceString) V2() *matrix.Matrix { return c.v2.Dup() }

// U returns the stacked commitment key u = (u1; u2) as a 2x1 FatMatrix of
// 2x1 inner G1 matrices.
func (c *CommonReferenceString) U() *fatmatrix.FatMatrix {
	f := fatmatrix.New(2, 1, 2, 1, c.suite.G1())
	_ = f.Set(1, 1, c.u1)
	_ = f.Set(2, 1, c.u2)
	return f
}

// V returns the stacked commitment key v = (v1; v2), symmetric to U.
func (c *CommonReferenceString) V() *fatmatrix.FatMatrix {
	f := fatmatrix.New(2, 1, 2, 1, c.suite.G2())
	_ = f.Set(1, 1, c.v1)
	_ = f.Set(2, 1, c.v2)
	return f
}

// RandomZrMatrix samples an r x c matrix of uniform Zr scalars — used to
// draw fresh commitment and proof randomness.
func (c *CommonReferenceString) RandomZrMatrix(r, cols int) (*matrix.Matrix, error) {
	return matrix.NewRandom(r, cols, c.suite.Zr())
}

// UnitMatrix returns the n x n identity matrix over Zr.
func (c *CommonReferenceString) UnitMatrix(n int) (*matrix.Matrix, error) {
	m := matrix.New(n, n, c.suite.Zr())
	one := c.suite.Zr().One()
	for i := 1; i <= n; i++ {
		if err := m.Set(i, i, one); err != nil {
			return nil, err
		}
	}
	return m, nil
}
