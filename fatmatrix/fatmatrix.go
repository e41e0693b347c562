// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fatmatrix is a matrix of matrices: the block-level algebra the
// Groth-Sahai commitment module u/v vectors and proof components are built
// from. A FatMatrix is a 1-indexed outer grid whose cells are all
// matrix.Matrix values of identical inner shape and field.
//
// The lifting operations spec.md places on Matrix itself — fatMap and the
// "A: Matrix · B: FatMatrix" scalar-lift multiplication — live here instead,
// as package-level functions taking a *matrix.Matrix operand: Matrix cannot
// import this package back (FatMatrix is built from Matrix), so anything
// that produces a FatMatrix from Matrix input is defined on this side of
// the boundary.
package fatmatrix

import (
	"fmt"

	"github.com/luxfi/grothsahai/matrix"
	"github.com/luxfi/grothsahai/pairing"
)

// FatMatrix is a rows x cols grid of matrix.Matrix cells, each
// innerRows x innerCols over the same field.
type FatMatrix struct {
	rows, cols           int
	innerRows, innerCols int
	field                pairing.Field
	cells                []*matrix.Matrix // row-major
	groupID              matrix.GroupID
	hasGroupID           bool
}

// New constructs a rows x cols FatMatrix whose cells are all zero-filled
// innerRows x innerCols matrices.
func New(rows, cols, innerRows, innerCols int, field pairing.Field) *FatMatrix {
	f := &FatMatrix{
		rows: rows, cols: cols,
		innerRows: innerRows, innerCols: innerCols,
		field: field,
		cells: make([]*matrix.Matrix, rows*cols),
	}
	for i := range f.cells {
		f.cells[i] = matrix.New(innerRows, innerCols, field)
	}
	return f
}

// NewRandom constructs a FatMatrix whose cells are independently sampled
// uniform inner matrices.
func NewRandom(rows, cols, innerRows, innerCols int, field pairing.Field) (*FatMatrix, error) {
	f := &FatMatrix{
		rows: rows, cols: cols,
		innerRows: innerRows, innerCols: innerCols,
		field: field,
		cells: make([]*matrix.Matrix, rows*cols),
	}
	for i := range f.cells {
		inner, err := matrix.NewRandom(innerRows, innerCols, field)
		if err != nil {
			return nil, fmt.Errorf("fatmatrix: sampling cell %d: %w", i, err)
		}
		f.cells[i] = inner
	}
	return f, nil
}

// NewFromBytes decodes a FatMatrix from the row-major concatenation of its
// cells' byte encodings (shape supplied out-of-band, per spec §6).
func NewFromBytes(rows, cols, innerRows, innerCols int, field pairing.Field, data []byte) (*FatMatrix, error) {
	f := New(rows, cols, innerRows, innerCols, field)
	if err := f.SetFromBytes(data); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *FatMatrix) idx(i, j int) (int, error) {
	if i < 1 || i > f.rows || j < 1 || j > f.cols {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrIndexOutOfRange, i, j, f.rows, f.cols)
	}
	return (i-1)*f.cols + (j - 1), nil
}

func (f *FatMatrix) Rows() int            { return f.rows }
func (f *FatMatrix) Cols() int            { return f.cols }
func (f *FatMatrix) InnerRows() int       { return f.innerRows }
func (f *FatMatrix) InnerCols() int       { return f.innerCols }
func (f *FatMatrix) Field() pairing.Field { return f.field }

// GroupID returns the FatMatrix's persistence label and whether one was set.
func (f *FatMatrix) GroupID() (matrix.GroupID, bool) { return f.groupID, f.hasGroupID }

// WithGroupID returns a duplicate of f labelled for persistence, with the
// label propagated to every inner Matrix as spec §4.2 requires.
func (f *FatMatrix) WithGroupID(id matrix.GroupID) (*FatMatrix, error) {
	dup := f.Dup()
	cells := make([]*matrix.Matrix, len(dup.cells))
	for i, c := range dup.cells {
		labelled, err := c.WithGroupID(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGroupIDInvalid, err)
		}
		cells[i] = labelled
	}
	dup.cells = cells
	dup.groupID = id
	dup.hasGroupID = true
	return dup, nil
}

// Dup returns an independent copy of f.
func (f *FatMatrix) Dup() *FatMatrix {
	cells := make([]*matrix.Matrix, len(f.cells))
	for i, c := range f.cells {
		cells[i] = c.Dup()
	}
	return &FatMatrix{
		rows: f.rows, cols: f.cols,
		innerRows: f.innerRows, innerCols: f.innerCols,
		field: f.field, cells: cells,
		groupID: f.groupID, hasGroupID: f.hasGroupID,
	}
}

// Get returns the 1-indexed inner matrix at (i, j).
func (f *FatMatrix) Get(i, j int) (*matrix.Matrix, error) {
	k, err := f.idx(i, j)
	if err != nil {
		return nil, err
	}
	return f.cells[k], nil
}

// Set stores an immutable duplicate of m at (i, j). m must match f's inner
// shape and field.
func (f *FatMatrix) Set(i, j int, m *matrix.Matrix) error {
	k, err := f.idx(i, j)
	if err != nil {
		return err
	}
	if m.Rows() != f.innerRows || m.Cols() != f.innerCols {
		return fmt.Errorf("%w: cell (%d,%d) is %dx%d, expected %dx%d", ErrDimensionMismatch, i, j, m.Rows(), m.Cols(), f.innerRows, f.innerCols)
	}
	if m.Field() != f.field {
		return fmt.Errorf("%w: cell (%d,%d) is %s, fatmatrix is %s", ErrFieldMismatch, i, j, m.Field().Kind(), f.field.Kind())
	}
	f.cells[k] = m.Dup()
	return nil
}

func (f *FatMatrix) sameShape(other *FatMatrix) error {
	if f.rows != other.rows || f.cols != other.cols {
		return fmt.Errorf("%w: outer %dx%d vs %dx%d", ErrDimensionMismatch, f.rows, f.cols, other.rows, other.cols)
	}
	if f.innerRows != other.innerRows || f.innerCols != other.innerCols {
		return fmt.Errorf("%w: inner %dx%d vs %dx%d", ErrDimensionMismatch, f.innerRows, f.innerCols, other.innerRows, other.innerCols)
	}
	if f.field != other.field {
		return fmt.Errorf("%w: %s vs %s", ErrFieldMismatch, f.field.Kind(), other.field.Kind())
	}
	return nil
}

// Add returns the cellwise sum of f and other.
func (f *FatMatrix) Add(other *FatMatrix) (*FatMatrix, error) {
	if err := f.sameShape(other); err != nil {
		return nil, err
	}
	return f.cellwise(other, (*matrix.Matrix).Add)
}

// Sub returns the cellwise difference of f and other.
func (f *FatMatrix) Sub(other *FatMatrix) (*FatMatrix, error) {
	if err := f.sameShape(other); err != nil {
		return nil, err
	}
	return f.cellwise(other, (*matrix.Matrix).Sub)
}

func (f *FatMatrix) cellwise(other *FatMatrix, op func(*matrix.Matrix, *matrix.Matrix) (*matrix.Matrix, error)) (*FatMatrix, error) {
	res := &FatMatrix{rows: f.rows, cols: f.cols, innerRows: f.innerRows, innerCols: f.innerCols, field: f.field, cells: make([]*matrix.Matrix, len(f.cells))}
	for i := range f.cells {
		c, err := op(f.cells[i], other.cells[i])
		if err != nil {
			return nil, err
		}
		res.cells[i] = c
	}
	return res, nil
}

// Transpose returns the cols x rows transpose of f.
func (f *FatMatrix) Transpose() *FatMatrix {
	res := New(f.cols, f.rows, f.innerRows, f.innerCols, f.field)
	for i := 1; i <= f.rows; i++ {
		for j := 1; j <= f.cols; j++ {
			v, _ := f.Get(i, j)
			_ = res.Set(j, i, v)
		}
	}
	return res
}

// IsEqual reports whether f and other have identical outer/inner shape and
// cellwise-equal inner matrices.
func (f *FatMatrix) IsEqual(other *FatMatrix) bool {
	if other == nil || f.rows != other.rows || f.cols != other.cols {
		return false
	}
	if f.innerRows != other.innerRows || f.innerCols != other.innerCols {
		return false
	}
	for i, c := range f.cells {
		if !c.IsEqual(other.cells[i]) {
			return false
		}
	}
	return true
}

// ToBytes is the row-major concatenation of every cell's ToBytes. The
// outer groupID must be set first (spec §4.2); it is not embedded in the
// output — only validated, since shape and group identity are carried
// out-of-band by the caller (the crs package's archive format).
func (f *FatMatrix) ToBytes() ([]byte, error) {
	if !f.hasGroupID {
		return nil, ErrGroupIDMissing
	}
	var buf []byte
	for _, c := range f.cells {
		buf = append(buf, c.ToBytes()...)
	}
	return buf, nil
}

// SetFromBytes overwrites every cell of f by decoding data as a row-major
// concatenation of inner-matrix encodings.
func (f *FatMatrix) SetFromBytes(data []byte) error {
	cellLen := f.innerRows * f.innerCols * f.field.EncodedLen()
	want := cellLen * len(f.cells)
	if len(data) != want {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrDimensionMismatch, want, len(data))
	}
	cells := make([]*matrix.Matrix, len(f.cells))
	for i := range cells {
		inner, err := matrix.NewFromBytes(f.innerRows, f.innerCols, f.field, data[i*cellLen:(i+1)*cellLen])
		if err != nil {
			return fmt.Errorf("fatmatrix: decoding cell %d: %w", i, err)
		}
		cells[i] = inner
	}
	f.cells = cells
	return nil
}

// Single wraps m as the sole cell of a 1x1 outer FatMatrix — the fat-matrix
// view of a flat commitment-key vector (u1, v1, ...) used wherever a prover
// or verifier formula needs to multiply a Matrix operand against it via
// LeftMulMatrix instead of Matrix.ScalarMul.
func Single(m *matrix.Matrix) *FatMatrix {
	f := &FatMatrix{
		rows: 1, cols: 1,
		innerRows: m.Rows(), innerCols: m.Cols(),
		field: m.Field(),
		cells: []*matrix.Matrix{m.Dup()},
	}
	return f
}

// Flatten returns the sole inner matrix of a 1x1 outer FatMatrix — the
// fat-matrix counterpart of matrix.Matrix.Flatten, used to reduce a
// degenerate fat proof component back down to a flat Matrix.
func (f *FatMatrix) Flatten() (*matrix.Matrix, error) {
	if f.rows != 1 || f.cols != 1 {
		return nil, fmt.Errorf("%w: got outer %dx%d", ErrDimensionMismatch, f.rows, f.cols)
	}
	return f.cells[0], nil
}

// FatMap builds a FatMatrix by applying f to every cell of m, each result
// becoming an innerRows x innerCols inner matrix over innerField. This is
// the structural lift used for ι and ι′ throughout the groth package.
func FatMap(m *matrix.Matrix, innerRows, innerCols int, innerField pairing.Field, lift func(pairing.Element) (*matrix.Matrix, error)) (*FatMatrix, error) {
	res := New(m.Rows(), m.Cols(), innerRows, innerCols, innerField)
	for i := 1; i <= m.Rows(); i++ {
		for j := 1; j <= m.Cols(); j++ {
			e, err := m.Get(i, j)
			if err != nil {
				return nil, err
			}
			inner, err := lift(e)
			if err != nil {
				return nil, err
			}
			if err := res.Set(i, j, inner); err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

// LeftMulMatrix is spec §4.1's "A: Matrix * B: FatMatrix" fat
// multiplication: a must be a Zr matrix with a.Cols() == b.Rows(); cell
// (i,j) of the result is Σ_k b(k,j) scaled by a(i,k) via MulZn.
func LeftMulMatrix(a *matrix.Matrix, b *FatMatrix) (*FatMatrix, error) {
	if a.Field().Kind() != pairing.Zr {
		return nil, fmt.Errorf("%w: left operand must be a Zr matrix, got %s", ErrFieldMismatch, a.Field().Kind())
	}
	if a.Cols() != b.rows {
		return nil, fmt.Errorf("%w: %dx%d * (%dx%d of %dx%d)", ErrDimensionMismatch, a.Rows(), a.Cols(), b.rows, b.cols, b.innerRows, b.innerCols)
	}
	res := New(a.Rows(), b.cols, b.innerRows, b.innerCols, b.field)
	for i := 1; i <= a.Rows(); i++ {
		for j := 1; j <= b.cols; j++ {
			acc := matrix.New(b.innerRows, b.innerCols, b.field)
			for k := 1; k <= a.Cols(); k++ {
				scalar, err := a.Get(i, k)
				if err != nil {
					return nil, err
				}
				bkj, err := b.Get(k, j)
				if err != nil {
					return nil, err
				}
				scaled, err := bkj.ScalarMul(scalar)
				if err != nil {
					return nil, err
				}
				acc, err = acc.Add(scaled)
				if err != nil {
					return nil, err
				}
			}
			if err := res.Set(i, j, acc); err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

// F is the pairing-lift of spec §4.2: for a in G1^(2x1) and b in G2^(2x1),
// it returns the 2x2 Gt matrix with R(i,j) = e(a(i,1), b(j,1)).
func F(suite pairing.Suite, a, b *matrix.Matrix) (*matrix.Matrix, error) {
	if a.Rows() != 2 || a.Cols() != 1 || a.Field() != suite.G1() {
		return nil, fmt.Errorf("%w: F expects a 2x1 G1 matrix", ErrFieldMismatch)
	}
	if b.Rows() != 2 || b.Cols() != 1 || b.Field() != suite.G2() {
		return nil, fmt.Errorf("%w: F expects a 2x1 G2 matrix", ErrFieldMismatch)
	}
	res := matrix.New(2, 2, suite.Gt())
	for i := 1; i <= 2; i++ {
		ai, err := a.Get(i, 1)
		if err != nil {
			return nil, err
		}
		for j := 1; j <= 2; j++ {
			bj, err := b.Get(j, 1)
			if err != nil {
				return nil, err
			}
			e, err := suite.Pair(ai, bj)
			if err != nil {
				return nil, err
			}
			if err := res.Set(i, j, e); err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

// FatPoint reduces two n x 1 column FatMatrices (inner shapes matching F's
// G1/G2 operands) to a single 2x2 Gt matrix: Σ_i F(suite, f(i,1), other(i,1)).
// This is the bilinear evaluator every Groth-Sahai verifier calls.
func (f *FatMatrix) FatPoint(suite pairing.Suite, other *FatMatrix) (*matrix.Matrix, error) {
	if f.cols != 1 || other.cols != 1 {
		return nil, fmt.Errorf("%w: fatPoint requires column fat matrices", ErrDimensionMismatch)
	}
	if f.rows != other.rows {
		return nil, fmt.Errorf("%w: %d rows vs %d rows", ErrDimensionMismatch, f.rows, other.rows)
	}
	acc := matrix.New(2, 2, suite.Gt())
	for i := 1; i <= f.rows; i++ {
		ai, err := f.Get(i, 1)
		if err != nil {
			return nil, err
		}
		bi, err := other.Get(i, 1)
		if err != nil {
			return nil, err
		}
		term, err := F(suite, ai, bi)
		if err != nil {
			return nil, err
		}
		acc, err = acc.Add(term)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}
