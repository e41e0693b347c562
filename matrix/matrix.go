// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package matrix is the generic, field-agnostic two-level matrix algebra
// the Groth-Sahai scheme is built from. A Matrix is a 1-indexed grid of
// pairing.Element values drawn from a single pairing.Field; every operation
// below returns a fresh Matrix rather than mutating its receiver, with the
// sole documented exception of Set during construction.
package matrix

import (
	"fmt"

	"github.com/luxfi/grothsahai/pairing"
)

// GroupID labels the algebraic domain a Matrix holds, for persistence by a
// caller such as the crs package. It is set once, at construction, and
// carried — never recomputed from cell contents.
type GroupID string

const (
	GroupG1 GroupID = "G1"
	GroupG2 GroupID = "G2"
	GroupZr GroupID = "Zr"
)

func (g GroupID) valid() bool {
	switch g {
	case GroupG1, GroupG2, GroupZr:
		return true
	default:
		return false
	}
}

// Matrix is a 1-indexed rows x cols grid of elements of a single field.
type Matrix struct {
	rows, cols int
	field      pairing.Field
	cells      []pairing.Element // row-major, 0-indexed storage
	groupID    GroupID
	hasGroupID bool
}

// New constructs a rows x cols matrix whose cells are all field.Zero().
func New(rows, cols int, field pairing.Field) *Matrix {
	m := &Matrix{rows: rows, cols: cols, field: field, cells: make([]pairing.Element, rows*cols)}
	zero := field.Zero()
	for i := range m.cells {
		m.cells[i] = zero.Dup()
	}
	return m
}

// NewRandom constructs a rows x cols matrix of independently sampled
// uniform elements.
func NewRandom(rows, cols int, field pairing.Field) (*Matrix, error) {
	m := &Matrix{rows: rows, cols: cols, field: field, cells: make([]pairing.Element, rows*cols)}
	for i := range m.cells {
		e, err := field.Random()
		if err != nil {
			return nil, fmt.Errorf("matrix: sampling cell %d: %w", i, err)
		}
		m.cells[i] = e
	}
	return m, nil
}

// NewFromBytes decodes a rows x cols matrix from its row-major byte
// encoding (spec §6: shape is carried out-of-band by the caller).
func NewFromBytes(rows, cols int, field pairing.Field, data []byte) (*Matrix, error) {
	m := New(rows, cols, field)
	if err := m.SetFromBytes(data); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Matrix) idx(i, j int) (int, error) {
	if i < 1 || i > m.rows || j < 1 || j > m.cols {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrIndexOutOfRange, i, j, m.rows, m.cols)
	}
	return (i-1)*m.cols + (j - 1), nil
}

func (m *Matrix) Rows() int            { return m.rows }
func (m *Matrix) Cols() int            { return m.cols }
func (m *Matrix) Field() pairing.Field { return m.field }

// GroupID returns the matrix's persistence label and whether one was set.
func (m *Matrix) GroupID() (GroupID, bool) { return m.groupID, m.hasGroupID }

// WithGroupID returns a duplicate of m labelled for persistence.
func (m *Matrix) WithGroupID(id GroupID) (*Matrix, error) {
	if !id.valid() {
		return nil, fmt.Errorf("%w: %q", ErrGroupIDInvalid, id)
	}
	dup := m.Dup()
	dup.groupID = id
	dup.hasGroupID = true
	return dup, nil
}

// Dup returns an independent copy of m.
func (m *Matrix) Dup() *Matrix {
	cells := make([]pairing.Element, len(m.cells))
	for i, c := range m.cells {
		cells[i] = c.Dup()
	}
	return &Matrix{rows: m.rows, cols: m.cols, field: m.field, cells: cells, groupID: m.groupID, hasGroupID: m.hasGroupID}
}

// Get returns the 1-indexed cell (i, j).
func (m *Matrix) Get(i, j int) (pairing.Element, error) {
	k, err := m.idx(i, j)
	if err != nil {
		return nil, err
	}
	return m.cells[k], nil
}

// Set stores an immutable duplicate of e at (i, j). This is the one
// documented in-place mutation Matrix exposes; every other operation
// returns a fresh Matrix.
func (m *Matrix) Set(i, j int, e pairing.Element) error {
	k, err := m.idx(i, j)
	if err != nil {
		return err
	}
	if e.Field() != m.field {
		return fmt.Errorf("%w: cell (%d,%d) is %s, matrix is %s", ErrFieldMismatch, i, j, e.Field().Kind(), m.field.Kind())
	}
	m.cells[k] = e.Dup()
	return nil
}

func (m *Matrix) sameShape(other *Matrix) error {
	if m.rows != other.rows || m.cols != other.cols {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	if m.field != other.field {
		return fmt.Errorf("%w: %s vs %s", ErrFieldMismatch, m.field.Kind(), other.field.Kind())
	}
	return nil
}

// Add returns the cellwise sum of m and other; both must share shape and
// field.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if err := m.sameShape(other); err != nil {
		return nil, err
	}
	return m.cellwise(other, pairing.Element.Add)
}

// Sub returns the cellwise difference of m and other.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if err := m.sameShape(other); err != nil {
		return nil, err
	}
	return m.cellwise(other, pairing.Element.Sub)
}

func (m *Matrix) cellwise(other *Matrix, op func(pairing.Element, pairing.Element) (pairing.Element, error)) (*Matrix, error) {
	res := &Matrix{rows: m.rows, cols: m.cols, field: m.field, cells: make([]pairing.Element, len(m.cells))}
	for i := range m.cells {
		c, err := op(m.cells[i], other.cells[i])
		if err != nil {
			return nil, err
		}
		res.cells[i] = c
	}
	return res, nil
}

// MulMatrix is ordinary matrix multiplication: m.cols must equal
// other.rows and both must share a field. Cell (i,j) accumulates via the
// field's Add over the field's Mul of the corresponding row/column —
// group composition for G1/G2/Gt, field multiplication for Zr.
func (m *Matrix) MulMatrix(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("%w: %dx%d * %dx%d", ErrDimensionMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	if m.field != other.field {
		return nil, fmt.Errorf("%w: %s vs %s", ErrFieldMismatch, m.field.Kind(), other.field.Kind())
	}
	res := New(m.rows, other.cols, m.field)
	for i := 1; i <= m.rows; i++ {
		for j := 1; j <= other.cols; j++ {
			acc := m.field.Zero()
			for k := 1; k <= m.cols; k++ {
				a, _ := m.Get(i, k)
				b, _ := other.Get(k, j)
				term, err := a.Mul(b)
				if err != nil {
					return nil, err
				}
				acc, err = acc.Add(term)
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

// ScalarMul scales every cell by z, a Zr element.
func (m *Matrix) ScalarMul(z pairing.Element) (*Matrix, error) {
	res := &Matrix{rows: m.rows, cols: m.cols, field: m.field, cells: make([]pairing.Element, len(m.cells))}
	for i, c := range m.cells {
		scaled, err := c.MulZn(z)
		if err != nil {
			return nil, err
		}
		res.cells[i] = scaled
	}
	return res, nil
}

// Transpose returns the cols x rows transpose of m.
func (m *Matrix) Transpose() *Matrix {
	res := New(m.cols, m.rows, m.field)
	for i := 1; i <= m.rows; i++ {
		for j := 1; j <= m.cols; j++ {
			v, _ := m.Get(i, j)
			_ = res.Set(j, i, v)
		}
	}
	return res
}

// Map applies f to every cell, yielding a new Matrix of the same shape.
// f must return elements of m.field.
func (m *Matrix) Map(f func(pairing.Element) (pairing.Element, error)) (*Matrix, error) {
	res := &Matrix{rows: m.rows, cols: m.cols, field: m.field, cells: make([]pairing.Element, len(m.cells))}
	for i, c := range m.cells {
		v, err := f(c)
		if err != nil {
			return nil, err
		}
		if v.Field() != m.field {
			return nil, fmt.Errorf("%w: Map produced %s, matrix is %s", ErrFieldMismatch, v.Field().Kind(), m.field.Kind())
		}
		res.cells[i] = v
	}
	return res, nil
}

// RowAsMatrix extracts row i as a 1 x cols Matrix.
func (m *Matrix) RowAsMatrix(i int) (*Matrix, error) {
	if i < 1 || i > m.rows {
		return nil, fmt.Errorf("%w: row %d outside %d rows", ErrIndexOutOfRange, i, m.rows)
	}
	res := New(1, m.cols, m.field)
	for j := 1; j <= m.cols; j++ {
		v, _ := m.Get(i, j)
		_ = res.Set(1, j, v)
	}
	return res, nil
}

// ReplaceRowFromMatrix returns a copy of m with row i replaced by row j of
// row (default 1 if no j given). row must have exactly m.cols columns and
// share m's field. Pure: unlike the row-replacement routine this is
// modelled on, it never mutates its receiver (spec §9's open question on
// in-place row replacement is resolved in favour of value semantics).
func (m *Matrix) ReplaceRowFromMatrix(i int, row *Matrix, j ...int) (*Matrix, error) {
	srcRow := 1
	if len(j) > 0 {
		srcRow = j[0]
	}
	if i < 1 || i > m.rows {
		return nil, fmt.Errorf("%w: row %d outside %d rows", ErrIndexOutOfRange, i, m.rows)
	}
	if row.cols != m.cols {
		return nil, fmt.Errorf("%w: replacement row has %d cols, matrix has %d", ErrDimensionMismatch, row.cols, m.cols)
	}
	if row.field != m.field {
		return nil, fmt.Errorf("%w: %s vs %s", ErrFieldMismatch, row.field.Kind(), m.field.Kind())
	}
	res := m.Dup()
	for col := 1; col <= m.cols; col++ {
		v, err := row.Get(srcRow, col)
		if err != nil {
			return nil, err
		}
		if err := res.Set(i, col, v); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Flatten returns the sole element of a 1x1 matrix.
func (m *Matrix) Flatten() (pairing.Element, error) {
	if m.rows != 1 || m.cols != 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrFlattenShape, m.rows, m.cols)
	}
	return m.cells[0], nil
}

// IsEqual reports whether m and other have identical shape and cellwise-
// equal elements.
func (m *Matrix) IsEqual(other *Matrix) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, c := range m.cells {
		if !c.IsEqual(other.cells[i]) {
			return false
		}
	}
	return true
}

// ToBytes is the row-major concatenation of each cell's fixed-width
// encoding. Shape is not embedded; callers carry it out-of-band.
func (m *Matrix) ToBytes() []byte {
	if len(m.cells) == 0 {
		return nil
	}
	cellLen := m.field.EncodedLen()
	buf := make([]byte, 0, cellLen*len(m.cells))
	for _, c := range m.cells {
		buf = append(buf, c.Bytes()...)
	}
	return buf
}

// SetFromBytes overwrites every cell of m by decoding data as a row-major
// concatenation of field.EncodedLen()-byte elements. It is the constructor-
// time counterpart to Set: call it on a freshly-created zero matrix of the
// target shape, as NewFromBytes does.
func (m *Matrix) SetFromBytes(data []byte) error {
	cellLen := m.field.EncodedLen()
	want := cellLen * len(m.cells)
	if len(data) != want {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrDimensionMismatch, want, len(data))
	}
	cells := make([]pairing.Element, len(m.cells))
	for i := range cells {
		e, err := m.field.FromBytes(data[i*cellLen : (i+1)*cellLen])
		if err != nil {
			return fmt.Errorf("matrix: decoding cell %d: %w", i, err)
		}
		cells[i] = e
	}
	m.cells = cells
	return nil
}
