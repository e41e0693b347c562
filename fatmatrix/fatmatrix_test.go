// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fatmatrix

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/grothsahai/matrix"
	"github.com/luxfi/grothsahai/pairing"
)

func testSuite(t *testing.T) pairing.Suite {
	t.Helper()
	suite, err := pairing.Lookup(pairing.DefaultCurveKey)
	require.NoError(t, err)
	return suite
}

func column(t *testing.T, field pairing.Field, elems ...pairing.Element) *matrix.Matrix {
	t.Helper()
	m := matrix.New(len(elems), 1, field)
	for i, e := range elems {
		require.NoError(t, m.Set(i+1, 1, e))
	}
	return m
}

func TestFPairsCorrespondingEntries(t *testing.T) {
	require := require.New(t)
	suite := testSuite(t)

	g1a, err := suite.G1().Random()
	require.NoError(err)
	g1b, err := suite.G1().Random()
	require.NoError(err)
	g2a, err := suite.G2().Random()
	require.NoError(err)
	g2b, err := suite.G2().Random()
	require.NoError(err)

	a := column(t, suite.G1(), g1a, g1b)
	b := column(t, suite.G2(), g2a, g2b)

	r, err := F(suite, a, b)
	require.NoError(err)
	require.Equal(2, r.Rows())
	require.Equal(2, r.Cols())

	r11, err := r.Get(1, 1)
	require.NoError(err)
	want, err := suite.Pair(g1a, g2a)
	require.NoError(err)
	require.True(r11.IsEqual(want))

	r22, err := r.Get(2, 2)
	require.NoError(err)
	want22, err := suite.Pair(g1b, g2b)
	require.NoError(err)
	require.True(r22.IsEqual(want22))
}

func TestFatPointSumsF(t *testing.T) {
	require := require.New(t)
	suite := testSuite(t)

	mkCol := func(field pairing.Field) *matrix.Matrix {
		e1, err := field.Random()
		require.NoError(err)
		e2, err := field.Random()
		require.NoError(err)
		return column(t, field, e1, e2)
	}

	a1, a2 := mkCol(suite.G1()), mkCol(suite.G1())
	b1, b2 := mkCol(suite.G2()), mkCol(suite.G2())

	colA := New(2, 1, 2, 1, suite.G1())
	require.NoError(colA.Set(1, 1, a1))
	require.NoError(colA.Set(2, 1, a2))

	colB := New(2, 1, 2, 1, suite.G2())
	require.NoError(colB.Set(1, 1, b1))
	require.NoError(colB.Set(2, 1, b2))

	got, err := colA.FatPoint(suite, colB)
	require.NoError(err)

	f1, err := F(suite, a1, b1)
	require.NoError(err)
	f2, err := F(suite, a2, b2)
	require.NoError(err)
	want, err := f1.Add(f2)
	require.NoError(err)

	require.True(got.IsEqual(want))
}

func TestAddSubTransposeEquality(t *testing.T) {
	require := require.New(t)
	suite := testSuite(t)

	a, err := NewRandom(2, 3, 2, 1, suite.Zr())
	require.NoError(err)
	b, err := NewRandom(2, 3, 2, 1, suite.Zr())
	require.NoError(err)

	sum, err := a.Add(b)
	require.NoError(err)
	back, err := sum.Sub(b)
	require.NoError(err)
	require.True(back.IsEqual(a))

	require.True(a.Transpose().Transpose().IsEqual(a))
}

func TestByteRoundTripRequiresGroupID(t *testing.T) {
	require := require.New(t)
	suite := testSuite(t)

	a, err := NewRandom(2, 2, 2, 1, suite.Zr())
	require.NoError(err)

	_, err = a.ToBytes()
	require.ErrorIs(err, ErrGroupIDMissing)

	labelled, err := a.WithGroupID(matrix.GroupZr)
	require.NoError(err)

	data, err := labelled.ToBytes()
	require.NoError(err)

	back := New(2, 2, 2, 1, suite.Zr())
	require.NoError(back.SetFromBytes(data))
	require.True(back.IsEqual(labelled))
}

func TestFatMapLiftsElementwise(t *testing.T) {
	require := require.New(t)
	suite := testSuite(t)

	g1 := matrix.New(2, 1, suite.G1())
	e1, err := suite.G1().Random()
	require.NoError(err)
	e2, err := suite.G1().Random()
	require.NoError(err)
	require.NoError(g1.Set(1, 1, e1))
	require.NoError(g1.Set(2, 1, e2))

	lift := func(e pairing.Element) (*matrix.Matrix, error) {
		m := matrix.New(2, 1, suite.G1())
		if err := m.Set(2, 1, e); err != nil {
			return nil, err
		}
		return m, nil
	}

	fm, err := FatMap(g1, 2, 1, suite.G1(), lift)
	require.NoError(err)
	require.Equal(2, fm.Rows())
	require.Equal(1, fm.Cols())

	cell, err := fm.Get(1, 1)
	require.NoError(err)
	bottom, err := cell.Get(2, 1)
	require.NoError(err)
	require.True(bottom.IsEqual(e1))
}

func TestLeftMulMatrixRequiresZr(t *testing.T) {
	suite := testSuite(t)
	b, err := NewRandom(2, 2, 2, 1, suite.G1())
	require.NoError(t, err)
	a := matrix.New(2, 2, suite.G1()) // wrong field: must be Zr

	_, err = LeftMulMatrix(a, b)
	require.ErrorIs(t, err, ErrFieldMismatch)
}
