// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package groth

import (
	"fmt"

	"github.com/luxfi/grothsahai/crs"
	"github.com/luxfi/grothsahai/fatmatrix"
	"github.com/luxfi/grothsahai/matrix"
	"github.com/luxfi/grothsahai/pairing"
)

// iota lifts a single element of field b into the 2x1 column (0, x)^T —
// the structural embedding ι every commitment and proof formula builds on.
func iota(field pairing.Field, x pairing.Element) (*matrix.Matrix, error) {
	m := matrix.New(2, 1, field)
	if err := m.Set(2, 1, x); err != nil {
		return nil, err
	}
	return m, nil
}

// iotaLift returns a lift function suitable for fatmatrix.FatMap, embedding
// field-b elements via ι.
func iotaLift(field pairing.Field) func(pairing.Element) (*matrix.Matrix, error) {
	return func(x pairing.Element) (*matrix.Matrix, error) {
		return iota(field, x)
	}
}

// iotaPrime lifts a Zr scalar into G_b^{2x1} via ι′_b: (u2+ι(G))·z when
// b=1, (v2+ι(H))·z when b=2.
func iotaPrime(c *crs.CommonReferenceString, groupID matrix.GroupID, z pairing.Element) (*matrix.Matrix, error) {
	switch groupID {
	case matrix.GroupG1:
		base, err := c.U2().Add(mustIota(c.G1(), c.G()))
		if err != nil {
			return nil, err
		}
		return base.ScalarMul(z)
	case matrix.GroupG2:
		base, err := c.V2().Add(mustIota(c.G2(), c.H()))
		if err != nil {
			return nil, err
		}
		return base.ScalarMul(z)
	default:
		return nil, fmt.Errorf("%w: got %s", ErrGroupID, groupID)
	}
}

func mustIota(field pairing.Field, x pairing.Element) *matrix.Matrix {
	m, err := iota(field, x)
	if err != nil {
		panic(err)
	}
	return m
}

// iotaPrimeLift returns a lift function embedding Zr scalars into G_b^{2x1}
// via ι′_b, suitable for fatmatrix.FatMap.
func iotaPrimeLift(c *crs.CommonReferenceString, groupID matrix.GroupID) func(pairing.Element) (*matrix.Matrix, error) {
	return func(z pairing.Element) (*matrix.Matrix, error) {
		return iotaPrime(c, groupID, z)
	}
}

// fatMapIota applies ι to every cell of m (a G_b^{n×1} column), producing
// FatMatrix(n×1; 2×1) over the same field.
func fatMapIota(m *matrix.Matrix) (*fatmatrix.FatMatrix, error) {
	return fatmatrix.FatMap(m, 2, 1, m.Field(), iotaLift(m.Field()))
}

// fatMapIotaPrime applies ι′_groupID to every cell of m (a Zr^{n×1}
// column), producing FatMatrix(n×1; 2×1) over the target group's field.
func fatMapIotaPrime(c *crs.CommonReferenceString, groupID matrix.GroupID, m *matrix.Matrix) (*fatmatrix.FatMatrix, error) {
	var field pairing.Field
	switch groupID {
	case matrix.GroupG1:
		field = c.G1()
	case matrix.GroupG2:
		field = c.G2()
	default:
		return nil, fmt.Errorf("%w: got %s", ErrGroupID, groupID)
	}
	return fatmatrix.FatMap(m, 2, 1, field, iotaPrimeLift(c, groupID))
}
