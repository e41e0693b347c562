// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package groth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/grothsahai/crs"
	"github.com/luxfi/grothsahai/matrix"
	"github.com/luxfi/grothsahai/pairing"
)

func testScheme(t *testing.T) (*Scheme, *crs.CommonReferenceString) {
	t.Helper()
	c, err := crs.Generate(pairing.DefaultCurveKey)
	require.NoError(t, err)
	return New(c), c
}

func col(t *testing.T, field pairing.Field, elems ...pairing.Element) *matrix.Matrix {
	t.Helper()
	m := matrix.New(len(elems), 1, field)
	for i, e := range elems {
		require.NoError(t, m.Set(i+1, 1, e))
	}
	return m
}

// zrMatrix builds a rows x cols Zr matrix from a row-major list of 0/1
// literals, taken from the field's own Zero/One.
func zrMatrix(t *testing.T, field pairing.Field, rows, cols int, bits ...int) *matrix.Matrix {
	t.Helper()
	require.Len(t, bits, rows*cols)
	m := matrix.New(rows, cols, field)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			b := bits[i*cols+j]
			var e pairing.Element
			switch b {
			case 0:
				e = field.Zero()
			case 1:
				e = field.One()
			default:
				t.Fatalf("zrMatrix only supports 0/1, got %d", b)
			}
			require.NoError(t, m.Set(i+1, j+1, e))
		}
	}
	return m
}

// randomCol builds an n x 1 matrix of independently sampled elements —
// used to exercise nonzero witnesses, since an all-zero witness collapses
// every FatPoint/F orientation to the same (zero) result and so cannot
// catch an operand-order bug.
func randomCol(t *testing.T, field pairing.Field, n int) *matrix.Matrix {
	t.Helper()
	elems := make([]pairing.Element, n)
	for i := range elems {
		e, err := field.Random()
		require.NoError(t, err)
		elems[i] = e
	}
	return col(t, field, elems...)
}

// TestPPERoundTrip is the concrete equation e(G,Y1)*e(X1,Y2) = 1_GT: pick
// Y1 at random, set X1 = G and Y2 = -Y1 so the cross term cancels e(G,Y1).
func TestPPERoundTrip(t *testing.T) {
	require := require.New(t)
	s, c := testScheme(t)

	g := c.G()
	zeroG1 := c.G1().Zero()
	zeroG2 := c.G2().Zero()

	y1, err := c.G2().Random()
	require.NoError(err)
	y2 := y1.Neg()
	x2, err := c.G1().Random()
	require.NoError(err)

	eq := PPEEquation{
		A:     col(t, c.G1(), g, zeroG1),
		B:     col(t, c.G2(), zeroG2, zeroG2),
		Gamma: zrMatrix(t, c.Zr(), 2, 2, 0, 1, 0, 0),
	}
	x := col(t, c.G1(), g, x2)
	y := col(t, c.G2(), y1, y2)

	commitX, r, err := s.Commit(matrix.GroupG1, x, nil)
	require.NoError(err)
	commitY, sMat, err := s.Commit(matrix.GroupG2, y, nil)
	require.NoError(err)

	proof, err := s.ProvePPE(eq, x, y, r, sMat, nil)
	require.NoError(err)

	ok, err := s.VerifyPPE(eq, commitX, commitY, proof)
	require.NoError(err)
	require.True(ok, "honest PPE proof must verify")
}

func TestPPESoundnessTamperedTheta(t *testing.T) {
	require := require.New(t)
	s, c := testScheme(t)

	g := c.G()
	zeroG1 := c.G1().Zero()
	zeroG2 := c.G2().Zero()

	y1, err := c.G2().Random()
	require.NoError(err)
	y2 := y1.Neg()
	x2, err := c.G1().Random()
	require.NoError(err)

	eq := PPEEquation{
		A:     col(t, c.G1(), g, zeroG1),
		B:     col(t, c.G2(), zeroG2, zeroG2),
		Gamma: zrMatrix(t, c.Zr(), 2, 2, 0, 1, 0, 0),
	}
	x := col(t, c.G1(), g, x2)
	y := col(t, c.G2(), y1, y2)

	commitX, r, err := s.Commit(matrix.GroupG1, x, nil)
	require.NoError(err)
	commitY, sMat, err := s.Commit(matrix.GroupG2, y, nil)
	require.NoError(err)

	proof, err := s.ProvePPE(eq, x, y, r, sMat, nil)
	require.NoError(err)

	tampered, err := proof.Theta.Add(commitX) // any nonzero perturbation
	require.NoError(err)
	proof.Theta = tampered

	ok, err := s.VerifyPPE(eq, commitX, commitY, proof)
	require.NoError(err)
	require.False(ok, "tampered proof must not verify")
}

// TestPPEZeroKnowledgeSmokeTest checks two honest proofs for the same
// witnesses use independent randomness and (overwhelmingly likely) differ.
func TestPPEZeroKnowledgeSmokeTest(t *testing.T) {
	require := require.New(t)
	s, c := testScheme(t)

	g := c.G()
	zeroG1 := c.G1().Zero()
	zeroG2 := c.G2().Zero()

	y1, err := c.G2().Random()
	require.NoError(err)
	y2 := y1.Neg()
	x2, err := c.G1().Random()
	require.NoError(err)

	eq := PPEEquation{
		A:     col(t, c.G1(), g, zeroG1),
		B:     col(t, c.G2(), zeroG2, zeroG2),
		Gamma: zrMatrix(t, c.Zr(), 2, 2, 0, 1, 0, 0),
	}
	x := col(t, c.G1(), g, x2)
	y := col(t, c.G2(), y1, y2)

	commitX1, r1, err := s.Commit(matrix.GroupG1, x, nil)
	require.NoError(err)
	commitY1, s1, err := s.Commit(matrix.GroupG2, y, nil)
	require.NoError(err)
	proof1, err := s.ProvePPE(eq, x, y, r1, s1, nil)
	require.NoError(err)
	ok1, err := s.VerifyPPE(eq, commitX1, commitY1, proof1)
	require.NoError(err)
	require.True(ok1)

	commitX2, r2, err := s.Commit(matrix.GroupG1, x, nil)
	require.NoError(err)
	commitY2, s2, err := s.Commit(matrix.GroupG2, y, nil)
	require.NoError(err)
	proof2, err := s.ProvePPE(eq, x, y, r2, s2, nil)
	require.NoError(err)
	ok2, err := s.VerifyPPE(eq, commitX2, commitY2, proof2)
	require.NoError(err)
	require.True(ok2)

	require.False(proof1.Pi.IsEqual(proof2.Pi), "independent randomness must yield distinct proofs")
}

// TestMSMG1TrivialEquation exercises Commit/CommitPrime/Prove/Verify with
// all-zero witnesses and constants, so the equation 0=1_GT holds
// unconditionally and completeness can be checked without solving for a
// nontrivial witness.
func TestMSMG1TrivialEquation(t *testing.T) {
	require := require.New(t)
	s, c := testScheme(t)

	zeroG1 := c.G1().Zero()
	zeroZr := c.Zr().Zero()

	eq := MSMG1Equation{
		A:     col(t, c.G1(), zeroG1, zeroG1),
		B:     col(t, c.Zr(), zeroZr, zeroZr),
		Gamma: matrix.New(2, 2, c.Zr()),
	}
	x := col(t, c.G1(), zeroG1, zeroG1)
	y := col(t, c.Zr(), zeroZr, zeroZr)

	commitX, r, err := s.Commit(matrix.GroupG1, x, nil)
	require.NoError(err)
	commitYPrime, sCol, err := s.CommitPrime(matrix.GroupG2, y, nil)
	require.NoError(err)

	proof, err := s.ProveMSMG1(eq, x, y, r, sCol, nil)
	require.NoError(err)

	ok, err := s.VerifyMSMG1(eq, commitX, commitYPrime, proof)
	require.NoError(err)
	require.True(ok)
}

// TestMSMG1NontrivialWitness keeps the equation's constants (A, B, Γ) at
// zero, so any witness satisfies it, but samples X and y uniformly at
// random — exercising the same nonzero fatMap/LeftMulMatrix arithmetic a
// real equation would, unlike TestMSMG1TrivialEquation's all-zero operands.
func TestMSMG1NontrivialWitness(t *testing.T) {
	require := require.New(t)
	s, c := testScheme(t)

	eq := MSMG1Equation{
		A:     matrix.New(2, 1, c.G1()),
		B:     matrix.New(2, 1, c.Zr()),
		Gamma: matrix.New(2, 2, c.Zr()),
	}
	x := randomCol(t, c.G1(), 2)
	y := randomCol(t, c.Zr(), 2)

	commitX, r, err := s.Commit(matrix.GroupG1, x, nil)
	require.NoError(err)
	commitYPrime, sCol, err := s.CommitPrime(matrix.GroupG2, y, nil)
	require.NoError(err)

	proof, err := s.ProveMSMG1(eq, x, y, r, sCol, nil)
	require.NoError(err)

	ok, err := s.VerifyMSMG1(eq, commitX, commitYPrime, proof)
	require.NoError(err)
	require.True(ok, "honest MSM-G1 proof over nonzero witnesses must verify")
}

func TestMSMG2TrivialEquation(t *testing.T) {
	require := require.New(t)
	s, c := testScheme(t)

	zeroG2 := c.G2().Zero()
	zeroZr := c.Zr().Zero()

	eq := MSMG2Equation{
		A:     col(t, c.Zr(), zeroZr, zeroZr),
		B:     col(t, c.G2(), zeroG2, zeroG2),
		Gamma: matrix.New(2, 2, c.Zr()),
	}
	x := col(t, c.Zr(), zeroZr, zeroZr)
	y := col(t, c.G2(), zeroG2, zeroG2)

	commitXPrime, r, err := s.CommitPrime(matrix.GroupG1, x, nil)
	require.NoError(err)
	commitY, sMat, err := s.Commit(matrix.GroupG2, y, nil)
	require.NoError(err)

	proof, err := s.ProveMSMG2(eq, x, y, r, sMat, nil)
	require.NoError(err)

	ok, err := s.VerifyMSMG2(eq, commitXPrime, commitY, proof)
	require.NoError(err)
	require.True(ok)
}

// TestMSMG2NontrivialWitness is TestMSMG1NontrivialWitness's dual.
func TestMSMG2NontrivialWitness(t *testing.T) {
	require := require.New(t)
	s, c := testScheme(t)

	eq := MSMG2Equation{
		A:     matrix.New(2, 1, c.Zr()),
		B:     matrix.New(2, 1, c.G2()),
		Gamma: matrix.New(2, 2, c.Zr()),
	}
	x := randomCol(t, c.Zr(), 2)
	y := randomCol(t, c.G2(), 2)

	commitXPrime, r, err := s.CommitPrime(matrix.GroupG1, x, nil)
	require.NoError(err)
	commitY, sMat, err := s.Commit(matrix.GroupG2, y, nil)
	require.NoError(err)

	proof, err := s.ProveMSMG2(eq, x, y, r, sMat, nil)
	require.NoError(err)

	ok, err := s.VerifyMSMG2(eq, commitXPrime, commitY, proof)
	require.NoError(err)
	require.True(ok, "honest MSM-G2 proof over nonzero witnesses must verify")
}

func TestQuadraticTrivialEquation(t *testing.T) {
	require := require.New(t)
	s, c := testScheme(t)

	zeroZr := c.Zr().Zero()

	eq := QuadraticEquation{
		A:     col(t, c.Zr(), zeroZr, zeroZr),
		B:     col(t, c.Zr(), zeroZr, zeroZr),
		Gamma: matrix.New(2, 2, c.Zr()),
	}
	x := col(t, c.Zr(), zeroZr, zeroZr)
	y := col(t, c.Zr(), zeroZr, zeroZr)

	commitXPrime, r, err := s.CommitPrime(matrix.GroupG1, x, nil)
	require.NoError(err)
	commitYPrime, sCol, err := s.CommitPrime(matrix.GroupG2, y, nil)
	require.NoError(err)

	proof, err := s.ProveQuadratic(eq, x, y, r, sCol, nil)
	require.NoError(err)

	ok, err := s.VerifyQuadratic(eq, commitXPrime, commitYPrime, proof)
	require.NoError(err)
	require.True(ok)
}

// TestQuadraticNontrivialWitness is the Quadratic-Zr analogue of
// TestMSMG1NontrivialWitness.
func TestQuadraticNontrivialWitness(t *testing.T) {
	require := require.New(t)
	s, c := testScheme(t)

	eq := QuadraticEquation{
		A:     matrix.New(2, 1, c.Zr()),
		B:     matrix.New(2, 1, c.Zr()),
		Gamma: matrix.New(2, 2, c.Zr()),
	}
	x := randomCol(t, c.Zr(), 2)
	y := randomCol(t, c.Zr(), 2)

	commitXPrime, r, err := s.CommitPrime(matrix.GroupG1, x, nil)
	require.NoError(err)
	commitYPrime, sCol, err := s.CommitPrime(matrix.GroupG2, y, nil)
	require.NoError(err)

	proof, err := s.ProveQuadratic(eq, x, y, r, sCol, nil)
	require.NoError(err)

	ok, err := s.VerifyQuadratic(eq, commitXPrime, commitYPrime, proof)
	require.NoError(err)
	require.True(ok, "honest quadratic proof over nonzero witnesses must verify")
}

func TestLinearSubCasesTrivialEquations(t *testing.T) {
	require := require.New(t)
	s, c := testScheme(t)

	zeroG1 := c.G1().Zero()
	zeroG2 := c.G2().Zero()
	zeroZr := c.Zr().Zero()

	t.Run("G1-MSM-G1", func(t *testing.T) {
		eq := LinearG1MSMG1Equation{B: col(t, c.Zr(), zeroZr, zeroZr)}
		x := col(t, c.G1(), zeroG1, zeroG1)
		commitX, r, err := s.Commit(matrix.GroupG1, x, nil)
		require.NoError(err)
		pi, err := s.ProveLinearG1MSMG1(eq, r)
		require.NoError(err)
		ok, err := s.VerifyLinearG1MSMG1(eq, commitX, pi)
		require.NoError(err)
		require.True(ok)
	})

	t.Run("Zr-MSM-G1", func(t *testing.T) {
		eq := LinearZrMSMG1Equation{A: col(t, c.G1(), zeroG1, zeroG1)}
		y := col(t, c.Zr(), zeroZr, zeroZr)
		dPrime, sCol, err := s.CommitPrime(matrix.GroupG2, y, nil)
		require.NoError(err)
		theta, err := s.ProveLinearZrMSMG1(eq, sCol)
		require.NoError(err)
		ok, err := s.VerifyLinearZrMSMG1(eq, dPrime, theta)
		require.NoError(err)
		require.True(ok)
	})

	t.Run("G2-MSM-G2", func(t *testing.T) {
		eq := LinearG2MSMG2Equation{A: col(t, c.Zr(), zeroZr, zeroZr)}
		y := col(t, c.G2(), zeroG2, zeroG2)
		d, sMat, err := s.Commit(matrix.GroupG2, y, nil)
		require.NoError(err)
		theta, err := s.ProveLinearG2MSMG2(eq, sMat)
		require.NoError(err)
		ok, err := s.VerifyLinearG2MSMG2(eq, d, theta)
		require.NoError(err)
		require.True(ok)
	})

	t.Run("Zr-MSM-G2", func(t *testing.T) {
		eq := LinearZrMSMG2Equation{B: col(t, c.G2(), zeroG2, zeroG2)}
		x := col(t, c.Zr(), zeroZr, zeroZr)
		cPrime, r, err := s.CommitPrime(matrix.GroupG1, x, nil)
		require.NoError(err)
		pi, err := s.ProveLinearZrMSMG2(eq, r)
		require.NoError(err)
		ok, err := s.VerifyLinearZrMSMG2(eq, cPrime, pi)
		require.NoError(err)
		require.True(ok)
	})

	t.Run("Quadratic", func(t *testing.T) {
		eq := LinearQuadraticEquation{A: col(t, c.Zr(), zeroZr, zeroZr)}
		y := col(t, c.Zr(), zeroZr, zeroZr)
		dPrime, sCol, err := s.CommitPrime(matrix.GroupG2, y, nil)
		require.NoError(err)
		theta, err := s.ProveLinearQuadratic(eq, sCol)
		require.NoError(err)
		ok, err := s.VerifyLinearQuadratic(eq, dPrime, theta)
		require.NoError(err)
		require.True(ok)
	})
}

// TestLinearSubCasesNontrivialWitnesses mirrors
// TestLinearSubCasesTrivialEquations but samples each witness uniformly at
// random instead of fixing it to zero, so an operand-order bug in a
// FatPoint/F call can't hide behind a zero operand.
func TestLinearSubCasesNontrivialWitnesses(t *testing.T) {
	require := require.New(t)
	s, c := testScheme(t)

	t.Run("G1-MSM-G1", func(t *testing.T) {
		eq := LinearG1MSMG1Equation{B: matrix.New(2, 1, c.Zr())}
		x := randomCol(t, c.G1(), 2)
		commitX, r, err := s.Commit(matrix.GroupG1, x, nil)
		require.NoError(err)
		pi, err := s.ProveLinearG1MSMG1(eq, r)
		require.NoError(err)
		ok, err := s.VerifyLinearG1MSMG1(eq, commitX, pi)
		require.NoError(err)
		require.True(ok)
	})

	t.Run("Zr-MSM-G1", func(t *testing.T) {
		eq := LinearZrMSMG1Equation{A: matrix.New(2, 1, c.G1())}
		y := randomCol(t, c.Zr(), 2)
		dPrime, sCol, err := s.CommitPrime(matrix.GroupG2, y, nil)
		require.NoError(err)
		theta, err := s.ProveLinearZrMSMG1(eq, sCol)
		require.NoError(err)
		ok, err := s.VerifyLinearZrMSMG1(eq, dPrime, theta)
		require.NoError(err)
		require.True(ok)
	})

	t.Run("G2-MSM-G2", func(t *testing.T) {
		eq := LinearG2MSMG2Equation{A: matrix.New(2, 1, c.Zr())}
		y := randomCol(t, c.G2(), 2)
		d, sMat, err := s.Commit(matrix.GroupG2, y, nil)
		require.NoError(err)
		theta, err := s.ProveLinearG2MSMG2(eq, sMat)
		require.NoError(err)
		ok, err := s.VerifyLinearG2MSMG2(eq, d, theta)
		require.NoError(err)
		require.True(ok)
	})

	t.Run("Zr-MSM-G2", func(t *testing.T) {
		eq := LinearZrMSMG2Equation{B: matrix.New(2, 1, c.G2())}
		x := randomCol(t, c.Zr(), 2)
		cPrime, r, err := s.CommitPrime(matrix.GroupG1, x, nil)
		require.NoError(err)
		pi, err := s.ProveLinearZrMSMG2(eq, r)
		require.NoError(err)
		ok, err := s.VerifyLinearZrMSMG2(eq, cPrime, pi)
		require.NoError(err)
		require.True(ok)
	})

	t.Run("Quadratic", func(t *testing.T) {
		eq := LinearQuadraticEquation{A: matrix.New(2, 1, c.Zr())}
		y := randomCol(t, c.Zr(), 2)
		dPrime, sCol, err := s.CommitPrime(matrix.GroupG2, y, nil)
		require.NoError(err)
		theta, err := s.ProveLinearQuadratic(eq, sCol)
		require.NoError(err)
		ok, err := s.VerifyLinearQuadratic(eq, dPrime, theta)
		require.NoError(err)
		require.True(ok)
	})
}
