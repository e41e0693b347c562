// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// The five linear sub-cases below are degenerate pairing-product equations
// with only one witness/constant side, so only one of (π, θ) is produced —
// the other is structurally absent rather than zero-valued.
package groth

import (
	"github.com/luxfi/grothsahai/fatmatrix"
	"github.com/luxfi/grothsahai/matrix"
)

// LinearG1MSMG1Equation is Σ x_i·b_i = t, witness x in G1, constants b in
// Zr.
type LinearG1MSMG1Equation struct {
	B *matrix.Matrix // Zr, n x 1
}

// ProveLinearG1MSMG1 produces π = Rᵀ·fatMap(b, ι′_G2) for witness x (G1,
// n x 1) committed with randomness r (n x 2).
func (s *Scheme) ProveLinearG1MSMG1(eq LinearG1MSMG1Equation, r *matrix.Matrix) (*fatmatrix.FatMatrix, error) {
	fatB, err := fatMapIotaPrime(s.crs, matrix.GroupG2, eq.B)
	if err != nil {
		return nil, err
	}
	return fatmatrix.LeftMulMatrix(r.Transpose(), fatB)
}

// VerifyLinearG1MSMG1 checks π against commitment c (to x).
func (s *Scheme) VerifyLinearG1MSMG1(eq LinearG1MSMG1Equation, c *fatmatrix.FatMatrix, pi *fatmatrix.FatMatrix) (bool, error) {
	suite := s.crs.Suite()
	fatB, err := fatMapIotaPrime(s.crs, matrix.GroupG2, eq.B)
	if err != nil {
		return false, err
	}
	lhs, err := c.FatPoint(suite, fatB)
	if err != nil {
		return false, err
	}
	rhs, err := s.crs.U().FatPoint(suite, pi)
	if err != nil {
		return false, err
	}
	return lhs.IsEqual(rhs), nil
}

// LinearZrMSMG1Equation is Σ y_i·A_i = t, witness y in Zr, constants A in
// G1.
type LinearZrMSMG1Equation struct {
	A *matrix.Matrix // G1, m x 1
}

// ProveLinearZrMSMG1 produces θ = flatten(sᵀ·fatMap(A, ι)) for witness y
// (Zr, m x 1) committed (via CommitPrime into G2) with randomness s
// (m x 1).
func (s *Scheme) ProveLinearZrMSMG1(eq LinearZrMSMG1Equation, sCol *matrix.Matrix) (*matrix.Matrix, error) {
	fatA, err := fatMapIota(eq.A)
	if err != nil {
		return nil, err
	}
	thetaFat, err := fatmatrix.LeftMulMatrix(sCol.Transpose(), fatA)
	if err != nil {
		return nil, err
	}
	return thetaFat.Flatten()
}

// VerifyLinearZrMSMG1 checks θ against commitment d′ (to y).
func (s *Scheme) VerifyLinearZrMSMG1(eq LinearZrMSMG1Equation, dPrime *fatmatrix.FatMatrix, theta *matrix.Matrix) (bool, error) {
	suite := s.crs.Suite()
	fatA, err := fatMapIota(eq.A)
	if err != nil {
		return false, err
	}
	lhs, err := fatA.FatPoint(suite, dPrime)
	if err != nil {
		return false, err
	}
	rhs, err := fatmatrix.F(suite, theta, s.crs.V1())
	if err != nil {
		return false, err
	}
	return lhs.IsEqual(rhs), nil
}

// LinearG2MSMG2Equation is Σ a_i·Y_i = t, witness Y in G2, constants a in
// Zr.
type LinearG2MSMG2Equation struct {
	A *matrix.Matrix // Zr, m x 1
}

// ProveLinearG2MSMG2 produces θ = Sᵀ·fatMap(a, ι′_G1) for witness Y (G2,
// m x 1) committed with randomness S (m x 2).
func (s *Scheme) ProveLinearG2MSMG2(eq LinearG2MSMG2Equation, sMat *matrix.Matrix) (*fatmatrix.FatMatrix, error) {
	fatA, err := fatMapIotaPrime(s.crs, matrix.GroupG1, eq.A)
	if err != nil {
		return nil, err
	}
	return fatmatrix.LeftMulMatrix(sMat.Transpose(), fatA)
}

// VerifyLinearG2MSMG2 checks θ against commitment d (to Y).
func (s *Scheme) VerifyLinearG2MSMG2(eq LinearG2MSMG2Equation, d *fatmatrix.FatMatrix, theta *fatmatrix.FatMatrix) (bool, error) {
	suite := s.crs.Suite()
	fatA, err := fatMapIotaPrime(s.crs, matrix.GroupG1, eq.A)
	if err != nil {
		return false, err
	}
	lhs, err := fatA.FatPoint(suite, d)
	if err != nil {
		return false, err
	}
	rhs, err := theta.FatPoint(suite, s.crs.V())
	if err != nil {
		return false, err
	}
	return lhs.IsEqual(rhs), nil
}

// LinearZrMSMG2Equation is Σ x_i·B_i = t, witness x in Zr, constants B in
// G2.
type LinearZrMSMG2Equation struct {
	B *matrix.Matrix // G2, n x 1
}

// ProveLinearZrMSMG2 produces π = flatten(rᵀ·fatMap(B, ι)) for witness x
// (Zr, n x 1) committed (via CommitPrime into G1) with randomness r
// (n x 1).
func (s *Scheme) ProveLinearZrMSMG2(eq LinearZrMSMG2Equation, rCol *matrix.Matrix) (*matrix.Matrix, error) {
	fatB, err := fatMapIota(eq.B)
	if err != nil {
		return nil, err
	}
	piFat, err := fatmatrix.LeftMulMatrix(rCol.Transpose(), fatB)
	if err != nil {
		return nil, err
	}
	return piFat.Flatten()
}

// VerifyLinearZrMSMG2 checks π against commitment c′ (to x).
func (s *Scheme) VerifyLinearZrMSMG2(eq LinearZrMSMG2Equation, cPrime *fatmatrix.FatMatrix, pi *matrix.Matrix) (bool, error) {
	suite := s.crs.Suite()
	fatB, err := fatMapIota(eq.B)
	if err != nil {
		return false, err
	}
	lhs, err := cPrime.FatPoint(suite, fatB)
	if err != nil {
		return false, err
	}
	rhs, err := fatmatrix.F(suite, s.crs.U1(), pi)
	if err != nil {
		return false, err
	}
	return lhs.IsEqual(rhs), nil
}

// LinearQuadraticEquation is Σ a_i·y_i = t, a purely Zr bilinear
// functional: witness y in Zr, constants a in Zr.
type LinearQuadraticEquation struct {
	A *matrix.Matrix // Zr, m x 1
}

// ProveLinearQuadratic produces θ = flatten(sᵀ·fatMap(a, ι′_G1)) for
// witness y (Zr, m x 1) committed (via CommitPrime into G2) with
// randomness s (m x 1).
func (s *Scheme) ProveLinearQuadratic(eq LinearQuadraticEquation, sCol *matrix.Matrix) (*matrix.Matrix, error) {
	fatA, err := fatMapIotaPrime(s.crs, matrix.GroupG1, eq.A)
	if err != nil {
		return nil, err
	}
	thetaFat, err := fatmatrix.LeftMulMatrix(sCol.Transpose(), fatA)
	if err != nil {
		return nil, err
	}
	return thetaFat.Flatten()
}

// VerifyLinearQuadratic checks θ against commitment d′ (to y).
func (s *Scheme) VerifyLinearQuadratic(eq LinearQuadraticEquation, dPrime *fatmatrix.FatMatrix, theta *matrix.Matrix) (bool, error) {
	suite := s.crs.Suite()
	fatA, err := fatMapIotaPrime(s.crs, matrix.GroupG1, eq.A)
	if err != nil {
		return false, err
	}
	lhs, err := fatA.FatPoint(suite, dPrime)
	if err != nil {
		return false, err
	}
	rhs, err := fatmatrix.F(suite, theta, s.crs.V1())
	if err != nil {
		return false, err
	}
	return lhs.IsEqual(rhs), nil
}
