// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package groth

import (
	"github.com/luxfi/grothsahai/fatmatrix"
	"github.com/luxfi/grothsahai/matrix"
	"github.com/luxfi/grothsahai/pairing"
)

// QuadraticEquation is a quadratic equation over Zr:
//
//	Σ a_i·y_i + Σ x_i·b_i + Σ x_i·y_j·γ_ij = t
//
// with witnesses x (Zr, n x 1) and y (Zr, m x 1), constants a (Zr, m x 1)
// and b (Zr, n x 1), and Γ (Zr, n x m).
type QuadraticEquation struct {
	A     *matrix.Matrix // Zr, m x 1
	B     *matrix.Matrix // Zr, n x 1
	Gamma *matrix.Matrix // Zr, n x m
}

// QuadraticProof is (π, θ) for a quadratic proof: both are flat 2x1
// vectors, π over G2, θ over G1.
type QuadraticProof struct {
	Pi    *matrix.Matrix // G2, 2x1
	Theta *matrix.Matrix // G1, 2x1
}

// ProveQuadratic proves eq holds for witnesses x (Zr, n x 1) committed
// with randomness r (n x 1) and y (Zr, m x 1) committed with randomness s
// (m x 1), given proof randomness t (a single Zr scalar); a nil t samples
// fresh randomness.
func (s *Scheme) ProveQuadratic(eq QuadraticEquation, x, y, rCol, sCol *matrix.Matrix, t pairing.Element) (*QuadraticProof, error) {
	var err error
	if t == nil {
		t, err = s.crs.Zr().Random()
		if err != nil {
			return nil, err
		}
	}

	rt := rCol.Transpose()
	st := sCol.Transpose()

	fatB, err := fatMapIotaPrime(s.crs, matrix.GroupG2, eq.B)
	if err != nil {
		return nil, err
	}
	fatY, err := fatMapIotaPrime(s.crs, matrix.GroupG2, y)
	if err != nil {
		return nil, err
	}
	fatA, err := fatMapIotaPrime(s.crs, matrix.GroupG1, eq.A)
	if err != nil {
		return nil, err
	}
	fatX, err := fatMapIotaPrime(s.crs, matrix.GroupG1, x)
	if err != nil {
		return nil, err
	}

	// π = flatten(rᵀ·fatMap(b,ι′_G2)) + flatten((rᵀ·γ)·fatMap(y,ι′_G2)) + v1·(flatten(rᵀ·γ·s) − t)
	term1Fat, err := fatmatrix.LeftMulMatrix(rt, fatB)
	if err != nil {
		return nil, err
	}
	term1, err := term1Fat.Flatten()
	if err != nil {
		return nil, err
	}
	rtGamma, err := rt.MulMatrix(eq.Gamma)
	if err != nil {
		return nil, err
	}
	term2Fat, err := fatmatrix.LeftMulMatrix(rtGamma, fatY)
	if err != nil {
		return nil, err
	}
	term2, err := term2Fat.Flatten()
	if err != nil {
		return nil, err
	}
	rtGammaS, err := rtGamma.MulMatrix(sCol)
	if err != nil {
		return nil, err
	}
	rtGammaSScalar, err := rtGammaS.Flatten()
	if err != nil {
		return nil, err
	}
	blindScalar, err := rtGammaSScalar.Sub(t)
	if err != nil {
		return nil, err
	}
	term3, err := s.crs.V1().ScalarMul(blindScalar)
	if err != nil {
		return nil, err
	}
	pi, err := term1.Add(term2)
	if err != nil {
		return nil, err
	}
	pi, err = pi.Add(term3)
	if err != nil {
		return nil, err
	}

	// θ = flatten(sᵀ·fatMap(a,ι′_G1)) + flatten((sᵀ·γᵀ)·fatMap(x,ι′_G1)) + u1·t
	uterm1Fat, err := fatmatrix.LeftMulMatrix(st, fatA)
	if err != nil {
		return nil, err
	}
	uterm1, err := uterm1Fat.Flatten()
	if err != nil {
		return nil, err
	}
	stGammaT, err := st.MulMatrix(eq.Gamma.Transpose())
	if err != nil {
		return nil, err
	}
	uterm2Fat, err := fatmatrix.LeftMulMatrix(stGammaT, fatX)
	if err != nil {
		return nil, err
	}
	uterm2, err := uterm2Fat.Flatten()
	if err != nil {
		return nil, err
	}
	uterm3, err := s.crs.U1().ScalarMul(t)
	if err != nil {
		return nil, err
	}
	theta, err := uterm1.Add(uterm2)
	if err != nil {
		return nil, err
	}
	theta, err = theta.Add(uterm3)
	if err != nil {
		return nil, err
	}

	return &QuadraticProof{Pi: pi, Theta: theta}, nil
}

// VerifyQuadratic checks a quadratic proof against commitments c′ (to x)
// and d′ (to y).
func (s *Scheme) VerifyQuadratic(eq QuadraticEquation, cPrime, dPrime *fatmatrix.FatMatrix, proof *QuadraticProof) (bool, error) {
	suite := s.crs.Suite()

	fatA, err := fatMapIotaPrime(s.crs, matrix.GroupG1, eq.A)
	if err != nil {
		return false, err
	}
	fatB, err := fatMapIotaPrime(s.crs, matrix.GroupG2, eq.B)
	if err != nil {
		return false, err
	}
	gammaD, err := fatmatrix.LeftMulMatrix(eq.Gamma, dPrime)
	if err != nil {
		return false, err
	}

	lhs1, err := fatA.FatPoint(suite, dPrime)
	if err != nil {
		return false, err
	}
	lhs2, err := cPrime.FatPoint(suite, fatB)
	if err != nil {
		return false, err
	}
	lhs3, err := cPrime.FatPoint(suite, gammaD)
	if err != nil {
		return false, err
	}
	lhs, err := lhs1.Add(lhs2)
	if err != nil {
		return false, err
	}
	lhs, err = lhs.Add(lhs3)
	if err != nil {
		return false, err
	}

	rhs1, err := fatmatrix.F(suite, s.crs.U1(), proof.Pi)
	if err != nil {
		return false, err
	}
	rhs2, err := fatmatrix.F(suite, proof.Theta, s.crs.V1())
	if err != nil {
		return false, err
	}
	rhs, err := rhs1.Add(rhs2)
	if err != nil {
		return false, err
	}

	return lhs.IsEqual(rhs), nil
}
