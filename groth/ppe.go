// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package groth

import (
	"github.com/luxfi/grothsahai/fatmatrix"
	"github.com/luxfi/grothsahai/matrix"
)

// PPEEquation is a pairing-product equation
//
//	Σ e(A_i, Y_i) + Σ e(X_i, B_i) + Σ e(X_i, Y_j)·γ_ij = 1_GT
//
// with public constants A (G1, m x 1, paired against the G2 witness Y) and
// B (G2, n x 1, paired against the G1 witness X), and Γ (Zr, n x m).
type PPEEquation struct {
	A     *matrix.Matrix // G1, m x 1
	B     *matrix.Matrix // G2, n x 1
	Gamma *matrix.Matrix // Zr, n x m
}

// PPEProof is the (π, θ) artefact of a pairing-product proof: both live in
// the fully "fat" shape, FatMatrix(2x1; 2x1).
type PPEProof struct {
	Pi    *fatmatrix.FatMatrix // G2
	Theta *fatmatrix.FatMatrix // G1
}

// ProvePPE proves eq holds for witnesses X (G1, n x 1) and Y (G2, m x 1),
// given the randomness (R, S) used to commit them and optional proof
// randomness T (Zr, 2x2); a nil T samples fresh randomness.
func (s *Scheme) ProvePPE(eq PPEEquation, x, y, r, sMat, t *matrix.Matrix) (*PPEProof, error) {
	var err error
	if t == nil {
		t, err = s.crs.RandomZrMatrix(2, 2)
		if err != nil {
			return nil, err
		}
	}

	rt := r.Transpose()
	st := sMat.Transpose()

	fatB, err := fatMapIota(eq.B)
	if err != nil {
		return nil, err
	}
	fatY, err := fatMapIota(y)
	if err != nil {
		return nil, err
	}
	fatA, err := fatMapIota(eq.A)
	if err != nil {
		return nil, err
	}
	fatX, err := fatMapIota(x)
	if err != nil {
		return nil, err
	}

	// π = Rᵀ·fatMap(B,ι) + (Rᵀ·γ)·fatMap(Y,ι) + ((Rᵀ·γ·S) − Tᵀ)·v
	term1, err := fatmatrix.LeftMulMatrix(rt, fatB)
	if err != nil {
		return nil, err
	}
	rtGamma, err := rt.MulMatrix(eq.Gamma)
	if err != nil {
		return nil, err
	}
	term2, err := fatmatrix.LeftMulMatrix(rtGamma, fatY)
	if err != nil {
		return nil, err
	}
	rtGammaS, err := rtGamma.MulMatrix(sMat)
	if err != nil {
		return nil, err
	}
	blindPi, err := rtGammaS.Sub(t.Transpose())
	if err != nil {
		return nil, err
	}
	term3, err := fatmatrix.LeftMulMatrix(blindPi, s.crs.V())
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

	// θ = Sᵀ·fatMap(A,ι) + (Sᵀ·γᵀ)·fatMap(X,ι) + T·u
	uterm1, err := fatmatrix.LeftMulMatrix(st, fatA)
	if err != nil {
		return nil, err
	}
	stGammaT, err := st.MulMatrix(eq.Gamma.Transpose())
	if err != nil {
		return nil, err
	}
	uterm2, err := fatmatrix.LeftMulMatrix(stGammaT, fatX)
	if err != nil {
		return nil, err
	}
	uterm3, err := fatmatrix.LeftMulMatrix(t, s.crs.U())
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

	return &PPEProof{Pi: pi, Theta: theta}, nil
}

// VerifyPPE checks a PPE proof against commitments c (to X) and d (to Y).
func (s *Scheme) VerifyPPE(eq PPEEquation, c, d *fatmatrix.FatMatrix, proof *PPEProof) (bool, error) {
	suite := s.crs.Suite()

	fatA, err := fatMapIota(eq.A)
	if err != nil {
		return false, err
	}
	fatB, err := fatMapIota(eq.B)
	if err != nil {
		return false, err
	}
	gammaD, err := fatmatrix.LeftMulMatrix(eq.Gamma, d)
	if err != nil {
		return false, err
	}

	lhs1, err := fatA.FatPoint(suite, d)
	if err != nil {
		return false, err
	}
	lhs2, err := c.FatPoint(suite, fatB)
	if err != nil {
		return false, err
	}
	lhs3, err := c.FatPoint(suite, gammaD)
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

	rhs1, err := s.crs.U().FatPoint(suite, proof.Pi)
	if err != nil {
		return false, err
	}
	rhs2, err := proof.Theta.FatPoint(suite, s.crs.V())
	if err != nil {
		return false, err
	}
	rhs, err := rhs1.Add(rhs2)
	if err != nil {
		return false, err
	}

	s.log.Debug("verified PPE proof")
	return lhs.IsEqual(rhs), nil
}
