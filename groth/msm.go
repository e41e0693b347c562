// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package groth

import (
	"github.com/luxfi/grothsahai/fatmatrix"
	"github.com/luxfi/grothsahai/matrix"
)

// MSMG1Equation is a multi-scalar-multiplication equation in G1:
//
//	Σ y_i·A_i + Σ b_i·X_i + Σ γ_ij·y_j·X_i = t
//
// with witnesses X (G1, n x 1) and y (Zr, m x 1), constants A (G1, m x 1)
// and b (Zr, n x 1), and Γ (Zr, n x m).
type MSMG1Equation struct {
	A     *matrix.Matrix // G1, m x 1
	B     *matrix.Matrix // Zr, n x 1
	Gamma *matrix.Matrix // Zr, n x m
}

// MSMG1Proof is (π, θ) for an MSM-G1 proof: π is the fully fat G2
// component, θ the flat G1 component.
type MSMG1Proof struct {
	Pi    *fatmatrix.FatMatrix // G2, 2x1;2x1
	Theta *matrix.Matrix       // G1, 2x1
}

// ProveMSMG1 proves eq holds for witness X (G1, n x 1) committed with
// randomness R (n x 2) and y (Zr, m x 1) committed with randomness s
// (m x 1), given proof randomness T (Zr, 1x2); a nil T samples fresh
// randomness.
func (s *Scheme) ProveMSMG1(eq MSMG1Equation, x, y, r, sCol, t *matrix.Matrix) (*MSMG1Proof, error) {
	var err error
	if t == nil {
		t, err = s.crs.RandomZrMatrix(1, 2)
		if err != nil {
			return nil, err
		}
	}

	rt := r.Transpose()

	fatB, err := fatMapIotaPrime(s.crs, matrix.GroupG2, eq.B)
	if err != nil {
		return nil, err
	}
	fatY, err := fatMapIotaPrime(s.crs, matrix.GroupG2, y)
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

	// π = Rᵀ·fatMap(b,ι′_G2) + (Rᵀ·γ)·fatMap(y,ι′_G2) + ((Rᵀ·γ·s) − Tᵀ)·v1Fat
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
	rtGammaS, err := rtGamma.MulMatrix(sCol)
	if err != nil {
		return nil, err
	}
	blindPi, err := rtGammaS.Sub(t.Transpose())
	if err != nil {
		return nil, err
	}
	term3, err := fatmatrix.LeftMulMatrix(blindPi, fatmatrix.Single(s.crs.V1()))
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

	// θ = flatten( sᵀ·fatMap(A,ι) + (sᵀ·γᵀ)·fatMap(X,ι) + T·u )
	uterm1, err := fatmatrix.LeftMulMatrix(sCol.Transpose(), fatA)
	if err != nil {
		return nil, err
	}
	stGammaT, err := sCol.Transpose().MulMatrix(eq.Gamma.Transpose())
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
	thetaFat, err := uterm1.Add(uterm2)
	if err != nil {
		return nil, err
	}
	thetaFat, err = thetaFat.Add(uterm3)
	if err != nil {
		return nil, err
	}
	theta, err := thetaFat.Flatten()
	if err != nil {
		return nil, err
	}

	return &MSMG1Proof{Pi: pi, Theta: theta}, nil
}

// VerifyMSMG1 checks an MSM-G1 proof against commitment c (to X) and d′
// (to y, via CommitPrime).
func (s *Scheme) VerifyMSMG1(eq MSMG1Equation, c, dPrime *fatmatrix.FatMatrix, proof *MSMG1Proof) (bool, error) {
	suite := s.crs.Suite()

	fatA, err := fatMapIota(eq.A)
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

// MSMG2Equation is the dual multi-scalar-multiplication equation in G2:
//
//	Σ a_i·Y_i + Σ x_i·B_i + Σ γ_ij·x_i·Y_j = t
//
// with witnesses x (Zr, n x 1) and Y (G2, m x 1), constants a (Zr, m x 1)
// and B (G2, n x 1), and Γ (Zr, n x m).
type MSMG2Equation struct {
	A     *matrix.Matrix // Zr, m x 1
	B     *matrix.Matrix // G2, n x 1
	Gamma *matrix.Matrix // Zr, n x m
}

// MSMG2Proof is (π, θ) for an MSM-G2 proof: π is the flat G2 component, θ
// the fully fat G1 component.
type MSMG2Proof struct {
	Pi    *matrix.Matrix       // G2, 2x1
	Theta *fatmatrix.FatMatrix // G1, 2x1;2x1
}

// ProveMSMG2 proves eq holds for witness x (Zr, n x 1) committed with
// randomness r (n x 1) and Y (G2, m x 1) committed with randomness S
// (m x 2), given proof randomness T (Zr, 2x1); a nil T samples fresh
// randomness.
func (s *Scheme) ProveMSMG2(eq MSMG2Equation, x, y, rCol, sMat, t *matrix.Matrix) (*MSMG2Proof, error) {
	var err error
	if t == nil {
		t, err = s.crs.RandomZrMatrix(2, 1)
		if err != nil {
			return nil, err
		}
	}

	rt := rCol.Transpose()
	st := sMat.Transpose()

	fatB, err := fatMapIota(eq.B)
	if err != nil {
		return nil, err
	}
	fatY, err := fatMapIota(y)
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

	// π = flatten( rᵀ·fatMap(B,ι) + (rᵀ·γ)·fatMap(Y,ι) + ((rᵀ·γ·S) − Tᵀ)·v )
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
	piFat, err := term1.Add(term2)
	if err != nil {
		return nil, err
	}
	piFat, err = piFat.Add(term3)
	if err != nil {
		return nil, err
	}
	pi, err := piFat.Flatten()
	if err != nil {
		return nil, err
	}

	// θ = Sᵀ·fatMap(a,ι′_G1) + (Sᵀ·γᵀ)·fatMap(x,ι′_G1) + T·u1Fat
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
	uterm3, err := fatmatrix.LeftMulMatrix(t, fatmatrix.Single(s.crs.U1()))
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

	return &MSMG2Proof{Pi: pi, Theta: theta}, nil
}

// VerifyMSMG2 checks an MSM-G2 proof against commitment c′ (to x, via
// CommitPrime) and d (to Y).
func (s *Scheme) VerifyMSMG2(eq MSMG2Equation, cPrime, d *fatmatrix.FatMatrix, proof *MSMG2Proof) (bool, error) {
	suite := s.crs.Suite()

	fatA, err := fatMapIotaPrime(s.crs, matrix.GroupG1, eq.A)
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
	rhs2, err := proof.Theta.FatPoint(suite, s.crs.V())
	if err != nil {
		return false, err
	}
	rhs, err := rhs1.Add(rhs2)
	if err != nil {
		return false, err
	}

	return lhs.IsEqual(rhs), nil
}
