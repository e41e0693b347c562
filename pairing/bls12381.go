// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pairing

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// sizeOfGT381 is the fixed encoding length of a bls12-381 Gt element: 12
// Fp limbs of 48 bytes each.
const sizeOfGT381 = 12 * fp.Bytes

func newBLS12381Suite() *bls12381Suite {
	s := &bls12381Suite{key: "bls12-381"}
	s.g1 = &bls12381G1Field{suite: s}
	s.g2 = &bls12381G2Field{suite: s}
	s.gt = &bls12381GtField{suite: s}
	s.zr = &bls12381ZrField{suite: s}
	return s
}

type bls12381Suite struct {
	key string
	g1  *bls12381G1Field
	g2  *bls12381G2Field
	gt  *bls12381GtField
	zr  *bls12381ZrField
}

func (s *bls12381Suite) CurveKey() string { return s.key }
func (s *bls12381Suite) G1() Field        { return s.g1 }
func (s *bls12381Suite) G2() Field        { return s.g2 }
func (s *bls12381Suite) Gt() Field        { return s.gt }
func (s *bls12381Suite) Zr() Field        { return s.zr }

func (s *bls12381Suite) Pair(a, b Element) (Element, error) {
	ae, ok := a.(*bls12381G1Element)
	if !ok || ae.field.suite != s {
		return nil, fmt.Errorf("%w: Pair expects a G1 element of this suite", ErrFieldMismatch)
	}
	be, ok := b.(*bls12381G2Element)
	if !ok || be.field.suite != s {
		return nil, fmt.Errorf("%w: Pair expects a G2 element of this suite", ErrFieldMismatch)
	}
	res, err := bls12381.Pair([]bls12381.G1Affine{ae.p}, []bls12381.G2Affine{be.p})
	if err != nil {
		return nil, fmt.Errorf("pairing: %w", err)
	}
	return &bls12381GtElement{field: s.gt, p: res}, nil
}

// --- G1 ---

type bls12381G1Field struct{ suite *bls12381Suite }

func (f *bls12381G1Field) Kind() Kind   { return G1 }
func (f *bls12381G1Field) Suite() Suite { return f.suite }

func (f *bls12381G1Field) Zero() Element {
	var p bls12381.G1Affine
	p.ScalarMultiplication(&bls12381G1Gen, big.NewInt(0))
	return &bls12381G1Element{field: f, p: p}
}

func (f *bls12381G1Field) One() Element {
	return &bls12381G1Element{field: f, p: bls12381G1Gen}
}

func (f *bls12381G1Field) Random() (Element, error) {
	var s fr.Element
	if _, err := s.SetRandom(); err != nil {
		return nil, fmt.Errorf("pairing: sampling G1 scalar: %w", err)
	}
	var p bls12381.G1Affine
	p.ScalarMultiplication(&bls12381G1Gen, s.BigInt(new(big.Int)))
	return &bls12381G1Element{field: f, p: p}, nil
}

func (f *bls12381G1Field) FromBytes(b []byte) (Element, error) {
	if len(b) != f.EncodedLen() {
		return nil, fmt.Errorf("%w: G1 expects %d bytes, got %d", ErrEncodingLength, f.EncodedLen(), len(b))
	}
	var p bls12381.G1Affine
	if _, err := p.SetBytes(b); err != nil {
		return nil, fmt.Errorf("pairing: decoding G1 element: %w", err)
	}
	return &bls12381G1Element{field: f, p: p}, nil
}

func (f *bls12381G1Field) EncodedLen() int { return bls12381.SizeOfG1AffineCompressed }

type bls12381G1Element struct {
	field *bls12381G1Field
	p     bls12381.G1Affine
}

func (e *bls12381G1Element) Field() Field { return e.field }
func (e *bls12381G1Element) Dup() Element { return &bls12381G1Element{field: e.field, p: e.p} }

func (e *bls12381G1Element) sameField(other Element) (*bls12381G1Element, error) {
	o, ok := other.(*bls12381G1Element)
	if !ok || o.field.suite != e.field.suite {
		return nil, fmt.Errorf("%w: expected a G1 element", ErrFieldMismatch)
	}
	return o, nil
}

func (e *bls12381G1Element) Add(other Element) (Element, error) {
	o, err := e.sameField(other)
	if err != nil {
		return nil, err
	}
	var res bls12381.G1Affine
	res.Add(&e.p, &o.p)
	return &bls12381G1Element{field: e.field, p: res}, nil
}

func (e *bls12381G1Element) Sub(other Element) (Element, error) {
	o, err := e.sameField(other)
	if err != nil {
		return nil, err
	}
	var neg bls12381.G1Affine
	neg.Neg(&o.p)
	var res bls12381.G1Affine
	res.Add(&e.p, &neg)
	return &bls12381G1Element{field: e.field, p: res}, nil
}

func (e *bls12381G1Element) Mul(other Element) (Element, error) { return e.Add(other) }

func (e *bls12381G1Element) MulZn(scalar Element) (Element, error) {
	zs, ok := scalar.(*bls12381ZrElement)
	if !ok || zs.field.suite != e.field.suite {
		return nil, fmt.Errorf("%w: MulZn expects a Zr scalar", ErrFieldMismatch)
	}
	var res bls12381.G1Affine
	res.ScalarMultiplication(&e.p, zs.s.BigInt(new(big.Int)))
	return &bls12381G1Element{field: e.field, p: res}, nil
}

func (e *bls12381G1Element) Neg() Element {
	var res bls12381.G1Affine
	res.Neg(&e.p)
	return &bls12381G1Element{field: e.field, p: res}
}

func (e *bls12381G1Element) IsZero() bool { return e.p.X.IsZero() && e.p.Y.IsZero() }

func (e *bls12381G1Element) IsEqual(other Element) bool {
	o, ok := other.(*bls12381G1Element)
	if !ok || o.field.suite != e.field.suite {
		return false
	}
	return e.p.Equal(&o.p)
}

func (e *bls12381G1Element) Bytes() []byte {
	b := e.p.Bytes()
	return b[:]
}

// --- G2 ---

type bls12381G2Field struct{ suite *bls12381Suite }

func (f *bls12381G2Field) Kind() Kind   { return G2 }
func (f *bls12381G2Field) Suite() Suite { return f.suite }

func (f *bls12381G2Field) Zero() Element {
	var p bls12381.G2Affine
	p.ScalarMultiplication(&bls12381G2Gen, big.NewInt(0))
	return &bls12381G2Element{field: f, p: p}
}

func (f *bls12381G2Field) One() Element {
	return &bls12381G2Element{field: f, p: bls12381G2Gen}
}

func (f *bls12381G2Field) Random() (Element, error) {
	var s fr.Element
	if _, err := s.SetRandom(); err != nil {
		return nil, fmt.Errorf("pairing: sampling G2 scalar: %w", err)
	}
	var p bls12381.G2Affine
	p.ScalarMultiplication(&bls12381G2Gen, s.BigInt(new(big.Int)))
	return &bls12381G2Element{field: f, p: p}, nil
}

func (f *bls12381G2Field) FromBytes(b []byte) (Element, error) {
	if len(b) != f.EncodedLen() {
		return nil, fmt.Errorf("%w: G2 expects %d bytes, got %d", ErrEncodingLength, f.EncodedLen(), len(b))
	}
	var p bls12381.G2Affine
	if _, err := p.SetBytes(b); err != nil {
		return nil, fmt.Errorf("pairing: decoding G2 element: %w", err)
	}
	return &bls12381G2Element{field: f, p: p}, nil
}

func (f *bls12381G2Field) EncodedLen() int { return bls12381.SizeOfG2AffineCompressed }

type bls12381G2Element struct {
	field *bls12381G2Field
	p     bls12381.G2Affine
}

func (e *bls12381G2Element) Field() Field { return e.field }
func (e *bls12381G2Element) Dup() Element { return &bls12381G2Element{field: e.field, p: e.p} }

func (e *bls12381G2Element) sameField(other Element) (*bls12381G2Element, error) {
	o, ok := other.(*bls12381G2Element)
	if !ok || o.field.suite != e.field.suite {
		return nil, fmt.Errorf("%w: expected a G2 element", ErrFieldMismatch)
	}
	return o, nil
}

func (e *bls12381G2Element) Add(other Element) (Element, error) {
	o, err := e.sameField(other)
	if err != nil {
		return nil, err
	}
	var res bls12381.G2Affine
	res.Add(&e.p, &o.p)
	return &bls12381G2Element{field: e.field, p: res}, nil
}

func (e *bls12381G2Element) Sub(other Element) (Element, error) {
	o, err := e.sameField(other)
	if err != nil {
		return nil, err
	}
	var neg bls12381.G2Affine
	neg.Neg(&o.p)
	var res bls12381.G2Affine
	res.Add(&e.p, &neg)
	return &bls12381G2Element{field: e.field, p: res}, nil
}

func (e *bls12381G2Element) Mul(other Element) (Element, error) { return e.Add(other) }

func (e *bls12381G2Element) MulZn(scalar Element) (Element, error) {
	zs, ok := scalar.(*bls12381ZrElement)
	if !ok || zs.field.suite != e.field.suite {
		return nil, fmt.Errorf("%w: MulZn expects a Zr scalar", ErrFieldMismatch)
	}
	var res bls12381.G2Affine
	res.ScalarMultiplication(&e.p, zs.s.BigInt(new(big.Int)))
	return &bls12381G2Element{field: e.field, p: res}, nil
}

func (e *bls12381G2Element) Neg() Element {
	var res bls12381.G2Affine
	res.Neg(&e.p)
	return &bls12381G2Element{field: e.field, p: res}
}

func (e *bls12381G2Element) IsZero() bool { return e.p.X.IsZero() && e.p.Y.IsZero() }

func (e *bls12381G2Element) IsEqual(other Element) bool {
	o, ok := other.(*bls12381G2Element)
	if !ok || o.field.suite != e.field.suite {
		return false
	}
	return e.p.Equal(&o.p)
}

func (e *bls12381G2Element) Bytes() []byte {
	b := e.p.Bytes()
	return b[:]
}

// --- Gt ---

type bls12381GtField struct{ suite *bls12381Suite }

func (f *bls12381GtField) Kind() Kind   { return Gt }
func (f *bls12381GtField) Suite() Suite { return f.suite }

func (f *bls12381GtField) Zero() Element {
	var p bls12381.GT
	p.SetOne()
	return &bls12381GtElement{field: f, p: p}
}

func (f *bls12381GtField) One() Element { return f.Zero() }

func (f *bls12381GtField) Random() (Element, error) {
	var s fr.Element
	if _, err := s.SetRandom(); err != nil {
		return nil, fmt.Errorf("pairing: sampling Gt scalar: %w", err)
	}
	var p bls12381.GT
	p.SetOne()
	p.Exp(p, s.BigInt(new(big.Int)))
	return &bls12381GtElement{field: f, p: p}, nil
}

func (f *bls12381GtField) FromBytes(b []byte) (Element, error) {
	if len(b) != f.EncodedLen() {
		return nil, fmt.Errorf("%w: Gt expects %d bytes, got %d", ErrEncodingLength, f.EncodedLen(), len(b))
	}
	var p bls12381.GT
	if err := p.SetBytes(b); err != nil {
		return nil, fmt.Errorf("pairing: decoding Gt element: %w", err)
	}
	return &bls12381GtElement{field: f, p: p}, nil
}

func (f *bls12381GtField) EncodedLen() int { return sizeOfGT381 }

type bls12381GtElement struct {
	field *bls12381GtField
	p     bls12381.GT
}

func (e *bls12381GtElement) Field() Field { return e.field }
func (e *bls12381GtElement) Dup() Element { return &bls12381GtElement{field: e.field, p: e.p} }

func (e *bls12381GtElement) sameField(other Element) (*bls12381GtElement, error) {
	o, ok := other.(*bls12381GtElement)
	if !ok || o.field.suite != e.field.suite {
		return nil, fmt.Errorf("%w: expected a Gt element", ErrFieldMismatch)
	}
	return o, nil
}

func (e *bls12381GtElement) Add(other Element) (Element, error) {
	o, err := e.sameField(other)
	if err != nil {
		return nil, err
	}
	var res bls12381.GT
	res.Mul(&e.p, &o.p)
	return &bls12381GtElement{field: e.field, p: res}, nil
}

func (e *bls12381GtElement) Sub(other Element) (Element, error) {
	o, err := e.sameField(other)
	if err != nil {
		return nil, err
	}
	var inv bls12381.GT
	inv.Inverse(&o.p)
	var res bls12381.GT
	res.Mul(&e.p, &inv)
	return &bls12381GtElement{field: e.field, p: res}, nil
}

func (e *bls12381GtElement) Mul(other Element) (Element, error) { return e.Add(other) }

func (e *bls12381GtElement) MulZn(scalar Element) (Element, error) {
	zs, ok := scalar.(*bls12381ZrElement)
	if !ok || zs.field.suite != e.field.suite {
		return nil, fmt.Errorf("%w: MulZn expects a Zr scalar", ErrFieldMismatch)
	}
	var res bls12381.GT
	res.Exp(e.p, zs.s.BigInt(new(big.Int)))
	return &bls12381GtElement{field: e.field, p: res}, nil
}

func (e *bls12381GtElement) Neg() Element {
	var res bls12381.GT
	res.Inverse(&e.p)
	return &bls12381GtElement{field: e.field, p: res}
}

func (e *bls12381GtElement) IsZero() bool {
	var one bls12381.GT
	one.SetOne()
	return e.p.Equal(&one)
}

func (e *bls12381GtElement) IsEqual(other Element) bool {
	o, ok := other.(*bls12381GtElement)
	if !ok || o.field.suite != e.field.suite {
		return false
	}
	return e.p.Equal(&o.p)
}

func (e *bls12381GtElement) Bytes() []byte {
	b := e.p.Bytes()
	return b[:]
}

// --- Zr ---

type bls12381ZrField struct{ suite *bls12381Suite }

func (f *bls12381ZrField) Kind() Kind   { return Zr }
func (f *bls12381ZrField) Suite() Suite { return f.suite }

func (f *bls12381ZrField) Zero() Element {
	var s fr.Element
	s.SetZero()
	return &bls12381ZrElement{field: f, s: s}
}

func (f *bls12381ZrField) One() Element {
	var s fr.Element
	s.SetOne()
	return &bls12381ZrElement{field: f, s: s}
}

func (f *bls12381ZrField) Random() (Element, error) {
	var s fr.Element
	if _, err := s.SetRandom(); err != nil {
		return nil, fmt.Errorf("pairing: sampling Zr element: %w", err)
	}
	return &bls12381ZrElement{field: f, s: s}, nil
}

func (f *bls12381ZrField) FromBytes(b []byte) (Element, error) {
	if len(b) != f.EncodedLen() {
		return nil, fmt.Errorf("%w: Zr expects %d bytes, got %d", ErrEncodingLength, f.EncodedLen(), len(b))
	}
	var s fr.Element
	s.SetBytes(b)
	return &bls12381ZrElement{field: f, s: s}, nil
}

func (f *bls12381ZrField) EncodedLen() int { return fr.Bytes }

func (f *bls12381ZrField) fromBigInt(n *big.Int) Element {
	var s fr.Element
	s.SetBigInt(n)
	return &bls12381ZrElement{field: f, s: s}
}

type bls12381ZrElement struct {
	field *bls12381ZrField
	s     fr.Element
}

func (e *bls12381ZrElement) Field() Field { return e.field }
func (e *bls12381ZrElement) Dup() Element { return &bls12381ZrElement{field: e.field, s: e.s} }

func (e *bls12381ZrElement) sameField(other Element) (*bls12381ZrElement, error) {
	o, ok := other.(*bls12381ZrElement)
	if !ok || o.field.suite != e.field.suite {
		return nil, fmt.Errorf("%w: expected a Zr element", ErrFieldMismatch)
	}
	return o, nil
}

func (e *bls12381ZrElement) Add(other Element) (Element, error) {
	o, err := e.sameField(other)
	if err != nil {
		return nil, err
	}
	var res fr.Element
	res.Add(&e.s, &o.s)
	return &bls12381ZrElement{field: e.field, s: res}, nil
}

func (e *bls12381ZrElement) Sub(other Element) (Element, error) {
	o, err := e.sameField(other)
	if err != nil {
		return nil, err
	}
	var res fr.Element
	res.Sub(&e.s, &o.s)
	return &bls12381ZrElement{field: e.field, s: res}, nil
}

func (e *bls12381ZrElement) Mul(other Element) (Element, error) {
	o, err := e.sameField(other)
	if err != nil {
		return nil, err
	}
	var res fr.Element
	res.Mul(&e.s, &o.s)
	return &bls12381ZrElement{field: e.field, s: res}, nil
}

func (e *bls12381ZrElement) MulZn(scalar Element) (Element, error) { return e.Mul(scalar) }

func (e *bls12381ZrElement) Neg() Element {
	var res fr.Element
	res.Neg(&e.s)
	return &bls12381ZrElement{field: e.field, s: res}
}

func (e *bls12381ZrElement) IsZero() bool { return e.s.IsZero() }

func (e *bls12381ZrElement) IsEqual(other Element) bool {
	o, ok := other.(*bls12381ZrElement)
	if !ok || o.field.suite != e.field.suite {
		return false
	}
	return e.s.Equal(&o.s)
}

func (e *bls12381ZrElement) Bytes() []byte {
	b := e.s.Bytes()
	return b[:]
}

var bls12381G1Gen, bls12381G2Gen = func() (bls12381.G1Affine, bls12381.G2Affine) {
	_, _, g1, g2 := bls12381.Generators()
	return g1, g2
}()
