// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pairing

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// sizeOfGT is the fixed encoding length of a bn254 Gt element (12 Fp limbs
// of 32 bytes each; gnark-crypto has no dedicated compressed form for Gt).
const sizeOfGT = 12 * fr.Bytes

func newBN254Suite() *bn254Suite {
	s := &bn254Suite{key: "bn254"}
	s.g1 = &bn254G1Field{suite: s}
	s.g2 = &bn254G2Field{suite: s}
	s.gt = &bn254GtField{suite: s}
	s.zr = &bn254ZrField{suite: s}
	return s
}

type bn254Suite struct {
	key string
	g1  *bn254G1Field
	g2  *bn254G2Field
	gt  *bn254GtField
	zr  *bn254ZrField
}

func (s *bn254Suite) CurveKey() string { return s.key }
func (s *bn254Suite) G1() Field        { return s.g1 }
func (s *bn254Suite) G2() Field        { return s.g2 }
func (s *bn254Suite) Gt() Field        { return s.gt }
func (s *bn254Suite) Zr() Field        { return s.zr }

func (s *bn254Suite) Pair(a, b Element) (Element, error) {
	ae, ok := a.(*bn254G1Element)
	if !ok || ae.field.suite != s {
		return nil, fmt.Errorf("%w: Pair expects a G1 element of this suite", ErrFieldMismatch)
	}
	be, ok := b.(*bn254G2Element)
	if !ok || be.field.suite != s {
		return nil, fmt.Errorf("%w: Pair expects a G2 element of this suite", ErrFieldMismatch)
	}
	res, err := bn254.Pair([]bn254.G1Affine{ae.p}, []bn254.G2Affine{be.p})
	if err != nil {
		return nil, fmt.Errorf("pairing: %w", err)
	}
	return &bn254GtElement{field: s.gt, p: res}, nil
}

// --- G1 ---

type bn254G1Field struct{ suite *bn254Suite }

func (f *bn254G1Field) Kind() Kind   { return G1 }
func (f *bn254G1Field) Suite() Suite { return f.suite }

func (f *bn254G1Field) Zero() Element {
	var p bn254.G1Affine
	p.ScalarMultiplication(&bn254G1Gen, big.NewInt(0))
	return &bn254G1Element{field: f, p: p}
}

func (f *bn254G1Field) One() Element {
	return &bn254G1Element{field: f, p: bn254G1Gen}
}

func (f *bn254G1Field) Random() (Element, error) {
	var s fr.Element
	if _, err := s.SetRandom(); err != nil {
		return nil, fmt.Errorf("pairing: sampling G1 scalar: %w", err)
	}
	var p bn254.G1Affine
	p.ScalarMultiplication(&bn254G1Gen, s.BigInt(new(big.Int)))
	return &bn254G1Element{field: f, p: p}, nil
}

func (f *bn254G1Field) FromBytes(b []byte) (Element, error) {
	if len(b) != f.EncodedLen() {
		return nil, fmt.Errorf("%w: G1 expects %d bytes, got %d", ErrEncodingLength, f.EncodedLen(), len(b))
	}
	var p bn254.G1Affine
	if _, err := p.SetBytes(b); err != nil {
		return nil, fmt.Errorf("pairing: decoding G1 element: %w", err)
	}
	return &bn254G1Element{field: f, p: p}, nil
}

func (f *bn254G1Field) EncodedLen() int { return bn254.SizeOfG1AffineCompressed }

type bn254G1Element struct {
	field *bn254G1Field
	p     bn254.G1Affine
}

func (e *bn254G1Element) Field() Field { return e.field }

func (e *bn254G1Element) Dup() Element {
	return &bn254G1Element{field: e.field, p: e.p}
}

func (e *bn254G1Element) sameField(other Element) (*bn254G1Element, error) {
	o, ok := other.(*bn254G1Element)
	if !ok || o.field.suite != e.field.suite {
		return nil, fmt.Errorf("%w: expected a G1 element", ErrFieldMismatch)
	}
	return o, nil
}

func (e *bn254G1Element) Add(other Element) (Element, error) {
	o, err := e.sameField(other)
	if err != nil {
		return nil, err
	}
	var res bn254.G1Affine
	res.Add(&e.p, &o.p)
	return &bn254G1Element{field: e.field, p: res}, nil
}

func (e *bn254G1Element) Sub(other Element) (Element, error) {
	o, err := e.sameField(other)
	if err != nil {
		return nil, err
	}
	var neg bn254.G1Affine
	neg.Neg(&o.p)
	var res bn254.G1Affine
	res.Add(&e.p, &neg)
	return &bn254G1Element{field: e.field, p: res}, nil
}

// Mul is G1's "multiplicative compose": group composition, same as Add.
func (e *bn254G1Element) Mul(other Element) (Element, error) {
	return e.Add(other)
}

func (e *bn254G1Element) MulZn(scalar Element) (Element, error) {
	zs, ok := scalar.(*bn254ZrElement)
	if !ok || zs.field.suite != e.field.suite {
		return nil, fmt.Errorf("%w: MulZn expects a Zr scalar", ErrFieldMismatch)
	}
	var res bn254.G1Affine
	res.ScalarMultiplication(&e.p, zs.s.BigInt(new(big.Int)))
	return &bn254G1Element{field: e.field, p: res}, nil
}

func (e *bn254G1Element) Neg() Element {
	var res bn254.G1Affine
	res.Neg(&e.p)
	return &bn254G1Element{field: e.field, p: res}
}

func (e *bn254G1Element) IsZero() bool {
	return e.p.X.IsZero() && e.p.Y.IsZero()
}

func (e *bn254G1Element) IsEqual(other Element) bool {
	o, ok := other.(*bn254G1Element)
	if !ok || o.field.suite != e.field.suite {
		return false
	}
	return e.p.Equal(&o.p)
}

func (e *bn254G1Element) Bytes() []byte {
	b := e.p.Bytes()
	return b[:]
}

// --- G2 ---

type bn254G2Field struct{ suite *bn254Suite }

func (f *bn254G2Field) Kind() Kind   { return G2 }
func (f *bn254G2Field) Suite() Suite { return f.suite }

func (f *bn254G2Field) Zero() Element {
	var p bn254.G2Affine
	p.ScalarMultiplication(&bn254G2Gen, big.NewInt(0))
	return &bn254G2Element{field: f, p: p}
}

func (f *bn254G2Field) One() Element {
	return &bn254G2Element{field: f, p: bn254G2Gen}
}

func (f *bn254G2Field) Random() (Element, error) {
	var s fr.Element
	if _, err := s.SetRandom(); err != nil {
		return nil, fmt.Errorf("pairing: sampling G2 scalar: %w", err)
	}
	var p bn254.G2Affine
	p.ScalarMultiplication(&bn254G2Gen, s.BigInt(new(big.Int)))
	return &bn254G2Element{field: f, p: p}, nil
}

func (f *bn254G2Field) FromBytes(b []byte) (Element, error) {
	if len(b) != f.EncodedLen() {
		return nil, fmt.Errorf("%w: G2 expects %d bytes, got %d", ErrEncodingLength, f.EncodedLen(), len(b))
	}
	var p bn254.G2Affine
	if _, err := p.SetBytes(b); err != nil {
		return nil, fmt.Errorf("pairing: decoding G2 element: %w", err)
	}
	return &bn254G2Element{field: f, p: p}, nil
}

func (f *bn254G2Field) EncodedLen() int { return bn254.SizeOfG2AffineCompressed }

type bn254G2Element struct {
	field *bn254G2Field
	p     bn254.G2Affine
}

func (e *bn254G2Element) Field() Field { return e.field }

func (e *bn254G2Element) Dup() Element {
	return &bn254G2Element{field: e.field, p: e.p}
}

func (e *bn254G2Element) sameField(other Element) (*bn254G2Element, error) {
	o, ok := other.(*bn254G2Element)
	if !ok || o.field.suite != e.field.suite {
		return nil, fmt.Errorf("%w: expected a G2 element", ErrFieldMismatch)
	}
	return o, nil
}

func (e *bn254G2Element) Add(other Element) (Element, error) {
	o, err := e.sameField(other)
	if err != nil {
		return nil, err
	}
	var res bn254.G2Affine
	res.Add(&e.p, &o.p)
	return &bn254G2Element{field: e.field, p: res}, nil
}

func (e *bn254G2Element) Sub(other Element) (Element, error) {
	o, err := e.sameField(other)
	if err != nil {
		return nil, err
	}
	var neg bn254.G2Affine
	neg.Neg(&o.p)
	var res bn254.G2Affine
	res.Add(&e.p, &neg)
	return &bn254G2Element{field: e.field, p: res}, nil
}

func (e *bn254G2Element) Mul(other Element) (Element, error) {
	return e.Add(other)
}

func (e *bn254G2Element) MulZn(scalar Element) (Element, error) {
	zs, ok := scalar.(*bn254ZrElement)
	if !ok || zs.field.suite != e.field.suite {
		return nil, fmt.Errorf("%w: MulZn expects a Zr scalar", ErrFieldMismatch)
	}
	var res bn254.G2Affine
	res.ScalarMultiplication(&e.p, zs.s.BigInt(new(big.Int)))
	return &bn254G2Element{field: e.field, p: res}, nil
}

func (e *bn254G2Element) Neg() Element {
	var res bn254.G2Affine
	res.Neg(&e.p)
	return &bn254G2Element{field: e.field, p: res}
}

func (e *bn254G2Element) IsZero() bool {
	return e.p.X.IsZero() && e.p.Y.IsZero()
}

func (e *bn254G2Element) IsEqual(other Element) bool {
	o, ok := other.(*bn254G2Element)
	if !ok || o.field.suite != e.field.suite {
		return false
	}
	return e.p.Equal(&o.p)
}

func (e *bn254G2Element) Bytes() []byte {
	b := e.p.Bytes()
	return b[:]
}

// --- Gt ---

type bn254GtField struct{ suite *bn254Suite }

func (f *bn254GtField) Kind() Kind   { return Gt }
func (f *bn254GtField) Suite() Suite { return f.suite }

func (f *bn254GtField) Zero() Element {
	var p bn254.GT
	p.SetOne()
	return &bn254GtElement{field: f, p: p}
}

func (f *bn254GtField) One() Element { return f.Zero() }

func (f *bn254GtField) Random() (Element, error) {
	var s fr.Element
	if _, err := s.SetRandom(); err != nil {
		return nil, fmt.Errorf("pairing: sampling Gt scalar: %w", err)
	}
	var p bn254.GT
	p.SetOne()
	p.Exp(p, s.BigInt(new(big.Int)))
	return &bn254GtElement{field: f, p: p}, nil
}

func (f *bn254GtField) FromBytes(b []byte) (Element, error) {
	if len(b) != f.EncodedLen() {
		return nil, fmt.Errorf("%w: Gt expects %d bytes, got %d", ErrEncodingLength, f.EncodedLen(), len(b))
	}
	var p bn254.GT
	if err := p.SetBytes(b); err != nil {
		return nil, fmt.Errorf("pairing: decoding Gt element: %w", err)
	}
	return &bn254GtElement{field: f, p: p}, nil
}

func (f *bn254GtField) EncodedLen() int { return sizeOfGT }

type bn254GtElement struct {
	field *bn254GtField
	p     bn254.GT
}

func (e *bn254GtElement) Field() Field { return e.field }

func (e *bn254GtElement) Dup() Element {
	return &bn254GtElement{field: e.field, p: e.p}
}

func (e *bn254GtElement) sameField(other Element) (*bn254GtElement, error) {
	o, ok := other.(*bn254GtElement)
	if !ok || o.field.suite != e.field.suite {
		return nil, fmt.Errorf("%w: expected a Gt element", ErrFieldMismatch)
	}
	return o, nil
}

// Add is Gt's group composition, written multiplicatively in gnark-crypto.
func (e *bn254GtElement) Add(other Element) (Element, error) {
	o, err := e.sameField(other)
	if err != nil {
		return nil, err
	}
	var res bn254.GT
	res.Mul(&e.p, &o.p)
	return &bn254GtElement{field: e.field, p: res}, nil
}

func (e *bn254GtElement) Sub(other Element) (Element, error) {
	o, err := e.sameField(other)
	if err != nil {
		return nil, err
	}
	var inv bn254.GT
	inv.Inverse(&o.p)
	var res bn254.GT
	res.Mul(&e.p, &inv)
	return &bn254GtElement{field: e.field, p: res}, nil
}

func (e *bn254GtElement) Mul(other Element) (Element, error) {
	return e.Add(other)
}

func (e *bn254GtElement) MulZn(scalar Element) (Element, error) {
	zs, ok := scalar.(*bn254ZrElement)
	if !ok || zs.field.suite != e.field.suite {
		return nil, fmt.Errorf("%w: MulZn expects a Zr scalar", ErrFieldMismatch)
	}
	var res bn254.GT
	res.Exp(e.p, zs.s.BigInt(new(big.Int)))
	return &bn254GtElement{field: e.field, p: res}, nil
}

func (e *bn254GtElement) Neg() Element {
	var res bn254.GT
	res.Inverse(&e.p)
	return &bn254GtElement{field: e.field, p: res}
}

func (e *bn254GtElement) IsZero() bool {
	var one bn254.GT
	one.SetOne()
	return e.p.Equal(&one)
}

func (e *bn254GtElement) IsEqual(other Element) bool {
	o, ok := other.(*bn254GtElement)
	if !ok || o.field.suite != e.field.suite {
		return false
	}
	return e.p.Equal(&o.p)
}

func (e *bn254GtElement) Bytes() []byte {
	b := e.p.Bytes()
	return b[:]
}

// --- Zr ---

type bn254ZrField struct{ suite *bn254Suite }

func (f *bn254ZrField) Kind() Kind   { return Zr }
func (f *bn254ZrField) Suite() Suite { return f.suite }

func (f *bn254ZrField) Zero() Element {
	var s fr.Element
	s.SetZero()
	return &bn254ZrElement{field: f, s: s}
}

func (f *bn254ZrField) One() Element {
	var s fr.Element
	s.SetOne()
	return &bn254ZrElement{field: f, s: s}
}

func (f *bn254ZrField) Random() (Element, error) {
	var s fr.Element
	if _, err := s.SetRandom(); err != nil {
		return nil, fmt.Errorf("pairing: sampling Zr element: %w", err)
	}
	return &bn254ZrElement{field: f, s: s}, nil
}

func (f *bn254ZrField) FromBytes(b []byte) (Element, error) {
	if len(b) != f.EncodedLen() {
		return nil, fmt.Errorf("%w: Zr expects %d bytes, got %d", ErrEncodingLength, f.EncodedLen(), len(b))
	}
	var s fr.Element
	s.SetBytes(b)
	return &bn254ZrElement{field: f, s: s}, nil
}

func (f *bn254ZrField) EncodedLen() int { return fr.Bytes }

// fromBigInt backs the package-level ElementFromInt64 helper used by tests
// and callers that need to inject small literal constants (e.g. the
// equation constant "1" or a fixed-seed scenario value) into Zr.
func (f *bn254ZrField) fromBigInt(n *big.Int) Element {
	var s fr.Element
	s.SetBigInt(n)
	return &bn254ZrElement{field: f, s: s}
}

type bn254ZrElement struct {
	field *bn254ZrField
	s     fr.Element
}

func (e *bn254ZrElement) Field() Field { return e.field }

func (e *bn254ZrElement) Dup() Element {
	return &bn254ZrElement{field: e.field, s: e.s}
}

func (e *bn254ZrElement) sameField(other Element) (*bn254ZrElement, error) {
	o, ok := other.(*bn254ZrElement)
	if !ok || o.field.suite != e.field.suite {
		return nil, fmt.Errorf("%w: expected a Zr element", ErrFieldMismatch)
	}
	return o, nil
}

func (e *bn254ZrElement) Add(other Element) (Element, error) {
	o, err := e.sameField(other)
	if err != nil {
		return nil, err
	}
	var res fr.Element
	res.Add(&e.s, &o.s)
	return &bn254ZrElement{field: e.field, s: res}, nil
}

func (e *bn254ZrElement) Sub(other Element) (Element, error) {
	o, err := e.sameField(other)
	if err != nil {
		return nil, err
	}
	var res fr.Element
	res.Sub(&e.s, &o.s)
	return &bn254ZrElement{field: e.field, s: res}, nil
}

// Mul is ordinary field multiplication for Zr.
func (e *bn254ZrElement) Mul(other Element) (Element, error) {
	o, err := e.sameField(other)
	if err != nil {
		return nil, err
	}
	var res fr.Element
	res.Mul(&e.s, &o.s)
	return &bn254ZrElement{field: e.field, s: res}, nil
}

// MulZn for Zr is the same operation as Mul: scaling an exponent by another
// exponent is ordinary field multiplication.
func (e *bn254ZrElement) MulZn(scalar Element) (Element, error) {
	return e.Mul(scalar)
}

func (e *bn254ZrElement) Neg() Element {
	var res fr.Element
	res.Neg(&e.s)
	return &bn254ZrElement{field: e.field, s: res}
}

func (e *bn254ZrElement) IsZero() bool { return e.s.IsZero() }

func (e *bn254ZrElement) IsEqual(other Element) bool {
	o, ok := other.(*bn254ZrElement)
	if !ok || o.field.suite != e.field.suite {
		return false
	}
	return e.s.Equal(&o.s)
}

func (e *bn254ZrElement) Bytes() []byte {
	b := e.s.Bytes()
	return b[:]
}

var bn254G1Gen, bn254G2Gen = func() (bn254.G1Affine, bn254.G2Affine) {
	_, _, g1, g2 := bn254.Generators()
	return g1, g2
}()
