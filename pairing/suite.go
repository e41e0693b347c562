// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pairing is the thin boundary over the external pairing library.
// It exposes the four algebraic domains a Groth-Sahai proof is built from —
// G1, G2, Gt and Zr — behind a uniform Element/Field/Suite surface, so the
// matrix, fatmatrix, crs and groth packages never import a curve-specific
// type directly.
package pairing

import "fmt"

// Kind names one of the four algebraic domains.
type Kind int

const (
	G1 Kind = iota
	G2
	Gt
	Zr
)

func (k Kind) String() string {
	switch k {
	case G1:
		return "G1"
	case G2:
		return "G2"
	case Gt:
		return "Gt"
	case Zr:
		return "Zr"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Element is a single value from one algebraic domain. Implementations are
// small wrappers around a gnark-crypto point or field element; they are
// treated as values — every operation below returns a fresh Element rather
// than mutating the receiver.
type Element interface {
	// Field is the algebraic domain this element belongs to.
	Field() Field
	// Dup returns an independent copy.
	Dup() Element
	// Add is the domain's group operation (point addition for G1/G2/Gt,
	// field addition for Zr).
	Add(other Element) (Element, error)
	// Sub is Add composed with Neg.
	Sub(other Element) (Element, error)
	// Mul is the "multiplicative compose" of spec §3: group composition
	// for G1/G2/Gt (identical to Add under this additive notation), field
	// multiplication for Zr.
	Mul(other Element) (Element, error)
	// MulZn scales the receiver by a Zr scalar — scalar multiplication by
	// an exponent for G1/G2/Gt, ordinary field multiplication for Zr.
	MulZn(scalar Element) (Element, error)
	// Neg returns the additive inverse.
	Neg() Element
	// IsZero reports whether the element is the domain's identity.
	IsZero() bool
	// IsEqual reports cellwise equality; elements of different fields are
	// never equal.
	IsEqual(other Element) bool
	// Bytes is the field's fixed-width canonical encoding.
	Bytes() []byte
}

// Field is one of the four algebraic domains of a Suite.
type Field interface {
	Kind() Kind
	Suite() Suite
	Zero() Element
	One() Element
	// Random draws a uniform element using the provider's CSPRNG.
	Random() (Element, error)
	// FromBytes decodes a fixed-width canonical encoding.
	FromBytes(b []byte) (Element, error)
	// EncodedLen is the fixed byte length of Bytes()/FromBytes().
	EncodedLen() int
}

// Suite is a pairing-friendly curve instantiation: G1, G2, Gt, Zr and the
// bilinear map tying them together.
type Suite interface {
	CurveKey() string
	G1() Field
	G2() Field
	Gt() Field
	Zr() Field
	// Pair evaluates e(a, b) for a in G1, b in G2, returning a Gt element.
	Pair(a, b Element) (Element, error)
}
