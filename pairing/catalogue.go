// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pairing

import "sync"

// DefaultCurveKey is the curve used when a caller does not name one — a
// 112-bit-class asymmetric pairing suitable for SXDH.
const DefaultCurveKey = "bn254"

// legacyAliases maps curve keys emitted by older, jPBC-style CRS archives
// (spec §6's "typeD_224_496659") onto the concrete Suite this module ships.
var legacyAliases = map[string]string{
	"typeD_224_496659": "bn254",
}

var (
	catalogueOnce sync.Once
	catalogue     map[string]Suite
)

func buildCatalogue() {
	catalogue = map[string]Suite{
		"bn254":      newBN254Suite(),
		"bls12-381":  newBLS12381Suite(),
	}
}

// Lookup resolves a curve key to its Suite, following legacy aliases.
func Lookup(curveKey string) (Suite, error) {
	catalogueOnce.Do(buildCatalogue)
	key := curveKey
	if alias, ok := legacyAliases[key]; ok {
		key = alias
	}
	s, ok := catalogue[key]
	if !ok {
		return nil, ErrCurveUnknown
	}
	return s, nil
}

// CanonicalCurveKey returns the curve key a Suite is actually registered
// under, resolving legacy aliases.
func CanonicalCurveKey(curveKey string) (string, error) {
	s, err := Lookup(curveKey)
	if err != nil {
		return "", err
	}
	return s.CurveKey(), nil
}
