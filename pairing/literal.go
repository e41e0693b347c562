// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pairing

import (
	"fmt"
	"math/big"
)

type bigIntConvertible interface {
	fromBigInt(n *big.Int) Element
}

// ElementFromInt64 injects a small literal constant into a Zr field, as the
// matrix package's literal test scenarios do. It is only defined for Zr;
// G1/G2/Gt have no canonical embedding of a bare integer.
func ElementFromInt64(f Field, n int64) (Element, error) {
	conv, ok := f.(bigIntConvertible)
	if !ok || f.Kind() != Zr {
		return nil, fmt.Errorf("%w: ElementFromInt64 requires a Zr field", ErrFieldMismatch)
	}
	return conv.fromBigInt(big.NewInt(n)), nil
}
