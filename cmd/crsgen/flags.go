// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/spf13/pflag"

	"github.com/luxfi/grothsahai/pairing"
)

const (
	CurveKey = "curve"
	OutKey   = "out"
)

func AddFlags(flags *pflag.FlagSet) {
	flags.String(CurveKey, pairing.DefaultCurveKey, "Curve to generate the common reference string for")
	flags.String(OutKey, "", "Path to write the CRS archive to (required)")
}

type Config struct {
	Curve string
	Out   string
}

func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	curve, err := flags.GetString(CurveKey)
	if err != nil {
		return nil, err
	}

	out, err := flags.GetString(OutKey)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, errMissingOut
	}

	return &Config{Curve: curve, Out: out}, nil
}
