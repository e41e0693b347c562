// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command crsgen is a thin operator entrypoint around the crs package: it
// generates a fresh common reference string for a named curve and writes it
// to a zip archive.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/luxfi/log"

	"github.com/luxfi/grothsahai/crs"
)

var errMissingOut = errors.New("crsgen: --out is required")

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Root().Error("crsgen failed", log.String("error", err.Error()))
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "crsgen",
		Short: "Generates and persists Groth-Sahai common reference strings",
	}
	root.AddCommand(generateCmd())
	return root
}

func generateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "generate",
		Short: "Generates a fresh CRS and writes it to an archive",
		RunE:  generateFunc,
	}
	AddFlags(c.Flags())
	return c
}

func generateFunc(c *cobra.Command, args []string) error {
	config, err := ParseFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	l := log.Root()
	reference, err := crs.Generate(config.Curve, crs.WithLogger(l))
	if err != nil {
		return err
	}
	if err := crs.SaveToZipFile(reference, config.Out); err != nil {
		return err
	}
	l.Info("wrote CRS archive", log.String("curve", config.Curve), log.String("path", config.Out))
	return nil
}
