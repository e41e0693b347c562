// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crs

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/luxfi/log"

	"github.com/luxfi/grothsahai/matrix"
	"github.com/luxfi/grothsahai/pairing"
)

// Archive entry names, per spec §6's CRS persistence format: a zip
// container holding the curve identifier, the two generators and the four
// commitment-key matrices, each as a flat row-major byte blob.
const (
	entryParams = "params"
	entryG      = "G"
	entryH      = "H"
	entryU1     = "u1"
	entryU2     = "u2"
	entryV1     = "v1"
	entryV2     = "v2"
)

// encodeParams renders the params entry as newline-separated key=value
// text: curve_key plus the row count of each commitment-key vector
// (u1_size, u2_size, v1_size, v2_size), per spec §6.
func encodeParams(curveKey string, u1Size, u2Size, v1Size, v2Size int) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "curve_key=%s\n", curveKey)
	fmt.Fprintf(&buf, "u1_size=%d\n", u1Size)
	fmt.Fprintf(&buf, "u2_size=%d\n", u2Size)
	fmt.Fprintf(&buf, "v1_size=%d\n", v1Size)
	fmt.Fprintf(&buf, "v2_size=%d\n", v2Size)
	return buf.Bytes()
}

// decodeParams parses the params entry's key=value text into a lookup map,
// rejecting any non-blank line without an "="; keys are not checked here.
func decodeParams(data []byte) (map[string]string, error) {
	props := make(map[string]string, 5)
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: malformed params line %q", ErrArchiveFormat, line)
		}
		props[key] = value
	}
	return props, nil
}

func paramString(props map[string]string, key string) (string, error) {
	v, ok := props[key]
	if !ok {
		return "", fmt.Errorf("%w: params missing %q", ErrArchiveFormat, key)
	}
	return v, nil
}

func paramInt(props map[string]string, key string) (int, error) {
	v, err := paramString(props, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: params %s=%q is not an integer", ErrArchiveFormat, key, v)
	}
	return n, nil
}

// ToArchive serialises c into the zip-based wire format spec §6 describes.
func (c *CommonReferenceString) ToArchive() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	params := encodeParams(c.curveKey, c.u1.Rows(), c.u2.Rows(), c.v1.Rows(), c.v2.Rows())

	entries := []struct {
		name string
		data []byte
	}{
		{entryParams, params},
		{entryG, c.g.Bytes()},
		{entryH, c.h.Bytes()},
		{entryU1, c.u1.ToBytes()},
		{entryU2, c.u2.ToBytes()},
		{entryV1, c.v1.ToBytes()},
		{entryV2, c.v2.ToBytes()},
	}
	for _, e := range entries {
		if err := writeEntry(zw, e.name, e.data); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("crs: closing archive: %w", err)
	}
	c.log.Debug("serialised CRS archive", log.String("curve", c.curveKey), log.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

func writeEntry(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("crs: creating archive entry %q: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("crs: writing archive entry %q: %w", name, err)
	}
	return nil
}

// FromArchive decodes a CRS previously produced by ToArchive.
func FromArchive(data []byte, opts ...Option) (*CommonReferenceString, error) {
	o := genOptions{log: log.NoLog{}}
	for _, opt := range opts {
		opt(&o)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchiveFormat, err)
	}

	entries := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: opening %q: %v", ErrArchiveFormat, f.Name, err)
		}
		contents, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: reading %q: %v", ErrArchiveFormat, f.Name, err)
		}
		entries[f.Name] = contents
	}

	paramsBytes, ok := entries[entryParams]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q entry", ErrArchiveFormat, entryParams)
	}
	props, err := decodeParams(paramsBytes)
	if err != nil {
		return nil, err
	}
	curveKey, err := paramString(props, "curve_key")
	if err != nil {
		return nil, err
	}
	suite, err := pairing.Lookup(curveKey)
	if err != nil {
		return nil, fmt.Errorf("crs: %w", err)
	}
	u1Size, err := paramInt(props, "u1_size")
	if err != nil {
		return nil, err
	}
	u2Size, err := paramInt(props, "u2_size")
	if err != nil {
		return nil, err
	}
	v1Size, err := paramInt(props, "v1_size")
	if err != nil {
		return nil, err
	}
	v2Size, err := paramInt(props, "v2_size")
	if err != nil {
		return nil, err
	}

	// Missing G or H default to the group's fixed identity element, for
	// interop with older archives written before these entries existed.
	g, err := decodeGenerator(entries, entryG, suite.G1())
	if err != nil {
		return nil, err
	}
	h, err := decodeGenerator(entries, entryH, suite.G2())
	if err != nil {
		return nil, err
	}

	u1, err := decodeVector(entries, entryU1, suite.G1(), u1Size)
	if err != nil {
		return nil, err
	}
	u2, err := decodeVector(entries, entryU2, suite.G1(), u2Size)
	if err != nil {
		return nil, err
	}
	v1, err := decodeVector(entries, entryV1, suite.G2(), v1Size)
	if err != nil {
		return nil, err
	}
	v2, err := decodeVector(entries, entryV2, suite.G2(), v2Size)
	if err != nil {
		return nil, err
	}

	c := &CommonReferenceString{
		curveKey: suite.CurveKey(),
		suite:    suite,
		g:        g, h: h,
		u1: u1, u2: u2,
		v1: v1, v2: v2,
		log: o.log,
	}
	c.log.Debug("loaded CRS archive", log.String("curve", c.curveKey))
	return c, nil
}

// decodeGenerator decodes a single fixed-point entry, defaulting to the
// field's identity element when the entry is absent (spec §6: "Missing G or
// H entries default to the group's fixed one-element, for interop with
// older CRSes").
func decodeGenerator(entries map[string][]byte, name string, field pairing.Field) (pairing.Element, error) {
	data, ok := entries[name]
	if !ok {
		return field.Zero(), nil
	}
	e, err := field.FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %q: %v", ErrArchiveFormat, name, err)
	}
	return e, nil
}

// decodeVector decodes a rows x 1 commitment-key vector, validating its
// byte length against the row count declared in the params entry rather
// than a fixed constant.
func decodeVector(entries map[string][]byte, name string, field pairing.Field, rows int) (*matrix.Matrix, error) {
	data, ok := entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q entry", ErrArchiveFormat, name)
	}
	cellLen := field.EncodedLen()
	want := rows * cellLen
	if len(data) != want {
		return nil, fmt.Errorf("%w: entry %q has %d bytes, want %d (%d rows)", ErrArchiveFormat, name, len(data), want, rows)
	}
	m, err := matrix.NewFromBytes(rows, 1, field, data)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %q: %v", ErrArchiveFormat, name, err)
	}
	return m, nil
}
