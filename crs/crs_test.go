// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crs

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/grothsahai/pairing"
)

func TestGenerateProducesConsistentCommitmentKeys(t *testing.T) {
	require := require.New(t)

	c, err := Generate(pairing.DefaultCurveKey)
	require.NoError(err)

	// u1's top row is the generator G; u2 = beta*u1, so its top row is
	// beta*G, which differs from G unless beta is 1.
	u1, u2 := c.U1(), c.U2()
	top1, err := u1.Get(1, 1)
	require.NoError(err)
	top2, err := u2.Get(1, 1)
	require.NoError(err)
	require.False(top1.IsEqual(top2), "beta must not be 0 or 1 with overwhelming probability")

	g := c.G()
	require.True(g.IsEqual(top1))
}

func TestUAndVStackIntoFatMatrices(t *testing.T) {
	require := require.New(t)

	c, err := Generate(pairing.DefaultCurveKey)
	require.NoError(err)

	u := c.U()
	require.Equal(2, u.Rows())
	require.Equal(1, u.Cols())
	require.Equal(2, u.InnerRows())

	row1, err := u.Get(1, 1)
	require.NoError(err)
	require.True(row1.IsEqual(c.U1()))

	v := c.V()
	row2, err := v.Get(2, 1)
	require.NoError(err)
	require.True(row2.IsEqual(c.V2()))
}

func TestArchiveRoundTrip(t *testing.T) {
	require := require.New(t)

	c, err := Generate(pairing.DefaultCurveKey)
	require.NoError(err)

	data, err := c.ToArchive()
	require.NoError(err)
	require.NotEmpty(data)

	back, err := FromArchive(data)
	require.NoError(err)

	require.Equal(c.CurveKey(), back.CurveKey())
	require.True(c.G().IsEqual(back.G()))
	require.True(c.H().IsEqual(back.H()))
	require.True(c.U1().IsEqual(back.U1()))
	require.True(c.U2().IsEqual(back.U2()))
	require.True(c.V1().IsEqual(back.V1()))
	require.True(c.V2().IsEqual(back.V2()))
}

func TestFromArchiveRejectsMalformedData(t *testing.T) {
	_, err := FromArchive([]byte("not a zip"))
	require.ErrorIs(t, err, ErrArchiveFormat)
}

func TestFromArchiveDefaultsMissingGeneratorEntries(t *testing.T) {
	require := require.New(t)

	c, err := Generate(pairing.DefaultCurveKey)
	require.NoError(err)
	data, err := c.ToArchive()
	require.NoError(err)

	stripped := rezipWithout(t, data, entryG, entryH)

	back, err := FromArchive(stripped)
	require.NoError(err)

	suite, err := pairing.Lookup(c.CurveKey())
	require.NoError(err)
	require.True(back.G().IsEqual(suite.G1().Zero()))
	require.True(back.H().IsEqual(suite.G2().Zero()))

	// Everything else still round-trips.
	require.True(c.U1().IsEqual(back.U1()))
	require.True(c.V1().IsEqual(back.V1()))
}

// rezipWithout rebuilds a CRS archive with the named entries omitted, to
// exercise FromArchive's handling of archives written before those entries
// existed.
func rezipWithout(t *testing.T, data []byte, drop ...string) []byte {
	t.Helper()
	dropped := make(map[string]bool, len(drop))
	for _, name := range drop {
		dropped[name] = true
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range zr.File {
		if dropped[f.Name] {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		contents, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)

		w, err := zw.Create(f.Name)
		require.NoError(t, err)
		_, err = w.Write(contents)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestFromArchiveRejectsTruncatedArchive(t *testing.T) {
	require := require.New(t)

	c, err := Generate(pairing.DefaultCurveKey)
	require.NoError(err)
	data, err := c.ToArchive()
	require.NoError(err)

	// Truncate to corrupt the zip's central directory so parsing fails
	// cleanly rather than silently accepting a partial archive.
	_, err = FromArchive(data[:len(data)/2])
	require.ErrorIs(t, err, ErrArchiveFormat)
}

func TestProcessWideInstance(t *testing.T) {
	require := require.New(t)

	c, err := SetCurve(pairing.DefaultCurveKey)
	require.NoError(err)

	got, err := GetInstance()
	require.NoError(err)
	require.Same(c, got)
}

func TestGetInstanceLazilyGenerates(t *testing.T) {
	require := require.New(t)

	instanceMu.Lock()
	instance = nil
	instanceMu.Unlock()

	c, err := GetInstance()
	require.NoError(err)
	require.NotNil(c)

	again, err := GetInstance()
	require.NoError(err)
	require.Same(c, again, "second call must reuse the lazily generated instance")
}

func TestSaveAndLoadZipFile(t *testing.T) {
	require := require.New(t)

	c, err := Generate(pairing.DefaultCurveKey)
	require.NoError(err)

	path := t.TempDir() + "/crs.zip"
	require.NoError(SaveToZipFile(c, path))

	loaded, err := FromZipFile(path)
	require.NoError(err)
	require.True(c.U1().IsEqual(loaded.U1()))

	// Second load must hit the cache and return the identical instance.
	again, err := FromZipFile(path)
	require.NoError(err)
	require.Same(loaded, again)
}

func TestUnitMatrixIsIdentity(t *testing.T) {
	require := require.New(t)

	c, err := Generate(pairing.DefaultCurveKey)
	require.NoError(err)

	id, err := c.UnitMatrix(3)
	require.NoError(err)

	m, err := c.RandomZrMatrix(3, 3)
	require.NoError(err)

	product, err := id.MulMatrix(m)
	require.NoError(err)
	require.True(product.IsEqual(m))
}
