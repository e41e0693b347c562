// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crs

import (
	"fmt"
	"os"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/luxfi/log"

	"github.com/luxfi/grothsahai/pairing"
)

// Process-wide CRS slot. A Groth-Sahai deployment fixes one curve for its
// lifetime; callers that don't want to thread a *CommonReferenceString
// through every commit/prove/verify call can set it once via SetInstance
// or SetCurve and retrieve it with GetInstance thereafter. GetInstance
// itself lazily generates a default-curve CRS on first use if nothing has
// been set.
var (
	instanceMu sync.RWMutex
	instance   *CommonReferenceString

	archiveCacheOnce sync.Once
	archiveCache     *lru.Cache // path -> *CommonReferenceString
)

const archiveCacheSize = 8

func getArchiveCache() *lru.Cache {
	archiveCacheOnce.Do(func() {
		c, err := lru.New(archiveCacheSize)
		if err != nil {
			panic(fmt.Sprintf("crs: constructing archive cache: %v", err))
		}
		archiveCache = c
	})
	return archiveCache
}

// SetInstance installs c as the process-wide CRS.
func SetInstance(c *CommonReferenceString) {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	instance = c
}

// SetCurve generates a fresh CRS for curveKey and installs it as the
// process-wide instance.
func SetCurve(curveKey string, opts ...Option) (*CommonReferenceString, error) {
	c, err := Generate(curveKey, opts...)
	if err != nil {
		return nil, err
	}
	SetInstance(c)
	return c, nil
}

// GetInstance returns the process-wide CRS, lazily generating one for
// pairing.DefaultCurveKey on the first call if none has been set (spec's
// "first getInstance generates" lifecycle). Mutation is serialised: the
// fast path only ever reads under RLock, and the generate-and-install path
// upgrades to Lock, re-checking in case another goroutine won the race.
func GetInstance() (*CommonReferenceString, error) {
	instanceMu.RLock()
	if instance != nil {
		defer instanceMu.RUnlock()
		return instance, nil
	}
	instanceMu.RUnlock()

	instanceMu.Lock()
	defer instanceMu.Unlock()
	if instance != nil {
		return instance, nil
	}
	c, err := Generate(pairing.DefaultCurveKey)
	if err != nil {
		return nil, err
	}
	instance = c
	return instance, nil
}

// FromZipFile loads a CRS archive from disk, caching it by path so that
// repeated calls for the same file (a common pattern across short-lived
// verifier invocations) skip the re-parse.
func FromZipFile(path string, opts ...Option) (*CommonReferenceString, error) {
	cache := getArchiveCache()
	if v, ok := cache.Get(path); ok {
		return v.(*CommonReferenceString), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("crs: reading archive file %q: %w", path, err)
	}
	c, err := FromArchive(data, opts...)
	if err != nil {
		return nil, err
	}
	cache.Add(path, c)
	return c, nil
}

// SaveToZipFile writes c's archive form to path.
func SaveToZipFile(c *CommonReferenceString, path string) error {
	data, err := c.ToArchive()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("crs: writing archive file %q: %w", path, err)
	}
	c.log.Debug("wrote CRS archive", log.String("path", path))
	return nil
}
