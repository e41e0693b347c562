// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crs

import "errors"

var (
	// ErrArchiveFormat is returned when an archive is missing an entry,
	// carries a wrongly-sized entry, or otherwise fails to parse.
	ErrArchiveFormat = errors.New("crs: malformed archive")
)
