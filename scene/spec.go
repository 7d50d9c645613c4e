// Copyright 2023 The blocktree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package scene

import (
	"io"
)

const (
	// magicLen is the length of the scene file magic number in bytes.
	magicLen = 8
	// MinMajorVersion is the minimum major version of the scene file
	// format that this package can read.
	MinMajorVersion = 0x01
	// MaxMajorVersion is the maximum major version of the scene file
	// format that this package can read.
	MaxMajorVersion = 0x01
	// maxTableLen is the largest FlatBuffers table size this package
	// will read.
	maxTableLen = 32 * 1024 * 1024
)

// magic contains the scene file magic number.
//
// The fourth byte is the major version of data written by this
// package, and the last byte is the patch version.
var magic = [magicLen]byte{0x62, 0x6c, 0x6b, 0x01, 0x62, 0x6c, 0x6b, 0x00}

// Version is a version of the scene file format.
type Version struct {
	// Major is the major version of the format.
	Major uint8
	// Patch is the patch version of the format.
	Patch uint8
}

// Magic reads the scene file magic number from a stream and if it is
// valid, returns the format version. It does not read beyond the magic
// number.
func Magic(r io.Reader) (Version, error) {
	m := make([]byte, magicLen)
	_, err := io.ReadFull(r, m)
	if err != nil {
		return Version{}, wrapErr("failed to read magic number", err)
	}
	if m[0] == magic[0] &&
		m[1] == magic[1] &&
		m[2] == magic[2] &&
		m[4] == magic[4] &&
		m[5] == magic[5] &&
		m[6] == magic[6] {
		return Version{m[3], m[7]}, nil
	}
	return Version{}, ErrInvalidMagic
}
