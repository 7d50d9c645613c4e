// Copyright 2023 The blocktree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package scene

import (
	"io"

	flatbuffers "github.com/google/flatbuffers/go"
)

// Write writes a scene to a stream in the binary scene format,
// returning the number of bytes written. Panics if w or s is nil.
func Write(w io.Writer, s *Scene) (n int, err error) {
	if w == nil {
		textPanic("nil writer")
	} else if s == nil {
		textPanic("nil scene")
	}

	// Write the magic number.
	n, err = w.Write(magic[:])
	if err != nil {
		err = wrapErr("failed to write magic number", err)
		return
	}

	// Write the scene table.
	var m int
	m, err = writeSizePrefixedTable(w, encode(s))
	n += m
	if err != nil {
		err = wrapErr("failed to write scene table", err)
	}
	return
}

// Read reads a scene in the binary scene format from a stream. The
// stream should be positioned at the first byte of the magic number. If
// Read returns without error, the stream is positioned immediately
// after the scene table.
//
// Read returns an error if the magic number is invalid, the major
// version is unsupported, the table is truncated, larger than the
// package limit, or malformed, or if any block has a negative extent.
// Panics if r is nil.
func Read(r io.Reader) (*Scene, error) {
	if r == nil {
		textPanic("nil reader")
	}

	// Check the magic number and version.
	version, err := Magic(r)
	if err != nil {
		return nil, err
	}
	if version.Major < MinMajorVersion || version.Major > MaxMajorVersion {
		return nil, wrapErr("major version %d", ErrUnsupportedVersion, version.Major)
	}

	// Read the size prefix, refusing sizes over the limit.
	buf := make([]byte, flatbuffers.SizeUint32)
	if _, err = io.ReadFull(r, buf); err != nil {
		return nil, wrapErr("failed to read table size", err)
	}
	size, err := tableSize(buf)
	if err != nil {
		return nil, err
	} else if size > maxTableLen {
		return nil, fmtErr("table size %d exceeds limit of %d", size, maxTableLen)
	}

	// Read the table itself.
	buf = append(buf, make([]byte, size)...)
	if _, err = io.ReadFull(r, buf[flatbuffers.SizeUint32:]); err != nil {
		return nil, wrapErr("failed to read scene table", err)
	}

	return decode(buf)
}

// decode converts a size-prefixed Scene table into a Scene.
func decode(buf []byte) (*Scene, error) {
	s := &Scene{}
	var blockErr error
	err := safeFlatBuffersInteraction(func() error {
		t := rootScene(buf)
		s.Name = t.name()

		// Each element of the blocks vector is at least a four byte
		// offset, which bounds the allocation below.
		n := t.numBlocks()
		if n > len(buf)/flatbuffers.SizeUOffsetT {
			return fmtErr("block count %d exceeds table size %d", n, len(buf))
		}

		s.Blocks = make([]Block, n)
		for i := range s.Blocks {
			bt := t.block(i)
			if s.Blocks[i], blockErr = NewBlock(bt.position(), bt.extent(), bt.elevation()); blockErr != nil {
				blockErr = wrapErr("invalid block %d", blockErr, i)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, wrapErr("failed to decode scene table", err)
	} else if blockErr != nil {
		return nil, blockErr
	}
	return s, nil
}
