// Copyright 2023 The blocktree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package scene

import (
	"io"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl64"
)

// tomlScene is the TOML document layout of a scene.
type tomlScene struct {
	Name   string      `toml:"name"`
	Blocks []tomlBlock `toml:"block"`
}

type tomlBlock struct {
	Position [2]float64 `toml:"position"`
	Extent   [2]float64 `toml:"extent"`
	Height   float64    `toml:"height"`
}

// DecodeTOML reads a scene from a TOML document. Unknown keys are
// rejected so that misspelled fields do not silently become zero.
// Panics if r is nil.
func DecodeTOML(r io.Reader) (*Scene, error) {
	if r == nil {
		textPanic("nil reader")
	}

	var doc tomlScene
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, wrapErr("failed to decode TOML", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmtErr("unknown TOML key %q", undecoded[0].String())
	}

	s := &Scene{Name: doc.Name, Blocks: make([]Block, len(doc.Blocks))}
	for i := range doc.Blocks {
		tb := &doc.Blocks[i]
		if s.Blocks[i], err = NewBlock(mgl64.Vec2(tb.Position), mgl64.Vec2(tb.Extent), tb.Height); err != nil {
			return nil, wrapErr("invalid block %d", err, i)
		}
	}
	return s, nil
}

// EncodeTOML writes a scene to a stream as a TOML document which
// DecodeTOML can read back. Panics if w or s is nil.
func EncodeTOML(w io.Writer, s *Scene) error {
	if w == nil {
		textPanic("nil writer")
	} else if s == nil {
		textPanic("nil scene")
	}

	doc := tomlScene{Name: s.Name, Blocks: make([]tomlBlock, len(s.Blocks))}
	for i := range s.Blocks {
		doc.Blocks[i] = tomlBlock{
			Position: s.Blocks[i].position,
			Extent:   s.Blocks[i].extent,
			Height:   s.Blocks[i].height,
		}
	}
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return wrapErr("failed to encode TOML", err)
	}
	return nil
}
