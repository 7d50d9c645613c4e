// Copyright 2023 The blocktree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package scene

import (
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogama/blocktree/bbox"
)

// A Block is an axis-aligned rectangle anchored at its lower corner,
// plus a height which is carried along for display but has no effect
// on geometry. Block implements blocktree.Marker.
type Block struct {
	position mgl64.Vec2
	extent   mgl64.Vec2
	height   float64
	box      bbox.Box
}

// NewBlock returns the block whose lower corner is at position and
// whose width and height are the X- and Y-components of extent.
// Returns an error wrapping bbox.ErrInvalidBox if either component of
// extent is negative.
func NewBlock(position, extent mgl64.Vec2, height float64) (Block, error) {
	box, err := bbox.New(position, position.Add(extent))
	if err != nil {
		return Block{}, wrapErr("block extent (%g,%g)", err, extent.X(), extent.Y())
	}
	return Block{
		position: position,
		extent:   extent,
		height:   height,
		box:      box,
	}, nil
}

// BoundingBox returns the rectangle covered by the block.
func (b Block) BoundingBox() bbox.Box {
	return b.box
}

// Position returns the block's lower corner.
func (b Block) Position() mgl64.Vec2 {
	return b.position
}

// Extent returns the block's width and height.
func (b Block) Extent() mgl64.Vec2 {
	return b.extent
}

// Height returns the block's display height.
func (b Block) Height() float64 {
	return b.height
}

// String returns a summary description of the block.
func (b Block) String() string {
	var s strings.Builder
	s.WriteString("Block{Box:")
	s.WriteString(b.box.String())
	s.WriteString(",Height:")
	s.WriteString(strconv.FormatFloat(b.height, 'g', -1, 64))
	s.WriteByte('}')
	return s.String()
}
