// Copyright 2023 The blocktree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package blocktree

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogama/blocktree/bbox"
)

// A Block is an opaque rigid shape stored in a Tree. The tree only ever
// looks at a block's bounding box, which must not change once the
// block has been passed to New.
type Block interface {
	BoundingBox() bbox.Box
}

// A Marker is a Block which also carries a reference position and a
// scalar height. Tree.Dump prints these for leaf blocks that provide
// them; they play no part in building or querying the tree.
type Marker interface {
	Block
	Position() mgl64.Vec2
	Height() float64
}
