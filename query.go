// Copyright 2023 The blocktree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package blocktree

import "github.com/go-gl/mathgl/mgl64"

// Contains reports whether p lies inside the bounding box of at least
// one block in the tree. Points on a box boundary are inside.
func (t *Tree) Contains(p mgl64.Vec2) bool {
	return contains(t.root, p)
}

func contains(n node, p mgl64.Vec2) bool {
	// Nothing below n can contain a point outside n's box.
	if !n.bounds().Contains(p) {
		return false
	}
	switch n := n.(type) {
	case *leaf:
		return n.box.Contains(p)
	case *internal:
		return contains(n.left, p) || contains(n.right, p)
	default:
		fmtPanic("logic error: unexpected node type %T", n)
		return false
	}
}

// Overlaps reports whether the tree, translated by d, collides with
// other, translated by otherD. Two trees collide if some block from
// each has bounding boxes that overlap once each box is translated by
// its own tree's displacement. Boxes that only touch collide.
//
// Neither tree is modified, so the same pair of trees may be tested at
// any number of displacements, concurrently if desired. Overlaps panics
// if other is nil.
func (t *Tree) Overlaps(d mgl64.Vec2, other *Tree, otherD mgl64.Vec2) bool {
	if other == nil {
		textPanic("nil tree")
	}
	return overlaps(t.root, d, other.root, otherD)
}

func overlaps(a node, da mgl64.Vec2, b node, db mgl64.Vec2) bool {
	// Prune when the displaced boxes are apart, since then no pair of
	// blocks below a and b can meet.
	if !a.bounds().Displace(da).Overlaps(b.bounds().Displace(db)) {
		return false
	}

	ai, aInternal := a.(*internal)
	bi, bInternal := b.(*internal)
	switch {
	case !aInternal && !bInternal:
		// Each leaf box is exactly its block's box.
		return true
	case !aInternal:
		return overlaps(a, da, bi.left, db) ||
			overlaps(a, da, bi.right, db)
	case !bInternal:
		return overlaps(ai.left, da, b, db) ||
			overlaps(ai.right, da, b, db)
	default:
		return overlaps(ai.left, da, bi.left, db) ||
			overlaps(ai.left, da, bi.right, db) ||
			overlaps(ai.right, da, bi.left, db) ||
			overlaps(ai.right, da, bi.right, db)
	}
}
