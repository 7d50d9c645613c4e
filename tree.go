// Copyright 2023 The blocktree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package blocktree

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogama/blocktree/bbox"
)

// A node is either a *leaf or an *internal. No other type implements
// node, so a leaf never has children and an internal node always has
// exactly two.
type node interface {
	// bounds returns the node's bounding box. For a leaf this is the
	// block's own box; for an internal node it is the exact union of
	// every leaf box below it.
	bounds() bbox.Box
	// count returns the number of leaves at or below the node.
	count() int
}

// A leaf wraps a single block.
type leaf struct {
	block Block
	box   bbox.Box
}

func (l *leaf) bounds() bbox.Box { return l.box }
func (l *leaf) count() int       { return 1 }

// An internal node owns exactly two non-nil children.
type internal struct {
	box         bbox.Box
	numBlocks   int
	left, right node
}

func (n *internal) bounds() bbox.Box { return n.box }
func (n *internal) count() int       { return n.numBlocks }

// Tree is a static bounding volume hierarchy over a non-empty set of
// blocks. A Tree is immutable once built and is safe for concurrent
// use by multiple goroutines.
type Tree struct {
	root node
}

// New builds a Tree from a non-empty slice of blocks. Returns an error
// wrapping ErrInvalidInput if blocks is nil, empty, or contains a nil
// Block. The slice itself is not retained or modified.
//
// The tree is built top-down. At each level the union box of the
// remaining blocks is split in half across its longer side (across
// the X-axis when width and height are equal), the blocks overlapping
// the lower half go to the left subtree and the rest go to the right.
// If either side comes up empty, one block is moved across so that
// every internal node has two non-empty children.
func New(blocks []Block) (*Tree, error) {
	if blocks == nil {
		return nil, wrapErr("nil block slice", ErrInvalidInput)
	} else if len(blocks) == 0 {
		return nil, wrapErr("no blocks", ErrInvalidInput)
	}
	for i := range blocks {
		if blocks[i] == nil {
			return nil, wrapErr("nil block at index %d", ErrInvalidInput, i)
		}
	}

	root, err := build(blocks)
	if err != nil {
		return nil, err
	}
	return &Tree{root: root}, nil
}

// build recursively constructs the subtree holding blocks.
func build(blocks []Block) (node, error) {
	// Can only happen if partition has a bug, since New rejects empty
	// input and partition never returns an empty side.
	if len(blocks) == 0 {
		return nil, wrapErr("empty partition", ErrInvalidInput)
	}

	// A single block becomes a leaf.
	if len(blocks) == 1 {
		return &leaf{block: blocks[0], box: blocks[0].BoundingBox()}, nil
	}

	// Find the extent of all the blocks.
	boxes := make([]bbox.Box, len(blocks))
	for i := range blocks {
		boxes[i] = blocks[i].BoundingBox()
	}
	box, err := bbox.Union(boxes...)
	if err != nil {
		return nil, err
	}

	// Split the extent in half and divide the blocks between the halves.
	low, err := lowHalf(box)
	if err != nil {
		return nil, err
	}
	lowBlocks, highBlocks := partition(blocks, boxes, low)

	// Build both subtrees, failing as a whole if either fails.
	left, err := build(lowBlocks)
	if err != nil {
		return nil, err
	}
	right, err := build(highBlocks)
	if err != nil {
		return nil, err
	}

	return &internal{
		box:       box,
		numBlocks: len(lowBlocks) + len(highBlocks),
		left:      left,
		right:     right,
	}, nil
}

// lowHalf returns the half of b nearest its lower corner, split across
// the longer side. The half spans the full extent of the side which is
// not split.
func lowHalf(b bbox.Box) (bbox.Box, error) {
	c := b.Center()
	upper := b.Upper()
	if b.Width() == b.Length() {
		upper = mgl64.Vec2{c.X(), upper.Y()}
	} else {
		upper = mgl64.Vec2{upper.X(), c.Y()}
	}
	return bbox.New(b.Lower(), upper)
}

// partition divides blocks, whose bounding boxes are given in the
// parallel slice boxes, into those overlapping low and the rest.
// Relative input order is preserved within each side. Neither returned
// slice is empty provided len(blocks) > 1.
func partition(blocks []Block, boxes []bbox.Box, low bbox.Box) (lowBlocks, highBlocks []Block) {
	lowBlocks = make([]Block, 0, len(blocks))
	highBlocks = make([]Block, 0, len(blocks))
	for i := range blocks {
		if low.Overlaps(boxes[i]) {
			lowBlocks = append(lowBlocks, blocks[i])
		} else {
			highBlocks = append(highBlocks, blocks[i])
		}
	}

	// Degenerate splits, for example every block touching the split
	// line, would otherwise leave one side empty.
	if len(lowBlocks) == 0 {
		lowBlocks = append(lowBlocks, highBlocks[0])
		highBlocks = highBlocks[1:]
	}
	if len(highBlocks) == 0 {
		highBlocks = append(highBlocks, lowBlocks[0])
		lowBlocks = lowBlocks[1:]
	}

	return
}

// Box returns the bounding box around every block in the tree.
func (t *Tree) Box() bbox.Box {
	return t.root.bounds()
}

// NumBlocks returns the number of blocks in the tree.
func (t *Tree) NumBlocks() int {
	return t.root.count()
}

// IsLeaf reports whether the tree consists of a single block.
func (t *Tree) IsLeaf() bool {
	_, ok := t.root.(*leaf)
	return ok
}

// Block returns the block held by a single-block tree. The second
// result is false, and the block nil, if the tree is not a leaf.
func (t *Tree) Block() (Block, bool) {
	if l, ok := t.root.(*leaf); ok {
		return l.block, true
	}
	return nil, false
}

// Children returns the two subtrees of a tree holding more than one
// block. The third result is false, and both subtrees nil, if the tree
// is a leaf.
func (t *Tree) Children() (left, right *Tree, ok bool) {
	if in, isInternal := t.root.(*internal); isInternal {
		return &Tree{root: in.left}, &Tree{root: in.right}, true
	}
	return nil, nil, false
}

// Depth returns the number of levels in the tree. A single-block tree
// has depth 1.
func (t *Tree) Depth() int {
	return depth(t.root)
}

func depth(n node) int {
	if in, ok := n.(*internal); ok {
		return 1 + max(depth(in.left), depth(in.right))
	}
	return 1
}

// Blocks returns every block in the tree, in left-to-right leaf order.
func (t *Tree) Blocks() []Block {
	blocks := make([]Block, 0, t.root.count())
	return appendBlocks(blocks, t.root)
}

func appendBlocks(blocks []Block, n node) []Block {
	switch n := n.(type) {
	case *leaf:
		return append(blocks, n.block)
	case *internal:
		return appendBlocks(appendBlocks(blocks, n.left), n.right)
	default:
		fmtPanic("logic error: unexpected node type %T", n)
		return nil
	}
}
