// Copyright 2023 The blocktree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package blocktree

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogama/blocktree/bbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBlock is a minimal Block. Tests compare blocks by pointer, so
// two testBlocks with the same box are still distinct blocks.
type testBlock struct {
	box bbox.Box
}

func (b *testBlock) BoundingBox() bbox.Box {
	return b.box
}

func newBlock(xMin, yMin, xMax, yMax float64) *testBlock {
	return &testBlock{box: bbox.MustNew(mgl64.Vec2{xMin, yMin}, mgl64.Vec2{xMax, yMax})}
}

func blocksOf(bs ...*testBlock) []Block {
	blocks := make([]Block, len(bs))
	for i := range bs {
		blocks[i] = bs[i]
	}
	return blocks
}

// randomBlocks generates n blocks on a small integer grid so that
// touching, nested, duplicate and zero-area boxes are all common.
func randomBlocks(r *rand.Rand, n int) []Block {
	blocks := make([]Block, n)
	for i := range blocks {
		x, y := float64(r.Intn(41)-20), float64(r.Intn(41)-20)
		w, h := float64(r.Intn(6)), float64(r.Intn(6))
		blocks[i] = newBlock(x, y, x+w, y+h)
	}
	return blocks
}

func unionOf(t *testing.T, blocks []Block) bbox.Box {
	boxes := make([]bbox.Box, len(blocks))
	for i := range blocks {
		boxes[i] = blocks[i].BoundingBox()
	}
	u, err := bbox.Union(boxes...)
	require.NoError(t, err)
	return u
}

// checkInvariants walks the subtree rooted at n, verifying the
// structural invariants of every node, and returns its leaf blocks.
func checkInvariants(t *testing.T, n node) []Block {
	switch n := n.(type) {
	case *leaf:
		require.NotNil(t, n.block)
		assert.Equal(t, n.block.BoundingBox(), n.box)
		assert.Equal(t, 1, n.count())
		return []Block{n.block}
	case *internal:
		require.NotNil(t, n.left)
		require.NotNil(t, n.right)
		assert.GreaterOrEqual(t, n.left.count(), 1)
		assert.GreaterOrEqual(t, n.right.count(), 1)
		assert.Equal(t, n.left.count()+n.right.count(), n.numBlocks)
		u, err := bbox.Union(n.left.bounds(), n.right.bounds())
		require.NoError(t, err)
		assert.Equal(t, u, n.box)
		return append(checkInvariants(t, n.left), checkInvariants(t, n.right)...)
	default:
		require.Failf(t, "unexpected node type", "%T", n)
		return nil
	}
}

// assertPartition asserts that the leaves of tree are exactly blocks,
// with no block missing or repeated.
func assertPartition(t *testing.T, blocks []Block, tree *Tree) {
	leaves := checkInvariants(t, tree.root)
	require.Len(t, leaves, len(blocks))
	seen := make(map[Block]int, len(blocks))
	for _, b := range leaves {
		seen[b]++
	}
	for i, b := range blocks {
		assert.Equal(t, 1, seen[b], "block %d", i)
	}
}

func TestNew(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		testCases := []struct {
			name     string
			input    []Block
			expected string
		}{
			{"Nil", nil, "blocktree: nil block slice: blocktree: invalid input"},
			{"Empty", []Block{}, "blocktree: no blocks: blocktree: invalid input"},
			{"NilBlock", []Block{newBlock(0, 0, 1, 1), nil}, "blocktree: nil block at index 1: blocktree: invalid input"},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				tree, err := New(testCase.input)

				assert.Nil(t, tree)
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.EqualError(t, err, testCase.expected)
			})
		}
	})

	t.Run("One", func(t *testing.T) {
		b := newBlock(1, 2, 3, 4)

		tree, err := New(blocksOf(b))

		require.NoError(t, err)
		assert.True(t, tree.IsLeaf())
		assert.Equal(t, 1, tree.NumBlocks())
		assert.Equal(t, 1, tree.Depth())
		assert.Equal(t, b.box, tree.Box())
		block, ok := tree.Block()
		assert.True(t, ok)
		assert.Same(t, b, block)
		left, right, ok := tree.Children()
		assert.False(t, ok)
		assert.Nil(t, left)
		assert.Nil(t, right)
	})

	t.Run("Three", func(t *testing.T) {
		a, b, c := newBlock(0, 0, 1, 1), newBlock(2, 0, 3, 1), newBlock(0, 2, 1, 3)
		blocks := blocksOf(a, b, c)

		tree, err := New(blocks)

		require.NoError(t, err)
		assert.False(t, tree.IsLeaf())
		assert.Equal(t, 3, tree.NumBlocks())
		assert.Equal(t, bbox.MustNew(mgl64.Vec2{0, 0}, mgl64.Vec2{3, 3}), tree.Box())
		assert.Equal(t, 3, tree.Depth())
		assertPartition(t, blocks, tree)

		// Square extent splits across X at 1.5, leaving b on the right.
		block, ok := tree.Block()
		assert.False(t, ok)
		assert.Nil(t, block)
		left, right, ok := tree.Children()
		require.True(t, ok)
		assert.Equal(t, 2, left.NumBlocks())
		assert.Equal(t, []Block{b}, right.Blocks())

		// Tall left extent splits across Y at 1.5.
		ll, lr, ok := left.Children()
		require.True(t, ok)
		assert.Equal(t, []Block{a}, ll.Blocks())
		assert.Equal(t, []Block{c}, lr.Blocks())
		assert.Equal(t, []Block{a, c, b}, tree.Blocks())
	})

	t.Run("InputNotModified", func(t *testing.T) {
		blocks := randomBlocks(rand.New(rand.NewSource(7)), 25)
		input := append([]Block(nil), blocks...)

		_, err := New(blocks)

		require.NoError(t, err)
		assert.Equal(t, input, blocks)
	})

	t.Run("Degenerate", func(t *testing.T) {
		testCases := []struct {
			name   string
			blocks []Block
		}{
			{"Identical", blocksOf(newBlock(0, 0, 1, 1), newBlock(0, 0, 1, 1), newBlock(0, 0, 1, 1), newBlock(0, 0, 1, 1), newBlock(0, 0, 1, 1))},
			{"SamePoint", blocksOf(newBlock(2, 2, 2, 2), newBlock(2, 2, 2, 2), newBlock(2, 2, 2, 2))},
			{"Straddling", blocksOf(newBlock(0, 0, 2, 1), newBlock(1, 1, 3, 2), newBlock(0.5, 2, 2.5, 3), newBlock(1.5, 3, 1.5, 3))},
			{"AllOnSplitLine", blocksOf(newBlock(1, 0, 1, 0), newBlock(1, 1, 1, 1), newBlock(0, 0, 2, 2))},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				tree, err := New(testCase.blocks)

				require.NoError(t, err)
				assert.Equal(t, len(testCase.blocks), tree.NumBlocks())
				assertPartition(t, testCase.blocks, tree)
			})
		}
	})

	t.Run("IdenticalDepth", func(t *testing.T) {
		// Every identical block overlaps the low half, so each level
		// peels exactly one block off to the right.
		const n = 8
		blocks := make([]Block, n)
		for i := range blocks {
			blocks[i] = newBlock(0, 0, 1, 1)
		}

		tree, err := New(blocks)

		require.NoError(t, err)
		assert.Equal(t, n, tree.Depth())
	})

	t.Run("Random", func(t *testing.T) {
		for _, n := range []int{1, 2, 3, 5, 8, 13, 21, 50, 200} {
			t.Run(strconv.Itoa(n), func(t *testing.T) {
				r := rand.New(rand.NewSource(int64(n)))
				blocks := randomBlocks(r, n)

				tree, err := New(blocks)

				require.NoError(t, err)
				assert.Equal(t, n, tree.NumBlocks())
				assert.Equal(t, unionOf(t, blocks), tree.Box())
				assert.LessOrEqual(t, tree.Depth(), n)
				assertPartition(t, blocks, tree)

				// The root box does not depend on input order.
				r.Shuffle(len(blocks), func(i, j int) { blocks[i], blocks[j] = blocks[j], blocks[i] })
				shuffled, err := New(blocks)
				require.NoError(t, err)
				assert.Equal(t, tree.Box(), shuffled.Box())
				assert.Equal(t, n, shuffled.NumBlocks())
			})
		}
	})
}

func TestBuild(t *testing.T) {
	t.Run("EmptyPartition", func(t *testing.T) {
		n, err := build(nil)

		assert.Nil(t, n)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestLowHalf(t *testing.T) {
	testCases := []struct {
		name     string
		input    bbox.Box
		expected bbox.Box
	}{
		{"Wide", bbox.MustNew(mgl64.Vec2{0, 0}, mgl64.Vec2{4, 2}), bbox.MustNew(mgl64.Vec2{0, 0}, mgl64.Vec2{2, 2})},
		{"Tall", bbox.MustNew(mgl64.Vec2{0, 0}, mgl64.Vec2{2, 4}), bbox.MustNew(mgl64.Vec2{0, 0}, mgl64.Vec2{2, 2})},
		{"Square", bbox.MustNew(mgl64.Vec2{-1, -1}, mgl64.Vec2{1, 1}), bbox.MustNew(mgl64.Vec2{-1, -1}, mgl64.Vec2{0, 1})},
		{"Point", bbox.MustNew(mgl64.Vec2{3, 3}, mgl64.Vec2{3, 3}), bbox.MustNew(mgl64.Vec2{3, 3}, mgl64.Vec2{3, 3})},
		{"FlatY", bbox.MustNew(mgl64.Vec2{0, 5}, mgl64.Vec2{0, 9}), bbox.MustNew(mgl64.Vec2{0, 5}, mgl64.Vec2{0, 7})},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual, err := lowHalf(testCase.input)

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestPartition(t *testing.T) {
	low := bbox.MustNew(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 2})
	a, b, c, d := newBlock(0, 0, 1, 1), newBlock(3, 0, 4, 1), newBlock(1, 1, 2, 2), newBlock(2, 0, 3, 2)

	testCases := []struct {
		name         string
		input        []Block
		expectedLow  []Block
		expectedHigh []Block
	}{
		{"Mixed", blocksOf(a, b, c, d), blocksOf(a, c), blocksOf(b, d)},
		{"OrderKept", blocksOf(d, c, b, a), blocksOf(c, a), blocksOf(d, b)},
		{"AllHigh", blocksOf(b, d), blocksOf(b), blocksOf(d)},
		{"AllLow", blocksOf(c, a), blocksOf(a), blocksOf(c)},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			boxes := make([]bbox.Box, len(testCase.input))
			for i := range testCase.input {
				boxes[i] = testCase.input[i].BoundingBox()
			}

			lowBlocks, highBlocks := partition(testCase.input, boxes, low)

			assert.Equal(t, testCase.expectedLow, lowBlocks)
			assert.Equal(t, testCase.expectedHigh, highBlocks)
		})
	}
}
