// Copyright 2023 The blocktree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package blocktree provides a static, binary bounding volume
// hierarchy over a fixed set of two-dimensional blocks.
//
// A Tree is built once from a non-empty slice of blocks and is
// immutable afterward. It answers two questions: whether a point lies
// inside any block (Tree.Contains), and whether two trees collide when
// each is translated by its own displacement (Tree.Overlaps). The
// displacements are query arguments, never stored on the tree, so one
// tree may be tested against any number of candidate positions, from
// any number of goroutines, without being rebuilt.
//
// The bounding box primitive lives in package bbox, and block sets can
// be loaded from scene files using package scene.
package blocktree
