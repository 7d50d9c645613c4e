// Copyright 2023 The blocktree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package cli implements the blocktree command-line interface.
//
// The commands load scenes (see package scene), build a block tree from
// them and run queries against it:
//   - encode: convert a TOML scene to the binary scene format
//   - decode: convert a binary scene to TOML
//   - dump: print the tree built from a scene
//   - stats: print summary statistics about a scene's tree
//   - contains: test whether a point lies inside a scene's blocks
//   - overlaps: test whether two displaced scenes collide
//
// All commands support --verbose (-v) for debug-level logging to
// stderr. Query results are written to stdout.
package cli
