// Copyright 2023 The blocktree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package scene reads and writes scenes: named, ordered sets of
// rectangular blocks from which a blocktree.Tree can be built.
//
// Two formats are supported. The binary format, read by Read and
// written by Write, is an eight-byte magic number followed by a single
// size-prefixed FlatBuffers table with the schema
//
//	table Block {
//	  x:double;
//	  y:double;
//	  width:double;
//	  height:double;
//	  elevation:double;
//	}
//
//	table Scene {
//	  name:string;
//	  blocks:[Block];
//	}
//
//	root_type Scene;
//
// The text format, read by DecodeTOML, is intended for writing scenes
// by hand:
//
//	name = "level-1"
//
//	[[block]]
//	position = [0.0, 0.0]
//	extent = [1.0, 1.0]
//	height = 2.0
//
// Scenes store blocks only. The tree built from a scene is never
// written out; it is rebuilt from the blocks each time.
package scene
