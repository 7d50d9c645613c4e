// Copyright 2023 The blocktree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package bbox provides the immutable two-dimensional axis-aligned
// bounding box used throughout blocktree.
//
// A Box is a plain value. Every operation that would change a box,
// such as Displace or Union, returns a new Box and leaves its inputs
// untouched, so boxes may be shared freely between goroutines.
package bbox
