// Copyright 2023 The blocktree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package blocktree

import (
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// indentation is added per tree level by Dump.
const indentation = "   "

// String returns a summary description of the tree.
func (t *Tree) String() string {
	var b strings.Builder
	b.WriteString("Tree{Box:")
	b.WriteString(t.Box().String())
	b.WriteString(",NumBlocks:")
	b.WriteString(strconv.Itoa(t.NumBlocks()))
	b.WriteString(",Depth:")
	b.WriteString(strconv.Itoa(t.Depth()))
	b.WriteByte('}')
	return b.String()
}

// Dump writes an indented, human-readable listing of every node in the
// tree to w, with all coordinates translated by d. Each node is written
// as its box, one level of indentation deeper than its parent, and each
// leaf adds a line for its block:
//
//	Box: (0,0) -- (3,3)
//	   Box: (0,0) -- (1,3)
//	      Box: (0,0) -- (1,1)
//	      Leaf: (0,0) h=0
//	      Box: (0,2) -- (1,3)
//	      Leaf: (0,2) h=0
//	   Box: (2,0) -- (3,1)
//	   Leaf: (2,0) h=0
//
// A leaf line shows the block's position and height if the block is a
// Marker, or else the lower corner of its box and a height of zero.
//
// Dump is intended for debugging and its output format may change. It
// panics if w is nil.
func (t *Tree) Dump(w io.Writer, d mgl64.Vec2) error {
	if w == nil {
		textPanic("nil writer")
	}
	var b strings.Builder
	dump(&b, t.root, d, "")
	_, err := io.WriteString(w, b.String())
	return err
}

func dump(b *strings.Builder, n node, d mgl64.Vec2, indent string) {
	box := n.bounds().Displace(d)
	b.WriteString(indent)
	b.WriteString("Box: ")
	writeVec(b, box.Lower())
	b.WriteString(" -- ")
	writeVec(b, box.Upper())
	b.WriteByte('\n')

	switch n := n.(type) {
	case *leaf:
		pos, h := n.box.Lower(), 0.0
		if m, ok := n.block.(Marker); ok {
			pos, h = m.Position(), m.Height()
		}
		b.WriteString(indent)
		b.WriteString("Leaf: ")
		writeVec(b, pos.Add(d))
		b.WriteString(" h=")
		b.WriteString(formatFloat(h))
		b.WriteByte('\n')
	case *internal:
		dump(b, n.left, d, indent+indentation)
		dump(b, n.right, d, indent+indentation)
	}
}

func writeVec(b *strings.Builder, v mgl64.Vec2) {
	b.WriteByte('(')
	b.WriteString(formatFloat(v.X()))
	b.WriteByte(',')
	b.WriteString(formatFloat(v.Y()))
	b.WriteByte(')')
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
