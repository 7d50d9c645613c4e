// Copyright 2023 The blocktree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogama/blocktree/littleendian"
	flatbuffers "github.com/google/flatbuffers/go"
)

// Field slots of the Block table.
const (
	blockSlotX = iota
	blockSlotY
	blockSlotWidth
	blockSlotHeight
	blockSlotElevation
	blockNumFields
)

// Field slots of the Scene table.
const (
	sceneSlotName = iota
	sceneSlotBlocks
	sceneNumFields
)

// safeFlatBuffersInteraction runs a function that interacts with
// FlatBuffers, trapping any panic that occurs and converting it to a
// normal Go error.
//
// This function exists because FlatBuffer's Go code doesn't use
// standard Go error handling, allegedly for performance reasons, and
// consequently any invalid attempt to interact with FlatBuffer data
// may trigger a panic.
func safeFlatBuffersInteraction(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: flatbuffers: %v", r)
		}
	}()
	err = f()
	return
}

// writeSizePrefixedTable writes a finished, size-prefixed FlatBuffers
// buffer to an output stream after checking that the size prefix
// agrees with the buffer length.
func writeSizePrefixedTable(w io.Writer, buf []byte) (n int, err error) {
	var size uint32
	if size, err = tableSize(buf); err != nil {
		return
	} else if uint64(size)+flatbuffers.SizeUint32 != uint64(len(buf)) {
		err = fmtErr("FlatBuffers size prefix does not match buffer (Len=%d, size=%d)", len(buf), size)
		return
	}
	return w.Write(buf)
}

// tableSize returns the size prefix at the start of buf.
func tableSize(buf []byte) (size uint32, err error) {
	if len(buf) < flatbuffers.SizeUint32 {
		err = fmtErr("buffer too short for size prefix (Len=%d)", len(buf))
		return
	}
	size = littleendian.Uint32(buf)
	return
}

// vtableOffset converts a field slot number to its vtable offset.
func vtableOffset(slot int) flatbuffers.VOffsetT {
	return flatbuffers.VOffsetT((slot + 2) * flatbuffers.SizeVOffsetT)
}

// encode builds the size-prefixed FlatBuffers representation of s.
func encode(s *Scene) []byte {
	b := flatbuffers.NewBuilder(64 + 64*len(s.Blocks))

	// Children must be built before their parents.
	name := b.CreateString(s.Name)
	offsets := make([]flatbuffers.UOffsetT, len(s.Blocks))
	for i := range s.Blocks {
		blk := &s.Blocks[i]
		b.StartObject(blockNumFields)
		b.PrependFloat64Slot(blockSlotX, blk.position.X(), 0)
		b.PrependFloat64Slot(blockSlotY, blk.position.Y(), 0)
		b.PrependFloat64Slot(blockSlotWidth, blk.extent.X(), 0)
		b.PrependFloat64Slot(blockSlotHeight, blk.extent.Y(), 0)
		b.PrependFloat64Slot(blockSlotElevation, blk.height, 0)
		offsets[i] = b.EndObject()
	}
	b.StartVector(flatbuffers.SizeUOffsetT, len(offsets), flatbuffers.SizeUOffsetT)
	for i := len(offsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offsets[i])
	}
	blocks := b.EndVector(len(offsets))

	b.StartObject(sceneNumFields)
	b.PrependUOffsetTSlot(sceneSlotName, name, 0)
	b.PrependUOffsetTSlot(sceneSlotBlocks, blocks, 0)
	b.FinishSizePrefixed(b.EndObject())
	return b.FinishedBytes()
}

// sceneTable gives access to a Scene table in a FlatBuffers buffer.
type sceneTable struct {
	flatbuffers.Table
}

// rootScene returns the root Scene table of a size-prefixed buffer.
func rootScene(buf []byte) sceneTable {
	n := flatbuffers.GetUOffsetT(buf[flatbuffers.SizeUint32:])
	return sceneTable{flatbuffers.Table{Bytes: buf, Pos: n + flatbuffers.SizeUint32}}
}

func (t sceneTable) name() string {
	o := flatbuffers.UOffsetT(t.Offset(vtableOffset(sceneSlotName)))
	if o != 0 {
		return string(t.ByteVector(o + t.Pos))
	}
	return ""
}

func (t sceneTable) numBlocks() int {
	o := flatbuffers.UOffsetT(t.Offset(vtableOffset(sceneSlotBlocks)))
	if o != 0 {
		return t.VectorLen(o)
	}
	return 0
}

func (t sceneTable) block(j int) blockTable {
	o := flatbuffers.UOffsetT(t.Offset(vtableOffset(sceneSlotBlocks)))
	x := t.Vector(o) + flatbuffers.UOffsetT(j)*flatbuffers.SizeUOffsetT
	return blockTable{flatbuffers.Table{Bytes: t.Bytes, Pos: t.Indirect(x)}}
}

// blockTable gives access to a Block table in a FlatBuffers buffer.
type blockTable struct {
	flatbuffers.Table
}

func (t blockTable) field(slot int) float64 {
	o := flatbuffers.UOffsetT(t.Offset(vtableOffset(slot)))
	if o != 0 {
		return t.GetFloat64(o + t.Pos)
	}
	return 0
}

func (t blockTable) position() mgl64.Vec2 {
	return mgl64.Vec2{t.field(blockSlotX), t.field(blockSlotY)}
}

func (t blockTable) extent() mgl64.Vec2 {
	return mgl64.Vec2{t.field(blockSlotWidth), t.field(blockSlotHeight)}
}

func (t blockTable) elevation() float64 {
	return t.field(blockSlotElevation)
}
