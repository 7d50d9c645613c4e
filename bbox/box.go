// Copyright 2023 The blocktree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package bbox

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// A Box is an axis-aligned rectangle given by its lower corner, the
// corner with the smaller X- and Y-coordinates, and its upper corner.
//
// The zero value is the degenerate box whose corners are both at the
// origin.
type Box struct {
	lower mgl64.Vec2
	upper mgl64.Vec2
}

// New returns the box with the given lower and upper corners. Returns
// an error wrapping ErrInvalidBox if upper is less than lower along
// either axis, or if any coordinate is NaN.
func New(lower, upper mgl64.Vec2) (Box, error) {
	if !(lower.X() <= upper.X()) || !(lower.Y() <= upper.Y()) {
		if isNaN(lower) || isNaN(upper) {
			return Box{}, wrapErr("NaN coordinate in corners %s and %s", ErrInvalidBox, formatVec(lower), formatVec(upper))
		}
		return Box{}, wrapErr("upper corner %s below lower corner %s", ErrInvalidBox, formatVec(upper), formatVec(lower))
	}
	return Box{lower: lower, upper: upper}, nil
}

func isNaN(v mgl64.Vec2) bool {
	return math.IsNaN(v.X()) || math.IsNaN(v.Y())
}

// MustNew is like New but panics if the corners do not form a valid
// box.
func MustNew(lower, upper mgl64.Vec2) Box {
	b, err := New(lower, upper)
	if err != nil {
		fmtPanic("invalid corners %s and %s", formatVec(lower), formatVec(upper))
	}
	return b
}

// Union returns the smallest box containing every input box. Returns
// ErrEmptyInput if no boxes are given.
func Union(boxes ...Box) (Box, error) {
	if len(boxes) == 0 {
		return Box{}, ErrEmptyInput
	}
	u := boxes[0]
	for i := 1; i < len(boxes); i++ {
		u.expand(&boxes[i])
	}
	return u, nil
}

// Lower returns the corner with the smaller coordinates.
func (b Box) Lower() mgl64.Vec2 {
	return b.lower
}

// Upper returns the corner with the larger coordinates.
func (b Box) Upper() mgl64.Vec2 {
	return b.upper
}

// Width returns the size of the box along the X-axis.
func (b Box) Width() float64 {
	return b.upper.X() - b.lower.X()
}

// Height returns the size of the box along the Y-axis.
func (b Box) Height() float64 {
	return b.upper.Y() - b.lower.Y()
}

// Length returns the larger of Width and Height. When the two are
// equal the result is the width.
func (b Box) Length() float64 {
	w, h := b.Width(), b.Height()
	if h > w {
		return h
	}
	return w
}

// Center returns the midpoint of the box's corners.
func (b Box) Center() mgl64.Vec2 {
	return mgl64.Vec2{
		(b.lower.X() + b.upper.X()) / 2,
		(b.lower.Y() + b.upper.Y()) / 2,
	}
}

// Area returns Width times Height.
func (b Box) Area() float64 {
	return b.Width() * b.Height()
}

// Displace returns a copy of the box translated by d.
func (b Box) Displace(d mgl64.Vec2) Box {
	return Box{lower: b.lower.Add(d), upper: b.upper.Add(d)}
}

// Contains reports whether p lies inside the box. Points on the
// boundary are inside.
func (b Box) Contains(p mgl64.Vec2) bool {
	return b.lower.X() <= p.X() && p.X() <= b.upper.X() &&
		b.lower.Y() <= p.Y() && p.Y() <= b.upper.Y()
}

// Overlaps reports whether the box intersects o. Boxes which only
// touch along an edge or at a corner overlap.
func (b Box) Overlaps(o Box) bool {
	if o.upper.X() < b.lower.X() {
		return false
	}
	if o.lower.X() > b.upper.X() {
		return false
	}
	if o.upper.Y() < b.lower.Y() {
		return false
	}
	if o.lower.Y() > b.upper.Y() {
		return false
	}
	return true
}

// String returns the box in the form [XMin,YMin,XMax,YMax].
func (b Box) String() string {
	var s strings.Builder
	s.WriteByte('[')
	s.WriteString(formatFloat(b.lower.X()))
	s.WriteByte(',')
	s.WriteString(formatFloat(b.lower.Y()))
	s.WriteByte(',')
	s.WriteString(formatFloat(b.upper.X()))
	s.WriteByte(',')
	s.WriteString(formatFloat(b.upper.Y()))
	s.WriteByte(']')
	return s.String()
}

func (b *Box) expand(c *Box) {
	b.lower = mgl64.Vec2{math.Min(b.lower.X(), c.lower.X()), math.Min(b.lower.Y(), c.lower.Y())}
	b.upper = mgl64.Vec2{math.Max(b.upper.X(), c.upper.X()), math.Max(b.upper.Y(), c.upper.Y())}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatVec(v mgl64.Vec2) string {
	return "(" + formatFloat(v.X()) + "," + formatFloat(v.Y()) + ")"
}
