// seehuhn.de/go/scanfill - scanline polygon filling
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scanfill

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/image/math/fixed"
)

// Fixed-point format used for edge x coordinates.
const (
	// XYShift is the number of fractional bits of Edge.X and Edge.DX.
	XYShift = 16

	// XYOne is the value 1.0 in the fixed-point format of Edge.X.
	XYOne = 1 << XYShift

	// MaxCoord is the largest supported absolute vertex coordinate, in
	// pixels. Fixed-point x values and their per-scanline accumulation
	// fit into an int64, and a polygon far above the raster costs at
	// most MaxCoord empty scanlines in Filler.Fill.
	MaxCoord = 1 << 24
)

var (
	// ErrShift is returned when the number of fractional bits of a
	// vertex is outside the range [0, XYShift].
	ErrShift = errors.New("scanfill: invalid shift")

	// ErrRange is returned for vertices outside ±MaxCoord pixels.
	ErrRange = errors.New("scanfill: coordinate out of range")

	// ErrCurve is returned when a path contains curve segments.
	ErrCurve = errors.New("scanfill: curved path segments are not supported")
)

// Point is a polygon vertex. The coordinates are fixed-point numbers
// whose number of fractional bits is given by EdgeBuilder.Shift.
type Point struct {
	X, Y int64
}

// PointFrom26_6 converts a 26.6 fixed-point point. The result is meant
// to be used with an EdgeBuilder with Shift set to 6.
func PointFrom26_6(p fixed.Point26_6) Point {
	return Point{X: int64(p.X), Y: int64(p.Y)}
}

// Edge is a non-horizontal polygon edge, prepared for scan conversion.
type Edge struct {
	Y0, Y1 int   // first scanline and end scanline (exclusive), Y0 < Y1
	X      int64 // x at scanline Y0, with XYShift fractional bits
	DX     int64 // x increment per scanline, with XYShift fractional bits
}

// xAt returns the x coordinate of e on scanline y, in fixed point.
func (e *Edge) xAt(y int) int64 {
	return e.X + int64(y-e.Y0)*e.DX
}

// EdgeBuilder converts closed polygon contours into edges.
// The zero value converts integer pixel coordinates.
type EdgeBuilder struct {
	// Shift is the number of fractional bits in the vertex coordinates.
	// Must be in the range [0, XYShift].
	Shift int

	// Offset is added to every vertex before conversion.
	// It uses the same fixed-point format as the vertices.
	Offset Point
}

// Collect appends the edges of the closed polygon pts to dst and
// returns the extended slice.
//
// The polygon is implicitly closed: the edge from the last vertex back
// to the first is always included. Vertex y coordinates are rounded to
// whole scanlines, and edges which become horizontal are dropped.
// Fewer than two vertices contribute no edges.
func (b EdgeBuilder) Collect(dst []Edge, pts []Point) ([]Edge, error) {
	if b.Shift < 0 || b.Shift > XYShift {
		return dst, fmt.Errorf("%w: %d", ErrShift, b.Shift)
	}
	if len(pts) < 2 {
		return dst, nil
	}

	// Vertices and offset are checked separately first, so that
	// their sum cannot overflow.
	limit := int64(MaxCoord) << b.Shift
	outside := func(x, y int64) bool {
		return x > limit || x < -limit || y > limit || y < -limit
	}
	if outside(b.Offset.X, b.Offset.Y) {
		return dst, fmt.Errorf("offset (%d, %d): %w", b.Offset.X, b.Offset.Y, ErrRange)
	}
	for i, p := range pts {
		if outside(p.X, p.Y) || outside(p.X+b.Offset.X, p.Y+b.Offset.Y) {
			return dst, fmt.Errorf("vertex %d (%d, %d): %w", i, p.X, p.Y, ErrRange)
		}
	}

	delta := b.Offset.Y + int64((1<<b.Shift)>>1)
	xShift := XYShift - b.Shift
	convert := func(p Point) (x, y int64) {
		return (p.X + b.Offset.X) << xShift, (p.Y + delta) >> b.Shift
	}

	dst = slices.Grow(dst, len(pts))
	x0, y0 := convert(pts[len(pts)-1])
	for _, p := range pts {
		x1, y1 := convert(p)
		dst = appendEdge(dst, x0, y0, x1, y1)
		x0, y0 = x1, y1
	}
	return dst, nil
}

// appendEdge appends the edge between two converted vertices, unless it
// is horizontal. The x coordinates are in fixed point, the y
// coordinates are scanline numbers.
func appendEdge(dst []Edge, x0, y0, x1, y1 int64) []Edge {
	if y0 == y1 {
		return dst
	}

	var e Edge
	if y0 < y1 {
		e = Edge{Y0: int(y0), Y1: int(y1), X: x0}
	} else {
		e = Edge{Y0: int(y1), Y1: int(y0), X: x1}
	}
	e.DX = (x1 - x0) / (y1 - y0)
	if e.Y0 >= e.Y1 {
		panic(fmt.Sprintf("scanfill: malformed edge y0=%d y1=%d", e.Y0, e.Y1))
	}
	return append(dst, e)
}
