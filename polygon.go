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
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// CollectPath appends the edges of all subpaths of p to dst.
//
// The path coordinates are mapped to device space using ctm and then
// rounded to fixed-point numbers with b.Shift fractional bits.
// Every subpath is treated as a closed contour, whether or not it ends
// with a ClosePath command. The path must consist of straight line
// segments only; curves are rejected with ErrCurve.
func (b EdgeBuilder) CollectPath(dst []Edge, p *path.Data, ctm matrix.Matrix) ([]Edge, error) {
	if b.Shift < 0 || b.Shift > XYShift {
		return dst, fmt.Errorf("%w: %d", ErrShift, b.Shift)
	}

	scale := float64(int64(1) << b.Shift)
	var contour []Point
	var start Point

	flush := func() error {
		var err error
		dst, err = b.Collect(dst, contour)
		contour = contour[:0]
		return err
	}

	coordIdx := 0
	for i, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if err := flush(); err != nil {
				return dst, err
			}
			pt, err := toFixed(ctm, p.Coords[coordIdx], scale)
			if err != nil {
				return dst, fmt.Errorf("path command %d: %w", i, err)
			}
			start = pt
			contour = append(contour, pt)
			coordIdx++

		case path.CmdLineTo:
			pt, err := toFixed(ctm, p.Coords[coordIdx], scale)
			if err != nil {
				return dst, fmt.Errorf("path command %d: %w", i, err)
			}
			contour = append(contour, pt)
			coordIdx++

		case path.CmdQuadTo, path.CmdCubeTo:
			return dst, fmt.Errorf("path command %d: %w", i, ErrCurve)

		case path.CmdClose:
			if err := flush(); err != nil {
				return dst, err
			}
			// a following LineTo starts a new subpath at the old start point
			contour = append(contour, start)
		}
	}
	if err := flush(); err != nil {
		return dst, err
	}
	return dst, nil
}

// toFixed maps a user-space point to device space and converts it to
// fixed point, using scale = 1<<shift.
func toFixed(ctm matrix.Matrix, p vec.Vec2, scale float64) (Point, error) {
	x := ctm[0]*p.X + ctm[2]*p.Y + ctm[4]
	y := ctm[1]*p.X + ctm[3]*p.Y + ctm[5]

	// NaN fails both comparisons
	if !(math.Abs(x) <= MaxCoord && math.Abs(y) <= MaxCoord) {
		return Point{}, fmt.Errorf("point (%g, %g): %w", x, y, ErrRange)
	}
	return Point{
		X: int64(math.Round(x * scale)),
		Y: int64(math.Round(y * scale)),
	}, nil
}

// FillPoly fills the region bounded by one or more closed contours,
// using the even-odd rule. Contours nested inside other contours
// become holes. The contours must not cross each other.
func (f *Filler) FillPoly(contours [][]Point, b EdgeBuilder, emit func(y, x1, x2 int)) error {
	f.collected = f.collected[:0]
	for i, pts := range contours {
		var err error
		f.collected, err = b.Collect(f.collected, pts)
		if err != nil {
			return fmt.Errorf("contour %d: %w", i, err)
		}
	}
	f.Fill(f.collected, emit)
	return nil
}

// FillPath fills the path p, transformed by ctm, using the even-odd
// rule. Device coordinates are rounded to shift fractional bits.
// See EdgeBuilder.CollectPath for the restrictions on p.
func (f *Filler) FillPath(p *path.Data, ctm matrix.Matrix, shift int, emit func(y, x1, x2 int)) error {
	b := EdgeBuilder{Shift: shift}
	var err error
	f.collected, err = b.CollectPath(f.collected[:0], p, ctm)
	if err != nil {
		return err
	}
	f.Fill(f.collected, emit)
	return nil
}

// Bounds returns the bounding box of the edges in pixel coordinates.
// The y range covers the scanlines from the first Y0 up to the last
// Y1. The result is false if edges is empty.
func Bounds(edges []Edge) (rect.Rect, bool) {
	if len(edges) == 0 {
		return rect.Rect{}, false
	}
	b := edgeBounds(edges)
	return rect.Rect{
		LLx: float64(b.xMin) / XYOne,
		LLy: float64(b.yMin),
		URx: float64(b.xMax) / XYOne,
		URy: float64(b.yMax),
	}, true
}
