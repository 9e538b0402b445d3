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

// Package testcases defines polygons used to test the scan filler.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single polygon fill test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Path   *path.Data    // closed contours made of straight lines
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Shift  int           // fractional bits kept when converting to fixed point
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)
}

// Matrix returns the transformation matrix of the test case, mapping
// the zero value to the identity.
func (tc TestCase) Matrix() matrix.Matrix {
	if tc.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return tc.CTM
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polygon appends a closed contour through the given points to p.
// The coordinates are given as alternating x and y values.
func polygon(p *path.Data, xy ...float64) *path.Data {
	if p == nil {
		p = &path.Data{}
	}
	p = p.MoveTo(pt(xy[0], xy[1]))
	for i := 2; i+1 < len(xy); i += 2 {
		p = p.LineTo(pt(xy[i], xy[i+1]))
	}
	return p.Close()
}
