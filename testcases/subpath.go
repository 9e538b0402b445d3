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

package testcases

import (
	"seehuhn.de/go/geom/path"
)

// subpathCases contains polygons made of several contours.
// The contours never cross; nested contours become holes.
var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Path:   twoTriangles(16, 32, 48, 32, 12),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ring_shape",
		Path:   ringShape(32, 32, 25, 12),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "multiple_rings",
		Path:   multipleRings(64, 64),
		Width:  128,
		Height: 128,
	},
	{
		Name:   "nested_diamonds",
		Path:   nestedDiamonds(32, 32, 30, 4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "many_small_shapes",
		Path:   manySmallShapes(8, 8),
		Width:  128,
		Height: 128,
	},
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) *path.Data {
	p := polygon(nil, cx1, cy1-size, cx1+size, cy1+size, cx1-size, cy1+size)
	return polygon(p, cx2, cy2-size, cx2+size, cy2+size, cx2-size, cy2+size)
}

// ringShape builds a ring (outer square with an inner square cut out).
func ringShape(cx, cy, outerSize, innerSize float64) *path.Data {
	p := squareAt(nil, cx, cy, outerSize)
	return squareAt(p, cx, cy, innerSize)
}

// multipleRings builds three square rings around the given centre.
func multipleRings(cx, cy float64) *path.Data {
	rings := []struct{ cx, cy, outer, inner float64 }{
		{cx - 30, cy - 30, 20, 10},
		{cx + 30, cy - 30, 20, 10},
		{cx, cy + 30, 20, 10},
	}

	var p *path.Data
	for _, ring := range rings {
		p = squareAt(p, ring.cx, ring.cy, ring.outer)
		p = squareAt(p, ring.cx, ring.cy, ring.inner)
	}
	return p
}

// nestedDiamonds builds n concentric diamonds. Under the even-odd rule
// every second band is filled.
func nestedDiamonds(cx, cy, r float64, n int) *path.Data {
	var p *path.Data
	step := r / float64(n)
	for i := range n {
		ri := r - float64(i)*step
		p = polygon(p, cx, cy-ri, cx+ri, cy, cx, cy+ri, cx-ri, cy)
	}
	return p
}

// manySmallShapes builds a grid of small triangles (stress test).
func manySmallShapes(rows, cols int) *path.Data {
	size := 5.0
	spacing := 14.0

	var p *path.Data
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cx := 10.0 + float64(col)*spacing
			cy := 10.0 + float64(row)*spacing
			p = polygon(p, cx, cy-size, cx+size, cy+size, cx-size, cy+size)
		}
	}
	return p
}

// squareAt appends an axis-aligned square contour with the given
// centre and half side length.
func squareAt(p *path.Data, cx, cy, r float64) *path.Data {
	return polygon(p, cx-r, cy-r, cx+r, cy-r, cx+r, cy+r, cx-r, cy+r)
}
