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
	"math"

	"seehuhn.de/go/geom/path"
)

// complexCases contains concave polygons, where a scanline can cross
// more than two edges.
var complexCases = []TestCase{
	{
		Name:   "notched_hexagon",
		Path:   polygon(nil, 15, 11, 21, 13, 21, 18, 15, 15, 12, 17, 12, 12),
		Width:  30,
		Height: 30,
	},
	{
		Name:   "l_shape",
		Path:   polygon(nil, 8, 8, 24, 8, 24, 40, 56, 40, 56, 56, 8, 56),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "comb",
		Path:   comb(6, 8, 58, 56, 5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "zigzag",
		Path:   zigzag(4, 20, 60, 44, 7),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "star_shaped",
		Path:   starShaped(32, 32, 28, 12, 7),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "glyph_e",
		Path:   glyphE(),
		Width:  64,
		Height: 64,
	},
}

// comb builds a comb with n teeth pointing up, standing on a solid bar
// at the bottom.
func comb(x1, y1, x2, y2 float64, n int) *path.Data {
	toothW := (x2 - x1) / float64(2*n-1)
	barTop := y2 - (y2-y1)/4

	xy := []float64{x1, y2, x1, y1}
	for i := range n {
		left := x1 + float64(2*i)*toothW
		right := left + toothW
		if i > 0 {
			xy = append(xy, left, barTop, left, y1)
		}
		xy = append(xy, right, y1)
		if i < n-1 {
			xy = append(xy, right, barTop)
		}
	}
	xy = append(xy, x2, y2)
	return polygon(nil, xy...)
}

// zigzag builds a horizontal band with a zigzag upper boundary.
func zigzag(x1, yTop, x2, yBot float64, n int) *path.Data {
	step := (x2 - x1) / float64(n)
	amplitude := (yBot - yTop) / 2

	xy := []float64{x1, yBot}
	for i := 0; i <= n; i++ {
		y := yTop
		if i%2 == 1 {
			y += amplitude
		}
		xy = append(xy, x1+float64(i)*step, y)
	}
	xy = append(xy, x2, yBot)
	return polygon(nil, xy...)
}

// starShaped builds a simple star polygon with n spikes, alternating
// between the outer and inner radius. Unlike a pentagram, the outline
// does not cross itself.
func starShaped(cx, cy, rOuter, rInner float64, n int) *path.Data {
	xy := make([]float64, 0, 4*n)
	for i := range 2 * n {
		r := rOuter
		if i%2 == 1 {
			r = rInner
		}
		angle := float64(i)*math.Pi/float64(n) - math.Pi/2
		xy = append(xy,
			math.Round(cx+r*math.Cos(angle)),
			math.Round(cy+r*math.Sin(angle)))
	}
	return polygon(nil, xy...)
}

// glyphE builds a polygonal capital letter E.
func glyphE() *path.Data {
	return polygon(nil,
		14, 8, 50, 8, 50, 16, 24, 16, 24, 28, 44, 28,
		44, 36, 24, 36, 24, 48, 50, 48, 50, 56, 14, 56)
}
