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

// largeCases contains big polygons, where the active edge list is
// exercised over many scanlines.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Path:   rectangle(50, 50, 462, 462),
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_concentric",
		Path:   concentricRectangles(256, 256, 200, 100),
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_diamond",
		Path:   diamond(256, 256, 180),
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_polygon",
		Path:   regularPolygon(256, 256, 240, 100),
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_grid",
		Path:   rectangleGrid(8, 8, 512, 512, 4),
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_clipped",
		Path:   rectangle(-100, 100, 612, 400),
		Width:  512,
		Height: 512,
	},
}

// concentricRectangles builds two nested squares around the same centre.
func concentricRectangles(cx, cy, outerR, innerR float64) *path.Data {
	p := squareAt(nil, cx, cy, outerR)
	return squareAt(p, cx, cy, innerR)
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	var p *path.Data
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap
			p = polygon(p, x1, y1, x2, y1, x2, y2, x1, y2)
		}
	}
	return p
}
