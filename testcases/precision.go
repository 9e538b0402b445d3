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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// precisionCases exercise sub-pixel vertex positions and large
// coordinates.
var precisionCases = []TestCase{
	{
		Name:   "subpixel_offset_00",
		Path:   offsetRectangle(20, 20, 24, 24, 0.0),
		Width:  64,
		Height: 64,
		Shift:  4,
	},
	{
		Name:   "subpixel_offset_25",
		Path:   offsetRectangle(20, 20, 24, 24, 0.25),
		Width:  64,
		Height: 64,
		Shift:  4,
	},
	{
		Name:   "subpixel_offset_50",
		Path:   offsetRectangle(20, 20, 24, 24, 0.5),
		Width:  64,
		Height: 64,
		Shift:  4,
	},
	{
		Name:   "subpixel_offset_75",
		Path:   offsetRectangle(20, 20, 24, 24, 0.75),
		Width:  64,
		Height: 64,
		Shift:  4,
	},
	{
		Name:   "subpixel_triangle",
		Path:   polygon(nil, 10.3, 50.6, 32.45, 10.2, 53.9, 49.7),
		Width:  64,
		Height: 64,
		Shift:  8,
	},
	{
		Name:   "full_precision_triangle",
		Path:   polygon(nil, 3.1, 60.9, 31.77, 2.13, 60.01, 59.4),
		Width:  64,
		Height: 64,
		Shift:  16,
	},
	{
		Name:   "large_coord_centered",
		Path:   offsetRectangle(1e6-10, 1e6-10, 20, 20, 0),
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{1, 0, 0, 1, 32 - 1e6, 32 - 1e6},
	},
	{
		Name:   "small_shape_large_offset",
		Path:   offsetRectangle(1e8, 1e8, 3, 3, 0.5),
		Width:  64,
		Height: 64,
		Shift:  2,
		CTM:    matrix.Matrix{1, 0, 0, 1, 30 - 1e8, 30 - 1e8},
	},
}

// offsetRectangle builds a rectangular path with a subpixel offset
// applied to all coordinates.
func offsetRectangle(x1, y1, w, h, offset float64) *path.Data {
	ox1 := x1 + offset
	oy1 := y1 + offset
	return rectangle(ox1, oy1, ox1+w, oy1+h)
}
