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
)

// ctmCases map the polygon to device space with a transformation
// matrix before filling.
var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Path:   rectangle(0, 0, 20, 20),
		Width:  128,
		Height: 128,
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:   "scale_half",
		Path:   rectangle(0, 0, 80, 80),
		Width:  64,
		Height: 64,
		Shift:  1,
		CTM:    matrix.Scale(0.5, 0.5).Translate(12, 12),
	},
	{
		Name:   "rotate_45deg",
		Path:   rectangle(-10, -10, 10, 10),
		Width:  64,
		Height: 64,
		Shift:  8,
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:   "rotate_5deg",
		Path:   rectangle(-20, -10, 20, 10),
		Width:  64,
		Height: 64,
		Shift:  8,
		CTM:    matrix.RotateDeg(5).Translate(32, 32),
	},
	{
		Name:   "scale_2x_1y",
		Path:   diamond(0, 0, 12),
		Width:  128,
		Height: 64,
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
	},
	{
		Name:   "shear_horizontal",
		Path:   rectangle(-15, -15, 15, 15),
		Width:  64,
		Height: 64,
		Shift:  4,
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
	},
	{
		Name:   "flip_y",
		Path:   polygon(nil, 4, 4, 60, 4, 4, 60),
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{1, 0, 0, -1, 0, 64},
	},
}
