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

// clipCases contains polygons which extend beyond the canvas.
// Scanlines above the canvas are walked but never drawn.
var clipCases = []TestCase{
	{
		Name:   "above_top",
		Path:   polygon(nil, 32, -40, 60, 30, 4, 30),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "below_bottom",
		Path:   polygon(nil, 4, 34, 60, 34, 32, 120),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "left_and_right",
		Path:   polygon(nil, -30, 10, 94, 20, 94, 40, -30, 54),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "covers_canvas",
		Path:   rectangle(-10, -10, 74, 74),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "outside_right",
		Path:   rectangle(70, 10, 90, 50),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "outside_above",
		Path:   rectangle(10, -50, 50, -10),
		Width:  64,
		Height: 64,
	},
}
