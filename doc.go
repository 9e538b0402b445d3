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

// Package scanfill fills polygons on a pixel raster, using an active
// edge table and the even-odd rule.
//
// Filling happens in two steps. An [EdgeBuilder] converts the vertices
// of one or more closed contours into a list of [Edge] values with
// fixed-point x coordinates. A [Filler] then sweeps the scanlines from
// top to bottom and reports every horizontal run of inside pixels to a
// callback. Pixel (x, y) is inside if the point (x, y) lies inside or
// on the boundary of the polygon; there is no anti-aliasing.
//
// The callback owns the pixel buffer. [Painter] implements it for
// images from the standard library, and [SpanRecorder] collects the
// spans in memory.
package scanfill

//go:generate go run ./testcases/export
