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
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Span is a horizontal run of pixels X1, ..., X2 on row Y.
type Span struct {
	Y, X1, X2 int
}

// SpanRecorder collects the spans emitted by a Filler.
type SpanRecorder struct {
	Spans []Span
}

// Emit appends a span. It can be passed to Filler.Fill as the emit
// callback.
func (r *SpanRecorder) Emit(y, x1, x2 int) {
	r.Spans = append(r.Spans, Span{Y: y, X1: x1, X2: x2})
}

// Reset removes all recorded spans.
func (r *SpanRecorder) Reset() {
	r.Spans = r.Spans[:0]
}

// Painter writes spans into an image. Span coordinates are relative to
// the top-left corner of Dst.Bounds().
type Painter struct {
	Dst draw.Image
	Src image.Image
	Op  draw.Op
}

// Span paints the pixels x1, ..., x2 on row y. It has the signature
// required for the emit callback of Filler.Fill.
func (p *Painter) Span(y, x1, x2 int) {
	b := p.Dst.Bounds()
	r := image.Rect(x1, y, x2+1, y+1).Add(b.Min).Intersect(b)
	if r.Empty() {
		return
	}

	if u, ok := p.Src.(*image.Uniform); ok && p.Op == draw.Src {
		switch dst := p.Dst.(type) {
		case *image.Gray:
			v := color.GrayModel.Convert(u.C).(color.Gray).Y
			fillRow(dst.Pix[dst.PixOffset(r.Min.X, r.Min.Y):][:r.Dx()], v)
			return
		case *image.Alpha:
			v := color.AlphaModel.Convert(u.C).(color.Alpha).A
			fillRow(dst.Pix[dst.PixOffset(r.Min.X, r.Min.Y):][:r.Dx()], v)
			return
		}
	}

	draw.Draw(p.Dst, r, p.Src, r.Min, p.Op)
}

func fillRow(row []byte, v byte) {
	for i := range row {
		row[i] = v
	}
}

// FillPoly fills the region bounded by the given contours with colour
// c, using the even-odd rule. The vertex coordinates have shift
// fractional bits, and offset is added to every vertex. Pixel (0, 0)
// is the top-left corner of dst.Bounds().
func FillPoly(dst draw.Image, contours [][]Point, c color.Color, shift int, offset Point) error {
	b := dst.Bounds()
	f := NewFiller(b.Dx(), b.Dy())
	p := &Painter{
		Dst: dst,
		Src: image.NewUniform(c),
		Op:  draw.Src,
	}
	return f.FillPoly(contours, EdgeBuilder{Shift: shift, Offset: offset}, p.Span)
}
