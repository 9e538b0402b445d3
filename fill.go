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
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
)

// nilEdge marks the end of the active edge list.
const nilEdge = -1

// activeEdge is a working copy of an Edge, linked into the active edge
// list by index.
type activeEdge struct {
	Edge
	next int
}

// Filler converts edge lists into horizontal pixel spans, using the
// even-odd rule. Create one instance and reuse it for multiple
// polygons. Internal buffers grow as needed but never shrink.
//
// A Filler is not safe for concurrent use.
type Filler struct {
	// Width and Height give the size of the target raster in pixels.
	// Spans are clipped to the columns [0, Width) and the rows
	// [0, Height).
	Width, Height int

	// work holds the sorted working copies of the edges, followed by
	// the end sentinel and the list head.
	work []activeEdge

	// next is the index in work of the first edge which has not yet
	// been inserted into the active list.
	next int

	// total is the number of real edges in work.
	total int

	// collected is the edge buffer used by FillPoly and FillPath.
	collected []Edge
}

// NewFiller returns a Filler for a raster of the given size.
func NewFiller(width, height int) *Filler {
	return &Filler{Width: width, Height: height}
}

// Reset changes the raster size, keeping the internal buffers.
func (f *Filler) Reset(width, height int) {
	f.Width = width
	f.Height = height
	f.work = f.work[:0]
	f.collected = f.collected[:0]
	f.next = 0
	f.total = 0
}

// Fill fills the polygon described by edges, calling emit for every
// horizontal span y, [x1, x2] of pixels inside the polygon. The bounds
// x1 <= x2 are inclusive and lie within [0, Width). Spans are emitted
// in order of increasing y, and from left to right within a row.
//
// Every edge must satisfy Y0 < Y1, as guaranteed by EdgeBuilder.
// The edges slice is not modified, so repeated calls with the same
// edges emit identical spans. Fewer than two edges, or edges lying
// entirely outside the raster, produce no output.
//
// The edges of the polygon must not cross each other.
//
// Scanlines above the raster are walked without emitting spans, so the
// cost grows with the distance of the topmost vertex above row 0, up
// to MaxCoord scanlines.
func (f *Filler) Fill(edges []Edge, emit func(y, x1, x2 int)) {
	yStart, yEnd, ok := f.prepare(edges)
	if !ok {
		return
	}

	for y := yStart; y < yEnd; y++ {
		f.scanline(y, emit)
	}
}

// prepare checks the edges, copies them into the work buffer in sorted
// order and initialises the empty active list. It returns the range of
// scanlines to sweep, or ok=false if nothing needs to be drawn.
func (f *Filler) prepare(edges []Edge) (yStart, yEnd int, ok bool) {
	if len(edges) < 2 || f.Width <= 0 || f.Height <= 0 {
		return 0, 0, false
	}

	b := edgeBounds(edges)
	if b.yMax < 0 || b.yMin >= f.Height || b.xMax < 0 || b.xMin >= int64(f.Width)<<XYShift {
		if log := Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
			log.Debug("polygon outside raster",
				"edges", len(edges),
				"yMin", b.yMin, "yMax", b.yMax,
				"width", f.Width, "height", f.Height)
		}
		return 0, 0, false
	}

	total := len(edges)
	n := total + 2
	f.work = slices.Grow(f.work[:0], n)[:n]
	for i := range edges {
		f.work[i] = activeEdge{Edge: edges[i], next: nilEdge}
	}
	slices.SortFunc(f.work[:total], func(a, b activeEdge) int {
		if c := cmp.Compare(a.Y0, b.Y0); c != 0 {
			return c
		}
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.DX, b.DX)
	})

	// The sentinel never becomes active, so that the activation test
	// in scanline needs no bounds check.
	f.work[total] = activeEdge{Edge: Edge{Y0: math.MaxInt, Y1: math.MaxInt}, next: nilEdge}
	f.work[total+1] = activeEdge{next: nilEdge}

	f.total = total
	f.next = 0

	yStart = f.work[0].Y0
	yEnd = min(b.yMax, f.Height)
	if log := Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("filling polygon",
			"edges", total,
			"yStart", yStart, "yEnd", yEnd)
	}
	return yStart, yEnd, true
}

// head returns the index of the list head node in f.work.
func (f *Filler) head() int {
	return f.total + 1
}

// scanline processes scanline y: it removes expired edges from the
// active list, merges in the edges starting on y, emits the spans
// between consecutive pairs of active edges and advances every
// active edge to the next scanline.
func (f *Filler) scanline(y int, emit func(y, x1, x2 int)) {
	work := f.work
	pending := &work[f.next]

	draw := false
	clipline := y < 0

	prev := f.head()
	cur := work[prev].next
	pairStart := nilEdge

	for cur != nilEdge || pending.Y0 == y {
		if cur != nilEdge && work[cur].Y1 == y {
			// the edge has reached its lower end
			work[prev].next = work[cur].next
			cur = work[cur].next
			continue
		}

		pairStart = prev
		if cur != nilEdge && (pending.Y0 != y || work[cur].X <= pending.X) {
			// step along the active list
			prev = cur
			cur = work[cur].next
		} else if f.next < f.total {
			// insert the pending edge before cur
			work[prev].next = f.next
			pending.next = cur
			prev = f.next
			f.next++
			pending = &work[f.next]
		} else {
			break
		}

		if draw {
			left, right := &work[pairStart], &work[prev]
			if !clipline {
				f.emitSpan(y, left.X, right.X, emit)
			}
			left.X += left.DX
			right.X += right.DX
		}
		draw = !draw
	}
}

// emitSpan converts the fixed-point boundaries of an inside interval to
// pixel columns, clips them to the raster and calls emit.
func (f *Filler) emitSpan(y int, xa, xb int64, emit func(y, x1, x2 int)) {
	if xa > xb {
		xa, xb = xb, xa
	}
	x1 := (xa + XYOne - 1) >> XYShift
	x2 := xb >> XYShift
	if x1 > x2 || x1 >= int64(f.Width) || x2 < 0 {
		return
	}
	x1 = max(x1, 0)
	x2 = min(x2, int64(f.Width)-1)
	emit(y, int(x1), int(x2))
}

// bounds is the bounding box of an edge set. The y range is given in
// scanlines, the x range in fixed point.
type bounds struct {
	yMin, yMax int
	xMin, xMax int64
}

// edgeBounds computes the bounding box of edges, which must be
// non-empty. Both end points of every edge are included.
func edgeBounds(edges []Edge) bounds {
	b := bounds{
		yMin: math.MaxInt,
		yMax: math.MinInt,
		xMin: math.MaxInt64,
		xMax: math.MinInt64,
	}
	for i := range edges {
		e := &edges[i]
		if e.Y0 >= e.Y1 {
			panic(fmt.Sprintf("scanfill: edge %d has y0=%d >= y1=%d", i, e.Y0, e.Y1))
		}
		// The x coordinate at the lower end is not necessarily the x
		// coordinate of a polygon vertex, since DX is truncated.
		x1 := e.xAt(e.Y1)
		b.yMin = min(b.yMin, e.Y0)
		b.yMax = max(b.yMax, e.Y1)
		b.xMin = min(b.xMin, e.X, x1)
		b.xMax = max(b.xMax, e.X, x1)
	}
	return b
}
