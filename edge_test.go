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
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/fixed"
)

func TestCollectRightTriangle(t *testing.T) {
	pts := []Point{{0, 0}, {5, 0}, {0, 5}}
	edges, err := EdgeBuilder{}.Collect(nil, pts)
	if err != nil {
		t.Fatal(err)
	}

	// The horizontal edge (0,0)-(5,0) is dropped. The first edge is
	// the closing edge from (0,5) back to (0,0).
	want := []Edge{
		{Y0: 0, Y1: 5, X: 0, DX: 0},
		{Y0: 0, Y1: 5, X: 5 * XYOne, DX: -XYOne},
	}
	if d := cmp.Diff(want, edges); d != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", d)
	}
}

func TestCollectClosingEdge(t *testing.T) {
	// The closing edge from (3,9) back to (1,2) comes first.
	pts := []Point{{1, 2}, {7, 2}, {3, 9}}
	edges, err := EdgeBuilder{}.Collect(nil, pts)
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(edges))
	}

	closing := Edge{Y0: 2, Y1: 9, X: 1 * XYOne, DX: (3 - 1) * XYOne / 7}
	if edges[0] != closing {
		t.Errorf("closing edge: got %+v, want %+v", edges[0], closing)
	}
}

func TestCollectHorizontalSkip(t *testing.T) {
	// a "comb" where every second edge is horizontal
	pts := []Point{{0, 0}, {2, 0}, {2, 4}, {4, 4}, {4, 0}, {6, 0}, {6, 8}, {0, 8}}
	edges, err := EdgeBuilder{}.Collect(nil, pts)
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 4 {
		t.Errorf("got %d edges, want 4", len(edges))
	}
	for _, e := range edges {
		if e.Y0 >= e.Y1 {
			t.Errorf("malformed edge %+v", e)
		}
	}

	// Duplicate consecutive vertices and horizontal runs contribute nothing.
	flat := []Point{{0, 3}, {5, 3}, {5, 3}, {9, 3}}
	edges, err = EdgeBuilder{}.Collect(nil, flat)
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 0 {
		t.Errorf("horizontal polygon: got %d edges, want 0", len(edges))
	}
}

func TestCollectDegenerate(t *testing.T) {
	prefix := []Edge{{Y0: 1, Y1: 2}}
	for _, pts := range [][]Point{nil, {{4, 4}}} {
		edges, err := EdgeBuilder{}.Collect(prefix, pts)
		if err != nil {
			t.Errorf("%d vertices: unexpected error %v", len(pts), err)
		}
		if d := cmp.Diff(prefix, edges); d != "" {
			t.Errorf("%d vertices: dst changed (-want +got):\n%s", len(pts), d)
		}
	}

	// Two vertices give the edge and its reverse.
	edges, err := EdgeBuilder{}.Collect(nil, []Point{{0, 0}, {4, 8}})
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 2 || edges[0] != edges[1] {
		t.Errorf("two vertices: got %+v", edges)
	}
}

func TestCollectAppends(t *testing.T) {
	a := []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	b := []Point{{1, 1}, {3, 1}, {3, 3}, {1, 3}}

	var edges []Edge
	var err error
	for _, c := range [][]Point{a, b} {
		edges, err = EdgeBuilder{}.Collect(edges, c)
		if err != nil {
			t.Fatal(err)
		}
	}
	if len(edges) != 4 {
		t.Errorf("got %d edges, want 4", len(edges))
	}
}

func TestCollectShift(t *testing.T) {
	type testCase struct {
		name  string
		b     EdgeBuilder
		pts   []Point
		want  []Edge
		err   error
		first bool // compare only the first edge
	}
	cases := []testCase{
		{
			name: "quarter_pixels",
			b:    EdgeBuilder{Shift: 2},
			// (1.25, 0.25) - (3.5, 8.5) - (1.25, 8.5)
			pts: []Point{{5, 1}, {14, 34}, {5, 34}},
			want: []Edge{
				// closing edge (1.25, 8.5) -> (1.25, 0.25): y rounds to 9 and 0
				{Y0: 0, Y1: 9, X: 5 << 14, DX: 0},
				{Y0: 0, Y1: 9, X: 5 << 14, DX: (14 - 5) << 14 / 9},
			},
		},
		{
			name: "round_half_up",
			b:    EdgeBuilder{Shift: 1},
			// y = 0.5 rounds to 1, y = 2.0 stays 2
			pts:   []Point{{0, 1}, {2, 4}, {0, 4}},
			want:  []Edge{{Y0: 1, Y1: 2, X: 0, DX: 0}},
			first: true,
		},
		{
			name:  "offset",
			b:     EdgeBuilder{Offset: Point{X: 10, Y: 20}},
			pts:   []Point{{0, 0}, {0, 5}, {5, 5}},
			want:  []Edge{{Y0: 20, Y1: 25, X: 10 * XYOne, DX: XYOne}},
			first: true,
		},
		{
			name: "negative_shift",
			b:    EdgeBuilder{Shift: -1},
			pts:  []Point{{0, 0}, {0, 5}, {5, 5}},
			err:  ErrShift,
		},
		{
			name: "shift_too_large",
			b:    EdgeBuilder{Shift: XYShift + 1},
			pts:  []Point{{0, 0}, {0, 5}, {5, 5}},
			err:  ErrShift,
		},
		{
			name: "out_of_range",
			b:    EdgeBuilder{},
			pts:  []Point{{0, 0}, {0, MaxCoord + 1}, {5, 5}},
			err:  ErrRange,
		},
		{
			name: "offset_out_of_range",
			b:    EdgeBuilder{Offset: Point{X: MaxCoord + 1}},
			pts:  []Point{{0, 0}, {0, 5}, {5, 5}},
			err:  ErrRange,
		},
		{
			// the sums wrap around to small values
			name: "overflow",
			b:    EdgeBuilder{Offset: Point{X: math.MaxInt64, Y: math.MaxInt64}},
			pts:  []Point{{math.MaxInt64, math.MaxInt64}, {0, 5}, {5, 5}},
			err:  ErrRange,
		},
		{
			// every vertex must be in range by itself
			name: "offset_cancels",
			b:    EdgeBuilder{Offset: Point{X: -MaxCoord, Y: -MaxCoord}},
			pts:  []Point{{MaxCoord, MaxCoord}, {MaxCoord, MaxCoord + 5}, {MaxCoord + 5, MaxCoord + 5}},
			err:  ErrRange,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			edges, err := tc.b.Collect(nil, tc.pts)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("got error %v, want %v", err, tc.err)
				}
				if len(edges) != 0 {
					t.Errorf("got %d edges after error", len(edges))
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if tc.first {
				edges = edges[:1]
			}
			if d := cmp.Diff(tc.want, edges); d != "" {
				t.Errorf("edges mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestPointFrom26_6(t *testing.T) {
	p := fixed.Point26_6{X: fixed.I(3) + 32, Y: fixed.I(-2)}
	got := PointFrom26_6(p)
	want := Point{X: 3*64 + 32, Y: -2 * 64}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// (3.5, -2) and friends, filled with a 6-bit shift
	pts := []Point{got, PointFrom26_6(fixed.P(8, 4)), PointFrom26_6(fixed.P(1, 4))}
	edges, err := EdgeBuilder{Shift: 6}.Collect(nil, pts)
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(edges))
	}
	for _, e := range edges {
		if e.Y0 != -2 || e.Y1 != 4 {
			t.Errorf("edge %+v: want scanlines [-2, 4)", e)
		}
	}
}
