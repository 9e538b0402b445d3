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
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scanfill/testcases"
)

// TestAgainstReference fills every test case and compares the result
// with the even-odd rule, evaluated exactly at the rounded device
// space vertices.
func TestAgainstReference(t *testing.T) {
	f := NewFiller(0, 0)
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				w, h := tc.Width, tc.Height
				actual := renderExample(t, f, tc)

				contours := deviceContours(t, tc)
				expected := make([]byte, w*h)
				for y := range h {
					xs := crossings(contours, float64(y))
					for x := range w {
						i := y*w + x
						inside, ok := insideEvenOdd(xs, float64(x))
						switch {
						case !ok:
							expected[i] = actual[i]
						case inside:
							expected[i] = 255
						}
					}
				}

				if err := compareImages(name, expected, actual, w, h); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// renderExample fills a test case into a grayscale buffer, in row-major
// order. Inside pixels are set to 255.
func renderExample(t testing.TB, f *Filler, tc testcases.TestCase) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
	p := &Painter{Dst: img, Src: image.White}

	f.Reset(tc.Width, tc.Height)
	if err := f.FillPath(tc.Path, tc.Matrix(), tc.Shift, p.Span); err != nil {
		t.Fatal(err)
	}
	return img.Pix
}

// deviceContours returns the vertices of all subpaths of a test case in
// device space, after rounding them the way EdgeBuilder does: x to
// tc.Shift fractional bits, y to whole scanlines.
func deviceContours(t testing.TB, tc testcases.TestCase) [][]vec.Vec2 {
	t.Helper()
	ctm := tc.Matrix()
	scale := float64(int64(1) << tc.Shift)
	half := int64(1<<tc.Shift) >> 1

	var contours [][]vec.Vec2
	var cur []vec.Vec2
	coordIdx := 0
	for _, cmd := range tc.Path.Cmds {
		switch cmd {
		case path.CmdMoveTo, path.CmdLineTo:
			if cmd == path.CmdMoveTo && len(cur) > 0 {
				contours = append(contours, cur)
				cur = nil
			}
			p, err := toFixed(ctm, tc.Path.Coords[coordIdx], scale)
			if err != nil {
				t.Fatal(err)
			}
			cur = append(cur, vec.Vec2{
				X: float64(p.X) / scale,
				Y: float64((p.Y + half) >> tc.Shift),
			})
			coordIdx++
		case path.CmdClose:
			if len(cur) > 0 {
				contours = append(contours, cur)
				cur = nil
			}
		default:
			t.Fatalf("unexpected path command %v", cmd)
		}
	}
	if len(cur) > 0 {
		contours = append(contours, cur)
	}
	return contours
}

// compareImages reports the number of pixels where actual differs from
// expected. A diff image is written to the debug directory on failure.
func compareImages(name string, expected, actual []byte, w, h int) error {
	diffCount := 0
	for i := range w * h {
		if expected[i] != actual[i] {
			diffCount++
		}
	}
	if diffCount > 0 {
		_ = writeDiffImage(name, expected, actual, w, h)
		return fmt.Errorf("%d of %d pixels differ", diffCount, w*h)
	}
	return nil
}

func writeDiffImage(name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	// 3 panels: actual (left), diff (middle), expected (right)
	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := y*w + x

			a := actual[i]
			img.Set(x, y, color.RGBA{R: a, G: a, B: a, A: 255})

			// green: missing pixels, red: extra pixels
			var diffColor color.RGBA
			switch {
			case expected[i] > actual[i]:
				diffColor = color.RGBA{G: 255, A: 255}
			case expected[i] < actual[i]:
				diffColor = color.RGBA{R: 255, A: 255}
			default:
				diffColor = color.RGBA{A: 255}
			}
			img.Set(x+w, y, diffColor)

			e := expected[i]
			img.Set(x+w*2, y, color.RGBA{R: e, G: e, B: e, A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// TestAreaAgainstVector compares the number of filled pixels with the
// area computed by the anti-aliasing rasterizer from x/image/vector.
// Point sampling and area coverage differ along the outline, so the
// tolerance grows with the perimeter.
func TestAreaAgainstVector(t *testing.T) {
	f := NewFiller(0, 0)
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			contours := deviceContours(t, tc)
			// vector uses the non-zero winding rule
			if len(contours) != 1 {
				continue
			}
			pts := contours[0]
			w, h := tc.Width, tc.Height
			if !insideCanvas(pts, w, h) {
				continue
			}

			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				filled := 0
				for _, v := range renderExample(t, f, tc) {
					if v != 0 {
						filled++
					}
				}

				r := vector.NewRasterizer(w, h)
				r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
				for _, p := range pts[1:] {
					r.LineTo(float32(p.X), float32(p.Y))
				}
				r.ClosePath()
				dst := image.NewAlpha(image.Rect(0, 0, w, h))
				r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
				area := 0.0
				for _, a := range dst.Pix {
					area += float64(a) / 255
				}

				perimeter := 0.0
				for i, p := range pts {
					perimeter += p.Sub(pts[(i+1)%len(pts)]).Length()
				}
				tol := perimeter + 4
				if d := math.Abs(float64(filled) - area); d > tol {
					t.Errorf("%d pixels filled, area %.1f (tolerance %.1f)", filled, area, tol)
				}
			})
		}
	}
}

func insideCanvas(pts []vec.Vec2, w, h int) bool {
	for _, p := range pts {
		if p.X < 0 || p.X > float64(w) || p.Y < 0 || p.Y > float64(h) {
			return false
		}
	}
	return true
}

// BenchmarkFillAll measures steady-state performance by reusing a single
// Filler across all test cases.
func BenchmarkFillAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}

	f := NewFiller(0, 0)
	emit := func(y, x1, x2 int) {}

	for b.Loop() {
		for _, tc := range cases {
			f.Reset(tc.Width, tc.Height)
			if err := f.FillPath(tc.Path, tc.Matrix(), tc.Shift, emit); err != nil {
				b.Fatal(err)
			}
		}
	}
}
