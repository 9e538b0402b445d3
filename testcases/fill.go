package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:   "right_triangle",
		Path:   polygon(nil, 0, 0, 5, 0, 0, 5),
		Width:  10,
		Height: 10,
	},
	{
		Name:   "triangle",
		Path:   polygon(nil, 10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "diamond",
		Path:   diamond(32, 32, 24),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "octagon",
		Path:   regularPolygon(32, 32, 28, 8),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "thin_sliver",
		Path:   polygon(nil, 4, 4, 60, 8, 4, 6),
		Width:  64,
		Height: 64,
	},
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return polygon(nil, x1, y1, x2, y1, x2, y2, x1, y2)
}

// diamond builds a square rotated by 45 degrees.
func diamond(cx, cy, r float64) *path.Data {
	return polygon(nil, cx, cy-r, cx+r, cy, cx, cy+r, cx-r, cy)
}

// regularPolygon builds a regular n-gon, with the vertices rounded to
// whole pixels.
func regularPolygon(cx, cy, r float64, n int) *path.Data {
	pts := make([]vec.Vec2, n)
	for i := range n {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		pts[i] = vec.Vec2{
			X: math.Round(cx + r*math.Cos(angle)),
			Y: math.Round(cy + r*math.Sin(angle)),
		}
	}

	p := (&path.Data{}).MoveTo(pts[0])
	for _, v := range pts[1:] {
		p = p.LineTo(v)
	}
	return p.Close()
}
