// Command export writes test case definitions to JSON, for use by
// external reference renderers.
// Run from the scanfill module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/scanfill/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string        `json:"name"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Shift    int           `json:"shift"`
	CTM      []float64     `json:"ctm"`
	Contours [][][]float64 `json:"contours"`
	FillRule string        `json:"fill_rule"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	ctm := tc.Matrix()
	return jsonTestCase{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		Shift:    tc.Shift,
		CTM:      ctm[:],
		Contours: contoursToJSON(tc.Path),
		FillRule: "evenodd",
	}
}

// contoursToJSON lists the vertices of every subpath. Closing the
// contours is implied.
func contoursToJSON(p *path.Data) [][][]float64 {
	var contours [][][]float64
	var cur [][]float64
	flush := func() {
		if len(cur) > 0 {
			contours = append(contours, cur)
		}
		cur = nil
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			pt := p.Coords[coordIdx]
			cur = append(cur, []float64{pt.X, pt.Y})
			coordIdx++
		case path.CmdLineTo:
			pt := p.Coords[coordIdx]
			cur = append(cur, []float64{pt.X, pt.Y})
			coordIdx++
		case path.CmdQuadTo:
			coordIdx += 2
		case path.CmdCubeTo:
			coordIdx += 3
		case path.CmdClose:
			flush()
		}
	}
	flush()
	return contours
}
