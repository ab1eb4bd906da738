// Package fixture loads the opaque JSON anchor-array test fixtures
// described in SPEC_FULL.md §4.8. It has no dependency on solver or
// collider internals: it only knows how to turn `[[x,y],...]` arrays into
// icurve.Spline values for table-driven tests and the demo CLI.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/iShape-Rust/iCurve"
)

// anchorSet is one spline's worth of raw [x,y] pairs.
type anchorSet [][2]int64

// Document is the top-level fixture shape: one or more anchor sets.
type Document struct {
	Splines []anchorSet `json:"splines"`
}

// Load reads a fixture file and converts every anchor set into a Spline,
// choosing the variant by arity (2 => Line, 3 => Square, 4 => Cubic).
func Load(path string) ([]icurve.Spline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fixture: parse %s: %w", path, err)
	}

	splines := make([]icurve.Spline, 0, len(doc.Splines))
	for _, set := range doc.Splines {
		s, err := toSpline(set)
		if err != nil {
			return nil, fmt.Errorf("fixture: %s: %w", path, err)
		}
		splines = append(splines, s)
	}
	return splines, nil
}

func toSpline(set anchorSet) (icurve.Spline, error) {
	pts := make([]icurve.IntPoint, len(set))
	for i, xy := range set {
		pts[i] = icurve.IntPoint{X: xy[0], Y: xy[1]}
	}

	switch len(pts) {
	case 2:
		return icurve.NewLine(pts[0], pts[1]), nil
	case 3:
		return icurve.NewSquare(pts[0], pts[1], pts[2]), nil
	case 4:
		return icurve.NewCubic(pts[0], pts[1], pts[2], pts[3]), nil
	default:
		return icurve.Spline{}, fmt.Errorf("fixture: unsupported anchor count %d", len(pts))
	}
}
