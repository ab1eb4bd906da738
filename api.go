package icurve

import "math"

// Overlay is one reported intersection between two splines: the crossing
// itself plus the reconstructed dyadic parameter on each parent curve.
type Overlay struct {
	Primary, Secondary SplitPosition
	Result             XOverlap
}

// OverlaySplines is the main entry point of §4.5: bisect both splines
// against each other, pruning via bounding box and hull tests, and cross
// the surviving leaf pairs. A non-nil *SolverSaturatedError is a non-fatal
// diagnostic: the returned overlays are still usable, just possibly
// over-approximate.
func OverlaySplines(a, b Spline, space Space) ([]Overlay, error) {
	primary, err := NewCollider(a, space)
	if err != nil {
		return nil, err
	}
	secondary, err := NewCollider(b, space)
	if err != nil {
		return nil, err
	}

	solver := NewSolverWithSpace(space)
	solveErr := solver.Intersect(primary, secondary)

	marks := solver.Marks()
	overlays := make([]Overlay, len(marks))
	for i, m := range marks {
		overlays[i] = Overlay{
			Primary:   m.PrimaryPosition,
			Secondary: m.SecondaryPosition,
			Result:    m.Overlap,
		}
	}

	var saturated *SolverSaturatedError
	if solveErr != nil {
		if asSaturated(solveErr, &saturated) {
			return overlays, saturated
		}
		return nil, solveErr
	}
	return overlays, nil
}

func asSaturated(err error, target **SolverSaturatedError) bool {
	if se, ok := err.(*SolverSaturatedError); ok {
		*target = se
		return true
	}
	return false
}

// ApproximatePoints is the polyline sampling entry point of §4.6.
func ApproximatePoints(s Spline, minCos uint16, minLen int64) ([]IntPoint, error) {
	shorts, err := approximateShorts(s, minCos, minLen)
	if err != nil {
		return nil, err
	}
	points := make([]IntPoint, 0, len(shorts)+1)
	for _, sh := range shorts {
		points = append(points, sh.A)
	}
	points = append(points, shorts[len(shorts)-1].B)
	return points, nil
}

// AvgLength sums chord lengths from the polyline approximation. Per §9's
// resolved open question, this sum is computed in float64 and must never
// feed back into the intersection pipeline.
func AvgLength(s Spline, minCos uint16, minLen int64) (float64, error) {
	shorts, err := approximateShorts(s, minCos, minLen)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, sh := range shorts {
		v := sh.B.Sub(sh.A)
		sum += math.Sqrt(float64(v.SqrLen()))
	}
	return sum, nil
}

// SplitSpline is the explicit split entry point of §6 (named SplitSpline,
// not Split, to avoid colliding with the Spline.Split method it wraps).
func SplitSpline(s Spline, pos SplitPosition) (Spline, Spline, error) {
	return s.Split(pos)
}
