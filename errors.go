package icurve

import "errors"

// ErrUnimplementedArc is returned by any operation that would need to
// evaluate the reserved Arc spline variant.
var ErrUnimplementedArc = errors.New("icurve: arc spline evaluation is unimplemented")

// ErrCoordinateOutOfRange is returned when an input coordinate exceeds the
// ~2^40 bound the predicates are sized for.
var ErrCoordinateOutOfRange = errors.New("icurve: coordinate out of range")

// SolverSaturatedError reports that the pair-subdivision circuit breaker
// tripped (§4.5): the solver stopped bisecting early and the accompanying
// result is a best-effort, possibly over-approximate, set of overlays. It
// is non-fatal — callers may use errors.As to detect it and still consume
// the partial result that OverlaySplines returns alongside it.
type SolverSaturatedError struct {
	PairCount int
}

func (e *SolverSaturatedError) Error() string {
	return "icurve: solver saturated, circuit breaker tripped"
}

// CoordinateRangeBound is the maximum absolute coordinate value the core's
// i64 predicates are sized for; see §3.
const CoordinateRangeBound = int64(1) << 40

func checkCoordinateRange(points ...IntPoint) error {
	for _, p := range points {
		if p.X > CoordinateRangeBound || p.X < -CoordinateRangeBound ||
			p.Y > CoordinateRangeBound || p.Y < -CoordinateRangeBound {
			return ErrCoordinateOutOfRange
		}
	}
	return nil
}
