package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidProfile reports a point sequence that cannot form a curve:
// too few points, an arc-start index out of range, or two arcs that
// would share a consumed point.
var ErrInvalidProfile = errors.New("invalid profile")

// SegmentKind distinguishes line from arc segments.
type SegmentKind int

const (
	SegLine SegmentKind = iota // straight segment between two pool points
	SegArc                     // circular arc through three pool points
)

func (k SegmentKind) String() string {
	switch k {
	case SegLine:
		return "line"
	case SegArc:
		return "arc"
	default:
		return "unknown"
	}
}

// Segment references points in a shared pool. Mid is meaningful only
// for arcs, where the segment runs Start -> Mid -> End along a circle.
type Segment struct {
	Kind  SegmentKind
	Start int
	Mid   int
	End   int
}

// Line returns a straight segment from start to end.
func Line(start, end int) Segment {
	return Segment{Kind: SegLine, Start: start, End: end}
}

// Arc returns a circular arc from start through mid to end.
func Arc(start, mid, end int) Segment {
	return Segment{Kind: SegArc, Start: start, Mid: mid, End: end}
}

// PlanarCurve is a point pool plus an ordered segment walk over it.
// It is the exchange form handed to the document layer as an outer or
// inner (void) curve.
type PlanarCurve struct {
	Points   []Vec2
	Segments []Segment
	Closed   bool
}

// Circle is an inner void profile given directly as a circle rather
// than a point walk.
type Circle struct {
	Center Vec2
	Radius float64
}

// BuildCurve converts an ordered point list plus a set of zero-based
// arc-start indices into a PlanarCurve. An arc starting at index i
// consumes points i, i+1 mod n and i+2 mod n (start, on-arc midpoint,
// end); the walk resumes at i+2. All other indices emit a line to the
// following point. For closed curves the walk covers all n points and
// the last segment reconnects to index 0; open curves stop at n-1.
func BuildCurve(points []Vec2, arcStarts []int, closed bool) (PlanarCurve, error) {
	n := len(points)
	min := 2
	if closed {
		min = 3
	}
	if n < min {
		return PlanarCurve{}, fmt.Errorf("%w: need at least %d points, got %d", ErrInvalidProfile, min, n)
	}

	starts := make(map[int]bool, len(arcStarts))
	for _, i := range arcStarts {
		if i < 0 || i >= n {
			return PlanarCurve{}, fmt.Errorf("%w: arc start %d out of range [0,%d)", ErrInvalidProfile, i, n)
		}
		starts[i] = true
	}
	if len(starts) > 0 && n < 3 {
		return PlanarCurve{}, fmt.Errorf("%w: arcs need at least 3 points", ErrInvalidProfile)
	}
	// An arc consumes its mid and end points; no other arc may start there.
	for i := range starts {
		if starts[(i+1)%n] || starts[(i+2)%n] {
			return PlanarCurve{}, fmt.Errorf("%w: arc at %d overlaps another arc", ErrInvalidProfile, i)
		}
	}

	limit := n
	if !closed {
		limit = n - 1
	}

	var segs []Segment
	for i := 0; i < limit; {
		if starts[i] {
			segs = append(segs, Arc(i, (i+1)%n, (i+2)%n))
			i += 2
		} else {
			segs = append(segs, Line(i, (i+1)%n))
			i++
		}
	}

	pool := make([]Vec2, n)
	copy(pool, points)
	return PlanarCurve{Points: pool, Segments: segs, Closed: closed}, nil
}

// DefaultArcFacets is the arc subdivision used when flattening curves
// for mesh preview.
const DefaultArcFacets = 16

// Flatten returns the curve as a plain polyline, sampling each arc
// into facets straight pieces. For closed curves the first point is
// not repeated at the end. Degenerate (collinear) arcs flatten to
// their chord.
func (c PlanarCurve) Flatten(facets int) []Vec2 {
	if facets < 2 {
		facets = 2
	}
	var out []Vec2
	for _, s := range c.Segments {
		switch s.Kind {
		case SegLine:
			out = append(out, c.Points[s.Start])
		case SegArc:
			out = append(out, sampleArc(c.Points[s.Start], c.Points[s.Mid], c.Points[s.End], facets)...)
		}
	}
	if !c.Closed && len(c.Segments) > 0 {
		out = append(out, c.Points[c.Segments[len(c.Segments)-1].End])
	}
	return out
}

// sampleArc returns facets points along the arc from a through m to b,
// including a but excluding b.
func sampleArc(a, m, b Vec2, facets int) []Vec2 {
	center, radius, ok := circumcircle(a, m, b)
	if !ok {
		return []Vec2{a}
	}

	a0 := math.Atan2(a.Y-center.Y, a.X-center.X)
	a1 := math.Atan2(m.Y-center.Y, m.X-center.X)
	a2 := math.Atan2(b.Y-center.Y, b.X-center.X)

	// Sweep counterclockwise from a0; flip if the midpoint is not on
	// that side.
	ccwMid := normAngle(a1 - a0)
	ccwEnd := normAngle(a2 - a0)
	sweep := ccwEnd
	if ccwMid > ccwEnd {
		sweep = ccwEnd - 2*math.Pi // clockwise
	}

	pts := make([]Vec2, 0, facets)
	for i := 0; i < facets; i++ {
		t := a0 + sweep*float64(i)/float64(facets)
		pts = append(pts, Vec2{center.X + radius*math.Cos(t), center.Y + radius*math.Sin(t)})
	}
	return pts
}

// normAngle maps an angle into [0, 2π).
func normAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// circumcircle returns the circle through three points, or ok=false if
// they are collinear.
func circumcircle(a, b, c Vec2) (center Vec2, radius float64, ok bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < 1e-12 {
		return Vec2{}, 0, false
	}
	aa := a.X*a.X + a.Y*a.Y
	bb := b.X*b.X + b.Y*b.Y
	cc := c.X*c.X + c.Y*c.Y
	center = Vec2{
		X: (aa*(b.Y-c.Y) + bb*(c.Y-a.Y) + cc*(a.Y-b.Y)) / d,
		Y: (aa*(c.X-b.X) + bb*(a.X-c.X) + cc*(b.X-a.X)) / d,
	}
	radius = math.Hypot(a.X-center.X, a.Y-center.Y)
	return center, radius, true
}
