package geom

import (
	"errors"
	"math"
	"testing"
)

func TestBuildCurveClosedSquare(t *testing.T) {
	// Unit square, no arcs: four line segments chained back to index 0.
	pts := []Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	c, err := BuildCurve(pts, nil, true)
	if err != nil {
		t.Fatalf("BuildCurve() error = %v", err)
	}
	want := []Segment{Line(0, 1), Line(1, 2), Line(2, 3), Line(3, 0)}
	if len(c.Segments) != len(want) {
		t.Fatalf("got %d segments, want %d", len(c.Segments), len(want))
	}
	for i, s := range c.Segments {
		if s != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, s, want[i])
		}
	}
	if !c.Closed {
		t.Error("curve should be closed")
	}
}

func TestBuildCurveOpenWithArc(t *testing.T) {
	// Open curve of 4 points with an arc starting at index 1: the arc
	// consumes points 1,2,3 and the walk terminates at the limit.
	pts := []Vec2{{0, 0}, {1, 0}, {2, 0}, {2, 1}}
	c, err := BuildCurve(pts, []int{1}, false)
	if err != nil {
		t.Fatalf("BuildCurve() error = %v", err)
	}
	want := []Segment{Line(0, 1), Arc(1, 2, 3)}
	if len(c.Segments) != len(want) {
		t.Fatalf("got %v, want %v", c.Segments, want)
	}
	for i, s := range c.Segments {
		if s != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, s, want[i])
		}
	}
}

func TestBuildCurveArcConsumption(t *testing.T) {
	// 12-point closed profile with four arcs, the base mailbox outline.
	pts := []Vec2{
		{0, 0.3110}, {0, 0.0005}, {0, 0}, {0.0005, 0},
		{0.4085, 0}, {0.4090, 0}, {0.4090, 0.0005}, {0.4090, 0.3110},
		{0.4090, 0.3115}, {0.4085, 0.3115}, {0.0005, 0.3115}, {0, 0.3115},
	}
	arcs := []int{1, 4, 7, 10}
	c, err := BuildCurve(pts, arcs, true)
	if err != nil {
		t.Fatalf("BuildCurve() error = %v", err)
	}

	// Expect alternating line/arc: 4 lines + 4 arcs.
	var lines, arcSegs int
	lineStarts := make(map[int]bool)
	for _, s := range c.Segments {
		switch s.Kind {
		case SegLine:
			lines++
			lineStarts[s.Start] = true
		case SegArc:
			arcSegs++
		}
	}
	if lines != 4 || arcSegs != 4 {
		t.Fatalf("got %d lines and %d arcs, want 4 and 4", lines, arcSegs)
	}
	for _, i := range arcs {
		found := false
		for _, s := range c.Segments {
			if s.Kind == SegArc && s.Start == i && s.Mid == (i+1)%12 && s.End == (i+2)%12 {
				found = true
			}
		}
		if !found {
			t.Errorf("no arc with indices %d,%d,%d", i, (i+1)%12, (i+2)%12)
		}
		if lineStarts[(i+1)%12] {
			t.Errorf("line segment starts at consumed point %d", (i+1)%12)
		}
	}
}

func TestBuildCurveRoundTrip(t *testing.T) {
	// Every pool index of a closed curve appears as an endpoint of
	// exactly one segment, and the walk reconnects to the start.
	tests := []struct {
		name      string
		points    []Vec2
		arcStarts []int
	}{
		{"no arcs", []Vec2{{0, 0}, {2, 0}, {2, 2}, {1, 3}, {0, 2}}, nil},
		{"one arc", []Vec2{{0, 0}, {2, 0}, {3, 1}, {2, 2}, {0, 2}}, []int{1}},
		{"two arcs", []Vec2{{0, 0}, {2, 0}, {3, 1}, {2, 2}, {1, 3}, {0, 2}}, []int{1, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := BuildCurve(tt.points, tt.arcStarts, true)
			if err != nil {
				t.Fatalf("BuildCurve() error = %v", err)
			}
			n := len(tt.points)
			startCount := make(map[int]int)
			endCount := make(map[int]int)
			for _, s := range c.Segments {
				startCount[s.Start]++
				endCount[s.End]++
			}
			consumed := make(map[int]bool)
			for _, i := range tt.arcStarts {
				consumed[(i+1)%n] = true
			}
			for i := 0; i < n; i++ {
				if consumed[i] {
					// Arc midpoints are interior to their segment.
					if startCount[i] != 0 || endCount[i] != 0 {
						t.Errorf("consumed point %d used as segment boundary", i)
					}
					continue
				}
				if startCount[i] != 1 {
					t.Errorf("point %d starts %d segments, want 1", i, startCount[i])
				}
				if endCount[i] != 1 {
					t.Errorf("point %d ends %d segments, want 1", i, endCount[i])
				}
			}
			// Chain continuity: each segment ends where the next begins.
			for i, s := range c.Segments {
				next := c.Segments[(i+1)%len(c.Segments)]
				if s.End != next.Start {
					t.Errorf("segment %d ends at %d but next starts at %d", i, s.End, next.Start)
				}
			}
		})
	}
}

func TestBuildCurveErrors(t *testing.T) {
	tests := []struct {
		name      string
		points    []Vec2
		arcStarts []int
		closed    bool
	}{
		{"too few closed", []Vec2{{0, 0}, {1, 0}}, nil, true},
		{"too few open", []Vec2{{0, 0}}, nil, false},
		{"arc start out of range", []Vec2{{0, 0}, {1, 0}, {1, 1}}, []int{3}, true},
		{"negative arc start", []Vec2{{0, 0}, {1, 0}, {1, 1}}, []int{-1}, true},
		{"overlapping arcs", []Vec2{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 2}}, []int{1, 2}, true},
		{"arc consumes next arc start", []Vec2{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 2}}, []int{1, 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildCurve(tt.points, tt.arcStarts, tt.closed)
			if !errors.Is(err, ErrInvalidProfile) {
				t.Errorf("BuildCurve() error = %v, want ErrInvalidProfile", err)
			}
		})
	}
}

func TestFlattenLineOnly(t *testing.T) {
	pts := []Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	c, err := BuildCurve(pts, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	flat := c.Flatten(8)
	if len(flat) != 4 {
		t.Fatalf("Flatten() returned %d points, want 4", len(flat))
	}
	for i, p := range flat {
		if p != pts[i] {
			t.Errorf("point %d = %v, want %v", i, p, pts[i])
		}
	}
}

func TestFlattenArcStaysOnCircle(t *testing.T) {
	// Quarter arc of the unit circle: (1,0) -> (√½,√½) -> (0,1).
	s := math.Sqrt(0.5)
	pts := []Vec2{{1, 0}, {s, s}, {0, 1}, {-1, 1}}
	c, err := BuildCurve(pts, []int{0}, false)
	if err != nil {
		t.Fatal(err)
	}
	flat := c.Flatten(16)
	// Line(2,3) follows the arc, so the flattened walk starts with 16
	// arc samples.
	for i := 0; i < 16; i++ {
		r := math.Hypot(flat[i].X, flat[i].Y)
		if math.Abs(r-1) > 1e-9 {
			t.Fatalf("arc sample %d has radius %g, want 1", i, r)
		}
	}
	last := flat[len(flat)-1]
	if last != (Vec2{-1, 1}) {
		t.Errorf("open curve endpoint = %v, want (-1,1)", last)
	}
}

func TestCircumcircleCollinear(t *testing.T) {
	if _, _, ok := circumcircle(Vec2{0, 0}, Vec2{1, 0}, Vec2{2, 0}); ok {
		t.Error("collinear points should have no circumcircle")
	}
}
