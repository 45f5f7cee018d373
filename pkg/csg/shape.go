// Package csg models extruded solids and the boolean trees that combine
// them. A Shape is either a single extrusion or a binary union or
// difference of two shapes; generators build these trees and hand them
// to an evaluation backend.
package csg

import (
	"errors"
	"fmt"
	"math"

	"github.com/chazu/ifcforge/pkg/geom"
)

// ErrInvalidExtrusion reports an extrusion with a non-positive or
// non-finite depth.
var ErrInvalidExtrusion = errors.New("invalid extrusion")

// ExtrusionSpec is a planar profile swept along a direction. The outer
// curve bounds the profile; void curves punch holes in it. Position is
// where the solid is placed in the parent frame.
type ExtrusionSpec struct {
	Outer     geom.PlanarCurve
	Voids     []geom.PlanarCurve
	Direction geom.Vec3
	Depth     float64
	Position  geom.Vec3
}

// Extrude validates depth and direction and returns the spec. A zero
// direction falls back to +Z; any other direction is normalized.
func Extrude(outer geom.PlanarCurve, voids []geom.PlanarCurve, direction geom.Vec3, depth float64) (*ExtrusionSpec, error) {
	if depth <= 0 || math.IsInf(depth, 0) || math.IsNaN(depth) {
		return nil, fmt.Errorf("%w: depth %v", ErrInvalidExtrusion, depth)
	}
	if direction.IsZero() {
		direction = geom.Vec3{Z: 1}
	} else {
		direction = direction.Normalize()
	}
	return &ExtrusionSpec{
		Outer:     outer,
		Voids:     voids,
		Direction: direction,
		Depth:     depth,
	}, nil
}

// At returns a copy of the spec placed at pos.
func (s *ExtrusionSpec) At(pos geom.Vec3) *ExtrusionSpec {
	c := *s
	c.Position = pos
	return &c
}

// Op is a boolean combination of two shapes.
type Op int

const (
	OpUnion Op = iota
	OpDifference
)

func (o Op) String() string {
	switch o {
	case OpUnion:
		return "union"
	case OpDifference:
		return "difference"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Shape is a node in a boolean tree. Leaf nodes carry a Spec; interior
// nodes carry an Op and two children. Difference subtracts Right from
// Left, so operand order matters.
type Shape struct {
	Spec  *ExtrusionSpec
	Op    Op
	Left  *Shape
	Right *Shape
}

// Solid wraps an extrusion as a leaf shape.
func Solid(spec *ExtrusionSpec) *Shape {
	return &Shape{Spec: spec}
}

// Union combines two shapes.
func Union(left, right *Shape) *Shape {
	return &Shape{Op: OpUnion, Left: left, Right: right}
}

// Difference subtracts right from left.
func Difference(left, right *Shape) *Shape {
	return &Shape{Op: OpDifference, Left: left, Right: right}
}

// UnionAll folds shapes into a left-to-right union chain. It returns
// nil for an empty slice.
func UnionAll(shapes ...*Shape) *Shape {
	if len(shapes) == 0 {
		return nil
	}
	acc := shapes[0]
	for _, s := range shapes[1:] {
		acc = Union(acc, s)
	}
	return acc
}

// IsLeaf reports whether the node is a single extrusion.
func (s *Shape) IsLeaf() bool {
	return s.Spec != nil
}

// Walk visits the tree post-order: children first, then the node. It
// stops at the first error.
func (s *Shape) Walk(fn func(*Shape) error) error {
	if s == nil {
		return nil
	}
	if err := s.Left.Walk(fn); err != nil {
		return err
	}
	if err := s.Right.Walk(fn); err != nil {
		return err
	}
	return fn(s)
}

// Leaves returns the extrusion specs of the tree in evaluation order.
func (s *Shape) Leaves() []*ExtrusionSpec {
	var out []*ExtrusionSpec
	s.Walk(func(n *Shape) error {
		if n.IsLeaf() {
			out = append(out, n.Spec)
		}
		return nil
	})
	return out
}
