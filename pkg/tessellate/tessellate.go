// Package tessellate evaluates boolean shape trees into triangle
// meshes using a geometry kernel. Leaves become extruded polygons,
// interior nodes kernel booleans; arcs are flattened before extrusion.
package tessellate

import (
	"errors"
	"fmt"

	"github.com/chazu/ifcforge/pkg/csg"
	"github.com/chazu/ifcforge/pkg/geom"
	"github.com/chazu/ifcforge/pkg/kernel"
)

// ErrEmptyShape reports evaluation of a nil shape tree.
var ErrEmptyShape = errors.New("empty shape")

// Evaluate lowers a shape tree to a kernel solid, post-order: operands
// are built before their combination, matching the order the IFC
// writer emits boolean results in.
func Evaluate(s *csg.Shape, k kernel.Kernel) (kernel.Solid, error) {
	if s == nil {
		return nil, ErrEmptyShape
	}
	if s.IsLeaf() {
		return evaluateLeaf(s.Spec, k)
	}
	left, err := Evaluate(s.Left, k)
	if err != nil {
		return nil, err
	}
	right, err := Evaluate(s.Right, k)
	if err != nil {
		return nil, err
	}
	switch s.Op {
	case csg.OpUnion:
		return k.Union(left, right), nil
	case csg.OpDifference:
		return k.Difference(left, right), nil
	}
	return nil, fmt.Errorf("unknown boolean op %v", s.Op)
}

// evaluateLeaf extrudes one profile. The kernel sweeps from z=0
// upward; a downward extrusion direction shifts the solid below its
// placement plane instead. Other directions are not used by the
// generators and are rejected.
func evaluateLeaf(spec *csg.ExtrusionSpec, k kernel.Kernel) (kernel.Solid, error) {
	outer := flatten(spec.Outer)
	voids := make([][][2]float64, len(spec.Voids))
	for i, v := range spec.Voids {
		voids[i] = flatten(v)
	}

	solid, err := k.ExtrudePolygon(outer, voids, spec.Depth)
	if err != nil {
		return nil, err
	}

	z := spec.Position.Z
	switch {
	case spec.Direction.Z > 0:
		// Already swept upward.
	case spec.Direction.Z < 0:
		z -= spec.Depth
	default:
		return nil, fmt.Errorf("unsupported extrusion direction %+v", spec.Direction)
	}
	if spec.Position.X != 0 || spec.Position.Y != 0 || z != 0 {
		solid = k.Translate(solid, spec.Position.X, spec.Position.Y, z)
	}
	return solid, nil
}

func flatten(c geom.PlanarCurve) [][2]float64 {
	pts := c.Flatten(geom.DefaultArcFacets)
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}

// ShapeMesh evaluates a shape tree and meshes the result, tagging the
// mesh with a part name and finish color.
func ShapeMesh(s *csg.Shape, k kernel.Kernel, name, color string) (*kernel.Mesh, error) {
	solid, err := Evaluate(s, k)
	if err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", name, err)
	}
	mesh, err := k.ToMesh(solid)
	if err != nil {
		return nil, fmt.Errorf("mesh %s: %w", name, err)
	}
	mesh.PartName = name
	mesh.Color = color
	return mesh, nil
}

// GridMeshes evaluates a shape once and meshes one translated copy per
// grid cell, in row-major order. Cell meshes share the part name with
// a row/column suffix.
func GridMeshes(s *csg.Shape, g geom.Grid, k kernel.Kernel, name, color string) ([]*kernel.Mesh, error) {
	solid, err := Evaluate(s, k)
	if err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", name, err)
	}

	meshes := make([]*kernel.Mesh, 0, g.Rows*g.Columns)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Columns; c++ {
			off := g.CellOffset(r, c)
			placed := solid
			if !off.IsZero() {
				placed = k.Translate(solid, off.X, off.Y, off.Z)
			}
			mesh, err := k.ToMesh(placed)
			if err != nil {
				return nil, fmt.Errorf("mesh %s cell %d,%d: %w", name, r, c, err)
			}
			mesh.PartName = fmt.Sprintf("%s %d,%d", name, r, c)
			mesh.Color = color
			meshes = append(meshes, mesh)
		}
	}
	return meshes, nil
}
