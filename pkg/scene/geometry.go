package scene

import (
	"github.com/chazu/ifcforge/pkg/csg"
	"github.com/chazu/ifcforge/pkg/geom"
	"github.com/chazu/ifcforge/pkg/ifc"
)

// AddCurve emits a planar curve as an indexed polycurve over a shared
// coordinate list. Segment indices are converted from the curve's
// zero-based pool indices to the 1-based indices STEP requires.
func (d *Document) AddCurve(c geom.PlanarCurve) ifc.Ref {
	pts := make([][2]float64, len(c.Points))
	for i, p := range c.Points {
		pts[i] = [2]float64{p.X, p.Y}
	}
	list := d.File.Add(&ifc.CartesianPointList2D{Points: pts})

	segs := make([]ifc.PolySegment, len(c.Segments))
	for i, s := range c.Segments {
		switch s.Kind {
		case geom.SegArc:
			segs[i] = ifc.PolySegment{Arc: true, Indices: []int{s.Start + 1, s.Mid + 1, s.End + 1}}
		default:
			segs[i] = ifc.PolySegment{Indices: []int{s.Start + 1, s.End + 1}}
		}
	}
	return d.File.Add(&ifc.IndexedPolyCurve{Points: list, Segments: segs})
}

// AddCircle emits a circle centered at c.Center.
func (d *Document) AddCircle(c geom.Circle) ifc.Ref {
	center := d.File.Add(&ifc.CartesianPoint{Coords: []float64{c.Center.X, c.Center.Y}})
	pos := d.File.Add(&ifc.Axis2Placement2D{Location: center})
	return d.File.Add(&ifc.Circle{Position: pos, Radius: c.Radius})
}

// AddProfile emits the outer curve and voids as a profile definition.
// Without voids this is an arbitrary closed profile; with voids the
// with-voids variant.
func (d *Document) AddProfile(outer geom.PlanarCurve, voids []geom.PlanarCurve) ifc.Ref {
	outerRef := d.AddCurve(outer)
	if len(voids) == 0 {
		return d.File.Add(&ifc.ArbitraryClosedProfileDef{OuterCurve: outerRef})
	}
	inner := make([]ifc.Ref, len(voids))
	for i, v := range voids {
		inner[i] = d.AddCurve(v)
	}
	return d.File.Add(&ifc.ArbitraryProfileDefWithVoids{OuterCurve: outerRef, InnerCurves: inner})
}

// AddExtrusion emits an extruded area solid for spec with default
// profile orientation.
func (d *Document) AddExtrusion(spec *csg.ExtrusionSpec) ifc.Ref {
	return d.AddOrientedExtrusion(spec, geom.Vec3{}, geom.Vec3{})
}

// AddOrientedExtrusion emits an extruded area solid whose position
// carries the given axis (local Z) and reference direction (local X).
func (d *Document) AddOrientedExtrusion(spec *csg.ExtrusionSpec, axis, refDir geom.Vec3) ifc.Ref {
	profile := d.AddProfile(spec.Outer, spec.Voids)
	pos := d.placement3(spec.Position, axis, refDir)
	dir := d.direction3(spec.Direction)
	return d.File.Add(&ifc.ExtrudedAreaSolid{
		SweptArea:         profile,
		Position:          pos,
		ExtrudedDirection: dir,
		Depth:             spec.Depth,
	})
}

// AddRectExtrusion emits an extruded rectangle profile, the
// parameterized alternative to an arbitrary closed profile. The
// rectangle is centered on its placement; pos places the solid.
func (d *Document) AddRectExtrusion(width, height, depth float64, direction, pos geom.Vec3) ifc.Ref {
	profile := d.File.Add(&ifc.RectangleProfileDef{XDim: width, YDim: height})
	placement := d.placement3(pos, geom.Vec3{}, geom.Vec3{})
	dir := d.direction3(direction)
	return d.File.Add(&ifc.ExtrudedAreaSolid{
		SweptArea:         profile,
		Position:          placement,
		ExtrudedDirection: dir,
		Depth:             depth,
	})
}

// EvaluateShape lowers a boolean tree to representation items: leaves
// become extruded area solids and interior nodes boolean results, in
// post-order so operand ids precede their combination. It returns the
// root item and the representation type it belongs in, SweptSolid for
// a bare extrusion and CSG otherwise.
func (d *Document) EvaluateShape(s *csg.Shape) (ifc.Ref, string) {
	return d.EvaluateShapeOriented(s, geom.Vec3{}, geom.Vec3{})
}

// EvaluateShapeOriented is EvaluateShape with every leaf oriented by
// axis and refDir.
func (d *Document) EvaluateShapeOriented(s *csg.Shape, axis, refDir geom.Vec3) (ifc.Ref, string) {
	root := d.lowerShape(s, axis, refDir)
	if s.IsLeaf() {
		return root, "SweptSolid"
	}
	return root, "CSG"
}

func (d *Document) lowerShape(s *csg.Shape, axis, refDir geom.Vec3) ifc.Ref {
	if s.IsLeaf() {
		return d.AddOrientedExtrusion(s.Spec, axis, refDir)
	}
	left := d.lowerShape(s.Left, axis, refDir)
	right := d.lowerShape(s.Right, axis, refDir)
	op := ifc.OpUnion
	if s.Op == csg.OpDifference {
		op = ifc.OpDifference
	}
	return d.File.Add(&ifc.BooleanResult{Operator: op, FirstOperand: left, SecondOperand: right})
}

// AddBodyRep wraps items in a Body shape representation. The same
// representation can back any number of product shapes, which is how
// grid instancing keeps file size flat.
func (d *Document) AddBodyRep(repType string, items ...ifc.Ref) ifc.Ref {
	return d.File.Add(&ifc.ShapeRepresentation{
		ContextOfItems: d.BodyContext,
		Identifier:     "Body",
		Type:           repType,
		Items:          items,
	})
}

// AddProductShape wraps shape representations in a product definition
// shape.
func (d *Document) AddProductShape(reps ...ifc.Ref) ifc.Ref {
	return d.File.Add(&ifc.ProductDefinitionShape{Representations: reps})
}

// AddBodyRepresentation is AddBodyRep plus AddProductShape for the
// common single-product case.
func (d *Document) AddBodyRepresentation(repType string, items ...ifc.Ref) ifc.Ref {
	return d.AddProductShape(d.AddBodyRep(repType, items...))
}
