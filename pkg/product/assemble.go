package product

import (
	"github.com/chazu/ifcforge/pkg/csg"
	"github.com/chazu/ifcforge/pkg/geom"
)

// The Assemble functions build the boolean shape trees the generators
// describe in IFC, for direct tessellation into preview and export
// meshes.

// AssemblePlate returns the face plate outline minus its cutouts,
// extruded upward.
func AssemblePlate(p PlateParams) (*csg.Shape, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	outline, err := baseProfile(1, 1)
	if err != nil {
		return nil, err
	}
	holes, err := holeCurves(1, 1)
	if err != nil {
		return nil, err
	}
	spec, err := csg.Extrude(outline, holes, geom.Vec3{Z: 1}, p.Thickness)
	if err != nil {
		return nil, err
	}
	return csg.Solid(spec), nil
}

// BankGrid returns the cell grid for clamped bank parameters.
func BankGrid(p BankParams) (geom.Grid, error) {
	p = p.Clamp()
	if err := p.Validate(); err != nil {
		return geom.Grid{}, err
	}
	return geom.NewGrid(p.Rows, p.Columns, p.Width, p.Height, cellGap)
}

// AssembleBankFrame returns the frame plate wrapping the whole bank:
// the grid footprint outset by the outer offset, with the inner-offset
// footprint as a void, extruded backward to the frame depth.
func AssembleBankFrame(p BankParams) (*csg.Shape, error) {
	p = p.Clamp()
	grid, err := BankGrid(p)
	if err != nil {
		return nil, err
	}
	totalW, totalH := grid.Footprint()
	footprint := geom.Scale(baseOuterPoints, totalW/BaseWidth, totalH/BaseHeight)

	outer, err := geom.BuildCurve(geom.InsetRect(footprint, -frameOuterOffset), nil, true)
	if err != nil {
		return nil, err
	}
	inner, err := geom.BuildCurve(geom.InsetRect(footprint, -frameInnerOffset), nil, true)
	if err != nil {
		return nil, err
	}
	spec, err := csg.Extrude(outer, []geom.PlanarCurve{inner}, geom.Vec3{Z: -1}, p.Depth)
	if err != nil {
		return nil, err
	}
	return csg.Solid(spec), nil
}

// AssembleBankFace returns one cell's face plate: the base outline
// scaled to the cell size, minus the unscaled hardware cutouts.
func AssembleBankFace(p BankParams) (*csg.Shape, error) {
	p = p.Clamp()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	face, err := baseProfile(p.Width/BaseWidth, p.Height/BaseHeight)
	if err != nil {
		return nil, err
	}
	holes, err := holeCurves(1, 1)
	if err != nil {
		return nil, err
	}
	spec, err := csg.Extrude(face, holes, geom.Vec3{Z: -1}, plateThickness)
	if err != nil {
		return nil, err
	}
	return csg.Solid(spec), nil
}

// AssembleTable returns the tabletop unioned with four corner legs.
func AssembleTable(p TableParams) (*csg.Shape, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	legHeight := p.Height - p.Thickness

	top, err := boxShape(p.Width, p.Depth, p.Thickness, geom.Vec3{Z: legHeight})
	if err != nil {
		return nil, err
	}
	parts := []*csg.Shape{top}

	dx := p.Width/2 - p.LegSize/2
	dy := p.Depth/2 - p.LegSize/2
	for _, corner := range [][2]float64{{-dx, -dy}, {dx, -dy}, {-dx, dy}, {dx, dy}} {
		leg, err := boxShape(p.LegSize, p.LegSize, legHeight, geom.Vec3{X: corner[0], Y: corner[1]})
		if err != nil {
			return nil, err
		}
		parts = append(parts, leg)
	}
	return csg.UnionAll(parts...), nil
}
