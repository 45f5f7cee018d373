package product

import (
	"fmt"
	"math"

	"github.com/chazu/ifcforge/pkg/catalog"
	"github.com/chazu/ifcforge/pkg/csg"
	"github.com/chazu/ifcforge/pkg/geom"
	"github.com/chazu/ifcforge/pkg/ifc"
	"github.com/chazu/ifcforge/pkg/scene"
)

// BankParams sizes a mailbox bank: a grid of face plates with inserts
// behind a surrounding frame. Width and Height size one cell; Depth is
// the frame extrusion.
type BankParams struct {
	Width   float64
	Height  float64
	Depth   float64
	Rows    int
	Columns int
	Color   string
}

// DefaultBank returns a single-cell bank at the base plate size.
func DefaultBank() BankParams {
	return BankParams{
		Width:   BaseWidth,
		Height:  BaseHeight,
		Depth:   FrameDepthDefault,
		Rows:    1,
		Columns: 1,
		Color:   "#C72727",
	}
}

// Clamp limits the grid to the supported 5x3 maximum and at least one
// cell. Out-of-range counts are clamped rather than rejected.
func (p BankParams) Clamp() BankParams {
	p.Rows = min(max(p.Rows, 1), 5)
	p.Columns = min(max(p.Columns, 1), 3)
	return p
}

// Validate checks the cell and depth dimensions.
func (p BankParams) Validate() error {
	for _, d := range []struct {
		name string
		v    float64
	}{
		{"width", p.Width}, {"height", p.Height}, {"depth", p.Depth},
	} {
		if !(d.v > 0) || math.IsInf(d.v, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidParams, d.name, d.v)
		}
	}
	return nil
}

// GenerateBank emits a complete IFC file for a mailbox bank. The face
// plate and insert representations are created once and shared across
// all grid cells; only placements multiply with the cell count.
func GenerateBank(p BankParams, cat catalog.Catalog) (*ifc.File, error) {
	p = p.Clamp()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	r, g, b, err := catalog.ParseHex(p.Color)
	if err != nil {
		return nil, err
	}
	grid, err := geom.NewGrid(p.Rows, p.Columns, p.Width, p.Height, cellGap)
	if err != nil {
		return nil, err
	}

	d := scene.New("Mailbox Project")

	// Two grouping furnishings: one for the plates, one for the frame.
	mainLP := d.PlacementAt(geom.Vec3{})
	main := d.AddFurnishing("Bierkasten", "", mainLP, ifc.Nil)
	d.Contain(main)
	frameLP := d.PlacementAt(geom.Vec3{})
	frameFurn := d.AddFurnishing("Bierkasten_RahmenKopie", "", frameLP, ifc.Nil)
	d.Contain(frameFurn)

	style := d.AddSurfaceStyle("Style_"+p.Color, r, g, b, 0)

	products, err := emitFrame(d, p, grid, frameLP, frameFurn, style)
	if err != nil {
		return nil, err
	}

	plates, err := emitCellPlates(d, p, grid, mainLP, main, style)
	if err != nil {
		return nil, err
	}
	products = append(products, plates...)

	pset := d.AddPropertySet(psetManufacturer, manufacturerProps(cat, p.Color))
	d.BindProperties(pset, products...)

	d.Finish()
	return d.File, nil
}

// emitFrame builds the surrounding frame plate: a rectangle outset
// from the grid footprint with a slightly outset rectangular void, so
// the frame wraps the whole bank.
func emitFrame(d *scene.Document, p BankParams, grid geom.Grid, frameLP, frameFurn, style ifc.Ref) ([]ifc.Ref, error) {
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

	item := d.AddOrientedExtrusion(spec, geom.Vec3{Y: 1}, geom.Vec3{X: 1})
	d.AssignStyle(item, style)
	rep := d.AddBodyRep("SweptSolid", item)

	placement := d.PlacementUnder(frameLP, geom.Vec3{}, geom.Vec3{Z: -1}, geom.Vec3{X: -1})
	frame := d.AddPlate("Briefkastenrahmen", "", placement, d.AddProductShape(rep))
	d.Aggregate(frameFurn, frame)
	return []ifc.Ref{frame}, nil
}

// emitCellPlates builds the shared face plate and insert
// representations, then instances them across the grid.
func emitCellPlates(d *scene.Document, p BankParams, grid geom.Grid, mainLP, main, style ifc.Ref) ([]ifc.Ref, error) {
	face, err := baseProfile(p.Width/BaseWidth, p.Height/BaseHeight)
	if err != nil {
		return nil, err
	}
	// Holes keep the base size: the hardware that fills them does not
	// scale with the cell.
	holes, err := holeCurves(1, 1)
	if err != nil {
		return nil, err
	}
	faceSpec, err := csg.Extrude(face, holes, geom.Vec3{Z: -1}, plateThickness)
	if err != nil {
		return nil, err
	}
	faceItem := d.AddOrientedExtrusion(faceSpec, geom.Vec3{Y: 1}, geom.Vec3{X: 1})
	d.AssignStyle(faceItem, style)
	faceRep := d.AddBodyRep("SweptSolid", faceItem)

	insertReps := make([]ifc.Ref, len(baseHoles))
	for i, h := range baseHoles {
		curve, err := geom.BuildCurve(geom.InsetRect(h.Points, insertInset), nil, true)
		if err != nil {
			return nil, err
		}
		spec, err := csg.Extrude(curve, nil, geom.Vec3{Z: -1}, plateThickness)
		if err != nil {
			return nil, err
		}
		item := d.AddOrientedExtrusion(spec, geom.Vec3{Y: 1}, geom.Vec3{X: 1})
		// Only the flap insert is finished in the bank color.
		if h.Name == "Einwurfklappe" {
			d.AssignStyle(item, style)
		}
		insertReps[i] = d.AddBodyRep("SweptSolid", item)
	}

	var products []ifc.Ref
	for r := 0; r < grid.Rows; r++ {
		for c := 0; c < grid.Columns; c++ {
			cellLP := d.PlacementUnder(mainLP, grid.CellOffset(r, c), geom.Vec3{}, geom.Vec3{})

			deck := d.AddPlate("Deckblatt Briefkasten", "",
				d.PlacementUnder(cellLP, geom.Vec3{}, geom.Vec3{Z: -1}, geom.Vec3{X: -1}),
				d.AddProductShape(faceRep))
			d.Aggregate(main, deck)
			products = append(products, deck)

			for i, h := range baseHoles {
				insert := d.AddPlate(h.Name, "",
					d.PlacementUnder(cellLP, geom.Vec3{}, geom.Vec3{Z: -1}, geom.Vec3{X: -1}),
					d.AddProductShape(insertReps[i]))
				d.Aggregate(main, insert)
				products = append(products, insert)
			}
		}
	}
	return products, nil
}
