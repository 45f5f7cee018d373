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

// PlateParams sizes a standalone metal face plate.
type PlateParams struct {
	Thickness float64
}

// DefaultPlate returns the stock 2 mm sheet.
func DefaultPlate() PlateParams {
	return PlateParams{Thickness: plateThickness}
}

func (p PlateParams) Validate() error {
	if !(p.Thickness > 0) || math.IsInf(p.Thickness, 0) {
		return fmt.Errorf("%w: thickness must be positive, got %v", ErrInvalidParams, p.Thickness)
	}
	return nil
}

// GeneratePlate emits an IFC file with the base aluminium plate: the
// rounded 12-point outline with its three rectangular cutouts,
// extruded to the given thickness.
func GeneratePlate(p PlateParams, cat catalog.Catalog) (*ifc.File, error) {
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

	d := scene.New("Metal Plate Project")
	item := d.AddExtrusion(spec)

	style := d.AddSurfaceStyle("Aluminium", 0.80, 0.80, 0.85, 0)
	d.AssignStyle(item, style)

	shape := d.AddBodyRepresentation("SweptSolid", item)
	plate := d.AddPlate("Metallblech_mit_Loechern", "", d.PlacementAt(geom.Vec3{}), shape)
	d.Contain(plate)

	material := d.AddMaterial("Aluminium")
	d.AssignMaterial(material, plate)

	pset := d.AddPropertySet(psetManufacturer, manufacturerProps(cat, ""))
	d.BindProperties(pset, plate)

	d.Finish()
	return d.File, nil
}
