// Package scene assembles ifc.File instances from geometry. A Document
// bootstraps the fixed project/site/building/storey hierarchy and
// offers builders for curves, profiles, extrusions, boolean trees,
// products, styles and property sets; the generators in pkg/product
// drive nothing but this surface.
package scene

import (
	"github.com/chazu/ifcforge/pkg/geom"
	"github.com/chazu/ifcforge/pkg/ifc"
)

// Document wraps an ifc.File together with the references every
// builder needs: the geometric contexts and the spatial chain.
type Document struct {
	File *ifc.File

	Project  ifc.Ref
	Site     ifc.Ref
	Building ifc.Ref
	Storey   ifc.Ref

	ModelContext ifc.Ref
	BodyContext  ifc.Ref

	StoreyPlacement ifc.Ref

	origin3 ifc.Ref
	wcs     ifc.Ref

	contained []ifc.Ref
}

// New bootstraps a document: units, contexts, and the spatial chain
// project -> site -> building -> storey, aggregated in that order.
func New(projectName string) *Document {
	f := ifc.NewFile()
	d := &Document{File: f}

	d.origin3 = f.Add(&ifc.CartesianPoint{Coords: []float64{0, 0, 0}})
	d.wcs = f.Add(&ifc.Axis2Placement3D{Location: d.origin3})

	d.ModelContext = f.Add(&ifc.GeometricRepresentationContext{
		ContextType:           "Model",
		Dimensions:            3,
		Precision:             1e-5,
		WorldCoordinateSystem: d.wcs,
	})
	d.BodyContext = f.Add(&ifc.GeometricRepresentationSubContext{
		Identifier:    "Body",
		ContextType:   "Model",
		ParentContext: d.ModelContext,
		TargetView:    "MODEL_VIEW",
	})

	metre := f.Add(&ifc.SIUnit{UnitType: "LENGTHUNIT", Name: "METRE"})
	units := f.Add(&ifc.UnitAssignment{Units: []ifc.Ref{metre}})

	d.Project = f.Add(&ifc.Project{
		GlobalID:               ifc.NewGlobalID(),
		Name:                   projectName,
		RepresentationContexts: []ifc.Ref{d.ModelContext},
		UnitsInContext:         units,
	})

	sitePlacement := f.Add(&ifc.LocalPlacement{RelativePlacement: d.wcs})
	d.Site = f.Add(&ifc.Site{
		GlobalID:        ifc.NewGlobalID(),
		Name:            "Site",
		ObjectPlacement: sitePlacement,
	})
	buildingPlacement := f.Add(&ifc.LocalPlacement{PlacementRelTo: sitePlacement, RelativePlacement: d.wcs})
	d.Building = f.Add(&ifc.Building{
		GlobalID:        ifc.NewGlobalID(),
		Name:            "Building",
		ObjectPlacement: buildingPlacement,
	})
	d.StoreyPlacement = f.Add(&ifc.LocalPlacement{PlacementRelTo: buildingPlacement, RelativePlacement: d.wcs})
	d.Storey = f.Add(&ifc.BuildingStorey{
		GlobalID:        ifc.NewGlobalID(),
		Name:            "Storey",
		ObjectPlacement: d.StoreyPlacement,
	})

	f.Add(&ifc.RelAggregates{GlobalID: ifc.NewGlobalID(), RelatingObject: d.Project, RelatedObjects: []ifc.Ref{d.Site}})
	f.Add(&ifc.RelAggregates{GlobalID: ifc.NewGlobalID(), RelatingObject: d.Site, RelatedObjects: []ifc.Ref{d.Building}})
	f.Add(&ifc.RelAggregates{GlobalID: ifc.NewGlobalID(), RelatingObject: d.Building, RelatedObjects: []ifc.Ref{d.Storey}})

	return d
}

// point3 interns nothing but the world origin; other points are added
// as needed.
func (d *Document) point3(v geom.Vec3) ifc.Ref {
	if v.IsZero() {
		return d.origin3
	}
	return d.File.Add(&ifc.CartesianPoint{Coords: []float64{v.X, v.Y, v.Z}})
}

func (d *Document) direction3(v geom.Vec3) ifc.Ref {
	return d.File.Add(&ifc.Direction{Ratios: []float64{v.X, v.Y, v.Z}})
}

// placement3 builds an Axis2Placement3D at pos. Zero axis and refDir
// leave the derived defaults in place; a fully zero placement reuses
// the world coordinate system.
func (d *Document) placement3(pos, axis, refDir geom.Vec3) ifc.Ref {
	if pos.IsZero() && axis.IsZero() && refDir.IsZero() {
		return d.wcs
	}
	p := &ifc.Axis2Placement3D{Location: d.point3(pos)}
	if !axis.IsZero() {
		p.Axis = d.direction3(axis)
	}
	if !refDir.IsZero() {
		p.RefDirection = d.direction3(refDir)
	}
	return d.File.Add(p)
}

// PlacementAt returns a LocalPlacement below the storey at pos.
func (d *Document) PlacementAt(pos geom.Vec3) ifc.Ref {
	return d.PlacementUnder(d.StoreyPlacement, pos, geom.Vec3{}, geom.Vec3{})
}

// PlacementUnder returns a LocalPlacement relative to parent at pos
// with explicit axis (local Z) and reference direction (local X); zero
// vectors leave the derived defaults.
func (d *Document) PlacementUnder(parent ifc.Ref, pos, axis, refDir geom.Vec3) ifc.Ref {
	return d.File.Add(&ifc.LocalPlacement{
		PlacementRelTo:    parent,
		RelativePlacement: d.placement3(pos, axis, refDir),
	})
}

// Aggregate nests children under parent.
func (d *Document) Aggregate(parent ifc.Ref, children ...ifc.Ref) ifc.Ref {
	return d.File.Add(&ifc.RelAggregates{
		GlobalID:       ifc.NewGlobalID(),
		RelatingObject: parent,
		RelatedObjects: children,
	})
}

// Contain records a product for storey containment. Finish emits the
// relationship.
func (d *Document) Contain(products ...ifc.Ref) {
	d.contained = append(d.contained, products...)
}

// Finish emits the storey containment relationship for everything
// passed to Contain. Calling it with no contained products is a no-op.
func (d *Document) Finish() {
	if len(d.contained) == 0 {
		return
	}
	d.File.Add(&ifc.RelContainedInSpatialStructure{
		GlobalID:          ifc.NewGlobalID(),
		RelatedElements:   d.contained,
		RelatingStructure: d.Storey,
	})
	d.contained = nil
}
