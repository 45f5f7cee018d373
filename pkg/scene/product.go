package scene

import (
	"github.com/chazu/ifcforge/pkg/ifc"
)

// AddProxy emits a building element proxy. Callers decide whether the
// product is contained in the storey or aggregated under another
// product; shape may be Nil for grouping elements.
func (d *Document) AddProxy(name, objectType string, placement, shape ifc.Ref) ifc.Ref {
	return d.File.Add(&ifc.BuildingElementProxy{
		GlobalID:        ifc.NewGlobalID(),
		Name:            name,
		ObjectType:      objectType,
		ObjectPlacement: placement,
		Representation:  shape,
	})
}

// AddPlate emits a plate product.
func (d *Document) AddPlate(name, objectType string, placement, shape ifc.Ref) ifc.Ref {
	return d.File.Add(&ifc.Plate{
		GlobalID:        ifc.NewGlobalID(),
		Name:            name,
		ObjectType:      objectType,
		ObjectPlacement: placement,
		Representation:  shape,
	})
}

// AddFurnishing emits a furnishing element product.
func (d *Document) AddFurnishing(name, objectType string, placement, shape ifc.Ref) ifc.Ref {
	return d.File.Add(&ifc.FurnishingElement{
		GlobalID:        ifc.NewGlobalID(),
		Name:            name,
		ObjectType:      objectType,
		ObjectPlacement: placement,
		Representation:  shape,
	})
}
