package scene

import (
	"fmt"

	"github.com/chazu/ifcforge/pkg/ifc"
)

// AddSurfaceStyle emits a named surface style from normalized RGB
// components.
func (d *Document) AddSurfaceStyle(name string, r, g, b, transparency float64) ifc.Ref {
	colour := d.File.Add(&ifc.ColourRGB{R: r, G: g, B: b})
	rendering := d.File.Add(&ifc.SurfaceStyleRendering{Colour: colour, Transparency: transparency})
	return d.File.Add(&ifc.SurfaceStyle{Name: name, Styles: []ifc.Ref{rendering}})
}

// AssignStyle binds a surface style to a representation item.
func (d *Document) AssignStyle(item, style ifc.Ref) ifc.Ref {
	return d.File.Add(&ifc.StyledItem{Item: item, Styles: []ifc.Ref{style}})
}

// Property is one name/value pair of a property set. Order is
// preserved in the emitted file.
type Property struct {
	Name  string
	Value any
}

// propertyValue maps a Go value onto its IFC value type: bool, int and
// float64 keep their types, everything else becomes a label.
func propertyValue(v any) ifc.Value {
	switch t := v.(type) {
	case ifc.Value:
		return t
	case bool:
		return ifc.Boolean(t)
	case int:
		return ifc.Integer(t)
	case float64:
		return ifc.Real(t)
	case string:
		return ifc.Label(t)
	}
	return ifc.Label(fmt.Sprint(v))
}

// AddPropertySet emits a named property set and its single values.
func (d *Document) AddPropertySet(name string, props []Property) ifc.Ref {
	refs := make([]ifc.Ref, len(props))
	for i, p := range props {
		refs[i] = d.File.Add(&ifc.PropertySingleValue{Name: p.Name, Value: propertyValue(p.Value)})
	}
	return d.File.Add(&ifc.PropertySet{
		GlobalID:   ifc.NewGlobalID(),
		Name:       name,
		Properties: refs,
	})
}

// BindProperties attaches a property set to products.
func (d *Document) BindProperties(pset ifc.Ref, products ...ifc.Ref) ifc.Ref {
	return d.File.Add(&ifc.RelDefinesByProperties{
		GlobalID:       ifc.NewGlobalID(),
		RelatedObjects: products,
		RelatingPset:   pset,
	})
}

// AddMaterial emits a named material.
func (d *Document) AddMaterial(name string) ifc.Ref {
	return d.File.Add(&ifc.Material{Name: name})
}

// AssignMaterial attaches a material to products.
func (d *Document) AssignMaterial(material ifc.Ref, products ...ifc.Ref) ifc.Ref {
	return d.File.Add(&ifc.RelAssociatesMaterial{
		GlobalID:         ifc.NewGlobalID(),
		RelatedObjects:   products,
		RelatingMaterial: material,
	})
}
