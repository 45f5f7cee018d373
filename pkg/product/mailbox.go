package product

import (
	"errors"
	"fmt"
	"math"

	"github.com/chazu/ifcforge/pkg/catalog"
	"github.com/chazu/ifcforge/pkg/csg"
	"github.com/chazu/ifcforge/pkg/geom"
	"github.com/chazu/ifcforge/pkg/ifc"
	"github.com/chazu/ifcforge/pkg/scene"
)

// ErrInvalidParams reports generator parameters that fail validation.
// Generators fail fast: nothing is emitted on error.
var ErrInvalidParams = errors.New("invalid parameters")

// psetManufacturer is the property set every product is stamped with.
const psetManufacturer = "Pset_ManufacturerTypeInformation"

// MailboxParams sizes a single mailbox. Slot dimensions may be zero,
// which disables the slot cutout entirely.
type MailboxParams struct {
	Width         float64
	Depth         float64
	Height        float64
	DoorThickness float64
	SlotWidth     float64
	SlotHeight    float64
	SlotDepth     float64
	Color         string
}

// DefaultMailbox returns the stock single mailbox.
func DefaultMailbox() MailboxParams {
	return MailboxParams{
		Width:         0.40,
		Depth:         0.25,
		Height:        0.50,
		DoorThickness: 0.005,
		SlotWidth:     0.30,
		SlotHeight:    0.03,
		SlotDepth:     0.02,
	}
}

// Validate checks that the body dimensions are strictly positive and
// the slot dimensions non-negative, all finite.
func (p MailboxParams) Validate() error {
	for _, d := range []struct {
		name string
		v    float64
	}{
		{"width", p.Width}, {"depth", p.Depth}, {"height", p.Height},
		{"door thickness", p.DoorThickness},
	} {
		if !(d.v > 0) || math.IsInf(d.v, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidParams, d.name, d.v)
		}
	}
	for _, d := range []struct {
		name string
		v    float64
	}{
		{"slot width", p.SlotWidth}, {"slot height", p.SlotHeight}, {"slot depth", p.SlotDepth},
	} {
		if d.v < 0 || math.IsInf(d.v, 0) || math.IsNaN(d.v) {
			return fmt.Errorf("%w: %s must be non-negative, got %v", ErrInvalidParams, d.name, d.v)
		}
	}
	return nil
}

// boxShape is a centered-rectangle extrusion along +Z placed at pos.
func boxShape(width, depth, height float64, pos geom.Vec3) (*csg.Shape, error) {
	curve, err := geom.BuildCurve(geom.CenteredRect(width, depth), nil, true)
	if err != nil {
		return nil, err
	}
	spec, err := csg.Extrude(curve, nil, geom.Vec3{Z: 1}, height)
	if err != nil {
		return nil, err
	}
	return csg.Solid(spec.At(pos)), nil
}

// AssembleMailbox builds the mailbox boolean tree: the body box
// unioned with a thin door plate on the front face, minus an optional
// slot near the top. The slot is subtracted only when all three of its
// dimensions are positive; otherwise the union is returned unchanged.
func AssembleMailbox(p MailboxParams) (*csg.Shape, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	body, err := boxShape(p.Width, p.Depth, p.Height, geom.Vec3{})
	if err != nil {
		return nil, err
	}

	doorWidth := math.Min(p.Width*0.9, p.Width)
	doorHeight := p.Height * 0.6
	door, err := boxShape(doorWidth, p.DoorThickness, doorHeight, geom.Vec3{
		Y: p.Depth/2 + p.DoorThickness/2,
		Z: p.Height * 0.10,
	})
	if err != nil {
		return nil, err
	}

	tree := csg.Union(body, door)
	if p.SlotWidth > 0 && p.SlotHeight > 0 && p.SlotDepth > 0 {
		slot, err := boxShape(p.SlotWidth, p.SlotDepth, p.SlotHeight, geom.Vec3{
			Y: p.Depth/2 - p.SlotDepth/2 - 0.002,
			Z: p.Height * 0.70,
		})
		if err != nil {
			return nil, err
		}
		tree = csg.Difference(tree, slot)
	}
	return tree, nil
}

// GenerateMailbox emits a complete IFC file containing one mailbox
// under the standard spatial hierarchy.
func GenerateMailbox(p MailboxParams, cat catalog.Catalog) (*ifc.File, error) {
	tree, err := AssembleMailbox(p)
	if err != nil {
		return nil, err
	}

	d := scene.New("Mailbox Project")
	item, repType := d.EvaluateShape(tree)

	if p.Color != "" {
		r, g, b, err := catalog.ParseHex(p.Color)
		if err != nil {
			return nil, err
		}
		style := d.AddSurfaceStyle("Style_"+p.Color, r, g, b, 0)
		d.AssignStyle(item, style)
	}

	shape := d.AddBodyRepresentation(repType, item)
	proxy := d.AddProxy("Mailbox", "Briefkasten", d.PlacementAt(geom.Vec3{}), shape)
	d.Contain(proxy)

	pset := d.AddPropertySet(psetManufacturer, manufacturerProps(cat, p.Color))
	d.BindProperties(pset, proxy)

	d.Finish()
	return d.File, nil
}

// manufacturerProps builds the standard manufacturer properties, plus
// the finish color when one is set.
func manufacturerProps(cat catalog.Catalog, colorHex string) []scene.Property {
	m := cat.Manufacturer
	props := []scene.Property{
		{Name: "Manufacturer", Value: m.Name},
		{Name: "ArticleNumber", Value: m.ArticleNumber},
		{Name: "ModelLabel", Value: m.Model},
		{Name: "ProductionYear", Value: m.ProductionYear},
	}
	if colorHex != "" {
		props = append(props, scene.Property{Name: "Color", Value: cat.Name(colorHex)})
	}
	return props
}
