package product

import (
	"fmt"
	"math"

	"github.com/chazu/ifcforge/pkg/geom"
	"github.com/chazu/ifcforge/pkg/ifc"
	"github.com/chazu/ifcforge/pkg/scene"
)

// TableParams sizes a four-legged table, in metres.
type TableParams struct {
	Width     float64
	Depth     float64
	Height    float64
	LegSize   float64
	Thickness float64
}

// DefaultTable returns a 1.2 m x 0.7 m table at standard height.
func DefaultTable() TableParams {
	return TableParams{
		Width:     1.2,
		Depth:     0.7,
		Height:    0.75,
		LegSize:   0.05,
		Thickness: 0.05,
	}
}

func (p TableParams) Validate() error {
	for _, d := range []struct {
		name string
		v    float64
	}{
		{"width", p.Width}, {"depth", p.Depth}, {"height", p.Height},
		{"leg size", p.LegSize}, {"thickness", p.Thickness},
	} {
		if !(d.v > 0) || math.IsInf(d.v, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidParams, d.name, d.v)
		}
	}
	if p.Thickness >= p.Height {
		return fmt.Errorf("%w: thickness %v leaves no leg height below %v", ErrInvalidParams, p.Thickness, p.Height)
	}
	if p.LegSize > p.Width || p.LegSize > p.Depth {
		return fmt.Errorf("%w: leg size %v exceeds the tabletop", ErrInvalidParams, p.LegSize)
	}
	return nil
}

// GenerateTable emits an IFC file with a tabletop and four corner
// legs, centered on the origin, built from parameterized rectangle
// profiles.
func GenerateTable(p TableParams) (*ifc.File, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	d := scene.New("Table Project")

	legHeight := p.Height - p.Thickness
	items := []ifc.Ref{
		d.AddRectExtrusion(p.Width, p.Depth, p.Thickness, geom.Vec3{Z: 1}, geom.Vec3{Z: legHeight}),
	}
	dx := p.Width/2 - p.LegSize/2
	dy := p.Depth/2 - p.LegSize/2
	for _, corner := range [][2]float64{{-dx, -dy}, {dx, -dy}, {-dx, dy}, {dx, dy}} {
		items = append(items, d.AddRectExtrusion(
			p.LegSize, p.LegSize, legHeight,
			geom.Vec3{Z: 1},
			geom.Vec3{X: corner[0], Y: corner[1]},
		))
	}

	shape := d.AddBodyRepresentation("SweptSolid", items...)
	table := d.AddFurnishing("Table", "", d.PlacementAt(geom.Vec3{}), shape)
	d.Contain(table)

	d.Finish()
	return d.File, nil
}
