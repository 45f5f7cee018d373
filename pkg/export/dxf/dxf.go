// Package dxf exports 2D profile outlines as DXF drawings for laser
// and CNC cutting.
package dxf

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/entity"

	"github.com/chazu/ifcforge/pkg/geom"
)

// Profile is one closed outline plus its cutouts, in metres.
type Profile struct {
	Outer geom.PlanarCurve
	Holes []geom.PlanarCurve
	// Circles are drilled holes kept as true circles rather than
	// flattened polylines.
	Circles []geom.Circle
}

// layer names follow the cutting-shop convention: outer contours and
// inner cutouts land on separate layers.
const (
	outlineLayer = "OUTLINE"
	holeLayer    = "HOLES"
)

// Write saves profiles into a single DXF drawing. Arcs are flattened
// with the default facet count; circles stay circles.
func Write(path string, profiles []Profile) error {
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0

	if _, err := d.AddLayer(outlineLayer, color.White, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("add layer %s: %w", outlineLayer, err)
	}
	if _, err := d.AddLayer(holeLayer, color.Red, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("add layer %s: %w", holeLayer, err)
	}

	for i, p := range profiles {
		if err := d.ChangeLayer(outlineLayer); err != nil {
			return err
		}
		if err := addCurve(d, p.Outer); err != nil {
			return fmt.Errorf("profile %d outline: %w", i, err)
		}

		if len(p.Holes) == 0 && len(p.Circles) == 0 {
			continue
		}
		if err := d.ChangeLayer(holeLayer); err != nil {
			return err
		}
		for j, h := range p.Holes {
			if err := addCurve(d, h); err != nil {
				return fmt.Errorf("profile %d hole %d: %w", i, j, err)
			}
		}
		for _, c := range p.Circles {
			if _, err := d.Circle(c.Center.X, c.Center.Y, 0, c.Radius); err != nil {
				return err
			}
		}
	}

	return d.SaveAs(path)
}

// addCurve emits a closed lightweight polyline for a flattened curve.
func addCurve(d *drawing.Drawing, c geom.PlanarCurve) error {
	pts := c.Flatten(geom.DefaultArcFacets)
	if len(pts) < 3 {
		return fmt.Errorf("curve with %d points cannot close", len(pts))
	}
	lwp := entity.NewLwPolyline(len(pts))
	for i, p := range pts {
		lwp.Vertices[i] = []float64{p.X, p.Y}
	}
	lwp.Closed = true
	d.AddEntity(lwp)
	return nil
}
