// Package product holds the generators: mailbox, mailbox bank, metal
// plate and table. Each generator validates its parameters, assembles
// geometry through pkg/geom and pkg/csg, and emits a complete IFC file
// through a scene.Document.
package product

import (
	"github.com/chazu/ifcforge/pkg/geom"
)

// Base aluminium face plate, in metres. The outline is 12 points with
// four rounded corners; each arc starts at the listed index and spans
// the two following points.
var baseOuterPoints = []geom.Vec2{
	{X: 0, Y: 0.3110},
	{X: 0, Y: 0.0005},
	{X: 0, Y: 0},
	{X: 0.0005, Y: 0},
	{X: 0.4085, Y: 0},
	{X: 0.4090, Y: 0},
	{X: 0.4090, Y: 0.0005},
	{X: 0.4090, Y: 0.3110},
	{X: 0.4090, Y: 0.3115},
	{X: 0.4085, Y: 0.3115},
	{X: 0.0005, Y: 0.3115},
	{X: 0, Y: 0.3115},
}

var baseArcStarts = []int{1, 4, 7, 10}

// Overall size of the unscaled base profile.
const (
	BaseWidth  = 0.409
	BaseHeight = 0.3115
)

// Hole is a rectangular cutout of the face plate, with the insert name
// it receives when filled.
type Hole struct {
	Name   string
	Points []geom.Vec2
}

var baseHoles = []Hole{
	{
		Name: "Schild Keine Werbung",
		Points: []geom.Vec2{
			{X: 0.017, Y: 0.1809}, {X: 0.017, Y: 0.1957},
			{X: 0.0973, Y: 0.1957}, {X: 0.0973, Y: 0.1809},
		},
	},
	{
		Name: "Schild Beschriftung",
		Points: []geom.Vec2{
			{X: 0.017, Y: 0.2057}, {X: 0.017, Y: 0.231},
			{X: 0.0973, Y: 0.231}, {X: 0.0973, Y: 0.2057},
		},
	},
	{
		Name: "Einwurfklappe",
		Points: []geom.Vec2{
			{X: 0.017, Y: 0.261}, {X: 0.017, Y: 0.2915},
			{X: 0.373, Y: 0.2915}, {X: 0.373, Y: 0.261},
		},
	},
}

const (
	// Gap between cells of a bank, and standard sheet thickness.
	cellGap        = 0.003
	plateThickness = 0.002

	// Frame profile offsets relative to the grid footprint.
	frameOuterOffset = 0.018
	frameInnerOffset = 0.003

	// FrameDepthDefault is the default frame extrusion depth.
	FrameDepthDefault = 0.35

	// Inserts are shrunk by 1 mm per side so they sit inside their
	// hole.
	insertInset = 0.001
)

// baseProfile returns the base outline scaled to sx, sy.
func baseProfile(sx, sy float64) (geom.PlanarCurve, error) {
	return geom.BuildCurve(geom.Scale(baseOuterPoints, sx, sy), baseArcStarts, true)
}

// PlateCurves returns the unscaled face plate outline and its hole
// cutouts, for 2D export.
func PlateCurves() (outer geom.PlanarCurve, holes []geom.PlanarCurve, err error) {
	outer, err = baseProfile(1, 1)
	if err != nil {
		return geom.PlanarCurve{}, nil, err
	}
	holes, err = holeCurves(1, 1)
	if err != nil {
		return geom.PlanarCurve{}, nil, err
	}
	return outer, holes, nil
}

// holeCurves returns the base holes scaled to sx, sy as closed curves.
func holeCurves(sx, sy float64) ([]geom.PlanarCurve, error) {
	out := make([]geom.PlanarCurve, len(baseHoles))
	for i, h := range baseHoles {
		c, err := geom.BuildCurve(geom.Scale(h.Points, sx, sy), nil, true)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
