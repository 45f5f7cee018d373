// Package ifc holds a typed subset of the IFC4 schema and a STEP
// physical-file writer for it. Only the entities the generators emit
// are modeled; the set is closed over the Entity marker interface so
// the writer can exhaustively switch on it.
package ifc

// Ref is a 1-based handle into a File's entity pool. The zero Ref is
// the null reference and serializes as $.
type Ref int

// Nil is the absent reference.
const Nil Ref = 0

// Entity is the closed set of instances a File can hold. Only types in
// this package implement it.
type Entity interface {
	entity()
}

// CartesianPoint is a 2D or 3D point, depending on how many coordinates
// it carries.
type CartesianPoint struct {
	Coords []float64
}

// Direction is a 2D or 3D direction ratio vector.
type Direction struct {
	Ratios []float64
}

// Axis2Placement2D positions a profile in its XY plane.
type Axis2Placement2D struct {
	Location     Ref // CartesianPoint
	RefDirection Ref // Direction, optional
}

// Axis2Placement3D positions geometry in model space.
type Axis2Placement3D struct {
	Location     Ref // CartesianPoint
	Axis         Ref // Direction, optional
	RefDirection Ref // Direction, optional
}

// LocalPlacement chains a placement relative to another product's.
type LocalPlacement struct {
	PlacementRelTo    Ref // LocalPlacement, optional
	RelativePlacement Ref // Axis2Placement3D
}

// CartesianPointList2D is the coordinate pool of an indexed polycurve.
type CartesianPointList2D struct {
	Points [][2]float64
}

// PolySegment is one segment of an IndexedPolyCurve. Indices are
// 1-based into the curve's point list; arcs carry three, lines two.
type PolySegment struct {
	Arc     bool
	Indices []int
}

// IndexedPolyCurve is a closed or open curve over a point list.
type IndexedPolyCurve struct {
	Points   Ref // CartesianPointList2D
	Segments []PolySegment
}

// Circle is a full circle in the plane of its placement.
type Circle struct {
	Position Ref // Axis2Placement2D
	Radius   float64
}

// RectangleProfileDef is a parameterized rectangular profile centered
// on its placement.
type RectangleProfileDef struct {
	Position Ref // Axis2Placement2D, optional
	XDim     float64
	YDim     float64
}

// ArbitraryClosedProfileDef bounds a profile with a single outer curve.
type ArbitraryClosedProfileDef struct {
	OuterCurve Ref
}

// ArbitraryProfileDefWithVoids is an outer curve with hole curves.
type ArbitraryProfileDefWithVoids struct {
	OuterCurve  Ref
	InnerCurves []Ref
}

// ExtrudedAreaSolid sweeps a profile along a direction.
type ExtrudedAreaSolid struct {
	SweptArea         Ref // profile def
	Position          Ref // Axis2Placement3D, optional
	ExtrudedDirection Ref // Direction
	Depth             float64
}

// BooleanOperator selects the combination a BooleanResult performs.
type BooleanOperator string

const (
	OpUnion      BooleanOperator = "UNION"
	OpDifference BooleanOperator = "DIFFERENCE"
)

// BooleanResult combines two solids. Difference subtracts the second
// operand from the first.
type BooleanResult struct {
	Operator      BooleanOperator
	FirstOperand  Ref
	SecondOperand Ref
}

// ShapeRepresentation groups representation items under a geometric
// context. Identifier is typically "Body"; Type "SweptSolid" or "CSG".
type ShapeRepresentation struct {
	ContextOfItems Ref // GeometricRepresentationSubContext
	Identifier     string
	Type           string
	Items          []Ref
}

// ProductDefinitionShape attaches representations to a product.
type ProductDefinitionShape struct {
	Representations []Ref
}

// Project is the root of the spatial hierarchy.
type Project struct {
	GlobalID               string
	Name                   string
	RepresentationContexts []Ref
	UnitsInContext         Ref // UnitAssignment
}

// SIUnit is a named SI unit, e.g. LENGTHUNIT/METRE.
type SIUnit struct {
	UnitType string
	Name     string
}

// UnitAssignment collects the project's units.
type UnitAssignment struct {
	Units []Ref
}

// GeometricRepresentationContext is the 3D model context.
type GeometricRepresentationContext struct {
	ContextType           string
	Dimensions            int
	Precision             float64
	WorldCoordinateSystem Ref // Axis2Placement3D
}

// GeometricRepresentationSubContext refines a context for a target
// view, typically Body/Model with MODEL_VIEW.
type GeometricRepresentationSubContext struct {
	Identifier    string
	ContextType   string
	ParentContext Ref
	TargetView    string
}

// Site, Building and BuildingStorey form the fixed spatial chain under
// the project.
type Site struct {
	GlobalID        string
	Name            string
	ObjectPlacement Ref
}

type Building struct {
	GlobalID        string
	Name            string
	ObjectPlacement Ref
}

type BuildingStorey struct {
	GlobalID        string
	Name            string
	ObjectPlacement Ref
	Elevation       float64
}

// BuildingElementProxy is the generic product the generators emit for
// bodies that have no more specific class.
type BuildingElementProxy struct {
	GlobalID        string
	Name            string
	ObjectType      string
	ObjectPlacement Ref
	Representation  Ref // ProductDefinitionShape
}

// Plate is a planar, sheet-like product.
type Plate struct {
	GlobalID        string
	Name            string
	ObjectType      string
	ObjectPlacement Ref
	Representation  Ref
}

// FurnishingElement is a loose furnishing product such as a table.
type FurnishingElement struct {
	GlobalID        string
	Name            string
	ObjectType      string
	ObjectPlacement Ref
	Representation  Ref
}

// RelAggregates nests objects under a parent, e.g. project -> site.
type RelAggregates struct {
	GlobalID       string
	RelatingObject Ref
	RelatedObjects []Ref
}

// RelContainedInSpatialStructure places elements in a storey.
type RelContainedInSpatialStructure struct {
	GlobalID          string
	RelatedElements   []Ref
	RelatingStructure Ref
}

// ColourRGB is a normalized RGB triple.
type ColourRGB struct {
	R, G, B float64
}

// SurfaceStyleRendering shades a surface with a colour and
// transparency.
type SurfaceStyleRendering struct {
	Colour       Ref // ColourRGB
	Transparency float64
}

// SurfaceStyle names a set of rendering styles applied to both sides.
type SurfaceStyle struct {
	Name   string
	Styles []Ref
}

// StyledItem binds a style to a representation item.
type StyledItem struct {
	Item   Ref
	Styles []Ref
}

// Value is the typed payload of a property single value. The closed
// set covers the IfcValue selects the generators emit.
type Value interface{ value() }

// Label is an IfcLabel string value.
type Label string

// Integer is an IfcInteger value.
type Integer int

// Real is an IfcReal value.
type Real float64

// Boolean is an IfcBoolean value.
type Boolean bool

func (Label) value()   {}
func (Integer) value() {}
func (Real) value()    {}
func (Boolean) value() {}

// PropertySingleValue is a named typed value.
type PropertySingleValue struct {
	Name  string
	Value Value
}

// PropertySet groups properties under a name.
type PropertySet struct {
	GlobalID   string
	Name       string
	Properties []Ref
}

// RelDefinesByProperties attaches a property set to objects.
type RelDefinesByProperties struct {
	GlobalID       string
	RelatedObjects []Ref
	RelatingPset   Ref
}

// Material is a named material.
type Material struct {
	Name string
}

// RelAssociatesMaterial attaches a material to objects.
type RelAssociatesMaterial struct {
	GlobalID         string
	RelatedObjects   []Ref
	RelatingMaterial Ref
}

func (*CartesianPoint) entity()                    {}
func (*Direction) entity()                         {}
func (*Axis2Placement2D) entity()                  {}
func (*Axis2Placement3D) entity()                  {}
func (*LocalPlacement) entity()                    {}
func (*CartesianPointList2D) entity()              {}
func (*IndexedPolyCurve) entity()                  {}
func (*Circle) entity()                            {}
func (*RectangleProfileDef) entity()               {}
func (*ArbitraryClosedProfileDef) entity()         {}
func (*ArbitraryProfileDefWithVoids) entity()      {}
func (*ExtrudedAreaSolid) entity()                 {}
func (*BooleanResult) entity()                     {}
func (*ShapeRepresentation) entity()               {}
func (*ProductDefinitionShape) entity()            {}
func (*Project) entity()                           {}
func (*SIUnit) entity()                            {}
func (*UnitAssignment) entity()                    {}
func (*GeometricRepresentationContext) entity()    {}
func (*GeometricRepresentationSubContext) entity() {}
func (*Site) entity()                              {}
func (*Building) entity()                          {}
func (*BuildingStorey) entity()                    {}
func (*BuildingElementProxy) entity()              {}
func (*Plate) entity()                             {}
func (*FurnishingElement) entity()                 {}
func (*RelAggregates) entity()                     {}
func (*RelContainedInSpatialStructure) entity()    {}
func (*ColourRGB) entity()                         {}
func (*SurfaceStyleRendering) entity()             {}
func (*SurfaceStyle) entity()                      {}
func (*StyledItem) entity()                        {}
func (*PropertySingleValue) entity()               {}
func (*PropertySet) entity()                       {}
func (*RelDefinesByProperties) entity()            {}
func (*Material) entity()                          {}
func (*RelAssociatesMaterial) entity()             {}
