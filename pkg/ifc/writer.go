package ifc

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Write serializes the file as an ISO-10303-21 STEP physical file with
// an IFC4 schema header. name goes into FILE_NAME; instance ids follow
// pool order.
func Write(w io.Writer, f *File, name string) error {
	var b strings.Builder
	b.WriteString("ISO-10303-21;\nHEADER;\n")
	fmt.Fprintf(&b, "FILE_DESCRIPTION(('ViewDefinition [DesignTransferView]'),'2;1');\n")
	fmt.Fprintf(&b, "FILE_NAME(%s,%s,(''),(''),'ifcforge','ifcforge','');\n",
		fmtStr(name), fmtStr(time.Now().Format("2006-01-02T15:04:05")))
	b.WriteString("FILE_SCHEMA(('IFC4'));\nENDSEC;\nDATA;\n")
	for i, e := range f.entities {
		body, err := encode(e)
		if err != nil {
			return fmt.Errorf("instance #%d: %w", i+1, err)
		}
		fmt.Fprintf(&b, "#%d=%s;\n", i+1, body)
	}
	b.WriteString("ENDSEC;\nEND-ISO-10303-21;\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func encode(e Entity) (string, error) {
	switch v := e.(type) {
	case *CartesianPoint:
		return "IFCCARTESIANPOINT(" + fmtReals(v.Coords) + ")", nil
	case *Direction:
		return "IFCDIRECTION(" + fmtReals(v.Ratios) + ")", nil
	case *Axis2Placement2D:
		return "IFCAXIS2PLACEMENT2D(" + fmtRef(v.Location) + "," + fmtRef(v.RefDirection) + ")", nil
	case *Axis2Placement3D:
		return "IFCAXIS2PLACEMENT3D(" + fmtRef(v.Location) + "," + fmtRef(v.Axis) + "," + fmtRef(v.RefDirection) + ")", nil
	case *LocalPlacement:
		return "IFCLOCALPLACEMENT(" + fmtRef(v.PlacementRelTo) + "," + fmtRef(v.RelativePlacement) + ")", nil
	case *CartesianPointList2D:
		pts := make([]string, len(v.Points))
		for i, p := range v.Points {
			pts[i] = "(" + fmtReal(p[0]) + "," + fmtReal(p[1]) + ")"
		}
		return "IFCCARTESIANPOINTLIST2D((" + strings.Join(pts, ",") + "))", nil
	case *IndexedPolyCurve:
		segs := make([]string, len(v.Segments))
		for i, s := range v.Segments {
			idx := make([]string, len(s.Indices))
			for j, n := range s.Indices {
				idx[j] = strconv.Itoa(n)
			}
			kw := "IFCLINEINDEX"
			if s.Arc {
				kw = "IFCARCINDEX"
			}
			segs[i] = kw + "((" + strings.Join(idx, ",") + "))"
		}
		return "IFCINDEXEDPOLYCURVE(" + fmtRef(v.Points) + ",(" + strings.Join(segs, ",") + "),$)", nil
	case *Circle:
		return "IFCCIRCLE(" + fmtRef(v.Position) + "," + fmtReal(v.Radius) + ")", nil
	case *RectangleProfileDef:
		return "IFCRECTANGLEPROFILEDEF(.AREA.,$," + fmtRef(v.Position) + "," +
			fmtReal(v.XDim) + "," + fmtReal(v.YDim) + ")", nil
	case *ArbitraryClosedProfileDef:
		return "IFCARBITRARYCLOSEDPROFILEDEF(.AREA.,$," + fmtRef(v.OuterCurve) + ")", nil
	case *ArbitraryProfileDefWithVoids:
		return "IFCARBITRARYPROFILEDEFWITHVOIDS(.AREA.,$," + fmtRef(v.OuterCurve) + "," + fmtRefs(v.InnerCurves) + ")", nil
	case *ExtrudedAreaSolid:
		return "IFCEXTRUDEDAREASOLID(" + fmtRef(v.SweptArea) + "," + fmtRef(v.Position) + "," +
			fmtRef(v.ExtrudedDirection) + "," + fmtReal(v.Depth) + ")", nil
	case *BooleanResult:
		return "IFCBOOLEANRESULT(." + string(v.Operator) + ".," + fmtRef(v.FirstOperand) + "," + fmtRef(v.SecondOperand) + ")", nil
	case *ShapeRepresentation:
		return "IFCSHAPEREPRESENTATION(" + fmtRef(v.ContextOfItems) + "," + fmtStr(v.Identifier) + "," +
			fmtStr(v.Type) + "," + fmtRefs(v.Items) + ")", nil
	case *ProductDefinitionShape:
		return "IFCPRODUCTDEFINITIONSHAPE($,$," + fmtRefs(v.Representations) + ")", nil
	case *Project:
		return "IFCPROJECT(" + fmtStr(v.GlobalID) + ",$," + fmtStr(v.Name) + ",$,$,$,$," +
			fmtRefs(v.RepresentationContexts) + "," + fmtRef(v.UnitsInContext) + ")", nil
	case *SIUnit:
		return "IFCSIUNIT(*,." + v.UnitType + ".,$,." + v.Name + ".)", nil
	case *UnitAssignment:
		return "IFCUNITASSIGNMENT(" + fmtRefs(v.Units) + ")", nil
	case *GeometricRepresentationContext:
		return "IFCGEOMETRICREPRESENTATIONCONTEXT($," + fmtStr(v.ContextType) + "," +
			strconv.Itoa(v.Dimensions) + "," + fmtReal(v.Precision) + "," +
			fmtRef(v.WorldCoordinateSystem) + ",$)", nil
	case *GeometricRepresentationSubContext:
		return "IFCGEOMETRICREPRESENTATIONSUBCONTEXT(" + fmtStr(v.Identifier) + "," + fmtStr(v.ContextType) +
			",*,*,*,*," + fmtRef(v.ParentContext) + ",$,." + v.TargetView + ".,$)", nil
	case *Site:
		return "IFCSITE(" + fmtStr(v.GlobalID) + ",$," + fmtStr(v.Name) + ",$,$," +
			fmtRef(v.ObjectPlacement) + ",$,$,.ELEMENT.,$,$,$,$,$)", nil
	case *Building:
		return "IFCBUILDING(" + fmtStr(v.GlobalID) + ",$," + fmtStr(v.Name) + ",$,$," +
			fmtRef(v.ObjectPlacement) + ",$,$,.ELEMENT.,$,$,$)", nil
	case *BuildingStorey:
		return "IFCBUILDINGSTOREY(" + fmtStr(v.GlobalID) + ",$," + fmtStr(v.Name) + ",$,$," +
			fmtRef(v.ObjectPlacement) + ",$,$,.ELEMENT.," + fmtReal(v.Elevation) + ")", nil
	case *BuildingElementProxy:
		return "IFCBUILDINGELEMENTPROXY(" + productAttrs(v.GlobalID, v.Name, v.ObjectType, v.ObjectPlacement, v.Representation) + ",$,$)", nil
	case *Plate:
		return "IFCPLATE(" + productAttrs(v.GlobalID, v.Name, v.ObjectType, v.ObjectPlacement, v.Representation) + ",$,$)", nil
	case *FurnishingElement:
		return "IFCFURNISHINGELEMENT(" + productAttrs(v.GlobalID, v.Name, v.ObjectType, v.ObjectPlacement, v.Representation) + ",$)", nil
	case *RelAggregates:
		return "IFCRELAGGREGATES(" + fmtStr(v.GlobalID) + ",$,$,$," + fmtRef(v.RelatingObject) + "," +
			fmtRefs(v.RelatedObjects) + ")", nil
	case *RelContainedInSpatialStructure:
		return "IFCRELCONTAINEDINSPATIALSTRUCTURE(" + fmtStr(v.GlobalID) + ",$,$,$," +
			fmtRefs(v.RelatedElements) + "," + fmtRef(v.RelatingStructure) + ")", nil
	case *ColourRGB:
		return "IFCCOLOURRGB($," + fmtReal(v.R) + "," + fmtReal(v.G) + "," + fmtReal(v.B) + ")", nil
	case *SurfaceStyleRendering:
		return "IFCSURFACESTYLERENDERING(" + fmtRef(v.Colour) + "," + fmtReal(v.Transparency) +
			",$,$,$,$,$,$,.NOTDEFINED.)", nil
	case *SurfaceStyle:
		return "IFCSURFACESTYLE(" + fmtStr(v.Name) + ",.BOTH.," + fmtRefs(v.Styles) + ")", nil
	case *StyledItem:
		return "IFCSTYLEDITEM(" + fmtRef(v.Item) + "," + fmtRefs(v.Styles) + ",$)", nil
	case *PropertySingleValue:
		return "IFCPROPERTYSINGLEVALUE(" + fmtStr(v.Name) + ",$," + fmtValue(v.Value) + ",$)", nil
	case *PropertySet:
		return "IFCPROPERTYSET(" + fmtStr(v.GlobalID) + ",$," + fmtStr(v.Name) + ",$," +
			fmtRefs(v.Properties) + ")", nil
	case *RelDefinesByProperties:
		return "IFCRELDEFINESBYPROPERTIES(" + fmtStr(v.GlobalID) + ",$,$,$," +
			fmtRefs(v.RelatedObjects) + "," + fmtRef(v.RelatingPset) + ")", nil
	case *Material:
		return "IFCMATERIAL(" + fmtStr(v.Name) + ",$,$)", nil
	case *RelAssociatesMaterial:
		return "IFCRELASSOCIATESMATERIAL(" + fmtStr(v.GlobalID) + ",$,$,$," +
			fmtRefs(v.RelatedObjects) + "," + fmtRef(v.RelatingMaterial) + ")", nil
	}
	return "", fmt.Errorf("unsupported entity type %T", e)
}

// productAttrs covers the shared GlobalId..Representation prefix of
// product entities.
func productAttrs(gid, name, objType string, placement, rep Ref) string {
	ot := "$"
	if objType != "" {
		ot = fmtStr(objType)
	}
	return fmtStr(gid) + ",$," + fmtStr(name) + ",$," + ot + "," + fmtRef(placement) + "," + fmtRef(rep)
}

// fmtValue wraps a property value in its IfcValue type keyword. A nil
// value serializes as absent.
func fmtValue(v Value) string {
	switch t := v.(type) {
	case Label:
		return "IFCLABEL(" + fmtStr(string(t)) + ")"
	case Integer:
		return "IFCINTEGER(" + strconv.Itoa(int(t)) + ")"
	case Real:
		return "IFCREAL(" + fmtReal(float64(t)) + ")"
	case Boolean:
		if t {
			return "IFCBOOLEAN(.T.)"
		}
		return "IFCBOOLEAN(.F.)"
	}
	return "$"
}

func fmtRef(r Ref) string {
	if r == Nil {
		return "$"
	}
	return "#" + strconv.Itoa(int(r))
}

func fmtRefs(refs []Ref) string {
	parts := make([]string, len(refs))
	for i, r := range refs {
		parts[i] = fmtRef(r)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// fmtReal formats a STEP real, which must contain a decimal point even
// when the value is integral or in exponent form.
func fmtReal(v float64) string {
	s := strconv.FormatFloat(v, 'G', -1, 64)
	if i := strings.IndexByte(s, 'E'); i >= 0 {
		if !strings.Contains(s[:i], ".") {
			s = s[:i] + "." + s[i:]
		}
		return s
	}
	if !strings.Contains(s, ".") {
		s += "."
	}
	return s
}

func fmtReals(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmtReal(v)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// fmtStr quotes a STEP string, doubling embedded apostrophes.
func fmtStr(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
