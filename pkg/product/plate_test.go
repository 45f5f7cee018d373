package product

import (
	"errors"
	"strings"
	"testing"

	"github.com/chazu/ifcforge/pkg/catalog"
	"github.com/chazu/ifcforge/pkg/ifc"
)

func TestGeneratePlate(t *testing.T) {
	f, err := GeneratePlate(DefaultPlate(), catalog.Default())
	if err != nil {
		t.Fatal(err)
	}

	plates := collect[*ifc.Plate](f)
	if len(plates) != 1 || plates[0].Name != "Metallblech_mit_Loechern" {
		t.Fatalf("plates = %+v", plates)
	}

	profiles := collect[*ifc.ArbitraryProfileDefWithVoids](f)
	if len(profiles) != 1 || len(profiles[0].InnerCurves) != 3 {
		t.Fatalf("expected one profile with three holes, got %+v", profiles)
	}

	solids := collect[*ifc.ExtrudedAreaSolid](f)
	if len(solids) != 1 || solids[0].Depth != 0.002 {
		t.Fatalf("solids = %+v", solids)
	}

	// Outline carries the four corner arcs.
	curves := collect[*ifc.IndexedPolyCurve](f)
	var arcs int
	for _, c := range curves {
		for _, s := range c.Segments {
			if s.Arc {
				arcs++
			}
		}
	}
	if arcs != 4 {
		t.Errorf("got %d arc segments, want 4", arcs)
	}

	mats := collect[*ifc.Material](f)
	if len(mats) != 1 || mats[0].Name != "Aluminium" {
		t.Errorf("materials = %+v", mats)
	}
	if len(collect[*ifc.RelAssociatesMaterial](f)) != 1 {
		t.Error("material not associated")
	}
	styles := collect[*ifc.SurfaceStyle](f)
	if len(styles) != 1 || styles[0].Name != "Aluminium" {
		t.Errorf("styles = %+v", styles)
	}
}

func TestGeneratePlatePropertyTypes(t *testing.T) {
	f, err := GeneratePlate(DefaultPlate(), catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := ifc.Write(&b, f, "plate.ifc"); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "IFCPROPERTYSINGLEVALUE('ProductionYear',$,IFCINTEGER(2025),$)") {
		t.Error("production year not emitted as an integer value")
	}
	if strings.Contains(out, "IFCLABEL('2025')") {
		t.Error("production year emitted as a label")
	}
}

func TestGeneratePlateInvalid(t *testing.T) {
	if _, err := GeneratePlate(PlateParams{Thickness: 0}, catalog.Default()); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("error = %v, want ErrInvalidParams", err)
	}
}
