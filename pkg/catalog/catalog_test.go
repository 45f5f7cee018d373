package catalog

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLookup(t *testing.T) {
	c := Default()
	tests := []struct {
		hex  string
		want string
	}{
		{"#383E42", "RAL 7016 - Anthrazitgrau"},
		{"#383e42", "RAL 7016 - Anthrazitgrau"},
		{"383E42", "RAL 7016 - Anthrazitgrau"},
		{"#C0C0C0", "Farblos eloxiert"},
		{"#123456", "#123456"},
	}
	for _, tt := range tests {
		if got := c.Name(tt.hex); got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", tt.hex, got, tt.want)
		}
	}
}

func TestDefaultManufacturer(t *testing.T) {
	m := Default().Manufacturer
	if m.Name != "Briefkasten Profi GmbH" || m.ProductionYear != 2025 {
		t.Errorf("unexpected manufacturer %+v", m)
	}
}

func TestParseHex(t *testing.T) {
	r, g, b, err := ParseHex("#A72920")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r-0xA7/255.0) > 1e-9 || math.Abs(g-0x29/255.0) > 1e-9 || math.Abs(b-0x20/255.0) > 1e-9 {
		t.Errorf("ParseHex = %g, %g, %g", r, g, b)
	}

	for _, bad := range []string{"", "#12345", "#GGGGGG", "not a color"} {
		if _, _, _, err := ParseHex(bad); err == nil {
			t.Errorf("ParseHex(%q) should fail", bad)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := []byte(`colors:
  "#ff0000": "Testrot"
manufacturer:
  name: "Acme"
  article_number: "A-1"
  model: "M"
  production_year: 2026
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Name("#FF0000"); got != "Testrot" {
		t.Errorf("Name = %q", got)
	}
	if c.Manufacturer.Name != "Acme" || c.Manufacturer.ProductionYear != 2026 {
		t.Errorf("manufacturer = %+v", c.Manufacturer)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of missing file should fail")
	}
}
