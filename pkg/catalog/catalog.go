// Package catalog maps finish colors to their RAL trade names and
// carries the manufacturer data stamped into generated property sets.
// The built-in catalog matches the supplier's standard finishes; a
// YAML file can replace it.
package catalog

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Manufacturer identifies the product line written into the
// Herstellerinformationen property set.
type Manufacturer struct {
	Name           string `yaml:"name"`
	ArticleNumber  string `yaml:"article_number"`
	Model          string `yaml:"model"`
	ProductionYear int    `yaml:"production_year"`
}

// Catalog is a color lookup plus manufacturer data. Color keys are
// normalized #RRGGBB hex strings.
type Catalog struct {
	Colors       map[string]string `yaml:"colors"`
	Manufacturer Manufacturer      `yaml:"manufacturer"`
}

// Default returns the built-in finish catalog.
func Default() Catalog {
	return Catalog{
		Colors: map[string]string{
			"#C0C0C0": "Farblos eloxiert",
			"#000000": "RAL 9011 - Graphitschwarz",
			"#F7FBF5": "RAL 9016 - Verkehrsweiss",
			"#383E42": "RAL 7016 - Anthrazitgrau",
			"#7A7B7A": "RAL 7037 - Staubgrau",
			"#005387": "RAL 5005 - Signalblau",
			"#A72920": "RAL 3000 - Feuerrot",
			"#E2B007": "RAL 1004 - Goldgelb",
			"#4D6F39": "RAL 6010 - Grasgrün",
		},
		Manufacturer: Manufacturer{
			Name:           "Briefkasten Profi GmbH",
			ArticleNumber:  "BK-ALU-005",
			Model:          "Premium Alu Plate",
			ProductionYear: 2025,
		},
	}
}

// Load reads a catalog from a YAML file.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	norm := make(map[string]string, len(c.Colors))
	for k, v := range c.Colors {
		norm[normalizeHex(k)] = v
	}
	c.Colors = norm
	return c, nil
}

// Name returns the catalog name for a hex color. Unknown colors fall
// back to the normalized hex string so every finish stays labeled.
func (c Catalog) Name(hex string) string {
	key := normalizeHex(hex)
	if name, ok := c.Colors[key]; ok {
		return name
	}
	return key
}

func normalizeHex(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return strings.ToUpper(s[:1]) + strings.ToUpper(s[1:])
}

// ParseHex converts a #RRGGBB color to normalized RGB components.
func ParseHex(s string) (r, g, b float64, err error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r = float64(v>>16&0xFF) / 255
	g = float64(v>>8&0xFF) / 255
	b = float64(v&0xFF) / 255
	return r, g, b, nil
}
