package main

import (
	"github.com/spf13/cobra"

	"github.com/chazu/ifcforge/pkg/export/dxf"
	"github.com/chazu/ifcforge/pkg/kernel"
	"github.com/chazu/ifcforge/pkg/product"
	"github.com/chazu/ifcforge/pkg/tessellate"
)

var (
	plateOut    string
	plateGLB    string
	plateSTL    string
	plateDXF    string
	plateParams = product.DefaultPlate()
)

// plateCmd generates the standalone perforated plate.
var plateCmd = &cobra.Command{
	Use:   "plate",
	Short: "Generate the perforated aluminium face plate",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		f, err := product.GeneratePlate(plateParams, cat)
		if err != nil {
			return err
		}
		if err := writeIFC(plateOut, f); err != nil {
			return err
		}

		if plateDXF != "" {
			outer, holes, err := product.PlateCurves()
			if err != nil {
				return err
			}
			if err := dxf.Write(plateDXF, []dxf.Profile{{Outer: outer, Holes: holes}}); err != nil {
				return err
			}
		}

		return writePreviews(plateGLB, plateSTL, func(k kernel.Kernel) ([]*kernel.Mesh, error) {
			tree, err := product.AssemblePlate(plateParams)
			if err != nil {
				return nil, err
			}
			mesh, err := tessellate.ShapeMesh(tree, k, "Metallblech_mit_Loechern", "")
			if err != nil {
				return nil, err
			}
			return []*kernel.Mesh{mesh}, nil
		})
	},
}

func init() {
	rootCmd.AddCommand(plateCmd)

	plateCmd.Flags().StringVarP(&plateOut, "out", "o", "plate.ifc", "IFC output path")
	plateCmd.Flags().StringVar(&plateGLB, "glb", "", "also write a GLB preview")
	plateCmd.Flags().StringVar(&plateSTL, "stl", "", "also write an STL preview")
	plateCmd.Flags().StringVar(&plateDXF, "dxf", "", "also write the DXF cutting profile")
	plateCmd.Flags().Float64Var(&plateParams.Thickness, "thickness", plateParams.Thickness, "sheet thickness in metres")
}
