package main

import (
	"github.com/spf13/cobra"

	"github.com/chazu/ifcforge/pkg/kernel"
	"github.com/chazu/ifcforge/pkg/product"
	"github.com/chazu/ifcforge/pkg/tessellate"
)

var (
	tableOut    string
	tableGLB    string
	tableSTL    string
	tableParams = product.DefaultTable()
)

// tableCmd generates a four-legged table.
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Generate a four-legged table",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		f, err := product.GenerateTable(tableParams)
		if err != nil {
			return err
		}
		if err := writeIFC(tableOut, f); err != nil {
			return err
		}
		return writePreviews(tableGLB, tableSTL, func(k kernel.Kernel) ([]*kernel.Mesh, error) {
			tree, err := product.AssembleTable(tableParams)
			if err != nil {
				return nil, err
			}
			mesh, err := tessellate.ShapeMesh(tree, k, "Table", "")
			if err != nil {
				return nil, err
			}
			return []*kernel.Mesh{mesh}, nil
		})
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.Flags().StringVarP(&tableOut, "out", "o", "table.ifc", "IFC output path")
	tableCmd.Flags().StringVar(&tableGLB, "glb", "", "also write a GLB preview")
	tableCmd.Flags().StringVar(&tableSTL, "stl", "", "also write an STL preview")
	tableCmd.Flags().Float64Var(&tableParams.Width, "width", tableParams.Width, "tabletop width in metres")
	tableCmd.Flags().Float64Var(&tableParams.Depth, "depth", tableParams.Depth, "tabletop depth in metres")
	tableCmd.Flags().Float64Var(&tableParams.Height, "height", tableParams.Height, "table height in metres")
	tableCmd.Flags().Float64Var(&tableParams.LegSize, "leg", tableParams.LegSize, "leg cross-section in metres")
	tableCmd.Flags().Float64Var(&tableParams.Thickness, "thickness", tableParams.Thickness, "tabletop thickness in metres")
}
