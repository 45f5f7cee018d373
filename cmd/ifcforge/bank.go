package main

import (
	"github.com/spf13/cobra"

	"github.com/chazu/ifcforge/pkg/export/dxf"
	"github.com/chazu/ifcforge/pkg/kernel"
	"github.com/chazu/ifcforge/pkg/product"
	"github.com/chazu/ifcforge/pkg/tessellate"
)

var (
	bankOut    string
	bankGLB    string
	bankSTL    string
	bankDXF    string
	bankParams = product.DefaultBank()
)

// bankCmd generates a mailbox bank.
var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Generate a mailbox bank",
	Long: `Generate a mailbox bank: a grid of face plates with hardware inserts
behind a surrounding frame. The grid is clamped to at most 5 rows and
3 columns.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		p := bankParams.Clamp()
		p.Color = resolveColor(cmd, p.Color)

		f, err := product.GenerateBank(p, cat)
		if err != nil {
			return err
		}
		if err := writeIFC(bankOut, f); err != nil {
			return err
		}

		if bankDXF != "" {
			if err := writeBankDXF(bankDXF, p); err != nil {
				return err
			}
		}

		return writePreviews(bankGLB, bankSTL, func(k kernel.Kernel) ([]*kernel.Mesh, error) {
			return bankPreview(p, k)
		})
	},
}

// writeBankDXF exports the cell face plate profile for cutting.
func writeBankDXF(path string, p product.BankParams) error {
	face, err := product.AssembleBankFace(p)
	if err != nil {
		return err
	}
	return dxf.Write(path, []dxf.Profile{{
		Outer: face.Spec.Outer,
		Holes: face.Spec.Voids,
	}})
}

// bankPreview tessellates the frame and one face plate per cell.
func bankPreview(p product.BankParams, k kernel.Kernel) ([]*kernel.Mesh, error) {
	frameTree, err := product.AssembleBankFrame(p)
	if err != nil {
		return nil, err
	}
	faceTree, err := product.AssembleBankFace(p)
	if err != nil {
		return nil, err
	}
	grid, err := product.BankGrid(p)
	if err != nil {
		return nil, err
	}

	frame, err := tessellate.ShapeMesh(frameTree, k, "Briefkastenrahmen", p.Color)
	if err != nil {
		return nil, err
	}
	faces, err := tessellate.GridMeshes(faceTree, grid, k, "Deckblatt", "")
	if err != nil {
		return nil, err
	}
	return append([]*kernel.Mesh{frame}, faces...), nil
}

func init() {
	rootCmd.AddCommand(bankCmd)

	bankCmd.Flags().StringVarP(&bankOut, "out", "o", "bank.ifc", "IFC output path")
	bankCmd.Flags().StringVar(&bankGLB, "glb", "", "also write a GLB preview")
	bankCmd.Flags().StringVar(&bankSTL, "stl", "", "also write an STL preview")
	bankCmd.Flags().StringVar(&bankDXF, "dxf", "", "also write the face plate DXF profile")
	bankCmd.Flags().Float64Var(&bankParams.Width, "width", bankParams.Width, "cell width in metres")
	bankCmd.Flags().Float64Var(&bankParams.Height, "height", bankParams.Height, "cell height in metres")
	bankCmd.Flags().Float64Var(&bankParams.Depth, "frame-depth", bankParams.Depth, "frame depth in metres")
	bankCmd.Flags().IntVar(&bankParams.Rows, "rows", bankParams.Rows, "grid rows (max 5)")
	bankCmd.Flags().IntVar(&bankParams.Columns, "cols", bankParams.Columns, "grid columns (max 3)")
	bankCmd.Flags().StringVar(&bankParams.Color, "color", bankParams.Color, "finish color as #RRGGBB hex")
}
