package main

import (
	"github.com/spf13/cobra"

	"github.com/chazu/ifcforge/pkg/kernel"
	"github.com/chazu/ifcforge/pkg/product"
	"github.com/chazu/ifcforge/pkg/tessellate"
)

var (
	mailboxOut    string
	mailboxGLB    string
	mailboxSTL    string
	mailboxParams = product.DefaultMailbox()
)

// mailboxCmd generates a single mailbox.
var mailboxCmd = &cobra.Command{
	Use:   "mailbox",
	Short: "Generate a single mailbox",
	Long: `Generate a single mailbox: a body box with a front door plate and an
optional letter slot. Setting any slot dimension to zero disables the
slot cutout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		p := mailboxParams
		p.Color = resolveColor(cmd, p.Color)

		f, err := product.GenerateMailbox(p, cat)
		if err != nil {
			return err
		}
		if err := writeIFC(mailboxOut, f); err != nil {
			return err
		}
		return writePreviews(mailboxGLB, mailboxSTL, func(k kernel.Kernel) ([]*kernel.Mesh, error) {
			tree, err := product.AssembleMailbox(p)
			if err != nil {
				return nil, err
			}
			mesh, err := tessellate.ShapeMesh(tree, k, "Briefkasten", p.Color)
			if err != nil {
				return nil, err
			}
			return []*kernel.Mesh{mesh}, nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mailboxCmd)

	mailboxCmd.Flags().StringVarP(&mailboxOut, "out", "o", "mailbox.ifc", "IFC output path")
	mailboxCmd.Flags().StringVar(&mailboxGLB, "glb", "", "also write a GLB preview")
	mailboxCmd.Flags().StringVar(&mailboxSTL, "stl", "", "also write an STL preview")
	mailboxCmd.Flags().Float64Var(&mailboxParams.Width, "width", mailboxParams.Width, "body width in metres")
	mailboxCmd.Flags().Float64Var(&mailboxParams.Depth, "depth", mailboxParams.Depth, "body depth in metres")
	mailboxCmd.Flags().Float64Var(&mailboxParams.Height, "height", mailboxParams.Height, "body height in metres")
	mailboxCmd.Flags().Float64Var(&mailboxParams.DoorThickness, "door", mailboxParams.DoorThickness, "door plate thickness in metres")
	mailboxCmd.Flags().Float64Var(&mailboxParams.SlotWidth, "slot-width", mailboxParams.SlotWidth, "slot width in metres (0 disables)")
	mailboxCmd.Flags().Float64Var(&mailboxParams.SlotHeight, "slot-height", mailboxParams.SlotHeight, "slot height in metres (0 disables)")
	mailboxCmd.Flags().Float64Var(&mailboxParams.SlotDepth, "slot-depth", mailboxParams.SlotDepth, "slot depth in metres (0 disables)")
	mailboxCmd.Flags().StringVar(&mailboxParams.Color, "color", "", "finish color as #RRGGBB hex")
}
