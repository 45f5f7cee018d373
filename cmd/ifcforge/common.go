package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chazu/ifcforge/pkg/catalog"
	"github.com/chazu/ifcforge/pkg/export/gltf"
	"github.com/chazu/ifcforge/pkg/export/stl"
	"github.com/chazu/ifcforge/pkg/ifc"
	"github.com/chazu/ifcforge/pkg/kernel"
	"github.com/chazu/ifcforge/pkg/kernel/sdfx"
)

// loadCatalog returns the catalog named by --catalog (or the config
// file), falling back to the built-in one.
func loadCatalog() (catalog.Catalog, error) {
	path := catalogPath
	if path == "" {
		path = viper.GetString("catalog")
	}
	if path == "" {
		return catalog.Default(), nil
	}
	slog.Debug("loading catalog", "path", path)
	return catalog.Load(path)
}

// resolveColor prefers an explicit --color flag, then the config file,
// then the flag's default.
func resolveColor(cmd *cobra.Command, current string) string {
	if cmd.Flags().Changed("color") {
		return current
	}
	if v := viper.GetString("color"); v != "" {
		return v
	}
	return current
}

// writeIFC serializes a finished document to path.
func writeIFC(path string, f *ifc.File) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ifc.Write(out, f, filepath.Base(path)); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	slog.Info("wrote IFC", "path", path)
	return nil
}

// writePreviews tessellates at most once and writes whichever preview
// formats were requested.
func writePreviews(glbPath, stlPath string, build func(kernel.Kernel) ([]*kernel.Mesh, error)) error {
	if glbPath == "" && stlPath == "" {
		return nil
	}
	meshes, err := build(sdfx.New())
	if err != nil {
		return err
	}
	if glbPath != "" {
		if err := gltf.WriteFile(glbPath, meshes); err != nil {
			return err
		}
		slog.Info("wrote GLB", "path", glbPath, "meshes", len(meshes))
	}
	if stlPath != "" {
		if err := stl.WriteFile(stlPath, meshes); err != nil {
			return err
		}
		slog.Info("wrote STL", "path", stlPath, "meshes", len(meshes))
	}
	return nil
}
