// Package gltf exports triangle meshes as binary glTF (.glb) for web
// viewers.
package gltf

import (
	"fmt"
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/chazu/ifcforge/pkg/catalog"
	"github.com/chazu/ifcforge/pkg/kernel"
)

// defaultColor paints meshes that carry no finish color.
const defaultColor = "#C0C0C0"

// BuildDocument assembles a glTF document with one node per mesh.
// Meshes sharing a finish color share a material.
func BuildDocument(meshes []*kernel.Mesh) (*gltf.Document, error) {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "ifcforge"

	materials := map[string]int{}

	for i, m := range meshes {
		if m.IsEmpty() {
			continue
		}
		mat, err := materialFor(doc, materials, m.Color)
		if err != nil {
			return nil, fmt.Errorf("mesh %d (%s): %w", i, m.PartName, err)
		}

		positions := make([][3]float32, m.VertexCount())
		normals := make([][3]float32, m.VertexCount())
		for v := 0; v < m.VertexCount(); v++ {
			positions[v] = [3]float32{m.Vertices[v*3], m.Vertices[v*3+1], m.Vertices[v*3+2]}
			normals[v] = [3]float32{m.Normals[v*3], m.Normals[v*3+1], m.Normals[v*3+2]}
		}

		posAcc := modeler.WritePosition(doc, positions)
		normAcc := modeler.WriteNormal(doc, normals)
		idxAcc := modeler.WriteIndices(doc, m.Indices)

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: m.PartName,
			Primitives: []*gltf.Primitive{{
				Indices: gltf.Index(idxAcc),
				Attributes: map[string]int{
					gltf.POSITION: posAcc,
					gltf.NORMAL:   normAcc,
				},
				Material: gltf.Index(mat),
			}},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: m.PartName,
			Mesh: gltf.Index(len(doc.Meshes) - 1),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}

	return doc, nil
}

// materialFor returns the material index for a hex color, creating it
// on first use.
func materialFor(doc *gltf.Document, cache map[string]int, hex string) (int, error) {
	if hex == "" {
		hex = defaultColor
	}
	if idx, ok := cache[hex]; ok {
		return idx, nil
	}
	r, g, b, err := catalog.ParseHex(hex)
	if err != nil {
		return 0, err
	}
	doc.Materials = append(doc.Materials, &gltf.Material{
		Name: hex,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{r, g, b, 1},
			MetallicFactor:  gltf.Float(0.2),
			RoughnessFactor: gltf.Float(0.7),
		},
	})
	idx := len(doc.Materials) - 1
	cache[hex] = idx
	return idx, nil
}

// Encode writes meshes as binary glTF to w.
func Encode(w io.Writer, meshes []*kernel.Mesh) error {
	doc, err := BuildDocument(meshes)
	if err != nil {
		return err
	}
	return gltf.NewEncoder(w).Encode(doc)
}

// WriteFile saves meshes as a binary glTF file.
func WriteFile(path string, meshes []*kernel.Mesh) error {
	doc, err := BuildDocument(meshes)
	if err != nil {
		return err
	}
	return gltf.SaveBinary(doc, path)
}
