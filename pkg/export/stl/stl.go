// Package stl writes triangle meshes as binary STL.
package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/chazu/ifcforge/pkg/kernel"
)

// headerText fills the 80-byte binary STL header.
const headerText = "ifcforge binary STL"

// Write serializes meshes as one binary STL body: 80-byte header,
// triangle count, then 50 bytes per triangle (normal, three vertices,
// attribute word).
func Write(w io.Writer, meshes []*kernel.Mesh) error {
	bw := bufio.NewWriter(w)

	var header [80]byte
	copy(header[:], headerText)
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}

	var count uint32
	for _, m := range meshes {
		count += uint32(m.TriangleCount())
	}
	if err := binary.Write(bw, binary.LittleEndian, count); err != nil {
		return err
	}

	for _, m := range meshes {
		if err := writeMesh(bw, m); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeMesh(w io.Writer, m *kernel.Mesh) error {
	var tri [12]float32
	for i := 0; i+2 < len(m.Indices); i += 3 {
		// Per-vertex normals are face normals here; the first vertex's
		// normal stands for the facet.
		n := m.Indices[i] * 3
		if int(n)+2 < len(m.Normals) {
			tri[0], tri[1], tri[2] = m.Normals[n], m.Normals[n+1], m.Normals[n+2]
		} else {
			tri[0], tri[1], tri[2] = 0, 0, 0
		}
		for j := 0; j < 3; j++ {
			v := m.Indices[i+j] * 3
			if int(v)+2 >= len(m.Vertices) {
				return fmt.Errorf("index %d out of range for %d vertices", v/3, m.VertexCount())
			}
			tri[3+j*3] = m.Vertices[v]
			tri[4+j*3] = m.Vertices[v+1]
			tri[5+j*3] = m.Vertices[v+2]
		}
		if err := binary.Write(w, binary.LittleEndian, tri); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes meshes to a binary STL file.
func WriteFile(path string, meshes []*kernel.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, meshes); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
