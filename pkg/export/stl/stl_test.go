package stl

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/chazu/ifcforge/pkg/kernel"
)

func quadMesh() *kernel.Mesh {
	return &kernel.Mesh{
		Vertices: []float32{
			0, 0, 0,
			1, 0, 0,
			1, 1, 0,
			0, 1, 0,
		},
		Normals: []float32{
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

func TestWriteSize(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []*kernel.Mesh{quadMesh()}); err != nil {
		t.Fatal(err)
	}
	// 80-byte header + count + 50 bytes per triangle.
	want := 84 + 50*2
	if buf.Len() != want {
		t.Errorf("size = %d, want %d", buf.Len(), want)
	}
}

func TestWriteCount(t *testing.T) {
	var buf bytes.Buffer
	meshes := []*kernel.Mesh{quadMesh(), quadMesh()}
	if err := Write(&buf, meshes); err != nil {
		t.Fatal(err)
	}
	count := binary.LittleEndian.Uint32(buf.Bytes()[80:84])
	if count != 4 {
		t.Errorf("triangle count = %d, want 4", count)
	}
}

func TestWriteTriangle(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []*kernel.Mesh{quadMesh()}); err != nil {
		t.Fatal(err)
	}
	var tri [12]float32
	r := bytes.NewReader(buf.Bytes()[84:])
	if err := binary.Read(r, binary.LittleEndian, &tri); err != nil {
		t.Fatal(err)
	}
	if tri[2] != 1 {
		t.Errorf("normal z = %f, want 1", tri[2])
	}
	// Second vertex of the first facet is (1,0,0).
	if tri[6] != 1 || tri[7] != 0 || tri[8] != 0 {
		t.Errorf("vertex 1 = (%f,%f,%f)", tri[6], tri[7], tri[8])
	}
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 84 {
		t.Errorf("empty body size = %d, want 84", buf.Len())
	}
}

func TestWriteBadIndex(t *testing.T) {
	m := quadMesh()
	m.Indices = []uint32{0, 1, 9}
	var buf bytes.Buffer
	if err := Write(&buf, []*kernel.Mesh{m}); err == nil {
		t.Error("out-of-range index should fail")
	}
}

func TestWriteFile(t *testing.T) {
	path := t.TempDir() + "/part.stl"
	if err := WriteFile(path, []*kernel.Mesh{quadMesh()}); err != nil {
		t.Fatal(err)
	}
}
