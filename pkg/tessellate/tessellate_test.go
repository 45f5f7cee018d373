package tessellate_test

import (
	"errors"
	"testing"

	"github.com/chazu/ifcforge/pkg/csg"
	"github.com/chazu/ifcforge/pkg/geom"
	"github.com/chazu/ifcforge/pkg/kernel"
	"github.com/chazu/ifcforge/pkg/product"
	"github.com/chazu/ifcforge/pkg/tessellate"
)

// traceSolid records the operations that produced it, so tests can
// assert on evaluation structure without a real geometry backend.
type traceSolid struct {
	op     string
	offset [3]float64
}

func (s *traceSolid) BoundingBox() (min, max [3]float64) { return }

type traceKernel struct {
	extrusions int
	unions     int
	diffs      int
	meshes     int
}

func (k *traceKernel) Box(x, y, z float64) kernel.Solid { return &traceSolid{op: "box"} }

func (k *traceKernel) ExtrudePolygon(outer [][2]float64, voids [][][2]float64, depth float64) (kernel.Solid, error) {
	k.extrusions++
	return &traceSolid{op: "extrude"}, nil
}

func (k *traceKernel) Union(a, b kernel.Solid) kernel.Solid {
	k.unions++
	return &traceSolid{op: "union"}
}

func (k *traceKernel) Difference(a, b kernel.Solid) kernel.Solid {
	k.diffs++
	return &traceSolid{op: "difference"}
}

func (k *traceKernel) Intersection(a, b kernel.Solid) kernel.Solid {
	return &traceSolid{op: "intersection"}
}

func (k *traceKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	prev := s.(*traceSolid)
	return &traceSolid{op: prev.op, offset: [3]float64{
		prev.offset[0] + x, prev.offset[1] + y, prev.offset[2] + z,
	}}
}

func (k *traceKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	k.meshes++
	return &kernel.Mesh{Vertices: []float32{0, 0, 0}}, nil
}

var _ kernel.Kernel = (*traceKernel)(nil)

func squareShape(t *testing.T, depth float64) *csg.Shape {
	t.Helper()
	c, err := geom.BuildCurve(geom.RectPoints(0, 0, 1, 1), nil, true)
	if err != nil {
		t.Fatal(err)
	}
	spec, err := csg.Extrude(c, nil, geom.Vec3{Z: 1}, depth)
	if err != nil {
		t.Fatal(err)
	}
	return csg.Solid(spec)
}

func TestEvaluateTree(t *testing.T) {
	k := &traceKernel{}
	tree := csg.Difference(csg.Union(squareShape(t, 1), squareShape(t, 2)), squareShape(t, 3))

	solid, err := tessellate.Evaluate(tree, k)
	if err != nil {
		t.Fatal(err)
	}
	if k.extrusions != 3 || k.unions != 1 || k.diffs != 1 {
		t.Errorf("ops = %d extrusions, %d unions, %d diffs", k.extrusions, k.unions, k.diffs)
	}
	if solid.(*traceSolid).op != "difference" {
		t.Errorf("root op = %q", solid.(*traceSolid).op)
	}
}

func TestEvaluateNil(t *testing.T) {
	if _, err := tessellate.Evaluate(nil, &traceKernel{}); !errors.Is(err, tessellate.ErrEmptyShape) {
		t.Errorf("error = %v, want ErrEmptyShape", err)
	}
}

func TestEvaluateDownwardExtrusion(t *testing.T) {
	// A -Z extrusion hangs below its placement plane.
	c, err := geom.BuildCurve(geom.RectPoints(0, 0, 1, 1), nil, true)
	if err != nil {
		t.Fatal(err)
	}
	spec, err := csg.Extrude(c, nil, geom.Vec3{Z: -1}, 0.35)
	if err != nil {
		t.Fatal(err)
	}

	k := &traceKernel{}
	solid, err := tessellate.Evaluate(csg.Solid(spec), k)
	if err != nil {
		t.Fatal(err)
	}
	got := solid.(*traceSolid).offset
	if got != [3]float64{0, 0, -0.35} {
		t.Errorf("offset = %v, want (0,0,-0.35)", got)
	}
}

func TestEvaluatePosition(t *testing.T) {
	c, err := geom.BuildCurve(geom.RectPoints(0, 0, 1, 1), nil, true)
	if err != nil {
		t.Fatal(err)
	}
	spec, err := csg.Extrude(c, nil, geom.Vec3{Z: 1}, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	k := &traceKernel{}
	solid, err := tessellate.Evaluate(csg.Solid(spec.At(geom.Vec3{X: -0.4, Z: 0.3})), k)
	if err != nil {
		t.Fatal(err)
	}
	got := solid.(*traceSolid).offset
	if got != [3]float64{-0.4, 0, 0.3} {
		t.Errorf("offset = %v", got)
	}
}

func TestShapeMesh(t *testing.T) {
	k := &traceKernel{}
	mesh, err := tessellate.ShapeMesh(squareShape(t, 1), k, "Deckblatt", "#383E42")
	if err != nil {
		t.Fatal(err)
	}
	if mesh.PartName != "Deckblatt" || mesh.Color != "#383E42" {
		t.Errorf("mesh tags = %q/%q", mesh.PartName, mesh.Color)
	}
}

func TestGridMeshes(t *testing.T) {
	g, err := geom.NewGrid(2, 3, 0.4, 0.3, 0.003)
	if err != nil {
		t.Fatal(err)
	}
	k := &traceKernel{}
	meshes, err := tessellate.GridMeshes(squareShape(t, 1), g, k, "cell", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(meshes) != 6 {
		t.Fatalf("got %d meshes, want 6", len(meshes))
	}
	// Geometry evaluated once, meshed per cell.
	if k.extrusions != 1 {
		t.Errorf("extrusions = %d, want 1", k.extrusions)
	}
	if k.meshes != 6 {
		t.Errorf("meshes = %d, want 6", k.meshes)
	}
	if meshes[0].PartName != "cell 0,0" || meshes[5].PartName != "cell 1,2" {
		t.Errorf("part names = %q .. %q", meshes[0].PartName, meshes[5].PartName)
	}
}

func TestEvaluateMailboxAssembly(t *testing.T) {
	tree, err := product.AssembleMailbox(product.DefaultMailbox())
	if err != nil {
		t.Fatal(err)
	}
	k := &traceKernel{}
	solid, err := tessellate.Evaluate(tree, k)
	if err != nil {
		t.Fatal(err)
	}
	if solid.(*traceSolid).op != "difference" {
		t.Error("mailbox with slot should evaluate to a difference")
	}
	if k.extrusions != 3 {
		t.Errorf("extrusions = %d, want body, door and slot", k.extrusions)
	}
}
