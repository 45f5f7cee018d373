package sdfx

import (
	"math"
	"testing"
)

func TestBox(t *testing.T) {
	k := New()
	box := k.Box(0.1, 0.05, 0.025)
	mesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if mesh.VertexCount() == 0 {
		t.Fatal("expected non-zero vertex count")
	}
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != mesh.TriangleCount()*3 {
		t.Fatalf("indices length %d != triangles*3", len(mesh.Indices))
	}
}

func TestBoundingBox(t *testing.T) {
	// Boxes are min-corner-origin.
	k := New()
	box := k.Box(0.1, 0.05, 0.025)
	min, max := box.BoundingBox()

	const tol = 0.001
	expectMin := [3]float64{0, 0, 0}
	expectMax := [3]float64{0.1, 0.05, 0.025}

	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected %f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected %f", i, max[i], expectMax[i])
		}
	}
}

func TestExtrudePolygon(t *testing.T) {
	k := New()
	outer := [][2]float64{{0, 0}, {0.4, 0}, {0.4, 0.3}, {0, 0.3}}
	s, err := k.ExtrudePolygon(outer, nil, 0.002)
	if err != nil {
		t.Fatalf("ExtrudePolygon failed: %v", err)
	}

	min, max := s.BoundingBox()
	const tol = 0.01
	if math.Abs(min[2]) > tol || math.Abs(max[2]-0.002) > tol {
		t.Errorf("z bounds = %f..%f, want 0..0.002", min[2], max[2])
	}
	if math.Abs(max[0]-0.4) > tol || math.Abs(max[1]-0.3) > tol {
		t.Errorf("xy bounds = %v..%v", min, max)
	}
}

func TestExtrudePolygonWithVoids(t *testing.T) {
	k := New()
	outer := [][2]float64{{0, 0}, {0.1, 0}, {0.1, 0.1}, {0, 0.1}}
	hole := [][2]float64{{0.02, 0.02}, {0.08, 0.02}, {0.08, 0.08}, {0.02, 0.08}}

	plain, err := k.ExtrudePolygon(outer, nil, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	holed, err := k.ExtrudePolygon(outer, [][][2]float64{hole}, 0.01)
	if err != nil {
		t.Fatal(err)
	}

	plainMesh, err := k.ToMesh(plain)
	if err != nil {
		t.Fatal(err)
	}
	holedMesh, err := k.ToMesh(holed)
	if err != nil {
		t.Fatal(err)
	}
	// The hole adds interior walls.
	if holedMesh.TriangleCount() <= plainMesh.TriangleCount() {
		t.Errorf("holed plate (%d triangles) should exceed plain plate (%d)",
			holedMesh.TriangleCount(), plainMesh.TriangleCount())
	}
}

func TestExtrudePolygonDegenerate(t *testing.T) {
	k := New()
	if _, err := k.ExtrudePolygon([][2]float64{{0, 0}, {1, 1}}, nil, 0.01); err == nil {
		t.Error("two-point polygon should fail")
	}
}

func TestUnion(t *testing.T) {
	k := New()
	box1 := k.Box(0.05, 0.05, 0.05)
	box2 := k.Translate(k.Box(0.05, 0.05, 0.05), 0.03, 0, 0)
	u := k.Union(box1, box2)

	min, max := u.BoundingBox()
	const tol = 0.001
	if math.Abs(max[0]-0.08) > tol || math.Abs(min[0]) > tol {
		t.Errorf("union x bounds = %f..%f, want 0..0.08", min[0], max[0])
	}

	mesh, err := k.ToMesh(u)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("union mesh is empty")
	}
}

func TestDifference(t *testing.T) {
	k := New()

	box := k.Box(0.1, 0.1, 0.1)
	boxMesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatalf("ToMesh(box) failed: %v", err)
	}

	cut := k.Translate(k.Box(0.04, 0.04, 0.12), 0.03, 0.03, -0.01)
	diff := k.Difference(box, cut)
	diffMesh, err := k.ToMesh(diff)
	if err != nil {
		t.Fatalf("ToMesh(diff) failed: %v", err)
	}
	if diffMesh.IsEmpty() {
		t.Fatal("difference mesh is empty")
	}
	// A box with a hole has more surface than a plain box.
	if diffMesh.TriangleCount() <= boxMesh.TriangleCount() {
		t.Errorf("difference (%d triangles) should exceed box (%d triangles)",
			diffMesh.TriangleCount(), boxMesh.TriangleCount())
	}
}

func TestIntersection(t *testing.T) {
	k := New()
	box1 := k.Box(0.1, 0.1, 0.1)
	box2 := k.Translate(k.Box(0.1, 0.1, 0.1), 0.05, 0, 0)
	inter := k.Intersection(box1, box2)
	mesh, err := k.ToMesh(inter)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("intersection mesh is empty")
	}
}

func TestTranslate(t *testing.T) {
	k := New()
	box := k.Box(0.01, 0.01, 0.01)
	translated := k.Translate(box, 0.1, 0.2, 0.3)

	min, max := translated.BoundingBox()
	const tol = 0.001
	expectMin := [3]float64{0.1, 0.2, 0.3}
	expectMax := [3]float64{0.11, 0.21, 0.31}

	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected ~%f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected ~%f", i, max[i], expectMax[i])
		}
	}
}
