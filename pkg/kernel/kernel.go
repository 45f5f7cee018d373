// Package kernel defines the abstract geometry kernel interface used
// to turn boolean shape trees into triangle meshes. Implementations
// provide solid modeling behind this interface so the evaluation code
// never depends on a specific backend.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Primitives. ExtrudePolygon sweeps a closed polygon (with
	// optional hole polygons) from z=0 to z=depth.
	Box(x, y, z float64) Solid
	ExtrudePolygon(outer [][2]float64, voids [][][2]float64, depth float64) (Solid, error)

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
