package geom

// RectPoints returns the four corners of an axis-aligned rectangle in
// the winding the generators use everywhere: min corner, up the left
// edge, across the top, down the right edge.
func RectPoints(xmin, ymin, xmax, ymax float64) []Vec2 {
	return []Vec2{
		{xmin, ymin},
		{xmin, ymax},
		{xmax, ymax},
		{xmax, ymin},
	}
}

// CenteredRect returns a width x height rectangle centered on the
// origin.
func CenteredRect(width, height float64) []Vec2 {
	return RectPoints(-width/2, -height/2, width/2, height/2)
}

// BoundingRect returns the axis-aligned bounds of a point set.
func BoundingRect(points []Vec2) (min, max Vec2) {
	if len(points) == 0 {
		return Vec2{}, Vec2{}
	}
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// InsetRect shrinks the bounding rectangle of points by offset on every
// side and returns its four corners. A negative offset grows the
// rectangle outward, which is how frame profiles are derived.
func InsetRect(points []Vec2, offset float64) []Vec2 {
	min, max := BoundingRect(points)
	return RectPoints(min.X+offset, min.Y+offset, max.X-offset, max.Y-offset)
}

// Scale multiplies every point by (sx, sy).
func Scale(points []Vec2, sx, sy float64) []Vec2 {
	out := make([]Vec2, len(points))
	for i, p := range points {
		out[i] = Vec2{p.X * sx, p.Y * sy}
	}
	return out
}
