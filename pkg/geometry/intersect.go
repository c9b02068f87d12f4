package geometry

// SegmentsIntersect reports whether the closed segments [a1,a2] and [b1,b2]
// share at least one point. The test is exact and boundary inclusive: a
// shared endpoint or a collinear overlap counts as an intersection.
func SegmentsIntersect(a1, a2, b1, b2 Point2D) bool {
	d1 := cross(b1, b2, a1)
	d2 := cross(b1, b2, a2)
	d3 := cross(a1, a2, b1)
	d4 := cross(a1, a2, b2)

	// Proper crossing: endpoints of each segment are strictly on opposite
	// sides of the other segment's line.
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear or touching cases.
	if d1 == 0 && onSegment(b1, b2, a1) {
		return true
	}
	if d2 == 0 && onSegment(b1, b2, a2) {
		return true
	}
	if d3 == 0 && onSegment(a1, a2, b1) {
		return true
	}
	if d4 == 0 && onSegment(a1, a2, b2) {
		return true
	}

	return false
}

// PolylineIntersectsSegment reports whether any segment of the connected
// polyline pts intersects the segment [a, b]. A polyline with fewer than
// two points has no segments and never intersects.
func PolylineIntersectsSegment(pts []Point2D, a, b Point2D) bool {
	for i := 1; i < len(pts); i++ {
		if SegmentsIntersect(pts[i-1], pts[i], a, b) {
			return true
		}
	}
	return false
}

// cross computes the cross product of the vectors o->a and o->p.
// Positive when p is left of the directed line o->a.
func cross(o, a, p Point2D) float64 {
	return (a.X-o.X)*(p.Y-o.Y) - (a.Y-o.Y)*(p.X-o.X)
}

// onSegment reports whether p, already known to be collinear with [a, b],
// lies within the segment's axis-aligned extent.
func onSegment(a, b, p Point2D) bool {
	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}
