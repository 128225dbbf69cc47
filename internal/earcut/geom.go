package earcut

import "math"

// Pure geometric predicates over arena vertices. Everything here follows the
// clockwise-negative area convention: a valid ear has negative signed area.

// area is twice the signed area of the triangle (p, q, r).
func (t *triangulator) area(p, q, r int32) float64 {
	P, Q, R := &t.vertices[p], &t.vertices[q], &t.vertices[r]
	return (Q.y-P.y)*(R.x-Q.x) - (Q.x-P.x)*(R.y-Q.y)
}

// signedAreaRange is the shoelace sum over a flat coordinate range. Positive
// means the ring is wound clockwise under the y-up convention used here.
func signedAreaRange(data []float64, start, end, dim int) float64 {
	var sum float64
	j := end - dim
	for i := start; i < end; i += dim {
		sum += (data[j] - data[i]) * (data[i+1] + data[j+1])
		j = i
	}
	return sum
}

func sign(v float64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// pointInTriangle reports whether (px, py) lies inside or on the triangle
// (a, b, c).
func pointInTriangle(ax, ay, bx, by, cx, cy, px, py float64) bool {
	return (cx-px)*(ay-py) >= (ax-px)*(cy-py) &&
		(ax-px)*(by-py) >= (bx-px)*(ay-py) &&
		(bx-px)*(cy-py) >= (cx-px)*(by-py)
}

// pointInTriangleExceptFirst additionally excludes a point that coincides
// with the first triangle corner.
func pointInTriangleExceptFirst(ax, ay, bx, by, cx, cy, px, py float64) bool {
	return !(ax == px && ay == py) && pointInTriangle(ax, ay, bx, by, cx, cy, px, py)
}

// intersects reports whether segments (p1, q1) and (p2, q2) cross, including
// collinear overlap cases.
func (t *triangulator) intersects(p1, q1, p2, q2 int32) bool {
	o1 := sign(t.area(p1, q1, p2))
	o2 := sign(t.area(p1, q1, q2))
	o3 := sign(t.area(p2, q2, p1))
	o4 := sign(t.area(p2, q2, q1))

	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == 0 && t.onSegment(p1, p2, q1) {
		return true
	}
	if o2 == 0 && t.onSegment(p1, q2, q1) {
		return true
	}
	if o3 == 0 && t.onSegment(p2, p1, q2) {
		return true
	}
	if o4 == 0 && t.onSegment(p2, q1, q2) {
		return true
	}
	return false
}

// onSegment assumes p, q, r are collinear and reports whether q lies on the
// segment (p, r).
func (t *triangulator) onSegment(p, q, r int32) bool {
	P, Q, R := &t.vertices[p], &t.vertices[q], &t.vertices[r]
	return Q.x <= math.Max(P.x, R.x) && Q.x >= math.Min(P.x, R.x) &&
		Q.y <= math.Max(P.y, R.y) && Q.y >= math.Min(P.y, R.y)
}

// intersectsPolygon reports whether the diagonal (a, b) crosses any ring
// edge not incident to a or b.
func (t *triangulator) intersectsPolygon(a, b int32) bool {
	p := a
	for {
		P := &t.vertices[p]
		if P.i != t.vertices[a].i && t.vertices[P.next].i != t.vertices[a].i &&
			P.i != t.vertices[b].i && t.vertices[P.next].i != t.vertices[b].i &&
			t.intersects(p, P.next, a, b) {
			return true
		}
		p = P.next
		if p == a {
			return false
		}
	}
}

// locallyInside reports whether the diagonal from a toward b stays inside
// the polygon in the immediate neighborhood of a. Inherited verbatim from
// the reference heuristic.
func (t *triangulator) locallyInside(a, b int32) bool {
	A := &t.vertices[a]
	if t.area(A.prev, a, A.next) < 0 {
		return t.area(a, b, A.next) >= 0 && t.area(a, A.prev, b) >= 0
	}
	return t.area(a, b, A.prev) < 0 || t.area(a, A.next, b) < 0
}

// middleInside reports whether the midpoint of the diagonal (a, b) is inside
// the polygon, by even-odd ray crossing.
func (t *triangulator) middleInside(a, b int32) bool {
	px := (t.vertices[a].x + t.vertices[b].x) / 2
	py := (t.vertices[a].y + t.vertices[b].y) / 2

	var inside bool
	p := a
	for {
		P := &t.vertices[p]
		N := &t.vertices[P.next]
		if ((P.y > py) != (N.y > py)) && N.y != P.y &&
			(px < (N.x-P.x)*(py-P.y)/(N.y-P.y)+P.x) {
			inside = !inside
		}
		p = P.next
		if p == a {
			return inside
		}
	}
}

// sectorContainsSector reports whether the angular sector at m contains the
// sector at p, for vertices sharing the same coordinates.
func (t *triangulator) sectorContainsSector(m, p int32) bool {
	M, P := &t.vertices[m], &t.vertices[p]
	return t.area(M.prev, m, P.prev) < 0 && t.area(P.next, m, M.next) < 0
}

// isValidDiagonal reports whether (a, b) can split the ring: the endpoints
// are not ring neighbors, the segment crosses no edge, it is locally inside
// from both ends, and its midpoint is inside.
func (t *triangulator) isValidDiagonal(a, b int32) bool {
	A, B := &t.vertices[a], &t.vertices[b]
	if t.vertices[A.next].i == B.i || t.vertices[A.prev].i == B.i || t.intersectsPolygon(a, b) {
		return false
	}
	return t.locallyInside(a, b) && t.locallyInside(b, a) && t.middleInside(a, b) &&
		(t.area(A.prev, a, B.prev) != 0 || t.area(a, B.prev, b) != 0) ||
		t.equalCoords(a, b) && t.area(A.prev, a, A.next) > 0 && t.area(B.prev, b, B.next) > 0
}
