package earcut

import (
	"math"
	"sort"
)

// Hole elimination. Every hole ring is bridged into the outer ring with
// David Eberly's algorithm, after which the engine sees one plain ring.

// eliminateHoles builds a ring per hole (wound opposite to the outer ring),
// then splices the holes into the outer ring left to right, so an earlier
// bridge can never shadow a later hole's bridge search.
func (t *triangulator) eliminateHoles(holeIndices []int, outer int32) int32 {
	queue := make([]int32, 0, len(holeIndices))

	for k, holeIndex := range holeIndices {
		start := holeIndex * t.dim
		end := len(t.data)
		if k < len(holeIndices)-1 {
			end = holeIndices[k+1] * t.dim
		}

		list := t.linkedList(start, end, false)
		if list == none {
			continue
		}
		if list == t.vertices[list].next {
			// A single-point hole survives filtering as a steiner vertex.
			t.vertices[list].steiner = true
		}
		queue = append(queue, t.leftmost(list))
	}

	sort.SliceStable(queue, func(i, j int) bool {
		return t.vertices[queue[i]].x < t.vertices[queue[j]].x
	})

	for _, hole := range queue {
		outer = t.eliminateHole(hole, outer)
		if outer == none {
			break
		}
	}
	return outer
}

// eliminateHole splices one hole into the outer ring and refilters the
// vertices around both cut seams.
func (t *triangulator) eliminateHole(hole, outer int32) int32 {
	bridge := t.findHoleBridge(hole, outer)
	if bridge == none {
		return outer
	}

	bridgeReverse := t.splitPolygon(bridge, hole)

	t.filterPoints(bridgeReverse, t.vertices[bridgeReverse].next)
	return t.filterPoints(bridge, t.vertices[bridge].next)
}

// findHoleBridge finds an outer-ring vertex the hole's leftmost vertex can
// be bridged to (David Eberly's algorithm). Returns none when the ray hits
// nothing, which only happens on malformed input.
func (t *triangulator) findHoleBridge(hole, outer int32) int32 {
	p := outer
	hx := t.vertices[hole].x
	hy := t.vertices[hole].y
	qx := math.Inf(-1)
	m := none

	// Cast a leftward ray from the hole point and keep the edge it crosses
	// with the rightmost crossing x; that edge's lower-x endpoint is the
	// first bridge candidate.
	for {
		P := &t.vertices[p]
		N := &t.vertices[P.next]
		if hy <= P.y && hy >= N.y && N.y != P.y {
			x := P.x + (hy-P.y)*(N.x-P.x)/(N.y-P.y)
			if x <= hx && x > qx {
				qx = x
				if P.x < N.x {
					m = p
				} else {
					m = P.next
				}
				if x == hx {
					// The hole touches the outer segment; bridge there.
					return m
				}
			}
		}
		p = P.next
		if p == outer {
			break
		}
	}

	if m == none {
		return none
	}

	// If the triangle (hole point, crossing point, candidate) contains no
	// other vertex, the candidate stands. Otherwise pick, among contained
	// vertices, the one minimizing the tangent angle to the ray; the exact
	// tie-break is inherited from the reference heuristic and kept verbatim.
	stop := m
	mx := t.vertices[m].x
	my := t.vertices[m].y
	tanMin := math.Inf(1)

	p = m
	for {
		P := &t.vertices[p]

		tax, tcx := qx, hx
		if hy < my {
			tax, tcx = hx, qx
		}

		if hx >= P.x && P.x >= mx && hx != P.x &&
			pointInTriangle(tax, hy, mx, my, tcx, hy, P.x, P.y) {

			tan := math.Abs(hy-P.y) / (hx - P.x)

			if t.locallyInside(p, hole) &&
				(tan < tanMin || (tan == tanMin && (P.x > t.vertices[m].x ||
					(P.x == t.vertices[m].x && t.sectorContainsSector(m, p))))) {
				m = p
				tanMin = tan
			}
		}

		p = P.next
		if p == stop {
			break
		}
	}

	return m
}
