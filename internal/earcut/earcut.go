// Package earcut implements ear-clipping triangulation of simple polygons
// with holes, with a z-order curve index to keep ear tests fast on large
// inputs.
//
// The engine keeps all state in a per-call triangulator, so concurrent calls
// on different inputs need no synchronization.
package earcut

// Triangulate converts a flat array of coordinate groups into triangle
// vertex-index triples. holeIndices lists the group index where each hole
// ring starts; dim is the group width, of which only the first two values
// are used geometrically. dim == 0 means the default of 3.
func Triangulate(data []float64, holeIndices []int, dim int) []int {
	if dim == 0 {
		dim = 3
	}
	return earcut(data, holeIndices, dim, len(data) > indexThreshold*dim)
}

// earcut is the real entry point; indexed selects the z-order ear test and
// is split out so the two paths can be compared against each other.
func earcut(data []float64, holeIndices []int, dim int, indexed bool) []int {
	t := &triangulator{data: data, dim: dim, triangles: []int{}}

	hasHoles := len(holeIndices) > 0
	outerLen := len(data)
	if hasHoles {
		outerLen = holeIndices[0] * dim
	}

	outer := t.linkedList(0, outerLen, true)
	if outer == none || t.vertices[outer].next == t.vertices[outer].prev {
		return t.triangles
	}

	if hasHoles {
		outer = t.eliminateHoles(holeIndices, outer)
		if outer == none {
			return t.triangles
		}
	}

	// The bounding box for Morton codes covers the outer ring only; holes
	// are inside it by definition.
	if indexed {
		minX, minY := data[0], data[1]
		maxX, maxY := data[0], data[1]
		for i := dim; i < outerLen; i += dim {
			x, y := data[i], data[i+1]
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x > maxX {
				maxX = x
			}
			if y > maxY {
				maxY = y
			}
		}
		t.minX, t.minY = minX, minY
		size := maxX - minX
		if maxY-minY > size {
			size = maxY - minY
		}
		if size != 0 {
			t.invSize = 32767 / size
		}
	}

	t.earcutLinked(outer, 0)
	return t.triangles
}

type triangulator struct {
	vertices []vertex
	data     []float64
	dim      int

	minX, minY float64
	invSize    float64 // 0 disables the z-order index

	triangles []int
}

func (t *triangulator) emit(a, b, c int32) {
	t.triangles = append(t.triangles,
		int(t.vertices[a].i)/t.dim,
		int(t.vertices[b].i)/t.dim,
		int(t.vertices[c].i)/t.dim)
}

// ringJob is one pending ring for the engine: where to start clipping and
// which escalation pass it is on.
type ringJob struct {
	head int32
	pass int
}

// earcutLinked drives the engine over an explicit work stack, so escalation
// and polygon bisection never nest native calls.
func (t *triangulator) earcutLinked(head int32, pass int) {
	stack := []ringJob{{head, pass}}
	for len(stack) > 0 {
		job := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		t.clipRing(job.head, job.pass, &stack)
	}
}

// clipRing sweeps the ring removing ears until only two vertices remain. A
// full sweep that finds no ear escalates: pass 0 refilters the ring, pass 1
// cures local self-intersections, pass 2 bisects the polygon and queues both
// halves at pass 0.
func (t *triangulator) clipRing(ear int32, pass int, stack *[]ringJob) {
	if ear == none {
		return
	}

	if pass == 0 && t.invSize > 0 {
		t.indexCurve(ear)
	}

	stop := ear
	for t.vertices[ear].prev != t.vertices[ear].next {
		prev := t.vertices[ear].prev
		next := t.vertices[ear].next

		var clippable bool
		if t.invSize > 0 {
			clippable = t.isEarHashed(ear)
		} else {
			clippable = t.isEar(ear)
		}
		if clippable {
			t.emit(prev, ear, next)
			t.removeVertex(ear)

			// Skipping the next vertex produces fewer sliver triangles.
			ear = t.vertices[next].next
			stop = ear
			continue
		}

		ear = next

		if ear == stop {
			switch pass {
			case 0:
				*stack = append(*stack, ringJob{t.filterPoints(ear, none), 1})
			case 1:
				cured := t.cureLocalIntersections(t.filterPoints(ear, none))
				*stack = append(*stack, ringJob{cured, 2})
			case 2:
				t.splitEarcut(ear, stack)
			}
			return
		}
	}
}

// isEar checks the candidate triangle (prev, ear, next) against every other
// ring vertex: a vertex inside the triangle that is itself non-reflex blocks
// the ear.
func (t *triangulator) isEar(ear int32) bool {
	a := t.vertices[ear].prev
	c := t.vertices[ear].next
	if t.area(a, ear, c) >= 0 {
		return false // reflex, can't be an ear
	}

	A, B, C := &t.vertices[a], &t.vertices[ear], &t.vertices[c]
	ax, ay := A.x, A.y
	bx, by := B.x, B.y
	cx, cy := C.x, C.y

	// Triangle bbox as a cheap pre-filter.
	x0 := minF(ax, minF(bx, cx))
	y0 := minF(ay, minF(by, cy))
	x1 := maxF(ax, maxF(bx, cx))
	y1 := maxF(ay, maxF(by, cy))

	p := C.next
	for p != a {
		P := &t.vertices[p]
		if P.x >= x0 && P.x <= x1 && P.y >= y0 && P.y <= y1 &&
			pointInTriangleExceptFirst(ax, ay, bx, by, cx, cy, P.x, P.y) &&
			t.area(P.prev, p, P.next) >= 0 {
			return false
		}
		p = P.next
	}
	return true
}

// cureLocalIntersections walks the ring looking for two adjacent edges that
// cross (a small bowtie). Removing the two middle vertices and emitting the
// covering triangle unblocks ear clipping without a full bisection.
func (t *triangulator) cureLocalIntersections(start int32) int32 {
	if start == none {
		return none
	}

	p := start
	for {
		a := t.vertices[p].prev
		b := t.vertices[t.vertices[p].next].next

		if !t.equalCoords(a, b) && t.intersects(a, p, t.vertices[p].next, b) &&
			t.locallyInside(a, b) && t.locallyInside(b, a) {

			t.emit(a, p, b)

			t.removeVertex(p)
			t.removeVertex(t.vertices[p].next)

			p = b
			start = b
		}
		p = t.vertices[p].next
		if p == start {
			break
		}
	}

	return t.filterPoints(p, none)
}

// splitEarcut scans ordered pairs of non-adjacent vertices for the first
// valid diagonal, splits the ring there and queues both halves for a fresh
// pass. This is the last escalation level.
func (t *triangulator) splitEarcut(start int32, stack *[]ringJob) {
	if start == none {
		return
	}

	a := start
	for {
		b := t.vertices[t.vertices[a].next].next
		for b != t.vertices[a].prev {
			if t.vertices[a].i != t.vertices[b].i && t.isValidDiagonal(a, b) {
				c := t.splitPolygon(a, b)

				a = t.filterPoints(a, t.vertices[a].next)
				c = t.filterPoints(c, t.vertices[c].next)

				*stack = append(*stack, ringJob{a, 0}, ringJob{c, 0})
				return
			}
			b = t.vertices[b].next
		}
		a = t.vertices[a].next
		if a == start {
			return
		}
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
