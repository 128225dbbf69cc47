package earcut

// Vertices live in a flat per-call arena. All link fields hold arena indices,
// with none marking an absent link, so a triangulation never shares state
// with another call and removal is just rewiring neighbors. Slots are not
// reused within a call.

const (
	none   = int32(-1)
	zUnset = int32(-1)
)

type vertex struct {
	// i is the vertex's offset into the flat coordinate slice. Two arena
	// slots may carry the same i after a splice; they are distinct graph
	// identities that map back to the same input vertex.
	i    int32
	x, y float64

	// Ring links. prev and next are mutual inverses for every live vertex.
	prev, next int32

	// Morton code and z-order list links. The z list is linear, not
	// circular, and stays empty until the curve is indexed.
	z            int32
	prevZ, nextZ int32

	// steiner vertices are exempt from duplicate and colinear filtering.
	steiner bool
}

func (t *triangulator) newVertex(i int32, x, y float64) int32 {
	t.vertices = append(t.vertices, vertex{
		i: i, x: x, y: y,
		prev: none, next: none,
		z: zUnset, prevZ: none, nextZ: none,
	})
	return int32(len(t.vertices) - 1)
}

// insertVertex appends a new vertex after last and returns it. With last ==
// none it starts a fresh single-vertex ring.
func (t *triangulator) insertVertex(i int32, x, y float64, last int32) int32 {
	p := t.newVertex(i, x, y)
	if last == none {
		t.vertices[p].prev = p
		t.vertices[p].next = p
	} else {
		next := t.vertices[last].next
		t.vertices[p].next = next
		t.vertices[p].prev = last
		t.vertices[next].prev = p
		t.vertices[last].next = p
	}
	return p
}

// removeVertex unlinks p from its ring and from the z-order list in one
// step. p's own links are left alone so an iteration holding p can still
// step off of it.
func (t *triangulator) removeVertex(p int32) {
	v := &t.vertices[p]
	t.vertices[v.next].prev = v.prev
	t.vertices[v.prev].next = v.next

	if v.prevZ != none {
		t.vertices[v.prevZ].nextZ = v.nextZ
	}
	if v.nextZ != none {
		t.vertices[v.nextZ].prevZ = v.prevZ
	}
}

// splitPolygon links vertices a and b with a bridge. If they belong to the
// same ring it splits the ring in two; if one is on a hole it merges the
// hole into the outer ring. The clones a2 and b2 keep the original i and
// coordinates but start with no links of their own.
func (t *triangulator) splitPolygon(a, b int32) int32 {
	a2 := t.newVertex(t.vertices[a].i, t.vertices[a].x, t.vertices[a].y)
	b2 := t.newVertex(t.vertices[b].i, t.vertices[b].x, t.vertices[b].y)
	an := t.vertices[a].next
	bp := t.vertices[b].prev

	t.vertices[a].next = b
	t.vertices[b].prev = a

	t.vertices[a2].next = an
	t.vertices[an].prev = a2

	t.vertices[b2].next = a2
	t.vertices[a2].prev = b2

	t.vertices[bp].next = b2
	t.vertices[b2].prev = bp

	return b2
}

// linkedList builds a circular ring from a coordinate range, scanning in
// whichever direction makes the ring wind as requested. Returns none for an
// empty range. A closing vertex that duplicates the first one is dropped.
func (t *triangulator) linkedList(start, end int, clockwise bool) int32 {
	last := none

	if clockwise == (signedAreaRange(t.data, start, end, t.dim) > 0) {
		for i := start; i < end; i += t.dim {
			last = t.insertVertex(int32(i), t.data[i], t.data[i+1], last)
		}
	} else {
		for i := end - t.dim; i >= start; i -= t.dim {
			last = t.insertVertex(int32(i), t.data[i], t.data[i+1], last)
		}
	}

	if last != none && t.equalCoords(last, t.vertices[last].next) {
		next := t.vertices[last].next
		t.removeVertex(last)
		last = next
	}
	return last
}

// filterPoints removes duplicate and colinear vertices until a full pass
// makes no change. Steiner vertices are kept regardless. Returns none if the
// ring collapses below three distinct vertices.
func (t *triangulator) filterPoints(start, end int32) int32 {
	if start == none {
		return none
	}
	if end == none {
		end = start
	}

	p := start
	for {
		again := false
		v := &t.vertices[p]
		if !v.steiner && (t.equalCoords(p, v.next) || t.area(v.prev, p, v.next) == 0) {
			t.removeVertex(p)
			p = v.prev
			end = p
			if p == t.vertices[p].next {
				return none
			}
			again = true
		} else {
			p = v.next
		}
		if !again && p == end {
			break
		}
	}
	return end
}

func (t *triangulator) equalCoords(a, b int32) bool {
	return t.vertices[a].x == t.vertices[b].x && t.vertices[a].y == t.vertices[b].y
}

// leftmost returns the ring vertex with the smallest x, breaking ties by
// smaller y.
func (t *triangulator) leftmost(start int32) int32 {
	p := start
	best := start
	for {
		v, b := &t.vertices[p], &t.vertices[best]
		if v.x < b.x || (v.x == b.x && v.y < b.y) {
			best = p
		}
		p = v.next
		if p == start {
			return best
		}
	}
}
