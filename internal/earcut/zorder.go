package earcut

// Z-order spatial index. For large inputs every vertex gets a Morton code
// and a second, z-sorted linked list is threaded over the same arena slots,
// so ear tests only need to scan vertices that are spatially near the
// candidate triangle.

// indexThreshold is the ring size (in vertices per dimension group) above
// which building the index beats the plain O(n) ear scan.
const indexThreshold = 80

// zOrder maps a point to a 30-bit Morton code within the bounding box
// described by minX, minY and invSize. The bit-spreading masks must stay
// exactly as they are; the sort order downstream depends on them.
func zOrder(x, y, minX, minY, invSize float64) int32 {
	// Coords are transformed into non-negative 15-bit integer range.
	ix := int32((x - minX) * invSize)
	iy := int32((y - minY) * invSize)

	ix = (ix | ix<<8) & 0x00FF00FF
	ix = (ix | ix<<4) & 0x0F0F0F0F
	ix = (ix | ix<<2) & 0x33333333
	ix = (ix | ix<<1) & 0x55555555

	iy = (iy | iy<<8) & 0x00FF00FF
	iy = (iy | iy<<4) & 0x0F0F0F0F
	iy = (iy | iy<<2) & 0x33333333
	iy = (iy | iy<<1) & 0x55555555

	return ix | iy<<1
}

// indexCurve assigns Morton codes to every vertex of the ring that does not
// have one yet, threads the z list over the current ring order, snips it
// into a linear list and sorts it.
func (t *triangulator) indexCurve(start int32) {
	p := start
	for {
		v := &t.vertices[p]
		if v.z == zUnset {
			v.z = zOrder(v.x, v.y, t.minX, t.minY, t.invSize)
		}
		v.prevZ = v.prev
		v.nextZ = v.next
		p = v.next
		if p == start {
			break
		}
	}

	last := t.vertices[p].prevZ
	t.vertices[last].nextZ = none
	t.vertices[p].prevZ = none

	t.sortLinked(p)
}

// sortLinked sorts the z list by Morton code with Simon Tatham's bottom-up
// linked-list merge sort. Stable on equal codes, O(n log n), no auxiliary
// array.
func (t *triangulator) sortLinked(list int32) int32 {
	inSize := 1
	for {
		p := list
		list = none
		tail := none
		numMerges := 0

		for p != none {
			numMerges++
			q := p
			pSize := 0
			for i := 0; i < inSize; i++ {
				pSize++
				q = t.vertices[q].nextZ
				if q == none {
					break
				}
			}
			qSize := inSize

			for pSize > 0 || (qSize > 0 && q != none) {
				var e int32
				if pSize != 0 && (qSize == 0 || q == none || t.vertices[p].z <= t.vertices[q].z) {
					e = p
					p = t.vertices[p].nextZ
					pSize--
				} else {
					e = q
					q = t.vertices[q].nextZ
					qSize--
				}
				if tail != none {
					t.vertices[tail].nextZ = e
				} else {
					list = e
				}
				t.vertices[e].prevZ = tail
				tail = e
			}
			p = q
		}

		t.vertices[tail].nextZ = none
		if numMerges <= 1 {
			return list
		}
		inSize *= 2
	}
}

// isEarHashed is the indexed equivalent of isEar: instead of scanning the
// whole ring it walks outward from the ear along the z list in both
// directions, stopping once Morton codes leave the candidate triangle's
// bounding-box range.
func (t *triangulator) isEarHashed(ear int32) bool {
	a := t.vertices[ear].prev
	c := t.vertices[ear].next
	if t.area(a, ear, c) >= 0 {
		return false // reflex, can't be an ear
	}

	A, B, C := &t.vertices[a], &t.vertices[ear], &t.vertices[c]
	ax, ay := A.x, A.y
	bx, by := B.x, B.y
	cx, cy := C.x, C.y

	// Triangle bbox.
	x0 := minF(ax, minF(bx, cx))
	y0 := minF(ay, minF(by, cy))
	x1 := maxF(ax, maxF(bx, cx))
	y1 := maxF(ay, maxF(by, cy))

	// Z range of the bbox.
	minZ := zOrder(x0, y0, t.minX, t.minY, t.invSize)
	maxZ := zOrder(x1, y1, t.minX, t.minY, t.invSize)

	p := B.prevZ
	n := B.nextZ

	blocks := func(q int32) bool {
		Q := &t.vertices[q]
		return Q.x >= x0 && Q.x <= x1 && Q.y >= y0 && Q.y <= y1 &&
			q != a && q != c &&
			pointInTriangleExceptFirst(ax, ay, bx, by, cx, cy, Q.x, Q.y) &&
			t.area(Q.prev, q, Q.next) >= 0
	}

	// Walk both directions at once while both stay in range.
	for p != none && t.vertices[p].z >= minZ && n != none && t.vertices[n].z <= maxZ {
		if blocks(p) {
			return false
		}
		p = t.vertices[p].prevZ

		if blocks(n) {
			return false
		}
		n = t.vertices[n].nextZ
	}

	for p != none && t.vertices[p].z >= minZ {
		if blocks(p) {
			return false
		}
		p = t.vertices[p].prevZ
	}

	for n != none && t.vertices[n].z <= maxZ {
		if blocks(n) {
			return false
		}
		n = t.vertices[n].nextZ
	}

	return true
}
