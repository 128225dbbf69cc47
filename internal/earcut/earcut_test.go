package earcut

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangulate_UnitSquare(t *testing.T) {
	data := []float64{0, 0, 1, 0, 1, 1, 0, 1}
	triangles := Triangulate(data, nil, 2)
	assert.Equal(t, []int{2, 3, 0, 0, 1, 2}, triangles)
	assert.InDelta(t, 0, Deviation(data, nil, 2, triangles), 1e-12)
}

func TestTriangulate_DefaultDim(t *testing.T) {
	// dim 0 means 3; the z coordinate is carried but never read.
	data := []float64{0, 0, 7, 1, 0, 7, 1, 1, 7, 0, 1, 7}
	triangles := Triangulate(data, nil, 0)
	assert.Equal(t, []int{2, 3, 0, 0, 1, 2}, triangles)
}

func TestTriangulate_ConvexPolygon(t *testing.T) {
	ring := regularPolygon(12, 5)
	data, holeIndices, dim := Flatten([][][]float64{ring})
	triangles := Triangulate(data, holeIndices, dim)

	assert.Len(t, triangles, 3*(12-2))
	assert.InDelta(t, 0, Deviation(data, holeIndices, dim, triangles), 1e-9)

	// Every input vertex must appear in at least one triangle.
	seen := make(map[int]bool)
	for _, index := range triangles {
		seen[index] = true
	}
	for i := 0; i < 12; i++ {
		assert.True(t, seen[i], "vertex %d missing from the result", i)
	}
}

func TestTriangulate_ColinearPoints(t *testing.T) {
	assert.Empty(t, Triangulate([]float64{0, 0, 1, 0, 2, 0}, nil, 2))
}

func TestTriangulate_IdenticalPoints(t *testing.T) {
	assert.Empty(t, Triangulate([]float64{1, 1, 1, 1, 1, 1, 1, 1}, nil, 2))
}

func TestTriangulate_Empty(t *testing.T) {
	assert.Empty(t, Triangulate(nil, nil, 2))
	assert.Empty(t, Triangulate([]float64{3, 4}, nil, 2))
}

func TestTriangulate_SquareWithHole(t *testing.T) {
	data, holeIndices, dim := Flatten(squareWithHole())
	triangles := Triangulate(data, holeIndices, dim)

	// Bridging duplicates two vertices, so the merged ring has 10 of them.
	assert.Len(t, triangles, 3*8)
	assert.InDelta(t, 0, Deviation(data, holeIndices, dim, triangles), 1e-9)
	for _, index := range triangles {
		assert.Less(t, index, 8)
	}
}

func TestTriangulate_TwoHoles(t *testing.T) {
	data, holeIndices, dim := Flatten(squareWithTwoHoles())
	triangles := Triangulate(data, holeIndices, dim)

	assert.NotEmpty(t, triangles)
	assert.Zero(t, len(triangles)%3)
	assert.InDelta(t, 0, Deviation(data, holeIndices, dim, triangles), 1e-9)
}

func TestTriangulate_SteinerPointHole(t *testing.T) {
	rings := [][][]float64{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		{{5, 5}},
	}
	data, holeIndices, dim := Flatten(rings)
	triangles := Triangulate(data, holeIndices, dim)

	assert.NotEmpty(t, triangles)
	assert.Zero(t, len(triangles)%3)
	// A point hole has no area, so the cover must still be exact.
	assert.InDelta(t, 0, Deviation(data, holeIndices, dim, triangles), 1e-9)

	seen := make(map[int]bool)
	for _, index := range triangles {
		seen[index] = true
	}
	assert.True(t, seen[4], "the steiner point should be part of the mesh")
}

func TestTriangulate_Bowtie(t *testing.T) {
	// Self-intersecting input is not validated; it must still terminate
	// with a best-effort result.
	triangles := Triangulate([]float64{0, 0, 2, 2, 2, 0, 0, 2}, nil, 2)
	assert.NotEmpty(t, triangles)
	assert.Zero(t, len(triangles)%3)
}

func TestTriangulate_Comb(t *testing.T) {
	ring := mustFixture(t, "comb")
	data, holeIndices, dim := Flatten([][][]float64{ring})
	triangles := Triangulate(data, holeIndices, dim)

	assert.Len(t, triangles, 3*(len(ring)-2))
	assert.InDelta(t, 0, Deviation(data, holeIndices, dim, triangles), 1e-9)
}

func TestTriangulate_Spiral(t *testing.T) {
	ring := mustFixture(t, "spiral")
	data, holeIndices, dim := Flatten([][][]float64{ring})
	triangles := Triangulate(data, holeIndices, dim)

	assert.Len(t, triangles, 3*(len(ring)-2))
	assert.InDelta(t, 0, Deviation(data, holeIndices, dim, triangles), 1e-9)
}

func TestTriangulate_Star(t *testing.T) {
	ring := simpleStar(5, 5, 2)
	data, holeIndices, dim := Flatten([][][]float64{ring})
	triangles := Triangulate(data, holeIndices, dim)

	assert.Len(t, triangles, 3*(len(ring)-2))
	assert.InDelta(t, 0, Deviation(data, holeIndices, dim, triangles), 1e-9)

	path := filepath.Join(t.TempDir(), "star.png")
	require.NoError(t, DrawMesh(data, dim, triangles, 20, path, true, false))
}

// The indexed and plain ear tests must agree: same triangle set, possibly in
// a different order.
func TestTriangulate_IndexedMatchesPlain(t *testing.T) {
	ring := regularPolygon(100, 50)
	data, _, dim := Flatten([][][]float64{ring})
	require.Greater(t, len(data), indexThreshold*dim, "polygon must be past the index threshold")

	indexed := earcut(data, nil, dim, true)
	plain := earcut(data, nil, dim, false)

	assert.Equal(t, sortedTriples(plain), sortedTriples(indexed))
	assert.Len(t, indexed, 3*(100-2))
}

func TestTriangulate_LargeWithHole(t *testing.T) {
	// Past the threshold, with a hole, so the hashed ear test and hole
	// elimination run together.
	outer := regularPolygon(120, 50)
	hole := regularPolygon(16, 5)
	data, holeIndices, dim := Flatten([][][]float64{outer, hole})
	triangles := Triangulate(data, holeIndices, dim)

	assert.NotEmpty(t, triangles)
	assert.Zero(t, len(triangles)%3)
	assert.InDelta(t, 0, Deviation(data, holeIndices, dim, triangles), 1e-6)
}

// Helpers

func sortedTriples(triangles []int) [][3]int {
	triples := make([][3]int, 0, len(triangles)/3)
	for i := 0; i+2 < len(triangles); i += 3 {
		triples = append(triples, [3]int{triangles[i], triangles[i+1], triangles[i+2]})
	}
	sort.Slice(triples, func(i, j int) bool {
		a, b := triples[i], triples[j]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})
	return triples
}

func ringSize(tr *triangulator, start int32) int {
	n := 0
	p := start
	for {
		n++
		p = tr.vertices[p].next
		if p == start {
			return n
		}
	}
}

func ringArea(tr *triangulator, start int32) float64 {
	var sum float64
	p := start
	for {
		v := &tr.vertices[p]
		n := &tr.vertices[v.next]
		sum += (v.x - n.x) * (n.y + v.y)
		p = v.next
		if p == start {
			return sum
		}
	}
}
