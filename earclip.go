// A fast ear-clipping triangulation package for Go.
//
// This package converts a simple polygon, which may be non-convex and may
// contain holes, into a flat list of triangle vertex indices suitable for
// rasterization or mesh rendering. It is a port of the earcut algorithm:
// ear clipping with z-order hashing on large inputs, local
// self-intersection curing and polygon bisection as fallbacks.
package earclip

import "github.com/osanai/earclip/internal/earcut"

// Take a flat array of vertex coordinate groups and convert it into
// triangles.
//
// data holds the outer ring followed by each hole ring, concatenated.
// holeIndices gives the coordinate-group index where each hole starts, in
// order; holes are contiguous and the last one runs to the end of data. dim
// is the number of coordinates per vertex (0 means the default of 3); only
// the first two are used geometrically.
//
// The result is coordinate-group index triples, one triple per triangle.
// Input is not validated: a polygon that is self-intersecting or wound
// inconsistently still terminates, but may triangulate imperfectly.
// Degenerate input yields an empty slice, never an error.
func Triangulate(data []float64, holeIndices []int, dim int) (triangles []int) {
	defer func() {
		// Malformed input (truncated coordinate groups, hole indices out of
		// range) degrades to an empty triangulation rather than a panic.
		if recover() != nil {
			triangles = []int{}
		}
	}()
	return earcut.Triangulate(data, holeIndices, dim)
}

// Deviation measures how far the summed triangle area of a triangulation
// drifts from the input's ring area. 0 means an exact cover; use it to
// verify results. See the earcut package for details.
func Deviation(data []float64, holeIndices []int, dim int, triangles []int) float64 {
	return earcut.Deviation(data, holeIndices, dim, triangles)
}

// Flatten converts nested ring arrays (outer ring first, then holes) into
// the flat form Triangulate consumes.
func Flatten(rings [][][]float64) (data []float64, holeIndices []int, dim int) {
	return earcut.Flatten(rings)
}
