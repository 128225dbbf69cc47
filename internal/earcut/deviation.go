package earcut

import "math"

// Post-hoc helpers. Neither is used by the triangulation itself; Deviation
// verifies a result and Flatten adapts nested ring arrays to the flat input
// form.

// Deviation returns the relative difference between the total area of the
// produced triangles and the ring area of the input (outer area minus hole
// areas). A good triangulation of well-formed input deviates by no more than
// float rounding.
func Deviation(data []float64, holeIndices []int, dim int, triangles []int) float64 {
	if dim == 0 {
		dim = 3
	}

	hasHoles := len(holeIndices) > 0
	outerLen := len(data)
	if hasHoles {
		outerLen = holeIndices[0] * dim
	}

	polygonArea := math.Abs(signedAreaRange(data, 0, outerLen, dim))
	if hasHoles {
		for k, holeIndex := range holeIndices {
			start := holeIndex * dim
			end := len(data)
			if k < len(holeIndices)-1 {
				end = holeIndices[k+1] * dim
			}
			polygonArea -= math.Abs(signedAreaRange(data, start, end, dim))
		}
	}

	var trianglesArea float64
	for i := 0; i+2 < len(triangles); i += 3 {
		a := triangles[i] * dim
		b := triangles[i+1] * dim
		c := triangles[i+2] * dim
		trianglesArea += math.Abs(
			(data[a]-data[c])*(data[b+1]-data[a+1]) -
				(data[a]-data[b])*(data[c+1]-data[a+1]))
	}

	if polygonArea == 0 && trianglesArea == 0 {
		return 0
	}
	return math.Abs((trianglesArea - polygonArea) / polygonArea)
}

// Flatten converts nested ring arrays (outer ring first, then holes, each a
// list of coordinate groups) into the flat data, holeIndices and dim that
// Triangulate consumes.
func Flatten(rings [][][]float64) ([]float64, []int, int) {
	dim := 2
	if len(rings) > 0 && len(rings[0]) > 0 {
		dim = len(rings[0][0])
	}

	var data []float64
	var holeIndices []int
	holeIndex := 0

	for k, ring := range rings {
		for _, point := range ring {
			for d := 0; d < dim; d++ {
				data = append(data, point[d])
			}
		}
		if k > 0 {
			holeIndex += len(rings[k-1])
			holeIndices = append(holeIndices, holeIndex)
		}
	}
	return data, holeIndices, dim
}
