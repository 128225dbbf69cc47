package earcut

import (
	"embed"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// This file parses the SVG fixtures into rings. This is not a full (or even
// correct) svg parser; it finds the first polygon element and converts its
// point list. Fixtures are available by name in the fixtures/ directory,
// sans extension. Winding doesn't matter: the ring builder normalizes it.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(name string) ([][]float64, error) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		return nil, errors.Wrapf(err, "opening fixture %q", name)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing fixture %q", name)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		return nil, errors.Errorf("expected one polygon in fixture %q, found %d", name, len(polygons))
	}

	var ring [][]float64
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		parts := strings.Split(pointString, ",")
		if len(parts) != 2 {
			return nil, errors.Errorf("invalid point string %q in fixture %q", pointString, name)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q in fixture %q", parts[0], name)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q in fixture %q", parts[1], name)
		}
		ring = append(ring, []float64{x, y})
	}
	return ring, nil
}

func mustFixture(t *testing.T, name string) [][]float64 {
	t.Helper()
	ring, err := loadFixture(name)
	require.NoError(t, err)
	return ring
}

// Some ad hoc code specified fixtures

func simpleStar(points int, outerRadius, innerRadius float64) [][]float64 {
	var ring [][]float64
	for i := 0; i < 2*points; i++ {
		radius := outerRadius
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / float64(2*points)
		ring = append(ring, []float64{radius * math.Cos(angle), radius * math.Sin(angle)})
	}
	return ring
}

func regularPolygon(n int, radius float64) [][]float64 {
	var ring [][]float64
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		ring = append(ring, []float64{radius * math.Cos(angle), radius * math.Sin(angle)})
	}
	return ring
}

func squareWithHole() [][][]float64 {
	outer := [][]float64{
		{0, 0}, {10, 0}, {10, 10}, {0, 10},
	}
	hole := [][]float64{
		{3, 3}, {3, 7}, {7, 7}, {7, 3},
	}
	return [][][]float64{outer, hole}
}

func squareWithTwoHoles() [][][]float64 {
	outer := [][]float64{
		{0, 0}, {20, 0}, {20, 10}, {0, 10},
	}
	left := [][]float64{
		{2, 3}, {2, 7}, {6, 7}, {6, 3},
	}
	// The right hole is offset vertically; aligned holes would put their
	// bridge seams on one line and filtering would thin them out.
	right := [][]float64{
		{12, 2}, {12, 6}, {16, 6}, {16, 2},
	}
	return [][][]float64{outer, left, right}
}
