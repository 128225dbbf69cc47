package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osanai/earclip"
	"github.com/osanai/earclip/internal/earcut"
)

// Demo of triangulation. Input on stdin should be newline separated points
// in the form "x y", with each ring separated by an extra newline. The first
// ring is the outer boundary; any further rings are holes. Rings may wind
// either way, and none of this is validated.
var (
	render = kingpin.Flag("render", "Render the mesh to a PNG and print it to the terminal (iTerm only).").Bool()
	out    = kingpin.Flag("out", "Path for the rendered PNG.").Default("/tmp/earclip.png").String()
	scale  = kingpin.Flag("scale", "Pixels per input unit when rendering.").Default("50").Float64()
	labels = kingpin.Flag("labels", "Label each rendered triangle with a readable name.").Bool()
)

func main() {
	kingpin.Parse()

	rings, err := readRings(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}
	if len(rings) == 0 {
		fmt.Fprintln(os.Stderr, aurora.Red("no rings on stdin"))
		os.Exit(1)
	}

	data, holeIndices, dim := earclip.Flatten(rings)
	triangles := earclip.Triangulate(data, holeIndices, dim)
	deviation := earclip.Deviation(data, holeIndices, dim, triangles)

	fmt.Printf("%d rings, %d vertices -> %s triangles\n",
		len(rings), len(data)/dim, aurora.Cyan(strconv.Itoa(len(triangles)/3)))
	if deviation < 1e-6 {
		fmt.Printf("area deviation %s\n", aurora.Green(fmt.Sprintf("%.3g", deviation)))
	} else {
		fmt.Printf("area deviation %s\n", aurora.Yellow(fmt.Sprintf("%.3g", deviation)))
	}

	if *render {
		if err := earcut.DrawMesh(data, dim, triangles, *scale, *out, *labels, true); err != nil {
			fmt.Fprintln(os.Stderr, aurora.Red(err))
			os.Exit(1)
		}
	}
}

func readRings(in *os.File) ([][][]float64, error) {
	rings := [][][]float64{}
	ring := [][]float64{}

	// Scan lines
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()

		// If it's empty and we collected any points, this is the end of the ring
		if strings.TrimSpace(line) == "" {
			if len(ring) > 0 {
				rings = append(rings, ring)
				ring = [][]float64{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, err
		}
		ring = append(ring, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading stdin")
	}

	// Handle a trailing ring if any
	if len(ring) > 0 {
		rings = append(rings, ring)
	}
	return rings, nil
}

func parsePoint(line string) ([]float64, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return nil, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "bad x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "bad y value %q", parts[1])
	}
	return []float64{x, y}, nil
}
