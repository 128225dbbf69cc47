package earcut

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/osanai/earclip/internal/dbg"
)

// This is for debugging purposes only

const drawPadding = 20

// DrawMesh renders a triangulation to a PNG at path and, when cat is true,
// prints it to the terminal (iTerm only). labels gives every triangle a
// readable name so runs can be discussed without raw indices.
func DrawMesh(data []float64, dim int, triangles []int, scale float64, path string, labels, cat bool) error {
	if dim == 0 {
		dim = 3
	}
	if len(data) < 2*dim || len(triangles) == 0 {
		return errors.New("nothing to draw")
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := 0; i+1 < len(data); i += dim {
		minX = math.Min(minX, data[i])
		minY = math.Min(minY, data[i+1])
		maxX = math.Max(maxX, data[i])
		maxY = math.Max(maxY, data[i+1])
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for i := 0; i+2 < len(triangles); i += 3 {
		a := triangles[i] * dim
		b := triangles[i+1] * dim
		d := triangles[i+2] * dim
		c.MoveTo(data[a], data[a+1])
		c.LineTo(data[b], data[b+1])
		c.LineTo(data[d], data[d+1])
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	if labels {
		c.SetRGB(1, 1, 1)
		for i := 0; i+2 < len(triangles); i += 3 {
			a := triangles[i] * dim
			b := triangles[i+1] * dim
			d := triangles[i+2] * dim
			centerX := (data[a] + data[b] + data[d]) / 3
			centerY := (data[a+1] + data[b+1] + data[d+1]) / 3
			// Text has to be drawn at identity or it comes out mirrored
			centerX, centerY = c.TransformPoint(centerX, centerY)
			c.Push()
			c.Identity()
			c.DrawStringAnchored(dbg.Name(i/3), centerX, centerY, 0.5, 0.5)
			c.Pop()
		}
	}

	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving mesh image %q", path)
	}
	if cat {
		imgcat.CatFile(path, os.Stdout)
	}
	return nil
}
