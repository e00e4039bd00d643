package render

import (
	"image"
	"image/draw"
	"math"

	"github.com/blueputty01/swiftnotes/pkg/ink"

	"golang.org/x/image/vector"
)

type vec struct {
	X, Y float64
}

// number of vertices used to approximate the round cap at every point
const capSegments = 16

func (r *Renderer) paint(dst *image.RGBA, strokes []ink.Stroke) {
	bounds := dst.Bounds()

	scale := r.Scale

	if scale <= 0 {
		scale = 1
	}

	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())

	for _, s := range strokes {
		if !s.Tool.Inks() || len(s.Points) == 0 {
			continue
		}

		width := s.Tool.Width

		if width <= 0 {
			width = DefaultStrokeWidth
		}

		half := width * scale / 2

		z.Reset(bounds.Dx(), bounds.Dy())
		z.DrawOp = draw.Over

		var prev vec

		for i, p := range s.Points {
			cur := vec{p.X * scale, p.Y * scale}

			addPolygon(z, bounds, disc(cur, half))

			if i > 0 {
				addPolygon(z, bounds, segment(prev, cur, half))
			}

			prev = cur
		}

		z.Draw(dst, bounds, image.NewUniform(s.Tool.Color), image.Point{})
	}
}

func disc(c vec, radius float64) []vec {
	pts := make([]vec, capSegments)

	for i := range pts {
		a := 2 * math.Pi * float64(i) / capSegments
		pts[i] = vec{c.X + radius*math.Cos(a), c.Y + radius*math.Sin(a)}
	}

	return pts
}

func segment(a, b vec, half float64) []vec {
	dx, dy := b.X-a.X, b.Y-a.Y

	length := math.Hypot(dx, dy)

	if length == 0 {
		return nil
	}

	nx, ny := -dy/length*half, dx/length*half

	return []vec{
		{a.X + nx, a.Y + ny},
		{b.X + nx, b.Y + ny},
		{b.X - nx, b.Y - ny},
		{a.X - nx, a.Y - ny},
	}
}

// addPolygon clips a convex polygon to the canvas and adds it to the path
// with a consistent winding, so that overlapping pieces of the same stroke
// accumulate instead of cancelling out.
func addPolygon(z *vector.Rasterizer, bounds image.Rectangle, pts []vec) {
	pts = clip(pts, bounds)

	if len(pts) < 3 {
		return
	}

	if area(pts) < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}

	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))

	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}

	z.ClosePath()
}

func area(pts []vec) float64 {
	var sum float64

	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		sum += a.X*b.Y - b.X*a.Y
	}

	return sum / 2
}

// clip is Sutherland-Hodgman against the four canvas edges.
func clip(pts []vec, bounds image.Rectangle) []vec {
	minX, minY := float64(bounds.Min.X), float64(bounds.Min.Y)
	maxX, maxY := float64(bounds.Max.X), float64(bounds.Max.Y)

	edges := []struct {
		inside    func(vec) bool
		intersect func(a, b vec) vec
	}{
		{
			func(p vec) bool { return p.X >= minX },
			func(a, b vec) vec { return vec{minX, a.Y + (b.Y-a.Y)*(minX-a.X)/(b.X-a.X)} },
		},
		{
			func(p vec) bool { return p.X <= maxX },
			func(a, b vec) vec { return vec{maxX, a.Y + (b.Y-a.Y)*(maxX-a.X)/(b.X-a.X)} },
		},
		{
			func(p vec) bool { return p.Y >= minY },
			func(a, b vec) vec { return vec{a.X + (b.X-a.X)*(minY-a.Y)/(b.Y-a.Y), minY} },
		},
		{
			func(p vec) bool { return p.Y <= maxY },
			func(a, b vec) vec { return vec{a.X + (b.X-a.X)*(maxY-a.Y)/(b.Y-a.Y), maxY} },
		},
	}

	for _, e := range edges {
		if len(pts) == 0 {
			return nil
		}

		var out []vec

		prev := pts[len(pts)-1]

		for _, cur := range pts {
			switch {
			case e.inside(cur):
				if !e.inside(prev) {
					out = append(out, e.intersect(prev, cur))
				}

				out = append(out, cur)

			case e.inside(prev):
				out = append(out, e.intersect(prev, cur))
			}

			prev = cur
		}

		pts = out
	}

	return pts
}
