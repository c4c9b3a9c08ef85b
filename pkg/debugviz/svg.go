package debugviz

import (
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/kachkov98/gotriangles/pkg/geom"
)

const (
	canvasSize = 400
	scale      = 15.0
)

// RenderCoplanarCase draws a and b's projected triangles onto an SVG
// canvas, with any edges reported in crossings highlighted. Coordinates
// are the ones geom's coplanar fallback already computed; this function
// performs no geometry of its own beyond centering and scaling for
// display.
func RenderCoplanarCase(w io.Writer, a, b geom.Triangle2D, crossings []geom.Edge2D) {
	canvas := svg.New(w)
	canvas.Start(canvasSize, canvasSize)
	defer canvas.End()

	canvas.Rect(0, 0, canvasSize, canvasSize, "fill:white")
	drawTriangle(canvas, a, "fill:none;stroke:blue;stroke-width:2")
	drawTriangle(canvas, b, "fill:none;stroke:red;stroke-width:2")
	for _, e := range crossings {
		x1, y1 := toCanvas(e.A)
		x2, y2 := toCanvas(e.B)
		canvas.Line(x1, y1, x2, y2, "stroke:limegreen;stroke-width:3")
	}
}

func drawTriangle(canvas *svg.SVG, t geom.Triangle2D, style string) {
	xs := make([]int, 3)
	ys := make([]int, 3)
	for i, p := range t.P {
		xs[i], ys[i] = toCanvas(p)
	}
	canvas.Polygon(xs, ys, style)
}

func toCanvas(p geom.Vec2) (x, y int) {
	x = canvasSize/2 + int(p.X*scale)
	y = canvasSize/2 - int(p.Y*scale)
	return x, y
}
