package systems

import (
	"math"

	"github.com/automoto/doomerang-hud/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Edge is the screen edge a damage indicator strip is drawn along.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	}
	return "unknown"
}

// Indicator is one damage indicator strip. X, Y is the rotation origin and
// Rotation is clockwise degrees; the texture's top edge lies on the screen edge.
type Indicator struct {
	Edge     Edge
	X, Y     float64
	W, H     float64
	Rotation float64
	Weight   float64 // how strongly the damage came from this edge, 0..1
}

var easeByName = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"in_quad":     ease.InQuad,
	"out_quad":    ease.OutQuad,
	"in_out_quad": ease.InOutQuad,
	"in_cubic":    ease.InCubic,
	"out_cubic":   ease.OutCubic,
	"out_expo":    ease.OutExpo,
}

// EaseByName returns the named gween easing function.
func EaseByName(name string) (ease.TweenFunc, bool) {
	fn, ok := easeByName[name]
	return fn, ok
}

// FadeAlpha returns how visible an indicator is elapsed seconds after the
// damage. It is false once elapsed exceeds fadeTime.
func FadeAlpha(elapsed, fadeTime float64, fn ease.TweenFunc) (float64, bool) {
	if fadeTime <= 0 || elapsed > fadeTime {
		return 0, false
	}
	if elapsed < 0 {
		elapsed = 0
	}
	if fn == nil {
		fn = ease.Linear
	}
	tw := gween.New(1, 0, float32(fadeTime), fn)
	v, _ := tw.Set(float32(elapsed))
	return mgl64.Clamp(float64(v), 0, 1), true
}

// EdgeWeights folds a projected damage location onto the four screen edges.
// A point behind the camera is mirrored so that damage from behind-left
// lights the left edge. World damage has no direction and lights every edge.
func EdgeWeights(p components.Projection, width, height float64, causedByWorld bool) (left, right, top, bottom float64) {
	if causedByWorld {
		return 1, 1, 1, 1
	}
	if width <= 0 || height <= 0 {
		return 0, 0, 0, 0
	}

	halfX := width * .5
	halfY := height * .5

	x := mgl64.Clamp(p.X, 0, width)
	y := mgl64.Clamp(p.Y, 0, height)

	facing := p.Depth > 0
	if !facing {
		x -= width
		y -= height
	}

	x = math.Abs(x)
	y = math.Abs(y)

	left = 1 - mgl64.Clamp(x, 0, halfX)/halfX
	right = (mgl64.Clamp(x, halfX, width) - halfX) / halfX
	top = 1 - mgl64.Clamp(y, 0, halfY)/halfY
	bottom = (mgl64.Clamp(y, halfY, height) - halfY) / halfY
	return left, right, top, bottom
}

// LayoutIndicators places the four strips on a width x height canvas. size is
// the strip thickness as a fraction of the canvas width (X) and height (Y).
func LayoutIndicators(p components.Projection, width, height int, size mgl64.Vec2, causedByWorld bool) [4]Indicator {
	w, h := float64(width), float64(height)
	left, right, top, bottom := EdgeWeights(p, w, h, causedByWorld)

	side := w * size.X()
	band := h * size.Y()

	return [4]Indicator{
		{Edge: EdgeLeft, X: 0, Y: h, W: h, H: side, Rotation: 270, Weight: left},
		{Edge: EdgeRight, X: w, Y: 0, W: h, H: side, Rotation: 90, Weight: right},
		{Edge: EdgeTop, X: 0, Y: 0, W: w, H: band, Rotation: 0, Weight: top},
		{Edge: EdgeBottom, X: w, Y: h, W: w, H: band, Rotation: 180, Weight: bottom},
	}
}
