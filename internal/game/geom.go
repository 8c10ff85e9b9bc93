package game

import "math"

// Vec2 is a point or direction in play-field space (pixels, y down).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Normalize returns v scaled to unit length. A zero vector is divided by a
// length of 1 instead, so the result is the zero vector rather than NaN.
func Normalize(v Vec2) Vec2 {
	l := v.Len()
	if l == 0 {
		l = 1
	}
	return Vec2{v.X / l, v.Y / l}
}

// Lerp returns the point a fraction t of the way from a to b.
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// PointSegmentDistance returns the minimum distance from p to the segment a-b.
// The projection parameter is clamped to [0,1]; a degenerate segment is
// treated as the point a.
func PointSegmentDistance(p, a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	if dx == 0 && dy == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (dx*dx + dy*dy)
	t = math.Max(0, math.Min(1, t))
	cx := a.X + t*dx
	cy := a.Y + t*dy
	return math.Hypot(p.X-cx, p.Y-cy)
}

// Rect is an axis-aligned box given by its top-left corner and size.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectAround returns a size x size box centred on c.
func RectAround(c Vec2, size float64) Rect {
	return Rect{X: c.X - size/2, Y: c.Y - size/2, W: size, H: size}
}

func (r Rect) Center() Vec2 { return Vec2{r.X + r.W/2, r.Y + r.H/2} }

// Overlaps reports whether two boxes share interior area. Boxes that only
// touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains reports whether o lies entirely inside r, edges included.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.X+o.W <= r.X+r.W && o.Y+o.H <= r.Y+r.H
}

// Clamp returns the box moved the minimum distance needed to lie inside
// bounds.
func (r Rect) Clamp(bounds Rect) Rect {
	if r.X < bounds.X {
		r.X = bounds.X
	}
	if r.Y < bounds.Y {
		r.Y = bounds.Y
	}
	if r.X+r.W > bounds.X+bounds.W {
		r.X = bounds.X + bounds.W - r.W
	}
	if r.Y+r.H > bounds.Y+bounds.H {
		r.Y = bounds.Y + bounds.H - r.H
	}
	return r
}
