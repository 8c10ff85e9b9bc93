package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointSegmentDistance_ClampsToEndpoints(t *testing.T) {
	a, b := Vec2{0, 0}, Vec2{10, 0}
	assert.InDelta(t, 3.0, PointSegmentDistance(Vec2{5, 3}, a, b), 1e-9)
	assert.InDelta(t, 5.0, PointSegmentDistance(Vec2{-3, 4}, a, b), 1e-9, "before a measures to a")
	assert.InDelta(t, 5.0, PointSegmentDistance(Vec2{13, 4}, a, b), 1e-9, "past b measures to b")
}

func TestPointSegmentDistance_DegenerateSegment(t *testing.T) {
	p := Vec2{3, 4}
	assert.InDelta(t, 5.0, PointSegmentDistance(p, Vec2{}, Vec2{}), 1e-9)
}

func TestNormalize_ZeroVectorStaysZero(t *testing.T) {
	n := Normalize(Vec2{})
	assert.Equal(t, Vec2{}, n)
	assert.False(t, math.IsNaN(n.X))

	u := Normalize(Vec2{3, 4})
	assert.InDelta(t, 1.0, u.Len(), 1e-9)
}

func TestRect_OverlapsExcludesTouchingEdges(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, a.Overlaps(Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 10, H: 10}))
	assert.False(t, a.Overlaps(Rect{X: 0, Y: 20, W: 10, H: 10}))
}

func TestRect_ClampKeepsBoxInside(t *testing.T) {
	field := Rect{W: 100, H: 100}
	r := Rect{X: -5, Y: 95, W: 10, H: 10}.Clamp(field)
	assert.Equal(t, Rect{X: 0, Y: 90, W: 10, H: 10}, r)
}

func TestRect_ContainsIncludesEdges(t *testing.T) {
	outer := Rect{X: 0, Y: 0, W: 30, H: 30}
	assert.True(t, outer.Contains(Rect{X: 5, Y: 5, W: 20, H: 20}))
	assert.True(t, outer.Contains(outer))
	assert.False(t, outer.Contains(Rect{X: 15, Y: 15, W: 20, H: 20}))
	assert.True(t, outer.Overlaps(Rect{X: 5, Y: 5, W: 20, H: 20}), "a contained box also overlaps")
}
