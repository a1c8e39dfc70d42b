package navcam

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Bounds is an axis-aligned bounding box. The empty box (Max < Min on any
// axis) is the no-op sentinel for fit operations.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewEmptyBounds returns the inverted-extent empty box, ready to be grown
// with ExtendPoint.
func NewEmptyBounds() Bounds {
	inf := float32(math.Inf(1))
	return Bounds{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// BoundsFromPoints builds the tightest box containing all points. No points
// yields the empty box.
func BoundsFromPoints(points ...mgl32.Vec3) Bounds {
	b := NewEmptyBounds()
	for _, p := range points {
		b = b.ExtendPoint(p)
	}
	return b
}

func (b Bounds) IsEmpty() bool {
	return b.Max.X() < b.Min.X() || b.Max.Y() < b.Min.Y() || b.Max.Z() < b.Min.Z()
}

func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Radius is half the length of the 3D diagonal.
func (b Bounds) Radius() float32 {
	if b.IsEmpty() {
		return 0
	}
	return b.Size().Len() * 0.5
}

func (b Bounds) ExtendPoint(p mgl32.Vec3) Bounds {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
	return b
}

// Union returns the smallest box containing both operands.
func (b Bounds) Union(o Bounds) Bounds {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return b.ExtendPoint(o.Min).ExtendPoint(o.Max)
}
