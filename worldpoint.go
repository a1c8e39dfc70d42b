package navcam

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// GetWorldPoint unprojects a screen-normalized coordinate (x,y in [0,1],
// origin top-left) to a world-space point. The ray is intersected with the
// plane through the pivot perpendicular to the view direction when a
// meaningful pivot exists; otherwise a fixed fallback distance is used.
func (n *Navigation) GetWorldPoint(x, y float32) mgl32.Vec3 {
	cam := n.camera
	if cam == nil {
		return mgl32.Vec3{}
	}

	ndcX := 2*x - 1
	ndcY := 1 - 2*y

	dir, ok := n.unprojectDirection(ndcX, ndcY)
	if !ok {
		dir = n.fallbackDirection(ndcX, ndcY)
	}

	viewDir := safeView(n.GetEyeVector()).Normalize()

	var distance float32
	if n.hasMeaningfulPivot() {
		toPivot := cam.Pivot.Sub(cam.Position)
		denom := dir.Dot(viewDir)
		if float32(math.Abs(float64(denom))) < perturbEpsilon {
			// Ray parallel to the pivot plane.
			distance = toPivot.Len()
		} else {
			distance = toPivot.Dot(viewDir) / denom
		}
	} else if cam.IsPerspective() {
		// Crude but load-bearing: downstream callers depend on this value.
		distance = (cam.Near + cam.Far) * 0.5
	} else {
		distance = cam.OrthoScale
	}

	return cam.Position.Add(dir.Mul(distance))
}

// unprojectDirection runs the NDC point through the inverse view-projection.
// Reports false for orthographic cameras and for invalid (NaN or zero-w)
// results, which route to the frustum-extent fallback.
func (n *Navigation) unprojectDirection(ndcX, ndcY float32) (mgl32.Vec3, bool) {
	cam := n.camera
	if !cam.IsPerspective() {
		return mgl32.Vec3{}, false
	}

	inv := cam.ViewProjection(n.viewport.Aspect()).Inv()
	p := inv.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1, 1})
	if p.W() == 0 {
		return mgl32.Vec3{}, false
	}

	world := p.Vec3().Mul(1 / p.W())
	if isNaNVec(world) {
		return mgl32.Vec3{}, false
	}

	dir := world.Sub(cam.Position)
	if dir.Len() == 0 {
		return mgl32.Vec3{}, false
	}
	return dir.Normalize(), true
}

// fallbackDirection builds the pick ray from the camera-local axes scaled by
// half the frustum extent at the current view distance.
func (n *Navigation) fallbackDirection(ndcX, ndcY float32) mgl32.Vec3 {
	cam := n.camera
	eye := safeView(n.GetEyeVector())
	viewDist := eye.Len()

	halfHeight := viewDist * tanHalfDeg(cam.Fov)
	if !cam.IsPerspective() {
		halfHeight = cam.OrthoScale * 0.5
	}
	halfWidth := halfHeight * n.viewport.Aspect()

	dir := eye.Normalize().Mul(viewDist).
		Add(n.GetCameraRightVector(false).Mul(ndcX * halfWidth)).
		Add(n.GetCameraUpVector().Mul(ndcY * halfHeight))
	if dir.Len() == 0 {
		return safeView(mgl32.Vec3{})
	}
	return dir.Normalize()
}
