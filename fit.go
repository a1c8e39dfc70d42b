package navcam

import (
	"github.com/go-gl/mathgl/mgl32"
)

// FitResult is the camera pose that frames a bounding volume.
type FitResult struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
}

// ComputeFit returns the position/target framing bounds at the given vertical
// FOV along the existing view direction. Empty bounds return the inputs
// unchanged; this is the no-op sentinel, not an error.
func (n *Navigation) ComputeFit(oldPos, oldCoi mgl32.Vec3, fovDegrees float32, bounds Bounds) FitResult {
	if bounds.IsEmpty() {
		return FitResult{Position: oldPos, Target: oldCoi}
	}

	target := bounds.Center()

	radius := bounds.Radius()
	if radius == 0 {
		// Point bounds still deserve a finite viewing distance.
		radius = 1.0
	}

	perspective := n.camera == nil || n.camera.IsPerspective()
	if !n.is2D && perspective {
		// Wide angles tighten the apparent framing; inflate to compensate.
		fudge := 0.9 + fovDegrees/MaxFov*0.5
		if fudge < 1.0 {
			fudge = 1.0
		}
		radius *= fudge
	}

	distance := DistanceToFit(radius, fovDegrees)

	dir := oldPos.Sub(oldCoi)
	if dir.Len() == 0 {
		dir = mgl32.Vec3{0, 0, 1}
	} else {
		dir = dir.Normalize()
	}

	return FitResult{
		Position: target.Add(dir.Mul(distance)),
		Target:   target,
	}
}

// FitBounds frames the bounding volume, either immediately or by issuing a
// transition request for the external driver. When reorient is set the camera
// up is recomputed orthogonal to the new view and aligned with the world up.
// Always repoints the pivot at the new target as a side effect.
func (n *Navigation) FitBounds(immediate bool, bounds Bounds, reorient bool) {
	if n.camera == nil || bounds.IsEmpty() || !n.IsActionEnabled(ActionGotoView) {
		return
	}

	cam := n.camera
	fit := n.ComputeFit(cam.Position, cam.Target, cam.Fov, bounds)

	up := cam.Up
	if reorient {
		up = ComputeOrthogonalUp(fit.Position, fit.Target, cam.WorldUp)
	}

	if immediate {
		cam.Position = fit.Position
		cam.Target = fit.Target
		cam.Up = up
		n.flagDirty()
	} else if reorient {
		n.SetRequestTransitionWithUp(true, fit.Position, fit.Target, cam.Fov, up, cam.WorldUp)
	} else {
		n.SetRequestTransition(true, fit.Position, fit.Target, cam.Fov)
	}

	cam.Pivot = fit.Target
	n.pivotSet = true
}

// FitBoundsImmediate is FitBounds without the transition handshake.
func (n *Navigation) FitBoundsImmediate(bounds Bounds, reorient bool) {
	n.FitBounds(true, bounds, reorient)
}

// DistanceToFit returns the eye distance at which a sphere of the given
// radius fills the vertical FOV. A degenerate angle is perturbed so the
// distance stays finite.
func DistanceToFit(radius, fovDegrees float32) float32 {
	tanHalf := tanHalfDeg(fovDegrees)
	if tanHalf == 0 {
		tanHalf = perturbEpsilon
	}
	return radius / tanHalf
}
