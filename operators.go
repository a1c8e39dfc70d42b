package navcam

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// dollyEpsilon is the motion threshold below which a dolly is ignored, and
// ten times it is the closest the camera may approach the dolly anchor.
const dollyEpsilon = 1e-4

// PanRelative translates position and target together in camera-local axes.
// dx/dy are normalized screen deltas; atDistance picks the depth whose
// world-space frustum slice scales them. The view direction is preserved: a
// true pan, not an orbit.
func (n *Navigation) PanRelative(dx, dy, atDistance float32) {
	if n.camera == nil || !n.IsActionEnabled(ActionPan) {
		return
	}

	height := 2 * atDistance * tanHalfDeg(n.camera.Fov)
	if !n.camera.IsPerspective() {
		height = n.camera.OrthoScale
	}
	width := height * n.viewport.Aspect()

	offset := n.GetCameraRightVector(false).Mul(dx * width).
		Add(n.GetCameraUpVector().Mul(dy * height))

	n.camera.Position = n.camera.Position.Add(offset)
	n.camera.Target = n.camera.Target.Add(offset)
	n.flagDirty()
}

// DollyFromPoint moves the camera along the line from point to the current
// position by distance (positive away from the point). The remaining
// distance to the anchor is floored at ten times the dolly epsilon so the
// camera can never cross through it. Orthographic cameras additionally
// rescale the eye vector, since ortho zoom shows no perspective depth cue
// and must shrink the visible extent instead.
func (n *Navigation) DollyFromPoint(distance float32, point mgl32.Vec3) {
	if n.camera == nil || !n.IsActionEnabled(ActionZoom) {
		return
	}
	if float32(math.Abs(float64(distance))) <= dollyEpsilon {
		return
	}

	cam := n.camera
	toCamera := cam.Position.Sub(point)
	current := toCamera.Len()
	if current == 0 {
		// Camera sits exactly on the anchor; no line to move along.
		return
	}

	next := current + distance
	if next < 10*dollyEpsilon {
		next = 10 * dollyEpsilon
	}
	scale := next / current

	eye := n.GetEyeVector()
	cam.Position = point.Add(toCamera.Mul(scale))
	if !cam.IsPerspective() {
		eye = eye.Mul(scale)
		cam.OrthoScale *= scale
	}
	cam.Target = cam.Position.Add(eye)
	n.flagDirty()
}

// Dolly moves along the view axis toward the pivot when one is meaningful
// (or the dolly-toward-pivot option demands it), the target otherwise.
func (n *Navigation) Dolly(distance float32) {
	if n.camera == nil {
		return
	}
	if n.options.ReverseDolly {
		distance = -distance
	}
	anchor := n.camera.Target
	if n.options.DollyTowardPivot || n.options.AlwaysUsePivot || n.hasMeaningfulPivot() {
		if n.pivotSet {
			anchor = n.camera.Pivot
		}
	}
	n.DollyFromPoint(distance, anchor)
}

// SetVerticalFov clamps fov into the focal-length bounds and applies it.
// No-op for orthographic cameras. With adjustPosition the camera backs up or
// moves in so the world-space footprint at the pivot plane (visible pivot) or
// the look-at distance stays constant across the FOV change.
func (n *Navigation) SetVerticalFov(fovDegrees float32, adjustPosition bool) {
	if n.camera == nil || !n.camera.IsPerspective() {
		return
	}
	if fovDegrees < MinFov {
		fovDegrees = MinFov
	}
	if fovDegrees > MaxFov {
		fovDegrees = MaxFov
	}
	if !n.IsActionEnabled(ActionFov) {
		return
	}

	cam := n.camera
	oldFov := cam.Fov
	if adjustPosition && oldFov != fovDegrees && oldFov > 0 {
		usePivot := n.hasMeaningfulPivot()
		anchor := cam.Target
		if usePivot {
			anchor = cam.Pivot
		}

		fromAnchor := cam.Position.Sub(anchor)
		oldDist := fromAnchor.Len()
		if oldDist > 0 {
			ratio := tanHalfDeg(oldFov) / tanHalfDeg(fovDegrees)
			delta := fromAnchor.Normalize().Mul(oldDist*ratio - oldDist)
			cam.Position = cam.Position.Add(delta)
			if usePivot {
				cam.Target = cam.Target.Add(delta)
			}
		}
	}

	cam.Fov = fovDegrees
	n.flagDirty()
}

// OrbitRelative rotates the camera about its orbit center: yaw about the
// world up, pitch about the camera right axis. Degrees. The center is the
// pivot when one is meaningful or always-use-pivot is set, the target
// otherwise. The camera up is releveled against the world up afterwards.
func (n *Navigation) OrbitRelative(dYawDegrees, dPitchDegrees float32) {
	if n.camera == nil || !n.IsActionEnabled(ActionOrbit) {
		return
	}
	if n.is2D {
		n.Logger().Warnf("orbit is not available in 2D mode")
		return
	}

	if n.options.ReverseHorizontalLook {
		dYawDegrees = -dYawDegrees
	}
	if n.options.ReverseVerticalLook {
		dPitchDegrees = -dPitchDegrees
	}
	if n.options.LeftHandedInput {
		dYawDegrees = -dYawDegrees
	}

	cam := n.camera
	center := cam.Target
	if n.options.AlwaysUsePivot || n.hasMeaningfulPivot() {
		if n.pivotSet {
			center = cam.Pivot
		}
	}

	worldUp := cam.WorldUp
	if worldUp.Len() == 0 {
		worldUp = mgl32.Vec3{0, 1, 0}
	}
	worldUp = worldUp.Normalize()

	eye := cam.Position.Sub(center)
	if eye.Len() == 0 {
		return
	}

	if !n.options.OrbitPastPoles {
		dPitchDegrees = clampPolarDelta(eye, worldUp, dPitchDegrees)
	}

	right, _ := orthoBasis(eye.Mul(-1), worldUp)
	rot := mgl32.QuatRotate(mgl32.DegToRad(-dYawDegrees), worldUp).
		Mul(mgl32.QuatRotate(mgl32.DegToRad(-dPitchDegrees), right))

	cam.Position = center.Add(rot.Rotate(eye))
	cam.Target = center.Add(rot.Rotate(cam.Target.Sub(center)))
	cam.Up = ComputeOrthogonalUp(cam.Position, cam.Target, worldUp)
	n.flagDirty()
}

// poleMarginDegrees keeps orbits short of gimbal territory when orbiting
// past the poles is disabled.
const poleMarginDegrees = 1.0

// clampPolarDelta limits a pitch delta so the angle between the orbit radius
// and the world up stays inside [margin, 180-margin] degrees.
func clampPolarDelta(eye, worldUp mgl32.Vec3, dPitchDegrees float32) float32 {
	cosPolar := eye.Normalize().Dot(worldUp)
	if cosPolar > 1 {
		cosPolar = 1
	}
	if cosPolar < -1 {
		cosPolar = -1
	}
	polar := mgl32.RadToDeg(float32(math.Acos(float64(cosPolar))))

	// Pitching the camera up by d reduces the polar angle by d.
	next := polar - dPitchDegrees
	if next < poleMarginDegrees {
		return polar - poleMarginDegrees
	}
	if next > 180-poleMarginDegrees {
		return polar - (180 - poleMarginDegrees)
	}
	return dPitchDegrees
}

// Roll rotates the camera's local up about the view axis by angle radians.
func (n *Navigation) Roll(angleRadians float32) {
	if n.camera == nil || !n.IsActionEnabled(ActionRoll) {
		return
	}
	if n.is2D {
		n.Logger().Warnf("roll is not available in 2D mode")
		return
	}

	eye := n.GetEyeVector()
	if eye.Len() == 0 {
		return
	}
	axis := eye.Normalize()
	n.camera.Up = mgl32.QuatRotate(angleRadians, axis).Rotate(n.camera.Up).Normalize()
	n.flagDirty()
}

// WalkRelative translates position and target together along the camera
// basis: forward along the view direction, lateral along world-aligned
// right, vertical along the world up. The view direction is preserved.
func (n *Navigation) WalkRelative(forward, lateral, vertical float32) {
	if n.camera == nil || !n.IsActionEnabled(ActionWalk) {
		return
	}

	eye := safeView(n.GetEyeVector()).Normalize()
	right := n.GetCameraRightVector(true)
	worldUp := n.GetWorldUpVector()

	move := eye.Mul(forward).
		Add(right.Mul(lateral)).
		Add(worldUp.Mul(vertical))
	if move.Len() == 0 {
		return
	}

	n.camera.Position = n.camera.Position.Add(move)
	n.camera.Target = n.camera.Target.Add(move)
	n.flagDirty()
}
