package navcam

import (
	"github.com/go-gl/mathgl/mgl32"
)

// TransitionRequest is the stored destination view awaiting interpolation by
// the external transition driver. At most one is live; issuing a new request
// silently replaces any prior one.
type TransitionRequest struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3 // coi
	Fov      float32
	Up       mgl32.Vec3
	WorldUp  mgl32.Vec3
	Reorient bool
}

// SetRequestTransition records a destination view using the camera's current
// up and world up as the target orientation. A false state clears any
// pending request outright, regardless of locks.
func (n *Navigation) SetRequestTransition(state bool, position, coi mgl32.Vec3, fovDegrees float32) {
	if !state {
		n.request = nil
		return
	}
	if n.camera == nil || !n.IsActionEnabled(ActionGotoView) {
		return
	}
	n.request = &TransitionRequest{
		Position: position,
		Target:   coi,
		Fov:      fovDegrees,
		Up:       n.camera.Up,
		WorldUp:  n.camera.WorldUp,
	}
	n.notify(EventTransitionRequested)
}

// SetRequestTransitionWithUp records a destination view with an explicitly
// computed up/world-up pair, used after an orientation computation.
func (n *Navigation) SetRequestTransitionWithUp(state bool, position, coi mgl32.Vec3, fovDegrees float32, up, worldUp mgl32.Vec3) {
	if !state {
		n.request = nil
		return
	}
	if n.camera == nil || !n.IsActionEnabled(ActionGotoView) {
		return
	}
	n.request = &TransitionRequest{
		Position: position,
		Target:   coi,
		Fov:      fovDegrees,
		Up:       up,
		WorldUp:  worldUp,
		Reorient: true,
	}
	n.notify(EventTransitionRequested)
}

// GetRequestTransition returns the pending destination view, or nil when
// idle. The external driver polls this each frame and must clear it on
// arrival; a request left unconsumed stays pending indefinitely.
func (n *Navigation) GetRequestTransition() *TransitionRequest {
	return n.request
}

// ClearRequestTransition returns the request machine to idle.
func (n *Navigation) ClearRequestTransition() {
	n.request = nil
}

// SetTransitionActive is set by the external driver while an interpolation
// is animating; the engine only stores and reports it.
func (n *Navigation) SetTransitionActive(active bool) {
	n.transitionActive = active
}

// IsTransitionActive reports the driver-owned in-transition flag.
func (n *Navigation) IsTransitionActive() bool {
	return n.transitionActive
}
