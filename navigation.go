package navcam

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// EventKind identifies what a listener is being notified about.
type EventKind int

const (
	EventCameraChanged EventKind = iota
	EventTransitionRequested
)

// ListenerId is the registration handle returned by AddListener.
type ListenerId string

// Listener receives navigation events. Callbacks run synchronously on the
// mutating call; they must not mutate the engine re-entrantly.
type Listener func(kind EventKind)

// Navigation owns the camera navigation state for one viewer: the installed
// camera, viewport, option and lock tables, pivot flag and the pending
// transition request. All methods are single-threaded; the embedding
// application orders navigation mutations before the per-frame render read.
type Navigation struct {
	camera   *Camera
	viewport Viewport

	options NavigationOptions
	locks   LockSettings
	logger  Logger

	is2D     bool
	pivotSet bool

	dirty     bool
	listeners map[ListenerId]Listener

	request          *TransitionRequest
	transitionActive bool
}

// NewNavigation builds an engine with default options and a nop logger.
// A nil camera is allowed; every mutator is a silent no-op until one is
// installed.
func NewNavigation(camera *Camera) *Navigation {
	n := &Navigation{
		options:   DefaultNavigationOptions(),
		logger:    NewNopLogger(),
		listeners: make(map[ListenerId]Listener),
	}
	n.SetCamera(camera)
	return n
}

// Logger returns the configured log sink, never nil.
func (n *Navigation) Logger() Logger {
	if n.logger == nil {
		return NewNopLogger()
	}
	return n.logger
}

func (n *Navigation) SetLogger(l Logger) {
	if l == nil {
		l = NewNopLogger()
	}
	n.logger = l
}

// SetCamera installs a new camera, capturing its current up vector as the
// initial world up. Passing nil uninstalls and is idempotent.
func (n *Navigation) SetCamera(camera *Camera) {
	n.camera = camera
	if camera == nil {
		return
	}
	if camera.Up.Len() == 0 {
		camera.Up = mgl32.Vec3{0, 1, 0}
	}
	camera.WorldUp = camera.Up
	n.flagDirty()
}

func (n *Navigation) Camera() *Camera { return n.camera }

// SetViewport installs the screen rectangle; invoked by the embedder on
// resize.
func (n *Navigation) SetViewport(v Viewport) {
	n.viewport = v
	n.flagDirty()
}

func (n *Navigation) Viewport() Viewport { return n.viewport }

// Set2DMode switches the engine between 3D and 2D navigation semantics.
func (n *Navigation) Set2DMode(is2D bool) { n.is2D = is2D }

func (n *Navigation) Is2D() bool { return n.is2D }

// SetView moves both ends of the view in one mutation.
func (n *Navigation) SetView(position, target mgl32.Vec3) {
	if n.camera == nil {
		return
	}
	n.camera.Position = position
	n.camera.Target = target
	n.flagDirty()
}

func (n *Navigation) SetPosition(position mgl32.Vec3) {
	if n.camera == nil {
		return
	}
	n.camera.Position = position
	n.flagDirty()
}

func (n *Navigation) SetTarget(target mgl32.Vec3) {
	if n.camera == nil {
		return
	}
	n.camera.Target = target
	n.flagDirty()
}

// SetPivotPoint installs the orbit/zoom anchor and marks it meaningful.
func (n *Navigation) SetPivotPoint(pivot mgl32.Vec3) {
	if n.camera == nil {
		return
	}
	n.camera.Pivot = pivot
	n.pivotSet = true
	n.flagDirty()
}

func (n *Navigation) GetPosition() mgl32.Vec3 {
	if n.camera == nil {
		return mgl32.Vec3{}
	}
	return n.camera.Position
}

func (n *Navigation) GetTarget() mgl32.Vec3 {
	if n.camera == nil {
		return mgl32.Vec3{}
	}
	return n.camera.Target
}

func (n *Navigation) GetPivotPoint() mgl32.Vec3 {
	if n.camera == nil {
		return mgl32.Vec3{}
	}
	return n.camera.Pivot
}

func (n *Navigation) SetPivotSet(set bool) { n.pivotSet = set }

func (n *Navigation) IsPivotSet() bool { return n.pivotSet }

// GetEyeVector returns target minus position, unnormalized so its length is
// the view distance. Recomputed on every call; callers must not cache it
// across mutations.
func (n *Navigation) GetEyeVector() mgl32.Vec3 {
	if n.camera == nil {
		return mgl32.Vec3{}
	}
	return n.camera.Target.Sub(n.camera.Position)
}

// GetCameraRightVector returns the screen-right axis, derived from the world
// up when worldAligned is set, the camera's local up otherwise.
func (n *Navigation) GetCameraRightVector(worldAligned bool) mgl32.Vec3 {
	if n.camera == nil {
		return mgl32.Vec3{1, 0, 0}
	}
	up := n.camera.Up
	if worldAligned {
		up = n.camera.WorldUp
	}
	right, _ := orthoBasis(n.GetEyeVector(), up)
	return right
}

// GetCameraUpVector returns the screen-up axis orthogonal to the view
// direction.
func (n *Navigation) GetCameraUpVector() mgl32.Vec3 {
	if n.camera == nil {
		return mgl32.Vec3{0, 1, 0}
	}
	_, up := orthoBasis(n.GetEyeVector(), n.camera.Up)
	return up
}

// GetAlignedUpVector returns the screen-up axis re-derived from the world up
// instead of the camera's instantaneous local up.
func (n *Navigation) GetAlignedUpVector() mgl32.Vec3 {
	if n.camera == nil {
		return mgl32.Vec3{0, 1, 0}
	}
	_, up := orthoBasis(n.GetEyeVector(), n.camera.WorldUp)
	return up
}

// GetWorldRightVector derives a horizon-parallel right axis purely from the
// world up.
func (n *Navigation) GetWorldRightVector() mgl32.Vec3 {
	if n.camera == nil {
		return mgl32.Vec3{1, 0, 0}
	}
	return WorldRightFromUp(n.camera.WorldUp)
}

// GetWorldUpVector reports the reference vertical.
func (n *Navigation) GetWorldUpVector() mgl32.Vec3 {
	if n.camera == nil {
		return mgl32.Vec3{0, 1, 0}
	}
	return n.camera.WorldUp
}

// SetWorldUpVector installs a new reference vertical and levels the camera
// up against it. Gated by the roll action.
func (n *Navigation) SetWorldUpVector(up mgl32.Vec3) {
	if n.camera == nil || up.Len() == 0 || !n.IsActionEnabled(ActionRoll) {
		return
	}
	n.camera.WorldUp = up.Normalize()
	n.camera.Up = ComputeOrthogonalUp(n.camera.Position, n.camera.Target, n.camera.WorldUp)
	n.flagDirty()
}

// SetCameraUpVector replaces the camera's local up, orthogonalized against
// the current view direction. Gated by the roll action.
func (n *Navigation) SetCameraUpVector(up mgl32.Vec3) {
	if n.camera == nil || up.Len() == 0 || !n.IsActionEnabled(ActionRoll) {
		return
	}
	_, ortho := orthoBasis(n.GetEyeVector(), up)
	n.camera.Up = ortho
	n.flagDirty()
}

// IsActionEnabled is the permission gate every mutating operation consults:
// true unless navigation is globally locked without a per-action exception.
// This is a UX soft-lock, not a security boundary.
func (n *Navigation) IsActionEnabled(a Action) bool {
	return !n.options.NavigationLocked || n.locks.enabled(a)
}

func (n *Navigation) SetIsLocked(locked bool) { n.options.NavigationLocked = locked }

func (n *Navigation) IsLocked() bool { return n.options.NavigationLocked }

// SetLockSettings replaces the whole per-action override table.
func (n *Navigation) SetLockSettings(s LockSettings) { n.locks = s }

func (n *Navigation) LockSettings() LockSettings { return n.locks }

// SetActionLock toggles a single action's remains-enabled-while-locked flag.
func (n *Navigation) SetActionLock(a Action, enabled bool) {
	switch a {
	case ActionOrbit:
		n.locks.Orbit = enabled
	case ActionPan:
		n.locks.Pan = enabled
	case ActionZoom:
		n.locks.Zoom = enabled
	case ActionRoll:
		n.locks.Roll = enabled
	case ActionFov:
		n.locks.Fov = enabled
	case ActionGotoView:
		n.locks.GotoView = enabled
	case ActionWalk:
		n.locks.Walk = enabled
	}
}

func (n *Navigation) Options() NavigationOptions { return n.options }

func (n *Navigation) SetDollyTowardPivot(enabled bool) { n.options.DollyTowardPivot = enabled }

func (n *Navigation) SetReverseDolly(enabled bool) { n.options.ReverseDolly = enabled }

func (n *Navigation) SetLeftHandedInput(enabled bool) { n.options.LeftHandedInput = enabled }

func (n *Navigation) SetUsePivotAlways(enabled bool) { n.options.AlwaysUsePivot = enabled }

// SetOrbitPastPoles is inapplicable in 2D mode: the mutation is skipped and
// an advisory warning emitted.
func (n *Navigation) SetOrbitPastPoles(enabled bool) {
	if n.is2D {
		n.Logger().Warnf("orbit past poles has no effect in 2D mode")
		return
	}
	n.options.OrbitPastPoles = enabled
}

func (n *Navigation) GetOrbitPastPoles() bool { return n.options.OrbitPastPoles }

// SetReverseHorizontalLookDirection is inapplicable in 2D mode.
func (n *Navigation) SetReverseHorizontalLookDirection(enabled bool) {
	if n.is2D {
		n.Logger().Warnf("reverse horizontal look has no effect in 2D mode")
		return
	}
	n.options.ReverseHorizontalLook = enabled
}

// SetReverseVerticalLookDirection is inapplicable in 2D mode.
func (n *Navigation) SetReverseVerticalLookDirection(enabled bool) {
	if n.is2D {
		n.Logger().Warnf("reverse vertical look has no effect in 2D mode")
		return
	}
	n.options.ReverseVerticalLook = enabled
}

// IsPointVisible reports whether a world point lies inside the current view
// frustum.
func (n *Navigation) IsPointVisible(point mgl32.Vec3) bool {
	if n.camera == nil {
		return false
	}
	vp := n.camera.ViewProjection(n.viewport.Aspect())
	p := vp.Mul4x1(point.Vec4(1))
	if p.W() <= 0 {
		return false
	}
	x, y, z := p.X()/p.W(), p.Y()/p.W(), p.Z()/p.W()
	if math.IsNaN(float64(x)) || math.IsNaN(float64(y)) || math.IsNaN(float64(z)) {
		return false
	}
	return x >= -1 && x <= 1 && y >= -1 && y <= 1 && z >= -1 && z <= 1
}

// hasMeaningfulPivot is the guard for pivot-anchored operations: the pivot
// must be explicitly set and either visible (perspective) or in 2D mode.
func (n *Navigation) hasMeaningfulPivot() bool {
	if n.camera == nil || !n.pivotSet {
		return false
	}
	if n.is2D {
		return true
	}
	return n.IsPointVisible(n.camera.Pivot)
}

// AddListener registers a callback for navigation events and returns its
// removal handle.
func (n *Navigation) AddListener(fn Listener) ListenerId {
	id := ListenerId(uuid.NewString())
	n.listeners[id] = fn
	return id
}

func (n *Navigation) RemoveListener(id ListenerId) {
	delete(n.listeners, id)
}

// IsDirty reports whether camera state changed since the last ClearDirty.
// The render loop clears it after consuming the frame.
func (n *Navigation) IsDirty() bool { return n.dirty }

func (n *Navigation) ClearDirty() { n.dirty = false }

func (n *Navigation) flagDirty() {
	n.dirty = true
	n.notify(EventCameraChanged)
}

func (n *Navigation) notify(kind EventKind) {
	for _, fn := range n.listeners {
		fn(kind)
	}
}
