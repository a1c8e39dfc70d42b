package navcam

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// recordLogger captures warnings for assertions.
type recordLogger struct {
	warnings []string
}

func (r *recordLogger) DebugEnabled() bool                { return false }
func (r *recordLogger) SetDebug(enabled bool)             {}
func (r *recordLogger) Debugf(format string, args ...any) {}
func (r *recordLogger) Infof(format string, args ...any)  {}
func (r *recordLogger) Errorf(format string, args ...any) {}
func (r *recordLogger) Warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func testCamera() *Camera {
	return &Camera{
		Position: mgl32.Vec3{0, 0, 10},
		Target:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		Fov:      60,
		Near:     0.1,
		Far:      100,
	}
}

func testNav() *Navigation {
	nav := NewNavigation(testCamera())
	nav.SetViewport(Viewport{Width: 100, Height: 100})
	nav.ClearDirty()
	return nav
}

func TestSetCameraCapturesWorldUp(t *testing.T) {
	cam := testCamera()
	cam.Up = mgl32.Vec3{0, 0, 1}
	nav := NewNavigation(cam)
	if nav.GetWorldUpVector() != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("world up should capture the camera up, got %v", nav.GetWorldUpVector())
	}
}

func TestSetCameraDefaultsZeroUp(t *testing.T) {
	cam := testCamera()
	cam.Up = mgl32.Vec3{}
	nav := NewNavigation(cam)
	if cam.Up != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("zero up should default to +Y, got %v", cam.Up)
	}
	if nav.GetWorldUpVector() != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("world up should capture the defaulted up, got %v", nav.GetWorldUpVector())
	}
}

func TestSetCameraNilIdempotent(t *testing.T) {
	nav := testNav()
	nav.SetCamera(nil)
	nav.SetCamera(nil)

	// All mutators must be silent no-ops without a camera.
	nav.SetView(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{})
	nav.SetPosition(mgl32.Vec3{1, 1, 1})
	nav.SetPivotPoint(mgl32.Vec3{1, 1, 1})
	nav.PanRelative(1, 1, 10)
	nav.DollyFromPoint(5, mgl32.Vec3{})
	nav.SetVerticalFov(45, true)
	nav.FitBounds(true, BoundsFromPoints(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}), false)
	nav.GetWorldPoint(0.5, 0.5)

	if nav.Camera() != nil {
		t.Errorf("camera should stay uninstalled")
	}
}

func TestGetEyeVectorRecomputed(t *testing.T) {
	nav := testNav()
	if got := nav.GetEyeVector(); got != (mgl32.Vec3{0, 0, -10}) {
		t.Errorf("eye vector = %v, want (0,0,-10)", got)
	}
	nav.SetTarget(mgl32.Vec3{0, 5, 0})
	if got := nav.GetEyeVector(); got != (mgl32.Vec3{0, 5, -10}) {
		t.Errorf("eye vector after retarget = %v, want (0,5,-10)", got)
	}
}

func TestSetPivotPointMarksSet(t *testing.T) {
	nav := testNav()
	if nav.IsPivotSet() {
		t.Errorf("pivot should start unset")
	}
	nav.SetPivotPoint(mgl32.Vec3{1, 2, 3})
	if !nav.IsPivotSet() {
		t.Errorf("pivot should be set")
	}
	if nav.GetPivotPoint() != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("pivot point = %v", nav.GetPivotPoint())
	}
}

func TestIsActionEnabledMatrix(t *testing.T) {
	nav := testNav()

	all := []Action{ActionOrbit, ActionPan, ActionZoom, ActionRoll, ActionFov, ActionGotoView, ActionWalk}

	for _, a := range all {
		if !nav.IsActionEnabled(a) {
			t.Errorf("unlocked: %s should be enabled", a)
		}
	}

	nav.SetIsLocked(true)
	for _, a := range all {
		if nav.IsActionEnabled(a) {
			t.Errorf("locked with default settings: %s should be disabled", a)
		}
	}

	nav.SetActionLock(ActionPan, true)
	for _, a := range all {
		want := a == ActionPan
		if nav.IsActionEnabled(a) != want {
			t.Errorf("locked with pan exception: %s enabled=%v, want %v", a, nav.IsActionEnabled(a), want)
		}
	}
}

func TestOptionSettersIn2DWarnAndSkip(t *testing.T) {
	logger := &recordLogger{}
	nav := testNav()
	nav.SetLogger(logger)
	nav.Set2DMode(true)

	nav.SetOrbitPastPoles(false)
	if !nav.GetOrbitPastPoles() {
		t.Errorf("orbitPastPoles should be unchanged in 2D mode")
	}

	nav.SetReverseHorizontalLookDirection(true)
	nav.SetReverseVerticalLookDirection(true)
	opts := nav.Options()
	if opts.ReverseHorizontalLook || opts.ReverseVerticalLook {
		t.Errorf("reverse look options should be unchanged in 2D mode")
	}

	assert.Len(t, logger.warnings, 3, "each skipped setter warns once")
}

func TestDirtyFlagLifecycle(t *testing.T) {
	nav := testNav()
	if nav.IsDirty() {
		t.Errorf("fresh navigation should be clean")
	}
	nav.SetPosition(mgl32.Vec3{1, 0, 10})
	if !nav.IsDirty() {
		t.Errorf("mutation should dirty the camera")
	}
	nav.ClearDirty()
	if nav.IsDirty() {
		t.Errorf("ClearDirty should reset the flag")
	}
}

func TestListenerNotification(t *testing.T) {
	nav := testNav()

	var events []EventKind
	id := nav.AddListener(func(kind EventKind) {
		events = append(events, kind)
	})

	nav.SetPosition(mgl32.Vec3{1, 0, 10})
	assert.Equal(t, []EventKind{EventCameraChanged}, events)

	nav.SetRequestTransition(true, mgl32.Vec3{}, mgl32.Vec3{}, 45)
	assert.Contains(t, events, EventTransitionRequested)

	nav.RemoveListener(id)
	before := len(events)
	nav.SetPosition(mgl32.Vec3{2, 0, 10})
	assert.Len(t, events, before, "removed listener must not fire")
}

func TestIsPointVisible(t *testing.T) {
	nav := testNav()
	if !nav.IsPointVisible(mgl32.Vec3{0, 0, 0}) {
		t.Errorf("look-at point should be visible")
	}
	if nav.IsPointVisible(mgl32.Vec3{0, 0, 20}) {
		t.Errorf("point behind the camera should not be visible")
	}
	if nav.IsPointVisible(mgl32.Vec3{100, 0, 0}) {
		t.Errorf("point far off-axis should not be visible")
	}
}

func TestCameraAxisVectors(t *testing.T) {
	nav := testNav()

	vecApproxEqual(t, nav.GetCameraRightVector(false), mgl32.Vec3{1, 0, 0}, 1e-5, "camera right")
	vecApproxEqual(t, nav.GetCameraUpVector(), mgl32.Vec3{0, 1, 0}, 1e-5, "camera up")
	vecApproxEqual(t, nav.GetWorldRightVector(), mgl32.Vec3{1, 0, 0}, 1e-5, "world right")

	// Roll the camera: the local axes tilt but the world-aligned ones hold.
	nav.Roll(float32(math.Pi / 2))
	vecApproxEqual(t, nav.GetAlignedUpVector(), mgl32.Vec3{0, 1, 0}, 1e-4, "aligned up ignores roll")
	vecApproxEqual(t, nav.GetCameraRightVector(true), mgl32.Vec3{1, 0, 0}, 1e-4, "world-aligned right ignores roll")
	if d := nav.GetCameraUpVector().Sub(mgl32.Vec3{0, 1, 0}).Len(); d < 0.5 {
		t.Errorf("local up should have rolled away from +Y, got %v", nav.GetCameraUpVector())
	}
}

func TestSetCameraUpVectorGatedByRoll(t *testing.T) {
	nav := testNav()
	nav.SetIsLocked(true)

	before := nav.Camera().Up
	nav.SetCameraUpVector(mgl32.Vec3{1, 0, 0})
	if nav.Camera().Up != before {
		t.Errorf("locked roll should not change up")
	}

	nav.SetActionLock(ActionRoll, true)
	nav.SetCameraUpVector(mgl32.Vec3{1, 0, 0})
	vecApproxEqual(t, nav.Camera().Up, mgl32.Vec3{1, 0, 0}, 1e-5, "up after unlock")
}
