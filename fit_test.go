package navcam

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestComputeFitEmptyBounds(t *testing.T) {
	nav := testNav()
	pos := mgl32.Vec3{1, 2, 3}
	coi := mgl32.Vec3{4, 5, 6}
	fit := nav.ComputeFit(pos, coi, 60, NewEmptyBounds())
	if fit.Position != pos || fit.Target != coi {
		t.Errorf("empty bounds must return inputs unchanged, got %+v", fit)
	}
}

func TestComputeFitPointBounds(t *testing.T) {
	nav := testNav()
	p := mgl32.Vec3{5, 5, 5}
	fit := nav.ComputeFit(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0}, 60, Bounds{Min: p, Max: p})
	if isNaNVec(fit.Position) {
		t.Fatalf("point bounds produced NaN position: %v", fit.Position)
	}
	if fit.Target != p {
		t.Errorf("target should be the point, got %v", fit.Target)
	}
	if fit.Position == fit.Target {
		t.Errorf("radius floor should keep position distinct from target")
	}
}

func TestComputeFitUnitBoxScenario(t *testing.T) {
	nav := testNav()
	bounds := Bounds{
		Min: mgl32.Vec3{-0.5, -0.5, -0.5},
		Max: mgl32.Vec3{0.5, 0.5, 0.5},
	}
	fit := nav.ComputeFit(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0}, 60, bounds)

	vecApproxEqual(t, fit.Target, mgl32.Vec3{0, 0, 0}, 1e-6, "target at box center")

	radius := float32(math.Sqrt(3)) * 0.5
	fudge := 0.9 + 60/MaxFov*0.5
	wantDist := radius * fudge / float32(math.Tan(math.Pi/6))

	if fit.Position.X() != 0 || fit.Position.Y() != 0 {
		t.Errorf("position should stay on the +Z view axis, got %v", fit.Position)
	}
	if d := math.Abs(float64(fit.Position.Z() - wantDist)); d > 1e-3 {
		t.Errorf("fit distance = %f, want %f", fit.Position.Z(), wantDist)
	}
}

func TestDistanceToFit(t *testing.T) {
	want := 1 / float32(math.Tan(math.Pi/6))
	if d := math.Abs(float64(DistanceToFit(1, 60) - want)); d > 1e-4 {
		t.Errorf("DistanceToFit(1, 60) = %f, want %f", DistanceToFit(1, 60), want)
	}
	if got := DistanceToFit(2, 60); math.Abs(float64(got-2*want)) > 1e-3 {
		t.Errorf("distance should scale linearly with radius, got %f", got)
	}
	if got := DistanceToFit(1, 0); math.IsInf(float64(got), 0) || math.IsNaN(float64(got)) {
		t.Errorf("degenerate angle must stay finite, got %f", got)
	}
}

func TestComputeFitPreservesViewDirection(t *testing.T) {
	nav := testNav()
	pos := mgl32.Vec3{3, 4, 5}
	coi := mgl32.Vec3{1, 1, 1}
	bounds := BoundsFromPoints(mgl32.Vec3{-2, -2, -2}, mgl32.Vec3{2, 2, 2})
	fit := nav.ComputeFit(pos, coi, 45, bounds)

	oldDir := pos.Sub(coi).Normalize()
	newDir := fit.Position.Sub(fit.Target).Normalize()
	vecApproxEqual(t, newDir, oldDir, 1e-5, "viewing direction preserved")
}

func TestFitBoundsImmediateAppliesAndSetsPivot(t *testing.T) {
	nav := testNav()
	bounds := BoundsFromPoints(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})

	nav.FitBounds(true, bounds, false)

	cam := nav.Camera()
	vecApproxEqual(t, cam.Target, mgl32.Vec3{0, 0, 0}, 1e-6, "camera retargeted")
	vecApproxEqual(t, cam.Pivot, cam.Target, 1e-6, "pivot follows the fit target")
	if !nav.IsPivotSet() {
		t.Errorf("fit must mark the pivot as set")
	}
	if nav.GetRequestTransition() != nil {
		t.Errorf("immediate fit must not issue a transition request")
	}
}

func TestFitBoundsDeferredIssuesRequest(t *testing.T) {
	nav := testNav()
	startPos := nav.GetPosition()
	bounds := BoundsFromPoints(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})

	nav.FitBounds(false, bounds, false)

	if nav.GetPosition() != startPos {
		t.Errorf("deferred fit must not move the camera")
	}
	req := nav.GetRequestTransition()
	if req == nil {
		t.Fatalf("deferred fit must issue a transition request")
	}
	vecApproxEqual(t, req.Target, mgl32.Vec3{0, 0, 0}, 1e-6, "request target")
	if req.Reorient {
		t.Errorf("plain fit should not request reorientation")
	}
}

func TestFitBoundsReorientRequest(t *testing.T) {
	nav := testNav()
	bounds := BoundsFromPoints(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})

	nav.FitBounds(false, bounds, true)

	req := nav.GetRequestTransition()
	if req == nil {
		t.Fatalf("expected a transition request")
	}
	if !req.Reorient {
		t.Errorf("reorient fit should mark the request")
	}
	if d := math.Abs(float64(req.Up.Len() - 1)); d > 1e-4 {
		t.Errorf("recomputed up should be unit length, got %v", req.Up)
	}
}

func TestFitBoundsGatedByGotoView(t *testing.T) {
	nav := testNav()
	nav.SetIsLocked(true)

	startPos := nav.GetPosition()
	nav.FitBounds(true, BoundsFromPoints(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1}), false)

	if nav.GetPosition() != startPos {
		t.Errorf("locked gotoview must not move the camera")
	}
	if nav.IsPivotSet() {
		t.Errorf("locked gotoview must not touch the pivot")
	}
}
