package navcam

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// perturbEpsilon is the fixed nudge applied to a view direction that is
// parallel to its up reference. The resolution is deterministic so repeated
// degenerate inputs produce identical bases.
const perturbEpsilon = 1e-4

// perturbView breaks a view/up parallelism by shaving epsilon off one
// component of the view direction: Y when the up reference leans along Z,
// Z otherwise.
func perturbView(view, up mgl32.Vec3) mgl32.Vec3 {
	if up.Z() > up.Y() {
		view[1] -= perturbEpsilon
	} else {
		view[2] -= perturbEpsilon
	}
	return view
}

// safeView substitutes a unit Z axis for a zero-length view direction.
func safeView(view mgl32.Vec3) mgl32.Vec3 {
	if view.Len() == 0 {
		return mgl32.Vec3{0, 0, 1}
	}
	return view
}

// orthoBasis derives normalized screen-right and screen-up axes for a camera
// looking along view with the given up reference. Degenerate inputs resolve
// via safeView/perturbView rather than erroring.
func orthoBasis(view, up mgl32.Vec3) (right, trueUp mgl32.Vec3) {
	view = safeView(view)
	right = view.Cross(up)
	if right.Len() == 0 {
		view = perturbView(view, up)
		right = view.Cross(up)
	}
	right = right.Normalize()
	trueUp = right.Cross(view).Normalize()
	return right, trueUp
}

// Orient returns the rotation basis for looking toward target from the given
// position with a nominal up vector. Columns are the right, up and forward
// axes of a right-handed frame whose Z axis points at the target.
func Orient(target, from, up mgl32.Vec3) mgl32.Mat4 {
	view := safeView(target.Sub(from))
	right := up.Cross(view)
	if right.Len() == 0 {
		view = perturbView(view, up)
		right = up.Cross(view)
	}
	right = right.Normalize()
	forward := view.Normalize()
	realUp := forward.Cross(right).Normalize()
	return mgl32.Mat4FromCols(
		right.Vec4(0),
		realUp.Vec4(0),
		forward.Vec4(0),
		mgl32.Vec4{0, 0, 0, 1},
	)
}

// ComputeOrthogonalUp returns an up vector orthogonal to the view direction
// pos->coi and aligned as closely as possible with worldUp, via the cross
// chain right = view x worldUp, up = right x view.
func ComputeOrthogonalUp(pos, coi, worldUp mgl32.Vec3) mgl32.Vec3 {
	view := safeView(coi.Sub(pos))
	right := view.Cross(worldUp)
	if right.Len() == 0 {
		view = perturbView(view, worldUp)
		right = view.Cross(worldUp)
	}
	return right.Cross(view).Normalize()
}

// WorldRightFromUp derives a horizon-parallel right vector purely from the
// world up, selecting one of three axis-aligned cross products by the
// dominant component so an arbitrary reference axis is never needed.
func WorldRightFromUp(worldUp mgl32.Vec3) mgl32.Vec3 {
	v := worldUp
	if v.Len() == 0 {
		return mgl32.Vec3{1, 0, 0}
	}
	switch {
	case float32(math.Abs(float64(v.Z()))) <= float32(math.Abs(float64(v.Y()))):
		v = mgl32.Vec3{v.Y(), -v.X(), 0}
	case v.Z() >= 0:
		v = mgl32.Vec3{v.Z(), 0, -v.X()}
	default:
		v = mgl32.Vec3{-v.Z(), 0, v.X()}
	}
	if v.Len() == 0 {
		return mgl32.Vec3{1, 0, 0}
	}
	return v.Normalize()
}

// SnapToAxis quantizes v to the signed principal axis with the largest
// absolute component.
func SnapToAxis(v mgl32.Vec3) mgl32.Vec3 {
	ax := math.Abs(float64(v.X()))
	ay := math.Abs(float64(v.Y()))
	az := math.Abs(float64(v.Z()))

	sign := func(f float32) float32 {
		if f < 0 {
			return -1
		}
		return 1
	}

	switch {
	case ax >= ay && ax >= az:
		return mgl32.Vec3{sign(v.X()), 0, 0}
	case ay >= az:
		return mgl32.Vec3{0, sign(v.Y()), 0}
	default:
		return mgl32.Vec3{0, 0, sign(v.Z())}
	}
}

func isNaNVec(v mgl32.Vec3) bool {
	return math.IsNaN(float64(v.X())) || math.IsNaN(float64(v.Y())) || math.IsNaN(float64(v.Z()))
}

func tanHalfDeg(fovDeg float32) float32 {
	return float32(math.Tan(float64(mgl32.DegToRad(fovDeg)) * 0.5))
}
