package navcam

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// The conversions model a 35mm-equivalent camera back with a 24mm vertical
// dimension, so the half-height is 12mm.
const halfFilmBack = 12.0

// minFocalInput guards both conversions against division blow-up.
const minFocalInput = 1e-4

// FovToFocalLength converts a vertical field of view in degrees to the
// equivalent focal length in millimeters, rounded to the nearest integer.
func FovToFocalLength(fovDegrees float32) int {
	rad := float64(mgl32.DegToRad(fovDegrees))
	if rad < minFocalInput {
		rad = minFocalInput
	}
	return int(math.Round(halfFilmBack / math.Tan(rad*0.5)))
}

// FocalLengthToFov converts a focal length in millimeters back to a vertical
// field of view in degrees. Inverse of FovToFocalLength up to its rounding.
func FocalLengthToFov(mm float32) float32 {
	m := float64(mm)
	if m < minFocalInput {
		m = minFocalInput
	}
	return mgl32.RadToDeg(float32(2 * math.Atan(halfFilmBack/m)))
}

// Vertical FOV bounds, fixed at the 200mm and 10mm equivalent focal lengths.
var (
	MinFov = FocalLengthToFov(200) // ~6.87 degrees
	MaxFov = FocalLengthToFov(10)  // ~100.4 degrees
)
