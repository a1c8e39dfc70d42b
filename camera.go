package navcam

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Projection discriminates between the two camera models the engine supports.
type Projection int

const (
	ProjectionPerspective Projection = iota
	ProjectionOrthographic
)

// Camera is the mutable camera record shared with the embedding application.
// The navigation engine is the sole writer of its geometry fields; the render
// loop is the sole reader.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3 // look-at point
	Pivot    mgl32.Vec3 // orbit/zoom anchor

	// Up is the camera's current local up. WorldUp is the reference vertical
	// used to keep the horizon level while orbiting; it is captured from Up
	// when the camera is installed.
	Up      mgl32.Vec3
	WorldUp mgl32.Vec3

	// Fov is the vertical field of view in degrees. Ignored for
	// orthographic cameras, which size their frustum from OrthoScale.
	Fov float32

	Projection Projection

	// near plane z coordinate
	Near float32
	// far plane z coordinate
	Far float32
	// vertical extent of the orthographic frustum in world units
	OrthoScale float32
}

func (c *Camera) IsPerspective() bool {
	return c.Projection == ProjectionPerspective
}

// ViewMatrix builds the world-to-camera matrix from the current pose.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// ProjectionMatrix builds the projection for the given aspect ratio.
func (c *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	if c.IsPerspective() {
		return mgl32.Perspective(mgl32.DegToRad(c.Fov), aspect, c.Near, c.Far)
	}
	halfH := c.OrthoScale * 0.5
	halfW := halfH * aspect
	return mgl32.Ortho(-halfW, halfW, -halfH, halfH, c.Near, c.Far)
}

// ViewProjection is the combined projection*view matrix.
func (c *Camera) ViewProjection(aspect float32) mgl32.Mat4 {
	return c.ProjectionMatrix(aspect).Mul4(c.ViewMatrix())
}

// Viewport is the screen rectangle the camera renders into. Read-only to the
// engine except through Navigation.SetViewport on resize.
type Viewport struct {
	Left   float32
	Top    float32
	Width  float32
	Height float32
}

// Aspect returns width/height, defaulting to 1 for degenerate rectangles.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return v.Width / v.Height
}
