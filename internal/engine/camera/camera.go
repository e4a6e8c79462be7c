// Package camera provides the first-person camera for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/cometlab/observatory/pkg/math"
)

// Camera builds view and projection matrices from the player's camera
// rig. It holds only lens parameters; the rig pose comes in per frame.
type Camera struct {
	FOV  float32 // vertical field of view, degrees
	Near float32
	Far  float32
}

// New creates a camera with the given vertical FOV in degrees.
func New(fov float32) *Camera {
	return &Camera{
		FOV:  fov,
		Near: 0.1,
		Far:  500.0,
	}
}

// Projection returns the perspective projection matrix for the given
// viewport size.
func (c *Camera) Projection(width, height int) math.Mat4 {
	aspect := float32(width) / float32(height)
	fovRad := c.FOV * gomath.Pi / 180.0
	return math.Perspective(fovRad, aspect, c.Near, c.Far)
}

// View returns the view matrix for a rig at eye looking along forward
// with the given up vector.
func (c *Camera) View(eye, forward, up math.Vec3) math.Mat4 {
	return math.LookAt(eye, eye.Add(forward), up)
}
