package player

import (
	gomath "math"

	"github.com/cometlab/observatory/pkg/math"
)

// The camera rig is a pivot half the avatar's height above its feet.
// It moves rigidly with the body; only its pitch is independent, so
// looking up or down never affects the body-relative forward and right
// used for movement.

// CameraEye returns the camera pivot's world position.
func (c *Controller) CameraEye() math.Vec3 {
	return c.pos.Add(c.up.Scale(c.cfg.Height / 2))
}

// CameraForward returns the view direction: body forward pitched
// around the body's right axis.
func (c *Controller) CameraForward() math.Vec3 {
	sin, cos := pitchSinCos(c.pitch)
	return c.forward.Scale(cos).Add(c.up.Scale(sin))
}

// CameraUp returns the view up vector matching CameraForward.
func (c *Controller) CameraUp() math.Vec3 {
	sin, cos := pitchSinCos(c.pitch)
	return c.up.Scale(cos).Sub(c.forward.Scale(sin))
}

func pitchSinCos(pitch float32) (float32, float32) {
	s, c := gomath.Sincos(float64(pitch))
	return float32(s), float32(c)
}
