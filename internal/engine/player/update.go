package player

import (
	gomath "math"

	"github.com/cometlab/observatory/pkg/math"
)

// pitchLimit clamps the camera pivot to straight up / straight down.
const pitchLimit = gomath.Pi / 2

// Update advances the simulation by dt seconds. The pipeline order is
// fixed: orientation and input projection read the surface normal and
// grounded flag as they stood at the start of the frame, integration
// moves the avatar, and ground resolution runs last and rewrites both
// for the next frame.
func (c *Controller) Update(dt float32, in InputSnapshot) {
	normal := c.normals.NormalAt(c.pos)
	groundedAtStart := c.grounded

	c.orient(normal, in, dt)
	moveDir := c.projectInput(in)
	c.integrate(dt, normal, moveDir, groundedAtStart)
	c.resolveGround(normal, in)

	if in.Jump {
		c.Jump()
	}
}

// orient aligns the avatar's basis to the surface normal, applies yaw
// from horizontal mouse motion and advances the clamped camera pitch.
func (c *Controller) orient(normal math.Vec3, in InputSnapshot, dt float32) {
	c.yaw += in.MouseDelta.X * c.cfg.Sensitivity.X * dt
	c.pitch = clamp(c.pitch-in.MouseDelta.Y*c.cfg.Sensitivity.Y*dt, -pitchLimit, pitchLimit)
	c.forward, c.right, c.up = surfaceBasis(normal, c.yaw)
}

// projectInput maps the 2-axis movement input onto the tangent plane.
// Zero input yields exactly the zero vector, never a normalized one.
func (c *Controller) projectInput(in InputSnapshot) math.Vec3 {
	dir := c.forward.Scale(in.MoveZ).Add(c.right.Scale(in.MoveX))
	if dir.LengthSq() == 0 {
		return math.Vec3{}
	}
	return dir.Normalize()
}

// integrate applies gravity to velocity and moves the avatar. Steering
// is displacement-based: the move contribution is scaled into the
// position step directly and never accumulates into velocity, so
// velocity carries only gravity, jump impulses and collision residue.
// Airborne steering authority is reduced by the air-control factor.
func (c *Controller) integrate(dt float32, normal, moveDir math.Vec3, grounded bool) {
	control := float32(1)
	if !grounded {
		control = c.cfg.AirControl
	}
	move := moveDir.Scale(c.cfg.Speed * control)

	c.vel = c.vel.Add(normal.Scale(-c.cfg.Gravity * dt))
	c.pos = c.pos.Add(c.vel.Add(move).Scale(dt))
}

// resolveGround snaps a penetrating avatar radially back onto the
// stand-off sphere, cancels inward radial velocity and applies
// friction when no steering input is held. Large penetration depths
// snap in a single step; that visible teleport is the intended
// simplified correction.
func (c *Controller) resolveGround(normal math.Vec3, in InputSnapshot) {
	target := c.StandDistance()
	if c.field.DistanceAt(c.pos) > target {
		c.grounded = false
		return
	}

	c.grounded = true
	c.pos = c.field.Center.Add(c.field.NormalAt(c.pos).Scale(target))

	if radial := c.vel.Dot(normal); radial < 0 {
		c.vel = c.vel.Sub(normal.Scale(radial))
	}
	if in.MoveX == 0 && in.MoveZ == 0 {
		c.vel = c.vel.Scale(c.cfg.Friction)
	}
}

// surfaceBasis derives a surface-aligned orthonormal basis from the
// normal and the accumulated yaw. Forward starts as world -Z projected
// into the tangent plane; when the normal is nearly parallel to that
// reference the projection degenerates and world +X is used instead.
func surfaceBasis(normal math.Vec3, yaw float32) (forward, right, up math.Vec3) {
	ref := math.Vec3{Z: -1}
	if abs(normal.Dot(ref)) > 0.999 {
		ref = math.Vec3{X: 1}
	}
	forward = ref.Reject(normal).Normalize()
	right = forward.Cross(normal)

	if yaw != 0 {
		spin := math.QuatFromAxisAngle(normal, -yaw)
		forward = spin.Rotate(forward)
		right = spin.Rotate(right)
	}
	return forward, right, normal
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
