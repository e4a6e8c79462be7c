// Package player implements the spherical-surface character
// controller: it orients the avatar to the planetoid's curved surface,
// projects keyboard input into the tangent plane, integrates gravity
// and movement, and resolves ground collision against the sphere.
package player

import (
	"fmt"

	"github.com/cometlab/observatory/internal/engine/planet"
	"github.com/cometlab/observatory/pkg/math"
)

// Controller owns the avatar's simulation state. It is not safe for
// concurrent use; the host loop calls Update exactly once per frame.
type Controller struct {
	field   *planet.Field
	normals *planet.NormalCache
	cfg     Config

	pos      math.Vec3
	vel      math.Vec3
	yaw      float32
	pitch    float32
	grounded bool

	// Surface-aligned basis as of the last orientation pass.
	forward math.Vec3
	right   math.Vec3
	up      math.Vec3
}

// New creates a controller standing at cfg.Spawn on the given field.
func New(field *planet.Field, cfg Config) (*Controller, error) {
	if field == nil {
		return nil, fmt.Errorf("player: nil planet field")
	}
	if cfg.Height <= 0 {
		return nil, fmt.Errorf("player: height must be positive, got %v", cfg.Height)
	}
	if cfg.Speed < 0 {
		return nil, fmt.Errorf("player: speed must not be negative, got %v", cfg.Speed)
	}
	if cfg.JumpHeight < 0 {
		return nil, fmt.Errorf("player: jump height must not be negative, got %v", cfg.JumpHeight)
	}
	if cfg.Gravity <= 0 {
		return nil, fmt.Errorf("player: gravity must be positive, got %v", cfg.Gravity)
	}
	if cfg.AirControl < 0 || cfg.AirControl > 1 {
		return nil, fmt.Errorf("player: air control must be in [0, 1], got %v", cfg.AirControl)
	}
	if cfg.Friction <= 0 || cfg.Friction > 1 {
		return nil, fmt.Errorf("player: friction must be in (0, 1], got %v", cfg.Friction)
	}

	c := &Controller{
		field:   field,
		normals: planet.NewNormalCache(field),
		cfg:     cfg,
		pos:     cfg.Spawn,
	}
	c.forward, c.right, c.up = surfaceBasis(field.NormalAt(c.pos), 0)
	return c, nil
}

// Position returns the avatar's current world position.
func (c *Controller) Position() math.Vec3 { return c.pos }

// Velocity returns the avatar's current velocity.
func (c *Controller) Velocity() math.Vec3 { return c.vel }

// Grounded reports whether the avatar is standing on the surface.
func (c *Controller) Grounded() bool { return c.grounded }

// Up returns the avatar's local up (the surface normal it is aligned to).
func (c *Controller) Up() math.Vec3 { return c.up }

// Forward returns the avatar's surface-tangent forward direction.
func (c *Controller) Forward() math.Vec3 { return c.forward }

// Right returns the avatar's surface-tangent right direction.
func (c *Controller) Right() math.Vec3 { return c.right }

// Yaw returns the accumulated turn angle around the surface normal, in radians.
func (c *Controller) Yaw() float32 { return c.yaw }

// Pitch returns the camera pivot's pitch in radians.
func (c *Controller) Pitch() float32 { return c.pitch }

// StandDistance returns the distance from the planet center at which
// the avatar stands: radius plus half its height.
func (c *Controller) StandDistance() float32 {
	return c.field.Radius + c.cfg.Height/2
}

// Jump adds an impulse along the surface normal. It is a no-op while
// airborne; a successful jump immediately clears the grounded flag so
// a second call in the same frame cannot double-fire.
func (c *Controller) Jump() {
	if !c.grounded {
		return
	}
	normal := c.normals.NormalAt(c.pos)
	c.vel = c.vel.Add(normal.Scale(c.cfg.JumpHeight))
	c.grounded = false
}

// Reset restores the avatar to its spawn point with zero velocity,
// zero yaw and level camera pitch.
func (c *Controller) Reset() {
	c.pos = c.cfg.Spawn
	c.vel = math.Vec3{}
	c.yaw = 0
	c.pitch = 0
	c.grounded = false
	c.forward, c.right, c.up = surfaceBasis(c.field.NormalAt(c.pos), 0)
}
