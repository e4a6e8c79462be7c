package player

import (
	gomath "math"
	"testing"

	"github.com/cometlab/observatory/internal/engine/planet"
	"github.com/cometlab/observatory/pkg/math"
)

const frameDt = float32(1.0 / 60.0)

func testField(t *testing.T) *planet.Field {
	t.Helper()
	field, err := planet.NewField(math.Vec3{}, 32)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	return field
}

func testController(t *testing.T) *Controller {
	t.Helper()
	cfg := Defaults()
	cfg.Spawn = math.Vec3{Y: 34}
	c, err := New(testField(t), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

// groundedController returns a controller settled on the surface at
// the north pole stand-off distance.
func groundedController(t *testing.T) *Controller {
	t.Helper()
	c := testController(t)
	c.pos = math.Vec3{Y: c.StandDistance()}
	c.grounded = true
	return c
}

func TestNewValidation(t *testing.T) {
	field := testField(t)

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero height", func(c *Config) { c.Height = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"negative speed", func(c *Config) { c.Speed = -1 }},
		{"negative jump", func(c *Config) { c.JumpHeight = -1 }},
		{"zero gravity", func(c *Config) { c.Gravity = 0 }},
		{"air control above one", func(c *Config) { c.AirControl = 1.5 }},
		{"zero friction", func(c *Config) { c.Friction = 0 }},
		{"friction above one", func(c *Config) { c.Friction = 1.1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			cfg.Spawn = math.Vec3{Y: 34}
			tt.mutate(&cfg)
			if _, err := New(field, cfg); err == nil {
				t.Error("expected construction error")
			}
		})
	}

	if _, err := New(nil, Defaults()); err == nil {
		t.Error("expected error for nil field")
	}
}

func TestStandDistance(t *testing.T) {
	c := testController(t)
	if got := c.StandDistance(); got != 33 {
		t.Errorf("StandDistance() = %v, want 33", got)
	}
}

func TestFallSnapAndSettle(t *testing.T) {
	c := testController(t)

	landed := false
	for i := 0; i < 60; i++ {
		c.Update(frameDt, InputSnapshot{})
		if c.Grounded() {
			landed = true
		}
	}
	if !landed {
		t.Fatal("avatar never touched the surface in 60 frames")
	}
	if !c.Grounded() {
		t.Error("avatar not grounded after settling")
	}

	dist := c.Position().Length()
	if gomath.Abs(float64(dist-33)) > 1e-3 {
		t.Errorf("distance from center = %v, want 33", dist)
	}

	// Residual velocity decays toward zero under friction.
	if speed := c.Velocity().Length(); speed > 0.5 {
		t.Errorf("residual speed = %v, want near zero", speed)
	}
}

func TestSnapCancelsInwardVelocity(t *testing.T) {
	c := testController(t)

	for i := 0; i < 60; i++ {
		before := c.Position().Length()
		c.Update(frameDt, InputSnapshot{})
		if !c.Grounded() {
			continue
		}
		if before < 33 {
			continue // was already inside at frame start
		}
		normal := c.Position().Normalize()
		if radial := c.Velocity().Dot(normal); radial < -1e-4 {
			t.Errorf("inward radial velocity %v after resolution", radial)
		}
	}
}

func TestGroundedMoveDisplacement(t *testing.T) {
	c := groundedController(t)

	start := c.Position()
	c.Update(frameDt, InputSnapshot{MoveZ: 1})

	delta := c.Position().Sub(start)
	normal := start.Normalize()
	tangential := delta.Reject(normal).Length()

	want := float32(7.0 / 60.0)
	if gomath.Abs(float64(tangential-want)) > 5e-3 {
		t.Errorf("one-frame tangential displacement = %v, want ~%v", tangential, want)
	}
}

func TestAirControlReducesAuthority(t *testing.T) {
	grounded := groundedController(t)
	grounded.Update(frameDt, InputSnapshot{MoveZ: 1})
	groundedDelta := grounded.Position().Sub(math.Vec3{Y: 33}).Reject(math.Vec3{Y: 1}).Length()

	airborne := testController(t)
	airborne.pos = math.Vec3{Y: 40}
	airborne.grounded = false
	start := airborne.Position()
	airborne.Update(frameDt, InputSnapshot{MoveZ: 1})
	airborneDelta := airborne.Position().Sub(start).Reject(math.Vec3{Y: 1}).Length()

	if airborneDelta >= groundedDelta {
		t.Errorf("airborne displacement %v not below grounded %v", airborneDelta, groundedDelta)
	}
	// Air control factor is 0.8
	ratio := airborneDelta / groundedDelta
	if gomath.Abs(float64(ratio-0.8)) > 0.05 {
		t.Errorf("air/ground authority ratio = %v, want ~0.8", ratio)
	}
}

func TestJumpGrounded(t *testing.T) {
	c := groundedController(t)
	normal := c.Position().Normalize()
	before := c.Velocity().Dot(normal)

	c.Jump()

	if c.Grounded() {
		t.Error("grounded flag still set after jump")
	}
	after := c.Velocity().Dot(normal)
	if gomath.Abs(float64(after-before-5)) > 1e-4 {
		t.Errorf("radial velocity gain = %v, want 5", after-before)
	}
}

func TestJumpAirborneIsNoOp(t *testing.T) {
	c := testController(t)
	c.grounded = false
	c.vel = math.Vec3{X: 1, Y: 2, Z: 3}

	c.Jump()

	if c.Velocity() != (math.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("airborne jump changed velocity to %v", c.Velocity())
	}
}

func TestJumpEdgeBitInSnapshot(t *testing.T) {
	c := groundedController(t)
	c.Update(frameDt, InputSnapshot{Jump: true})

	normal := c.Position().Normalize()
	if radial := c.Velocity().Dot(normal); radial < 4 {
		t.Errorf("radial velocity after snapshot jump = %v, want ~5", radial)
	}
	if c.Grounded() {
		t.Error("still grounded after snapshot jump")
	}
}

func TestFrictionDecaysTangentialSpeed(t *testing.T) {
	c := groundedController(t)
	// Tangential shove, then let friction bleed it off.
	c.vel = math.Vec3{X: 3}

	prev := float32(gomath.Inf(1))
	for i := 0; i < 30; i++ {
		c.Update(frameDt, InputSnapshot{})
		if !c.Grounded() {
			t.Fatalf("frame %d: lost ground contact", i)
		}
		normal := c.Position().Normalize()
		speed := c.Velocity().Reject(normal).Length()
		if speed >= prev {
			t.Fatalf("frame %d: tangential speed %v did not decrease from %v", i, speed, prev)
		}
		prev = speed
	}
	if prev > 0.2 {
		t.Errorf("tangential speed after decay = %v, want near zero", prev)
	}
}

func TestNoFrictionWhileSteering(t *testing.T) {
	c := groundedController(t)
	c.vel = math.Vec3{X: 3}

	c.Update(frameDt, InputSnapshot{MoveX: 1})

	normal := c.Position().Normalize()
	speed := c.Velocity().Reject(normal).Length()
	// Without friction the tangential component survives (the surface
	// curvature only redistributes a sliver of it).
	if speed < 2.9 {
		t.Errorf("tangential speed %v dropped while steering", speed)
	}
}

func TestResetRestoresSpawnState(t *testing.T) {
	c := testController(t)

	// Scramble state thoroughly.
	for i := 0; i < 30; i++ {
		c.Update(frameDt, InputSnapshot{
			MoveZ:      1,
			MouseDelta: math.Vec2{X: 0.3, Y: 0.2},
		})
	}
	c.Jump()

	c.Reset()

	if c.Position() != (math.Vec3{Y: 34}) {
		t.Errorf("position after reset = %v, want spawn", c.Position())
	}
	if c.Velocity() != (math.Vec3{}) {
		t.Errorf("velocity after reset = %v, want zero", c.Velocity())
	}
	if c.Yaw() != 0 {
		t.Errorf("yaw after reset = %v, want 0", c.Yaw())
	}
	if c.Pitch() != 0 {
		t.Errorf("pitch after reset = %v, want 0", c.Pitch())
	}
	if c.Grounded() {
		t.Error("grounded after reset, want false")
	}
}

func TestUpTracksSurfaceNormal(t *testing.T) {
	positions := []math.Vec3{
		{Y: 34},
		{X: 33},
		{X: 20, Y: 20, Z: 15},
	}
	for _, p := range positions {
		c := testController(t)
		c.pos = p
		c.Update(frameDt, InputSnapshot{})

		normal := p.Normalize()
		if c.Up().Sub(normal).Length() > 1e-4 {
			t.Errorf("Up() = %v at %v, want %v", c.Up(), p, normal)
		}
		if dot := c.Forward().Dot(normal); gomath.Abs(float64(dot)) > 1e-4 {
			t.Errorf("Forward() not tangent at %v: dot = %v", p, dot)
		}
		if dot := c.Right().Dot(normal); gomath.Abs(float64(dot)) > 1e-4 {
			t.Errorf("Right() not tangent at %v: dot = %v", p, dot)
		}
	}
}

func TestBasisNearReferencePole(t *testing.T) {
	// The surface normal here is parallel to the forward reference
	// vector; the basis must fall back to the alternate reference
	// instead of degenerating.
	c := testController(t)
	c.pos = math.Vec3{Z: -33}
	c.Update(frameDt, InputSnapshot{})

	if l := c.Forward().Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Forward() length = %v at reference pole, want 1", l)
	}
	if l := c.Right().Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Right() length = %v at reference pole, want 1", l)
	}
}

func TestPitchClamped(t *testing.T) {
	c := groundedController(t)

	// A wild downward mouse swing pins pitch at the lower clamp.
	c.Update(frameDt, InputSnapshot{MouseDelta: math.Vec2{Y: 1000}})
	if got := c.Pitch(); got != -pitchLimit {
		t.Errorf("pitch after big downward swing = %v, want %v", got, float32(-pitchLimit))
	}

	c.Update(frameDt, InputSnapshot{MouseDelta: math.Vec2{Y: -2000}})
	if got := c.Pitch(); got != pitchLimit {
		t.Errorf("pitch after big upward swing = %v, want %v", got, float32(pitchLimit))
	}
}

func TestZeroInputProjectsToZero(t *testing.T) {
	c := groundedController(t)
	dir := c.projectInput(InputSnapshot{})
	if dir != (math.Vec3{}) {
		t.Errorf("projectInput(zero) = %v, want zero vector", dir)
	}
}

func TestDiagonalInputIsNormalized(t *testing.T) {
	c := groundedController(t)
	dir := c.projectInput(InputSnapshot{MoveX: 1, MoveZ: 1})
	if l := dir.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("diagonal move direction length = %v, want 1", l)
	}
}

func TestYawTurnsAroundNormal(t *testing.T) {
	c := groundedController(t)
	before := c.Forward()

	c.Update(frameDt, InputSnapshot{MouseDelta: math.Vec2{X: 0.5}})

	after := c.Forward()
	if after.Sub(before).Length() < 1e-4 {
		t.Error("forward did not change under yaw input")
	}
	// Turning must not tilt the body off the surface.
	normal := c.Position().Normalize()
	if dot := after.Dot(normal); gomath.Abs(float64(dot)) > 1e-4 {
		t.Errorf("forward left the tangent plane: dot = %v", dot)
	}
}

func TestCameraRigFollowsPitch(t *testing.T) {
	c := groundedController(t)

	eye := c.CameraEye()
	wantEye := c.Position().Add(c.Up().Scale(c.cfg.Height / 2))
	if eye.Sub(wantEye).Length() > 1e-4 {
		t.Errorf("CameraEye() = %v, want %v", eye, wantEye)
	}

	// Level pitch looks along body forward.
	if c.CameraForward().Sub(c.Forward()).Length() > 1e-4 {
		t.Errorf("level CameraForward() = %v, want %v", c.CameraForward(), c.Forward())
	}

	// Pitch all the way up looks along the surface normal.
	c.pitch = pitchLimit
	if c.CameraForward().Sub(c.Up()).Length() > 1e-4 {
		t.Errorf("pitched-up CameraForward() = %v, want %v", c.CameraForward(), c.Up())
	}
}
