package player

import "github.com/cometlab/observatory/pkg/math"

// InputSnapshot is the per-frame input the controller consumes. The
// input layer builds a fresh one every frame; Jump must already be
// edge-triggered (true for the frame the key went down, not while it
// is held).
type InputSnapshot struct {
	MoveX      float32 // strafe axis in [-1, 1], right positive
	MoveZ      float32 // forward axis in [-1, 1], forward positive
	Jump       bool
	MouseDelta math.Vec2
}

// Config holds the controller's construction parameters. Zero values
// are not usable; start from Defaults and override.
type Config struct {
	Spawn       math.Vec3
	Height      float32
	Speed       float32
	JumpHeight  float32
	Gravity     float32
	AirControl  float32
	Friction    float32
	Sensitivity math.Vec2
}

// Defaults returns the tuning the observatory level was built around.
func Defaults() Config {
	return Config{
		Height:      2,
		Speed:       7,
		JumpHeight:  5,
		Gravity:     25,
		AirControl:  0.8,
		Friction:    0.9,
		Sensitivity: math.Vec2{X: 100, Y: 100},
	}
}
