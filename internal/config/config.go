// Package config handles game configuration loading and management.
package config

import "fmt"

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	ShowStats  bool `yaml:"show_stats"`
}

// PhysicsConfig holds the planetoid and character tuning.
type PhysicsConfig struct {
	Gravity      float32 `yaml:"gravity"`
	PlanetRadius float32 `yaml:"planet_radius"`
	PlayerHeight float32 `yaml:"player_height"`
	JumpHeight   float32 `yaml:"jump_height"`
	MoveSpeed    float32 `yaml:"move_speed"`
	AirControl   float32 `yaml:"air_control"`
	Friction     float32 `yaml:"friction"`
}

// CameraConfig holds camera settings.
type CameraConfig struct {
	FOV          float32 `yaml:"fov"`
	SensitivityX float32 `yaml:"sensitivity_x"`
	SensitivityY float32 `yaml:"sensitivity_y"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			ShowStats:  true,
		},
		Physics: PhysicsConfig{
			Gravity:      25,
			PlanetRadius: 32,
			PlayerHeight: 2,
			JumpHeight:   5,
			MoveSpeed:    7,
			AirControl:   0.8,
			Friction:     0.9,
		},
		Camera: CameraConfig{
			FOV:          90,
			SensitivityX: 100,
			SensitivityY: 100,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate rejects settings that would produce nonsensical motion.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Physics.PlanetRadius <= 0 {
		return fmt.Errorf("planet_radius must be positive, got %v", c.Physics.PlanetRadius)
	}
	if c.Physics.PlayerHeight <= 0 {
		return fmt.Errorf("player_height must be positive, got %v", c.Physics.PlayerHeight)
	}
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %v", c.Physics.Gravity)
	}
	if c.Physics.MoveSpeed < 0 {
		return fmt.Errorf("move_speed must not be negative, got %v", c.Physics.MoveSpeed)
	}
	if c.Physics.JumpHeight < 0 {
		return fmt.Errorf("jump_height must not be negative, got %v", c.Physics.JumpHeight)
	}
	if c.Physics.AirControl < 0 || c.Physics.AirControl > 1 {
		return fmt.Errorf("air_control must be in [0, 1], got %v", c.Physics.AirControl)
	}
	if c.Physics.Friction <= 0 || c.Physics.Friction > 1 {
		return fmt.Errorf("friction must be in (0, 1], got %v", c.Physics.Friction)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("fov must be in (0, 180), got %v", c.Camera.FOV)
	}
	return nil
}
