// Package game implements the main game loop: it wires input to the
// spherical character controller and draws the observatory scene.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cometlab/observatory/internal/config"
	"github.com/cometlab/observatory/internal/engine/camera"
	"github.com/cometlab/observatory/internal/engine/input"
	"github.com/cometlab/observatory/internal/engine/mesh"
	"github.com/cometlab/observatory/internal/engine/planet"
	"github.com/cometlab/observatory/internal/engine/player"
	"github.com/cometlab/observatory/internal/engine/renderer"
	"github.com/cometlab/observatory/internal/engine/window"
	"github.com/cometlab/observatory/internal/logger"
	"github.com/cometlab/observatory/pkg/math"
	"github.com/veandco/go-sdl2/sdl"
)

// Game is the main game instance.
type Game struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Handler
	cam      *camera.Camera

	field      *planet.Field
	controller *player.Controller
	scene      *Scene
	meshes     map[Shape]*mesh.Mesh

	perf      *PerfMonitor
	showStats bool
	startTime time.Time
}

// New creates a new game instance.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	g := &Game{
		cfg:       cfg,
		showStats: cfg.Graphics.ShowStats,
		startTime: time.Now(),
	}

	field, err := planet.NewField(math.Vec3{}, cfg.Physics.PlanetRadius)
	if err != nil {
		return nil, fmt.Errorf("failed to create planet: %w", err)
	}
	g.field = field

	playerCfg := player.Config{
		Spawn:      math.Vec3{Y: cfg.Physics.PlanetRadius + cfg.Physics.PlayerHeight},
		Height:     cfg.Physics.PlayerHeight,
		Speed:      cfg.Physics.MoveSpeed,
		JumpHeight: cfg.Physics.JumpHeight,
		Gravity:    cfg.Physics.Gravity,
		AirControl: cfg.Physics.AirControl,
		Friction:   cfg.Physics.Friction,
		Sensitivity: math.Vec2{
			X: cfg.Camera.SensitivityX,
			Y: cfg.Camera.SensitivityY,
		},
	}
	g.controller, err = player.New(field, playerCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create player controller: %w", err)
	}

	// Window creation also creates the OpenGL context
	g.window, err = window.New(window.Config{
		Title:      "Comet Observatory",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	g.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	}, renderer.Light{
		Direction: math.Vec3{X: 1, Y: -2, Z: -1}.Normalize(),
		Intensity: 0.2,
		Ambient:   0.4,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()
	g.cam = camera.New(cfg.Camera.FOV)
	g.scene = BuildObservatory(field)
	g.meshes = map[Shape]*mesh.Mesh{
		ShapeSphere:   mesh.Upload(mesh.Sphere(24, 32)),
		ShapeCube:     mesh.Upload(mesh.Cube()),
		ShapeCylinder: mesh.Upload(mesh.Cylinder(24)),
	}
	g.perf = NewPerfMonitor(10 * time.Second)

	logger.Info("game initialized",
		zap.Float32("planet_radius", cfg.Physics.PlanetRadius),
		zap.Int("scene_nodes", len(g.scene.Nodes)),
	)
	return g, nil
}

// Run starts the main game loop.
func (g *Game) Run() error {
	g.running = true
	lastTime := time.Now()

	logger.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if g.input.Poll() {
			g.running = false
			break
		}
		g.handleEvents()

		// 2. Update simulation
		g.update(float32(dt))

		// 3. Render and present
		g.render()
		g.window.SwapBuffers()

		// 4. Performance stats
		g.perf.Sample(dt)
		if g.perf.Due(now) {
			if stats, ok := g.perf.Stats(); ok && g.showStats {
				logger.Info("fps stats",
					zap.Float64("avg", stats.AvgFPS),
					zap.Float64("min", stats.MinFPS),
					zap.Float64("max", stats.MaxFPS),
				)
			}
			g.perf.Reset(now)
		}
	}

	return nil
}

// handleEvents reacts to window events and edge-triggered keys.
func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			g.renderer.Resize(event.Width, event.Height)
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				g.running = false
			case sdl.SCANCODE_R:
				g.controller.Reset()
				logger.Info("player reset to spawn")
			case sdl.SCANCODE_F:
				g.window.ToggleFullscreen()
			case sdl.SCANCODE_TAB:
				g.showStats = !g.showStats
			}
		}
	}
}

// update advances the controller and scene animations.
func (g *Game) update(dt float32) {
	g.controller.Update(dt, g.input.Snapshot())

	t := float32(time.Since(g.startTime).Seconds())
	g.scene.Animate(t, dt)
}

// render draws the scene from the player's camera rig.
func (g *Game) render() {
	width, height := g.renderer.Size()
	view := g.cam.View(
		g.controller.CameraEye(),
		g.controller.CameraForward(),
		g.controller.CameraUp(),
	)
	proj := g.cam.Projection(width, height)

	g.renderer.Begin(view, proj)
	for _, node := range g.scene.Nodes {
		g.renderer.Draw(g.meshes[node.Shape], node.Model(), node.Color, node.Unlit)
	}
	g.renderer.End()
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	for _, m := range g.meshes {
		m.Delete()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
