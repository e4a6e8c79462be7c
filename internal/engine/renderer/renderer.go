// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cometlab/observatory/internal/engine/mesh"
	"github.com/cometlab/observatory/internal/engine/shader"
	"github.com/cometlab/observatory/internal/logger"
	"github.com/cometlab/observatory/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Light holds the scene's directional + ambient lighting.
type Light struct {
	Direction math.Vec3
	Intensity float32
	Ambient   float32
}

// Renderer draws flat-colored lit meshes.
type Renderer struct {
	config Config
	light  Light

	program uint32

	// Cached uniform locations
	uModel    int32
	uView     int32
	uProj     int32
	uColor    int32
	uLightDir int32
	uLightInt int32
	uAmbient  int32
	uUnlit    int32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, light Light) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		light:  light,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	// Deep space blue, matching the observatory's night sky
	gl.ClearColor(8.0/255.0, 10.0/255.0, 22.0/255.0, 1.0)

	program, err := shader.CompileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.program = program

	r.uModel = shader.MustGetUniform(program, "uModel")
	r.uView = shader.MustGetUniform(program, "uView")
	r.uProj = shader.MustGetUniform(program, "uProj")
	r.uColor = shader.MustGetUniform(program, "uColor")
	r.uLightDir = shader.MustGetUniform(program, "uLightDir")
	r.uLightInt = shader.MustGetUniform(program, "uLightIntensity")
	r.uAmbient = shader.MustGetUniform(program, "uAmbient")
	r.uUnlit = shader.MustGetUniform(program, "uUnlit")

	logger.Debug("shader program created", zap.Uint32("program", program))
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin starts a new frame with the given camera matrices.
func (r *Renderer) Begin(view, proj math.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.uProj, 1, false, proj.Ptr())

	dir := r.light.Direction
	gl.Uniform3f(r.uLightDir, dir.X, dir.Y, dir.Z)
	gl.Uniform1f(r.uLightInt, r.light.Intensity)
	gl.Uniform1f(r.uAmbient, r.light.Ambient)
}

// Draw renders a mesh with the given model transform and color.
// Unlit meshes skip the Lambert term (emissive objects like the star).
func (r *Renderer) Draw(m *mesh.Mesh, model math.Mat4, color [3]float32, unlit bool) {
	gl.UniformMatrix4fv(r.uModel, 1, false, model.Ptr())
	gl.Uniform3f(r.uColor, color[0], color[1], color[2])
	if unlit {
		gl.Uniform1i(r.uUnlit, 1)
	} else {
		gl.Uniform1i(r.uUnlit, 0)
	}
	m.Draw()
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

const vertexShaderSrc = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProj;

out vec3 vNormal;

void main() {
	gl_Position = uProj * uView * uModel * vec4(aPos, 1.0);
	vNormal = mat3(uModel) * aNormal;
}
`

const fragmentShaderSrc = `
#version 410 core

in vec3 vNormal;

uniform vec3 uColor;
uniform vec3 uLightDir;
uniform float uLightIntensity;
uniform float uAmbient;
uniform int uUnlit;

out vec4 FragColor;

void main() {
	if (uUnlit == 1) {
		FragColor = vec4(uColor, 1.0);
		return;
	}
	vec3 n = normalize(vNormal);
	float diffuse = max(dot(n, -normalize(uLightDir)), 0.0) * uLightIntensity;
	FragColor = vec4(uColor * (uAmbient + diffuse), 1.0);
}
`
