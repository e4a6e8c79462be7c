package game

import (
	gomath "math"

	"github.com/cometlab/observatory/internal/engine/planet"
	"github.com/cometlab/observatory/pkg/math"
)

// Shape selects which uploaded mesh a node is drawn with.
type Shape int

const (
	ShapeSphere Shape = iota
	ShapeCube
	ShapeCylinder
)

// Node is one drawable object in the scene. Scale values are radii /
// half-extents relative to the unit meshes.
type Node struct {
	Shape    Shape
	Position math.Vec3
	Rotation math.Quat
	Scale    math.Vec3
	Color    [3]float32
	Unlit    bool
}

// Model returns the node's model matrix.
func (n *Node) Model() math.Mat4 {
	t := math.Translate(n.Position.X, n.Position.Y, n.Position.Z)
	r := n.Rotation.ToMat4()
	s := math.Scale(n.Scale.X, n.Scale.Y, n.Scale.Z)
	return t.Mul(r).Mul(s)
}

// Observatory color palette.
var (
	colorObservatory = rgb(210, 230, 255)
	colorEngine      = rgb(90, 90, 160)
	colorStar        = rgb(255, 255, 0)
	colorDomeRed     = rgb(200, 50, 50)
	colorDomeGreen   = rgb(50, 150, 50)
	colorDomeCyan    = rgb(50, 150, 200)
	colorMetal       = rgb(100, 100, 100)
	colorEnergy      = rgb(100, 150, 255)
)

func rgb(r, g, b float32) [3]float32 {
	return [3]float32{r / 255, g / 255, b / 255}
}

// Scene holds the observatory's static geometry plus references to the
// nodes that animate each frame.
type Scene struct {
	Nodes []*Node

	star        *Node
	starSpin    float32
	energyNodes []*Node
}

// BuildObservatory assembles the decorative planetoid level around the
// given gravity field: the planetoid itself, a ring of metal cubes,
// three warp domes, the central star and the engine room below the
// south pole.
func BuildObservatory(field *planet.Field) *Scene {
	s := &Scene{}
	radius := field.Radius

	// Main planetoid
	s.add(&Node{
		Shape: ShapeSphere,
		Scale: uniform(radius),
		Color: colorObservatory,
	})

	s.buildDecorativeCubes(radius)
	s.buildDomes(radius)
	s.buildCentralStar(radius)
	s.buildEngineRoom(radius)

	return s
}

func (s *Scene) add(n *Node) *Node {
	s.Nodes = append(s.Nodes, n)
	return n
}

// buildDecorativeCubes rings eight metal blocks around the equator,
// sunk slightly below the surface.
func (s *Scene) buildDecorativeCubes(radius float32) {
	for i := 0; i < 8; i++ {
		angle := float64(i) * (2 * gomath.Pi / 8)
		dir := math.Vec3{
			X: float32(gomath.Cos(angle)),
			Z: float32(gomath.Sin(angle)),
		}
		s.add(&Node{
			Shape:    ShapeCube,
			Position: dir.Scale(radius - 0.2),
			Rotation: math.QuatFromAxisAngle(math.Vec3{Y: 1}, float32(angle)),
			Scale:    math.Vec3{X: 1.5, Y: 0.8, Z: 1.5},
			Color:    colorMetal,
		})
	}
}

// buildDomes places three colored domes with warp pads at fixed
// directions on the upper hemisphere.
func (s *Scene) buildDomes(radius float32) {
	configs := []struct {
		dir   math.Vec3
		color [3]float32
	}{
		{math.Vec3{X: 1, Y: 1}, colorDomeRed},
		{math.Vec3{X: -1, Y: 1}, colorDomeGreen},
		{math.Vec3{Y: 1, Z: 1}, colorDomeCyan},
	}

	for _, cfg := range configs {
		up := cfg.dir.Normalize()
		pos := up.Scale(radius)

		s.add(&Node{
			Shape:    ShapeSphere,
			Position: pos,
			Scale:    uniform(4),
			Color:    cfg.color,
		})
		s.add(&Node{
			Shape:    ShapeCylinder,
			Position: pos.Add(up.Scale(0.2)),
			Rotation: math.QuatFromTo(math.Vec3{Y: 1}, up),
			Scale:    math.Vec3{X: 3.6, Y: 0.4, Z: 3.6},
			Color:    cfg.color,
		})
	}
}

func (s *Scene) buildCentralStar(radius float32) {
	s.star = s.add(&Node{
		Shape:    ShapeSphere,
		Position: math.Vec3{Y: radius + 8},
		Scale:    uniform(1),
		Color:    colorStar,
		Unlit:    true,
	})
}

// buildEngineRoom hangs the engine platform below the south pole: base
// disc, core column, six supports and five energy nodes around the rim.
func (s *Scene) buildEngineRoom(radius float32) {
	enginePos := math.Vec3{Y: -(radius + 5)}

	base := s.add(&Node{
		Shape:    ShapeCylinder,
		Position: enginePos,
		Scale:    math.Vec3{X: 14, Y: 0.8, Z: 14},
		Color:    colorEngine,
	})
	s.add(&Node{
		Shape:    ShapeCylinder,
		Position: enginePos.Add(math.Vec3{Y: 5}),
		Scale:    math.Vec3{X: 3, Y: 10, Z: 3},
		Color:    colorMetal,
	})

	for angle := 0; angle < 360; angle += 60 {
		rad := float64(angle) * gomath.Pi / 180
		offset := math.Vec3{
			X: float32(gomath.Sin(rad)) * 5 / 3,
			Y: 0.5,
			Z: float32(gomath.Cos(rad)) * 5 / 3,
		}
		s.add(&Node{
			Shape:    ShapeCube,
			Position: enginePos.Add(offset),
			Rotation: math.QuatFromAxisAngle(math.Vec3{Y: 1}, float32(rad)),
			Scale:    math.Vec3{X: 0.2, Y: 1, Z: 0.2},
			Color:    colorMetal,
		})
	}

	for i := 0; i < 5; i++ {
		theta := float64(i) * (2 * gomath.Pi / 5)
		pos := math.Vec3{
			X: base.Scale.X/2*float32(gomath.Cos(theta)) + base.Position.X,
			Y: base.Position.Y + 2,
			Z: base.Scale.Z/2*float32(gomath.Sin(theta)) + base.Position.Z,
		}
		node := s.add(&Node{
			Shape:    ShapeSphere,
			Position: pos,
			Scale:    uniform(0.4),
			Color:    colorEnergy,
			Unlit:    true,
		})
		s.energyNodes = append(s.energyNodes, node)
	}
}

// Animate advances the pulsing star and energy nodes. t is wall-clock
// seconds, dt the frame delta.
func (s *Scene) Animate(t, dt float32) {
	s.star.Scale = uniform(1 + float32(gomath.Sin(float64(t*2)))*0.1)
	s.starSpin += dt * 10 * gomath.Pi / 180
	s.star.Rotation = math.QuatFromAxisAngle(math.Vec3{Y: 1}, s.starSpin)

	for i, node := range s.energyNodes {
		pulse := float32(gomath.Sin(float64(t*3 + float32(i))))
		node.Scale = uniform(0.4 + pulse*0.075)
	}
}

func uniform(v float32) math.Vec3 {
	return math.Vec3{X: v, Y: v, Z: v}
}
