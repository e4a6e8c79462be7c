package game

import (
	gomath "math"
	"testing"

	"github.com/cometlab/observatory/internal/engine/planet"
	"github.com/cometlab/observatory/pkg/math"
)

func testScene(t *testing.T) *Scene {
	t.Helper()
	field, err := planet.NewField(math.Vec3{}, 32)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	return BuildObservatory(field)
}

func TestBuildObservatoryNodeCount(t *testing.T) {
	s := testScene(t)

	// 1 planetoid, 8 cubes, 3 domes with 3 pads, the star, and the
	// engine room (base, core, 6 supports, 5 energy nodes).
	const want = 29
	if len(s.Nodes) != want {
		t.Errorf("node count = %d, want %d", len(s.Nodes), want)
	}
}

func TestBuildObservatoryPlanetoid(t *testing.T) {
	s := testScene(t)

	planetoid := s.Nodes[0]
	if planetoid.Shape != ShapeSphere {
		t.Errorf("planetoid shape = %v, want sphere", planetoid.Shape)
	}
	if planetoid.Position != (math.Vec3{}) {
		t.Errorf("planetoid position = %v, want origin", planetoid.Position)
	}
	if planetoid.Scale != (math.Vec3{X: 32, Y: 32, Z: 32}) {
		t.Errorf("planetoid scale = %v, want field radius", planetoid.Scale)
	}
}

func TestBuildObservatoryStructures(t *testing.T) {
	s := testScene(t)

	var cubes, spheres, cylinders, unlit int
	for _, n := range s.Nodes {
		switch n.Shape {
		case ShapeCube:
			cubes++
		case ShapeSphere:
			spheres++
		case ShapeCylinder:
			cylinders++
		}
		if n.Unlit {
			unlit++
		}
	}

	if cubes != 14 { // 8 decorative + 6 supports
		t.Errorf("cube count = %d, want 14", cubes)
	}
	if spheres != 10 { // planetoid + 3 domes + star + 5 energy nodes
		t.Errorf("sphere count = %d, want 10", spheres)
	}
	if cylinders != 5 { // 3 pads + base + core
		t.Errorf("cylinder count = %d, want 5", cylinders)
	}
	if unlit != 6 { // star + 5 energy nodes
		t.Errorf("unlit count = %d, want 6", unlit)
	}
}

func TestDecorativeCubesSitOnEquator(t *testing.T) {
	s := testScene(t)

	for _, n := range s.Nodes[1:9] {
		if n.Shape != ShapeCube {
			t.Fatalf("expected equator cube, got shape %v", n.Shape)
		}
		if n.Position.Y != 0 {
			t.Errorf("equator cube at Y=%v, want 0", n.Position.Y)
		}
		dist := n.Position.Length()
		if gomath.Abs(float64(dist-31.8)) > 1e-3 {
			t.Errorf("equator cube distance = %v, want 31.8", dist)
		}
	}
}

func TestAnimatePulsesStarAndEnergyNodes(t *testing.T) {
	s := testScene(t)

	baseStar := s.star.Scale
	baseEnergy := s.energyNodes[0].Scale

	// Quarter period of the star's sin(2t) pulse.
	s.Animate(gomath.Pi/4, 1.0/60)

	if s.star.Scale == baseStar {
		t.Error("star scale did not change under Animate")
	}
	wantStar := float32(1.1)
	if gomath.Abs(float64(s.star.Scale.X-wantStar)) > 1e-3 {
		t.Errorf("star scale = %v, want %v at pulse peak", s.star.Scale.X, wantStar)
	}
	if s.star.Rotation == (math.Quat{}) || s.star.Rotation == math.QuatIdentity() {
		t.Error("star did not spin under Animate")
	}

	if s.energyNodes[0].Scale == baseEnergy {
		t.Error("energy node scale did not change under Animate")
	}
	// Pulse stays within the 0.4 +/- 0.075 envelope.
	for i, n := range s.energyNodes {
		v := n.Scale.X
		if v < 0.4-0.076 || v > 0.4+0.076 {
			t.Errorf("energy node %d scale = %v, outside pulse envelope", i, v)
		}
	}
}

func TestNodeModelAppliesTranslation(t *testing.T) {
	n := &Node{
		Position: math.Vec3{X: 1, Y: 2, Z: 3},
		Rotation: math.QuatIdentity(),
		Scale:    math.Vec3{X: 2, Y: 2, Z: 2},
	}

	m := n.Model()
	got := m.TransformPoint(math.Vec3{})
	if got != (math.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("model origin = %v, want node position", got)
	}

	// Scale applies before translation.
	got = m.TransformPoint(math.Vec3{X: 1})
	if got != (math.Vec3{X: 3, Y: 2, Z: 3}) {
		t.Errorf("model unit X = %v, want (3, 2, 3)", got)
	}
}
