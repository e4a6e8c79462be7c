package mesh

import (
	gomath "math"
	"testing"

	"github.com/cometlab/observatory/pkg/math"
)

func vertexAt(d Data, i int) (pos, normal math.Vec3) {
	base := i * 6
	pos = math.Vec3{X: d.Vertices[base], Y: d.Vertices[base+1], Z: d.Vertices[base+2]}
	normal = math.Vec3{X: d.Vertices[base+3], Y: d.Vertices[base+4], Z: d.Vertices[base+5]}
	return pos, normal
}

func checkIndicesInRange(t *testing.T, d Data) {
	t.Helper()
	n := uint32(d.VertexCount())
	for i, idx := range d.Indices {
		if idx >= n {
			t.Fatalf("index %d out of range: %d >= %d vertices", i, idx, n)
		}
	}
	if len(d.Indices)%3 != 0 {
		t.Fatalf("index count %d is not a multiple of 3", len(d.Indices))
	}
}

func TestSphere(t *testing.T) {
	d := Sphere(8, 12)

	wantVerts := (8 + 1) * (12 + 1)
	if got := d.VertexCount(); got != wantVerts {
		t.Errorf("vertex count = %d, want %d", got, wantVerts)
	}
	wantIndices := 8 * 12 * 6
	if len(d.Indices) != wantIndices {
		t.Errorf("index count = %d, want %d", len(d.Indices), wantIndices)
	}
	checkIndicesInRange(t, d)

	for i := 0; i < d.VertexCount(); i++ {
		pos, normal := vertexAt(d, i)
		if r := pos.Length(); gomath.Abs(float64(r-1)) > 1e-5 {
			t.Fatalf("vertex %d at radius %v, want 1", i, r)
		}
		if pos != normal {
			t.Fatalf("vertex %d normal %v differs from position %v", i, normal, pos)
		}
	}
}

func TestSphereOutwardWinding(t *testing.T) {
	d := Sphere(8, 12)

	for tri := 0; tri < len(d.Indices); tri += 3 {
		a, _ := vertexAt(d, int(d.Indices[tri]))
		b, _ := vertexAt(d, int(d.Indices[tri+1]))
		c, _ := vertexAt(d, int(d.Indices[tri+2]))

		face := b.Sub(a).Cross(c.Sub(a))
		if face.LengthSq() == 0 {
			continue // degenerate pole triangle
		}
		centroid := a.Add(b).Add(c).Scale(1.0 / 3)
		if face.Dot(centroid) < 0 {
			t.Fatalf("triangle %d winds inward", tri/3)
		}
	}
}

func TestCube(t *testing.T) {
	d := Cube()

	if got := d.VertexCount(); got != 24 {
		t.Errorf("vertex count = %d, want 24", got)
	}
	if len(d.Indices) != 36 {
		t.Errorf("index count = %d, want 36", len(d.Indices))
	}
	checkIndicesInRange(t, d)

	for i := 0; i < d.VertexCount(); i++ {
		pos, normal := vertexAt(d, i)
		if l := normal.Length(); gomath.Abs(float64(l-1)) > 1e-6 {
			t.Fatalf("vertex %d normal length %v, want 1", i, l)
		}
		// Corners sit at half extents on every axis.
		for _, v := range []float32{pos.X, pos.Y, pos.Z} {
			if v != 0.5 && v != -0.5 {
				t.Fatalf("vertex %d coordinate %v, want +/-0.5", i, v)
			}
		}
		// The face normal points along the vertex's face.
		if pos.Dot(normal) <= 0 {
			t.Fatalf("vertex %d normal %v points into the cube at %v", i, normal, pos)
		}
	}
}

func TestCubeOutwardWinding(t *testing.T) {
	d := Cube()

	for tri := 0; tri < len(d.Indices); tri += 3 {
		a, normal := vertexAt(d, int(d.Indices[tri]))
		b, _ := vertexAt(d, int(d.Indices[tri+1]))
		c, _ := vertexAt(d, int(d.Indices[tri+2]))

		face := b.Sub(a).Cross(c.Sub(a))
		if face.Dot(normal) <= 0 {
			t.Fatalf("triangle %d winds against its face normal", tri/3)
		}
	}
}

func TestCylinder(t *testing.T) {
	const segments = 16
	d := Cylinder(segments)

	// Side wall: 2 verts per ring step. Caps: center plus a ring each.
	wantVerts := (segments+1)*2 + 2*(1+segments+1)
	if got := d.VertexCount(); got != wantVerts {
		t.Errorf("vertex count = %d, want %d", got, wantVerts)
	}
	wantIndices := segments*6 + 2*segments*3
	if len(d.Indices) != wantIndices {
		t.Errorf("index count = %d, want %d", len(d.Indices), wantIndices)
	}
	checkIndicesInRange(t, d)

	for i := 0; i < d.VertexCount(); i++ {
		pos, normal := vertexAt(d, i)
		if pos.Y != 0.5 && pos.Y != -0.5 {
			t.Fatalf("vertex %d at Y=%v, want +/-0.5", i, pos.Y)
		}
		if l := normal.Length(); gomath.Abs(float64(l-1)) > 1e-5 {
			t.Fatalf("vertex %d normal length %v, want 1", i, l)
		}
		radial := float32(gomath.Hypot(float64(pos.X), float64(pos.Z)))
		if radial > 0.5+1e-5 {
			t.Fatalf("vertex %d at radial distance %v, want <= 0.5", i, radial)
		}
	}
}

func TestCylinderOutwardWinding(t *testing.T) {
	d := Cylinder(16)

	for tri := 0; tri < len(d.Indices); tri += 3 {
		a, na := vertexAt(d, int(d.Indices[tri]))
		b, _ := vertexAt(d, int(d.Indices[tri+1]))
		c, _ := vertexAt(d, int(d.Indices[tri+2]))

		face := b.Sub(a).Cross(c.Sub(a))
		if face.LengthSq() == 0 {
			continue
		}
		if face.Dot(na) <= 0 {
			t.Fatalf("triangle %d winds against vertex normal %v", tri/3, na)
		}
	}
}
