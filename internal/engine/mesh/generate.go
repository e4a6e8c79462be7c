// Package mesh provides procedural mesh generation and GL buffer upload.
// Geometry is generated CPU-side as interleaved position+normal data so
// it can be built (and tested) without a GL context.
package mesh

import (
	gomath "math"

	"github.com/cometlab/observatory/pkg/math"
)

// Data is CPU-side geometry: interleaved vertices (position xyz, normal
// xyz) and triangle indices.
type Data struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (d Data) VertexCount() int {
	return len(d.Vertices) / 6
}

func (d *Data) push(pos, normal math.Vec3) {
	d.Vertices = append(d.Vertices,
		pos.X, pos.Y, pos.Z,
		normal.X, normal.Y, normal.Z,
	)
}

// Sphere generates a unit UV sphere (radius 1, centered at origin).
func Sphere(rings, segments int) Data {
	var d Data

	for ring := 0; ring <= rings; ring++ {
		phi := gomath.Pi * float64(ring) / float64(rings)
		y := float32(gomath.Cos(phi))
		r := float32(gomath.Sin(phi))

		for seg := 0; seg <= segments; seg++ {
			theta := 2 * gomath.Pi * float64(seg) / float64(segments)
			p := math.Vec3{
				X: r * float32(gomath.Cos(theta)),
				Y: y,
				Z: r * float32(gomath.Sin(theta)),
			}
			// Unit sphere: the position is its own normal.
			d.push(p, p)
		}
	}

	stride := uint32(segments + 1)
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			a := uint32(ring)*stride + uint32(seg)
			b := a + stride
			d.Indices = append(d.Indices,
				a, a+1, b,
				a+1, b+1, b,
			)
		}
	}

	return d
}

// Cube generates a unit cube (side 1, centered at origin) with flat
// per-face normals.
func Cube() Data {
	var d Data

	faces := []struct {
		normal, u, v math.Vec3
	}{
		{math.Vec3{X: 1}, math.Vec3{Z: -1}, math.Vec3{Y: 1}},
		{math.Vec3{X: -1}, math.Vec3{Z: 1}, math.Vec3{Y: 1}},
		{math.Vec3{Y: 1}, math.Vec3{X: 1}, math.Vec3{Z: -1}},
		{math.Vec3{Y: -1}, math.Vec3{X: 1}, math.Vec3{Z: 1}},
		{math.Vec3{Z: 1}, math.Vec3{X: 1}, math.Vec3{Y: 1}},
		{math.Vec3{Z: -1}, math.Vec3{X: -1}, math.Vec3{Y: 1}},
	}

	for _, f := range faces {
		base := uint32(d.VertexCount())
		center := f.normal.Scale(0.5)
		u := f.u.Scale(0.5)
		v := f.v.Scale(0.5)

		d.push(center.Sub(u).Sub(v), f.normal)
		d.push(center.Add(u).Sub(v), f.normal)
		d.push(center.Add(u).Add(v), f.normal)
		d.push(center.Sub(u).Add(v), f.normal)

		d.Indices = append(d.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}

	return d
}

// Cylinder generates a unit cylinder (radius 0.5, height 1, Y axis,
// centered at origin) with capped ends.
func Cylinder(segments int) Data {
	var d Data
	const radius, halfHeight = 0.5, 0.5

	// Side wall
	for seg := 0; seg <= segments; seg++ {
		theta := 2 * gomath.Pi * float64(seg) / float64(segments)
		n := math.Vec3{
			X: float32(gomath.Cos(theta)),
			Z: float32(gomath.Sin(theta)),
		}
		d.push(math.Vec3{X: n.X * radius, Y: halfHeight, Z: n.Z * radius}, n)
		d.push(math.Vec3{X: n.X * radius, Y: -halfHeight, Z: n.Z * radius}, n)
	}
	for seg := 0; seg < segments; seg++ {
		a := uint32(seg * 2)
		d.Indices = append(d.Indices,
			a, a+2, a+1,
			a+2, a+3, a+1,
		)
	}

	// Caps
	for _, top := range []bool{true, false} {
		y := float32(halfHeight)
		n := math.Vec3{Y: 1}
		if !top {
			y, n = -y, math.Vec3{Y: -1}
		}

		center := uint32(d.VertexCount())
		d.push(math.Vec3{Y: y}, n)
		for seg := 0; seg <= segments; seg++ {
			theta := 2 * gomath.Pi * float64(seg) / float64(segments)
			d.push(math.Vec3{
				X: float32(gomath.Cos(theta)) * radius,
				Y: y,
				Z: float32(gomath.Sin(theta)) * radius,
			}, n)
		}
		for seg := 0; seg < segments; seg++ {
			a := center + 1 + uint32(seg)
			if top {
				d.Indices = append(d.Indices, center, a+1, a)
			} else {
				d.Indices = append(d.Indices, center, a, a+1)
			}
		}
	}

	return d
}
