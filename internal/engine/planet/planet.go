// Package planet models the spherical planetoid the player walks on:
// a central gravity source with a surface-normal query.
package planet

import (
	"fmt"

	"github.com/cometlab/observatory/pkg/math"
)

// Field is the gravity source: a perfect sphere at Center with the
// given Radius. Immutable after creation.
type Field struct {
	Center math.Vec3
	Radius float32
}

// NewField creates a gravity field. Radius must be positive.
func NewField(center math.Vec3, radius float32) (*Field, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("planet radius must be positive, got %v", radius)
	}
	return &Field{Center: center, Radius: radius}, nil
}

// NormalAt returns the unit vector pointing from the planet center
// through p, which serves as local "up" at that position. A query at
// the exact center would have no defined direction; it falls back to
// world up so the result is never NaN.
func (f *Field) NormalAt(p math.Vec3) math.Vec3 {
	d := p.Sub(f.Center)
	if d.LengthSq() == 0 {
		return math.Vec3{Y: 1}
	}
	return d.Normalize()
}

// DistanceAt returns the distance from the planet center to p.
func (f *Field) DistanceAt(p math.Vec3) float32 {
	return p.Sub(f.Center).Length()
}
