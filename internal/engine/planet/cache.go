package planet

import (
	"math"

	obsmath "github.com/cometlab/observatory/pkg/math"
)

// quantumScale quantizes positions to two decimal places. The player
// moves far more than 0.01 units per frame at walking speed, so the
// memo cannot serve a stale normal across an observable move.
const quantumScale = 100

// NormalCache memoizes the last surface-normal lookup against the
// quantized query position. The controller asks for the normal several
// times per frame at (nearly) the same position; one slot is enough.
type NormalCache struct {
	field  *Field
	key    [3]int64
	normal obsmath.Vec3
	valid  bool
}

// NewNormalCache wraps a field with a single-slot memo.
func NewNormalCache(field *Field) *NormalCache {
	return &NormalCache{field: field}
}

// NormalAt returns the surface normal at p, reusing the memoized
// result while p stays inside the same quantization cell.
func (c *NormalCache) NormalAt(p obsmath.Vec3) obsmath.Vec3 {
	key := quantize(p)
	if c.valid && key == c.key {
		return c.normal
	}
	c.key = key
	c.normal = c.field.NormalAt(p)
	c.valid = true
	return c.normal
}

// Field returns the wrapped gravity field.
func (c *NormalCache) Field() *Field {
	return c.field
}

func quantize(p obsmath.Vec3) [3]int64 {
	return [3]int64{
		int64(math.Round(float64(p.X) * quantumScale)),
		int64(math.Round(float64(p.Y) * quantumScale)),
		int64(math.Round(float64(p.Z) * quantumScale)),
	}
}
