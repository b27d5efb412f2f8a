// Package tilt gives each painted card a small random rotation.
package tilt

import (
	"fmt"
	"math/rand/v2"

	"github.com/ziadkadry99/folio/internal/dom"
)

// DefaultMaxDegrees bounds the rotation: angles fall in [-2, 2) degrees.
const DefaultMaxDegrees = 2.0

// Tilter rotates cards that have no transform yet. Cards already tilted are
// left alone, so applying it repeatedly is harmless.
type Tilter struct {
	MaxDegrees float64
	rnd        *rand.Rand
}

// New returns a Tilter with the given bound; r may be nil.
func New(maxDegrees float64, r *rand.Rand) *Tilter {
	if maxDegrees <= 0 {
		maxDegrees = DefaultMaxDegrees
	}
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Tilter{MaxDegrees: maxDegrees, rnd: r}
}

// Angle returns a rotation in degrees, uniform in [-MaxDegrees, MaxDegrees).
func (t *Tilter) Angle() float64 {
	return (t.rnd.Float64() - 0.5) * 2 * t.MaxDegrees
}

// Apply tilts every card without a transform.
func (t *Tilter) Apply(cards []dom.Element) {
	for _, c := range cards {
		if c.Transform() != "" {
			continue
		}
		c.SetTransform(fmt.Sprintf("rotate(%.3fdeg)", t.Angle()))
	}
}
