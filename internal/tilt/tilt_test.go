package tilt

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/ziadkadry99/folio/internal/dom"
)

type fakeCard struct {
	transform string
	sets      int
}

func (c *fakeCard) Transform() string { return c.transform }

func (c *fakeCard) SetTransform(v string) {
	c.transform = v
	c.sets++
}

func degrees(t *testing.T, transform string) float64 {
	t.Helper()
	inner := strings.TrimSuffix(strings.TrimPrefix(transform, "rotate("), "deg)")
	v, err := strconv.ParseFloat(inner, 64)
	if err != nil {
		t.Fatalf("bad transform %q: %v", transform, err)
	}
	return v
}

func TestApplyTiltsWithinRange(t *testing.T) {
	tl := New(0, rand.New(rand.NewPCG(1, 2)))

	cards := make([]dom.Element, 500)
	for i := range cards {
		cards[i] = &fakeCard{}
	}
	tl.Apply(cards)

	var neg, pos int
	for _, c := range cards {
		d := degrees(t, c.Transform())
		if d < -2 || d > 2 {
			t.Errorf("angle %v out of range", d)
		}
		if d < 0 {
			neg++
		} else {
			pos++
		}
	}
	if neg < 150 || pos < 150 {
		t.Errorf("angles not centered at zero: %d negative, %d positive", neg, pos)
	}
}

func TestApplyIsIdempotentPerCard(t *testing.T) {
	tl := New(DefaultMaxDegrees, nil)

	already := &fakeCard{transform: "rotate(1.000deg)"}
	fresh := &fakeCard{}
	tl.Apply([]dom.Element{already, fresh})
	tl.Apply([]dom.Element{already, fresh})

	if already.sets != 0 || already.transform != "rotate(1.000deg)" {
		t.Errorf("tilted card was modified: %q (%d sets)", already.transform, already.sets)
	}
	if fresh.sets != 1 {
		t.Errorf("fresh card set %d times, want 1", fresh.sets)
	}
}

func TestAngleHonoursBound(t *testing.T) {
	tl := New(0.5, rand.New(rand.NewPCG(9, 9)))
	for i := 0; i < 1000; i++ {
		if a := tl.Angle(); a < -0.5 || a >= 0.5 {
			t.Fatalf("angle %v outside [-0.5, 0.5)", a)
		}
	}
}
