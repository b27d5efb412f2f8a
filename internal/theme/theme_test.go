package theme

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
)

type recordingStyler struct {
	props map[string]string
}

func newStyler() *recordingStyler {
	return &recordingStyler{props: make(map[string]string)}
}

func (r *recordingStyler) SetProperty(name, value string) { r.props[name] = value }

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("storage unavailable")
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("storage unavailable")
}

func seeded(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()
	want := []string{"tavern", "cyber", "ocean", "mystic", "forest", "neon", "glitched"}
	got := table.Names()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("names = %v, want %v", got, want)
	}
	for _, p := range table {
		if len(p.Vars) < 12 {
			t.Errorf("palette %s has %d vars, want at least 12", p.Name, len(p.Vars))
		}
		for _, v := range p.Vars {
			if !strings.HasPrefix(v.Name, "--theme-") || v.Value == "" {
				t.Errorf("palette %s: bad var %+v", p.Name, v)
			}
		}
	}
}

func TestTableNextWraps(t *testing.T) {
	table := DefaultTable()
	if got := table.Next("tavern"); got != "cyber" {
		t.Errorf("Next(tavern) = %q, want cyber", got)
	}
	if got := table.Next("glitched"); got != "tavern" {
		t.Errorf("Next(glitched) = %q, want tavern", got)
	}
	if got := table.Next("nonexistent"); got != "tavern" {
		t.Errorf("Next(nonexistent) = %q, want tavern", got)
	}
}

func TestPaletteCSS(t *testing.T) {
	p, _ := DefaultTable().Lookup("cyber")
	css := p.CSS()
	if !strings.Contains(css, ":root {") || !strings.Contains(css, "--theme-accent: #0CDEAD;") {
		t.Errorf("unexpected CSS:\n%s", css)
	}
}

func TestApplySetsVarsAndPersists(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	styler := newStyler()
	s := NewSelector(nil, store, styler)

	var notified string
	s.OnChange(func(name string) { notified = name })

	name, err := s.Apply(ctx, "ocean")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if name != "ocean" || notified != "ocean" {
		t.Errorf("applied %q, notified %q, want ocean", name, notified)
	}
	if styler.props["--theme-bg-primary"] != "#b2fefa" {
		t.Errorf("bg-primary = %q", styler.props["--theme-bg-primary"])
	}
	if v, _, _ := store.Get(ctx, DefaultStorageKey); v != "ocean" {
		t.Errorf("stored %q, want ocean", v)
	}
}

func TestApplyUnknownFallsBackToTavern(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	styler := newStyler()
	s := NewSelector(nil, store, styler)

	name, err := s.Apply(ctx, "nonexistent")
	if err != nil {
		t.Fatalf("Apply should not fail for unknown names: %v", err)
	}
	if name != "tavern" {
		t.Errorf("applied %q, want tavern", name)
	}
	if v, _, _ := store.Get(ctx, DefaultStorageKey); v != "tavern" {
		t.Errorf("stored %q, want tavern", v)
	}
	if styler.props["--theme-accent"] != "#b52f2fff" {
		t.Errorf("accent = %q, want tavern's", styler.props["--theme-accent"])
	}
}

func TestApplyStoreFailure(t *testing.T) {
	s := NewSelector(nil, failingStore{}, newStyler())
	if _, err := s.Apply(context.Background(), "neon"); err == nil {
		t.Error("expected store error")
	}
}

func TestFallbackMustExist(t *testing.T) {
	table := Table{{Name: "only", Vars: vars("--theme-accent", "#fff")}}
	s := NewSelector(table, nil, newStyler(), WithFallback("tavern"))
	name, _ := s.Apply(context.Background(), "missing")
	if name != "only" {
		t.Errorf("applied %q, want only", name)
	}
}

func TestPickRandomCoversTable(t *testing.T) {
	s := NewSelector(nil, nil, nil, seeded(1))
	seen := make(map[string]int)
	for i := 0; i < 7000; i++ {
		seen[s.PickRandom()]++
	}
	for _, name := range DefaultTable().Names() {
		if seen[name] < 800 || seen[name] > 1200 {
			t.Errorf("%s picked %d times out of 7000", name, seen[name])
		}
	}
}

func TestPickWeightedKeepsAboutThirtyPercent(t *testing.T) {
	s := NewSelector(nil, nil, nil, seeded(42))

	const n = 10000
	kept, tavern := 0, 0
	for i := 0; i < n; i++ {
		name, k := s.pickWeighted("tavern")
		if k {
			kept++
		}
		if name == "tavern" {
			tavern++
		}
	}

	ratio := float64(kept) / n
	if ratio < 0.25 || ratio > 0.35 {
		t.Errorf("kept ratio = %.3f, want 0.30 +- 0.05", ratio)
	}
	// Kept outcomes plus random repeats: 0.3 + 0.7/7.
	overall := float64(tavern) / n
	if overall < 0.35 || overall > 0.45 {
		t.Errorf("tavern ratio = %.3f, want about 0.40", overall)
	}
}

func TestPickWeightedWithoutPreviousAlwaysRandomizes(t *testing.T) {
	s := NewSelector(nil, nil, nil, seeded(7))
	for i := 0; i < 1000; i++ {
		name, kept := s.pickWeighted("")
		if kept || name == "" {
			t.Fatalf("empty previous should randomize, got %q kept=%v", name, kept)
		}
	}
}

func TestInitRandom(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s := NewSelector(nil, store, newStyler(), seeded(3))

	name, err := s.Init(ctx, StrategyRandom)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, ok := DefaultTable().Lookup(name); !ok {
		t.Errorf("Init picked unknown palette %q", name)
	}
	if cur, _ := s.Current(ctx); cur != name {
		t.Errorf("current = %q, want %q", cur, name)
	}
}

func TestInitWeightedUsesStoredPalette(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Set(ctx, DefaultStorageKey, "mystic")
	s := NewSelector(nil, store, newStyler(), seeded(11))

	mystic := 0
	for i := 0; i < 2000; i++ {
		store.Set(ctx, DefaultStorageKey, "mystic")
		name, err := s.Init(ctx, StrategyWeighted)
		if err != nil {
			t.Fatalf("Init: %v", err)
		}
		if name == "mystic" {
			mystic++
		}
	}
	if mystic < 600 || mystic > 1000 {
		t.Errorf("mystic kept %d/2000 times, want about 800", mystic)
	}
}

func TestCycle(t *testing.T) {
	ctx := context.Background()
	s := NewSelector(nil, NewMemoryStore(), newStyler())

	// Nothing stored: cycling starts after the fallback.
	name, err := s.Cycle(ctx)
	if err != nil {
		t.Fatalf("Cycle: %v", err)
	}
	if name != "cyber" {
		t.Errorf("first cycle = %q, want cyber", name)
	}

	s.Apply(ctx, "glitched")
	if name, _ = s.Cycle(ctx); name != "tavern" {
		t.Errorf("cycle after glitched = %q, want tavern", name)
	}
}

func TestStrategyValid(t *testing.T) {
	if !StrategyRandom.Valid() || !StrategyWeighted.Valid() {
		t.Error("known strategies should be valid")
	}
	if Strategy("smart").Valid() {
		t.Error("unknown strategy should be invalid")
	}
}
