// Package theme picks, applies and persists the gallery's color palette.
package theme

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
)

// Defaults for the fallback palette and the storage key.
const (
	DefaultName       = "tavern"
	DefaultStorageKey = "currentTheme"
)

// keepProbability is the chance PickWeighted keeps the previous palette.
const keepProbability = 0.3

// ErrUnknownTheme is logged when a palette name is not in the table. It is
// recovered from and never returned.
var ErrUnknownTheme = errors.New("theme not found")

// Strategy selects how the palette is chosen at page load.
type Strategy string

const (
	// StrategyRandom picks uniformly on every load.
	StrategyRandom Strategy = "random"
	// StrategyWeighted usually picks anew but sometimes keeps the stored palette.
	StrategyWeighted Strategy = "weighted"
)

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	return s == StrategyRandom || s == StrategyWeighted
}

// Styler sets style variables on the document root.
type Styler interface {
	SetProperty(name, value string)
}

// Selector owns the active palette of one page.
type Selector struct {
	table     Table
	store     Store
	styler    Styler
	rnd       *rand.Rand
	key       string
	fallback  string
	listeners []func(name string)
}

// Option configures a Selector.
type Option func(*Selector)

// WithRand sets the random source, for reproducible selection.
func WithRand(r *rand.Rand) Option {
	return func(s *Selector) { s.rnd = r }
}

// WithStorageKey sets the key the palette name is persisted under.
func WithStorageKey(key string) Option {
	return func(s *Selector) {
		if key != "" {
			s.key = key
		}
	}
}

// WithFallback sets the palette used in place of unknown names.
func WithFallback(name string) Option {
	return func(s *Selector) {
		if name != "" {
			s.fallback = name
		}
	}
}

// NewSelector returns a Selector over table. An empty table means
// DefaultTable; a fallback missing from the table is replaced by the first
// palette.
func NewSelector(table Table, store Store, styler Styler, opts ...Option) *Selector {
	if len(table) == 0 {
		table = DefaultTable()
	}
	if store == nil {
		store = NewMemoryStore()
	}
	s := &Selector{
		table:    table,
		store:    store,
		styler:   styler,
		key:      DefaultStorageKey,
		fallback: DefaultName,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rnd == nil {
		s.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if _, ok := s.table.Lookup(s.fallback); !ok {
		s.fallback = s.table[0].Name
	}
	return s
}

// Table returns the palettes the selector chooses from.
func (s *Selector) Table() Table { return s.table }

// OnChange registers fn to run after every Apply.
func (s *Selector) OnChange(fn func(name string)) {
	s.listeners = append(s.listeners, fn)
}

// PickRandom returns a uniformly chosen palette name.
func (s *Selector) PickRandom() string {
	return s.table[s.rnd.IntN(len(s.table))].Name
}

// PickWeighted returns prev with probability 0.3 and a uniform pick
// otherwise. The uniform pick may equal prev. An empty prev always picks.
func (s *Selector) PickWeighted(prev string) string {
	name, _ := s.pickWeighted(prev)
	return name
}

func (s *Selector) pickWeighted(prev string) (name string, kept bool) {
	if prev != "" && s.rnd.Float64() < keepProbability {
		return prev, true
	}
	return s.PickRandom(), false
}

// Apply sets every variable of the named palette and persists the name.
// Unknown names are replaced by the fallback palette. The returned name is
// the palette actually applied; errors come only from the store.
func (s *Selector) Apply(ctx context.Context, name string) (string, error) {
	p, ok := s.table.Lookup(name)
	if !ok {
		log.Printf("theme: %v: %q, using %s", ErrUnknownTheme, name, s.fallback)
		name = s.fallback
		p, _ = s.table.Lookup(name)
	}

	if s.styler != nil {
		for _, v := range p.Vars {
			s.styler.SetProperty(v.Name, v.Value)
		}
	}

	if err := s.store.Set(ctx, s.key, name); err != nil {
		return name, fmt.Errorf("persisting theme: %w", err)
	}

	for _, fn := range s.listeners {
		fn(name)
	}
	return name, nil
}

// Current returns the persisted palette name, or "" when none is stored.
func (s *Selector) Current(ctx context.Context) (string, error) {
	name, _, err := s.store.Get(ctx, s.key)
	if err != nil {
		return "", fmt.Errorf("reading theme: %w", err)
	}
	return name, nil
}

// Init chooses and applies the page-load palette.
func (s *Selector) Init(ctx context.Context, strategy Strategy) (string, error) {
	if strategy != StrategyWeighted {
		return s.Apply(ctx, s.PickRandom())
	}

	prev, err := s.Current(ctx)
	if err != nil {
		log.Printf("theme: %v", err)
		prev = ""
	}
	return s.Apply(ctx, s.PickWeighted(prev))
}

// Cycle applies the palette after the persisted one, in table order.
func (s *Selector) Cycle(ctx context.Context) (string, error) {
	current, err := s.Current(ctx)
	if err != nil {
		return "", err
	}
	if current == "" {
		current = s.fallback
	}
	return s.Apply(ctx, s.table.Next(current))
}
