// Package page runs one gallery page view: it loads the projects, builds the
// facet buttons, keeps the filter state in the URL and repaints on change.
package page

import (
	"context"

	"github.com/ziadkadry99/folio/internal/dom"
	"github.com/ziadkadry99/folio/internal/filter"
	"github.com/ziadkadry99/folio/internal/project"
	"github.com/ziadkadry99/folio/internal/render"
	"github.com/ziadkadry99/folio/internal/tilt"
)

// Loader yields the project list.
type Loader interface {
	Load(ctx context.Context) ([]project.Project, error)
}

// allText is the label of each group's All button.
const allText = "All"

// Gallery is the controller of one page view. Its methods are called from
// the page's single event loop and are not safe for concurrent use.
type Gallery struct {
	doc      dom.Document
	loader   Loader
	renderer *render.Renderer

	projects []project.Project
	visible  []project.Project
	facets   filter.Facets
	groups   map[string]*filter.Group
	search   string
	ready    bool
}

// Option configures a Gallery.
type Option func(*Gallery)

// WithTilter tilts the cards of every render pass.
func WithTilter(t *tilt.Tilter) Option {
	return func(g *Gallery) { g.renderer.OnRender(t.Apply) }
}

// WithRenderListener runs l after every render pass.
func WithRenderListener(l render.Listener) Option {
	return func(g *Gallery) { g.renderer.OnRender(l) }
}

// New returns a Gallery that renders into doc.
func New(doc dom.Document, loader Loader, opts ...Option) *Gallery {
	g := &Gallery{
		doc:      doc,
		loader:   loader,
		renderer: render.New(doc.Container()),
		groups:   make(map[string]*filter.Group),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Init loads the projects and paints the initial view from the URL state.
// A load failure is painted as an error message and returned; the gallery
// then stays inert.
func (g *Gallery) Init(ctx context.Context) error {
	projects, err := g.loader.Load(ctx)
	if err != nil {
		g.renderer.RenderError(err)
		return err
	}

	g.projects = projects
	g.facets = filter.DeriveFacets(projects)
	g.addGroup(filter.GroupCategory, g.facets.Categories)
	g.addGroup(filter.GroupType, g.facets.Types)

	state := filter.StateFromURL(g.doc.Location()).Normalize(g.facets)
	g.selectButton(filter.GroupCategory, state.Category)
	g.selectButton(filter.GroupType, state.Type)
	if state.Search != "" {
		g.doc.SearchInput().SetValue(state.Search)
	}
	g.search = state.Search

	g.ready = true
	g.apply()
	return nil
}

func (g *Gallery) addGroup(name string, labels []string) {
	group := filter.NewGroup(name, labels)
	g.groups[name] = group

	bar := g.doc.FilterBar(name)
	if bar == nil {
		return
	}
	for _, label := range group.Labels() {
		text := label
		if label == filter.All {
			text = allText
		}
		bar.AddButton(label, text)
	}
	bar.SetActive(group.Active())
}

func (g *Gallery) selectButton(name, label string) bool {
	group, ok := g.groups[name]
	if !ok || !group.Select(label) {
		return false
	}
	if bar := g.doc.FilterBar(name); bar != nil {
		bar.SetActive(group.Active())
	}
	return true
}

// SelectFacet makes label the active button of group and repaints. It
// reports false for unknown groups or labels, or before Init succeeded.
func (g *Gallery) SelectFacet(group, label string) bool {
	if !g.ready || !g.selectButton(group, label) {
		return false
	}
	g.apply()
	return true
}

// Search sets the search text and repaints.
func (g *Gallery) Search(text string) {
	if !g.ready {
		return
	}
	g.search = text
	g.apply()
}

// State returns the current filter selection.
func (g *Gallery) State() filter.State {
	s := filter.DefaultState()
	if group, ok := g.groups[filter.GroupCategory]; ok {
		s.Category = group.Active()
	}
	if group, ok := g.groups[filter.GroupType]; ok {
		s.Type = group.Active()
	}
	s.Search = g.search
	return s
}

// Facets returns the labels derived from the loaded projects.
func (g *Gallery) Facets() filter.Facets { return g.facets }

// Visible returns the projects painted by the last render pass.
func (g *Gallery) Visible() []project.Project { return g.visible }

// apply mirrors the state to the URL and repaints from the full list.
func (g *Gallery) apply() {
	s := g.State()
	g.doc.ReplaceURL(filter.WriteURL(g.doc.Location(), s))
	g.visible = filter.Filter(g.projects, s)
	g.renderer.Render(g.visible)
}
