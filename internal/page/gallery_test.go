package page

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/ziadkadry99/folio/internal/dom"
	"github.com/ziadkadry99/folio/internal/dom/memdom"
	"github.com/ziadkadry99/folio/internal/filter"
	"github.com/ziadkadry99/folio/internal/project"
	"github.com/ziadkadry99/folio/internal/tilt"
)

const projectsJSON = `[
  {"title": "Alpha", "description": "", "categories": ["Web"], "types": ["Tool"], "link": "x"},
  {"title": "Beta", "description": "", "categories": ["CLI"], "types": ["Tool"], "link": "y"},
  {"title": "Gamma", "description": "A web game", "categories": ["Web"], "types": ["Game"], "link": "z"}
]`

func fileLoader() *project.Loader {
	fsys := fstest.MapFS{"data/projects.json": {Data: []byte(projectsJSON)}}
	return project.NewLoader(
		project.FileSource{FS: fsys, Path: "../data/projects.json"},
		project.FileSource{FS: fsys, Path: "data/projects.json"},
	)
}

func setup(t *testing.T, location string, opts ...Option) (*Gallery, *memdom.Document) {
	t.Helper()
	doc, err := memdom.New(location)
	if err != nil {
		t.Fatalf("memdom.New: %v", err)
	}
	g := New(doc, fileLoader(), opts...)
	if err := g.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return g, doc
}

func visibleTitles(g *Gallery) string {
	var out []string
	for _, p := range g.Visible() {
		out = append(out, p.Title)
	}
	return strings.Join(out, ",")
}

func TestInitBuildsFacetButtons(t *testing.T) {
	_, doc := setup(t, "http://localhost/")

	buttons := doc.Buttons(filter.GroupCategory)
	var values []string
	for _, b := range buttons {
		values = append(values, b.Value)
	}
	if strings.Join(values, ",") != "all,Web,CLI" {
		t.Errorf("category buttons = %v", values)
	}
	if !buttons[0].Active || buttons[0].Text != "All" {
		t.Errorf("All button = %+v, want active with text All", buttons[0])
	}
	if got := len(doc.Buttons(filter.GroupType)); got != 3 {
		t.Errorf("type buttons = %d, want 3", got)
	}
	if got := doc.CountClass(dom.ClassCard); got != 3 {
		t.Errorf("cards = %d, want 3", got)
	}
}

func TestInitReadsStateFromURL(t *testing.T) {
	g, doc := setup(t, "http://localhost/gallery/?category=Web&search=game")

	if visibleTitles(g) != "Gamma" {
		t.Errorf("visible = %q, want Gamma", visibleTitles(g))
	}
	if doc.SearchInput().Value() != "game" {
		t.Errorf("search input = %q, want game", doc.SearchInput().Value())
	}
	for _, b := range doc.Buttons(filter.GroupCategory) {
		if b.Active != (b.Value == "Web") {
			t.Errorf("button %s active=%v", b.Value, b.Active)
		}
	}
	if got := doc.Location().String(); got != "http://localhost/gallery/?category=Web&search=game" {
		t.Errorf("location = %q", got)
	}
}

func TestInitIgnoresUnknownURLLabels(t *testing.T) {
	g, doc := setup(t, "http://localhost/?category=Mobile&type=Tool")

	if s := g.State(); s.Category != filter.All || s.Type != "Tool" {
		t.Errorf("state = %+v", s)
	}
	if got := doc.Location().RawQuery; got != "type=Tool" {
		t.Errorf("query = %q, want type=Tool", got)
	}
}

func TestSelectFacetUpdatesURLAndView(t *testing.T) {
	g, doc := setup(t, "http://localhost/")
	before := doc.Replacements

	if !g.SelectFacet(filter.GroupType, "Tool") {
		t.Fatal("SelectFacet(type, Tool) returned false")
	}
	if visibleTitles(g) != "Alpha,Beta" {
		t.Errorf("visible = %q, want Alpha,Beta", visibleTitles(g))
	}
	if got := doc.Location().RequestURI(); got != "/?type=Tool" {
		t.Errorf("location = %q, want /?type=Tool", got)
	}
	if doc.Replacements != before+1 {
		t.Errorf("replacements = %d, want %d", doc.Replacements, before+1)
	}

	active := 0
	for _, b := range doc.Buttons(filter.GroupType) {
		if b.Active {
			active++
		}
	}
	if active != 1 {
		t.Errorf("%d active type buttons, want 1", active)
	}

	// Back to all clears the parameter.
	g.SelectFacet(filter.GroupType, filter.All)
	if got := doc.Location().RequestURI(); got != "/" {
		t.Errorf("location = %q, want /", got)
	}
}

func TestSelectFacetKeepsFragment(t *testing.T) {
	g, doc := setup(t, "http://localhost/gallery/#projects")

	g.SelectFacet(filter.GroupCategory, "Web")
	if got := doc.Location().String(); got != "http://localhost/gallery/?category=Web#projects" {
		t.Errorf("location = %q, want fragment kept", got)
	}
}

func TestSelectFacetUnknown(t *testing.T) {
	g, _ := setup(t, "http://localhost/")
	if g.SelectFacet(filter.GroupCategory, "Mobile") {
		t.Error("unknown label should be rejected")
	}
	if g.SelectFacet("colour", "Web") {
		t.Error("unknown group should be rejected")
	}
}

func TestSearchEmptyResults(t *testing.T) {
	g, doc := setup(t, "http://localhost/")

	g.SelectFacet(filter.GroupCategory, "Web")
	g.Search("beta")

	if len(g.Visible()) != 0 {
		t.Errorf("visible = %q, want none", visibleTitles(g))
	}
	if doc.CountClass(dom.ClassEmptyState) != 1 || doc.CountClass(dom.ClassCard) != 0 {
		t.Error("expected exactly one empty state and no cards")
	}

	g.Search("")
	if visibleTitles(g) != "Alpha,Gamma" {
		t.Errorf("visible = %q, want Alpha,Gamma", visibleTitles(g))
	}
}

func TestLoadFailureRendersError(t *testing.T) {
	doc, _ := memdom.New("http://localhost/")
	loader := project.NewLoader(project.FileSource{FS: fstest.MapFS{}, Path: "data/projects.json"})
	g := New(doc, loader)

	err := g.Init(context.Background())
	var loadErr *project.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *project.LoadError, got %v", err)
	}
	if !strings.Contains(doc.ContainerHTML(), "Error Loading Projects") {
		t.Error("expected error state in container")
	}

	// Uninitialized gallery ignores input.
	if g.SelectFacet(filter.GroupCategory, filter.All) {
		t.Error("SelectFacet should be inert after a failed load")
	}
	g.Search("x")
	if doc.Replacements != 0 {
		t.Errorf("URL replaced %d times, want 0", doc.Replacements)
	}
}

func TestTiltAppliedToNewCards(t *testing.T) {
	tl := tilt.New(tilt.DefaultMaxDegrees, rand.New(rand.NewPCG(5, 5)))
	g, doc := setup(t, "http://localhost/", WithTilter(tl))

	for _, tr := range doc.Transforms() {
		if !strings.HasPrefix(tr, "rotate(") {
			t.Errorf("card not tilted: %q", tr)
		}
	}

	g.SelectFacet(filter.GroupType, "Game")
	transforms := doc.Transforms()
	if len(transforms) != 1 || !strings.HasPrefix(transforms[0], "rotate(") {
		t.Errorf("transforms after repaint = %v", transforms)
	}
}

func TestRenderListener(t *testing.T) {
	passes := 0
	g, _ := setup(t, "http://localhost/", WithRenderListener(func([]dom.Element) { passes++ }))
	g.Search("a")
	if passes != 2 {
		t.Errorf("render passes = %d, want 2", passes)
	}
}
