package filter

import (
	"testing"

	"github.com/ziadkadry99/folio/internal/project"
)

func TestDeriveFacetsFirstSeenOrder(t *testing.T) {
	f := DeriveFacets(sampleProjects())
	if !equalStrings(f.Categories, []string{"CLI", "Audio", "Web", "ML"}) {
		t.Errorf("categories = %v", f.Categories)
	}
	if !equalStrings(f.Types, []string{"App", "Research", "Site"}) {
		t.Errorf("types = %v", f.Types)
	}
}

func TestDeriveFacetsEmpty(t *testing.T) {
	f := DeriveFacets(nil)
	if f.Categories == nil || f.Types == nil {
		t.Error("expected empty, non-nil facet lists")
	}
	f = DeriveFacets([]project.Project{{Title: "Bare"}})
	if len(f.Categories) != 0 || len(f.Types) != 0 {
		t.Errorf("got %+v, want no facets", f)
	}
}

func TestGroupMutualExclusion(t *testing.T) {
	g := NewGroup(GroupCategory, []string{"Web", "CLI", "Web", All, ""})
	if !equalStrings(g.Labels(), []string{All, "Web", "CLI"}) {
		t.Fatalf("labels = %v", g.Labels())
	}
	if g.Active() != All {
		t.Errorf("initial active = %q, want %q", g.Active(), All)
	}

	if !g.Select("CLI") {
		t.Fatal("Select(CLI) returned false")
	}
	active := 0
	for _, l := range g.Labels() {
		if g.IsActive(l) {
			active++
		}
	}
	if active != 1 || !g.IsActive("CLI") {
		t.Errorf("expected only CLI active, active count %d", active)
	}

	if g.Select("Mobile") {
		t.Error("unknown label should not select")
	}
	if g.Active() != "CLI" {
		t.Errorf("unknown label changed active to %q", g.Active())
	}
}

func TestGroupsAreIndependent(t *testing.T) {
	cat := NewGroup(GroupCategory, []string{"Web"})
	typ := NewGroup(GroupType, []string{"Tool"})

	cat.Select("Web")
	if typ.Active() != All {
		t.Errorf("type group changed to %q", typ.Active())
	}
	typ.Select("Tool")
	if cat.Active() != "Web" {
		t.Errorf("category group changed to %q", cat.Active())
	}
}
