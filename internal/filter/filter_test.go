package filter

import (
	"testing"

	"github.com/ziadkadry99/folio/internal/project"
)

func alphaBeta() []project.Project {
	return []project.Project{
		{Title: "Alpha", Categories: []string{"Web"}, Types: []string{"Tool"}, Link: "x"},
		{Title: "Beta", Categories: []string{"CLI"}, Types: []string{"Tool"}, Link: "y"},
	}
}

func sampleProjects() []project.Project {
	return []project.Project{
		{Title: "Inbox Zero", Description: "Terminal email client", Categories: []string{"CLI"}, Types: []string{"App"}},
		{Title: "Tune Stream", Description: "Music from the command line", Categories: []string{"CLI", "Audio"}, Types: []string{"App"}},
		{Title: "Game Finder", Description: "Recommends games with TF-IDF", Categories: []string{"Web", "ML"}, Types: []string{"Research"}},
		{Title: "Portfolio", Description: "This site", Categories: []string{"Web"}, Types: []string{"Site"}},
	}
}

func titles(ps []project.Project) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Title
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterDefaultStateReturnsEverything(t *testing.T) {
	projects := sampleProjects()
	got := Filter(projects, DefaultState())
	if !equalStrings(titles(got), titles(projects)) {
		t.Errorf("got %v, want %v", titles(got), titles(projects))
	}
}

func TestFilterAlphaBetaScenario(t *testing.T) {
	projects := alphaBeta()

	got := Filter(projects, State{Category: All, Type: "Tool"})
	if !equalStrings(titles(got), []string{"Alpha", "Beta"}) {
		t.Errorf("type=Tool: got %v, want [Alpha Beta]", titles(got))
	}

	got = Filter(projects, State{Category: "Web", Type: All, Search: "beta"})
	if len(got) != 0 {
		t.Errorf("category=Web search=beta: got %v, want empty", titles(got))
	}
	if got == nil {
		t.Error("expected an empty, non-nil slice")
	}
}

func TestFilterSearchIsConjunctiveWithFacets(t *testing.T) {
	projects := sampleProjects()

	// "stream" matches Tune Stream's title, which is in CLI.
	got := Filter(projects, State{Category: "CLI", Type: All, Search: "STREAM"})
	if !equalStrings(titles(got), []string{"Tune Stream"}) {
		t.Errorf("got %v, want [Tune Stream]", titles(got))
	}

	// Same search under an incompatible facet excludes it.
	got = Filter(projects, State{Category: "Web", Type: All, Search: "stream"})
	if len(got) != 0 {
		t.Errorf("got %v, want empty", titles(got))
	}
}

func TestFilterSearchFields(t *testing.T) {
	projects := sampleProjects()
	tests := []struct {
		search string
		want   []string
	}{
		{"finder", []string{"Game Finder"}},
		{"command line", []string{"Tune Stream"}},
		{"audio", []string{"Tune Stream"}},
		{"research", []string{"Game Finder"}},
		{"cli", []string{"Inbox Zero", "Tune Stream"}},
		{"nothing-like-this", []string{}},
	}
	for _, tt := range tests {
		got := Filter(projects, State{Category: All, Type: All, Search: tt.search})
		if !equalStrings(titles(got), tt.want) {
			t.Errorf("search %q: got %v, want %v", tt.search, titles(got), tt.want)
		}
	}
}

func TestFilterUnicodeFolding(t *testing.T) {
	projects := []project.Project{{Title: "Straße Planner"}, {Title: "ÉCOLE"}}
	got := Filter(projects, State{Category: All, Type: All, Search: "école"})
	if !equalStrings(titles(got), []string{"ÉCOLE"}) {
		t.Errorf("got %v, want [ÉCOLE]", titles(got))
	}
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	projects := sampleProjects()
	before := titles(projects)

	got := Filter(projects, State{Category: All, Type: "App"})
	if !equalStrings(titles(got), []string{"Inbox Zero", "Tune Stream"}) {
		t.Errorf("got %v", titles(got))
	}
	if !equalStrings(titles(projects), before) {
		t.Error("input was modified")
	}

	got[0].Title = "changed"
	if projects[0].Title == "changed" {
		t.Error("result aliases the input slice")
	}
}

func TestMatch(t *testing.T) {
	p := project.Project{Title: "Alpha", Categories: []string{"Web"}, Types: []string{"Tool"}}
	if !Match(p, DefaultState()) {
		t.Error("default state should match")
	}
	if Match(p, State{Category: "CLI", Type: All}) {
		t.Error("category CLI should not match")
	}
	if Match(p, State{Category: All, Type: "Library"}) {
		t.Error("type Library should not match")
	}
	if !Match(p, State{Category: "Web", Type: "Tool", Search: "alp"}) {
		t.Error("all predicates true should match")
	}
}
