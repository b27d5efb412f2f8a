package filter

import (
	"net/url"
	"testing"
)

func TestStateFromURLDefaults(t *testing.T) {
	u, _ := url.Parse("https://example.com/projects/")
	if got := StateFromURL(u); got != DefaultState() {
		t.Errorf("got %+v, want default", got)
	}
	if got := StateFromURL(nil); got != DefaultState() {
		t.Errorf("nil url: got %+v, want default", got)
	}
}

func TestStateFromURL(t *testing.T) {
	u, _ := url.Parse("/index.html?category=Web&type=Tool&search=Game+Finder")
	got := StateFromURL(u)
	want := State{Category: "Web", Type: "Tool", Search: "Game Finder"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestStateFromURLEmptyValues(t *testing.T) {
	u, _ := url.Parse("/?category=&search=")
	if got := StateFromURL(u); got != DefaultState() {
		t.Errorf("got %+v, want default", got)
	}
}

func TestWriteURLOmitsDefaults(t *testing.T) {
	u, _ := url.Parse("/gallery/?category=Web#top")

	if got := WriteURL(u, DefaultState()); got != "/gallery/#top" {
		t.Errorf("default state: got %q, want %q", got, "/gallery/#top")
	}

	got := WriteURL(u, State{Category: All, Type: "Tool"})
	if got != "/gallery/?type=Tool#top" {
		t.Errorf("got %q, want %q", got, "/gallery/?type=Tool#top")
	}
}

func TestWriteURLRoundTrip(t *testing.T) {
	for _, raw := range []string{
		"/",
		"/?category=Web",
		"/?type=Tool",
		"/?search=beta",
		"/?category=Web&search=beta",
		"/?category=CLI&search=two+words&type=Tool",
		"/p/?category=C%2B%2B",
		"/gallery/?category=Web#projects",
		"/#top",
	} {
		u, err := url.Parse(raw)
		if err != nil {
			t.Fatal(err)
		}
		got := WriteURL(u, StateFromURL(u))
		back, err := url.Parse(got)
		if err != nil {
			t.Fatalf("parse %q: %v", got, err)
		}
		if back.Path != u.Path {
			t.Errorf("%s: path %q, want %q", raw, back.Path, u.Path)
		}
		if back.Fragment != u.Fragment {
			t.Errorf("%s: fragment %q, want %q", raw, back.Fragment, u.Fragment)
		}
		if back.Query().Encode() != u.Query().Encode() {
			t.Errorf("%s: query %q, want %q", raw, back.Query().Encode(), u.Query().Encode())
		}
	}
}

func TestNormalize(t *testing.T) {
	f := Facets{Categories: []string{"Web"}, Types: []string{"Tool"}}

	s := State{Category: "Mobile", Type: "Tool", Search: "x"}.Normalize(f)
	want := State{Category: All, Type: "Tool", Search: "x"}
	if s != want {
		t.Errorf("got %+v, want %+v", s, want)
	}

	s = State{Category: "Web", Type: "Game"}.Normalize(f)
	if s.Category != "Web" || s.Type != All {
		t.Errorf("got %+v", s)
	}
}

func TestIsDefault(t *testing.T) {
	if !DefaultState().IsDefault() {
		t.Error("default state should report IsDefault")
	}
	if (State{Category: All, Type: All, Search: "x"}).IsDefault() {
		t.Error("search state should not be default")
	}
}
