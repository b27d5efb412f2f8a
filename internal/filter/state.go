// Package filter holds the gallery's filter state, its facet groups, and the
// predicate that selects matching projects.
package filter

import (
	"net/url"
)

// All is the sentinel label that disables a facet.
const All = "all"

// Query parameter names.
const (
	ParamCategory = "category"
	ParamType     = "type"
	ParamSearch   = "search"
)

// State is the active filter selection: one category, one type and the
// search text.
type State struct {
	Category string `json:"category"`
	Type     string `json:"type"`
	Search   string `json:"search"`
}

// DefaultState returns the unfiltered state.
func DefaultState() State {
	return State{Category: All, Type: All}
}

// FromQuery reads a State from query parameters. Absent or empty parameters
// take their default value.
func FromQuery(q url.Values) State {
	s := DefaultState()
	if v := q.Get(ParamCategory); v != "" {
		s.Category = v
	}
	if v := q.Get(ParamType); v != "" {
		s.Type = v
	}
	if v := q.Get(ParamSearch); v != "" {
		s.Search = v
	}
	return s
}

// StateFromURL reads a State from the query of u.
func StateFromURL(u *url.URL) State {
	if u == nil {
		return DefaultState()
	}
	return FromQuery(u.Query())
}

// Query serializes the non-default fields of s.
func (s State) Query() url.Values {
	q := url.Values{}
	if s.Category != "" && s.Category != All {
		q.Set(ParamCategory, s.Category)
	}
	if s.Type != "" && s.Type != All {
		q.Set(ParamType, s.Type)
	}
	if s.Search != "" {
		q.Set(ParamSearch, s.Search)
	}
	return q
}

// IsDefault reports whether s filters nothing.
func (s State) IsDefault() bool {
	return len(s.Query()) == 0
}

// WriteURL returns the location to replace the current history entry with:
// the path of u followed by the serialized state, or the bare path when s is
// the default state. A fragment on u is kept.
func WriteURL(u *url.URL, s State) string {
	path := "/"
	fragment := ""
	if u != nil {
		if u.Path != "" {
			path = u.EscapedPath()
		}
		if u.Fragment != "" {
			fragment = "#" + u.EscapedFragment()
		}
	}
	q := s.Query()
	if len(q) == 0 {
		return path + fragment
	}
	return path + "?" + q.Encode() + fragment
}

// Normalize resets facet labels that do not exist in f to All.
func (s State) Normalize(f Facets) State {
	if s.Category != All && !containsLabel(f.Categories, s.Category) {
		s.Category = All
	}
	if s.Type != All && !containsLabel(f.Types, s.Type) {
		s.Type = All
	}
	return s
}
