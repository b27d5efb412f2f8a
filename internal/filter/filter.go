package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/ziadkadry99/folio/internal/project"
)

// matcher evaluates one State against many projects. A cases.Caser is not
// safe for concurrent use, so each matcher owns its own.
type matcher struct {
	state  State
	needle string
	fold   cases.Caser
}

func newMatcher(s State) *matcher {
	m := &matcher{state: s, fold: cases.Fold()}
	if s.Search != "" {
		m.needle = m.fold.String(s.Search)
	}
	return m
}

func (m *matcher) match(p project.Project) bool {
	return m.matchCategory(p) && m.matchType(p) && m.matchSearch(p)
}

func (m *matcher) matchCategory(p project.Project) bool {
	return m.state.Category == "" || m.state.Category == All || p.HasCategory(m.state.Category)
}

func (m *matcher) matchType(p project.Project) bool {
	return m.state.Type == "" || m.state.Type == All || p.HasType(m.state.Type)
}

func (m *matcher) matchSearch(p project.Project) bool {
	if m.needle == "" {
		return true
	}
	if m.contains(p.Title) || m.contains(p.Description) {
		return true
	}
	for _, c := range p.Categories {
		if m.contains(c) {
			return true
		}
	}
	for _, t := range p.Types {
		if m.contains(t) {
			return true
		}
	}
	return false
}

func (m *matcher) contains(field string) bool {
	return strings.Contains(m.fold.String(field), m.needle)
}

// Match reports whether p satisfies the category, type and search predicates
// of s. All three must hold.
func Match(p project.Project, s State) bool {
	return newMatcher(s).match(p)
}

// Filter returns the projects matching s in their original order. The input
// is never modified; the result is a new, possibly empty, slice.
func Filter(projects []project.Project, s State) []project.Project {
	m := newMatcher(s)
	out := make([]project.Project, 0, len(projects))
	for _, p := range projects {
		if m.match(p) {
			out = append(out, p)
		}
	}
	return out
}
