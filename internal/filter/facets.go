package filter

import "github.com/ziadkadry99/folio/internal/project"

// Facets are the category and type labels available for filtering, in the
// order they first appear in the project list.
type Facets struct {
	Categories []string `json:"categories"`
	Types      []string `json:"types"`
}

// DeriveFacets collects the distinct categories and types of projects.
func DeriveFacets(projects []project.Project) Facets {
	f := Facets{Categories: []string{}, Types: []string{}}
	seenCat := make(map[string]bool)
	seenType := make(map[string]bool)

	for _, p := range projects {
		for _, c := range p.Categories {
			if !seenCat[c] {
				seenCat[c] = true
				f.Categories = append(f.Categories, c)
			}
		}
		for _, t := range p.Types {
			if !seenType[t] {
				seenType[t] = true
				f.Types = append(f.Types, t)
			}
		}
	}
	return f
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
