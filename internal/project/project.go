// Package project defines the gallery's project records and loads them from
// an ordered list of candidate sources.
package project

// Project is one gallery entry. Records are immutable once loaded.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Types       []string `json:"types"`
	Link        string   `json:"link"`
	Image       string   `json:"image,omitempty"`
}

// Tags returns the project's categories followed by its types.
func (p Project) Tags() []string {
	tags := make([]string, 0, len(p.Categories)+len(p.Types))
	tags = append(tags, p.Categories...)
	tags = append(tags, p.Types...)
	return tags
}

// HasCategory reports whether label is one of the project's categories.
func (p Project) HasCategory(label string) bool {
	return contains(p.Categories, label)
}

// HasType reports whether label is one of the project's types.
func (p Project) HasType(label string) bool {
	return contains(p.Types, label)
}

func contains(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
