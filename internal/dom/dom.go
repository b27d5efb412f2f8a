// Package dom describes the page surface the gallery drives. Any document
// implementation (the browser, an in-memory tree) can supply it.
package dom

import "net/url"

// Element IDs and class names shared with the stylesheet and page template.
const (
	ContainerID       = "projects-container"
	CategoryFiltersID = "category-filters"
	TypeFiltersID     = "type-filters"
	SearchInputID     = "search-input"
	ThemeIndicatorID  = "theme-indicator"

	ClassFilterButton = "filter-btn"
	ClassCard         = "project-card"
	ClassEmptyState   = "empty-state"
	ClassActive       = "active"
)

// Card is the content of one project card.
type Card struct {
	Title           string
	DescriptionHTML string // trusted, already sanitized markup
	Image           string
	Tags            []string
	Link            string
}

// Empty is the content of an empty-state block.
type Empty struct {
	Heading string
	Lines   []string
}

// Element is a painted card. Its transform is the only property the gallery
// touches after painting.
type Element interface {
	Transform() string
	SetTransform(value string)
}

// Container holds the rendered cards.
type Container interface {
	Clear()
	AppendCard(c Card) Element
	AppendEmpty(e Empty)
}

// FilterBar holds the buttons of one facet group.
type FilterBar interface {
	AddButton(value, text string)
	SetActive(value string)
}

// SearchInput is the free-text search box.
type SearchInput interface {
	Value() string
	SetValue(v string)
}

// Document is the page the gallery runs in.
type Document interface {
	Container() Container
	FilterBar(group string) FilterBar
	SearchInput() SearchInput
	Location() *url.URL
	// ReplaceURL replaces the current history entry without navigating.
	ReplaceURL(rawURL string)
}

// FilterBarID returns the element ID of a facet group's button bar.
func FilterBarID(group string) string {
	return group + "-filters"
}
