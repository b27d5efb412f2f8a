// Package memdom implements the gallery's document surface on an in-memory
// HTML tree. It backs the headless `folio query` command and the tests.
package memdom

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ziadkadry99/folio/internal/dom"
	"github.com/ziadkadry99/folio/internal/filter"
)

// Document is an in-memory page. It is not safe for concurrent use, matching
// the single-threaded browser model it stands in for.
type Document struct {
	root      *html.Node
	htmlEl    *html.Node
	container *html.Node
	bars      map[string]*html.Node
	search    *html.Node
	location  *url.URL

	// Replacements counts ReplaceURL calls; history never grows.
	Replacements int
}

const skeleton = `<!DOCTYPE html>
<html><head><title>folio</title></head>
<body>
<input type="text" id="search-input">
<div id="category-filters"></div>
<div id="type-filters"></div>
<div id="projects-container"></div>
</body></html>`

// New returns a document with the bare gallery skeleton at the given location.
func New(location string) (*Document, error) {
	return Parse(strings.NewReader(skeleton), location)
}

// Parse loads a page and locates the gallery's elements by ID.
func Parse(r io.Reader, location string) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	loc, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("parsing location: %w", err)
	}

	d := &Document{root: root, location: loc, bars: make(map[string]*html.Node)}
	d.htmlEl = findFirst(root, func(n *html.Node) bool { return n.DataAtom == atom.Html })

	ids := map[string]**html.Node{
		dom.ContainerID:   &d.container,
		dom.SearchInputID: &d.search,
	}
	for id, dst := range ids {
		if *dst = byID(root, id); *dst == nil {
			return nil, fmt.Errorf("document has no #%s element", id)
		}
	}
	for _, group := range []string{filter.GroupCategory, filter.GroupType} {
		id := dom.FilterBarID(group)
		n := byID(root, id)
		if n == nil {
			return nil, fmt.Errorf("document has no #%s element", id)
		}
		d.bars[group] = n
	}
	return d, nil
}

// Container returns the card container.
func (d *Document) Container() dom.Container { return &container{n: d.container} }

// FilterBar returns the button bar of group, or nil for an unknown group.
func (d *Document) FilterBar(group string) dom.FilterBar {
	n, ok := d.bars[group]
	if !ok {
		return nil
	}
	return &filterBar{n: n}
}

// SearchInput returns the search box.
func (d *Document) SearchInput() dom.SearchInput { return &input{n: d.search} }

// Location returns a copy of the current location.
func (d *Document) Location() *url.URL {
	u := *d.location
	return &u
}

// ReplaceURL resolves rawURL against the current location and makes it the
// current location.
func (d *Document) ReplaceURL(rawURL string) {
	ref, err := url.Parse(rawURL)
	if err != nil {
		return
	}
	d.location = d.location.ResolveReference(ref)
	d.Replacements++
}

// SetProperty sets a style property on the root element.
func (d *Document) SetProperty(name, value string) {
	if d.htmlEl == nil {
		return
	}
	setStyle(d.htmlEl, name, value)
}

// Property returns a style property of the root element.
func (d *Document) Property(name string) string {
	if d.htmlEl == nil {
		return ""
	}
	return getStyle(d.htmlEl, name)
}

// Render writes the whole document.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// ContainerHTML returns the markup inside the card container.
func (d *Document) ContainerHTML() string {
	var buf bytes.Buffer
	for c := d.container.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&buf, c)
	}
	return buf.String()
}

// CountClass returns how many elements inside the container carry class.
func (d *Document) CountClass(class string) int {
	n := 0
	walk(d.container, func(el *html.Node) {
		if el != d.container && hasClass(el, class) {
			n++
		}
	})
	return n
}

// Button is a facet button as painted.
type Button struct {
	Value  string
	Text   string
	Active bool
}

// Buttons returns the buttons of a facet group in document order.
func (d *Document) Buttons(group string) []Button {
	bar, ok := d.bars[group]
	if !ok {
		return nil
	}
	var out []Button
	for c := bar.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || !hasClass(c, dom.ClassFilterButton) {
			continue
		}
		out = append(out, Button{
			Value:  attr(c, "data-filter"),
			Text:   text(c),
			Active: hasClass(c, dom.ClassActive),
		})
	}
	return out
}

// Transforms returns the transform of every painted card, in order.
func (d *Document) Transforms() []string {
	var out []string
	walk(d.container, func(el *html.Node) {
		if hasClass(el, dom.ClassCard) {
			out = append(out, getStyle(el, "transform"))
		}
	})
	return out
}
