//go:build js && wasm

// Package jsdom implements the gallery's document surface on the browser DOM
// through syscall/js. Callbacks run on the page's event loop; anything that
// blocks (network, storage over HTTP) must be moved onto its own goroutine.
package jsdom

import (
	"net/url"

	"syscall/js"

	"github.com/ziadkadry99/folio/internal/dom"
	"github.com/ziadkadry99/folio/internal/filter"
)

// Document is the live browser page.
type Document struct {
	window js.Value
	doc    js.Value

	container js.Value
	bars      map[string]js.Value
	search    js.Value
}

// New binds to the current page. Elements the page lacks are left
// undefined; the methods using them become no-ops.
func New() *Document {
	window := js.Global()
	doc := window.Get("document")
	d := &Document{
		window:    window,
		doc:       doc,
		container: byID(doc, dom.ContainerID),
		search:    byID(doc, dom.SearchInputID),
		bars:      make(map[string]js.Value),
	}
	for _, group := range []string{filter.GroupCategory, filter.GroupType} {
		if bar := byID(doc, dom.FilterBarID(group)); truthy(bar) {
			d.bars[group] = bar
		}
	}
	return d
}

// Ready reports whether the page has a card container.
func (d *Document) Ready() bool { return truthy(d.container) }

func byID(doc js.Value, id string) js.Value {
	return doc.Call("getElementById", id)
}

func truthy(v js.Value) bool {
	return !v.IsUndefined() && !v.IsNull()
}

// Container returns the card container.
func (d *Document) Container() dom.Container {
	return &container{doc: d.doc, n: d.container}
}

// FilterBar returns the button bar of group, or nil when the page lacks it.
func (d *Document) FilterBar(group string) dom.FilterBar {
	bar, ok := d.bars[group]
	if !ok {
		return nil
	}
	return &FilterBar{doc: d.doc, n: bar}
}

// Bar is FilterBar with the concrete type, for attaching listeners.
func (d *Document) Bar(group string) *FilterBar {
	bar, ok := d.bars[group]
	if !ok {
		return nil
	}
	return &FilterBar{doc: d.doc, n: bar}
}

// SearchInput returns the search box.
func (d *Document) SearchInput() dom.SearchInput { return d.Search() }

// Search is SearchInput with the concrete type, for attaching listeners.
func (d *Document) Search() *SearchInput { return &SearchInput{n: d.search} }

// Location returns the parsed window location.
func (d *Document) Location() *url.URL {
	u, err := url.Parse(d.window.Get("location").Get("href").String())
	if err != nil {
		return &url.URL{Path: "/"}
	}
	return u
}

// ReplaceURL replaces the current history entry.
func (d *Document) ReplaceURL(rawURL string) {
	d.window.Get("history").Call("replaceState", js.Null(), "", rawURL)
}

// SetProperty sets a style variable on the document element.
func (d *Document) SetProperty(name, value string) {
	d.doc.Get("documentElement").Get("style").Call("setProperty", name, value)
}

// Reload reloads the page.
func (d *Document) Reload() {
	d.window.Get("location").Call("reload")
}

// Dataset returns a data-* attribute of the document element.
func (d *Document) Dataset(name string) string {
	v := d.doc.Get("documentElement").Get("dataset").Get(name)
	if !truthy(v) {
		return ""
	}
	return v.String()
}
