//go:build js && wasm

package jsdom

import (
	"syscall/js"

	"github.com/ziadkadry99/folio/internal/dom"
)

type container struct {
	doc js.Value
	n   js.Value
}

func (c *container) Clear() {
	if truthy(c.n) {
		c.n.Set("innerHTML", "")
	}
}

func (c *container) create(tag, class string) js.Value {
	el := c.doc.Call("createElement", tag)
	if class != "" {
		el.Set("className", class)
	}
	return el
}

func (c *container) AppendCard(card dom.Card) dom.Element {
	el := c.create("div", dom.ClassCard)

	img := c.create("div", "project-image")
	img.Get("style").Set("backgroundImage", "url('"+card.Image+"')")
	el.Call("appendChild", img)

	content := c.create("div", "project-content")
	title := c.create("h3", "project-title")
	title.Set("textContent", card.Title)
	content.Call("appendChild", title)

	desc := c.create("div", "project-description")
	desc.Set("innerHTML", card.DescriptionHTML)
	content.Call("appendChild", desc)

	meta := c.create("div", "project-meta")
	for _, tag := range card.Tags {
		span := c.create("span", "project-tag")
		span.Set("textContent", tag)
		meta.Call("appendChild", span)
	}
	content.Call("appendChild", meta)

	link := c.create("a", "project-link")
	link.Set("href", card.Link)
	link.Set("target", "_blank")
	link.Set("rel", "noopener")
	link.Set("textContent", card.Link)
	content.Call("appendChild", link)

	el.Call("appendChild", content)
	if truthy(c.n) {
		c.n.Call("appendChild", el)
	}
	return element{n: el}
}

func (c *container) AppendEmpty(e dom.Empty) {
	el := c.create("div", dom.ClassEmptyState)
	h := c.create("h3", "")
	h.Set("textContent", e.Heading)
	el.Call("appendChild", h)
	for _, line := range e.Lines {
		p := c.create("p", "")
		p.Set("textContent", line)
		el.Call("appendChild", p)
	}
	if truthy(c.n) {
		c.n.Call("appendChild", el)
	}
}

type element struct {
	n js.Value
}

func (e element) Transform() string {
	return e.n.Get("style").Get("transform").String()
}

func (e element) SetTransform(value string) {
	e.n.Get("style").Set("transform", value)
}

// FilterBar is a facet group's button bar.
type FilterBar struct {
	doc js.Value
	n   js.Value
}

func (b *FilterBar) AddButton(value, text string) {
	btn := b.doc.Call("createElement", "button")
	btn.Set("className", dom.ClassFilterButton)
	btn.Get("dataset").Set("filter", value)
	btn.Set("textContent", text)
	b.n.Call("appendChild", btn)
}

func (b *FilterBar) SetActive(value string) {
	buttons := b.n.Call("querySelectorAll", "."+dom.ClassFilterButton)
	for i := 0; i < buttons.Length(); i++ {
		btn := buttons.Index(i)
		active := btn.Get("dataset").Get("filter").String() == value
		btn.Get("classList").Call("toggle", dom.ClassActive, active)
	}
}

// OnSelect calls fn with the value of every clicked button.
func (b *FilterBar) OnSelect(fn func(value string)) {
	b.n.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
		btn := args[0].Get("target").Call("closest", "."+dom.ClassFilterButton)
		if !truthy(btn) {
			return nil
		}
		fn(btn.Get("dataset").Get("filter").String())
		return nil
	}))
}

// SearchInput is the free-text search box.
type SearchInput struct {
	n js.Value
}

func (i *SearchInput) Value() string {
	if !truthy(i.n) {
		return ""
	}
	return i.n.Get("value").String()
}

func (i *SearchInput) SetValue(v string) {
	if truthy(i.n) {
		i.n.Set("value", v)
	}
}

// OnInput calls fn with the box's text on every edit.
func (i *SearchInput) OnInput(fn func(text string)) {
	if !truthy(i.n) {
		return
	}
	i.n.Call("addEventListener", "input", js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(i.n.Get("value").String())
		return nil
	}))
}
