package memdom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ziadkadry99/folio/internal/dom"
)

type container struct {
	n *html.Node
}

func (c *container) Clear() {
	for c.n.FirstChild != nil {
		c.n.RemoveChild(c.n.FirstChild)
	}
}

func (c *container) AppendCard(card dom.Card) dom.Element {
	el := element(atom.Div, "class", dom.ClassCard)

	image := element(atom.Div, "class", "project-image",
		"style", "background-image: url('"+card.Image+"')")
	el.AppendChild(image)

	content := element(atom.Div, "class", "project-content")
	title := element(atom.H3, "class", "project-title")
	title.AppendChild(textNode(card.Title))
	content.AppendChild(title)

	desc := element(atom.Div, "class", "project-description")
	if nodes, err := html.ParseFragment(strings.NewReader(card.DescriptionHTML), desc); err == nil {
		for _, n := range nodes {
			desc.AppendChild(n)
		}
	} else {
		desc.AppendChild(textNode(card.DescriptionHTML))
	}
	content.AppendChild(desc)

	meta := element(atom.Div, "class", "project-meta")
	for _, tag := range card.Tags {
		span := element(atom.Span, "class", "project-tag")
		span.AppendChild(textNode(tag))
		meta.AppendChild(span)
	}
	content.AppendChild(meta)

	link := element(atom.A, "href", card.Link, "target", "_blank", "rel", "noopener", "class", "project-link")
	link.AppendChild(textNode(card.Link))
	content.AppendChild(link)

	el.AppendChild(content)
	c.n.AppendChild(el)
	return &cardElement{n: el}
}

func (c *container) AppendEmpty(e dom.Empty) {
	el := element(atom.Div, "class", dom.ClassEmptyState)
	h := element(atom.H3)
	h.AppendChild(textNode(e.Heading))
	el.AppendChild(h)
	for _, line := range e.Lines {
		p := element(atom.P)
		p.AppendChild(textNode(line))
		el.AppendChild(p)
	}
	c.n.AppendChild(el)
}

type cardElement struct {
	n *html.Node
}

func (e *cardElement) Transform() string { return getStyle(e.n, "transform") }

func (e *cardElement) SetTransform(value string) { setStyle(e.n, "transform", value) }

type filterBar struct {
	n *html.Node
}

func (b *filterBar) AddButton(value, label string) {
	btn := element(atom.Button, "class", dom.ClassFilterButton, "data-filter", value)
	btn.AppendChild(textNode(label))
	b.n.AppendChild(btn)
}

func (b *filterBar) SetActive(value string) {
	for c := b.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || !hasClass(c, dom.ClassFilterButton) {
			continue
		}
		removeClass(c, dom.ClassActive)
		if attr(c, "data-filter") == value {
			addClass(c, dom.ClassActive)
		}
	}
}

type input struct {
	n *html.Node
}

func (i *input) Value() string { return attr(i.n, "value") }

func (i *input) SetValue(v string) { setAttr(i.n, "value", v) }

// element builds a node from an atom and alternating attribute key/values.
func element(a atom.Atom, kv ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(kv); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func addClass(n *html.Node, class string) {
	if hasClass(n, class) {
		return
	}
	classes := strings.Fields(attr(n, "class"))
	setAttr(n, "class", strings.Join(append(classes, class), " "))
}

func removeClass(n *html.Node, class string) {
	var kept []string
	for _, c := range strings.Fields(attr(n, "class")) {
		if c != class {
			kept = append(kept, c)
		}
	}
	setAttr(n, "class", strings.Join(kept, " "))
}

// getStyle reads one declaration from an inline style attribute.
func getStyle(n *html.Node, prop string) string {
	for _, decl := range strings.Split(attr(n, "style"), ";") {
		k, v, ok := strings.Cut(decl, ":")
		if ok && strings.TrimSpace(k) == prop {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// setStyle replaces or appends one declaration in an inline style attribute.
func setStyle(n *html.Node, prop, value string) {
	var decls []string
	found := false
	for _, decl := range strings.Split(attr(n, "style"), ";") {
		if strings.TrimSpace(decl) == "" {
			continue
		}
		k, _, _ := strings.Cut(decl, ":")
		if strings.TrimSpace(k) == prop {
			decl = prop + ": " + value
			found = true
		}
		decls = append(decls, strings.TrimSpace(decl))
	}
	if !found {
		decls = append(decls, prop+": "+value)
	}
	setAttr(n, "style", strings.Join(decls, "; "))
}

func text(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	})
	return sb.String()
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findFirst(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && pred(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, pred); found != nil {
			return found
		}
	}
	return nil
}

func byID(root *html.Node, id string) *html.Node {
	return findFirst(root, func(n *html.Node) bool { return attr(n, "id") == id })
}
