// Package render paints project cards into a dom.Container.
package render

import (
	"github.com/yuin/goldmark"

	"github.com/ziadkadry99/folio/internal/dom"
	"github.com/ziadkadry99/folio/internal/project"
)

// PlaceholderImage is shown for projects without an image.
const PlaceholderImage = "https://placehold.co/600x400/333333/ffffff?text=No+Image"

var (
	noResults = dom.Empty{
		Heading: "No projects found",
		Lines:   []string{"Try adjusting your filters or search term"},
	}
	loadFailedHeading = "Error Loading Projects"
	loadFailedHint    = "Could not load projects from JSON file. Please check the file path and format."
)

// Listener is told which card elements a render pass painted.
type Listener func(cards []dom.Element)

// Renderer replaces the container's content on every pass. It never diffs.
type Renderer struct {
	container dom.Container
	md        goldmark.Markdown
	listeners []Listener
}

// New returns a Renderer painting into container.
func New(container dom.Container) *Renderer {
	return &Renderer{container: container, md: NewMarkdown()}
}

// OnRender registers l to run after every Render pass.
func (r *Renderer) OnRender(l Listener) {
	r.listeners = append(r.listeners, l)
}

// NewCard builds the card content for p.
func (r *Renderer) NewCard(p project.Project) dom.Card {
	image := p.Image
	if image == "" {
		image = PlaceholderImage
	}
	return dom.Card{
		Title:           p.Title,
		DescriptionHTML: descriptionHTML(r.md, p.Description),
		Image:           image,
		Tags:            p.Tags(),
		Link:            p.Link,
	}
}

// Render clears the container and paints one card per project, or a single
// empty-state block when there are none. Listeners then receive the cards.
func (r *Renderer) Render(projects []project.Project) {
	r.container.Clear()

	cards := make([]dom.Element, 0, len(projects))
	if len(projects) == 0 {
		r.container.AppendEmpty(noResults)
	}
	for _, p := range projects {
		cards = append(cards, r.container.AppendCard(r.NewCard(p)))
	}

	for _, l := range r.listeners {
		l(cards)
	}
}

// RenderError clears the container and paints the load failure.
func (r *Renderer) RenderError(err error) {
	r.container.Clear()
	r.container.AppendEmpty(dom.Empty{
		Heading: loadFailedHeading,
		Lines:   []string{loadFailedHint, "Error details: " + err.Error()},
	})
}
