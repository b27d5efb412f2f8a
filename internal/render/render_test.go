package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/ziadkadry99/folio/internal/dom"
	"github.com/ziadkadry99/folio/internal/dom/memdom"
	"github.com/ziadkadry99/folio/internal/project"
)

func newDoc(t *testing.T) *memdom.Document {
	t.Helper()
	d, err := memdom.New("http://localhost/")
	if err != nil {
		t.Fatalf("memdom.New: %v", err)
	}
	return d
}

func TestRenderCards(t *testing.T) {
	d := newDoc(t)
	r := New(d.Container())

	r.Render([]project.Project{
		{Title: "Alpha", Description: "A **bold** tool", Categories: []string{"Web"}, Types: []string{"Tool"}, Link: "https://a.example"},
		{Title: "Beta", Image: "beta.png", Link: "https://b.example"},
	})

	if got := d.CountClass(dom.ClassCard); got != 2 {
		t.Errorf("cards = %d, want 2", got)
	}
	if got := d.CountClass(dom.ClassEmptyState); got != 0 {
		t.Errorf("empty states = %d, want 0", got)
	}

	out := d.ContainerHTML()
	for _, want := range []string{
		"<strong>bold</strong>",
		`<span class="project-tag">Web</span><span class="project-tag">Tool</span>`,
		PlaceholderImage,
		"beta.png",
		`target="_blank"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	d := newDoc(t)
	r := New(d.Container())

	r.Render([]project.Project{{Title: "Alpha"}})
	r.Render(nil)

	if got := d.CountClass(dom.ClassEmptyState); got != 1 {
		t.Errorf("empty states = %d, want 1", got)
	}
	if got := d.CountClass(dom.ClassCard); got != 0 {
		t.Errorf("cards = %d, want 0", got)
	}
	if !strings.Contains(d.ContainerHTML(), "No projects found") {
		t.Error("expected no-results message")
	}
}

func TestRenderReplacesPreviousOutput(t *testing.T) {
	d := newDoc(t)
	r := New(d.Container())

	r.Render(nil)
	r.Render([]project.Project{{Title: "A"}, {Title: "B"}, {Title: "C"}})
	r.Render([]project.Project{{Title: "D"}})

	if got := d.CountClass(dom.ClassCard); got != 1 {
		t.Errorf("cards = %d, want 1", got)
	}
	if got := d.CountClass(dom.ClassEmptyState); got != 0 {
		t.Errorf("empty states = %d, want 0", got)
	}
}

func TestRenderNotifiesListeners(t *testing.T) {
	d := newDoc(t)
	r := New(d.Container())

	var calls, lastCount int
	r.OnRender(func(cards []dom.Element) {
		calls++
		lastCount = len(cards)
	})

	r.Render([]project.Project{{Title: "A"}, {Title: "B"}})
	if calls != 1 || lastCount != 2 {
		t.Errorf("calls=%d count=%d, want 1 and 2", calls, lastCount)
	}

	r.Render(nil)
	if calls != 2 || lastCount != 0 {
		t.Errorf("calls=%d count=%d, want 2 and 0", calls, lastCount)
	}
}

func TestRenderError(t *testing.T) {
	d := newDoc(t)
	r := New(d.Container())

	r.Render([]project.Project{{Title: "A"}})
	r.RenderError(errors.New("network response was not ok: 404 Not Found"))

	out := d.ContainerHTML()
	if !strings.Contains(out, "Error Loading Projects") {
		t.Error("expected error heading")
	}
	if !strings.Contains(out, "404 Not Found") {
		t.Error("expected underlying cause in message")
	}
	if got := d.CountClass(dom.ClassCard); got != 0 {
		t.Errorf("cards = %d, want 0", got)
	}
}

func TestDescriptionDropsRawHTML(t *testing.T) {
	r := New(nil)
	card := r.NewCard(project.Project{Description: `hi <script>alert(1)</script>`})
	if strings.Contains(card.DescriptionHTML, "<script>") {
		t.Errorf("raw HTML passed through: %q", card.DescriptionHTML)
	}
	if r.NewCard(project.Project{}).DescriptionHTML != "" {
		t.Error("empty description should produce no markup")
	}
}
