//go:build js && wasm

package jsdom

import (
	"syscall/js"

	"github.com/ziadkadry99/folio/internal/dom"
)

// Indicator is the small theme control in the page corner.
type Indicator struct {
	n js.Value
}

// Indicator returns the theme control, or nil when the page has none.
func (d *Document) Indicator() *Indicator {
	n := byID(d.doc, dom.ThemeIndicatorID)
	if !truthy(n) {
		return nil
	}
	return &Indicator{n: n}
}

// Show names the active palette in the control's tooltip.
func (i *Indicator) Show(name string) {
	i.n.Set("title", "Theme: "+name)
	i.n.Get("dataset").Set("theme", name)
}

// OnClick calls fn on every click.
func (i *Indicator) OnClick(fn func()) {
	i.n.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	}))
}
