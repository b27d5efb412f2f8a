//go:build js && wasm

// Command wasm is the browser half of folio: it runs the gallery page on the
// live DOM. The site generator copies the compiled main.wasm next to
// index.html; page options arrive as data-* attributes on <html>.
package main

import (
	"context"
	"log"
	"net/url"
	"strconv"
	"strings"

	"github.com/ziadkadry99/folio/internal/dom/jsdom"
	"github.com/ziadkadry99/folio/internal/filter"
	"github.com/ziadkadry99/folio/internal/page"
	"github.com/ziadkadry99/folio/internal/prefs/remote"
	"github.com/ziadkadry99/folio/internal/project"
	"github.com/ziadkadry99/folio/internal/theme"
	"github.com/ziadkadry99/folio/internal/tilt"
)

func main() {
	doc := jsdom.New()
	if !doc.Ready() {
		log.Printf("folio: page has no #projects-container, nothing to do")
		return
	}
	ctx := context.Background()

	sel := theme.NewSelector(theme.DefaultTable(), themeStore(doc), doc,
		theme.WithStorageKey(doc.Dataset("storageKey")),
		theme.WithFallback(doc.Dataset("themeDefault")),
	)
	if ind := doc.Indicator(); ind != nil {
		sel.OnChange(ind.Show)
		ind.OnClick(func() {
			go func() {
				if _, err := sel.Cycle(ctx); err != nil {
					log.Printf("folio: cycling theme: %v", err)
				}
			}()
		})
	}
	if _, err := sel.Init(ctx, theme.Strategy(doc.Dataset("themeStrategy"))); err != nil {
		log.Printf("folio: applying theme: %v", err)
	}

	maxDeg, _ := strconv.ParseFloat(doc.Dataset("tiltMax"), 64)
	gallery := page.New(doc, project.NewLoader(sources(doc)...),
		page.WithTilter(tilt.New(maxDeg, nil)))

	go func() {
		if err := gallery.Init(ctx); err != nil {
			log.Printf("folio: %v", err)
			return
		}
		for _, group := range []string{filter.GroupCategory, filter.GroupType} {
			if bar := doc.Bar(group); bar != nil {
				bar.OnSelect(func(value string) { gallery.SelectFacet(group, value) })
			}
		}
		doc.Search().OnInput(gallery.Search)
	}()

	if doc.Dataset("reload") == "true" {
		doc.WatchReload("/ws/reload")
	}

	select {}
}

// themeStore picks where the palette name is persisted.
func themeStore(doc *jsdom.Document) theme.Store {
	if doc.Dataset("themeStore") != "server" {
		return jsdom.LocalStorage{}
	}
	loc := doc.Location()
	return remote.NewClient(loc.Scheme+"://"+loc.Host, nil)
}

// sources resolves the candidate data paths against the page location.
func sources(doc *jsdom.Document) []project.Source {
	paths := project.DefaultPaths
	if raw := doc.Dataset("dataPaths"); raw != "" {
		paths = strings.Split(raw, ",")
	}

	base := doc.Location()
	var out []project.Source
	for _, p := range paths {
		ref, err := url.Parse(strings.TrimSpace(p))
		if err != nil {
			log.Printf("folio: skipping data path %q: %v", p, err)
			continue
		}
		out = append(out, project.HTTPSource{URL: base.ResolveReference(ref).String()})
	}
	return out
}
