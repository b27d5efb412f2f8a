package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/folio/internal/filter"
	"github.com/ziadkadry99/folio/internal/project"
	"github.com/ziadkadry99/folio/internal/theme"
)

// projectsResponse is the body of GET /api/projects.
type projectsResponse struct {
	State    filter.State      `json:"state"`
	Total    int               `json:"total"`
	Projects []project.Project `json:"projects"`
}

// themeResponse is one entry of GET /api/themes.
type themeResponse struct {
	Name string            `json:"name"`
	Vars map[string]string `json:"vars"`
}

func registerGalleryRoutes(r chi.Router, catalog *Catalog, themes theme.Table, defaultTheme string) {
	r.Get("/api/projects", listProjectsHandler(catalog))
	r.Get("/api/facets", facetsHandler(catalog))
	r.Get("/api/themes", listThemesHandler(themes))
	r.Get("/theme.css", themeCSSHandler(themes, defaultTheme))
}

// listProjectsHandler filters exactly like the page does: labels that name
// no facet fall back to all.
func listProjectsHandler(catalog *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, facets := catalog.Projects()
		state := filter.FromQuery(r.URL.Query()).Normalize(facets)
		result := filter.Filter(projects, state)
		writeJSON(w, http.StatusOK, projectsResponse{
			State:    state,
			Total:    len(projects),
			Projects: result,
		})
	}
}

func facetsHandler(catalog *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, facets := catalog.Projects()
		writeJSON(w, http.StatusOK, facets)
	}
}

func listThemesHandler(themes theme.Table) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result := make([]themeResponse, 0, len(themes))
		for _, p := range themes {
			vars := make(map[string]string, len(p.Vars))
			for _, v := range p.Vars {
				vars[v.Name] = v.Value
			}
			result = append(result, themeResponse{Name: p.Name, Vars: vars})
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// themeCSSHandler serves one palette as a :root block. A missing name
// means fallback; unknown names get fallback too.
func themeCSSHandler(themes theme.Table, fallback string) http.HandlerFunc {
	if _, ok := themes.Lookup(fallback); !ok {
		fallback = themes[0].Name
	}
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if name == "" {
			name = fallback
		}
		p, ok := themes.Lookup(name)
		if !ok {
			log.Printf("server: %v: %q, using %s", theme.ErrUnknownTheme, name, fallback)
			p, _ = themes.Lookup(fallback)
		}
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Write([]byte(p.CSS()))
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
