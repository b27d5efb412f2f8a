package server

import (
	"sync"

	"github.com/ziadkadry99/folio/internal/filter"
	"github.com/ziadkadry99/folio/internal/project"
)

// Catalog is the project list behind the JSON API. It is replaced whole
// when the data file changes.
type Catalog struct {
	mu       sync.RWMutex
	path     string
	projects []project.Project
	facets   filter.Facets
}

// NewCatalog returns a catalog over the given projects.
func NewCatalog(projects []project.Project) *Catalog {
	c := &Catalog{}
	c.Set(projects)
	return c
}

// LoadCatalog reads the project file at path.
func LoadCatalog(path string) (*Catalog, error) {
	c := &Catalog{path: path}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads the project file. On error the previous list is kept.
func (c *Catalog) Reload() error {
	projects, err := project.ReadFile(c.path)
	if err != nil {
		return err
	}
	c.Set(projects)
	return nil
}

// Set replaces the project list.
func (c *Catalog) Set(projects []project.Project) {
	facets := filter.DeriveFacets(projects)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.projects = projects
	c.facets = facets
}

// Projects returns the current list and its facets.
func (c *Catalog) Projects() ([]project.Project, filter.Facets) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.projects, c.facets
}
