package project

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// LoadError reports that every candidate source failed. Err is the failure
// of the last source tried.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("loading projects: %v", e.Err)
	}
	return fmt.Sprintf("loading projects from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Loader tries its sources in order and returns the first project list that
// can be fetched and parsed. There are no retries beyond the list itself.
type Loader struct {
	Sources []Source
}

// NewLoader returns a Loader over the given sources.
func NewLoader(sources ...Source) *Loader {
	return &Loader{Sources: sources}
}

// Load returns the projects from the first source that succeeds, or a
// *LoadError when all of them fail.
func (l *Loader) Load(ctx context.Context) ([]Project, error) {
	if len(l.Sources) == 0 {
		return nil, &LoadError{Err: errors.New("no project sources configured")}
	}

	var last *LoadError
	for i, src := range l.Sources {
		projects, err := load(ctx, src)
		if err == nil {
			return projects, nil
		}

		log.Printf("project: loading from %s: %v", src.Name(), err)
		last = &LoadError{Source: src.Name(), Err: err}

		if ctx.Err() != nil {
			break
		}
		if i < len(l.Sources)-1 {
			log.Printf("project: trying alternative source %s", l.Sources[i+1].Name())
		}
	}
	return nil, last
}

func load(ctx context.Context, src Source) ([]Project, error) {
	data, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
