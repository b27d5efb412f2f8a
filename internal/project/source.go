package project

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
)

// DefaultPaths are the candidate locations of the project file, relative to
// the gallery page, in the order they are tried.
var DefaultPaths = []string{"../data/projects.json", "data/projects.json"}

// Source yields the raw bytes of a project file.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]byte, error)
}

// HTTPSource fetches the project file over HTTP. Any transport error or
// non-2xx status is a failure.
type HTTPSource struct {
	URL    string
	Client *http.Client // nil means http.DefaultClient
}

// Name returns the source URL.
func (s HTTPSource) Name() string { return s.URL }

// Fetch performs a GET request for the project file.
func (s HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("network response was not ok: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return data, nil
}

// FileSource reads the project file from a filesystem.
type FileSource struct {
	FS   fs.FS
	Path string
}

// Name returns the file path.
func (s FileSource) Name() string { return s.Path }

// Fetch reads the file.
func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fs.ReadFile(s.FS, s.Path)
}
