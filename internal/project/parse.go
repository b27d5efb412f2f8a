package project

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Parse decodes a project list. The input is a JSON array of project objects;
// // line comments, /* block comments */ and trailing commas are tolerated.
func Parse(data []byte) ([]Project, error) {
	stripped := jsonc.ToJSON(data)

	var projects []Project
	if err := json.Unmarshal(stripped, &projects); err != nil {
		return nil, fmt.Errorf("parsing projects: %w", err)
	}
	if projects == nil {
		return nil, fmt.Errorf("parsing projects: expected a JSON array")
	}

	for i := range projects {
		if projects[i].Categories == nil {
			projects[i].Categories = []string{}
		}
		if projects[i].Types == nil {
			projects[i].Types = []string{}
		}
	}
	return projects, nil
}

// ReadFile reads and parses a project file from disk.
func ReadFile(path string) ([]Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	projects, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return projects, nil
}
