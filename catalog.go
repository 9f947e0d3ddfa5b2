package wordreel

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Project is one image shown alongside a word.
type Project struct {
	ID  int    `yaml:"id"`
	URL string `yaml:"url"`
}

// Word is one catalog entry: the title that is spelled out and the projects
// that burst around it.
type Word struct {
	Title    string    `yaml:"title"`
	Projects []Project `yaml:"projects"`
}

// DefaultCatalog returns the built-in word list. The first word has no
// projects; it is the resting word shown on its own.
func DefaultCatalog() []Word {
	return []Word{
		{Title: "curious"},
		{Title: "animators", Projects: []Project{
			{ID: 1, URL: "https://picsum.photos/300/200"},
			{ID: 2, URL: "https://picsum.photos/400"},
			{ID: 3, URL: "https://picsum.photos/500/300"},
		}},
		{Title: "strategists", Projects: []Project{
			{ID: 1, URL: "https://picsum.photos/400"},
			{ID: 2, URL: "https://picsum.photos/200/300"},
			{ID: 3, URL: "https://picsum.photos/400/200"},
		}},
		{Title: "designers", Projects: []Project{
			{ID: 1, URL: "https://picsum.photos/500"},
			{ID: 2, URL: "https://picsum.photos/300/200"},
			{ID: 3, URL: "https://picsum.photos/400"},
		}},
		{Title: "developers", Projects: []Project{
			{ID: 1, URL: "https://picsum.photos/400"},
			{ID: 2, URL: "https://picsum.photos/200/300"},
			{ID: 3, URL: "https://picsum.photos/400/200"},
		}},
		{Title: "creators", Projects: []Project{
			{ID: 1, URL: "https://picsum.photos/300/200"},
			{ID: 2, URL: "https://picsum.photos/400"},
			{ID: 3, URL: "https://picsum.photos/500/300"},
		}},
	}
}

// catalogFile is the YAML document shape:
//
//	words:
//	  - title: curious
//	  - title: animators
//	    projects:
//	      - {id: 1, url: "https://picsum.photos/300/200"}
type catalogFile struct {
	Words []Word `yaml:"words"`
}

// LoadCatalog parses a YAML word catalog and validates it.
func LoadCatalog(r io.Reader) ([]Word, error) {
	var f catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &CatalogError{Index: -1, Reason: "empty document"}
		}
		return nil, fmt.Errorf("wordreel: parse catalog: %w", err)
	}
	if err := ValidateCatalog(f.Words); err != nil {
		return nil, err
	}
	return f.Words, nil
}

// ValidateCatalog checks that words is non-empty, every title is non-blank and
// every project has a URL.
func ValidateCatalog(words []Word) error {
	if len(words) == 0 {
		return &CatalogError{Index: -1, Reason: "no words"}
	}
	for i, w := range words {
		if strings.TrimSpace(w.Title) == "" {
			return &CatalogError{Index: i, Reason: "empty title"}
		}
		for j, p := range w.Projects {
			if strings.TrimSpace(p.URL) == "" {
				return &CatalogError{Index: i, Reason: fmt.Sprintf("project %d has no url", j)}
			}
		}
	}
	return nil
}
