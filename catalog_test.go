package wordreel

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	words := DefaultCatalog()
	if len(words) != 6 {
		t.Fatalf("len = %d, want 6", len(words))
	}
	if words[0].Title != "curious" || len(words[0].Projects) != 0 {
		t.Errorf("first word = %+v, want curious with no projects", words[0])
	}
	for i, w := range words[1:] {
		if len(w.Projects) == 0 {
			t.Errorf("word %d (%s) has no projects", i+1, w.Title)
		}
	}
	if err := ValidateCatalog(words); err != nil {
		t.Errorf("default catalog invalid: %v", err)
	}
}

func TestLoadCatalog(t *testing.T) {
	const doc = `
words:
  - title: curious
  - title: makers
    projects:
      - {id: 1, url: "https://example.com/a.png"}
      - id: 2
        url: file:///tmp/b.png
`
	words, err := LoadCatalog(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("len = %d, want 2", len(words))
	}
	if got := words[1].Projects[1]; got.ID != 2 || got.URL != "file:///tmp/b.png" {
		t.Errorf("project = %+v", got)
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantIndex int // -2 when a CatalogError is not expected
	}{
		{"empty document", "", -1},
		{"no words", "words: []\n", -1},
		{"blank title", "words:\n  - title: ' '\n", 0},
		{"missing url", "words:\n  - title: a\n  - title: b\n    projects:\n      - id: 1\n", 1},
		{"unknown field", "words:\n  - title: a\n    colour: red\n", -2},
		{"not yaml", "words: [", -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			var ce *CatalogError
			isCatalog := errors.As(err, &ce)
			if tt.wantIndex == -2 {
				if isCatalog {
					t.Errorf("got CatalogError %v, want parse error", err)
				}
				return
			}
			if !isCatalog {
				t.Fatalf("err = %v, want *CatalogError", err)
			}
			if ce.Index != tt.wantIndex {
				t.Errorf("Index = %d, want %d", ce.Index, tt.wantIndex)
			}
		})
	}
}
