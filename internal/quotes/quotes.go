// Package quotes provides the built-in quote catalogue shown by previews.
package quotes

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed quotes.yaml
var catalogueYAML []byte

// Quote is a line of text and its author.
type Quote struct {
	Text   string `yaml:"text"`
	Author string `yaml:"author"`
}

// Byline returns the author line as displayed under the quote.
func (q Quote) Byline() string {
	return "— " + q.Author
}

var (
	loadOnce  sync.Once
	catalogue []Quote
	loadErr   error
)

// All returns the built-in catalogue.
func All() ([]Quote, error) {
	loadOnce.Do(func() {
		var parsed []Quote
		if err := yaml.Unmarshal(catalogueYAML, &parsed); err != nil {
			loadErr = fmt.Errorf("parse quote catalogue: %w", err)
			return
		}
		if len(parsed) == 0 {
			loadErr = fmt.Errorf("quote catalogue is empty")
			return
		}
		catalogue = parsed
	})
	if loadErr != nil {
		return nil, loadErr
	}
	out := make([]Quote, len(catalogue))
	copy(out, catalogue)
	return out, nil
}

// Default returns the quote shown in the settings preview.
func Default() Quote {
	all, err := All()
	if err != nil {
		return Quote{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs"}
	}
	return all[0]
}

// Pick returns the quote at index n, wrapping around the catalogue.
func Pick(n int) Quote {
	all, err := All()
	if err != nil {
		return Default()
	}
	idx := ((n % len(all)) + len(all)) % len(all)
	return all[idx]
}
