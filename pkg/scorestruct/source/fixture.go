package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/scorestruct-go/pkg/scorestruct"
	"github.com/ukaji3/scorestruct-go/pkg/scorestruct/models"
)

// Format is a fixture document encoding.
type Format string

const (
	// FormatJSON decodes fixtures as JSON.
	FormatJSON Format = "json"
	// FormatYAML decodes fixtures as YAML.
	FormatYAML Format = "yaml"
)

// fixtureDoc is the on-disk layout of a captured scorecard.
type fixtureDoc struct {
	URL     string         `json:"url" yaml:"url"`
	Innings []fixtureBlock `json:"innings" yaml:"innings"`
}

type fixtureBlock struct {
	// Headers are header candidates in priority order.
	Headers []string   `json:"headers" yaml:"headers"`
	Rows    [][]string `json:"rows" yaml:"rows"`
	// Text is the block text for fallback search. When empty it is built
	// from the rows.
	Text string `json:"text" yaml:"text"`
}

// Fixture is a Source backed by rows captured to a JSON or YAML file.
type Fixture struct {
	path string
	doc  fixtureDoc
}

// LoadFixture reads and decodes the fixture at path.
func LoadFixture(path string, format Format) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, scorestruct.NewSourceError(path, "fixture", err)
	}
	doc, err := decodeFixture(data, format)
	if err != nil {
		return nil, scorestruct.NewSourceError(path, "fixture",
			fmt.Errorf("%w: %v", scorestruct.ErrInvalidFormat, err))
	}
	return &Fixture{path: path, doc: doc}, nil
}

func decodeFixture(data []byte, format Format) (fixtureDoc, error) {
	var doc fixtureDoc
	switch format {
	case FormatJSON:
		err := json.Unmarshal(data, &doc)
		return doc, err
	case FormatYAML:
		err := yaml.Unmarshal(data, &doc)
		return doc, err
	default:
		return doc, fmt.Errorf("unknown fixture format %q", format)
	}
}

// URL returns the fixture's recorded URL, or its path when none was recorded.
func (f *Fixture) URL() string {
	if f.doc.URL != "" {
		return f.doc.URL
	}
	return f.path
}

// Blocks returns one innings block per fixture entry.
func (f *Fixture) Blocks(ctx context.Context) ([]models.InningsBlock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	blocks := make([]models.InningsBlock, 0, len(f.doc.Innings))
	for _, in := range f.doc.Innings {
		rows := make([]models.Row, len(in.Rows))
		for i, r := range in.Rows {
			rows[i] = models.Row(r)
		}
		headers := make([]models.HeaderSource, len(in.Headers))
		for i, h := range in.Headers {
			headers[i] = models.StaticHeader(h)
		}
		// Fall back to the row text for label search
		text := in.Text
		if text == "" {
			text = joinRows(rows)
		}
		blocks = append(blocks, models.InningsBlock{
			HeaderCandidates: headers,
			Rows:             rows,
			FullText:         text,
		})
	}
	return blocks, nil
}
