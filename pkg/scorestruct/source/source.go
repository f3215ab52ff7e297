// Package source reads scorecard rows from files into innings blocks.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/scorestruct-go/pkg/scorestruct"
	"github.com/ukaji3/scorestruct-go/pkg/scorestruct/models"
)

// Open returns the Source for path, chosen by file extension.
func Open(path string) (scorestruct.Source, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", scorestruct.ErrFileNotFound, path)
	}

	var (
		src scorestruct.Source
		err error
	)
	// Pick the reader by extension
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		src, err = LoadFixture(path, FormatJSON)
	case ".yaml", ".yml":
		src, err = LoadFixture(path, FormatYAML)
	case ".xlsx", ".xlsm":
		src, err = OpenWorkbook(path)
	default:
		return nil, fmt.Errorf("%w: %s", scorestruct.ErrInvalidFormat, path)
	}
	if err != nil {
		return nil, err
	}
	return src, nil
}

// joinRows renders rows as text, one line per row, for fallback search.
func joinRows(rows []models.Row) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		first := true
		for _, c := range row {
			if c = strings.TrimSpace(c); c == "" {
				continue
			}
			if !first {
				b.WriteByte(' ')
			}
			b.WriteString(c)
			first = false
		}
	}
	return b.String()
}
