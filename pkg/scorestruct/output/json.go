// Package output serializes extraction results.
package output

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/ukaji3/scorestruct-go/pkg/scorestruct/models"
)

// ErrNilResult is returned when there is nothing to serialize.
var ErrNilResult = errors.New("nil result")

// ToJSON serializes a scorecard. Absent extras, total and fall of wickets
// are written as null; batting and bowling are always arrays.
func ToJSON(result *models.ScorecardResult, pretty bool) ([]byte, error) {
	if result == nil {
		return nil, ErrNilResult
	}
	// Copy so the caller's innings keep their nil slices.
	out := *result
	if out.Innings == nil {
		out.Innings = []models.ParsedInnings{}
	}
	innings := make([]models.ParsedInnings, len(out.Innings))
	for i, inn := range out.Innings {
		innings[i] = withArrays(inn)
	}
	out.Innings = innings
	return encode(out, pretty)
}

// InningsToJSON serializes a single innings.
func InningsToJSON(inn *models.ParsedInnings, pretty bool) ([]byte, error) {
	if inn == nil {
		return nil, ErrNilResult
	}
	return encode(withArrays(*inn), pretty)
}

func withArrays(inn models.ParsedInnings) models.ParsedInnings {
	if inn.Batting == nil {
		inn.Batting = []models.BattingEntry{}
	}
	if inn.Bowling == nil {
		inn.Bowling = []models.BowlingEntry{}
	}
	return inn
}

func encode(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Keep "&" and "<" readable in headers and URLs.
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encode appends a newline; callers add their own.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
