package parser

import (
	"strings"

	"github.com/ukaji3/scorestruct-go/pkg/scorestruct/models"
)

// DefaultHeaderFallbackLen is how many characters of the block text are
// used as a header when no candidate yields one.
const DefaultHeaderFallbackLen = 80

// DefaultHeader is returned when neither the candidates nor the block text
// produce anything.
const DefaultHeader = "Innings"

// ResolveHeader returns the first candidate whose normalized value is
// non-empty. It falls back to the first characters of the normalized
// fullText, then to DefaultHeader.
func ResolveHeader(candidates []models.HeaderSource, fullText string) string {
	return resolveHeader(candidates, fullText, DefaultHeaderFallbackLen)
}

func resolveHeader(candidates []models.HeaderSource, fullText string, limit int) string {
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if h := Normalize(c()); h != "" {
			return h
		}
	}
	if limit <= 0 {
		limit = DefaultHeaderFallbackLen
	}
	// Truncate by rune so multi-byte names are not split
	text := []rune(Normalize(fullText))
	if len(text) > limit {
		text = text[:limit]
	}
	if h := strings.TrimSpace(string(text)); h != "" {
		return h
	}
	return DefaultHeader
}
