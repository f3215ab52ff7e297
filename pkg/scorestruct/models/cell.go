// Package models defines data structures for scorecard extraction.
package models

// Row represents a single scorecard row as ordered text cells.
// Cells are raw (not yet trimmed) and may be empty.
type Row []string

// HeaderSource lazily produces a candidate header for an innings block.
type HeaderSource func() string

// StaticHeader returns a HeaderSource that always yields s.
func StaticHeader(s string) HeaderSource {
	return func() string { return s }
}

// InningsBlock is the input for one innings: header candidates in priority
// order, the rows in document order, and the full text of the block.
type InningsBlock struct {
	// HeaderCandidates are evaluated in order; the first non-empty wins.
	HeaderCandidates []HeaderSource
	// Rows contains the block rows in source order.
	Rows []Row
	// FullText is the whole block text, used only for fallback label search.
	// Callers include the text surrounding a fall-of-wickets label.
	FullText string
}
