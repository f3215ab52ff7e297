// Package parser classifies scorecard rows and assembles innings records.
package parser

import "strings"

// Normalize collapses every run of whitespace to a single space and trims
// the result.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeCells normalizes each cell and drops the ones left empty.
func NormalizeCells(cells []string) []string {
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		if c = Normalize(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}
