package parser

import "regexp"

var (
	extrasLine    = regexp.MustCompile(`(?im)^[ \t]*Extras[ \t]*:[^\n]*`)
	totalLine     = regexp.MustCompile(`(?im)^[ \t]*Total[^\n]*`)
	paragraphStop = regexp.MustCompile(`\r?\n[ \t\r]*\n`)
)

// findExtras returns the first extras line in text.
func findExtras(text string) (string, bool) {
	return findLine(extrasLine, text)
}

// findTotal returns the first total line in text.
func findTotal(text string) (string, bool) {
	return findLine(totalLine, text)
}

func findLine(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindString(text)
	if m == "" {
		return "", false
	}
	if m = Normalize(m); m == "" {
		return "", false
	}
	return m, true
}

// findFallOfWickets returns the paragraph holding the first fall-of-wickets
// label. The wicket list usually follows the label, so the match runs from
// the start of the label's line to the next blank line.
func findFallOfWickets(text string) (string, bool) {
	loc := fowLabel.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	// Back up to the start of the label's line.
	start := loc[0]
	for start > 0 && text[start-1] != '\n' {
		start--
	}
	// A blank line (LF or CRLF) ends the paragraph.
	end := len(text)
	if stop := paragraphStop.FindStringIndex(text[loc[1]:]); stop != nil {
		end = loc[1] + stop[0]
	}
	if m := Normalize(text[start:end]); m != "" {
		return m, true
	}
	return "", false
}
