package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/scorestruct-go/pkg/scorestruct/models"
)

// OutcomeKind tags the result of classifying one row.
type OutcomeKind int

const (
	// Discard marks a row that carries no scorecard data.
	Discard OutcomeKind = iota
	// Batting marks a batter's line.
	Batting
	// Bowling marks a bowler's line.
	Bowling
	// Extras marks the extras line.
	Extras
	// Total marks the innings total line.
	Total
	// FallOfWickets marks the fall-of-wickets summary.
	FallOfWickets
)

var kindNames = [...]string{"discard", "batting", "bowling", "extras", "total", "fall_of_wickets"}

func (k OutcomeKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// RowOutcome is the classification of one row. Name and Tail are set for
// Batting and Bowling, Text for the label outcomes.
type RowOutcome struct {
	Kind OutcomeKind
	Name string
	Tail []string
	Text string
}

var (
	extrasLabel = regexp.MustCompile(`(?i)^\s*Extras\s*:`)
	totalLabel  = regexp.MustCompile(`(?i)^\s*Total`)
	fowLabel    = regexp.MustCompile(`(?i:fall of wickets)|\bFOW\b`)

	nonBatterName = regexp.MustCompile(`(?i)extras|total|did not bat`)
	leadingDigit  = regexp.MustCompile(`^\d`)
)

// rule inspects a normalized, non-empty row. ok=false passes the row to
// the next rule.
type rule func(cells []string, joined string) (out RowOutcome, ok bool)

// rules are evaluated in order; the first match wins.
var rules = []rule{
	extrasRule,
	totalRule,
	fowRule,
	battingRule,
	bowlingRule,
}

// Classify decides what a single row represents. It never fails: rows that
// fit no rule are Discard.
func Classify(row []string) RowOutcome {
	cells := NormalizeCells(row)
	if len(cells) == 0 {
		return RowOutcome{Kind: Discard}
	}
	joined := strings.Join(cells, " ")
	for _, r := range rules {
		if out, ok := r(cells, joined); ok {
			return out
		}
	}
	return RowOutcome{Kind: Discard}
}

func extrasRule(_ []string, joined string) (RowOutcome, bool) {
	if extrasLabel.MatchString(joined) {
		return RowOutcome{Kind: Extras, Text: joined}, true
	}
	return RowOutcome{}, false
}

func totalRule(_ []string, joined string) (RowOutcome, bool) {
	if totalLabel.MatchString(joined) {
		return RowOutcome{Kind: Total, Text: joined}, true
	}
	return RowOutcome{}, false
}

func fowRule(_ []string, joined string) (RowOutcome, bool) {
	if fowLabel.MatchString(joined) {
		return RowOutcome{Kind: FallOfWickets, Text: joined}, true
	}
	return RowOutcome{}, false
}

// battingRule runs before bowlingRule. A batter's name never ends in a
// numeric cell; when it does, the numbers belong to a wider bowling tail.
// A row carrying a full 7-cell bowling tail always has its maidens column
// just before the last 5 cells, so such a row is never taken as batting:
// the batting-first order only decides rows the bowling rule rejects.
func battingRule(cells []string, _ string) (RowOutcome, bool) {
	if len(cells) < BattingShape.Width+1 || !MatchesShape(cells, BattingShape) {
		return RowOutcome{}, false
	}
	split := len(cells) - BattingShape.Width
	// "J Bumrah 9.0 1" is not a name.
	if last := cells[split-1]; models.IsDecimal(last) || models.IsInteger(last) {
		return RowOutcome{}, false
	}
	name := strings.Join(cells[:split], " ")
	if nonBatterName.MatchString(name) {
		return RowOutcome{}, false
	}
	return RowOutcome{Kind: Batting, Name: name, Tail: cells[split:]}, true
}

func bowlingRule(cells []string, _ string) (RowOutcome, bool) {
	if !MatchesShape(cells, BowlingShape) {
		return RowOutcome{}, false
	}
	split := len(cells) - BowlingShape.Width
	name := strings.Join(cells[:split], " ")
	if name == "" {
		name = cells[0]
	}
	if leadingDigit.MatchString(name) {
		return RowOutcome{}, false
	}
	return RowOutcome{Kind: Bowling, Name: name, Tail: cells[split:]}, true
}
