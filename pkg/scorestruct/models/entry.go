package models

import (
	"fmt"
	"regexp"
)

var (
	integerPattern = regexp.MustCompile(`^-?\d+$`)
	decimalPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// IsInteger reports whether s is integer text. A leading "-" is accepted
// because some layouts print "-" signs in the balls-faced column.
func IsInteger(s string) bool {
	return integerPattern.MatchString(s)
}

// IsDecimal reports whether s is non-negative decimal text.
func IsDecimal(s string) bool {
	return decimalPattern.MatchString(s)
}

// BattingEntry is one batter's line. Numbers keep their source text.
type BattingEntry struct {
	Name       string `json:"name"`
	Runs       string `json:"runs"`
	Balls      string `json:"balls"`
	Fours      string `json:"fours"`
	Sixes      string `json:"sixes"`
	StrikeRate string `json:"strike_rate"`
}

// NewBattingEntry builds a BattingEntry from a name and the R, B, 4s, 6s, SR
// tail, validating each numeric field.
func NewBattingEntry(name string, tail []string) (BattingEntry, error) {
	if len(tail) != 5 {
		return BattingEntry{}, fmt.Errorf("batting tail: want 5 cells, got %d", len(tail))
	}
	for i, v := range tail[:4] {
		if !IsInteger(v) {
			return BattingEntry{}, fmt.Errorf("batting tail[%d]: %q is not an integer", i, v)
		}
	}
	if !IsDecimal(tail[4]) {
		return BattingEntry{}, fmt.Errorf("batting strike rate: %q is not a decimal", tail[4])
	}
	return BattingEntry{
		Name:       name,
		Runs:       tail[0],
		Balls:      tail[1],
		Fours:      tail[2],
		Sixes:      tail[3],
		StrikeRate: tail[4],
	}, nil
}

// BowlingEntry is one bowler's line. Numbers keep their source text.
type BowlingEntry struct {
	Name         string `json:"name"`
	Overs        string `json:"overs"`
	Maidens      string `json:"maidens"`
	RunsConceded string `json:"runs_conceded"`
	Wickets      string `json:"wickets"`
	NoBalls      string `json:"no_balls"`
	Wides        string `json:"wides"`
	Econ         string `json:"econ"`
}

// NewBowlingEntry builds a BowlingEntry from a name and the
// O, M, R, W, NB, WD, ECO tail, validating each numeric field.
func NewBowlingEntry(name string, tail []string) (BowlingEntry, error) {
	if len(tail) != 7 {
		return BowlingEntry{}, fmt.Errorf("bowling tail: want 7 cells, got %d", len(tail))
	}
	if !IsDecimal(tail[0]) {
		return BowlingEntry{}, fmt.Errorf("bowling overs: %q is not a decimal", tail[0])
	}
	for i, v := range tail[1:6] {
		if !IsInteger(v) {
			return BowlingEntry{}, fmt.Errorf("bowling tail[%d]: %q is not an integer", i+1, v)
		}
	}
	if !IsDecimal(tail[6]) {
		return BowlingEntry{}, fmt.Errorf("bowling economy: %q is not a decimal", tail[6])
	}
	return BowlingEntry{
		Name:         name,
		Overs:        tail[0],
		Maidens:      tail[1],
		RunsConceded: tail[2],
		Wickets:      tail[3],
		NoBalls:      tail[4],
		Wides:        tail[5],
		Econ:         tail[6],
	}, nil
}
