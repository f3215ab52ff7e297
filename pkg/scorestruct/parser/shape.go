package parser

import "github.com/ukaji3/scorestruct-go/pkg/scorestruct/models"

// NumericTailShape describes the trailing cells of a row: how many there
// are and which positions (0-based within the tail) hold decimals. Every
// other position holds an integer.
type NumericTailShape struct {
	Width            int
	DecimalPositions map[int]bool
}

// BattingShape is R, B, 4s, 6s, SR.
var BattingShape = NumericTailShape{
	Width:            5,
	DecimalPositions: map[int]bool{4: true},
}

// BowlingShape is O, M, R, W, NB, WD, ECO.
var BowlingShape = NumericTailShape{
	Width:            7,
	DecimalPositions: map[int]bool{0: true, 6: true},
}

// Tail returns the last shape.Width cells, or nil if there are fewer.
func (s NumericTailShape) Tail(cells []string) []string {
	if s.Width <= 0 || len(cells) < s.Width {
		return nil
	}
	return cells[len(cells)-s.Width:]
}

// MatchesShape reports whether the trailing cells satisfy shape.
func MatchesShape(cells []string, shape NumericTailShape) bool {
	tail := shape.Tail(cells)
	if tail == nil {
		return false
	}
	for i, v := range tail {
		if shape.DecimalPositions[i] {
			if !models.IsDecimal(v) {
				return false
			}
			continue
		}
		if !models.IsInteger(v) {
			return false
		}
	}
	return true
}
