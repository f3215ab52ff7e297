package parser

import "github.com/ukaji3/scorestruct-go/pkg/scorestruct/models"

// Config tunes block assembly.
type Config struct {
	// HeaderFallbackLen caps the header taken from the block text.
	HeaderFallbackLen int
	// FallbackSearch enables the full-text search for extras, total and
	// fall of wickets when no row carried them.
	FallbackSearch bool
}

// DefaultConfig returns the assembly settings used by Assemble.
func DefaultConfig() Config {
	return Config{
		HeaderFallbackLen: DefaultHeaderFallbackLen,
		FallbackSearch:    true,
	}
}

// Stats summarizes how the rows of one block were classified.
type Stats struct {
	Rows      int
	Discarded int
	// Fallbacks lists the singleton fields recovered from the full text.
	Fallbacks []string
}

// Assemble classifies every row of block and builds its innings record
// with the default configuration.
func Assemble(block models.InningsBlock) models.ParsedInnings {
	inn, _ := DefaultConfig().Assemble(block)
	return inn
}

// Assemble classifies every row of block in order and builds its innings
// record. Batting and bowling keep row order; extras, total and fall of
// wickets keep the first row that carried them. block is not modified.
func (c Config) Assemble(block models.InningsBlock) (models.ParsedInnings, Stats) {
	inn := models.ParsedInnings{
		Header:  resolveHeader(block.HeaderCandidates, block.FullText, c.HeaderFallbackLen),
		Batting: []models.BattingEntry{},
		Bowling: []models.BowlingEntry{},
	}
	stats := Stats{Rows: len(block.Rows)}

	// Classify rows in document order
	for _, row := range block.Rows {
		out := Classify(row)
		switch out.Kind {
		case Batting:
			e, err := models.NewBattingEntry(out.Name, out.Tail)
			if err != nil {
				stats.Discarded++
				continue
			}
			inn.Batting = append(inn.Batting, e)
		case Bowling:
			e, err := models.NewBowlingEntry(out.Name, out.Tail)
			if err != nil {
				stats.Discarded++
				continue
			}
			inn.Bowling = append(inn.Bowling, e)
		case Extras:
			setOnce(&inn.Extras, out.Text)
		case Total:
			setOnce(&inn.Total, out.Text)
		case FallOfWickets:
			setOnce(&inn.FallOfWickets, out.Text)
		default:
			stats.Discarded++
		}
	}

	// Search the block text for singletons no row carried
	if c.FallbackSearch {
		fallbacks := []struct {
			field string
			dst   **string
			find  func(string) (string, bool)
		}{
			{"extras", &inn.Extras, findExtras},
			{"total", &inn.Total, findTotal},
			{"fall_of_wickets", &inn.FallOfWickets, findFallOfWickets},
		}
		for _, f := range fallbacks {
			if *f.dst != nil {
				continue
			}
			if s, ok := f.find(block.FullText); ok {
				*f.dst = &s
				stats.Fallbacks = append(stats.Fallbacks, f.field)
			}
		}
	}

	return inn, stats
}

func setOnce(dst **string, s string) {
	if *dst == nil {
		*dst = &s
	}
}
