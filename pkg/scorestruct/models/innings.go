package models

// ParsedInnings is the structured record assembled from one InningsBlock.
type ParsedInnings struct {
	// Header is the innings title, e.g. "India Innings 298-7 (50 Ov)".
	Header string `json:"header"`
	// Batting contains batters in lineup order.
	Batting []BattingEntry `json:"batting"`
	// Extras is the extras line, nil when none was found.
	Extras *string `json:"extras"`
	// Total is the total line, nil when none was found.
	Total *string `json:"total"`
	// Bowling contains bowlers in bowling-change order.
	Bowling []BowlingEntry `json:"bowling"`
	// FallOfWickets is the FOW summary, nil when none was found.
	FallOfWickets *string `json:"fall_of_wickets"`
}

// ScorecardResult holds every innings parsed from one scorecard.
type ScorecardResult struct {
	// SourceURL identifies where the scorecard came from.
	SourceURL string `json:"source_url"`
	// Innings contains parsed innings in block order.
	Innings []ParsedInnings `json:"innings"`
}
