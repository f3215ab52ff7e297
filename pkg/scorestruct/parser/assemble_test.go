package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/scorestruct-go/pkg/scorestruct/models"
)

func scenarioBlock() models.InningsBlock {
	return models.InningsBlock{
		HeaderCandidates: []models.HeaderSource{
			models.StaticHeader(""),
			models.StaticHeader(" India  Innings 250 (45 Ov) "),
		},
		Rows: []models.Row{
			{"V Kohli", "45", "30", "4", "2", "150.00"},
			{"Extras:", "(b 1, lb 3) 4"},
			{"Total", "(45.0 ov) 250"},
			{"J Bumrah", "9.0", "1", "40", "3", "0", "2", "4.44"},
		},
	}
}

func TestAssembleScenario(t *testing.T) {
	inn := Assemble(scenarioBlock())

	assert.Equal(t, "India Innings 250 (45 Ov)", inn.Header)
	assert.Equal(t, []models.BattingEntry{{
		Name: "V Kohli", Runs: "45", Balls: "30", Fours: "4", Sixes: "2", StrikeRate: "150.00",
	}}, inn.Batting)
	assert.Equal(t, []models.BowlingEntry{{
		Name: "J Bumrah", Overs: "9.0", Maidens: "1", RunsConceded: "40",
		Wickets: "3", NoBalls: "0", Wides: "2", Econ: "4.44",
	}}, inn.Bowling)
	require.NotNil(t, inn.Extras)
	assert.Equal(t, "Extras: (b 1, lb 3) 4", *inn.Extras)
	require.NotNil(t, inn.Total)
	assert.Equal(t, "Total (45.0 ov) 250", *inn.Total)
	assert.Nil(t, inn.FallOfWickets)
}

func TestAssembleIsIdempotent(t *testing.T) {
	block := scenarioBlock()
	block.FullText = "Fall of Wickets\n1-10 (Rohit, 2.1 ov)"

	first := Assemble(block)
	second := Assemble(block)
	assert.Equal(t, first, second)
}

func TestAssembleDoesNotModifyBlock(t *testing.T) {
	block := scenarioBlock()
	block.Rows = append(block.Rows, models.Row{"  M Siraj ", "", "8.0", "0", "52", "1", "1", "3", "6.50"})
	before := make([]models.Row, len(block.Rows))
	for i, r := range block.Rows {
		before[i] = append(models.Row{}, r...)
	}

	Assemble(block)
	assert.Equal(t, before, block.Rows)
}

func TestAssemblePreservesOrder(t *testing.T) {
	block := models.InningsBlock{
		Rows: []models.Row{
			{"B1", "10", "12", "1", "0", "83.33"},
			{"Bowler X", "2.0", "0", "14", "0", "0", "0", "7.00"},
			{"B3", "30", "20", "3", "1", "150.00"},
			{"noise"},
			{"B2", "20", "25", "2", "0", "80.00"},
			{"Bowler A", "10.0", "2", "33", "2", "1", "0", "3.30"},
		},
	}

	inn := Assemble(block)

	var batters []string
	for _, b := range inn.Batting {
		batters = append(batters, b.Name)
	}
	assert.Equal(t, []string{"B1", "B3", "B2"}, batters)

	var bowlers []string
	for _, b := range inn.Bowling {
		bowlers = append(bowlers, b.Name)
	}
	assert.Equal(t, []string{"Bowler X", "Bowler A"}, bowlers)
}

func TestAssembleFirstSingletonWins(t *testing.T) {
	block := models.InningsBlock{
		Rows: []models.Row{
			{"Extras:", "(w 2) 2"},
			{"Total", "(20 ov) 150"},
			{"FOW", "1-12"},
			{"Extras:", "(b 4) 4"},
			{"Total", "(50 ov) 300"},
			{"Fall of wickets", "1-99"},
		},
	}

	inn := Assemble(block)
	require.NotNil(t, inn.Extras)
	require.NotNil(t, inn.Total)
	require.NotNil(t, inn.FallOfWickets)
	assert.Equal(t, "Extras: (w 2) 2", *inn.Extras)
	assert.Equal(t, "Total (20 ov) 150", *inn.Total)
	assert.Equal(t, "FOW 1-12", *inn.FallOfWickets)
}

func TestAssembleFallbackSearch(t *testing.T) {
	block := models.InningsBlock{
		Rows: []models.Row{
			{"V Kohli", "45", "30", "4", "2", "150.00"},
		},
		FullText: "India Innings\nV Kohli 45 30 4 2 150.00\n" +
			"  Extras: (b 4, lb 2) 6\n" +
			"Total   (45.0 ov) 250\n\n" +
			"Fall of Wickets\n1-10 (Rohit, 2.1 ov),\n2-45 (Gill, 8.3 ov)\n\n" +
			"Bowler O M R W NB WD ECO",
	}

	inn, stats := DefaultConfig().Assemble(block)
	require.NotNil(t, inn.Extras)
	assert.Equal(t, "Extras: (b 4, lb 2) 6", *inn.Extras)
	require.NotNil(t, inn.Total)
	assert.Equal(t, "Total (45.0 ov) 250", *inn.Total)
	require.NotNil(t, inn.FallOfWickets)
	assert.Equal(t, "Fall of Wickets 1-10 (Rohit, 2.1 ov), 2-45 (Gill, 8.3 ov)", *inn.FallOfWickets)
	assert.Equal(t, []string{"extras", "total", "fall_of_wickets"}, stats.Fallbacks)
}

func TestAssembleFallbackSearchCRLF(t *testing.T) {
	block := models.InningsBlock{
		FullText: "Extras: (b 4, lb 2) 6\r\n" +
			"Total (45.0 ov) 250\r\n\r\n" +
			"Fall of Wickets\r\n1-10 (Rohit, 2.1 ov)\r\n\r\n" +
			"Bowler O M R W\r\nJ Bumrah 9.0 1 40 3 0 2 4.44",
	}

	inn := Assemble(block)
	require.NotNil(t, inn.Extras)
	assert.Equal(t, "Extras: (b 4, lb 2) 6", *inn.Extras)
	require.NotNil(t, inn.Total)
	assert.Equal(t, "Total (45.0 ov) 250", *inn.Total)
	require.NotNil(t, inn.FallOfWickets)
	assert.Equal(t, "Fall of Wickets 1-10 (Rohit, 2.1 ov)", *inn.FallOfWickets)
}

func TestFindFallOfWicketsParagraphEnd(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"lf", "FOW\n1-10\n\nBowling", "FOW 1-10"},
		{"crlf", "FOW\r\n1-10\r\n\r\nBowling", "FOW 1-10"},
		{"blank line with spaces", "FOW\r\n1-10\r\n \t\r\nBowling", "FOW 1-10"},
		{"label mid line", "India 250\nsummary FOW 1-10\n\nBowling", "summary FOW 1-10"},
		{"no blank line", "Fall of wickets\r\n1-10\r\n2-45", "Fall of wickets 1-10 2-45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := findFallOfWickets(tt.text)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, ok := findFallOfWickets("no wickets here")
	assert.False(t, ok)
}

func TestAssembleFallbackDoesNotOverrideRows(t *testing.T) {
	block := scenarioBlock()
	block.FullText = "Extras: (nb 9) 9\nTotal 999"

	inn := Assemble(block)
	assert.Equal(t, "Extras: (b 1, lb 3) 4", *inn.Extras)
	assert.Equal(t, "Total (45.0 ov) 250", *inn.Total)
}

func TestAssembleFallbackDisabled(t *testing.T) {
	block := models.InningsBlock{FullText: "Extras: (b 4, lb 2) 6"}

	cfg := DefaultConfig()
	cfg.FallbackSearch = false
	inn, stats := cfg.Assemble(block)
	assert.Nil(t, inn.Extras)
	assert.Empty(t, stats.Fallbacks)
}

func TestAssembleEmptyBlock(t *testing.T) {
	inn, stats := DefaultConfig().Assemble(models.InningsBlock{
		Rows: []models.Row{{""}, {"Batter", "R", "B", "4s", "6s", "SR"}},
	})

	assert.Equal(t, DefaultHeader, inn.Header)
	assert.NotNil(t, inn.Batting)
	assert.Empty(t, inn.Batting)
	assert.NotNil(t, inn.Bowling)
	assert.Empty(t, inn.Bowling)
	assert.Nil(t, inn.Extras)
	assert.Nil(t, inn.Total)
	assert.Nil(t, inn.FallOfWickets)
	assert.Equal(t, 2, stats.Rows)
	assert.Equal(t, 2, stats.Discarded)
}
