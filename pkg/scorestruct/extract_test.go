package scorestruct

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ukaji3/scorestruct-go/internal/logger"
	"github.com/ukaji3/scorestruct-go/pkg/scorestruct/models"
)

type stubSource struct {
	url    string
	blocks []models.InningsBlock
	err    error
}

func (s stubSource) URL() string { return s.url }

func (s stubSource) Blocks(context.Context) ([]models.InningsBlock, error) {
	return s.blocks, s.err
}

func inningsBlock(header string, batters ...string) models.InningsBlock {
	b := models.InningsBlock{
		HeaderCandidates: []models.HeaderSource{models.StaticHeader(header)},
	}
	for _, name := range batters {
		b.Rows = append(b.Rows, models.Row{name, "10", "10", "1", "0", "100.00"})
	}
	return b
}

func TestExtract(t *testing.T) {
	src := stubSource{
		url: "https://m.cricbuzz.com/live-cricket-scorecard/121681/indw-vs-rsaw-final",
		blocks: []models.InningsBlock{
			inningsBlock("India Women Innings", "S Mandhana", "S Verma"),
			inningsBlock("South Africa Women Innings", "L Wolvaardt"),
		},
	}

	result, err := Extract(context.Background(), src, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "https://www.cricbuzz.com/live-cricket-scorecard/121681/indw-vs-rsaw-final", result.SourceURL)
	require.Len(t, result.Innings, 2)
	assert.Equal(t, "India Women Innings", result.Innings[0].Header)
	assert.Len(t, result.Innings[0].Batting, 2)
	assert.Equal(t, "South Africa Women Innings", result.Innings[1].Header)
	assert.Equal(t, "L Wolvaardt", result.Innings[1].Batting[0].Name)
}

func TestExtractNoInnings(t *testing.T) {
	_, err := Extract(context.Background(), stubSource{url: "empty"}, DefaultOptions())
	assert.ErrorIs(t, err, ErrNoInningsFound)
}

func TestExtractEmptyInningsIsNotAnError(t *testing.T) {
	src := stubSource{blocks: []models.InningsBlock{{Rows: []models.Row{{"Batter", "R", "B"}}}}}

	result, err := Extract(context.Background(), src, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, result.Innings, 1)
	assert.Empty(t, result.Innings[0].Batting)
	assert.Empty(t, result.Innings[0].Bowling)
}

func TestExtractSourceError(t *testing.T) {
	cause := NewSourceError("scorecard.xlsx", "workbook", errors.New("zip: not a valid zip file"))
	_, err := Extract(context.Background(), stubSource{err: cause}, DefaultOptions())

	var srcErr *SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, "workbook", srcErr.Component)
	assert.NotErrorIs(t, err, ErrNoInningsFound)
}

func TestAssembleAllKeepsBlockOrder(t *testing.T) {
	var blocks []models.InningsBlock
	for i := 0; i < 40; i++ {
		blocks = append(blocks, inningsBlock(fmt.Sprintf("Innings %d", i+1)))
	}

	for _, concurrency := range []int{0, 1, 3, 64} {
		opts := DefaultOptions()
		opts.Concurrency = concurrency
		innings, err := AssembleAll(context.Background(), blocks, opts)
		require.NoError(t, err)
		require.Len(t, innings, len(blocks))
		for i, inn := range innings {
			assert.Equal(t, fmt.Sprintf("Innings %d", i+1), inn.Header)
		}
	}
}

func TestAssembleAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := AssembleAll(ctx, []models.InningsBlock{inningsBlock("India Innings")}, DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractOptions(t *testing.T) {
	block := models.InningsBlock{FullText: "Extras: (b 4, lb 2) 6"}
	src := stubSource{blocks: []models.InningsBlock{block}}

	result, err := Extract(context.Background(), src, DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, result.Innings[0].Extras)
	assert.Equal(t, "Extras: (b 4,", result.Innings[0].Header[:13])

	off := false
	opts := DefaultOptions()
	opts.FallbackSearch = &off
	opts.HeaderFallbackLen = 6
	result, err = Extract(context.Background(), src, opts)
	require.NoError(t, err)
	assert.Nil(t, result.Innings[0].Extras)
	assert.Equal(t, "Extras", result.Innings[0].Header)
}

func TestExtractLogsPerInnings(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	opts := DefaultOptions()
	opts.Logger = logger.FromZap(zap.New(core))

	src := stubSource{url: "fixture.json", blocks: []models.InningsBlock{inningsBlock("India Innings", "S Mandhana")}}
	_, err := Extract(context.Background(), src, opts)
	require.NoError(t, err)

	assembled := logs.FilterMessage("innings assembled").All()
	require.Len(t, assembled, 1)
	assert.Equal(t, int64(1), assembled[0].ContextMap()["batting"])
	assert.Equal(t, 1, logs.FilterMessage("scorecard extracted").Len())
}

func TestOptions(t *testing.T) {
	var opts Options
	assert.True(t, opts.ShouldSearchFullText())
	assert.Equal(t, DefaultConcurrency, opts.concurrency())
	assert.NotNil(t, opts.logger())

	off := false
	opts.FallbackSearch = &off
	assert.False(t, opts.ShouldSearchFullText())
	assert.False(t, opts.parserConfig().FallbackSearch)
}

func TestNormalizeSourceURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://m.cricbuzz.com/live-cricket-scorecard/1", "https://www.cricbuzz.com/live-cricket-scorecard/1"},
		{"https://amp.cricbuzz.com/a?b=c", "https://www.cricbuzz.com/a?b=c"},
		{"https://www.cricbuzz.com/a", "https://www.cricbuzz.com/a"},
		{"https://example.org/scorecard", "https://example.org/scorecard"},
		{"scorecard.json", "scorecard.json"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeSourceURL(tt.input), "NormalizeSourceURL(%q)", tt.input)
	}
}
