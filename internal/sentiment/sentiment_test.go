package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreHeadline(t *testing.T) {
	tests := []struct {
		name     string
		headline string
		want     int
	}{
		{name: "positive words", headline: "Shares surge on record profit", want: 3},
		{name: "negative words", headline: "Stock drops after downgrade", want: -2},
		{name: "mixed", headline: "Profits up despite weak demand", want: 1},
		{name: "neutral", headline: "Company announces board meeting", want: 0},
		{name: "case insensitive", headline: "STRONG GAINS for the quarter", want: 2},
		{name: "punctuation split", headline: "Q3: beats estimates, upgrade follows!", want: 2},
		{name: "empty", headline: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreHeadline(tt.headline))
		})
	}
}

func TestAnalyze(t *testing.T) {
	report := Analyze([]string{
		"Shares surge on record profit", // +3
		"Analysts see strong quarter",   // +1
	})
	assert.Equal(t, 2.0, report.Score)
	assert.Equal(t, Positive, report.Label)
	assert.Len(t, report.HeadlineScores, 2)
	assert.Equal(t, 3, report.HeadlineScores[0].Score)

	report = Analyze([]string{
		"Stock falls on weak outlook", // -2
		"Downgrade triggers decline",  // -2
	})
	assert.Equal(t, -2.0, report.Score)
	assert.Equal(t, Negative, report.Label)

	report = Analyze([]string{
		"Company announces board meeting",
		"Gains offset by losses", // +1 -1 = 0
	})
	assert.Equal(t, 0.0, report.Score)
	assert.Equal(t, Neutral, report.Label)
}

func TestAnalyze_Empty(t *testing.T) {
	report := Analyze(nil)
	assert.Equal(t, 0.0, report.Score)
	assert.Equal(t, Neutral, report.Label)
	assert.Empty(t, report.HeadlineScores)
}
