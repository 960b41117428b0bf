package sentiment

import (
	"regexp"
	"strings"
)

// Lexicon bag-of-words sentiment over news headlines. Deliberately
// lightweight: a heuristic used to bias strategy selection, not an NLP
// pipeline.

var positiveWords = wordSet(
	"gain", "gains", "up", "surge", "surges", "beat", "beats", "upgrade", "upgraded",
	"record", "strong", "positive", "outperform", "outperformance", "benefit", "benefits",
	"profit", "profits", "win", "wins",
)

var negativeWords = wordSet(
	"drop", "drops", "down", "fall", "falls", "decline", "declines", "miss", "misses",
	"downgrade", "downgraded", "weak", "negative", "underperform", "loss", "losses", "halt",
)

// Label classifies a normalized sentiment score.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// HeadlineScore pairs a headline with its raw lexicon score.
type HeadlineScore struct {
	Headline string
	Score    int
}

// Report is the aggregate sentiment over a set of headlines.
type Report struct {
	Score          float64 // Sum of headline scores normalized by headline count
	Label          Label   // positive / negative / neutral at the ±0.5 thresholds
	Headlines      []string
	HeadlineScores []HeadlineScore
}

var tokenPattern = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// tokenize splits on non-alphanumeric runs and lowercases.
func tokenize(text string) []string {
	parts := tokenPattern.Split(strings.ToLower(text), -1)
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// ScoreHeadline returns the raw lexicon score of one headline: +1 per
// positive word, -1 per negative word.
func ScoreHeadline(headline string) int {
	score := 0
	for _, t := range tokenize(headline) {
		if positiveWords[t] {
			score++
		}
		if negativeWords[t] {
			score--
		}
	}
	return score
}

// Analyze scores a batch of headlines and aggregates them into a Report.
// The normalized score is the score sum divided by max(1, len(headlines)),
// so an empty batch is neutral with score 0.
func Analyze(headlines []string) Report {
	report := Report{Headlines: headlines}

	total := 0
	for _, h := range headlines {
		s := ScoreHeadline(h)
		total += s
		report.HeadlineScores = append(report.HeadlineScores, HeadlineScore{Headline: h, Score: s})
	}

	n := len(headlines)
	if n < 1 {
		n = 1
	}
	report.Score = float64(total) / float64(n)

	switch {
	case report.Score >= 0.5:
		report.Label = Positive
	case report.Score <= -0.5:
		report.Label = Negative
	default:
		report.Label = Neutral
	}
	return report
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
