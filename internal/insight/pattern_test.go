package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOn(day int, mood string, connection int) CheckInSample {
	return CheckInSample{
		Date:            time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day),
		Mood:            mood,
		ConnectionScore: connection,
	}
}

func TestAnalyzePatternsEmptyWindow(t *testing.T) {
	report := AnalyzePatterns(nil)
	assert.Equal(t, 0, report.SampleCount)
	assert.Equal(t, TrendStable, report.MoodTrend)
	assert.Empty(t, report.Concerns)
	assert.Empty(t, report.PositivePatterns)
}

func TestAnalyzePatternsAverages(t *testing.T) {
	window := []CheckInSample{
		sampleOn(0, "low", 2),
		sampleOn(1, "good", 4),
	}
	report := AnalyzePatterns(window)
	assert.Equal(t, 3.0, report.AvgMood)
	assert.Equal(t, 3.0, report.AvgConnection)
}

func TestAnalyzePatternsUnknownMoodIsMidpoint(t *testing.T) {
	assert.Equal(t, 3, MoodOrdinal("cosmic"))
	assert.Equal(t, 1, MoodOrdinal("very_low"))
	assert.Equal(t, 5, MoodOrdinal("great"))
}

func TestConsecutiveLowMoodFiresAtThree(t *testing.T) {
	window := make([]CheckInSample, 0, 14)
	for i := 0; i < 11; i++ {
		window = append(window, sampleOn(i, "good", 4))
	}
	for i := 11; i < 14; i++ {
		window = append(window, sampleOn(i, "very_low", 4))
	}

	report := AnalyzePatterns(window)
	require.Len(t, report.Concerns, 1)
	assert.Equal(t, ConcernConsecutiveLowMood, report.Concerns[0].Type)
	assert.Equal(t, "high", report.Concerns[0].Severity)
}

func TestConsecutiveLowMoodNeedsThree(t *testing.T) {
	window := []CheckInSample{
		sampleOn(0, "good", 4),
		sampleOn(1, "good", 4),
		sampleOn(2, "low", 4),
		sampleOn(3, "low", 4),
	}
	report := AnalyzePatterns(window)
	for _, c := range report.Concerns {
		assert.NotEqual(t, ConcernConsecutiveLowMood, c.Type)
	}
}

func TestConsecutiveLowMoodRunBrokenByGoodDay(t *testing.T) {
	window := []CheckInSample{
		sampleOn(0, "low", 4),
		sampleOn(1, "low", 4),
		sampleOn(2, "good", 4),
		sampleOn(3, "low", 4),
		sampleOn(4, "low", 4),
	}
	report := AnalyzePatterns(window)
	for _, c := range report.Concerns {
		assert.NotEqual(t, ConcernConsecutiveLowMood, c.Type)
	}
}

func TestLowConnectionFrequency(t *testing.T) {
	window := []CheckInSample{
		sampleOn(0, "neutral", 2),
		sampleOn(1, "neutral", 1),
		sampleOn(2, "neutral", 2),
		sampleOn(3, "neutral", 5),
	}
	report := AnalyzePatterns(window)

	found := false
	for _, c := range report.Concerns {
		if c.Type == ConcernLowConnectionFrequency {
			found = true
			assert.Equal(t, "medium", c.Severity)
		}
	}
	assert.True(t, found)
}

func TestSustainedHighMoodPositive(t *testing.T) {
	window := []CheckInSample{
		sampleOn(0, "neutral", 4),
		sampleOn(1, "good", 4),
		sampleOn(2, "great", 4),
		sampleOn(3, "good", 4),
	}
	report := AnalyzePatterns(window)

	types := make([]PositiveType, 0, len(report.PositivePatterns))
	for _, p := range report.PositivePatterns {
		types = append(types, p.Type)
	}
	assert.Contains(t, types, PositiveSustainedHighMood)
	assert.Contains(t, types, PositiveStrongConnection)
}

func TestTrendImprovingAndDeclining(t *testing.T) {
	improving := []CheckInSample{
		sampleOn(0, "very_low", 1), sampleOn(1, "low", 1), sampleOn(2, "low", 1),
		sampleOn(3, "neutral", 3), sampleOn(4, "neutral", 3), sampleOn(5, "neutral", 3),
		sampleOn(6, "great", 5), sampleOn(7, "great", 5), sampleOn(8, "good", 5),
	}
	report := AnalyzePatterns(improving)
	assert.Equal(t, TrendImproving, report.MoodTrend)
	assert.Equal(t, TrendImproving, report.ConnectionTrend)

	declining := make([]CheckInSample, len(improving))
	for i, s := range improving {
		flipped := improving[len(improving)-1-i]
		declining[i] = CheckInSample{Date: s.Date, Mood: flipped.Mood, ConnectionScore: flipped.ConnectionScore}
	}
	report = AnalyzePatterns(declining)
	assert.Equal(t, TrendDeclining, report.MoodTrend)
	assert.Equal(t, TrendDeclining, report.ConnectionTrend)
}

func TestTrendStableWithinThreshold(t *testing.T) {
	window := []CheckInSample{
		sampleOn(0, "neutral", 3), sampleOn(1, "neutral", 3), sampleOn(2, "neutral", 3),
		sampleOn(3, "neutral", 3), sampleOn(4, "neutral", 3), sampleOn(5, "neutral", 3),
	}
	report := AnalyzePatterns(window)
	assert.Equal(t, TrendStable, report.MoodTrend)
}

func TestAlignmentExactMatchesOnly(t *testing.T) {
	own := []CheckInSample{
		{Date: sampleOn(0, "", 0).Date, Mood: "good", Question: "q", Answer: "beach"},
		{Date: sampleOn(1, "", 0).Date, Mood: "low"},
		{Date: sampleOn(2, "", 0).Date, Mood: "neutral"},
	}
	partner := []CheckInSample{
		{Date: own[0].Date, Mood: "low", Question: "q", Answer: "beach"}, // answer match
		{Date: own[1].Date, Mood: "low"},                                // mood match
		{Date: own[2].Date, Mood: "good"},                               // adjacent-ish, no credit
	}

	assert.Equal(t, 67, AlignmentScore(own, partner))
	assert.Equal(t, 0, AlignmentScore(own, nil))
	assert.Equal(t, 0, AlignmentScore(nil, partner))
}
