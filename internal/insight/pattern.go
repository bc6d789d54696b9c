package insight

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// CheckInSample is one day of mood/connection data for one user, already
// detached from storage concerns.
type CheckInSample struct {
	Date            time.Time `json:"date"`
	Mood            string    `json:"mood"`
	ConnectionScore int       `json:"connectionScore"`
	Question        string    `json:"question,omitempty"`
	Answer          string    `json:"answer,omitempty"`
}

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

type ConcernType string

const (
	ConcernConsecutiveLowMood      ConcernType = "consecutive_low_mood"
	ConcernLowConnectionFrequency  ConcernType = "low_connection_frequency"
)

type PositiveType string

const (
	PositiveSustainedHighMood  PositiveType = "sustained_high_mood"
	PositiveImprovingMoodTrend PositiveType = "improving_mood_trend"
	PositiveStrongConnection   PositiveType = "strong_connection"
)

type ConcernFlag struct {
	Type        ConcernType `json:"type"`
	Severity    string      `json:"severity"` // medium | high
	Description string      `json:"description"`
}

type PositivePattern struct {
	Type        PositiveType `json:"type"`
	Description string       `json:"description"`
}

// PatternReport is the derived view of one user's recent check-in window.
type PatternReport struct {
	SampleCount      int               `json:"sampleCount"`
	AvgMood          float64           `json:"avgMood"`
	AvgConnection    float64           `json:"avgConnection"`
	MoodTrend        Trend             `json:"moodTrend"`
	ConnectionTrend  Trend             `json:"connectionTrend"`
	Concerns         []ConcernFlag     `json:"concernFlags"`
	PositivePatterns []PositivePattern `json:"positivePatterns"`
}

// DefaultPatternWindowDays is the window handed to AnalyzePatterns when the
// caller has no preference.
const DefaultPatternWindowDays = 14

// Explicit constants keep trend and flag tests reproducible.
const (
	trendThreshold      = 0.5
	lowMoodOrdinal      = 2
	highMoodOrdinal     = 4
	lowMoodRunLength    = 3
	highMoodRunLength   = 3
	lowConnectionScore  = 3
	lowConnectionCount  = 3
	highConnectionScore = 4
	highConnectionCount = 3
)

var moodOrdinals = map[string]int{
	"very_low": 1,
	"low":      2,
	"neutral":  3,
	"good":     4,
	"great":    5,
}

// MoodOrdinal maps a mood label to its 1-5 ordinal. Unknown labels land on the
// midpoint rather than erroring — old clients shipped moods we no longer use.
func MoodOrdinal(mood string) int {
	if v, ok := moodOrdinals[mood]; ok {
		return v
	}
	return 3
}

// AnalyzePatterns derives averages, trends, and typed flags from one user's
// recent window. Missing days are excluded from means, never counted as zero.
func AnalyzePatterns(window []CheckInSample) PatternReport {
	report := PatternReport{
		MoodTrend:        TrendStable,
		ConnectionTrend:  TrendStable,
		Concerns:         []ConcernFlag{},
		PositivePatterns: []PositivePattern{},
	}
	if len(window) == 0 {
		return report
	}

	samples := make([]CheckInSample, len(window))
	copy(samples, window)
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Date.Before(samples[j].Date)
	})

	moods := make([]float64, len(samples))
	conns := make([]float64, len(samples))
	var moodSum, connSum float64
	for i, s := range samples {
		moods[i] = float64(MoodOrdinal(s.Mood))
		conns[i] = float64(s.ConnectionScore)
		moodSum += moods[i]
		connSum += conns[i]
	}

	n := float64(len(samples))
	report.SampleCount = len(samples)
	report.AvgMood = round2(moodSum / n)
	report.AvgConnection = round2(connSum / n)
	report.MoodTrend = trendOf(moods)
	report.ConnectionTrend = trendOf(conns)

	// Consecutive runs counted from the most recent record backward.
	lowRun, highRun := 0, 0
	for i := len(samples) - 1; i >= 0; i-- {
		if MoodOrdinal(samples[i].Mood) <= lowMoodOrdinal {
			lowRun++
		} else {
			break
		}
	}
	for i := len(samples) - 1; i >= 0; i-- {
		if MoodOrdinal(samples[i].Mood) >= highMoodOrdinal {
			highRun++
		} else {
			break
		}
	}

	if lowRun >= lowMoodRunLength {
		report.Concerns = append(report.Concerns, ConcernFlag{
			Type:        ConcernConsecutiveLowMood,
			Severity:    "high",
			Description: fmt.Sprintf("Mood has been low for %d days in a row", lowRun),
		})
	}

	lowConnDays := 0
	highConnDays := 0
	for _, s := range samples {
		if s.ConnectionScore < lowConnectionScore {
			lowConnDays++
		}
		if s.ConnectionScore >= highConnectionScore {
			highConnDays++
		}
	}
	if lowConnDays >= lowConnectionCount {
		report.Concerns = append(report.Concerns, ConcernFlag{
			Type:        ConcernLowConnectionFrequency,
			Severity:    "medium",
			Description: fmt.Sprintf("Connection felt low on %d of the last %d check-ins", lowConnDays, len(samples)),
		})
	}

	if highRun >= highMoodRunLength {
		report.PositivePatterns = append(report.PositivePatterns, PositivePattern{
			Type:        PositiveSustainedHighMood,
			Description: fmt.Sprintf("Mood has been high for %d days in a row", highRun),
		})
	}
	if report.MoodTrend == TrendImproving {
		report.PositivePatterns = append(report.PositivePatterns, PositivePattern{
			Type:        PositiveImprovingMoodTrend,
			Description: "Mood has been trending up lately",
		})
	}
	if highConnDays >= highConnectionCount {
		report.PositivePatterns = append(report.PositivePatterns, PositivePattern{
			Type:        PositiveStrongConnection,
			Description: fmt.Sprintf("Connection scored high on %d of the last %d check-ins", highConnDays, len(samples)),
		})
	}

	return report
}

// trendOf compares the mean of the most-recent third against the earliest
// third. The threshold is symmetric in both directions.
func trendOf(values []float64) Trend {
	third := len(values) / 3
	if third == 0 {
		return TrendStable
	}

	var early, recent float64
	for _, v := range values[:third] {
		early += v
	}
	for _, v := range values[len(values)-third:] {
		recent += v
	}
	early /= float64(third)
	recent /= float64(third)

	switch {
	case recent-early >= trendThreshold:
		return TrendImproving
	case early-recent >= trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// AlignmentScore is the percentage of overlapping days where the couple
// answered the same rotating question identically or logged the same mood
// category. Matches are exact; adjacent mood levels do not count.
func AlignmentScore(own, partner []CheckInSample) int {
	if len(own) == 0 || len(partner) == 0 {
		return 0
	}

	partnerByDay := make(map[int64]CheckInSample, len(partner))
	for _, p := range partner {
		partnerByDay[dayKey(p.Date)] = p
	}

	overlap, aligned := 0, 0
	for _, o := range own {
		p, ok := partnerByDay[dayKey(o.Date)]
		if !ok {
			continue
		}
		overlap++

		answersMatch := o.Question != "" && o.Question == p.Question &&
			o.Answer != "" && o.Answer == p.Answer
		if answersMatch || o.Mood == p.Mood {
			aligned++
		}
	}

	if overlap == 0 {
		return 0
	}
	return int(math.Round(100 * float64(aligned) / float64(overlap)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
