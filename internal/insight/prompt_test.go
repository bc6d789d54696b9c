package insight

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fullContext() *CoachContext {
	health := 72
	alignment := 60
	return &CoachContext{
		GeneratedFor: 1,
		User: PersonContext{
			UserID:        1,
			Name:          "Riley",
			LoveLanguages: []string{"Quality Time", "Physical Touch"},
			Hobbies:       "climbing, cooking",
		},
		Partner: &PersonContext{
			UserID:         2,
			Name:           "Sam",
			LoveLanguages:  []string{"Acts of Service"},
			StressResponse: "go quiet",
		},
		Relationship: &RelationshipContext{CoupleID: 7, HealthScore: &health, Alignment: &alignment},
		Assessment: &AssessmentContext{ModuleScores: []ModuleScore{
			{ModuleID: "communication", Title: "Communication", Percentage: 85, Tier: TierStrong},
			{ModuleID: "conflict_style", Title: "Conflict Style", Percentage: 45, Tier: TierDeveloping},
		}},
		CheckIns: &CheckInContext{
			Streak: 6,
			Report: PatternReport{
				SampleCount:   5,
				AvgMood:       3.8,
				AvgConnection: 4.2,
				MoodTrend:     TrendImproving,
				Concerns: []ConcernFlag{
					{Type: ConcernLowConnectionFrequency, Severity: "medium", Description: "Connection felt low on 3 of the last 5 check-ins"},
				},
			},
			Recent: []CheckInSample{
				{Date: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), Mood: "good", ConnectionScore: 4},
			},
		},
		Dates: &DatesContext{
			Upcoming: &DateSummary{Title: "Picnic", Location: "Riverside Park", ScheduledAt: time.Date(2025, 6, 20, 18, 0, 0, 0, time.UTC)},
		},
		Flirts: []FlirtSummary{
			{From: "Sam", Message: "thinking of you", SentAt: time.Date(2025, 6, 13, 9, 0, 0, 0, time.UTC)},
		},
		TimelineCount: 12,
	}
}

func TestRenderPromptIdempotent(t *testing.T) {
	ctx := fullContext()
	assert.Equal(t, RenderPrompt(ctx), RenderPrompt(ctx))
}

func TestRenderPromptSections(t *testing.T) {
	out := RenderPrompt(fullContext())

	assert.Contains(t, out, "You are coaching Riley")
	assert.Contains(t, out, "Quality Time, Physical Touch")
	assert.Contains(t, out, "their partner Sam")
	assert.Contains(t, out, "Relationship health score: 72/100")
	assert.Contains(t, out, "Daily check-in alignment: 60%")
	assert.Contains(t, out, "Strengths: Communication (85%)")
	assert.Contains(t, out, "Growth areas: Conflict Style (45%)")
	assert.Contains(t, out, "Current check-in streak: 6 days")
	assert.Contains(t, out, "Concern (medium)")
	assert.Contains(t, out, "Picnic")
	assert.Contains(t, out, "Jun 20, 2025")
	assert.Contains(t, out, "12 memories")
}

func TestRenderPromptOmitsAbsentSections(t *testing.T) {
	out := RenderPrompt(&CoachContext{User: PersonContext{UserID: 1, Name: "Riley"}})

	assert.Contains(t, out, "You are coaching Riley")
	assert.NotContains(t, out, "partner")
	assert.NotContains(t, out, "health score")
	assert.NotContains(t, out, "Strengths")
	assert.NotContains(t, out, "check-ins")
	assert.NotContains(t, out, "Upcoming date")
	assert.NotContains(t, out, "flirts")
	assert.NotContains(t, out, "memories")
}

func TestRenderPromptModuleBetweenThresholdsOmitted(t *testing.T) {
	ctx := &CoachContext{
		User: PersonContext{UserID: 1, Name: "Riley"},
		Assessment: &AssessmentContext{ModuleScores: []ModuleScore{
			// 70-79 is neither a strength nor a growth area.
			{ModuleID: "intimacy", Title: "Intimacy & Affection", Percentage: 75, Tier: TierGood},
		}},
	}
	out := RenderPrompt(ctx)
	assert.False(t, strings.Contains(out, "Intimacy"))
}
