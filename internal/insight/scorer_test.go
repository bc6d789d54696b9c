package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModule() *QuestionModule {
	return &QuestionModule{
		ID:    "test_module",
		Title: "Test Module",
		Questions: []Question{
			{
				ID:   "q1",
				Type: AnswerSingleChoice,
				Options: []Option{
					{ID: "best", Value: 5, TraitWeights: map[string]int{"warmth": 3}},
					{ID: "mid", Value: 3, TraitWeights: map[string]int{"warmth": 1}},
					{ID: "worst", Value: 1},
				},
			},
			{
				ID:   "q2",
				Type: AnswerSingleChoice,
				Options: []Option{
					{ID: "best", Value: 5},
					{ID: "worst", Value: 0},
				},
			},
			{
				ID:   "q3",
				Type: AnswerSingleChoice,
				Options: []Option{
					{ID: "best", Value: 5},
				},
			},
			{ID: "q4", Type: AnswerScale},
			{ID: "q5", Type: AnswerRanking},
			{ID: "q6", Type: AnswerFreeText},
		},
	}
}

func TestScoreModuleAllMaxSingleChoice(t *testing.T) {
	m := testModule()
	answers := AnswerSet{
		"q1": SingleChoiceAnswer{OptionID: "best"},
		"q2": SingleChoiceAnswer{OptionID: "best"},
		"q3": SingleChoiceAnswer{OptionID: "best"},
	}

	score := ScoreModule(m, answers)
	assert.Equal(t, 100, score.Percentage)
	assert.Equal(t, TierStrong, score.Tier)
	assert.Equal(t, 3, score.TraitTotals["warmth"])
}

func TestScoreModuleEmptyAnswers(t *testing.T) {
	score := ScoreModule(testModule(), AnswerSet{})
	assert.Equal(t, 0, score.Percentage)
	assert.Equal(t, TierGrowthArea, score.Tier)
}

func TestScoreModuleBounds(t *testing.T) {
	m := testModule()
	cases := []AnswerSet{
		{"q1": SingleChoiceAnswer{OptionID: "worst"}},
		{"q4": ScaleAnswer{Value: -10}},
		{"q4": ScaleAnswer{Value: 99}},
		{"q1": SingleChoiceAnswer{OptionID: "best"}, "q4": ScaleAnswer{Value: 3}},
		{"q5": RankingAnswer{Ranks: map[string]int{"a": 1}, Order: []string{"a"}}},
	}
	for _, answers := range cases {
		score := ScoreModule(m, answers)
		assert.GreaterOrEqual(t, score.Percentage, 0)
		assert.LessOrEqual(t, score.Percentage, 100)
	}
}

func TestScoreModuleMonotonicity(t *testing.T) {
	m := testModule()
	answers := AnswerSet{
		"q1": SingleChoiceAnswer{OptionID: "mid"},
		"q4": ScaleAnswer{Value: 2},
	}
	before := ScoreModule(m, answers).Percentage

	answers["q2"] = SingleChoiceAnswer{OptionID: "best"}
	after := ScoreModule(m, answers).Percentage
	assert.GreaterOrEqual(t, after, before)
}

func TestScoreModuleUnknownOptionIgnored(t *testing.T) {
	m := testModule()
	withUnknown := ScoreModule(m, AnswerSet{
		"q1": SingleChoiceAnswer{OptionID: "never_existed"},
		"q2": SingleChoiceAnswer{OptionID: "best"},
	})
	without := ScoreModule(m, AnswerSet{
		"q2": SingleChoiceAnswer{OptionID: "best"},
	})
	assert.Equal(t, without.Percentage, withUnknown.Percentage)
}

func TestScoreModuleRankingIsCompletionCreditOnly(t *testing.T) {
	m := testModule()
	score := ScoreModule(m, AnswerSet{
		"q5": RankingAnswer{Ranks: map[string]int{"a": 3, "b": 1}, Order: []string{"a", "b"}},
	})
	// A completed ranking earns full completion credit and nothing else.
	assert.Equal(t, 100, score.Percentage)
	assert.Empty(t, score.TraitTotals)
}

func TestScoreModuleFreeTextNeverScores(t *testing.T) {
	m := testModule()
	score := ScoreModule(m, AnswerSet{"q6": TextAnswer{Text: "a long heartfelt answer"}})
	assert.Equal(t, 0, score.Percentage)
}

func TestTierBoundaries(t *testing.T) {
	cases := map[int]StrengthTier{
		100: TierStrong,
		80:  TierStrong,
		79:  TierGood,
		60:  TierGood,
		59:  TierDeveloping,
		40:  TierDeveloping,
		39:  TierGrowthArea,
		0:   TierGrowthArea,
	}
	for pct, want := range cases {
		assert.Equal(t, want, tierFor(pct), "percentage %d", pct)
	}
}

func TestScoreModuleScaleClamping(t *testing.T) {
	m := testModule()
	low := ScoreModule(m, AnswerSet{"q4": ScaleAnswer{Value: -3}})
	high := ScoreModule(m, AnswerSet{"q4": ScaleAnswer{Value: 50}})
	require.Equal(t, 20, low.Percentage)  // clamped to 1 of 5
	require.Equal(t, 100, high.Percentage) // clamped to 5 of 5
}
