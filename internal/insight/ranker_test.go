package insight

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankPreferencesHigherWeightWins(t *testing.T) {
	ans := &RankingAnswer{
		Ranks: map[string]int{"acts_of_service": 3, "quality_time": 5, "physical_touch": 1},
		Order: []string{"acts_of_service", "quality_time", "physical_touch"},
	}
	got := RankPreferences(ans)
	assert.Equal(t, []string{"Quality Time", "Acts of Service", "Physical Touch"}, got)
}

func TestRankPreferencesTieKeepsSourceOrder(t *testing.T) {
	ans := &RankingAnswer{
		Ranks: map[string]int{"quality_time": 2, "physical_touch": 2},
		Order: []string{"quality_time", "physical_touch"},
	}
	got := RankPreferences(ans)
	assert.Equal(t, []string{"Quality Time", "Physical Touch"}, got)
}

func TestRankPreferencesUnknownKeyPassesThrough(t *testing.T) {
	ans := &RankingAnswer{
		Ranks: map[string]int{"mystery_language": 4, "quality_time": 2},
		Order: []string{"mystery_language", "quality_time"},
	}
	got := RankPreferences(ans)
	assert.Equal(t, []string{"mystery_language", "Quality Time"}, got)
}

func TestRankPreferencesEmpty(t *testing.T) {
	assert.Empty(t, RankPreferences(nil))
	assert.Empty(t, RankPreferences(&RankingAnswer{}))
}

func TestLoveLanguagesFromAnswersLegacyAlias(t *testing.T) {
	module, ok := ModuleByID("love_language")
	require.True(t, ok)

	raw := json.RawMessage(`{"love_languages": {"physical_touch": 5, "quality_time": 3}}`)
	answers := ParseAnswerSet(raw, module)

	got := LoveLanguagesFromAnswers(answers)
	assert.Equal(t, []string{"Physical Touch", "Quality Time"}, got)
}

func TestLoveLanguagesFromAnswersCurrentKeyPreferred(t *testing.T) {
	module, ok := ModuleByID("love_language")
	require.True(t, ok)

	raw := json.RawMessage(`{
		"love_language_ranking": {"acts_of_service": 5},
		"love_languages": {"physical_touch": 5}
	}`)
	answers := ParseAnswerSet(raw, module)

	got := LoveLanguagesFromAnswers(answers)
	assert.Equal(t, []string{"Acts of Service"}, got)
}

func TestLoveLanguagesFromAnswersAbsent(t *testing.T) {
	assert.Empty(t, LoveLanguagesFromAnswers(AnswerSet{}))
}
