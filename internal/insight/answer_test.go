package insight

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswerSetTypes(t *testing.T) {
	module, ok := ModuleByID("communication")
	require.True(t, ok)

	raw := json.RawMessage(`{
		"comm_conflict_start": "listen_first",
		"comm_daily_shares": 4,
		"comm_wish": "more patience with my schedule"
	}`)
	set := ParseAnswerSet(raw, module)

	assert.Equal(t, SingleChoiceAnswer{OptionID: "listen_first"}, set["comm_conflict_start"])
	assert.Equal(t, ScaleAnswer{Value: 4}, set["comm_daily_shares"])
	assert.Equal(t, TextAnswer{Text: "more patience with my schedule"}, set["comm_wish"])
	_, answered := set["comm_hard_topics"]
	assert.False(t, answered)
}

func TestParseAnswerSetMalformedDocument(t *testing.T) {
	module, _ := ModuleByID("communication")
	assert.Empty(t, ParseAnswerSet(json.RawMessage(`not json`), module))
	assert.Empty(t, ParseAnswerSet(json.RawMessage(`[1,2,3]`), module))
}

func TestParseAnswerSetWrongValueShapesDropped(t *testing.T) {
	module, _ := ModuleByID("communication")
	raw := json.RawMessage(`{
		"comm_conflict_start": 42,
		"comm_daily_shares": "lots",
		"comm_wish": ""
	}`)
	set := ParseAnswerSet(raw, module)
	assert.Empty(t, set)
}

func TestParseRankingPreservesKeyOrder(t *testing.T) {
	module, ok := ModuleByID("love_language")
	require.True(t, ok)

	raw := json.RawMessage(`{"love_language_ranking": {"acts_of_service": 2, "quality_time": 2, "physical_touch": 1}}`)
	set := ParseAnswerSet(raw, module)

	ranking, ok := set[LoveLanguageKey].(RankingAnswer)
	require.True(t, ok)
	assert.Equal(t, []string{"acts_of_service", "quality_time", "physical_touch"}, ranking.Order)

	// Ties resolved by that order.
	assert.Equal(t, []string{"Acts of Service", "Quality Time", "Physical Touch"}, RankPreferences(&ranking))
}

func TestParseRankingDropsBadWeights(t *testing.T) {
	ans, ok := parseRanking(json.RawMessage(`{"a": 3, "b": "high", "c": -1, "d": 1}`))
	require.True(t, ok)
	assert.Equal(t, map[string]int{"a": 3, "d": 1}, ans.Ranks)
	assert.Equal(t, []string{"a", "d"}, ans.Order)
}

func TestParseRankingNotAnObject(t *testing.T) {
	_, ok := parseRanking(json.RawMessage(`[1,2]`))
	assert.False(t, ok)
	_, ok = parseRanking(json.RawMessage(`"quality_time"`))
	assert.False(t, ok)
	_, ok = parseRanking(json.RawMessage(`{}`))
	assert.False(t, ok)
}
