package insight

import "sort"

// Display labels for the love-language ranking keys. Keys outside the table
// pass through verbatim so an older client's custom key still renders.
var preferenceLabels = map[string]string{
	"words_of_affirmation": "Words of Affirmation",
	"quality_time":         "Quality Time",
	"acts_of_service":      "Acts of Service",
	"physical_touch":       "Physical Touch",
	"receiving_gifts":      "Receiving Gifts",
}

// RankPreferences orders a ranking answer's labels most-preferred first.
// Higher rank weight means more preferred — weights are points, not ordinal
// positions. Ties keep the source key order (stable sort).
func RankPreferences(ans *RankingAnswer) []string {
	if ans == nil || len(ans.Ranks) == 0 {
		return []string{}
	}

	keys := make([]string, len(ans.Order))
	copy(keys, ans.Order)
	sort.SliceStable(keys, func(i, j int) bool {
		return ans.Ranks[keys[i]] > ans.Ranks[keys[j]]
	})

	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		if label, ok := preferenceLabels[k]; ok {
			labels = append(labels, label)
		} else {
			labels = append(labels, k)
		}
	}
	return labels
}

// LoveLanguagesFromAnswers pulls the ranked love languages out of an answer
// set. ParseAnswerSet already folds the legacy key under LoveLanguageKey, so a
// single lookup covers both aliases.
func LoveLanguagesFromAnswers(answers AnswerSet) []string {
	ans, ok := answers[LoveLanguageKey]
	if !ok {
		return []string{}
	}
	ranking, ok := ans.(RankingAnswer)
	if !ok {
		return []string{}
	}
	return RankPreferences(&ranking)
}
