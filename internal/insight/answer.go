package insight

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Answer is the tagged union of raw answer values. The scorer matches on the
// concrete type instead of probing map shapes.
type Answer interface {
	answerType() AnswerType
}

type SingleChoiceAnswer struct {
	OptionID string
}

type ScaleAnswer struct {
	Value int
}

// RankingAnswer maps item keys to rank weights where a higher weight means more
// preferred (the opposite of ordinal position). Order preserves the key order of
// the source document so ties break stably.
type RankingAnswer struct {
	Ranks map[string]int
	Order []string
}

type TextAnswer struct {
	Text string
}

func (SingleChoiceAnswer) answerType() AnswerType { return AnswerSingleChoice }
func (ScaleAnswer) answerType() AnswerType        { return AnswerScale }
func (RankingAnswer) answerType() AnswerType      { return AnswerRanking }
func (TextAnswer) answerType() AnswerType         { return AnswerFreeText }

// AnswerSet holds the raw answers of one assessment attempt, keyed by question
// id. Missing keys mean unanswered; values are never nil.
type AnswerSet map[string]Answer

// ParseAnswerSet decodes a stored raw answer document against a module's
// question types. Values that cannot be read as the declared type are dropped,
// never surfaced as errors; the stored document stays the source of truth.
func ParseAnswerSet(raw json.RawMessage, module *QuestionModule) AnswerSet {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return AnswerSet{}
	}

	set := make(AnswerSet, len(doc))
	for _, q := range module.Questions {
		val, ok := doc[q.ID]
		if !ok {
			// The love-language ranking moved keys once; accept the old one.
			if q.ID == LoveLanguageKey {
				if val, ok = doc[loveLanguageLegacyKey]; !ok {
					continue
				}
			} else {
				continue
			}
		}

		switch q.Type {
		case AnswerSingleChoice:
			var s string
			if json.Unmarshal(val, &s) == nil && s != "" {
				set[q.ID] = SingleChoiceAnswer{OptionID: s}
			}
		case AnswerScale:
			var n int
			if json.Unmarshal(val, &n) == nil {
				set[q.ID] = ScaleAnswer{Value: n}
			}
		case AnswerRanking:
			if r, ok := parseRanking(val); ok {
				set[q.ID] = r
			}
		case AnswerFreeText:
			var s string
			if json.Unmarshal(val, &s) == nil && s != "" {
				set[q.ID] = TextAnswer{Text: s}
			}
		}
	}
	return set
}

// parseRanking walks the object tokens directly so the source key order
// survives; map decoding would randomize it and break stable tie-breaks.
func parseRanking(raw json.RawMessage) (RankingAnswer, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return RankingAnswer{}, false
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return RankingAnswer{}, false
	}

	out := RankingAnswer{Ranks: make(map[string]int)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return RankingAnswer{}, false
		}
		key, ok := keyTok.(string)
		if !ok {
			return RankingAnswer{}, false
		}

		valTok, err := dec.Token()
		if err != nil {
			return RankingAnswer{}, false
		}
		num, ok := valTok.(json.Number)
		if !ok {
			// Non-numeric weights are skipped, not fatal.
			continue
		}
		weight, err := strconv.Atoi(num.String())
		if err != nil || weight <= 0 {
			continue
		}
		if _, seen := out.Ranks[key]; !seen {
			out.Order = append(out.Order, key)
		}
		out.Ranks[key] = weight
	}

	if len(out.Ranks) == 0 {
		return RankingAnswer{}, false
	}
	return out, true
}
