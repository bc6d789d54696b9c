package insight

import "math"

// StrengthTier buckets a module percentage for display.
type StrengthTier string

const (
	TierStrong     StrengthTier = "strong"
	TierGood       StrengthTier = "good"
	TierDeveloping StrengthTier = "developing"
	TierGrowthArea StrengthTier = "growth_area"
)

// ModuleScore is derived on demand from a module definition plus a raw answer
// set. It is never the source of truth; the answer set is.
type ModuleScore struct {
	ModuleID    string         `json:"moduleId"`
	Title       string         `json:"title"`
	Percentage  int            `json:"percentage"`
	Tier        StrengthTier   `json:"strengthTier"`
	TraitTotals map[string]int `json:"traitTotals"`
}

// ScoreModule computes the 0-100 percentage and tier for one module.
//
// Single-choice answers earn the selected option's value against a fixed
// per-question ceiling. Scale answers earn the clamped value against the scale
// maximum. Ranking answers earn a fixed completion weight (they inform
// RankPreferences, not the percentage beyond completion credit). Free text
// never scores. Answers naming an option that does not exist contribute
// nothing at all.
func ScoreModule(module *QuestionModule, answers AnswerSet) ModuleScore {
	score := ModuleScore{
		ModuleID:    module.ID,
		Title:       module.Title,
		Tier:        TierGrowthArea,
		TraitTotals: make(map[string]int),
	}

	earned, possible := 0, 0
	for i := range module.Questions {
		q := &module.Questions[i]
		ans, ok := answers[q.ID]
		if !ok {
			continue
		}

		switch a := ans.(type) {
		case SingleChoiceAnswer:
			opt, found := q.optionByID(a.OptionID)
			if !found {
				continue
			}
			earned += opt.Value
			possible += optionCeiling
			for trait, w := range opt.TraitWeights {
				score.TraitTotals[trait] += w
			}
		case ScaleAnswer:
			max := q.scaleMax()
			v := a.Value
			if v < 1 {
				v = 1
			}
			if v > max {
				v = max
			}
			earned += v
			possible += max
		case RankingAnswer:
			earned += rankingCompletionWeight
			possible += rankingCompletionWeight
		case TextAnswer:
			// narrative only
		}
	}

	if possible == 0 {
		return score
	}

	pct := int(math.Round(100 * float64(earned) / float64(possible)))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	score.Percentage = pct
	score.Tier = tierFor(pct)
	return score
}

// Inclusive lower bounds, evaluated top-down.
func tierFor(percentage int) StrengthTier {
	switch {
	case percentage >= 80:
		return TierStrong
	case percentage >= 60:
		return TierGood
	case percentage >= 40:
		return TierDeveloping
	default:
		return TierGrowthArea
	}
}
