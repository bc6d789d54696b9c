package insight

// AnswerType classifies how a question is answered and scored.
type AnswerType string

const (
	AnswerSingleChoice AnswerType = "single_choice"
	AnswerScale        AnswerType = "scale"
	AnswerRanking      AnswerType = "ranking"
	AnswerFreeText     AnswerType = "free_text"
)

// Option is one selectable choice of a single-choice question. Value feeds the
// percentage, TraitWeights feed the per-trait totals used for narrative content.
type Option struct {
	ID           string
	Label        string
	Value        int
	TraitWeights map[string]int
}

type Question struct {
	ID       string
	Text     string
	Type     AnswerType
	ScaleMax int // scale questions only; 0 means default of 5
	Options  []Option
}

// QuestionModule is a fixed topic area of the assessment. Modules are defined at
// build time and versioned with the binary; user data never mutates them.
type QuestionModule struct {
	ID        string
	Title     string
	Questions []Question
}

// Per-question ceiling for option-weighted and ranking questions.
const (
	optionCeiling           = 5
	rankingCompletionWeight = 5
	defaultScaleMax         = 5
)

// LoveLanguageModuleID is the id attempts for the love-language module are
// stored under.
const LoveLanguageModuleID = "love_language"

// Answer keys the love-language ranking question has gone by. Older clients wrote
// under loveLanguageLegacyKey; both must be checked, newest first.
const (
	LoveLanguageKey       = "love_language_ranking"
	loveLanguageLegacyKey = "love_languages"
)

var modules = []QuestionModule{
	{
		ID:    "communication",
		Title: "Communication",
		Questions: []Question{
			{
				ID:   "comm_conflict_start",
				Text: "When a disagreement starts, what do you usually do first?",
				Type: AnswerSingleChoice,
				Options: []Option{
					{ID: "listen_first", Label: "Hear my partner out before responding", Value: 5, TraitWeights: map[string]int{"listening": 3, "patience": 2}},
					{ID: "explain_mine", Label: "Explain my side right away", Value: 3, TraitWeights: map[string]int{"directness": 3}},
					{ID: "cool_off", Label: "Take space and come back later", Value: 4, TraitWeights: map[string]int{"self_regulation": 3}},
					{ID: "avoid", Label: "Change the subject and hope it passes", Value: 1, TraitWeights: map[string]int{"avoidance": 3}},
				},
			},
			{
				ID:   "comm_daily_shares",
				Text: "How often do you share the small details of your day?",
				Type: AnswerScale,
			},
			{
				ID:   "comm_hard_topics",
				Text: "I feel safe raising difficult topics with my partner.",
				Type: AnswerScale,
			},
			{
				ID:   "comm_repair",
				Text: "After an argument, how do you usually reconnect?",
				Type: AnswerSingleChoice,
				Options: []Option{
					{ID: "talk_through", Label: "Talk through what happened", Value: 5, TraitWeights: map[string]int{"repair": 3}},
					{ID: "gesture", Label: "A kind gesture instead of words", Value: 4, TraitWeights: map[string]int{"warmth": 2}},
					{ID: "wait_out", Label: "Wait until it blows over", Value: 2, TraitWeights: map[string]int{"avoidance": 2}},
				},
			},
			{
				ID:   "comm_wish",
				Text: "What is one thing you wish your partner understood better about you?",
				Type: AnswerFreeText,
			},
		},
	},
	{
		ID:    LoveLanguageModuleID,
		Title: "Love Languages",
		Questions: []Question{
			{
				ID:   LoveLanguageKey,
				Text: "Rank how much each of these makes you feel loved.",
				Type: AnswerRanking,
			},
			{
				ID:   "ll_expression",
				Text: "How do you most naturally show love?",
				Type: AnswerSingleChoice,
				Options: []Option{
					{ID: "through_words", Label: "Saying it out loud", Value: 4, TraitWeights: map[string]int{"verbal_expression": 3}},
					{ID: "through_acts", Label: "Doing things for them", Value: 4, TraitWeights: map[string]int{"acts": 3}},
					{ID: "through_touch", Label: "Physical closeness", Value: 4, TraitWeights: map[string]int{"touch": 3}},
					{ID: "through_time", Label: "Undivided attention", Value: 4, TraitWeights: map[string]int{"presence": 3}},
				},
			},
			{
				ID:   "ll_noticed",
				Text: "I feel my efforts to show love are noticed.",
				Type: AnswerScale,
			},
		},
	},
	{
		ID:    "intimacy",
		Title: "Intimacy & Affection",
		Questions: []Question{
			{
				ID:   "int_closeness",
				Text: "I feel emotionally close to my partner right now.",
				Type: AnswerScale,
			},
			{
				ID:   "int_affection_freq",
				Text: "How satisfied are you with everyday affection?",
				Type: AnswerScale,
			},
			{
				ID:   "int_initiation",
				Text: "Who usually initiates moments of closeness?",
				Type: AnswerSingleChoice,
				Options: []Option{
					{ID: "both_evenly", Label: "We both do, about evenly", Value: 5, TraitWeights: map[string]int{"mutuality": 3}},
					{ID: "mostly_me", Label: "Mostly me", Value: 3, TraitWeights: map[string]int{"initiative": 2}},
					{ID: "mostly_partner", Label: "Mostly my partner", Value: 3},
					{ID: "rarely_either", Label: "Rarely either of us", Value: 1, TraitWeights: map[string]int{"distance": 2}},
				},
			},
		},
	},
	{
		ID:    "conflict_style",
		Title: "Conflict Style",
		Questions: []Question{
			{
				ID:   "conf_heat",
				Text: "When tension rises, I can stay calm.",
				Type: AnswerScale,
			},
			{
				ID:   "conf_apology",
				Text: "How easy is it for you to apologize first?",
				Type: AnswerScale,
			},
			{
				ID:   "conf_pattern",
				Text: "Which best describes your arguments?",
				Type: AnswerSingleChoice,
				Options: []Option{
					{ID: "resolve_together", Label: "We work toward a fix together", Value: 5, TraitWeights: map[string]int{"collaboration": 3}},
					{ID: "win_lose", Label: "Someone has to win", Value: 2, TraitWeights: map[string]int{"competitiveness": 2}},
					{ID: "shut_down", Label: "One of us shuts down", Value: 1, TraitWeights: map[string]int{"withdrawal": 3}},
					{ID: "blow_over", Label: "They fade without resolution", Value: 2, TraitWeights: map[string]int{"avoidance": 2}},
				},
			},
			{
				ID:   "conf_trigger",
				Text: "What topic most often sparks conflict between you?",
				Type: AnswerFreeText,
			},
		},
	},
	{
		ID:    "shared_values",
		Title: "Shared Values",
		Questions: []Question{
			{
				ID:   "val_future",
				Text: "We agree on what we want our future to look like.",
				Type: AnswerScale,
			},
			{
				ID:   "val_money",
				Text: "We handle money decisions as a team.",
				Type: AnswerScale,
			},
			{
				ID:   "val_family",
				Text: "We are aligned on family and close relationships.",
				Type: AnswerScale,
			},
			{
				ID:   "val_priority",
				Text: "Rank what matters most to you as a couple.",
				Type: AnswerRanking,
			},
		},
	},
}

// Modules returns the build-time question modules in display order.
func Modules() []QuestionModule {
	return modules
}

// ModuleByID looks up a module definition. The second return is false for ids
// that have never existed; callers treat that as a contract violation.
func ModuleByID(id string) (*QuestionModule, bool) {
	for i := range modules {
		if modules[i].ID == id {
			return &modules[i], true
		}
	}
	return nil, false
}

func (q *Question) optionByID(id string) (*Option, bool) {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i], true
		}
	}
	return nil, false
}

func (q *Question) scaleMax() int {
	if q.ScaleMax > 0 {
		return q.ScaleMax
	}
	return defaultScaleMax
}
