package service

import (
	"couple_coach_backend/internal/insight"
	"couple_coach_backend/internal/model"
	"couple_coach_backend/internal/util"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// AssessmentResult is what the client sees after submitting a module.
type AssessmentResult struct {
	ModuleID   string               `json:"moduleId"`
	Percentage int                  `json:"percentage"`
	Tier       insight.StrengthTier `json:"strengthTier"`
	Score      insight.ModuleScore  `json:"score"`
}

// attemptStore is the slice of the assessment repository this service needs,
// satisfied by *repository.AssessmentRepository.
type attemptStore interface {
	Upsert(attempt *model.AssessmentAttempt) error
	FindByUserAndModule(userID uint, moduleID string) (*model.AssessmentAttempt, error)
	ListByUser(userID uint) ([]model.AssessmentAttempt, error)
}

type AssessmentService struct {
	AssessmentRepo attemptStore
}

func NewAssessmentService(assessmentRepo attemptStore) *AssessmentService {
	return &AssessmentService{
		AssessmentRepo: assessmentRepo,
	}
}

// ListModules returns the build-time question modules.
func (s *AssessmentService) ListModules() []insight.QuestionModule {
	return insight.Modules()
}

func (s *AssessmentService) GetModule(moduleID string) (*insight.QuestionModule, error) {
	module, ok := insight.ModuleByID(moduleID)
	if !ok {
		return nil, util.ErrUnknownModule
	}
	return module, nil
}

// SubmitAnswers parses, scores and persists one module's answers. The raw
// answer document is stored as the source of truth; percentage and tier are
// cached on the row for cheap list views. Retakes overwrite.
func (s *AssessmentService) SubmitAnswers(userID uint, moduleID string, raw json.RawMessage) (*AssessmentResult, error) {
	module, err := s.GetModule(moduleID)
	if err != nil {
		return nil, err
	}

	answers := insight.ParseAnswerSet(raw, module)
	score := insight.ScoreModule(module, answers)

	attempt := &model.AssessmentAttempt{
		UserID:     userID,
		ModuleID:   moduleID,
		Answers:    raw,
		Percentage: score.Percentage,
		Tier:       string(score.Tier),
	}
	if err := s.AssessmentRepo.Upsert(attempt); err != nil {
		return nil, err
	}

	return &AssessmentResult{
		ModuleID:   moduleID,
		Percentage: score.Percentage,
		Tier:       score.Tier,
		Score:      score,
	}, nil
}

// ModuleScores recomputes every stored attempt against the current module
// schema. Attempts for modules that no longer exist are skipped.
func (s *AssessmentService) ModuleScores(userID uint) ([]insight.ModuleScore, error) {
	attempts, err := s.AssessmentRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	scores := make([]insight.ModuleScore, 0, len(attempts))
	for _, attempt := range attempts {
		module, ok := insight.ModuleByID(attempt.ModuleID)
		if !ok {
			continue
		}
		answers := insight.ParseAnswerSet(attempt.Answers, module)
		scores = append(scores, insight.ScoreModule(module, answers))
	}
	return scores, nil
}

// LoveLanguages returns the ranked love languages from the user's assessment,
// or nil when the module was never taken.
func (s *AssessmentService) LoveLanguages(userID uint) ([]string, error) {
	attempt, err := s.AssessmentRepo.FindByUserAndModule(userID, insight.LoveLanguageModuleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	module, ok := insight.ModuleByID(insight.LoveLanguageModuleID)
	if !ok {
		return nil, nil
	}

	answers := insight.ParseAnswerSet(attempt.Answers, module)
	return insight.LoveLanguagesFromAnswers(answers), nil
}
