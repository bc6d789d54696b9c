package service

import (
	"couple_coach_backend/internal/insight"
	"couple_coach_backend/internal/model"
	"couple_coach_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeAttemptStore struct {
	rows map[uint]map[string]*model.AssessmentAttempt
}

func newFakeAttemptStore() *fakeAttemptStore {
	return &fakeAttemptStore{rows: map[uint]map[string]*model.AssessmentAttempt{}}
}

func (f *fakeAttemptStore) Upsert(attempt *model.AssessmentAttempt) error {
	if f.rows[attempt.UserID] == nil {
		f.rows[attempt.UserID] = map[string]*model.AssessmentAttempt{}
	}
	f.rows[attempt.UserID][attempt.ModuleID] = attempt
	return nil
}

func (f *fakeAttemptStore) FindByUserAndModule(userID uint, moduleID string) (*model.AssessmentAttempt, error) {
	attempt, ok := f.rows[userID][moduleID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return attempt, nil
}

func (f *fakeAttemptStore) ListByUser(userID uint) ([]model.AssessmentAttempt, error) {
	var out []model.AssessmentAttempt
	for _, attempt := range f.rows[userID] {
		out = append(out, *attempt)
	}
	return out, nil
}

func TestSubmitAnswersThenLoveLanguages(t *testing.T) {
	svc := NewAssessmentService(newFakeAttemptStore())

	result, err := svc.SubmitAnswers(1, insight.LoveLanguageModuleID, rankingAnswers(t))
	require.NoError(t, err)
	assert.Equal(t, insight.LoveLanguageModuleID, result.ModuleID)

	// The lookup must see the attempt exactly as SubmitAnswers stored it.
	languages, err := svc.LoveLanguages(1)
	require.NoError(t, err)
	require.NotEmpty(t, languages)
	assert.Equal(t, "Quality Time", languages[0])
}

func TestLoveLanguagesModuleNeverTaken(t *testing.T) {
	svc := NewAssessmentService(newFakeAttemptStore())

	languages, err := svc.LoveLanguages(1)
	require.NoError(t, err)
	assert.Nil(t, languages)
}

func TestSubmitAnswersUnknownModule(t *testing.T) {
	svc := NewAssessmentService(newFakeAttemptStore())

	_, err := svc.SubmitAnswers(1, "numerology", rankingAnswers(t))
	assert.ErrorIs(t, err, util.ErrUnknownModule)
}
