package service

import (
	"context"
	"couple_coach_backend/internal/insight"
	"couple_coach_backend/internal/model"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeUsers struct {
	users map[uint]*model.User
	err   error
}

func (f *fakeUsers) FindByID(id uint) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

type fakePreferences struct {
	prefs map[uint]*model.UserPreference
	err   error
}

func (f *fakePreferences) FindByUserID(userID uint) (*model.UserPreference, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.prefs[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

type fakeCouples struct {
	couple *model.Couple
}

func (f *fakeCouples) FindActiveByMember(userID uint) (*model.Couple, error) {
	if f.couple == nil {
		return nil, gorm.ErrRecordNotFound
	}
	if f.couple.MemberAID != userID && f.couple.MemberBID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return f.couple, nil
}

type fakeAttempts struct {
	attempts map[uint][]model.AssessmentAttempt
}

func (f *fakeAttempts) ListByUser(userID uint) ([]model.AssessmentAttempt, error) {
	return f.attempts[userID], nil
}

type fakeCheckIns struct {
	checkins map[uint][]model.CheckIn
	err      error
}

func (f *fakeCheckIns) FindSince(userID uint, since time.Time) ([]model.CheckIn, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.checkins[userID], nil
}

func (f *fakeCheckIns) RecentDays(userID uint, limit int) ([]time.Time, error) {
	if f.err != nil {
		return nil, f.err
	}
	var days []time.Time
	for _, c := range f.checkins[userID] {
		days = append(days, c.Day)
	}
	return days, nil
}

type fakeHealth struct {
	score *model.HealthScore
}

func (f *fakeHealth) Latest(coupleID uint) (*model.HealthScore, error) {
	if f.score == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.score, nil
}

type fakeDates struct {
	upcoming *model.DateEvent
	recent   []model.DateEvent
}

func (f *fakeDates) NextUpcoming(coupleID uint, now time.Time) (*model.DateEvent, error) {
	if f.upcoming == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.upcoming, nil
}

func (f *fakeDates) Recent(coupleID uint, now time.Time, limit int) ([]model.DateEvent, error) {
	return f.recent, nil
}

type fakeFlirts struct {
	flirts []model.Flirt
}

func (f *fakeFlirts) Recent(coupleID uint, limit int) ([]model.Flirt, error) {
	return f.flirts, nil
}

type fakeTimeline struct {
	count int64
	err   error
}

func (f *fakeTimeline) CountByCouple(coupleID uint) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.count, nil
}

func rankingAnswers(t *testing.T) json.RawMessage {
	t.Helper()
	doc := map[string]interface{}{
		insight.LoveLanguageKey: map[string]int{
			"quality_time":         5,
			"physical_touch":       4,
			"words_of_affirmation": 3,
			"acts_of_service":      2,
			"receiving_gifts":      1,
		},
	}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	return raw
}

func checkinsFor(userID uint, days int) []model.CheckIn {
	var out []model.CheckIn
	now := time.Now()
	for i := days - 1; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		out = append(out, model.CheckIn{
			UserID:          userID,
			Day:             time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location()),
			Mood:            "good",
			ConnectionScore: 4,
		})
	}
	return out
}

func fullyLinkedService(t *testing.T) *CoachContextService {
	t.Helper()
	couple := &model.Couple{MemberAID: 1, MemberBID: 2, Status: model.CoupleActive}
	couple.ID = 10

	health := &model.HealthScore{CoupleID: 10, Score: 76, ComputedAt: time.Now()}

	return NewCoachContextService(
		&fakeUsers{users: map[uint]*model.User{
			1: {BaseModel: model.BaseModel{ID: 1}, Name: "Ana"},
			2: {BaseModel: model.BaseModel{ID: 2}, Name: "Ben"},
		}},
		&fakePreferences{prefs: map[uint]*model.UserPreference{
			1: {UserID: 1, Hobbies: "hiking", Values: "honesty"},
		}},
		&fakeCouples{couple: couple},
		&fakeAttempts{attempts: map[uint][]model.AssessmentAttempt{
			1: {{UserID: 1, ModuleID: insight.LoveLanguageModuleID, Answers: rankingAnswers(t)}},
		}},
		&fakeCheckIns{checkins: map[uint][]model.CheckIn{
			1: checkinsFor(1, 5),
			2: checkinsFor(2, 3),
		}},
		&fakeHealth{score: health},
		&fakeDates{
			upcoming: &model.DateEvent{Title: "Picnic", ScheduledAt: time.Now().Add(48 * time.Hour)},
		},
		&fakeFlirts{flirts: []model.Flirt{{SenderID: 2, ReceiverID: 1, Message: "miss you"}}},
		&fakeTimeline{count: 7},
		zap.NewNop(),
	)
}

func TestBuildContextFullyLinked(t *testing.T) {
	svc := fullyLinkedService(t)

	ctx, err := svc.BuildContext(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, uint(1), ctx.GeneratedFor)
	assert.Equal(t, "Ana", ctx.User.Name)
	assert.Equal(t, "account", ctx.User.NameSource)
	assert.Equal(t, "hiking", ctx.User.Hobbies)

	require.NotNil(t, ctx.Partner)
	assert.Equal(t, "Ben", ctx.Partner.Name)

	require.NotNil(t, ctx.Relationship)
	assert.Equal(t, uint(10), ctx.Relationship.CoupleID)
	require.NotNil(t, ctx.Relationship.HealthScore)
	assert.Equal(t, 76, *ctx.Relationship.HealthScore)
	assert.NotNil(t, ctx.Relationship.Alignment)

	require.NotNil(t, ctx.Assessment)
	assert.Nil(t, ctx.PartnerAssessment)

	require.NotNil(t, ctx.CheckIns)
	assert.Len(t, ctx.CheckIns.Recent, 5)
	require.NotNil(t, ctx.PartnerCheckIns)

	require.NotNil(t, ctx.Dates)
	assert.Equal(t, "Picnic", ctx.Dates.Upcoming.Title)

	require.Len(t, ctx.Flirts, 1)
	assert.Equal(t, "Ben", ctx.Flirts[0].From)
	assert.Equal(t, int64(7), ctx.TimelineCount)
}

func TestBuildContextLoveLanguageFromAssessment(t *testing.T) {
	svc := fullyLinkedService(t)

	ctx, err := svc.BuildContext(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "assessment", ctx.User.LoveLanguageSource)
	require.NotEmpty(t, ctx.User.LoveLanguages)
	assert.Equal(t, "Quality Time", ctx.User.LoveLanguages[0])
}

func TestBuildContextAssessmentBeatsLegacyPreference(t *testing.T) {
	svc := fullyLinkedService(t)
	// Both sources present: the ranked assessment must win over the legacy
	// single-value preference.
	svc.Preferences = &fakePreferences{prefs: map[uint]*model.UserPreference{
		1: {UserID: 1, LoveLanguage: "acts_of_service"},
	}}

	ctx, err := svc.BuildContext(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "assessment", ctx.User.LoveLanguageSource)
	require.NotEmpty(t, ctx.User.LoveLanguages)
	assert.Equal(t, "Quality Time", ctx.User.LoveLanguages[0])
}

func TestBuildContextLegacyLoveLanguageFallback(t *testing.T) {
	svc := fullyLinkedService(t)
	svc.Attempts = &fakeAttempts{}
	svc.Preferences = &fakePreferences{prefs: map[uint]*model.UserPreference{
		1: {UserID: 1, LoveLanguage: "quality_time"},
	}}

	ctx, err := svc.BuildContext(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "preferences", ctx.User.LoveLanguageSource)
	assert.Equal(t, []string{"quality_time"}, ctx.User.LoveLanguages)
}

func TestBuildContextProfileNameFallback(t *testing.T) {
	svc := fullyLinkedService(t)
	svc.Users = &fakeUsers{users: map[uint]*model.User{
		1: {BaseModel: model.BaseModel{ID: 1}, Name: ""},
		2: {BaseModel: model.BaseModel{ID: 2}, Name: "Ben"},
	}}
	svc.Preferences = &fakePreferences{prefs: map[uint]*model.UserPreference{
		1: {UserID: 1, ProfileName: "Sunshine"},
	}}

	ctx, err := svc.BuildContext(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Sunshine", ctx.User.Name)
	assert.Equal(t, "preferences", ctx.User.NameSource)
}

func TestBuildContextSurvivesBranchFailures(t *testing.T) {
	svc := fullyLinkedService(t)
	svc.CheckIns = &fakeCheckIns{err: errors.New("table locked")}
	svc.Timeline = &fakeTimeline{err: errors.New("timeout")}

	ctx, err := svc.BuildContext(context.Background(), 1)
	require.NoError(t, err)

	// Failed branches are absent, everything else still lands.
	assert.Nil(t, ctx.CheckIns)
	assert.Nil(t, ctx.PartnerCheckIns)
	assert.Zero(t, ctx.TimelineCount)
	assert.NotNil(t, ctx.Partner)
	assert.NotNil(t, ctx.Assessment)
	assert.NotNil(t, ctx.Relationship)
	// No check-in overlap on either side means no alignment.
	assert.Nil(t, ctx.Relationship.Alignment)
}

func TestBuildContextUnlinkedUser(t *testing.T) {
	svc := fullyLinkedService(t)
	svc.Couples = &fakeCouples{}

	ctx, err := svc.BuildContext(context.Background(), 1)
	require.NoError(t, err)

	assert.Nil(t, ctx.Partner)
	assert.Nil(t, ctx.Relationship)
	assert.Nil(t, ctx.Dates)
	assert.Empty(t, ctx.Flirts)
	assert.NotNil(t, ctx.CheckIns)
}

func TestBuildContextUnknownUser(t *testing.T) {
	svc := fullyLinkedService(t)

	_, err := svc.BuildContext(context.Background(), 99)
	assert.Error(t, err)
}
