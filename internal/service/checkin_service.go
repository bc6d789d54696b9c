package service

import (
	"context"
	"couple_coach_backend/internal/insight"
	"couple_coach_backend/internal/model"
	"couple_coach_backend/internal/repository"
	"couple_coach_backend/internal/util"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// dailyQuestions rotate by day of year; every user sees the same question on
// the same calendar day.
var dailyQuestions = []string{
	"What made you smile today?",
	"What is one thing your partner did recently that you appreciated?",
	"What would make tomorrow better than today?",
	"What is something you want to do together soon?",
	"What has been on your mind lately?",
	"When did you feel closest to your partner this week?",
	"What is one small thing you could do for your partner tomorrow?",
	"What are you grateful for today?",
	"What drained your energy today?",
	"What is a memory with your partner you revisited recently?",
	"How did you take care of yourself today?",
	"What conversation do you keep postponing?",
	"What made you feel loved recently?",
	"What do you wish you had more time for together?",
}

type CheckInRequest struct {
	Mood            string `json:"mood" binding:"required"`
	ConnectionScore int    `json:"connectionScore" binding:"required"`
	Answer          string `json:"answer"`
}

type CheckInService struct {
	CheckInRepo *repository.CheckInRepository
	CoupleRepo  *repository.CoupleRepository
	Redis       *redis.Client
}

func NewCheckInService(checkInRepo *repository.CheckInRepository, coupleRepo *repository.CoupleRepository, rdb *redis.Client) *CheckInService {
	return &CheckInService{
		CheckInRepo: checkInRepo,
		CoupleRepo:  coupleRepo,
		Redis:       rdb,
	}
}

// TodayQuestion serves the rotating daily question. Redis caches the pick per
// calendar day so the answer survives restarts within a day; the day-of-year
// rotation is the fallback and the cache seed, so a redis outage never changes
// the question.
func (s *CheckInService) TodayQuestion(ctx context.Context) string {
	now := time.Now()
	question := dailyQuestions[now.YearDay()%len(dailyQuestions)]

	if s.Redis == nil {
		return question
	}

	key := fmt.Sprintf("checkin:question:%s", now.Format("2006-01-02"))
	cached, err := s.Redis.Get(ctx, key).Result()
	if err == nil && cached != "" {
		return cached
	}

	s.Redis.Set(ctx, key, question, 48*time.Hour)
	return question
}

// SubmitCheckIn records today's entry; one per user per day.
func (s *CheckInService) SubmitCheckIn(ctx context.Context, userID uint, req CheckInRequest) (*model.CheckIn, error) {
	if req.Mood == "" || req.ConnectionScore < 1 || req.ConnectionScore > 5 {
		return nil, util.ErrInvalidCheckIn
	}

	now := time.Now()
	if _, err := s.CheckInRepo.FindByUserAndDay(userID, now); err == nil {
		return nil, util.ErrAlreadyCheckedIn
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	checkin := &model.CheckIn{
		UserID:          userID,
		Day:             time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Mood:            req.Mood,
		ConnectionScore: req.ConnectionScore,
		Question:        s.TodayQuestion(ctx),
		Answer:          req.Answer,
	}

	if couple, err := s.CoupleRepo.FindActiveByMember(userID); err == nil {
		checkin.CoupleID = &couple.ID
	}

	if err := s.CheckInRepo.Create(checkin); err != nil {
		return nil, err
	}
	return checkin, nil
}

// Streak counts consecutive daily check-ins ending at the anchor.
func (s *CheckInService) Streak(userID uint, anchor insight.StreakAnchor) (int, error) {
	days, err := s.CheckInRepo.RecentDays(userID, 400)
	if err != nil {
		return 0, err
	}
	return insight.CurrentStreak(days, anchor, time.Now()), nil
}

// Report analyzes the user's recent window.
func (s *CheckInService) Report(userID uint, windowDays int) (insight.PatternReport, error) {
	if windowDays <= 0 {
		windowDays = insight.DefaultPatternWindowDays
	}
	samples, err := s.RecentSamples(userID, windowDays)
	if err != nil {
		return insight.PatternReport{}, err
	}
	return insight.AnalyzePatterns(samples), nil
}

// RecentSamples loads the user's check-ins from the last windowDays as
// analysis samples, oldest first.
func (s *CheckInService) RecentSamples(userID uint, windowDays int) ([]insight.CheckInSample, error) {
	since := time.Now().AddDate(0, 0, -windowDays)
	checkins, err := s.CheckInRepo.FindSince(userID, since)
	if err != nil {
		return nil, err
	}
	return SamplesFromCheckIns(checkins), nil
}

// History returns the raw rows for the client's calendar view.
func (s *CheckInService) History(userID uint, windowDays int) ([]model.CheckIn, error) {
	if windowDays <= 0 {
		windowDays = 30
	}
	since := time.Now().AddDate(0, 0, -windowDays)
	return s.CheckInRepo.FindSince(userID, since)
}

// SamplesFromCheckIns strips storage concerns off check-in rows.
func SamplesFromCheckIns(checkins []model.CheckIn) []insight.CheckInSample {
	samples := make([]insight.CheckInSample, 0, len(checkins))
	for _, c := range checkins {
		samples = append(samples, insight.CheckInSample{
			Date:            c.Day,
			Mood:            c.Mood,
			ConnectionScore: c.ConnectionScore,
			Question:        c.Question,
			Answer:          c.Answer,
		})
	}
	return samples
}
