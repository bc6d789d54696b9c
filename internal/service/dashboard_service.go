package service

import (
	"context"
	"couple_coach_backend/internal/insight"
	"couple_coach_backend/internal/model"
	"couple_coach_backend/internal/repository"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Dashboard is the home-screen payload. Every field tolerates missing data;
// a brand-new user gets zeroes and nils, not errors.
type Dashboard struct {
	Streak          int                    `json:"streak"`
	CheckedInToday  bool                   `json:"checkedInToday"`
	TodayQuestion   string                 `json:"todayQuestion"`
	HealthScore     *int                   `json:"healthScore,omitempty"`
	PatternReport   *insight.PatternReport `json:"patternReport,omitempty"`
	UpcomingDate    *model.DateEvent       `json:"upcomingDate,omitempty"`
	UnseenFlirts    int64                  `json:"unseenFlirts"`
	TimelineEntries int64                  `json:"timelineEntries"`
	PartnerLinked   bool                   `json:"partnerLinked"`
}

type DashboardService struct {
	CheckInService *CheckInService
	HealthService  *HealthScoreService
	CoupleRepo     *repository.CoupleRepository
	DateRepo       *repository.DateEventRepository
	FlirtRepo      *repository.FlirtRepository
	TimelineRepo   *repository.TimelineRepository
}

func NewDashboardService(
	checkInService *CheckInService,
	healthService *HealthScoreService,
	coupleRepo *repository.CoupleRepository,
	dateRepo *repository.DateEventRepository,
	flirtRepo *repository.FlirtRepository,
	timelineRepo *repository.TimelineRepository,
) *DashboardService {
	return &DashboardService{
		CheckInService: checkInService,
		HealthService:  healthService,
		CoupleRepo:     coupleRepo,
		DateRepo:       dateRepo,
		FlirtRepo:      flirtRepo,
		TimelineRepo:   timelineRepo,
	}
}

// GetDashboard assembles the home screen. The streak uses the forgiving
// yesterday anchor so a user who has not checked in yet today still sees
// their run alive.
func (s *DashboardService) GetDashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	dash := &Dashboard{
		TodayQuestion: s.CheckInService.TodayQuestion(ctx),
	}

	if streak, err := s.CheckInService.Streak(userID, insight.AnchorYesterday); err == nil {
		dash.Streak = streak
	}

	now := time.Now()
	if _, err := s.CheckInService.CheckInRepo.FindByUserAndDay(userID, now); err == nil {
		dash.CheckedInToday = true
	}

	if report, err := s.CheckInService.Report(userID, insight.DefaultPatternWindowDays); err == nil && report.SampleCount > 0 {
		dash.PatternReport = &report
	}

	couple, err := s.CoupleRepo.FindActiveByMember(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dash, nil
		}
		return nil, err
	}
	dash.PartnerLinked = true

	if score, err := s.HealthService.Latest(couple.ID); err == nil && score != nil {
		v := score.Score
		dash.HealthScore = &v
	}

	if upcoming, err := s.DateRepo.NextUpcoming(couple.ID, now); err == nil {
		dash.UpcomingDate = upcoming
	}

	if unseen, err := s.FlirtRepo.UnseenCount(userID); err == nil {
		dash.UnseenFlirts = unseen
	}

	if count, err := s.TimelineRepo.CountByCouple(couple.ID); err == nil {
		dash.TimelineEntries = count
	}

	return dash, nil
}
