package service

import (
	"couple_coach_backend/internal/insight"
	"couple_coach_backend/internal/model"
	"couple_coach_backend/internal/repository"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"
)

// Health score blend. Assessment strength dominates; recent connection quality
// adjusts it. A couple with only one component gets that component at full
// weight rather than a punished blend.
const (
	healthAssessmentWeight = 0.6
	healthConnectionWeight = 0.4
)

type HealthScoreService struct {
	CoupleRepo        *repository.CoupleRepository
	HealthRepo        *repository.HealthScoreRepository
	AssessmentService *AssessmentService
	CheckInService    *CheckInService
}

func NewHealthScoreService(coupleRepo *repository.CoupleRepository, healthRepo *repository.HealthScoreRepository, assessmentService *AssessmentService, checkInService *CheckInService) *HealthScoreService {
	return &HealthScoreService{
		CoupleRepo:        coupleRepo,
		HealthRepo:        healthRepo,
		AssessmentService: assessmentService,
		CheckInService:    checkInService,
	}
}

// Compute derives and stores a fresh score for the couple. It returns nil
// without error when neither member has any assessment or check-in data yet.
func (s *HealthScoreService) Compute(coupleID uint) (*model.HealthScore, error) {
	couple, err := s.CoupleRepo.FindByID(coupleID)
	if err != nil {
		return nil, err
	}

	members := []uint{couple.MemberAID}
	if couple.MemberBID != 0 {
		members = append(members, couple.MemberBID)
	}

	var assessmentPcts []float64
	var connectionAvgs []float64

	for _, memberID := range members {
		if scores, err := s.AssessmentService.ModuleScores(memberID); err == nil && len(scores) > 0 {
			sum := 0
			for _, sc := range scores {
				sum += sc.Percentage
			}
			assessmentPcts = append(assessmentPcts, float64(sum)/float64(len(scores)))
		}

		if samples, err := s.CheckInService.RecentSamples(memberID, insight.DefaultPatternWindowDays); err == nil && len(samples) > 0 {
			sum := 0
			for _, sample := range samples {
				sum += sample.ConnectionScore
			}
			connectionAvgs = append(connectionAvgs, float64(sum)/float64(len(samples)))
		}
	}

	var assessmentComponent, connectionComponent float64
	hasAssessment := len(assessmentPcts) > 0
	hasConnection := len(connectionAvgs) > 0

	if hasAssessment {
		assessmentComponent = mean(assessmentPcts)
	}
	if hasConnection {
		// Connection is on a 1-5 scale; rescale to 0-100.
		connectionComponent = (mean(connectionAvgs) - 1) / 4 * 100
	}

	var score float64
	switch {
	case hasAssessment && hasConnection:
		score = healthAssessmentWeight*assessmentComponent + healthConnectionWeight*connectionComponent
	case hasAssessment:
		score = assessmentComponent
	case hasConnection:
		score = connectionComponent
	default:
		return nil, nil
	}

	record := &model.HealthScore{
		CoupleID:   coupleID,
		Score:      int(math.Round(score)),
		ComputedAt: time.Now(),
	}
	if err := s.HealthRepo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

// Latest returns the most recent stored score, or nil when none exists.
func (s *HealthScoreService) Latest(coupleID uint) (*model.HealthScore, error) {
	score, err := s.HealthRepo.Latest(coupleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return score, nil
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
