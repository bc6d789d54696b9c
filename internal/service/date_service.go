package service

import (
	"couple_coach_backend/internal/model"
	"couple_coach_backend/internal/repository"
	"couple_coach_backend/internal/util"
	"time"
)

type DateRequest struct {
	Title       string    `json:"title" binding:"required"`
	Location    string    `json:"location"`
	Notes       string    `json:"notes"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
}

type DateService struct {
	DateRepo   *repository.DateEventRepository
	CoupleRepo *repository.CoupleRepository
}

func NewDateService(dateRepo *repository.DateEventRepository, coupleRepo *repository.CoupleRepository) *DateService {
	return &DateService{
		DateRepo:   dateRepo,
		CoupleRepo: coupleRepo,
	}
}

func (s *DateService) activeCoupleID(userID uint) (uint, error) {
	couple, err := s.CoupleRepo.FindActiveByMember(userID)
	if err != nil {
		return 0, util.ErrNotLinked
	}
	return couple.ID, nil
}

func (s *DateService) PlanDate(userID uint, req DateRequest) (*model.DateEvent, error) {
	coupleID, err := s.activeCoupleID(userID)
	if err != nil {
		return nil, err
	}

	event := &model.DateEvent{
		CoupleID:    coupleID,
		CreatedByID: userID,
		Title:       req.Title,
		Location:    req.Location,
		Notes:       req.Notes,
		ScheduledAt: req.ScheduledAt,
		Status:      model.DatePlanned,
	}
	if err := s.DateRepo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *DateService) UpdateDate(userID uint, dateID uint, req DateRequest) (*model.DateEvent, error) {
	event, err := s.ownedDate(userID, dateID)
	if err != nil {
		return nil, err
	}

	event.Title = req.Title
	event.Location = req.Location
	event.Notes = req.Notes
	event.ScheduledAt = req.ScheduledAt

	if err := s.DateRepo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *DateService) SetStatus(userID uint, dateID uint, status model.DateEventStatus) (*model.DateEvent, error) {
	event, err := s.ownedDate(userID, dateID)
	if err != nil {
		return nil, err
	}

	event.Status = status
	if err := s.DateRepo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *DateService) ListDates(userID uint) ([]model.DateEvent, error) {
	coupleID, err := s.activeCoupleID(userID)
	if err != nil {
		return nil, err
	}
	return s.DateRepo.ListByCouple(coupleID)
}

// ownedDate loads a date and verifies it belongs to the caller's couple.
func (s *DateService) ownedDate(userID uint, dateID uint) (*model.DateEvent, error) {
	coupleID, err := s.activeCoupleID(userID)
	if err != nil {
		return nil, err
	}

	event, err := s.DateRepo.FindByID(dateID)
	if err != nil {
		return nil, err
	}
	if event.CoupleID != coupleID {
		return nil, util.ErrPermissionDenied
	}
	return event, nil
}
