package service

import (
	"context"
	"couple_coach_backend/internal/model"
	"couple_coach_backend/internal/repository"
	"couple_coach_backend/internal/util"
	"fmt"
	"io"
	"path/filepath"
	"time"
)

type TimelineRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurredAt" binding:"required"`
}

type TimelineService struct {
	TimelineRepo *repository.TimelineRepository
	CoupleRepo   *repository.CoupleRepository
	Storage      *StorageService
}

func NewTimelineService(timelineRepo *repository.TimelineRepository, coupleRepo *repository.CoupleRepository, storage *StorageService) *TimelineService {
	return &TimelineService{
		TimelineRepo: timelineRepo,
		CoupleRepo:   coupleRepo,
		Storage:      storage,
	}
}

func (s *TimelineService) AddEvent(userID uint, req TimelineRequest) (*model.TimelineEvent, error) {
	couple, err := s.CoupleRepo.FindActiveByMember(userID)
	if err != nil {
		return nil, util.ErrNotLinked
	}

	event := &model.TimelineEvent{
		CoupleID:    couple.ID,
		CreatedByID: userID,
		Title:       req.Title,
		Description: req.Description,
		OccurredAt:  req.OccurredAt,
	}
	if err := s.TimelineRepo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

// AttachPhoto uploads the photo through the storage provider and links it to
// the event.
func (s *TimelineService) AttachPhoto(ctx context.Context, userID uint, eventID uint, filename string, reader io.Reader, size int64, contentType string) (*model.TimelineEvent, error) {
	event, err := s.ownedEvent(userID, eventID)
	if err != nil {
		return nil, err
	}

	ext := filepath.Ext(filename)
	objectName := fmt.Sprintf("timeline/%d_%d%s", event.CoupleID, time.Now().UnixNano(), ext)

	url, err := s.Storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	event.PhotoURL = url
	if err := s.TimelineRepo.DB.Save(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func (s *TimelineService) ListEvents(userID uint, page, limit int) ([]model.TimelineEvent, int64, error) {
	couple, err := s.CoupleRepo.FindActiveByMember(userID)
	if err != nil {
		return nil, 0, util.ErrNotLinked
	}

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	return s.TimelineRepo.ListByCouple(couple.ID, page, limit)
}

func (s *TimelineService) DeleteEvent(userID uint, eventID uint) error {
	event, err := s.ownedEvent(userID, eventID)
	if err != nil {
		return err
	}
	return s.TimelineRepo.Delete(event.ID)
}

func (s *TimelineService) ownedEvent(userID uint, eventID uint) (*model.TimelineEvent, error) {
	couple, err := s.CoupleRepo.FindActiveByMember(userID)
	if err != nil {
		return nil, util.ErrNotLinked
	}

	event, err := s.TimelineRepo.FindByID(eventID)
	if err != nil {
		return nil, err
	}
	if event.CoupleID != couple.ID {
		return nil, util.ErrPermissionDenied
	}
	return event, nil
}
