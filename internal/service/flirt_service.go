package service

import (
	"couple_coach_backend/internal/model"
	"couple_coach_backend/internal/repository"
	"couple_coach_backend/internal/util"
)

type FlirtRequest struct {
	Message string `json:"message" binding:"required"`
	GifURL  string `json:"gifUrl"`
}

type FlirtService struct {
	FlirtRepo  *repository.FlirtRepository
	CoupleRepo *repository.CoupleRepository
}

func NewFlirtService(flirtRepo *repository.FlirtRepository, coupleRepo *repository.CoupleRepository) *FlirtService {
	return &FlirtService{
		FlirtRepo:  flirtRepo,
		CoupleRepo: coupleRepo,
	}
}

func (s *FlirtService) SendFlirt(userID uint, req FlirtRequest) (*model.Flirt, error) {
	couple, err := s.CoupleRepo.FindActiveByMember(userID)
	if err != nil {
		return nil, util.ErrNotLinked
	}

	receiverID := couple.PartnerOf(userID)
	if receiverID == 0 {
		return nil, util.ErrNotLinked
	}

	flirt := &model.Flirt{
		CoupleID:   couple.ID,
		SenderID:   userID,
		ReceiverID: receiverID,
		Message:    req.Message,
		GifURL:     req.GifURL,
	}
	if err := s.FlirtRepo.Create(flirt); err != nil {
		return nil, err
	}
	return flirt, nil
}

// RecentFlirts returns the couple's latest flirts and marks the caller's
// inbox as seen.
func (s *FlirtService) RecentFlirts(userID uint, limit int) ([]model.Flirt, error) {
	couple, err := s.CoupleRepo.FindActiveByMember(userID)
	if err != nil {
		return nil, util.ErrNotLinked
	}

	if limit <= 0 || limit > 50 {
		limit = 20
	}

	flirts, err := s.FlirtRepo.Recent(couple.ID, limit)
	if err != nil {
		return nil, err
	}

	s.FlirtRepo.MarkSeen(userID)

	return flirts, nil
}

func (s *FlirtService) UnseenCount(userID uint) (int64, error) {
	return s.FlirtRepo.UnseenCount(userID)
}
