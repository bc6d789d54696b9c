package service

import (
	"couple_coach_backend/internal/model"
	"couple_coach_backend/internal/repository"
	"couple_coach_backend/internal/util"
	"errors"
	"time"

	"gorm.io/gorm"
)

// CoupleView is the couple record plus the resolved partner, shaped for the
// client.
type CoupleView struct {
	CoupleID    uint         `json:"coupleId"`
	Status      string       `json:"status"`
	Anniversary *time.Time   `json:"anniversary"`
	Partner     *PartnerView `json:"partner"`
}

type PartnerView struct {
	UserID   uint      `json:"userId"`
	Name     string    `json:"name"`
	Avatar   string    `json:"avatar"`
	LastSeen time.Time `json:"lastSeen"`
}

type CoupleService struct {
	CoupleRepo *repository.CoupleRepository
	UserRepo   *repository.UserRepository
}

func NewCoupleService(coupleRepo *repository.CoupleRepository, userRepo *repository.UserRepository) *CoupleService {
	return &CoupleService{
		CoupleRepo: coupleRepo,
		UserRepo:   userRepo,
	}
}

// CreateInvite opens a pending couple owned by the inviter and returns the
// invite code the partner redeems.
func (s *CoupleService) CreateInvite(userID uint) (string, error) {
	if _, err := s.CoupleRepo.FindActiveByMember(userID); err == nil {
		return "", util.ErrAlreadyLinked
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	couple := &model.Couple{
		MemberAID:  userID,
		InviteCode: model.GenerateUUID(),
		Status:     model.CouplePending,
	}
	if err := s.CoupleRepo.Create(couple); err != nil {
		return "", err
	}
	return couple.InviteCode, nil
}

// AcceptInvite completes the link: the couple goes active and both members get
// their couple_id set.
func (s *CoupleService) AcceptInvite(userID uint, code string) (*model.Couple, error) {
	if _, err := s.CoupleRepo.FindActiveByMember(userID); err == nil {
		return nil, util.ErrAlreadyLinked
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	couple, err := s.CoupleRepo.FindByInviteCode(code)
	if err != nil {
		return nil, util.ErrInviteNotFound
	}
	if couple.Status != model.CouplePending {
		return nil, util.ErrInviteNotFound
	}
	if couple.MemberAID == userID {
		return nil, util.ErrSelfInvite
	}

	couple.MemberBID = userID
	couple.Status = model.CoupleActive
	if err := s.CoupleRepo.Update(couple); err != nil {
		return nil, err
	}

	if err := s.UserRepo.SetCouple(couple.MemberAID, &couple.ID); err != nil {
		return nil, err
	}
	if err := s.UserRepo.SetCouple(couple.MemberBID, &couple.ID); err != nil {
		return nil, err
	}

	return couple, nil
}

// ActiveCouple returns the user's active link or ErrNotLinked.
func (s *CoupleService) ActiveCouple(userID uint) (*model.Couple, error) {
	couple, err := s.CoupleRepo.FindActiveByMember(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotLinked
		}
		return nil, err
	}
	return couple, nil
}

func (s *CoupleService) GetCoupleView(userID uint) (*CoupleView, error) {
	couple, err := s.ActiveCouple(userID)
	if err != nil {
		return nil, err
	}

	view := &CoupleView{
		CoupleID:    couple.ID,
		Status:      string(couple.Status),
		Anniversary: couple.Anniversary,
	}

	partnerID := couple.PartnerOf(userID)
	if partnerID != 0 {
		if partner, err := s.UserRepo.FindByID(partnerID); err == nil {
			view.Partner = &PartnerView{
				UserID:   partner.ID,
				Name:     partner.Name,
				Avatar:   partner.Avatar,
				LastSeen: partner.LastSeen,
			}
		}
	}

	return view, nil
}

func (s *CoupleService) SetAnniversary(userID uint, anniversary time.Time) (*model.Couple, error) {
	couple, err := s.ActiveCouple(userID)
	if err != nil {
		return nil, err
	}

	couple.Anniversary = &anniversary
	if err := s.CoupleRepo.Update(couple); err != nil {
		return nil, err
	}
	return couple, nil
}

// Unlink ends the couple. Records stay for history; both members are detached.
func (s *CoupleService) Unlink(userID uint) error {
	couple, err := s.ActiveCouple(userID)
	if err != nil {
		return err
	}

	couple.Status = model.CoupleEnded
	if err := s.CoupleRepo.Update(couple); err != nil {
		return err
	}

	if err := s.UserRepo.SetCouple(couple.MemberAID, nil); err != nil {
		return err
	}
	if couple.MemberBID != 0 {
		if err := s.UserRepo.SetCouple(couple.MemberBID, nil); err != nil {
			return err
		}
	}
	return nil
}
