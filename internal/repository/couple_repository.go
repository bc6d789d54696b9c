package repository

import (
	"couple_coach_backend/internal/model"

	"gorm.io/gorm"
)

type CoupleRepository struct {
	DB *gorm.DB
}

func NewCoupleRepository(db *gorm.DB) *CoupleRepository {
	return &CoupleRepository{DB: db}
}

func (r *CoupleRepository) Create(couple *model.Couple) error {
	return r.DB.Create(couple).Error
}

func (r *CoupleRepository) FindByID(id uint) (*model.Couple, error) {
	var couple model.Couple
	err := r.DB.First(&couple, id).Error
	if err != nil {
		return nil, err
	}
	return &couple, nil
}

func (r *CoupleRepository) FindByInviteCode(code string) (*model.Couple, error) {
	var couple model.Couple
	err := r.DB.Where("invite_code = ?", code).First(&couple).Error
	if err != nil {
		return nil, err
	}
	return &couple, nil
}

func (r *CoupleRepository) FindActiveByMember(userID uint) (*model.Couple, error) {
	var couple model.Couple
	err := r.DB.Where("(member_a_id = ? OR member_b_id = ?) AND status = ?",
		userID, userID, model.CoupleActive).First(&couple).Error
	if err != nil {
		return nil, err
	}
	return &couple, nil
}

func (r *CoupleRepository) Update(couple *model.Couple) error {
	return r.DB.Save(couple).Error
}
