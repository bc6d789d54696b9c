package repository

import (
	"couple_coach_backend/internal/model"

	"gorm.io/gorm"
)

type FlirtRepository struct {
	DB *gorm.DB
}

func NewFlirtRepository(db *gorm.DB) *FlirtRepository {
	return &FlirtRepository{DB: db}
}

func (r *FlirtRepository) Create(flirt *model.Flirt) error {
	return r.DB.Create(flirt).Error
}

func (r *FlirtRepository) Recent(coupleID uint, limit int) ([]model.Flirt, error) {
	var flirts []model.Flirt
	err := r.DB.Where("couple_id = ?", coupleID).
		Order("created_at DESC").Limit(limit).Find(&flirts).Error
	return flirts, err
}

func (r *FlirtRepository) MarkSeen(receiverID uint) error {
	return r.DB.Model(&model.Flirt{}).
		Where("receiver_id = ? AND seen = ?", receiverID, false).
		Update("seen", true).Error
}

func (r *FlirtRepository) UnseenCount(receiverID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Flirt{}).
		Where("receiver_id = ? AND seen = ?", receiverID, false).Count(&count).Error
	return count, err
}
