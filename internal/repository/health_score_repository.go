package repository

import (
	"couple_coach_backend/internal/model"

	"gorm.io/gorm"
)

type HealthScoreRepository struct {
	DB *gorm.DB
}

func NewHealthScoreRepository(db *gorm.DB) *HealthScoreRepository {
	return &HealthScoreRepository{DB: db}
}

func (r *HealthScoreRepository) Create(score *model.HealthScore) error {
	return r.DB.Create(score).Error
}

func (r *HealthScoreRepository) Latest(coupleID uint) (*model.HealthScore, error) {
	var score model.HealthScore
	err := r.DB.Where("couple_id = ?", coupleID).Order("computed_at DESC").First(&score).Error
	if err != nil {
		return nil, err
	}
	return &score, nil
}
