package repository

import (
	"couple_coach_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

// Upsert replaces the user's attempt for a module; retakes overwrite.
func (r *AssessmentRepository) Upsert(attempt *model.AssessmentAttempt) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "module_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"answers", "percentage", "tier"}),
	}).Create(attempt).Error
}

func (r *AssessmentRepository) FindByUserAndModule(userID uint, moduleID string) (*model.AssessmentAttempt, error) {
	var attempt model.AssessmentAttempt
	err := r.DB.Where("user_id = ? AND module_id = ?", userID, moduleID).First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *AssessmentRepository) ListByUser(userID uint) ([]model.AssessmentAttempt, error) {
	var attempts []model.AssessmentAttempt
	err := r.DB.Where("user_id = ?", userID).Find(&attempts).Error
	return attempts, err
}
