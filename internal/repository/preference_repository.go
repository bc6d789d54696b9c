package repository

import (
	"couple_coach_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceRepository struct {
	DB *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{DB: db}
}

func (r *PreferenceRepository) FindByUserID(userID uint) (*model.UserPreference, error) {
	var pref model.UserPreference
	err := r.DB.Where("user_id = ?", userID).First(&pref).Error
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// Upsert writes the user's single preference row, creating it on first save.
func (r *PreferenceRepository) Upsert(pref *model.UserPreference) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"profile_name", "love_language", "hobbies", "stress_response", "values", "reminder_hour",
		}),
	}).Create(pref).Error
}
