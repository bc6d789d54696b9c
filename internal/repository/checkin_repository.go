package repository

import (
	"couple_coach_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type CheckInRepository struct {
	DB *gorm.DB
}

func NewCheckInRepository(db *gorm.DB) *CheckInRepository {
	return &CheckInRepository{DB: db}
}

func (r *CheckInRepository) Create(checkin *model.CheckIn) error {
	return r.DB.Create(checkin).Error
}

func (r *CheckInRepository) FindByUserAndDay(userID uint, day time.Time) (*model.CheckIn, error) {
	var checkin model.CheckIn
	dayOnly := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	err := r.DB.Where("user_id = ? AND day = ?", userID, dayOnly).First(&checkin).Error
	if err != nil {
		return nil, err
	}
	return &checkin, nil
}

// FindSince returns the user's check-ins from a cutoff day onward, oldest
// first.
func (r *CheckInRepository) FindSince(userID uint, since time.Time) ([]model.CheckIn, error) {
	var checkins []model.CheckIn
	err := r.DB.Where("user_id = ? AND day >= ?", userID, since).
		Order("day ASC").Find(&checkins).Error
	return checkins, err
}

// RecentDays returns the user's check-in days, newest first, for streak math.
func (r *CheckInRepository) RecentDays(userID uint, limit int) ([]time.Time, error) {
	var days []time.Time
	err := r.DB.Model(&model.CheckIn{}).Where("user_id = ?", userID).
		Order("day DESC").Limit(limit).Pluck("day", &days).Error
	return days, err
}

func (r *CheckInRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.CheckIn{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
