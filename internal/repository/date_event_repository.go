package repository

import (
	"couple_coach_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type DateEventRepository struct {
	DB *gorm.DB
}

func NewDateEventRepository(db *gorm.DB) *DateEventRepository {
	return &DateEventRepository{DB: db}
}

func (r *DateEventRepository) Create(event *model.DateEvent) error {
	return r.DB.Create(event).Error
}

func (r *DateEventRepository) FindByID(id uint) (*model.DateEvent, error) {
	var event model.DateEvent
	err := r.DB.First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *DateEventRepository) Update(event *model.DateEvent) error {
	return r.DB.Save(event).Error
}

// NextUpcoming returns the couple's next planned date from now on.
func (r *DateEventRepository) NextUpcoming(coupleID uint, now time.Time) (*model.DateEvent, error) {
	var event model.DateEvent
	err := r.DB.Where("couple_id = ? AND status = ? AND scheduled_at >= ?",
		coupleID, model.DatePlanned, now).Order("scheduled_at ASC").First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Recent returns past dates, newest first.
func (r *DateEventRepository) Recent(coupleID uint, now time.Time, limit int) ([]model.DateEvent, error) {
	var events []model.DateEvent
	err := r.DB.Where("couple_id = ? AND scheduled_at < ? AND status <> ?",
		coupleID, now, model.DateCancelled).
		Order("scheduled_at DESC").Limit(limit).Find(&events).Error
	return events, err
}

func (r *DateEventRepository) ListByCouple(coupleID uint) ([]model.DateEvent, error) {
	var events []model.DateEvent
	err := r.DB.Where("couple_id = ?", coupleID).Order("scheduled_at DESC").Find(&events).Error
	return events, err
}
