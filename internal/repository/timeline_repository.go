package repository

import (
	"couple_coach_backend/internal/model"

	"gorm.io/gorm"
)

type TimelineRepository struct {
	DB *gorm.DB
}

func NewTimelineRepository(db *gorm.DB) *TimelineRepository {
	return &TimelineRepository{DB: db}
}

func (r *TimelineRepository) Create(event *model.TimelineEvent) error {
	return r.DB.Create(event).Error
}

func (r *TimelineRepository) FindByID(id uint) (*model.TimelineEvent, error) {
	var event model.TimelineEvent
	err := r.DB.First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *TimelineRepository) ListByCouple(coupleID uint, page, limit int) ([]model.TimelineEvent, int64, error) {
	var events []model.TimelineEvent
	var total int64

	query := r.DB.Model(&model.TimelineEvent{}).Where("couple_id = ?", coupleID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("occurred_at DESC").
		Offset((page - 1) * limit).Limit(limit).Find(&events).Error
	return events, total, err
}

func (r *TimelineRepository) CountByCouple(coupleID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.TimelineEvent{}).Where("couple_id = ?", coupleID).Count(&count).Error
	return count, err
}

func (r *TimelineRepository) Delete(id uint) error {
	return r.DB.Delete(&model.TimelineEvent{}, id).Error
}
