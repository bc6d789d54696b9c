package model

import "time"

// swagger:model HealthScore
type HealthScore struct {
	BaseModel
	CoupleID   uint      `gorm:"index;type:bigint unsigned;not null" json:"coupleId"`
	Score      int       `gorm:"not null" json:"score"`
	ComputedAt time.Time `gorm:"not null" json:"computedAt"`
}

func (HealthScore) TableName() string {
	return "health_scores"
}
