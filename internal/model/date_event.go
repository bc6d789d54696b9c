package model

import "time"

type DateEventStatus string

const (
	DatePlanned   DateEventStatus = "planned"
	DateCompleted DateEventStatus = "completed"
	DateCancelled DateEventStatus = "cancelled"
)

// swagger:model DateEvent
type DateEvent struct {
	BaseModel
	CoupleID    uint            `gorm:"index;type:bigint unsigned;not null" json:"coupleId"`
	CreatedByID uint            `gorm:"type:bigint unsigned;not null" json:"createdById"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Location    string          `gorm:"size:255" json:"location"`
	Notes       string          `gorm:"type:text" json:"notes"`
	ScheduledAt time.Time       `gorm:"type:datetime;not null" json:"scheduledAt"`
	Status      DateEventStatus `gorm:"type:enum('planned','completed','cancelled');default:'planned'" json:"status"`
}

func (DateEvent) TableName() string {
	return "date_events"
}
