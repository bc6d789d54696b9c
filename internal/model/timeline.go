package model

import "time"

// TimelineEvent is a shared memory on the couple's timeline.
// swagger:model TimelineEvent
type TimelineEvent struct {
	BaseModel
	CoupleID    uint      `gorm:"index;type:bigint unsigned;not null" json:"coupleId"`
	CreatedByID uint      `gorm:"type:bigint unsigned;not null" json:"createdById"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	PhotoURL    string    `gorm:"size:512" json:"photoUrl"`
	OccurredAt  time.Time `gorm:"type:datetime;not null" json:"occurredAt"`
}

func (TimelineEvent) TableName() string {
	return "timeline_events"
}
