package model

import "time"

// CheckIn is one user's daily mood/connection log. Day holds calendar-day
// granularity only; the unique index enforces at most one record per user per
// day.
// swagger:model CheckIn
type CheckIn struct {
	BaseModel
	UserID          uint      `gorm:"index:idx_user_day,unique;type:bigint unsigned;not null" json:"userId"`
	CoupleID        *uint     `gorm:"index;type:bigint unsigned" json:"coupleId"`
	Day             time.Time `gorm:"type:date;not null;index:idx_user_day,unique" json:"day"`
	Mood            string    `gorm:"size:20;not null" json:"mood"`
	ConnectionScore int       `gorm:"not null" json:"connectionScore"`
	Question        string    `gorm:"size:255" json:"question"`
	Answer          string    `gorm:"type:text" json:"answer"`
}

func (CheckIn) TableName() string {
	return "checkins"
}
