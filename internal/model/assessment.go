package model

import "encoding/json"

// AssessmentAttempt stores one user's raw answers for one question module. The
// Answers document is the source of truth; Percentage and Tier are cached for
// list views and recomputed whenever the module schema changes.
// swagger:model AssessmentAttempt
type AssessmentAttempt struct {
	BaseModel
	UserID     uint            `gorm:"index:idx_user_module,unique;type:bigint unsigned;not null" json:"userId"`
	ModuleID   string          `gorm:"size:50;not null;index:idx_user_module,unique" json:"moduleId"`
	Answers    json.RawMessage `gorm:"type:json;not null" json:"answers"`
	Percentage int             `gorm:"default:0" json:"percentage"`
	Tier       string          `gorm:"size:20" json:"strengthTier"`
}

func (AssessmentAttempt) TableName() string {
	return "assessment_attempts"
}
