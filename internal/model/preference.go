package model

// UserPreference holds profile fields the user fills in themselves. ProfileName
// is a display-name override attempted after the account name; LoveLanguage is
// the legacy single-value field kept for users who never retook the ranking
// assessment.
// swagger:model UserPreference
type UserPreference struct {
	BaseModel
	UserID         uint   `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"userId"`
	ProfileName    string `gorm:"size:100" json:"profileName"`
	LoveLanguage   string `gorm:"size:50" json:"loveLanguage"`
	Hobbies        string `gorm:"size:255" json:"hobbies"`
	StressResponse string `gorm:"size:255" json:"stressResponse"`
	Values         string `gorm:"size:255" json:"values"`
	ReminderHour   int    `gorm:"default:20" json:"reminderHour"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}
