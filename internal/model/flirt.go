package model

// Flirt is a short playful message between partners. GifURL is supplied by the
// client; this service only stores the reference.
// swagger:model Flirt
type Flirt struct {
	BaseModel
	CoupleID   uint   `gorm:"index;type:bigint unsigned;not null" json:"coupleId"`
	SenderID   uint   `gorm:"index;type:bigint unsigned;not null" json:"senderId"`
	ReceiverID uint   `gorm:"index;type:bigint unsigned;not null" json:"receiverId"`
	Message    string `gorm:"size:500;not null" json:"message"`
	GifURL     string `gorm:"size:512" json:"gifUrl"`
	Seen       bool   `gorm:"default:false" json:"seen"`
}

func (Flirt) TableName() string {
	return "flirts"
}
