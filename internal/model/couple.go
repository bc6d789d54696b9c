package model

import "time"

type CoupleStatus string

const (
	CouplePending CoupleStatus = "pending"
	CoupleActive  CoupleStatus = "active"
	CoupleEnded   CoupleStatus = "ended"
)

// Couple links two members. MemberB is zero until the invite is accepted.
// swagger:model Couple
type Couple struct {
	BaseModel
	MemberAID   uint         `gorm:"index;type:bigint unsigned;not null" json:"memberAId"`
	MemberBID   uint         `gorm:"index;type:bigint unsigned" json:"memberBId"`
	InviteCode  string       `gorm:"size:36;uniqueIndex" json:"-"`
	Status      CoupleStatus `gorm:"type:enum('pending','active','ended');default:'pending'" json:"status"`
	Anniversary *time.Time   `gorm:"type:datetime" json:"anniversary"`
}

func (Couple) TableName() string {
	return "couples"
}

// PartnerOf returns the other member's id, or 0 when userID is not a member or
// the couple is not yet complete.
func (c *Couple) PartnerOf(userID uint) uint {
	switch userID {
	case c.MemberAID:
		return c.MemberBID
	case c.MemberBID:
		return c.MemberAID
	default:
		return 0
	}
}
