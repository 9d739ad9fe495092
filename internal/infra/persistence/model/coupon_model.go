package model

import (
	"time"

	"github.com/google/uuid"
)

// CouponModel mirrors the 'coupons' table. The unique index on UserID enforces
// one coupon per user; minting a new one replaces the previous row.
type CouponModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID             uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Code               string    `gorm:"type:varchar(64);not null;index"`
	DiscountPercentage int       `gorm:"not null"`
	IsActive           bool      `gorm:"not null;default:true"`
	ExpiresAt          time.Time `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}
