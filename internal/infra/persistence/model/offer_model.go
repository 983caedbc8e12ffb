package model

import (
	"time"

	"github.com/google/uuid"
)

// OfferModel is the GORM-specific struct for the 'offers' table.
type OfferModel struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ShopID      uuid.UUID   `gorm:"type:uuid;not null;index"`
	Title       string      `gorm:"type:varchar(255);not null"`
	Description string      `gorm:"type:text"`
	Category    string      `gorm:"type:varchar(100)"`
	Tags        StringSlice `gorm:"type:jsonb"`
	ImageURL    string      `gorm:"type:varchar(512)"`
	Discount    float64     `gorm:"type:decimal(5,2);not null"`
	MinPurchase *float64    `gorm:"type:decimal(10,2)"`
	StartDate   time.Time   `gorm:"not null"`
	EndDate     time.Time   `gorm:"not null;index"`
	CreatedAt   time.Time   `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}
