package model

import (
	"time"

	"github.com/google/uuid"
)

// ShopModel is the GORM-specific struct for the 'shops' table.
// Structured profile sections (location, social links, business hours) live
// in jsonb columns since they are always read and written as a whole; the
// location column holds a GeoJSON Point.
type ShopModel struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID       uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex"`
	Name          string            `gorm:"type:varchar(255);not null"`
	Description   string            `gorm:"type:text"`
	Category      string            `gorm:"type:varchar(100)"`
	Email         string            `gorm:"type:varchar(255)"`
	Phone         string            `gorm:"type:varchar(50)"`
	Website       string            `gorm:"type:varchar(255)"`
	Address       string            `gorm:"type:text"`
	Location      GeoPointJSON      `gorm:"type:jsonb"`
	SocialLinks   SocialLinksJSON   `gorm:"type:jsonb"`
	BusinessHours BusinessHoursJSON `gorm:"type:jsonb"`
	LogoURL       string            `gorm:"type:varchar(512)"`
	CoverImageURL string            `gorm:"type:varchar(512)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}
