package model

import (
	"time"

	"github.com/google/uuid"
)

// ShopSettingsModel is the GORM-specific struct for the 'shop_settings' table.
// One row per shop; each preference section is a jsonb column written whole.
type ShopSettingsModel struct {
	ShopID        uuid.UUID    `gorm:"type:uuid;primary_key"`
	Channels      ChannelsJSON `gorm:"type:jsonb"`
	Notifications TogglesJSON  `gorm:"type:jsonb"`
	Chat          ChatJSON     `gorm:"type:jsonb"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopSettingsModel) TableName() string {
	return "shop_settings"
}
