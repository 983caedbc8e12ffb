package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(50)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	ShopID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
