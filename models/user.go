package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Username      string         `gorm:"unique;not null" json:"username"`
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	Email         string         `gorm:"unique;not null" json:"email"`
	Password      *string        `json:"-"` // nil for social sign-in accounts
	Bio           string         `json:"bio"`
	Avatar        string         `json:"avatar"`
	GoogleID      *string        `gorm:"unique" json:"-"`
	Provider      string         `gorm:"default:email" json:"provider"`
	ProviderID    string         `json:"-"`
	Role          Role           `json:"role" gorm:"foreignKey:RoleID"`
	RoleID        uint           `json:"role_id"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
	Curations     []Curation     `json:"curations" gorm:"foreignKey:UserID"`
	AccountStatus string         `gorm:"default:active" json:"account_status"`
	EmailVerified bool           `json:"email_verified"`
}
