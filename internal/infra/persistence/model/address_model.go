package model

import (
	"time"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID          string    `gorm:"type:varchar(64);primaryKey"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	Latitude    float64   `gorm:"type:double precision;not null"`
	Longitude   float64   `gorm:"type:double precision;not null"`
	ImageURL    string    `gorm:"type:text;not null;default:''"`
	IsPublic    bool      `gorm:"not null;default:false;index:idx_addresses_owner_visibility,priority:2"`
	UserEmail   string    `gorm:"column:user_email;type:varchar(320);not null;index:idx_addresses_owner_visibility,priority:1"`
	CreatedAt   time.Time
	Comments    []CommentModel `gorm:"foreignKey:AddressID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}

// CommentModel is the GORM-specific struct for the 'address_comments' table.
type CommentModel struct {
	ID        string    `gorm:"type:varchar(64);primaryKey"`
	AddressID string    `gorm:"type:varchar(64);not null;index"`
	Text      string    `gorm:"type:text;not null"`
	Rating    int       `gorm:"not null;default:0;check:rating >= 0 AND rating <= 5"`
	ImageURL  string    `gorm:"type:text;not null;default:''"`
	UserEmail string    `gorm:"column:user_email;type:varchar(320);not null"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "address_comments"
}

// ProfileModel is the GORM-specific struct for the 'profiles' table, keyed by lower-cased email.
type ProfileModel struct {
	Email     string `gorm:"type:varchar(320);primaryKey"`
	AvatarURL string `gorm:"type:text;not null;default:''"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// All lists every model for schema migration.
func All() []any {
	return []any{&AddressModel{}, &CommentModel{}, &ProfileModel{}}
}
