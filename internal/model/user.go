package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered portal member, either a student or an alumnus.
type User struct {
	ID              uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name            string    `json:"name" gorm:"size:255;not null"`
	Email           string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash    string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role            Role      `json:"role" gorm:"type:varchar(20);not null;index"`
	BatchYear       int       `json:"batch_year" gorm:"not null;index"`
	Branch          string    `json:"branch" gorm:"size:255;not null;index"`
	ProfilePicture  string    `json:"profile_picture" gorm:"size:512"`
	LinkedinURL     string    `json:"linkedin_url" gorm:"size:512"`
	CurrentPosition string    `json:"current_position" gorm:"size:255"`
	Location        string    `json:"location" gorm:"size:255"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
