package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is a direct message between two users.
type Message struct {
	ID uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`

	// Seq orders the conversation by insertion, same as Post.Seq.
	Seq uint64 `json:"-" gorm:"autoIncrement;uniqueIndex"`

	SenderID   uuid.UUID `json:"sender" gorm:"type:char(36);not null;index"`
	ReceiverID uuid.UUID `json:"receiver" gorm:"type:char(36);not null;index"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"timestamp"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
