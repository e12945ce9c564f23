package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a feed entry authored by an alumnus. The author fields are a
// snapshot taken at posting time and do not track later profile edits.
type Post struct {
	ID uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`

	// Seq orders the feed by insertion. CreatedAt alone cannot break ties
	// between rows written in the same millisecond.
	Seq uint64 `json:"-" gorm:"autoIncrement;uniqueIndex"`

	AuthorID         uuid.UUID `json:"author_id" gorm:"type:char(36);not null;index"`
	AuthorName       string    `json:"author_name" gorm:"size:255;not null"`
	AuthorRole       Role      `json:"author_role" gorm:"type:varchar(20);not null"`
	AuthorBatch      int       `json:"author_batch"`
	AuthorBranch     string    `json:"author_branch" gorm:"size:255"`
	AuthorProfilePic string    `json:"author_profile_pic" gorm:"size:512"`
	Content          string    `json:"content" gorm:"type:text;not null"`
	CreatedAt        time.Time `json:"created_at" gorm:"index"`
	UpdatedAt        time.Time `json:"-"`

	// Likes and comments exist only as part of their post and are
	// removed with it.
	Likes    []Like    `json:"likes" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"comments" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Like records that a user liked a post. The composite unique index keeps
// a user from liking the same post twice.
type Like struct {
	ID         uint      `json:"-" gorm:"primaryKey"`
	PostID     uuid.UUID `json:"-" gorm:"type:char(36);not null;uniqueIndex:idx_like_post_user"`
	UserID     uuid.UUID `json:"user" gorm:"type:char(36);not null;uniqueIndex:idx_like_post_user"`
	Name       string    `json:"name" gorm:"size:255"`
	Role       Role      `json:"role" gorm:"type:varchar(20)"`
	ProfilePic string    `json:"profile_pic" gorm:"size:512"`
	CreatedAt  time.Time `json:"created_at"`
}

// Comment is a remark on a post, with the commenter's profile snapshot
// embedded at write time.
type Comment struct {
	ID uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`

	// Seq orders comments by insertion, same as Post.Seq.
	Seq uint64 `json:"-" gorm:"autoIncrement;uniqueIndex"`

	PostID     uuid.UUID `json:"-" gorm:"type:char(36);not null;index"`
	UserID     uuid.UUID `json:"user" gorm:"type:char(36);not null"`
	Name       string    `json:"name" gorm:"size:255"`
	Role       Role      `json:"role" gorm:"type:varchar(20)"`
	ProfilePic string    `json:"profile_pic" gorm:"size:512"`
	Text       string    `json:"text" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"date"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
