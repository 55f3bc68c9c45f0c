package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a feed entry. Name and Avatar are snapshots of the author taken at
// creation time so historical display stays stable if the user changes them.
type Post struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user" gorm:"type:char(36);not null;index"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Name      string    `json:"name" gorm:"size:255"`
	Avatar    string    `json:"avatar" gorm:"size:512"`
	CreatedAt time.Time `json:"date"`
	UpdatedAt time.Time `json:"-"`

	// Relations, newest-first
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

// Like marks a post as liked by a user. A user may like a post at most once.
type Like struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	PostID    uuid.UUID `json:"-" gorm:"type:char(36);not null;uniqueIndex:idx_likes_post_user"`
	UserID    uuid.UUID `json:"user" gorm:"type:char(36);not null;uniqueIndex:idx_likes_post_user"`
	CreatedAt time.Time `json:"-"`
}

// BeforeCreate sets UUID before creating the record.
func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// Comment is a reply on a post, with the commenter's name and avatar
// snapshotted the same way as on posts.
type Comment struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	PostID    uuid.UUID `json:"-" gorm:"type:char(36);not null;index"`
	UserID    uuid.UUID `json:"user" gorm:"type:char(36);not null"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Name      string    `json:"name" gorm:"size:255"`
	Avatar    string    `json:"avatar" gorm:"size:512"`
	CreatedAt time.Time `json:"date"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
