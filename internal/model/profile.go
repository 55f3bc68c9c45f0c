package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SocialLinks holds the optional social platform URLs on a profile.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty" gorm:"size:512"`
	Twitter   string `json:"twitter,omitempty" gorm:"size:512"`
	Facebook  string `json:"facebook,omitempty" gorm:"size:512"`
	Linkedin  string `json:"linkedin,omitempty" gorm:"size:512"`
	Instagram string `json:"instagram,omitempty" gorm:"size:512"`
}

// Profile is the one-to-one developer profile attached to a user.
// Experience and education entries are kept newest-first.
type Profile struct {
	ID             uuid.UUID   `json:"id" gorm:"type:char(36);primaryKey"`
	UserID         uuid.UUID   `json:"user" gorm:"type:char(36);uniqueIndex;not null"`
	Handle         string      `json:"handle,omitempty" gorm:"size:64;index"`
	Company        string      `json:"company,omitempty" gorm:"size:255"`
	Website        string      `json:"website,omitempty" gorm:"size:512"`
	Location       string      `json:"location,omitempty" gorm:"size:255"`
	Bio            string      `json:"bio,omitempty" gorm:"type:text"`
	Status         string      `json:"status" gorm:"size:255;not null"`
	GithubUsername string      `json:"githubusername,omitempty" gorm:"size:255"`
	Skills         []string    `json:"skills" gorm:"serializer:json;type:text"`
	Social         SocialLinks `json:"social" gorm:"embedded;embeddedPrefix:social_"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`

	// Relations
	Experience []Experience `json:"experience" gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	Education  []Education  `json:"education" gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Experience is a work history entry on a profile.
type Experience struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	ProfileID   uuid.UUID `json:"-" gorm:"type:char(36);not null;index"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Company     string    `json:"company" gorm:"size:255;not null"`
	Location    string    `json:"location,omitempty" gorm:"size:255"`
	From        string    `json:"from" gorm:"size:32;not null"`
	To          string    `json:"to,omitempty" gorm:"size:32"`
	Current     bool      `json:"current" gorm:"default:false"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"-"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Education is a schooling entry on a profile.
type Education struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	ProfileID    uuid.UUID `json:"-" gorm:"type:char(36);not null;index"`
	School       string    `json:"school" gorm:"size:255;not null"`
	Degree       string    `json:"degree" gorm:"size:255;not null"`
	FieldOfStudy string    `json:"fieldofstudy" gorm:"size:255;not null"`
	From         string    `json:"from" gorm:"size:32;not null"`
	To           string    `json:"to,omitempty" gorm:"size:32"`
	Current      bool      `json:"current" gorm:"default:false"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"-"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Education) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
