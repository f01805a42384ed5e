package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
	StatusArchived  PostStatus = "archived"
)

// ValidStatus reports whether s is one of the three publication states.
func ValidStatus(s PostStatus) bool {
	return s == StatusDraft || s == StatusPublished || s == StatusArchived
}

// NormalizeStatus lowercases a client-supplied status so "PUBLISHED" and
// "published" both match the stored representation.
func NormalizeStatus(s PostStatus) PostStatus {
	return PostStatus(strings.ToLower(string(s)))
}

type Post struct {
	ID              uint           `json:"id" gorm:"primarykey"`
	AuthorID        uint           `json:"author_id" gorm:"not null"`
	Author          User           `json:"author" gorm:"foreignKey:AuthorID"`
	Title           string         `json:"title" gorm:"not null"`
	Slug            string         `json:"slug" gorm:"uniqueIndex;not null"`
	Excerpt         string         `json:"excerpt"`
	Content         string         `json:"content" gorm:"type:text"`
	CoverImage      string         `json:"cover_image"`
	Status          PostStatus     `json:"status" gorm:"default:'draft'"`
	Featured        bool           `json:"featured" gorm:"default:false"`
	MetaTitle       string         `json:"meta_title"`
	MetaDescription string         `json:"meta_description"`
	FocusKeyword    string         `json:"focus_keyword"`
	OGImage         string         `json:"og_image"`
	Tags            []Tag          `json:"tags" gorm:"many2many:post_tags;"`
	PublishedAt     *time.Time     `json:"published_at"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}
