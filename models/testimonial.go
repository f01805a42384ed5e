package models

import (
	"time"

	"gorm.io/gorm"
)

type Testimonial struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	ClientName  string         `json:"client_name" gorm:"not null"`
	ClientTitle string         `json:"client_title"`
	Quote       string         `json:"quote" gorm:"type:text;not null"`
	Rating      int            `json:"rating" gorm:"default:5"`
	Approved    bool           `json:"approved" gorm:"default:false"`
	SortOrder   int            `json:"sort_order" gorm:"default:0"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
