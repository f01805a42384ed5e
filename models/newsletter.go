package models

import (
	"time"

	"gorm.io/gorm"
)

type NewsletterSubscriber struct {
	ID               uint           `json:"id" gorm:"primarykey"`
	Email            string         `json:"email" gorm:"uniqueIndex;not null"`
	UnsubscribeToken string         `json:"-" gorm:"uniqueIndex;not null"`
	UnsubscribedAt   *time.Time     `json:"unsubscribed_at"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}
