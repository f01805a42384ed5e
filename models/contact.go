package models

import (
	"time"

	"gorm.io/gorm"
)

type ContactKind string

const (
	KindContact     ContactKind = "contact"
	KindAppointment ContactKind = "appointment"
)

// ContactMessage stores both plain contact-form messages and appointment
// requests; Kind tells them apart and PreferredDate is only set for the latter.
type ContactMessage struct {
	ID            uint           `json:"id" gorm:"primarykey"`
	Kind          ContactKind    `json:"kind" gorm:"default:'contact'"`
	Name          string         `json:"name" gorm:"not null"`
	Email         string         `json:"email" gorm:"not null"`
	Phone         string         `json:"phone"`
	Subject       string         `json:"subject"`
	Message       string         `json:"message" gorm:"type:text;not null"`
	PreferredDate *time.Time     `json:"preferred_date"`
	NotifiedAt    *time.Time     `json:"notified_at"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}
