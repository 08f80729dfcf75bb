package model

import "time"

// Event is a community event. Date and Time are kept as the submitted
// strings (YYYY-MM-DD / HH:MM) so listings sort lexicographically.
type Event struct {
	ID                   uint      `json:"id" gorm:"primaryKey"`
	Title                string    `json:"title" gorm:"size:255;not null"`
	Description          string    `json:"description" gorm:"type:text;not null"`
	EventType            string    `json:"event_type" gorm:"size:50;not null"`
	Date                 string    `json:"date" gorm:"size:10;not null;index"`
	Time                 string    `json:"time" gorm:"size:10;not null"`
	Location             string    `json:"location" gorm:"size:255;not null"`
	ContactInfo          string    `json:"contact_info,omitempty" gorm:"size:255"`
	RegistrationRequired bool      `json:"registration_required" gorm:"default:false"`
	MaxParticipants      int       `json:"max_participants,omitempty"`
	CurrentParticipants  int       `json:"current_participants" gorm:"default:0;not null"`
	CreatedBy            string    `json:"created_by" gorm:"size:255;not null"`
	Active               bool      `json:"is_active" gorm:"column:is_active;default:true;index"`
	CreatedAt            time.Time `json:"created_at"`

	Registrations []EventRegistration `json:"-" gorm:"foreignKey:EventID"`
}

// EventRegistration is one attendee signup. An email registers for a given
// event at most once.
type EventRegistration struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	EventID      uint      `json:"event_id" gorm:"not null;uniqueIndex:idx_event_attendee"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"size:255;not null;uniqueIndex:idx_event_attendee"`
	Phone        string    `json:"phone,omitempty" gorm:"size:50"`
	Message      string    `json:"message,omitempty" gorm:"type:text"`
	RegisteredAt time.Time `json:"registered_at" gorm:"autoCreateTime"`
}
