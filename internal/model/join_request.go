package model

import "time"

// Join request statuses.
const (
	JoinStatusPending  = "pending"
	JoinStatusReviewed = "reviewed"
)

// JoinRequest is a membership intake submission awaiting admin review.
type JoinRequest struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"size:255;not null"`
	Email          string    `json:"email" gorm:"size:255;not null"`
	Phone          string    `json:"phone,omitempty" gorm:"size:50"`
	Age            int       `json:"age,omitempty"`
	Interests      string    `json:"interests,omitempty" gorm:"type:text"`
	VolunteerAreas string    `json:"volunteer_areas,omitempty" gorm:"type:text"`
	Message        string    `json:"message,omitempty" gorm:"type:text"`
	Status         string    `json:"status" gorm:"size:50;default:'pending';index"`
	SubmittedAt    time.Time `json:"submitted_at" gorm:"autoCreateTime"`
}
