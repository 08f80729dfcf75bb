package model

import "time"

// Prayer request categories (closed set).
const (
	CategoryHealth       = "health"
	CategoryFamily       = "family"
	CategoryGuidance     = "guidance"
	CategoryThanksgiving = "thanksgiving"
	CategoryGeneral      = "general"
)

// ValidCategory reports whether c is one of the accepted prayer categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryHealth, CategoryFamily, CategoryGuidance, CategoryThanksgiving, CategoryGeneral:
		return true
	}
	return false
}

// Prayer is a prayer-wall submission. It is created unapproved and becomes
// publicly visible only after an admin approves it. The transition is one-way.
type Prayer struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Title        string     `json:"title" gorm:"size:255;not null"`
	Content      string     `json:"content" gorm:"type:text;not null"`
	Category     string     `json:"category" gorm:"size:50;not null;index"`
	SubmittedBy  string     `json:"submitted_by" gorm:"size:255;not null"`
	Email        string     `json:"email,omitempty" gorm:"size:255"`
	SupportCount int        `json:"support_count" gorm:"default:0;not null"`
	Approved     bool       `json:"is_approved" gorm:"column:is_approved;default:false;index"`
	Anonymous    bool       `json:"is_anonymous" gorm:"column:is_anonymous;default:false"`
	CreatedAt    time.Time  `json:"created_at"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`

	Supports []PrayerSupport `json:"-" gorm:"foreignKey:PrayerID"`
}

// PrayerSupport records that a supporter already prayed for a request.
// The (prayer_id, supporter_ip) pair is unique; the row's existence is the
// dedup guard, so it is never updated or deleted.
type PrayerSupport struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	PrayerID    uint      `json:"prayer_id" gorm:"not null;uniqueIndex:idx_prayer_supporter"`
	SupporterIP string    `json:"-" gorm:"size:64;not null;uniqueIndex:idx_prayer_supporter"`
	SupportedAt time.Time `json:"supported_at" gorm:"autoCreateTime"`
}
