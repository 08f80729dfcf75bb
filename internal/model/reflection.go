package model

import "time"

// Reflection is a devotional post. At most one daily reflection is expected
// per publish date, but that is editorial convention, not a constraint.
type Reflection struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	Title              string    `json:"title" gorm:"size:255;not null"`
	Content            string    `json:"content" gorm:"type:text;not null"`
	ScriptureReference string    `json:"scripture_reference,omitempty" gorm:"size:255"`
	Category           string    `json:"category" gorm:"size:50;not null"`
	Author             string    `json:"author" gorm:"size:255;not null"`
	Daily              bool      `json:"is_daily" gorm:"column:is_daily;default:false;index"`
	PublishDate        string    `json:"publish_date" gorm:"size:10;not null;index"`
	Published          bool      `json:"is_published" gorm:"column:is_published;default:true;index"`
	CreatedAt          time.Time `json:"created_at"`
}
