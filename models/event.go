package models

import "time"

type Event struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	Subject       string    `gorm:"size:200;not null" json:"subject"`
	Location      *string   `gorm:"size:200" json:"location,omitempty"`
	StartTime     time.Time `gorm:"not null" json:"start_time"`
	EndTime       time.Time `gorm:"not null" json:"end_time"`
	Description   *string   `gorm:"type:text" json:"description,omitempty"`
	CategoryColor *string   `gorm:"size:200" json:"category_color,omitempty"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

func (Event) TableName() string {
	return "events"
}
