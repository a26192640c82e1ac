package models

import "time"

// HabitTracker is the daily record of one habit. The composite unique index
// on (habit_id, tracking_date) is what makes the login rollover idempotent:
// a concurrent second insert for the same day is rejected by the database.
type HabitTracker struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	HabitID              uint      `gorm:"uniqueIndex:idx_habit_day;not null" json:"habit_id"`
	TrackingDate         time.Time `gorm:"uniqueIndex:idx_habit_day;type:date;not null" json:"tracking_date"`
	IsCompleted          bool      `gorm:"default:false;not null" json:"is_completed"`
	CompletionPercentage float64   `gorm:"type:decimal(5,2);default:0" json:"completion_percentage"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (HabitTracker) TableName() string {
	return "habit_trackers"
}
