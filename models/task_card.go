package models

import "time"

// Task card statuses. The habit sync only maps to_do and done onto the
// tracker; processing has no tracker-side equivalent.
const (
	TaskStatusToDo       = "to_do"
	TaskStatusProcessing = "processing"
	TaskStatusDone       = "done"
)

type TaskCard struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	Title     string     `gorm:"size:200;not null" json:"title"`
	Summary   *string    `gorm:"type:text" json:"summary,omitempty"`
	Status    string     `gorm:"size:20;default:'to_do'" json:"status"`
	TaskType  string     `gorm:"size:50;default:'other'" json:"task_type"`
	Priority  string     `gorm:"size:20;default:'medium'" json:"priority"`
	DueDate   *time.Time `gorm:"type:date" json:"due_date,omitempty"`
	IsHabit   bool       `gorm:"default:false" json:"is_habit"`
	TrackerID *uint      `gorm:"index" json:"tracker_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (TaskCard) TableName() string {
	return "task_cards"
}
