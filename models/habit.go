package models

import "time"

type HabitList struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"index;not null" json:"user_id"`
	HabitName        string    `gorm:"size:255;not null" json:"habit_name"`
	HabitDescription *string   `gorm:"type:text" json:"habit_description,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (HabitList) TableName() string {
	return "habit_lists"
}
