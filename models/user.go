package models

import "time"

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"size:255;not null" json:"-"`
	Name        string    `gorm:"size:150" json:"name"`
	Country     string    `gorm:"size:100" json:"country"`
	Bio         string    `gorm:"type:text" json:"bio"`
	HabitStreak uint      `gorm:"column:habit_streak;default:0" json:"habit_streak"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}
